/*Package interval implements an algebra over closed ranges of unsigned 32-bit
  positions.  A Segment is a single range [start, end]; a Chain is a sequence
  of Segments kept in nondecreasing (start, end) order, e.g. the exon blocks of
  a transcript.

  Both types support membership, intersection, union and overlap tests.  For
  Chains there are two flavors of overlap: the loose test compares only the
  chain's envelope [Start(), End()], while the strict test requires an actual
  element to overlap, so gaps between elements are respected.

  Coordinates are closed on both ends, unlike the half-open convention of BED
  files.  A chain is not required to be disjoint; Chain.Normalize produces the
  disjoint form when needed.
*/
package interval
