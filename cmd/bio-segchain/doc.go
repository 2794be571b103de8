/*Command bio-segchain evaluates segment/chain interval algebra on operands
  given on the command line.

  A segment is written "start-end" (closed, so "3-3" is one position) or as a
  single position "pos".  A chain is a comma-separated list of segments in
  nondecreasing order, e.g. "1-5,10-15,20-25".  An operand with one segment is
  treated as a Segment, anything else as a Chain.

  Usage:
    bio-segchain intersect 1-5,10-15,20-25 5-12,18-22,30-35
    bio-segchain union 1-5 4-9
    bio-segchain overlap -strict 1-5,10-15,20-25 16-18
    bio-segchain contains 1-5,10-15 12
    bio-segchain runs -limit 21 5-14,7-16,20-24
    bio-segchain trim -start 10 1-5,10-15,20-25
    bio-segchain find 1-5,10-15,20-25 4-11
    bio-segchain info 1-5,10-15,20-25
*/
package main
