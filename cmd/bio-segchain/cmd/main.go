// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/log"
	"github.com/grailbio/segchain/interval"
	"github.com/pkg/errors"
	"v.io/x/lib/cmdline"
)

const noneResult = "none"

// parseOperands parses every argument as an operand; want is the expected
// argument count.
func parseOperands(name string, argv []string, want int) ([]operand, error) {
	if len(argv) != want {
		return nil, errors.Errorf("%s takes %d operands, but got %v", name, want, argv)
	}
	ops := make([]operand, len(argv))
	for i, arg := range argv {
		var err error
		if ops[i], err = parseOperand(arg); err != nil {
			return nil, err
		}
	}
	return ops, nil
}

func printResult(w io.Writer, c interval.Chain, ok bool) error {
	if !ok {
		_, err := fmt.Fprintln(w, noneResult)
		return err
	}
	_, err := fmt.Fprintln(w, formatChain(c))
	return err
}

func newCmdIntersect() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "intersect",
		Short:    "Print the positions covered by both operands",
		ArgsName: "a b",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		ops, err := parseOperands("intersect", argv, 2)
		if err != nil {
			return err
		}
		result, ok := intersect(ops[0], ops[1])
		return printResult(env.Stdout, result, ok)
	})
	return cmd
}

func newCmdUnion() *cmdline.Command {
	cmd := &cmdline.Command{
		Name: "union",
		Short: `Print the positions covered by either operand.
The union of two segments is only defined when they overlap; a chain operand
produces a normalized chain.`,
		ArgsName: "a b",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		ops, err := parseOperands("union", argv, 2)
		if err != nil {
			return err
		}
		result, ok := union(ops[0], ops[1])
		return printResult(env.Stdout, result, ok)
	})
	return cmd
}

func newCmdOverlap() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "overlap",
		Short:    "Print whether the operands overlap",
		ArgsName: "a b",
	}
	strictFlag := cmd.Flags.Bool("strict", false, `Require an element of each operand to overlap.
By default a chain is compared by its envelope only, so a segment lying in a
gap between two elements still counts as overlapping.`)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		ops, err := parseOperands("overlap", argv, 2)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(env.Stdout, overlap(ops[0], ops[1], *strictFlag))
		return err
	})
	return cmd
}

func newCmdContains() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "contains",
		Short:    "Print whether a position is covered by the operand",
		ArgsName: "a pos",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return errors.Errorf("contains takes an operand and a position, but got %v", argv)
		}
		op, err := parseOperand(argv[0])
		if err != nil {
			return err
		}
		pos, err := parsePos(argv[1])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(env.Stdout, op.chain.Contains(pos))
		return err
	})
	return cmd
}

func newCmdRuns() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "runs",
		Short:    "Print the maximal runs of covered positions, one per line",
		ArgsName: "a",
	}
	limitFlag := cmd.Flags.Uint64("limit", interval.PosTypeMax, "Last position (inclusive) to report")
	fromFlag := cmd.Flags.Uint64("from", 0, "First position to report")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		ops, err := parseOperands("runs", argv, 1)
		if err != nil {
			return err
		}
		if *limitFlag > interval.PosTypeMax || *fromFlag > interval.PosTypeMax {
			return errors.Errorf("runs: -from and -limit must be at most %d", uint64(interval.PosTypeMax))
		}
		s := interval.NewScanner(ops[0].chain)
		s.Seek(interval.PosType(*fromFlag))
		var start, end interval.PosType
		nRun := 0
		for s.Scan(&start, &end, interval.PosType(*limitFlag)) {
			seg, err := interval.NewSegment(start, end)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(env.Stdout, formatSegment(seg)); err != nil {
				return err
			}
			nRun++
		}
		log.Debug.Printf("runs: %d run(s) reported", nRun)
		return nil
	})
	return cmd
}

func newCmdTrim() *cmdline.Command {
	cmd := &cmdline.Command{
		Name: "trim",
		Short: `Move the start and/or end of a chain and print the result.
Moving a bound outward extends the first (or last) element.  Moving it inward
drops whole elements that begin before the new start (or finish after the new
end); elements are never clipped.`,
		ArgsName: "a",
	}
	startFlag := cmd.Flags.Int64("start", -1, "New start position; negative leaves the start alone")
	endFlag := cmd.Flags.Int64("end", -1, "New end position; negative leaves the end alone")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		ops, err := parseOperands("trim", argv, 1)
		if err != nil {
			return err
		}
		for _, f := range []struct {
			name string
			val  int64
		}{{"start", *startFlag}, {"end", *endFlag}} {
			if f.val > interval.PosTypeMax {
				return errors.Wrapf(interval.ErrInvalidRange, "trim: -%s %d exceeds %d", f.name, f.val, uint64(interval.PosTypeMax))
			}
		}
		c := ops[0].chain
		if *startFlag >= 0 {
			if err := c.SetStart(interval.PosType(*startFlag)); err != nil {
				return err
			}
		}
		if *endFlag >= 0 {
			if err := c.SetEnd(interval.PosType(*endFlag)); err != nil {
				return err
			}
		}
		return printResult(env.Stdout, c, !c.Empty())
	})
	return cmd
}

func newCmdFind() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "find",
		Short:    "For each query segment, print the chain elements overlapping it",
		ArgsName: "a query...",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) < 2 {
			return errors.Errorf("find takes a chain and at least one query, but got %v", argv)
		}
		op, err := parseOperand(argv[0])
		if err != nil {
			return err
		}
		index, err := interval.NewIndex(op.chain)
		if err != nil {
			return err
		}
		log.Debug.Printf("find: indexed %d element(s)", index.Len())
		for _, arg := range argv[1:] {
			q, err := parseSegment(arg)
			if err != nil {
				return err
			}
			hits, err := interval.ChainOf(index.Overlapping(q)...)
			if err != nil {
				return err
			}
			if err := printResult(env.Stdout, hits, !hits.Empty()); err != nil {
				return err
			}
		}
		return nil
	})
	return cmd
}

func newCmdInfo() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "info",
		Short:    "Print summary information about an operand",
		ArgsName: "a",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		ops, err := parseOperands("info", argv, 1)
		if err != nil {
			return err
		}
		c := ops[0].chain
		envelope := noneResult
		if e, ok := c.Envelope(); ok {
			envelope = formatSegment(e)
		}
		_, err = fmt.Fprintf(env.Stdout, "kind\t%s\nsegments\t%d\nenvelope\t%s\ncoverage\t%d\nnormalized\t%v\nhash\t%s\n",
			ops[0].kind(), c.Len(), envelope, c.Coverage(), c.Normalized(), formatHash(c.Hash()))
		return err
	})
	return cmd
}

func newCmdRoot() *cmdline.Command {
	return &cmdline.Command{
		Name:     "bio-segchain",
		Short:    "Interval algebra over segments and chains of segments",
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdIntersect(),
			newCmdUnion(),
			newCmdOverlap(),
			newCmdContains(),
			newCmdRuns(),
			newCmdTrim(),
			newCmdFind(),
			newCmdInfo(),
		},
	}
}

func Run() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(newCmdRoot())
}
