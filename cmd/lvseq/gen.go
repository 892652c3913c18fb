// SPDX-License-Identifier: MIT
// Package: lvseq/cmd/lvseq
//
// gen.go - the gen command, printing builder fixtures.

package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/katalvlaran/lvseq/builder"
)

// genCmd implements subcommands.Command for the "gen" command.
type genCmd struct {
	kind   string
	n      int
	unique int
	max    int64
}

// Name implements subcommands.Command.
func (*genCmd) Name() string { return "gen" }

// Synopsis implements subcommands.Command.
func (*genCmd) Synopsis() string { return "prints a generated input sequence or tree" }

// Usage implements subcommands.Command.
func (*genCmd) Usage() string {
	return "gen [-kind iota|random|sorted|reversed|fewunique|tree] [-n N] [-k K] [-max M]\n"
}

// SetFlags implements subcommands.Command.
func (g *genCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&g.kind, "kind", "random", "iota, random, sorted, reversed, fewunique or tree.")
	f.IntVar(&g.n, "n", 16, "number of elements or tree nodes.")
	f.IntVar(&g.unique, "k", 4, "distinct values for fewunique.")
	f.Int64Var(&g.max, "max", 100, "exclusive upper bound of random values.")
}

// Execute implements subcommands.Command.Execute.
func (g *genCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := envFrom(args)
	if g.max <= 0 {
		return usageError(e, f, fmt.Errorf("gen: max=%d: %w", g.max, ErrBadArgument))
	}
	opts := []builder.BuilderOption{builder.WithSeed(e.cfg.Seed), builder.WithRange(0, g.max)}
	var (
		s   []int
		err error
	)
	switch g.kind {
	case "iota":
		s, err = builder.Iota[int](g.n)
	case "random":
		s, err = builder.Random[int](g.n, opts...)
	case "sorted":
		s, err = builder.Sorted[int](g.n, opts...)
	case "reversed":
		s, err = builder.Reversed[int](g.n, opts...)
	case "fewunique":
		s, err = builder.FewUnique[int](g.n, g.unique, opts...)
	case "tree":
		t, terr := builder.RandomTree(g.n, opts...)
		if terr != nil {
			return usageError(e, f, terr)
		}
		fmt.Fprintln(e.out, t)
		return subcommands.ExitSuccess
	default:
		err = fmt.Errorf("gen: kind %q: %w", g.kind, ErrBadArgument)
	}
	if err != nil {
		return usageError(e, f, err)
	}
	e.printInts(s)
	return subcommands.ExitSuccess
}
