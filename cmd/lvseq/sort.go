// SPDX-License-Identifier: MIT
// Package: lvseq/cmd/lvseq
//
// sort.go - the sort and lsort commands.

package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvseq/linked"
	"github.com/katalvlaran/lvseq/memory"
	"github.com/katalvlaran/lvseq/merge"
)

// sortCmd implements subcommands.Command for the "sort" command.
type sortCmd struct {
	buffer int
}

// Name implements subcommands.Command.
func (*sortCmd) Name() string { return "sort" }

// Synopsis implements subcommands.Command.
func (*sortCmd) Synopsis() string { return "stably sorts integers with an adaptive merge sort" }

// Usage implements subcommands.Command.
func (*sortCmd) Usage() string { return "sort [-buffer N] <ints>...\n" }

// SetFlags implements subcommands.Command.
func (s *sortCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&s.buffer, "buffer", -1, "temporary buffer size; negative uses the config or half the input.")
}

// Execute implements subcommands.Command.Execute.
func (s *sortCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := envFrom(args)
	xs, err := parseInts(f.Args())
	if err != nil {
		return usageError(e, f, err)
	}
	var comparisons int
	merge.Sort(xs, func(a, b int) bool {
		comparisons++
		return a < b
	}, e.mergeOptions(s.buffer)...)
	e.log.WithFields(logrus.Fields{"n": len(xs), "comparisons": comparisons}).Debug("sorted")
	e.printInts(xs)
	return subcommands.ExitSuccess
}

// lsortCmd implements subcommands.Command for the "lsort" command.
type lsortCmd struct {
	singly bool
}

// Name implements subcommands.Command.
func (*lsortCmd) Name() string { return "lsort" }

// Synopsis implements subcommands.Command.
func (*lsortCmd) Synopsis() string { return "stably sorts integers held in a linked list" }

// Usage implements subcommands.Command.
func (*lsortCmd) Usage() string { return "lsort [-singly] <ints>...\n" }

// SetFlags implements subcommands.Command.
func (s *lsortCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&s.singly, "singly", false, "use a singly linked list instead of a doubly linked one.")
}

// Execute implements subcommands.Command.Execute.
func (s *lsortCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := envFrom(args)
	xs, err := parseInts(f.Args())
	if err != nil {
		return usageError(e, f, err)
	}
	less := func(a, b int) bool { return a < b }
	var nodes memory.Counter
	if s.singly {
		x := linked.SListOf(xs, linked.WithObserver(&nodes))
		x.Sort(less)
		xs = x.Values()
		x.EraseAll()
	} else {
		x := linked.ListOf(xs, linked.WithObserver(&nodes))
		x.Sort(less)
		xs = x.Values()
		x.EraseAll()
	}
	e.log.WithFields(logrus.Fields{
		"nodes": nodes.Total(),
		"freed": nodes.Freed(),
		"live":  nodes.Live(),
	}).Info("linked sort")
	e.printInts(xs)
	return subcommands.ExitSuccess
}
