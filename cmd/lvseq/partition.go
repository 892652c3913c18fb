// SPDX-License-Identifier: MIT
// Package: lvseq/cmd/lvseq
//
// partition.go - the partition command.

package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvseq/iterator"
	"github.com/katalvlaran/lvseq/partition"
)

// partitionCmd implements subcommands.Command for the "partition" command.
type partitionCmd struct {
	variant   string
	predicate string
}

// Name implements subcommands.Command.
func (*partitionCmd) Name() string { return "partition" }

// Synopsis implements subcommands.Command.
func (*partitionCmd) Synopsis() string {
	return "moves integers failing a predicate in front of those satisfying it"
}

// Usage implements subcommands.Command.
func (*partitionCmd) Usage() string {
	return `partition [-variant stable|semistable|iterative|buffer] -p even|odd <ints>...

Prints the elements failing the predicate, "|", then those satisfying it.
`
}

// SetFlags implements subcommands.Command.
func (p *partitionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.variant, "variant", "stable", "algorithm: stable, semistable, iterative or buffer.")
	f.StringVar(&p.predicate, "p", "even", "predicate: even or odd.")
}

func predicate(name string) (func(int) bool, error) {
	switch name {
	case "even":
		return func(x int) bool { return x%2 == 0 }, nil
	case "odd":
		return func(x int) bool { return x%2 != 0 }, nil
	}
	return nil, fmt.Errorf("partition: predicate %q: %w", name, ErrBadArgument)
}

// Execute implements subcommands.Command.Execute.
func (p *partitionCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := envFrom(args)
	s, err := parseInts(f.Args())
	if err != nil {
		return usageError(e, f, err)
	}
	pred, err := predicate(p.predicate)
	if err != nil {
		return usageError(e, f, err)
	}
	fi, li := iterator.Bounds(s)
	var m iterator.Slice[int]
	switch p.variant {
	case "stable":
		m = partition.Stable[int](fi, li, pred)
	case "semistable":
		m = partition.Semistable[int](fi, li, pred)
	case "iterative":
		m = partition.StableIterative[int](fi, li, pred)
	case "buffer":
		m = partition.StableAdaptive[int](fi, li, pred, e.bufferOptions()...)
	default:
		return usageError(e, f, fmt.Errorf("partition: variant %q: %w", p.variant, ErrBadArgument))
	}
	e.log.WithFields(logrus.Fields{"variant": p.variant, "point": m.Index()}).Debug("partitioned")
	fmt.Fprintf(e.out, "%s | %s\n", formatInts(s[:m.Index()]), formatInts(s[m.Index():]))
	return subcommands.ExitSuccess
}
