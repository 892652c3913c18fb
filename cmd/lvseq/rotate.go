// SPDX-License-Identifier: MIT
// Package: lvseq/cmd/lvseq
//
// rotate.go - the rotate command.

package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvseq/rearrange"
)

// rotateCmd implements subcommands.Command for the "rotate" command.
type rotateCmd struct {
	m int
}

// Name implements subcommands.Command.
func (*rotateCmd) Name() string { return "rotate" }

// Synopsis implements subcommands.Command.
func (*rotateCmd) Synopsis() string { return "moves the first m integers behind the rest" }

// Usage implements subcommands.Command.
func (*rotateCmd) Usage() string { return "rotate -m K <ints>...\n" }

// SetFlags implements subcommands.Command.
func (r *rotateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&r.m, "m", 0, "number of leading elements to move, 0 <= m <= len.")
}

// Execute implements subcommands.Command.Execute.
func (r *rotateCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := envFrom(args)
	s, err := parseInts(f.Args())
	if err != nil {
		return usageError(e, f, err)
	}
	if r.m < 0 || r.m > len(s) {
		return usageError(e, f, fmt.Errorf("rotate: m=%d outside [0, %d]: %w", r.m, len(s), ErrBadArgument))
	}
	first := rearrange.RotateSlice(s, r.m)
	e.log.WithFields(logrus.Fields{"m": r.m, "first": first}).Debug("rotated")
	e.printInts(s)
	return subcommands.ExitSuccess
}
