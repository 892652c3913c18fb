// SPDX-License-Identifier: MIT
// Package: lvseq/cmd/lvseq
//
// tree.go - the tree command.

package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvseq/bifurcate"
	"github.com/katalvlaran/lvseq/memory"
)

// treeCmd implements subcommands.Command for the "tree" command.
type treeCmd struct{}

// Name implements subcommands.Command.
func (*treeCmd) Name() string { return "tree" }

// Synopsis implements subcommands.Command.
func (*treeCmd) Synopsis() string { return "parses, copies and traverses a binary tree" }

// Usage implements subcommands.Command.
func (*treeCmd) Usage() string {
	return `tree '<sexpr>'

The tree is written as (value [left [right]]), with () for an absent child,
for example '(1 (2 () (4)) (3))'.
`
}

// SetFlags implements subcommands.Command.
func (*treeCmd) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*treeCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := envFrom(args)
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	var nodes memory.Counter
	x, err := bifurcate.Parse(strings.Join(f.Args(), " "), identity, bifurcate.WithObserver(&nodes))
	if err != nil {
		return usageError(e, f, err)
	}
	y := x.Clone()
	e.log.WithFields(logrus.Fields{
		"nodes": nodes.Live(),
		"equal": x.Equal(y, func(a, b string) bool { return a == b }),
	}).Debug("copied")
	x.Erase()

	fmt.Fprintf(e.out, "tree:   %s\n", y)
	fmt.Fprintf(e.out, "pre:    %s\n", strings.Join(y.Values(bifurcate.Pre), " "))
	fmt.Fprintf(e.out, "in:     %s\n", strings.Join(y.Values(bifurcate.In), " "))
	fmt.Fprintf(e.out, "post:   %s\n", strings.Join(y.Values(bifurcate.Post), " "))
	fmt.Fprintf(e.out, "weight: %d\n", y.Weight())
	fmt.Fprintf(e.out, "height: %d\n", y.Height())
	y.Erase()
	if nodes.Live() != 0 {
		e.log.WithField("live", nodes.Live()).Warn("nodes leaked")
	}
	return subcommands.ExitSuccess
}

func identity(s string) (string, error) { return s, nil }
