// SPDX-License-Identifier: MIT
// Package: lvseq/cmd/lvseq
//
// reverse.go - the reverse command.

package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvseq/iterator"
	"github.com/katalvlaran/lvseq/rearrange"
)

// reverseCmd implements subcommands.Command for the "reverse" command.
type reverseCmd struct {
	variant string
}

// Name implements subcommands.Command.
func (*reverseCmd) Name() string { return "reverse" }

// Synopsis implements subcommands.Command.
func (*reverseCmd) Synopsis() string { return "reverses a sequence of integers" }

// Usage implements subcommands.Command.
func (*reverseCmd) Usage() string {
	return "reverse [-variant forward|bidirectional|indexed|buffer] <ints>...\n"
}

// SetFlags implements subcommands.Command.
func (r *reverseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.variant, "variant", "indexed", "algorithm: forward, bidirectional, indexed or buffer.")
}

// Execute implements subcommands.Command.Execute.
func (r *reverseCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := envFrom(args)
	s, err := parseInts(f.Args())
	if err != nil {
		return usageError(e, f, err)
	}
	switch r.variant {
	case "forward":
		fs, _ := iterator.ForwardBounds(s)
		rearrange.ReverseNForward[int](fs, len(s))
	case "bidirectional":
		fb, lb := iterator.BidirectionalBounds(s)
		rearrange.ReverseBidirectional[int](fb, lb)
	case "indexed":
		fi, li := iterator.IndexedBounds(s)
		rearrange.ReverseIndexed[int](fi, li)
	case "buffer":
		fs, _ := iterator.ForwardBounds(s)
		rearrange.ReverseNWithTemporaryBuffer[int](fs, len(s), e.bufferOptions()...)
	default:
		return usageError(e, f, fmt.Errorf("reverse: variant %q: %w", r.variant, ErrBadArgument))
	}
	e.log.WithFields(logrus.Fields{"variant": r.variant, "n": len(s)}).Debug("reversed")
	e.printInts(s)
	return subcommands.ExitSuccess
}

// usageError logs err and reports a usage failure.
func usageError(e *env, f *flag.FlagSet, err error) subcommands.ExitStatus {
	e.log.WithError(err).Error(f.Name())
	return subcommands.ExitUsageError
}
