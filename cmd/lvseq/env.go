// SPDX-License-Identifier: MIT
// Package: lvseq/cmd/lvseq
//
// env.go - state shared by all commands and argument helpers.

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvseq/buffer"
	"github.com/katalvlaran/lvseq/memory"
	"github.com/katalvlaran/lvseq/merge"
)

// ErrBadArgument indicates an argument that is not an integer or is out of
// range for the command.
var ErrBadArgument = errors.New("lvseq: bad argument")

// env is passed to every Execute as its first extra argument.
type env struct {
	cfg Config
	log *logrus.Logger
	out io.Writer
}

// envFrom extracts the env handed to subcommands.Execute.
func envFrom(args []interface{}) *env {
	if len(args) > 0 {
		if e, ok := args[0].(*env); ok {
			return e
		}
	}
	panic("lvseq: command executed without env")
}

// logObserver reports element acquisitions at debug level.
type logObserver struct {
	log  *logrus.Entry
	live int
}

func (o *logObserver) Acquired(n int) {
	o.live += n
	o.log.WithFields(logrus.Fields{"n": n, "live": o.live}).Debug("acquired")
}

func (o *logObserver) Released(n int) {
	o.live -= n
	o.log.WithFields(logrus.Fields{"n": n, "live": o.live}).Debug("released")
}

// allocator returns the configured allocator for scratch ints, wrapped so
// that acquisitions show up in the debug log.
func (e *env) allocator() memory.Allocator[int] {
	var a memory.Allocator[int] = memory.Heap[int]{}
	if e.cfg.AllocatorBudget > 0 {
		a = memory.NewLimited[int](e.cfg.AllocatorBudget)
	}
	return memory.Observed[int](a, &logObserver{log: e.log.WithField("component", "buffer")})
}

func (e *env) onShrink(requested, granted int) {
	e.log.WithFields(logrus.Fields{
		"requested": requested,
		"granted":   granted,
	}).Info("temporary buffer shrunk")
}

func (e *env) bufferOptions() []buffer.Option[int] {
	return []buffer.Option[int]{
		buffer.WithAllocator[int](e.allocator()),
		buffer.WithOnShrink[int](e.onShrink),
	}
}

// mergeOptions applies the configured buffer size unless size overrides it
// with a non-negative value.
func (e *env) mergeOptions(size int) []merge.Option[int] {
	opts := []merge.Option[int]{
		merge.WithAllocator[int](e.allocator()),
		merge.WithOnShrink[int](e.onShrink),
	}
	switch {
	case size >= 0:
		opts = append(opts, merge.WithBufferSize[int](size))
	case e.cfg.BufferSize != nil:
		opts = append(opts, merge.WithBufferSize[int](*e.cfg.BufferSize))
	}
	return opts
}

func (e *env) printInts(s []int) {
	fmt.Fprintln(e.out, formatInts(s))
}

func parseInts(args []string) ([]int, error) {
	s := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("parseInts: %q: %w: %w", a, ErrBadArgument, err)
		}
		s = append(s, v)
	}
	return s, nil
}

func formatInts(s []int) string {
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
