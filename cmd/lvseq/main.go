// SPDX-License-Identifier: MIT
// Package: lvseq/cmd/lvseq
//
// main.go - command line front end for the lvseq algorithms.
//
// Usage:
//
//	lvseq [-config file.yaml] [-v] <command> [flags] args...
//
// Commands read integers (or an s-expression for tree) from their
// arguments and print the rearranged result on stdout. Diagnostics such as
// buffer shrink events and node counts go to stderr through logrus.

package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "", "YAML file with buffer and allocator settings.")
	verbose    = flag.Bool("v", false, "enable debug logging.")
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	for _, cmd := range commands() {
		subcommands.Register(cmd, "")
	}

	flag.Parse()

	log := newLogger(*verbose)
	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("loading config")
	}
	log.WithFields(logrus.Fields{
		"buffer_size":      cfg.bufferSizeString(),
		"allocator_budget": cfg.AllocatorBudget,
		"seed":             cfg.Seed,
	}).Debug("config loaded")

	e := &env{cfg: cfg, log: log, out: os.Stdout}
	os.Exit(int(subcommands.Execute(context.Background(), e)))
}

// commands lists every algorithm command in registration order.
func commands() []subcommands.Command {
	return []subcommands.Command{
		new(reverseCmd),
		new(rotateCmd),
		new(partitionCmd),
		new(sortCmd),
		new(lsortCmd),
		new(treeCmd),
		new(genCmd),
	}
}

func newLogger(debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
