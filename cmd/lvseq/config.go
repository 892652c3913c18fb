// SPDX-License-Identifier: MIT
// Package: lvseq/cmd/lvseq
//
// config.go - optional YAML configuration.
//
// Example:
//
//	buffer_size: 64        # omit for half the input length
//	allocator_budget: 128  # 0 means unlimited
//	seed: 7                # used by gen

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrBadConfig indicates a configuration value outside its domain.
var ErrBadConfig = errors.New("lvseq: bad config")

// Config holds the settings shared by all commands.
type Config struct {
	// BufferSize is the temporary buffer request; nil selects the default
	// of each algorithm.
	BufferSize *int `yaml:"buffer_size"`
	// AllocatorBudget caps the elements a temporary buffer may hold.
	AllocatorBudget int `yaml:"allocator_budget"`
	// Seed feeds the gen command.
	Seed int64 `yaml:"seed"`
}

// loadConfig reads path, or returns the zero Config when path is empty.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("loadConfig: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parseConfig: %w", err)
	}
	if cfg.BufferSize != nil && *cfg.BufferSize < 0 {
		return Config{}, fmt.Errorf("parseConfig: buffer_size %d: %w", *cfg.BufferSize, ErrBadConfig)
	}
	if cfg.AllocatorBudget < 0 {
		return Config{}, fmt.Errorf("parseConfig: allocator_budget %d: %w", cfg.AllocatorBudget, ErrBadConfig)
	}
	return cfg, nil
}

func (c Config) bufferSizeString() string {
	if c.BufferSize == nil {
		return "auto"
	}
	return strconv.Itoa(*c.BufferSize)
}
