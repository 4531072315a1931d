//
// Tencent is pleased to support the open source community by making trpc-evalstats-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-evalstats-go is licensed under the Apache License Version 2.0.
//
//

package report

// defaultBaseDir is the default base directory for report files.
const defaultBaseDir = "."

// Options holds the configuration for a report manager.
type Options struct {
	// BaseDir is the base directory for report files.
	BaseDir string
	// Locator is the locator for report files.
	Locator Locator
}

// NewOptions creates an Options with the default values.
func NewOptions(opts ...Option) *Options {
	options := &Options{
		BaseDir: defaultBaseDir,
		Locator: &locator{},
	}
	for _, o := range opts {
		o(options)
	}
	return options
}

// Option defines a function type for configuring a report manager.
type Option func(*Options)

// WithBaseDir sets the base directory.
func WithBaseDir(dir string) Option {
	return func(o *Options) {
		o.BaseDir = dir
	}
}

// WithLocator sets the locator.
func WithLocator(l Locator) Option {
	return func(o *Options) {
		o.Locator = l
	}
}
