// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package coroutine

import (
	"fmt"

	"github.com/joeycumines/logiface"
)

// coroutineOptions holds configuration options for coroutine creation.
type coroutineOptions struct {
	backend        Backend
	logger         *logiface.Logger[logiface.Event]
	releaseFunc    func()
	metricsEnabled bool
}

// Option configures a coroutine, for New and NewGivenMemory.
type Option interface {
	applyCoroutine(*coroutineOptions) error
}

// optionImpl implements Option.
type optionImpl struct {
	applyFunc func(*coroutineOptions) error
}

func (x *optionImpl) applyCoroutine(opts *coroutineOptions) error {
	return x.applyFunc(opts)
}

// WithBackend selects the execution backend.
// See Backend documentation for available backends.
func WithBackend(backend Backend) Option {
	return &optionImpl{func(opts *coroutineOptions) error {
		switch backend {
		case BackendChannel, BackendCond:
			opts.backend = backend
			return nil
		default:
			return fmt.Errorf(`coroutine: unknown backend: %d`, backend)
		}
	}}
}

// WithLogger configures an optional structured logger, which will receive
// trace-level lifecycle events (create, terminate, release). A nil logger
// disables logging (the default).
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &optionImpl{func(opts *coroutineOptions) error {
		opts.logger = logger
		return nil
	}}
}

// WithMetrics enables per-coroutine counters, accessible via
// Coroutine.Metrics. Disabled by default; the counters are cheap (atomic
// increments) but not free.
func WithMetrics(enabled bool) Option {
	return &optionImpl{func(opts *coroutineOptions) error {
		opts.metricsEnabled = enabled
		return nil
	}}
}

// WithReleaseFunc registers a hook run exactly once, when the parent observes
// termination (inside From or CloseAndJoin), e.g. to return caller-supplied
// record memory to a pool.
func WithReleaseFunc(release func()) Option {
	return &optionImpl{func(opts *coroutineOptions) error {
		opts.releaseFunc = release
		return nil
	}}
}

// resolveOptions applies Option instances to coroutineOptions.
func resolveOptions(opts []Option) (*coroutineOptions, error) {
	cfg := &coroutineOptions{
		backend: BackendChannel, // default
	}
	for _, opt := range opts {
		if opt == nil {
			continue // Skip nil options gracefully
		}
		if err := opt.applyCoroutine(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
