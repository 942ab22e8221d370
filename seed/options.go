// SPDX-License-Identifier: MIT
// Package: mmseed/seed
//
// options.go — functional options and deterministic defaults.
//
// Option constructors panic on meaningless inputs (nil source, nil logger,
// non-positive budgets). Algorithms never panic.

package seed

import (
	"io"
	"log/slog"
	"math/rand"
)

// Deterministic defaults.
const (
	// DefaultMaxTries bounds the outer iterations of one contraction attempt.
	DefaultMaxTries = 1000

	// DefaultMaxAttempts bounds the top-level contraction attempts of Seed.
	DefaultMaxAttempts = 100

	// DefaultMaxGrowthPicks bounds wasted neighbor picks while growing one group.
	DefaultMaxGrowthPicks = 64

	// DefaultSeed seeds the random source when neither WithRand nor WithSeed is given.
	DefaultSeed int64 = 1
)

// Option customizes Contract, Seed and Batch.
type Option func(*config)

// config is resolved once per call and passed by pointer to the internals.
type config struct {
	rng            *rand.Rand
	maxTries       int
	maxAttempts    int
	maxGrowthPicks int
	logger         *slog.Logger
	metrics        *Metrics
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		maxTries:       DefaultMaxTries,
		maxAttempts:    DefaultMaxAttempts,
		maxGrowthPicks: DefaultMaxGrowthPicks,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return cfg
}

// WithRand supplies the random source. A *rand.Rand is not safe for
// concurrent use; give each goroutine its own.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("seed: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithMaxTries sets the per-contraction retry budget (n_tries).
func WithMaxTries(n int) Option {
	if n < 1 {
		panic("seed: WithMaxTries(n<1)")
	}
	return func(c *config) { c.maxTries = n }
}

// WithMaxAttempts sets the number of top-level contraction attempts.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("seed: WithMaxAttempts(n<1)")
	}
	return func(c *config) { c.maxAttempts = n }
}

// WithMaxGrowthPicks bounds how many infeasible neighbor picks one growth
// step tolerates before it is abandoned.
func WithMaxGrowthPicks(n int) Option {
	if n < 1 {
		panic("seed: WithMaxGrowthPicks(n<1)")
	}
	return func(c *config) { c.maxGrowthPicks = n }
}

// WithLogger routes progress records to l. Per-step traces are emitted at
// debug level.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("seed: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithMetrics records outcomes on m. A nil m disables recording.
func WithMetrics(m *Metrics) Option {
	return func(c *config) { c.metrics = m }
}
