// SPDX-License-Identifier: MIT
// Package: mmseed/builder
//
// options.go — functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves return errors.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator idx -> string for Path/Cycle/Star.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for random attributes.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithUniformAttr stores value under key on every vertex a constructor adds.
func WithUniformAttr(key string, value float64) BuilderOption {
	if key == "" {
		panic("builder: WithUniformAttr(empty key)")
	}
	return func(c *builderConfig) {
		c.attrs = append(c.attrs, attrSpec{key: key, lo: value, hi: value})
	}
}

// WithRandomAttr draws a value uniformly from [lo, hi) per vertex, in
// vertex insertion order.
func WithRandomAttr(key string, lo, hi float64) BuilderOption {
	if key == "" {
		panic("builder: WithRandomAttr(empty key)")
	}
	if hi < lo {
		panic("builder: WithRandomAttr(hi<lo)")
	}
	return func(c *builderConfig) {
		c.attrs = append(c.attrs, attrSpec{key: key, lo: lo, hi: hi, random: true})
	}
}
