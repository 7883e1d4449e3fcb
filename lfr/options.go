// SPDX-License-Identifier: MIT
// Package: lfrbench/lfr
//
// options.go — functional options for the Generator.
//
// Contract (strict):
//   - Options are functional (type Option func(*genConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     the engine itself never panics at runtime.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through genConfig.

package lfr

import "math/rand"

// Option customizes the Generator by mutating its configuration before the
// first pipeline stage runs. Applying N options costs O(N).
type Option func(*genConfig)

// WithSeed creates a fresh RNG for the engine from the given seed.
// Identical seed and Params reproduce an identical graph; use this in
// tests and benchmarks to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. Panics on nil; prefer WithSeed unless
// you need to share a source across generators deliberately.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("lfr: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithAdjustThreshold overrides the relative mean-degree deviation above
// which the degree sequence is rescaled once. The threshold is a tuning
// constant, not a physical limit; it must be positive. Panics otherwise.
func WithAdjustThreshold(threshold float64) Option {
	if threshold <= 0 {
		panic("lfr: WithAdjustThreshold requires a positive threshold")
	}
	return func(c *genConfig) {
		c.adjustThreshold = threshold
	}
}

// WithIterationFactor overrides the multiplier bounding edge construction
// to factor × targetEdges queue iterations. Must be ≥ 1; panics otherwise.
// Raising it trades run time for a closer degree-sequence fit on hard
// parameter mixes.
func WithIterationFactor(factor int) Option {
	if factor < 1 {
		panic("lfr: WithIterationFactor requires factor >= 1")
	}
	return func(c *genConfig) {
		c.iterFactor = factor
	}
}

// WithLabelFunc sets the deterministic node label scheme used by export:
// index -> label. Panics on nil. The default is decimal ("0","1",...).
func WithLabelFunc(fn func(int) string) Option {
	if fn == nil {
		panic("lfr: WithLabelFunc(nil)")
	}
	return func(c *genConfig) {
		c.labelFn = fn
	}
}
