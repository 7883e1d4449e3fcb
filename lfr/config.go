// SPDX-License-Identifier: MIT
// Package: lfrbench/lfr
//
// config.go — constructed parameters, internal configuration and
// deterministic defaults.
//
// Design:
//   - Params carries the nine domain parameters from the original model;
//     New validates them fail-fast with sentinel errors and no side effects.
//   - genConfig is the single source of truth for all engine knobs;
//     newGenConfig applies options in order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   - rng             = rand.New(rand.NewSource(DefaultSeed))
//   - adjustThreshold = DefaultAdjustThreshold (0.15)
//   - iterFactor      = DefaultIterationFactor (3)
//   - labelFn         = decimal ("0","1","2",...)

package lfr

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Params are the constructed parameters of the LFR model, validated by New.
//
//	Tau1         — power-law exponent of the degree distribution   (> 1)
//	Tau2         — power-law exponent of the community sizes        (> 1)
//	Mu           — target fraction of inter-community edges         ([0,1])
//	MinDegree    — lower degree bound                               (≥ 1)
//	MaxDegree    — upper degree bound                               (≥ MinDegree)
//	AvgDegree    — target mean degree                               ([MinDegree, MaxDegree])
//	MinCommunity — lower community size bound                       (≥ 1)
//	MaxCommunity — upper community size bound                       (≥ MinCommunity)
//	Symmetrical  — for directed hosts, mirror every edge u→v with v→u
type Params struct {
	Tau1         float64
	Tau2         float64
	Mu           float64
	MinDegree    int
	MaxDegree    int
	AvgDegree    float64
	MinCommunity int
	MaxCommunity int
	Symmetrical  bool
}

// Tuning and domain constants (named, no magic literals).
const (
	// MinNodes is the generation-time floor on the host graph order.
	MinNodes = 10

	// DefaultSeed seeds the engine RNG when neither WithSeed nor WithRand
	// is supplied, keeping runs reproducible by default.
	DefaultSeed int64 = 1

	// DefaultAdjustThreshold is the relative mean-degree deviation above
	// which the degree sequence receives one bounded rescale.
	DefaultAdjustThreshold = 0.15

	// DefaultIterationFactor bounds edge construction to
	// factor × targetEdges queue iterations (starvation guard).
	DefaultIterationFactor = 3

	// adjustFactorMin/Max clamp the single multiplicative degree
	// correction so the rescale cannot destroy the power-law shape.
	adjustFactorMin = 0.8
	adjustFactorMax = 1.3

	// tauUniformEpsilon: below this distance from tau = 1 the closed-form
	// inverse degenerates and sampling falls back to discrete uniform.
	tauUniformEpsilon = 1e-10
)

// Validate checks every constructed-parameter constraint and returns a
// sentinel-wrapped error naming the first violated one, or nil.
// Complexity: O(1).
func (p Params) Validate() error {
	if p.Tau1 <= 1.0 {
		return fmt.Errorf("tau1=%v: %w", p.Tau1, ErrBadExponent)
	}
	if p.Tau2 <= 1.0 {
		return fmt.Errorf("tau2=%v: %w", p.Tau2, ErrBadExponent)
	}
	if p.Mu < 0.0 || p.Mu > 1.0 {
		return fmt.Errorf("mu=%v not in [0,1]: %w", p.Mu, ErrBadMixing)
	}
	if p.MinDegree < 1 {
		return fmt.Errorf("minDegree=%d < 1: %w", p.MinDegree, ErrBadDegreeBounds)
	}
	if p.MaxDegree < p.MinDegree {
		return fmt.Errorf("maxDegree=%d < minDegree=%d: %w", p.MaxDegree, p.MinDegree, ErrBadDegreeBounds)
	}
	if p.AvgDegree < float64(p.MinDegree) || p.AvgDegree > float64(p.MaxDegree) {
		return fmt.Errorf("avgDegree=%v not in [%d,%d]: %w", p.AvgDegree, p.MinDegree, p.MaxDegree, ErrBadAvgDegree)
	}
	if p.MinCommunity < 1 {
		return fmt.Errorf("minCommunity=%d < 1: %w", p.MinCommunity, ErrBadCommunityBounds)
	}
	if p.MaxCommunity < p.MinCommunity {
		return fmt.Errorf("maxCommunity=%d < minCommunity=%d: %w", p.MaxCommunity, p.MinCommunity, ErrBadCommunityBounds)
	}
	return nil
}

// genConfig aggregates all engine knobs resolved from Options.
// It is embedded by value in the Generator (immutable after New).
type genConfig struct {
	rng             *rand.Rand
	adjustThreshold float64
	iterFactor      int
	labelFn         func(int) string
}

// newGenConfig resolves options over the deterministic defaults.
// Complexity: O(len(opts)).
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:             rand.New(rand.NewSource(DefaultSeed)),
		adjustThreshold: DefaultAdjustThreshold,
		iterFactor:      DefaultIterationFactor,
		labelFn:         decimalLabel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// decimalLabel is the default node label scheme: "0","1","2",...
func decimalLabel(i int) string { return strconv.Itoa(i) }
