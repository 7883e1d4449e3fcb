// SPDX-License-Identifier: MIT
// Package: lfrbench/lfr
//
// generator.go — the engine: construction, the five-stage pipeline and the
// read-only query API.
//
// Lifecycle:
//   - New validates Params fail-fast (sentinel errors, no side effects) and
//     freezes the configuration.
//   - Generate validates the host, then runs stages 2–5 sequentially; no
//     stage begins before the prior stage's output is frozen. All
//     randomness comes from the one rng owned by this instance.
//   - After Generate returns, every accessor exposes copies: internal state
//     is never mutated again and never aliased out.

package lfr

import (
	"fmt"

	"github.com/katalvlaran/lfrbench/core"
)

// Generator produces LFR benchmark graphs into core.Graph hosts.
// One instance owns one rng and the results of its latest run; it is not
// safe for concurrent use.
type Generator struct {
	params Params
	cfg    genConfig

	degreeSequence []int
	communitySizes []int
	communities    [][]int
	membership     []int
	stats          Stats
	generated      bool
}

// Stats reports the observability counters of the latest run. Shortfall
// (RealizedEdges < TargetEdges, RealizedAvgDegree < TargetAvgDegree) is an
// expected property of the greedy construction, not an error condition.
type Stats struct {
	TargetEdges       int
	RealizedEdges     int
	TargetAvgDegree   float64
	RealizedAvgDegree float64
	Iterations        int
	Communities       int
}

// New validates p and constructs a Generator. The returned error wraps one
// of the parameter sentinels (ErrBadExponent, ErrBadMixing,
// ErrBadDegreeBounds, ErrBadAvgDegree, ErrBadCommunityBounds) identifying
// the violated constraint; on error the generator is not usable.
// Complexity: O(len(opts)).
func New(p Params, opts ...Option) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("lfr.New: %w", err)
	}
	return &Generator{params: p, cfg: newGenConfig(opts...)}, nil
}

// Generate runs the pipeline into g: degree sequence, community sizes,
// assignment, edge construction. Generation-time validation (node floor,
// density ceiling) happens before any internal array is allocated or any
// randomness is consumed.
//
// The host should be edgeless; pre-existing edges are tolerated (they
// count toward realized degrees through the host's duplicate test) but
// are not part of the model.
//
// Re-invoking Generate recomputes everything with the rng continuing from
// its current state; use a fresh Generator (or the same seed option) to
// reproduce a run exactly.
func (gen *Generator) Generate(g core.Graph) error {
	if g == nil {
		return fmt.Errorf("lfr.Generate: %w", ErrNilGraph)
	}
	n := g.NodeCount()
	if n < MinNodes {
		return fmt.Errorf("lfr.Generate: n=%d < %d: %w", n, MinNodes, ErrTooFewNodes)
	}
	if gen.params.AvgDegree >= float64(n) {
		return fmt.Errorf("lfr.Generate: avgDegree=%v >= n=%d: %w", gen.params.AvgDegree, n, ErrAvgDegreeTooDense)
	}

	gen.generated = false
	gen.stats = Stats{}

	gen.degreeSequence = gen.buildDegreeSequence(n, g.Directed())
	gen.communitySizes = gen.buildCommunitySizes(n)
	gen.assignCommunities(n)
	gen.constructEdges(g)

	gen.stats.TargetAvgDegree = intMean(gen.degreeSequence)
	gen.stats.RealizedAvgDegree = gen.ActualAverageDegree(g)
	gen.stats.Communities = len(gen.communities)
	gen.generated = true
	return nil
}

// Params returns the constructed parameters.
func (gen *Generator) Params() Params { return gen.params }

// Generated reports whether a run has completed on this instance.
func (gen *Generator) Generated() bool { return gen.generated }

// Stats returns the observability counters of the latest run.
func (gen *Generator) Stats() Stats { return gen.stats }

// DegreeSequence returns a copy of the target degree sequence of the
// latest run (nil before the first run).
func (gen *Generator) DegreeSequence() []int {
	return append([]int(nil), gen.degreeSequence...)
}

// CommunitySizes returns a copy of the as-generated community size list.
func (gen *Generator) CommunitySizes() []int {
	return append([]int(nil), gen.communitySizes...)
}

// Membership returns a copy of the node → community id mapping.
func (gen *Generator) Membership() []int {
	return append([]int(nil), gen.membership...)
}

// Communities returns a deep copy of the community member lists, in
// generation order.
func (gen *Generator) Communities() [][]int {
	out := make([][]int, len(gen.communities))
	for i, members := range gen.communities {
		out[i] = append([]int(nil), members...)
	}
	return out
}

// AvgDegree returns the target average degree from Params.
func (gen *Generator) AvgDegree() float64 { return gen.params.AvgDegree }

// ActualAverageDegree computes the realized mean degree of g.
// Complexity: O(n).
func (gen *Generator) ActualAverageDegree(g core.Graph) float64 {
	n := g.NodeCount()
	if n == 0 {
		return 0
	}
	total := 0
	for u := 0; u < n; u++ {
		total += g.Degree(u)
	}
	return float64(total) / float64(n)
}

// Label returns the export label of node i per the configured scheme.
func (gen *Generator) Label(i int) string { return gen.cfg.labelFn(i) }
