// SPDX-License-Identifier: MIT
// Package lfr_test verifies the engine contracts end to end on real hosts:
// validation fail-fast, scenario quality, determinism, invariants and the
// mixing-parameter effect on modularity.

package lfr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lfrbench/core"
	"github.com/katalvlaran/lfrbench/lfr"
	"github.com/katalvlaran/lfrbench/quality"
)

// scenarioParams is the reference parameterization used across tests.
var scenarioParams = lfr.Params{
	Tau1: 2.5, Tau2: 1.5, Mu: 0.2,
	MinDegree: 5, MaxDegree: 20, AvgDegree: 10,
	MinCommunity: 10, MaxCommunity: 50,
}

// TestNew_ParamValidation walks the construction-time constraint table;
// each violation must surface its own sentinel and leave no usable object.
func TestNew_ParamValidation(t *testing.T) {
	t.Parallel()

	mutate := func(fn func(*lfr.Params)) lfr.Params {
		p := scenarioParams
		fn(&p)
		return p
	}

	cases := []struct {
		name    string
		params  lfr.Params
		wantErr error
	}{
		{"tau1_at_one", mutate(func(p *lfr.Params) { p.Tau1 = 1.0 }), lfr.ErrBadExponent},
		{"tau2_below_one", mutate(func(p *lfr.Params) { p.Tau2 = 0.5 }), lfr.ErrBadExponent},
		{"mu_negative", mutate(func(p *lfr.Params) { p.Mu = -0.1 }), lfr.ErrBadMixing},
		{"mu_above_one", mutate(func(p *lfr.Params) { p.Mu = 1.01 }), lfr.ErrBadMixing},
		{"min_degree_zero", mutate(func(p *lfr.Params) { p.MinDegree = 0 }), lfr.ErrBadDegreeBounds},
		{"max_below_min_degree", mutate(func(p *lfr.Params) { p.MaxDegree = 4 }), lfr.ErrBadDegreeBounds},
		{"avg_below_min", mutate(func(p *lfr.Params) { p.AvgDegree = 4.9 }), lfr.ErrBadAvgDegree},
		{"avg_above_max", mutate(func(p *lfr.Params) { p.AvgDegree = 20.5 }), lfr.ErrBadAvgDegree},
		{"min_community_zero", mutate(func(p *lfr.Params) { p.MinCommunity = 0 }), lfr.ErrBadCommunityBounds},
		{"max_below_min_community", mutate(func(p *lfr.Params) { p.MaxCommunity = 9 }), lfr.ErrBadCommunityBounds},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gen, err := lfr.New(tc.params)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v, want %v", err, tc.wantErr)
			assert.Nil(t, gen)
		})
	}

	gen, err := lfr.New(scenarioParams)
	require.NoError(t, err)
	require.NotNil(t, gen)
	assert.False(t, gen.Generated())
}

// TestGenerate_BoundaryValidation: generation-time checks fire before any
// sampling occurs — the host stays edgeless and no results are exposed.
func TestGenerate_BoundaryValidation(t *testing.T) {
	t.Parallel()

	t.Run("too_few_nodes", func(t *testing.T) {
		t.Parallel()
		gen, err := lfr.New(scenarioParams, lfr.WithSeed(1))
		require.NoError(t, err)
		g := core.NewAdjacency(9, false)
		err = gen.Generate(g)
		require.ErrorIs(t, err, lfr.ErrTooFewNodes)
		assert.Zero(t, g.EdgeCount(), "no partial side effects")
		assert.Empty(t, gen.DegreeSequence())
		assert.False(t, gen.Generated())
	})

	t.Run("avg_degree_equals_node_count", func(t *testing.T) {
		t.Parallel()
		p := scenarioParams
		p.MinDegree, p.MaxDegree, p.AvgDegree = 1, 15, 10
		gen, err := lfr.New(p, lfr.WithSeed(1))
		require.NoError(t, err)
		g := core.NewAdjacency(10, false)
		err = gen.Generate(g)
		require.ErrorIs(t, err, lfr.ErrAvgDegreeTooDense)
		assert.Zero(t, g.EdgeCount())
	})

	t.Run("nil_graph", func(t *testing.T) {
		t.Parallel()
		gen, err := lfr.New(scenarioParams)
		require.NoError(t, err)
		require.ErrorIs(t, gen.Generate(nil), lfr.ErrNilGraph)
	})
}

// TestGenerate_Scenario is the reference acceptance run: 100 nodes,
// undirected, mu=0.2. Checks node count, realized average degree within
// 20% of the target, at least two communities and zero isolated nodes.
func TestGenerate_Scenario(t *testing.T) {
	t.Parallel()

	gen, err := lfr.New(scenarioParams, lfr.WithSeed(42))
	require.NoError(t, err)

	g := core.NewAdjacency(100, false)
	require.NoError(t, gen.Generate(g))
	require.True(t, gen.Generated())

	assert.Equal(t, 100, g.NodeCount())

	realized := gen.ActualAverageDegree(g)
	assert.InDelta(t, scenarioParams.AvgDegree, realized, 0.2*scenarioParams.AvgDegree,
		"realized average degree %v should be within 20%% of %v", realized, scenarioParams.AvgDegree)

	assert.GreaterOrEqual(t, len(gen.Communities()), 2)
	assert.Zero(t, quality.IsolatedCount(g), "no isolated nodes")

	stats := gen.Stats()
	assert.Equal(t, g.EdgeCount(), stats.RealizedEdges)
	assert.LessOrEqual(t, stats.RealizedEdges, stats.TargetEdges,
		"construction approximates from below, never overshoots")
	assert.Equal(t, len(gen.Communities()), stats.Communities)
}

// TestGenerate_DegreeCapInvariant: no node's realized degree exceeds its
// target, at the end of construction (the invariant holds throughout; the
// end state is the observable anchor).
func TestGenerate_DegreeCapInvariant(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 10; seed++ {
		gen, err := lfr.New(scenarioParams, lfr.WithSeed(seed))
		require.NoError(t, err)
		g := core.NewAdjacency(150, false)
		require.NoError(t, gen.Generate(g))

		seq := gen.DegreeSequence()
		for u := 0; u < g.NodeCount(); u++ {
			require.LessOrEqual(t, g.Degree(u), seq[u], "seed=%d node=%d", seed, u)
		}
	}
}

// edgeFingerprint flattens a graph's edge set into a comparable string.
func edgeFingerprint(g core.Graph) string {
	s := ""
	for _, u := range g.Nodes() {
		for _, v := range g.Neighbors(u) {
			s += fmt.Sprintf("%d-%d;", u, v)
		}
	}
	return s
}

// TestGenerate_Determinism: identical seed and parameters reproduce an
// identical degree sequence, community assignment and edge set.
func TestGenerate_Determinism(t *testing.T) {
	t.Parallel()

	run := func() (*lfr.Generator, core.Graph) {
		gen, err := lfr.New(scenarioParams, lfr.WithSeed(1234))
		require.NoError(t, err)
		g := core.NewAdjacency(200, false)
		require.NoError(t, gen.Generate(g))
		return gen, g
	}

	genA, gA := run()
	genB, gB := run()

	assert.Equal(t, genA.DegreeSequence(), genB.DegreeSequence())
	assert.Equal(t, genA.CommunitySizes(), genB.CommunitySizes())
	assert.Equal(t, genA.Membership(), genB.Membership())
	assert.Equal(t, genA.Communities(), genB.Communities())
	assert.Equal(t, edgeFingerprint(gA), edgeFingerprint(gB))
}

// TestGenerate_HostIndependence: the engine depends on the host only
// through the capability seam, so the adjacency store and the gonum
// adapter receive the identical edge set for equal seeds.
func TestGenerate_HostIndependence(t *testing.T) {
	t.Parallel()

	genA, err := lfr.New(scenarioParams, lfr.WithSeed(77))
	require.NoError(t, err)
	adj := core.NewAdjacency(120, false)
	require.NoError(t, genA.Generate(adj))

	genB, err := lfr.New(scenarioParams, lfr.WithSeed(77))
	require.NoError(t, err)
	gnm := core.NewGonum(120, false)
	require.NoError(t, genB.Generate(gnm))

	assert.Equal(t, edgeFingerprint(adj), edgeFingerprint(gnm))
}

// TestGenerate_MixingLowersModularity: holding everything else fixed,
// mu = 0 yields strictly higher modularity than mu = 0.8.
func TestGenerate_MixingLowersModularity(t *testing.T) {
	t.Parallel()

	modularityFor := func(mu float64) float64 {
		p := scenarioParams
		p.Mu = mu
		gen, err := lfr.New(p, lfr.WithSeed(5))
		require.NoError(t, err)
		g := core.NewAdjacency(200, false)
		require.NoError(t, gen.Generate(g))
		return quality.Modularity(g, gen.Membership())
	}

	qLow := modularityFor(0.0)
	qHigh := modularityFor(0.8)
	assert.Greater(t, qLow, qHigh,
		"mu=0 (pure intra) must beat mu=0.8 (mostly inter): %v vs %v", qLow, qHigh)
}

// TestGenerate_Directed covers ordered-pair construction and the
// symmetrical mirror mode.
func TestGenerate_Directed(t *testing.T) {
	t.Parallel()

	t.Run("plain", func(t *testing.T) {
		t.Parallel()
		gen, err := lfr.New(scenarioParams, lfr.WithSeed(9))
		require.NoError(t, err)
		g := core.NewAdjacency(100, true)
		require.NoError(t, gen.Generate(g))
		assert.Positive(t, g.EdgeCount())
	})

	t.Run("symmetrical", func(t *testing.T) {
		t.Parallel()
		p := scenarioParams
		p.Symmetrical = true
		gen, err := lfr.New(p, lfr.WithSeed(9))
		require.NoError(t, err)
		g := core.NewAdjacency(100, true)
		require.NoError(t, gen.Generate(g))

		// Every edge must have its mirror.
		for _, u := range g.Nodes() {
			for _, v := range g.Neighbors(u) {
				assert.True(t, g.HasEdge(v, u), "missing mirror of %d→%d", u, v)
			}
		}
	})
}

// TestAccessors_ReturnCopies: mutating accessor results must not corrupt
// the frozen internal state.
func TestAccessors_ReturnCopies(t *testing.T) {
	t.Parallel()

	gen, err := lfr.New(scenarioParams, lfr.WithSeed(11))
	require.NoError(t, err)
	g := core.NewAdjacency(100, false)
	require.NoError(t, gen.Generate(g))

	seq := gen.DegreeSequence()
	seq[0] = -999
	assert.NotEqual(t, -999, gen.DegreeSequence()[0])

	comms := gen.Communities()
	comms[0][0] = -999
	assert.NotEqual(t, -999, gen.Communities()[0][0])

	member := gen.Membership()
	member[0] = -999
	assert.NotEqual(t, -999, gen.Membership()[0])
}

// TestOptions_PanicOnMisuse: option constructors fail fast on meaningless
// inputs; the engine itself never panics.
func TestOptions_PanicOnMisuse(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { lfr.WithRand(nil) })
	assert.Panics(t, func() { lfr.WithAdjustThreshold(0) })
	assert.Panics(t, func() { lfr.WithIterationFactor(0) })
	assert.Panics(t, func() { lfr.WithLabelFunc(nil) })
}

// TestWithIterationFactor_TightensOrLoosens: a factor of 1 may stop
// earlier than the default 3, never later.
func TestWithIterationFactor_TightensOrLoosens(t *testing.T) {
	t.Parallel()

	edgesFor := func(factor int) int {
		gen, err := lfr.New(scenarioParams, lfr.WithSeed(21), lfr.WithIterationFactor(factor))
		require.NoError(t, err)
		g := core.NewAdjacency(100, false)
		require.NoError(t, gen.Generate(g))
		return g.EdgeCount()
	}

	assert.LessOrEqual(t, edgesFor(1), edgesFor(3))
}
