// SPDX-License-Identifier: MIT
// Package quality_test pins the metric contracts on small hand-checked
// graphs, where modularity and the reports can be verified by arithmetic.

package quality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lfrbench/core"
	"github.com/katalvlaran/lfrbench/quality"
)

// twoTriangles builds the classic two-community fixture: triangles
// {0,1,2} and {3,4,5} joined by the single bridge 2–3.
func twoTriangles(t *testing.T) core.Graph {
	t.Helper()
	g := core.NewAdjacency(6, false)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}, {2, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestModularity_TwoTriangles(t *testing.T) {
	t.Parallel()

	g := twoTriangles(t)
	membership := []int{0, 0, 0, 1, 1, 1}

	// Hand computation for E=7, 2E=14: each triangle contributes
	// Σ A_ij = 6 ordered adjacent pairs and Σ k_i·k_j = (2+2+3)² = 49,
	// so per triangle 6 − 49/14 = 2.5, total 5, Q = 5/14 ≈ 0.3571.
	q := quality.Modularity(g, membership)
	assert.InDelta(t, 0.3571, q, 0.01)
}

func TestModularity_SingleCommunityIsZero(t *testing.T) {
	t.Parallel()

	g := twoTriangles(t)
	// One community covering everything: Σ(A_ij − k_i k_j / 2E) over all
	// pairs is exactly 0 by the degree-sum identity.
	q := quality.Modularity(g, []int{0, 0, 0, 0, 0, 0})
	assert.InDelta(t, 0.0, q, 1e-12)
}

func TestModularity_DegenerateInputs(t *testing.T) {
	t.Parallel()

	empty := core.NewAdjacency(0, false)
	assert.Zero(t, quality.Modularity(empty, nil))

	edgeless := core.NewAdjacency(5, false)
	assert.Zero(t, quality.Modularity(edgeless, []int{0, 0, 1, 1, 1}))

	short := twoTriangles(t)
	assert.Zero(t, quality.Modularity(short, []int{0, 0}), "short membership reports zero, not panic")
}

func TestDegrees_Report(t *testing.T) {
	t.Parallel()

	g := twoTriangles(t)
	expected := []int{3, 3, 3, 3, 3, 3}
	r := quality.Degrees(g, expected)

	// Realized degrees: 2,2,3,3,2,2 → mean 14/6, sorted median idx 3.
	assert.InDelta(t, 3.0, r.ExpectedMean, 1e-12)
	assert.InDelta(t, 14.0/6.0, r.ActualMean, 1e-12)
	assert.Equal(t, 2, r.Min)
	assert.Equal(t, 3, r.Max)
	assert.Equal(t, 2, r.Median, "sorted [2 2 2 2 3 3], middle element index 3")
}

func TestCommunities_Report(t *testing.T) {
	t.Parallel()

	r := quality.Communities([][]int{{0, 1, 2}, {3, 4, 5, 6, 7}, {8, 9}})
	assert.Equal(t, 3, r.Count)
	assert.Equal(t, 2, r.Min)
	assert.Equal(t, 5, r.Max)
	assert.InDelta(t, 10.0/3.0, r.Mean, 1e-12)

	assert.Equal(t, quality.CommunityReport{}, quality.Communities(nil))
}

func TestAttributes_PerCommunitySummaries(t *testing.T) {
	t.Parallel()

	membership := []int{0, 1, 0, 1, 0}
	values := []float64{1.0, -1.0, 0.5, -0.5, 0.0}

	summaries := quality.Attributes(membership, values)
	require.Len(t, summaries, 2)

	assert.Equal(t, 0, summaries[0].Community)
	assert.Equal(t, 3, summaries[0].Count)
	assert.InDelta(t, 0.5, summaries[0].Mean, 1e-12)
	assert.InDelta(t, 0.0, summaries[0].Min, 1e-12)
	assert.InDelta(t, 1.0, summaries[0].Max, 1e-12)

	assert.Equal(t, 1, summaries[1].Community)
	assert.InDelta(t, -0.75, summaries[1].Mean, 1e-12)

	assert.Nil(t, quality.Attributes(nil, nil))
}

func TestLargestCommunities_OrderAndTies(t *testing.T) {
	t.Parallel()

	communities := [][]int{{0}, {1, 2, 3}, {4, 5}, {6, 7, 8}}
	assert.Equal(t, []int{1, 3, 2}, quality.LargestCommunities(communities, 3),
		"descending size, equal sizes keep lowest id first")
	assert.Equal(t, []int{1, 3, 2, 0}, quality.LargestCommunities(communities, 10))

	// The caller-side two-community check pattern.
	assert.Less(t, len(quality.LargestCommunities([][]int{{0, 1}}, 2)), 2)
}

func TestTopDegreeNodes(t *testing.T) {
	t.Parallel()

	g := twoTriangles(t)
	// Degrees: node2=3, node3=3, others 2. Top third of 6 nodes = 2 ids.
	assert.Equal(t, []int{2, 3}, quality.TopDegreeNodes(g, 1.0/3.0))
	assert.Nil(t, quality.TopDegreeNodes(g, 0))
	assert.Len(t, quality.TopDegreeNodes(g, 2.0), 6, "ratio beyond 1 clamps to all nodes")
}

func TestIsolatedCountAndDensity(t *testing.T) {
	t.Parallel()

	g := core.NewAdjacency(4, false)
	require.NoError(t, g.AddEdge(0, 1))
	assert.Equal(t, 2, quality.IsolatedCount(g))
	assert.InDelta(t, 2.0/12.0, quality.Density(g), 1e-12)

	d := core.NewAdjacency(3, true)
	require.NoError(t, d.AddEdge(0, 1))
	assert.InDelta(t, 1.0/6.0, quality.Density(d), 1e-12)
}
