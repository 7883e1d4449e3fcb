// SPDX-License-Identifier: MIT
// Package: lfrbench/quality
//
// reports.go — degree, community and attribute summaries.
//
// Contract: every report is a pure read of its inputs; slice arguments are
// never retained or mutated. Ordering in returned slices is deterministic
// (ascending community id, or degree-descending with lowest-id tie-break)
// so reports are stable for equal graphs.

package quality

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lfrbench/core"
)

// DegreeReport compares the expected (target) degree sequence against the
// realized degrees of a finished graph.
type DegreeReport struct {
	ExpectedMean float64
	ActualMean   float64
	Min          int
	Median       int
	Max          int
}

// Degrees summarizes realized degrees against the expected sequence.
// The median is the sorted middle element (upper middle for even sizes).
// Complexity: O(N log N).
func Degrees(g core.Graph, expected []int) DegreeReport {
	n := g.NodeCount()
	if n == 0 {
		return DegreeReport{}
	}

	actual := make([]float64, n)
	sorted := make([]int, n)
	for u := 0; u < n; u++ {
		d := g.Degree(u)
		actual[u] = float64(d)
		sorted[u] = d
	}
	sort.Ints(sorted)

	expectedF := make([]float64, len(expected))
	for i, d := range expected {
		expectedF[i] = float64(d)
	}

	r := DegreeReport{
		ActualMean: stat.Mean(actual, nil),
		Min:        sorted[0],
		Median:     sorted[n/2],
		Max:        sorted[n-1],
	}
	if len(expectedF) > 0 {
		r.ExpectedMean = stat.Mean(expectedF, nil)
	}
	return r
}

// CommunityReport summarizes the size distribution of a partition.
type CommunityReport struct {
	Count int
	Min   int
	Max   int
	Mean  float64
}

// Communities summarizes the community member lists. Complexity: O(K).
func Communities(communities [][]int) CommunityReport {
	if len(communities) == 0 {
		return CommunityReport{}
	}
	sizes := make([]float64, len(communities))
	minSize, maxSize := len(communities[0]), len(communities[0])
	for i, members := range communities {
		s := len(members)
		sizes[i] = float64(s)
		if s < minSize {
			minSize = s
		}
		if s > maxSize {
			maxSize = s
		}
	}
	return CommunityReport{
		Count: len(communities),
		Min:   minSize,
		Max:   maxSize,
		Mean:  stat.Mean(sizes, nil),
	}
}

// AttributeSummary aggregates an externally attached scalar attribute
// (opinion, infection score, ...) over one community.
type AttributeSummary struct {
	Community int
	Count     int
	Mean      float64
	Min       float64
	Max       float64
}

// Attributes groups values by community and summarizes each group, in
// ascending community id order. values[i] is the attribute of node i;
// nodes beyond len(values) are ignored. Strictly observational — the
// generator never sees or sets node attributes. Complexity: O(N).
func Attributes(membership []int, values []float64) []AttributeSummary {
	n := len(membership)
	if n > len(values) {
		n = len(values)
	}
	if n == 0 {
		return nil
	}

	grouped := make(map[int][]float64)
	for i := 0; i < n; i++ {
		grouped[membership[i]] = append(grouped[membership[i]], values[i])
	}

	ids := make([]int, 0, len(grouped))
	for c := range grouped {
		ids = append(ids, c)
	}
	sort.Ints(ids)

	out := make([]AttributeSummary, 0, len(ids))
	for _, c := range ids {
		vals := grouped[c]
		out = append(out, AttributeSummary{
			Community: c,
			Count:     len(vals),
			Mean:      stat.Mean(vals, nil),
			Min:       floats.Min(vals),
			Max:       floats.Max(vals),
		})
	}
	return out
}

// LargestCommunities returns up to k community ids ordered by descending
// member count, ties broken by lowest id. Callers that need at least two
// communities for downstream seeding (opposing sub-populations) check
// len(...) >= 2 themselves — by contract that is not a generator error.
func LargestCommunities(communities [][]int, k int) []int {
	ids := make([]int, len(communities))
	for i := range ids {
		ids[i] = i
	}
	sort.SliceStable(ids, func(a, b int) bool {
		sa, sb := len(communities[ids[a]]), len(communities[ids[b]])
		if sa != sb {
			return sa > sb
		}
		return ids[a] < ids[b]
	})
	if k < len(ids) {
		ids = ids[:k]
	}
	return ids
}

// TopDegreeNodes returns the ⌊ratio·N⌋ highest-degree node ids, degree
// descending with lowest-id tie-break. Useful for hub-based seeding
// (opinion leaders). Complexity: O(N log N).
func TopDegreeNodes(g core.Graph, ratio float64) []int {
	n := g.NodeCount()
	if n == 0 || ratio <= 0 {
		return nil
	}
	count := int(float64(n) * ratio)
	if count > n {
		count = n
	}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	sort.SliceStable(ids, func(a, b int) bool {
		da, db := g.Degree(ids[a]), g.Degree(ids[b])
		if da != db {
			return da > db
		}
		return ids[a] < ids[b]
	})
	return ids[:count]
}

// IsolatedCount reports the number of zero-degree nodes. A healthy LFR
// run leaves none; a nonzero count flags construction starvation.
func IsolatedCount(g core.Graph) int {
	count := 0
	for u := 0; u < g.NodeCount(); u++ {
		if g.Degree(u) == 0 {
			count++
		}
	}
	return count
}

// Density reports 2E / (N·(N−1)) for undirected graphs and
// E / (N·(N−1)) for directed ones; 0 for graphs of order < 2.
func Density(g core.Graph) float64 {
	n := float64(g.NodeCount())
	if n < 2 {
		return 0
	}
	e := float64(g.EdgeCount())
	if !g.Directed() {
		e *= 2
	}
	return e / (n * (n - 1))
}
