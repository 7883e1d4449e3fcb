// SPDX-License-Identifier: MIT
// Package: lfrbench/quality
//
// modularity.go — Newman modularity of a partitioned graph.
//
// Definition (full pairwise form):
//
//	Q = (1/2E) · Σ_{i,j} [A_ij − k_i·k_j / 2E] · δ(c_i, c_j)
//
// where A_ij is 1 iff an edge exists between i and j, k_i is node i's
// realized degree, E the realized edge count and δ the community match.
// The double sum runs over ALL ordered pairs including the diagonal
// (A_ii = 0 on simple graphs; the diagonal contributes only the
// −k_i²/2E expectation term, per the canonical definition).
//
// Complexity: O(N²) pairs — deliberate; the benchmark graphs this package
// validates are small enough that clarity beats a sparse formulation.

package quality

import "github.com/katalvlaran/lfrbench/core"

// Modularity computes Q for g under the node → community id mapping.
// membership must cover every node id in [0, NodeCount()); an empty
// mapping or an edgeless graph yields 0.
func Modularity(g core.Graph, membership []int) float64 {
	n := g.NodeCount()
	edges := g.EdgeCount()
	if n == 0 || edges == 0 || len(membership) < n {
		return 0
	}

	// Degrees are cached once so the pair loop stays allocation-free.
	degree := make([]float64, n)
	for u := 0; u < n; u++ {
		degree[u] = float64(g.Degree(u))
	}

	twoE := 2.0 * float64(edges)
	var q float64
	for i := 0; i < n; i++ {
		ci := membership[i]
		for j := 0; j < n; j++ {
			if membership[j] != ci {
				continue
			}
			var adj float64
			if g.HasEdge(i, j) {
				adj = 1
			}
			q += adj - degree[i]*degree[j]/twoE
		}
	}
	return q / twoE
}
