// SPDX-License-Identifier: MIT
// Package: lfrbench/lfr
//
// edges.go — stage 5: greedy deficit-first edge construction.
//
// Canonical model (configuration-model-style matching):
//   - A max-priority structure over node ids keyed by
//     deficit(u) = degreeSequence[u] − currentDegree[u] serves the
//     highest-deficit node first, saturating high-degree nodes before
//     their candidate pool shrinks. Ties break toward the lower id so the
//     processing order is fully deterministic.
//   - Each service splits the deficit round(deficit·(1−mu)) intra /
//     remainder inter, then walks shuffled candidate lists under a
//     saturation filter (candidates at their own target are skipped).
//   - Hard invariants always hold: no self-loop, no duplicate edge
//     (canonical key (min,max) for undirected, ordered pair for directed),
//     no node exceeding its own target degree.
//   - The loop is bounded by iterFactor × targetEdges iterations; shortfall
//     near the tail is accepted silently and reported via Stats only.
//
// Determinism: the heap order, the shuffles and the candidate walks are
// all pure functions of the seeded rng state and the frozen stage inputs.

package lfr

import (
	"math"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/lfrbench/core"
)

// edgeKey is the dedup identity of an edge: ordered for directed graphs,
// canonicalized (min,max) for undirected.
type edgeKey struct{ a, b int }

func canonicalKey(u, v int, directed bool) edgeKey {
	if directed || u < v {
		return edgeKey{u, v}
	}
	return edgeKey{v, u}
}

// constructEdges builds the graph toward the degree sequence and mixing
// ratio. Complexity: O(iterFactor · targetEdges · candidates) worst case.
func (gen *Generator) constructEdges(g core.Graph) {
	n := g.NodeCount()
	directed := g.Directed()

	totalDegree := 0
	for _, d := range gen.degreeSequence {
		totalDegree += d
	}
	targetEdges := totalDegree
	if !directed {
		targetEdges = totalDegree / 2
	}

	current := make([]int, n)
	seen := make(map[edgeKey]struct{}, targetEdges)

	// Max-deficit heap: gods comparators define a min-heap, so "smaller"
	// means higher deficit; equal deficits order by ascending id.
	deficitHeap := binaryheap.NewWith(func(a, b interface{}) int {
		u, v := a.(int), b.(int)
		du := gen.degreeSequence[u] - current[u]
		dv := gen.degreeSequence[v] - current[v]
		if du != dv {
			return dv - du
		}
		return u - v
	})
	for u := 0; u < n; u++ {
		deficitHeap.Push(u)
	}

	created, iterations := 0, 0
	maxIterations := gen.cfg.iterFactor * targetEdges

	for created < targetEdges && !deficitHeap.Empty() && iterations < maxIterations {
		item, ok := deficitHeap.Pop()
		if !ok {
			break
		}
		u := item.(int)

		deficit := gen.degreeSequence[u] - current[u]
		if deficit <= 0 {
			iterations++
			continue // already saturated; discard
		}

		intraTarget := int(math.Round(float64(deficit) * (1.0 - gen.params.Mu)))
		interTarget := deficit - intraTarget
		community := gen.membership[u]

		created += gen.addEdges(g, u, gen.intraCandidates(u, community), intraTarget, current, seen)
		created += gen.addEdges(g, u, gen.interCandidates(community), interTarget, current, seen)

		// Positive residual deficit: requeue for a future round. The
		// iteration cap guarantees termination even if the node starves.
		if current[u] < gen.degreeSequence[u] {
			deficitHeap.Push(u)
		}
		iterations++
	}

	gen.stats.TargetEdges = targetEdges
	gen.stats.RealizedEdges = g.EdgeCount()
	gen.stats.Iterations = iterations
}

// intraCandidates returns u's community mates (excluding u) in shuffled
// order. The saturation filter is applied at walk time, not here, so the
// rng draw count depends only on community sizes.
func (gen *Generator) intraCandidates(u, community int) []int {
	members := gen.communities[community]
	candidates := make([]int, 0, len(members)-1)
	for _, v := range members {
		if v != u {
			candidates = append(candidates, v)
		}
	}
	gen.shuffle(candidates)
	return candidates
}

// interCandidates returns all nodes outside the community, concatenated in
// community order then shuffled.
func (gen *Generator) interCandidates(community int) []int {
	var candidates []int
	for c, members := range gen.communities {
		if c != community {
			candidates = append(candidates, members...)
		}
	}
	gen.shuffle(candidates)
	return candidates
}

func (gen *Generator) shuffle(s []int) {
	gen.cfg.rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// addEdges walks the candidate list and inserts up to want edges from u,
// honoring the saturation filter, the dedup set and the host's own
// duplicate test. Returns the number of accepted edges (mirror edges for
// symmetrical directed hosts are bookkept but not counted).
func (gen *Generator) addEdges(g core.Graph, u int, candidates []int, want int, current []int, seen map[edgeKey]struct{}) int {
	if want <= 0 || len(candidates) == 0 {
		return 0
	}
	directed := g.Directed()

	added := 0
	for _, v := range candidates {
		if added >= want {
			break
		}
		if current[v] >= gen.degreeSequence[v] {
			continue // candidate saturated
		}
		key := canonicalKey(u, v, directed)
		if _, dup := seen[key]; dup {
			continue
		}
		if g.HasEdge(u, v) {
			continue // host already carries it (e.g. pre-seeded graphs)
		}
		if err := g.AddEdge(u, v); err != nil {
			continue // host rejected; treat like any failed candidate
		}
		seen[key] = struct{}{}
		current[u]++
		if !directed {
			current[v]++
		} else if gen.params.Symmetrical && !g.HasEdge(v, u) {
			if err := g.AddEdge(v, u); err == nil {
				seen[edgeKey{v, u}] = struct{}{}
				current[v]++
			}
		}
		added++
	}
	return added
}
