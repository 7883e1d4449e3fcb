// SPDX-License-Identifier: MIT
// Package: lfrbench/scalefree
//
// ba.go — preferential-attachment growth over a core.Graph host.

package scalefree

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lfrbench/core"
)

// ErrDirectedGraph is returned when the host graph is directed; the
// attachment process is defined for undirected graphs only.
var ErrDirectedGraph = errors.New("scalefree: directed host graph")

// ErrNotEmpty is returned when the host graph already has edges.
var ErrNotEmpty = errors.New("scalefree: host graph is not empty")

// ErrBadAvgDegree is returned when avgDegree is not positive.
var ErrBadAvgDegree = errors.New("scalefree: average degree must be positive")

// rouletteRetries bounds the rejection loop before falling back to a
// linear scan for the first eligible target.
const rouletteRetries = 100

// PreferentialAttachment grows a scale-free topology in g.
//
// Each new node attaches m edges to existing nodes with probability
// proportional to their current degree. When the graph is too small to
// seed the process (n <= m0), the result is a complete graph instead.
//
// Complexity: O(N·m·retries) expected; Determinism: fixed for a fixed rng.
func PreferentialAttachment(g core.Graph, avgDegree float64, rng *rand.Rand) error {
	if g.Directed() {
		return fmt.Errorf("PreferentialAttachment: %w", ErrDirectedGraph)
	}
	if g.EdgeCount() != 0 {
		return fmt.Errorf("PreferentialAttachment: %w", ErrNotEmpty)
	}
	if avgDegree <= 0 {
		return fmt.Errorf("PreferentialAttachment: avgDegree=%v: %w", avgDegree, ErrBadAvgDegree)
	}

	n := g.NodeCount()
	m := int(math.Round(avgDegree / 2))
	if m < 1 {
		m = 1
	}
	m0 := m + 1
	if m0 < 3 {
		m0 = 3
	}

	if n <= m0 {
		return complete(g, n)
	}

	// Seed: a complete graph over the first m0 nodes gives every early
	// node nonzero degree, so the roulette is well defined from the start.
	if err := complete(g, m0); err != nil {
		return err
	}

	totalDegree := m0 * (m0 - 1)
	for u := m0; u < n; u++ {
		attached := make(map[int]struct{}, m)
		for len(attached) < m {
			v := pickTarget(g, rng, u, totalDegree, attached)
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("PreferentialAttachment: %w", err)
			}
			attached[v] = struct{}{}
			totalDegree += 2
		}
	}
	return nil
}

// pickTarget selects an attachment target among nodes [0, u) with
// probability proportional to degree, skipping nodes already attached
// this round. After rouletteRetries rejections it falls back to the
// first eligible node in id order.
func pickTarget(g core.Graph, rng *rand.Rand, u, totalDegree int, attached map[int]struct{}) int {
	for try := 0; try < rouletteRetries; try++ {
		ticket := rng.Intn(totalDegree)
		acc := 0
		for v := 0; v < u; v++ {
			acc += g.Degree(v)
			if ticket < acc {
				if _, used := attached[v]; used {
					break // rejected, spin again
				}
				return v
			}
		}
	}
	for v := 0; v < u; v++ {
		if _, used := attached[v]; !used {
			return v
		}
	}
	return 0 // unreachable: u > len(attached) always holds
}

// complete wires every pair among the first k nodes.
func complete(g core.Graph, k int) error {
	for u := 0; u < k; u++ {
		for v := u + 1; v < k; v++ {
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("PreferentialAttachment: %w", err)
			}
		}
	}
	return nil
}
