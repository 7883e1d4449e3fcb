// SPDX-License-Identifier: MIT
// Package: lfrbench/core
//
// adjacency.go — the built-in slice-of-maps Graph implementation.
//
// Representation:
//   - succ[u] holds the successor set of u (for undirected graphs, succ is
//     symmetric: v ∈ succ[u] ⇔ u ∈ succ[v]).
//   - pred[u] holds the predecessor set; allocated for directed graphs only.
//   - degree[u] caches the realized degree so Degree is O(1).
//
// Complexity:
//   - AddEdge / HasEdge: O(1) amortized.
//   - Neighbors: O(deg(u) log deg(u)) due to the deterministic sort.
//
// Concurrency: none. One generation run owns its graph exclusively
// (single-threaded pipeline); wrap externally if you need sharing.

package core

import "sort"

// Adjacency is the default in-memory Graph over dense int node ids.
// The zero value is not usable; construct via NewAdjacency.
type Adjacency struct {
	directed bool
	succ     []map[int]struct{}
	pred     []map[int]struct{} // nil unless directed
	degree   []int
	edges    int
}

// compile-time conformance check
var _ Graph = (*Adjacency)(nil)

// NewAdjacency creates an edgeless graph with n nodes, ids 0..n-1.
// n < 0 is treated as 0. Complexity: O(n) time and space.
func NewAdjacency(n int, directed bool) *Adjacency {
	if n < 0 {
		n = 0
	}
	g := &Adjacency{
		directed: directed,
		succ:     make([]map[int]struct{}, n),
		degree:   make([]int, n),
	}
	for i := range g.succ {
		g.succ[i] = make(map[int]struct{})
	}
	if directed {
		g.pred = make([]map[int]struct{}, n)
		for i := range g.pred {
			g.pred[i] = make(map[int]struct{})
		}
	}
	return g
}

// NodeCount reports the fixed number of nodes.
func (g *Adjacency) NodeCount() int { return len(g.succ) }

// Directed reports whether edges are ordered pairs.
func (g *Adjacency) Directed() bool { return g.directed }

// Nodes enumerates all node ids in ascending order.
func (g *Adjacency) Nodes() []int {
	ids := make([]int, len(g.succ))
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// AddEdge inserts u→v (or {u,v} when undirected), enforcing the
// simple-graph invariants. Degree bookkeeping: undirected edges increment
// both endpoints; directed edges increment the out-degree of u and the
// in-degree of v (both observed through Degree as total degree).
func (g *Adjacency) AddEdge(u, v int) error {
	if !g.inRange(u) || !g.inRange(v) {
		return ErrNodeOutOfRange
	}
	if u == v {
		return ErrSelfLoop
	}
	if _, dup := g.succ[u][v]; dup {
		return ErrDuplicateEdge
	}
	g.succ[u][v] = struct{}{}
	if g.directed {
		g.pred[v][u] = struct{}{}
	} else {
		g.succ[v][u] = struct{}{}
	}
	g.degree[u]++
	g.degree[v]++
	g.edges++
	return nil
}

// HasEdge reports whether u→v (or {u,v}) exists; false for ids out of range.
func (g *Adjacency) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	_, ok := g.succ[u][v]
	return ok
}

// Degree reports the realized degree of u; 0 for ids out of range.
func (g *Adjacency) Degree(u int) int {
	if !g.inRange(u) {
		return 0
	}
	return g.degree[u]
}

// Neighbors returns the successors of u in ascending id order.
// A fresh slice is returned; callers may mutate it freely.
func (g *Adjacency) Neighbors(u int) []int {
	if !g.inRange(u) {
		return nil
	}
	out := make([]int, 0, len(g.succ[u]))
	for v := range g.succ[u] {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// EdgeCount reports the number of unique edges inserted so far.
func (g *Adjacency) EdgeCount() int { return g.edges }

func (g *Adjacency) inRange(u int) bool { return u >= 0 && u < len(g.succ) }
