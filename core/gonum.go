// SPDX-License-Identifier: MIT
// Package: lfrbench/core
//
// gonum.go — Graph adapter over gonum.org/v1/gonum/graph/simple.
//
// Purpose: prove the capability seam is portable across graph libraries and
// let generated topologies feed gonum algorithms with zero copying. The
// adapter pre-registers nodes 0..n-1 so the dense-id contract holds, and
// keeps its own edge counter (iterator length queries are not guaranteed
// O(1) across gonum versions).

package core

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Gonum adapts a simple.UndirectedGraph or simple.DirectedGraph to the
// lfrbench Graph seam. Construct via NewGonum; the zero value is unusable.
type Gonum struct {
	directed bool
	n        int
	ug       *simple.UndirectedGraph
	dg       *simple.DirectedGraph
	edges    int
}

var _ Graph = (*Gonum)(nil)

// NewGonum creates an edgeless gonum-backed graph with n nodes, ids 0..n-1.
// Complexity: O(n) time and space.
func NewGonum(n int, directed bool) *Gonum {
	if n < 0 {
		n = 0
	}
	g := &Gonum{directed: directed, n: n}
	if directed {
		g.dg = simple.NewDirectedGraph()
		for i := 0; i < n; i++ {
			g.dg.AddNode(simple.Node(i))
		}
	} else {
		g.ug = simple.NewUndirectedGraph()
		for i := 0; i < n; i++ {
			g.ug.AddNode(simple.Node(i))
		}
	}
	return g
}

// Undirected exposes the wrapped simple.UndirectedGraph (nil when directed).
// Intended for handing the finished topology to gonum algorithms.
func (g *Gonum) Undirected() *simple.UndirectedGraph { return g.ug }

// Directed exposes the wrapped simple.DirectedGraph (nil when undirected).
func (g *Gonum) DirectedGraph() *simple.DirectedGraph { return g.dg }

// NodeCount reports the fixed number of nodes.
func (g *Gonum) NodeCount() int { return g.n }

// Directed reports whether edges are ordered pairs.
func (g *Gonum) Directed() bool { return g.directed }

// Nodes enumerates all node ids in ascending order.
func (g *Gonum) Nodes() []int {
	ids := make([]int, g.n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// AddEdge inserts u→v (or {u,v}), enforcing the simple-graph invariants
// before touching the wrapped graph so failures have no side effects.
func (g *Gonum) AddEdge(u, v int) error {
	if !g.inRange(u) || !g.inRange(v) {
		return ErrNodeOutOfRange
	}
	if u == v {
		return ErrSelfLoop
	}
	if g.HasEdge(u, v) {
		return ErrDuplicateEdge
	}
	if g.directed {
		g.dg.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
	} else {
		g.ug.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
	}
	g.edges++
	return nil
}

// HasEdge reports whether u→v (or {u,v}) exists; false for ids out of range.
func (g *Gonum) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) || u == v {
		return false
	}
	if g.directed {
		return g.dg.HasEdgeFromTo(int64(u), int64(v))
	}
	return g.ug.HasEdgeBetween(int64(u), int64(v))
}

// Degree reports the realized degree of u (in+out when directed).
func (g *Gonum) Degree(u int) int {
	if !g.inRange(u) {
		return 0
	}
	if g.directed {
		return countNodes(g.dg.From(int64(u))) + countNodes(g.dg.To(int64(u)))
	}
	return countNodes(g.ug.From(int64(u)))
}

// Neighbors returns the successors of u in ascending id order.
func (g *Gonum) Neighbors(u int) []int {
	if !g.inRange(u) {
		return nil
	}
	var it graph.Nodes
	if g.directed {
		it = g.dg.From(int64(u))
	} else {
		it = g.ug.From(int64(u))
	}
	out := make([]int, 0)
	for it.Next() {
		out = append(out, int(it.Node().ID()))
	}
	sort.Ints(out)
	return out
}

// EdgeCount reports the number of unique edges inserted so far.
func (g *Gonum) EdgeCount() int { return g.edges }

func (g *Gonum) inRange(u int) bool { return u >= 0 && u < g.n }

// countNodes drains a gonum node iterator; Len is advisory only.
func countNodes(it graph.Nodes) int {
	n := 0
	for it.Next() {
		n++
	}
	return n
}
