// SPDX-License-Identifier: MIT
// Package core_test verifies the Graph seam contracts on the built-in
// Adjacency implementation: simple-graph invariants, degree bookkeeping,
// and deterministic neighbor ordering.

package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/lfrbench/core"
)

// TestAdjacency_Invariants locks in self-loop/duplicate/range rejection
// for both directedness modes.
func TestAdjacency_Invariants(t *testing.T) {
	t.Parallel()

	for _, directed := range []bool{false, true} {
		g := core.NewAdjacency(5, directed)

		if err := g.AddEdge(0, 0); !errors.Is(err, core.ErrSelfLoop) {
			t.Errorf("directed=%v: AddEdge(0,0) = %v, want ErrSelfLoop", directed, err)
		}
		if err := g.AddEdge(-1, 2); !errors.Is(err, core.ErrNodeOutOfRange) {
			t.Errorf("directed=%v: AddEdge(-1,2) = %v, want ErrNodeOutOfRange", directed, err)
		}
		if err := g.AddEdge(1, 5); !errors.Is(err, core.ErrNodeOutOfRange) {
			t.Errorf("directed=%v: AddEdge(1,5) = %v, want ErrNodeOutOfRange", directed, err)
		}
		if err := g.AddEdge(1, 2); err != nil {
			t.Fatalf("directed=%v: AddEdge(1,2) = %v, want nil", directed, err)
		}
		if err := g.AddEdge(1, 2); !errors.Is(err, core.ErrDuplicateEdge) {
			t.Errorf("directed=%v: duplicate AddEdge(1,2) = %v, want ErrDuplicateEdge", directed, err)
		}
		if g.EdgeCount() != 1 {
			t.Errorf("directed=%v: EdgeCount = %d, want 1", directed, g.EdgeCount())
		}
	}
}

// TestAdjacency_UndirectedSymmetry checks that one undirected insertion is
// visible from both endpoints and counts once.
func TestAdjacency_UndirectedSymmetry(t *testing.T) {
	t.Parallel()

	g := core.NewAdjacency(4, false)
	if err := g.AddEdge(2, 0); err != nil {
		t.Fatalf("AddEdge(2,0): %v", err)
	}

	if !g.HasEdge(2, 0) || !g.HasEdge(0, 2) {
		t.Error("undirected edge should be visible in both directions")
	}
	if err := g.AddEdge(0, 2); !errors.Is(err, core.ErrDuplicateEdge) {
		t.Errorf("reversed duplicate = %v, want ErrDuplicateEdge", err)
	}
	if g.Degree(0) != 1 || g.Degree(2) != 1 {
		t.Errorf("degrees = (%d,%d), want (1,1)", g.Degree(0), g.Degree(2))
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
}

// TestAdjacency_DirectedDegrees checks ordered-pair semantics: the reverse
// edge is distinct and Degree reports in+out.
func TestAdjacency_DirectedDegrees(t *testing.T) {
	t.Parallel()

	g := core.NewAdjacency(3, true)
	if err := g.AddEdge(0, 1); err != nil {
		t.Fatalf("AddEdge(0,1): %v", err)
	}
	if g.HasEdge(1, 0) {
		t.Error("directed HasEdge(1,0) should be false before reverse insertion")
	}
	if err := g.AddEdge(1, 0); err != nil {
		t.Fatalf("reverse AddEdge(1,0): %v", err)
	}

	// 0→1 and 1→0: both endpoints have in-degree 1 and out-degree 1.
	if g.Degree(0) != 2 || g.Degree(1) != 2 {
		t.Errorf("degrees = (%d,%d), want (2,2)", g.Degree(0), g.Degree(1))
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d, want 2", g.EdgeCount())
	}
}

// TestAdjacency_NeighborsSorted anchors the ascending-id enumeration order
// that export and statistics rely on.
func TestAdjacency_NeighborsSorted(t *testing.T) {
	t.Parallel()

	g := core.NewAdjacency(6, false)
	for _, v := range []int{5, 1, 3} {
		if err := g.AddEdge(0, v); err != nil {
			t.Fatalf("AddEdge(0,%d): %v", v, err)
		}
	}

	got := g.Neighbors(0)
	want := []int{1, 3, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(0) = %v, want %v", got, want)
	}
	if nodes := g.Nodes(); !reflect.DeepEqual(nodes, []int{0, 1, 2, 3, 4, 5}) {
		t.Errorf("Nodes() = %v, want 0..5", nodes)
	}
}
