// SPDX-License-Identifier: MIT
// Package: lfrbench/core
//
// api.go — the Graph capability interface and the package's sentinel errors.
//
// Design contract (strict):
//   - Node ids are dense ints in [0, NodeCount()); the node set is fixed at
//     construction time. Generators own all other state themselves.
//   - Implementations reject self-loops and duplicate edges with sentinel
//     errors; they never panic at runtime.
//   - Neighbors MUST be returned in ascending id order so that consumers
//     (export, statistics) produce byte-stable output for equal graphs.

package core

import "errors"

// Graph is the capability set a topology generator requires from its host
// graph. It is intentionally minimal: any external graph library can be
// adapted by implementing these eight methods (see Gonum for an example).
//
// For directed graphs, Neighbors(u) enumerates successors of u and
// Degree(u) is the total degree (in + out). For undirected graphs an edge
// {u,v} appears in both Neighbors(u) and Neighbors(v) and contributes one
// to each endpoint's degree.
type Graph interface {
	// NodeCount reports the fixed number of nodes N.
	NodeCount() int
	// Nodes enumerates all node ids in ascending order: 0..N-1.
	Nodes() []int
	// Directed reports whether edges are ordered pairs.
	Directed() bool
	// AddEdge inserts the edge u→v (or {u,v} when undirected).
	// Returns ErrNodeOutOfRange, ErrSelfLoop or ErrDuplicateEdge on violation.
	AddEdge(u, v int) error
	// HasEdge reports whether the edge u→v (or {u,v}) exists.
	// Out-of-range ids report false.
	HasEdge(u, v int) bool
	// Degree reports the realized degree of node u (in+out when directed).
	Degree(u int) int
	// Neighbors returns the successors of u in ascending id order.
	Neighbors(u int) []int
	// EdgeCount reports the number of unique edges inserted so far.
	EdgeCount() int
}

// ErrNodeOutOfRange indicates an edge endpoint outside [0, NodeCount()).
// Usage: if errors.Is(err, ErrNodeOutOfRange) { /* fix node ids */ }.
var ErrNodeOutOfRange = errors.New("core: node id out of range")

// ErrSelfLoop indicates an attempt to connect a node to itself.
// Self-loops are never admitted; the generators guarantee they are never
// requested, so seeing this error means a caller bug.
var ErrSelfLoop = errors.New("core: self-loop rejected")

// ErrDuplicateEdge indicates the edge already exists (same unordered pair
// for undirected graphs, same ordered pair for directed graphs).
var ErrDuplicateEdge = errors.New("core: duplicate edge rejected")
