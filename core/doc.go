// Package core defines the narrow graph capability seam the lfrbench
// generators write into, plus two interchangeable implementations.
//
// The seam is deliberately small: a generator needs to enumerate nodes,
// add an edge, test edge existence, read a node's realized degree, and
// know the graph's directedness and order. Anything that satisfies
// core.Graph can host a generated topology; the engine never assumes a
// concrete representation.
//
// Node identity is a dense integer in [0, NodeCount()). Modeling nodes as
// indices into parallel arrays (instead of pointers to node objects) keeps
// the generators allocation-light and makes determinism trivial to verify.
//
// Implementations:
//
//   - Adjacency — the built-in slice-of-maps store. O(1) edge insertion and
//     membership tests, sorted neighbor enumeration for stable output.
//   - Gonum — an adapter over gonum.org/v1/gonum/graph/simple, proving the
//     seam is portable across graph libraries. Use it when the generated
//     graph feeds directly into gonum algorithms.
//
// Both implementations enforce the simple-graph invariants the generators
// rely on: no self-loops and no duplicate edges (duplicate = same
// unordered pair for undirected graphs, same ordered pair for directed).
// Violations surface as sentinel errors (ErrSelfLoop, ErrDuplicateEdge,
// ErrNodeOutOfRange); branch with errors.Is.
package core
