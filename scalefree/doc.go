// SPDX-License-Identifier: MIT
// Package: lfrbench/scalefree
//
// Package scalefree grows scale-free topologies by preferential
// attachment (the Barabási–Albert process). It serves as a companion
// generator to the community-structured benchmark: the same graph
// hosts and export tooling apply, but the result has a power-law
// degree tail with no planted communities.
//
// Contract:
//   - The host graph must be undirected and empty; nodes are attached
//     in id order, each connecting m = max(1, round(avg/2)) edges to
//     earlier nodes chosen with probability proportional to degree.
//   - Graphs with at most m0 = max(m+1, 3) nodes degenerate to a
//     complete graph.
//
// Determinism: all randomness flows through the caller's *rand.Rand.
package scalefree
