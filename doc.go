// Package lfrbench generates synthetic benchmark graphs with planted,
// power-law-distributed community structure — the LFR
// (Lancichinetti–Fortunato–Radicchi) model — plus the quality metrics
// used to validate the result.
//
// 🚀 What is lfrbench?
//
//	A deterministic, seed-reproducible generator of community-structured
//	graphs for evaluating algorithms that depend on realistic topology
//	(community detection, epidemic/opinion propagation):
//		• Power-law degree sequences with a gently enforced average degree
//		• Power-law community sizes with an emergent community count
//		• Greedy deficit-first edge construction honoring a mixing parameter μ
//		• Modularity, degree and community statistics
//		• GML / CSV export with round-trip readers
//		• A Barabási–Albert alternative topology for baseline comparisons
//
// ✨ Why choose lfrbench?
//
//   - Deterministic – one seeded RNG per run; identical seed ⇒ identical graph
//   - Portable – the engine writes into a narrow graph capability interface,
//     with adapters for a built-in adjacency store and gonum's simple graphs
//   - Honest – degree targets and edge mix are approximated from above,
//     never exceeded; shortfall is reported as a statistic, not an error
//
// Everything is organized under flat subpackages:
//
//	core/      — the Graph capability seam, adjacency store, gonum adapter
//	lfr/       — the LFR generation engine (sampling, communities, edges)
//	quality/   — modularity, degree/community/attribute reports
//	export/    — GML and CSV writers + readers for the fixed schemas
//	scalefree/ — Barabási–Albert preferential-attachment generator
//	cmd/       — the lfrgen command-line front end
//
// Quick start:
//
//	g := core.NewAdjacency(1000, false)
//	gen, err := lfr.New(lfr.Params{
//		Tau1: 2.5, Tau2: 1.5, Mu: 0.2,
//		MinDegree: 5, MaxDegree: 20, AvgDegree: 10,
//		MinCommunity: 10, MaxCommunity: 50,
//	}, lfr.WithSeed(42))
//	if err != nil { ... }
//	if err := gen.Generate(g); err != nil { ... }
//	q := quality.Modularity(g, gen.Membership())
//
//	go get github.com/katalvlaran/lfrbench
package lfrbench
