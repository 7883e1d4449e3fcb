// Package export serializes a finished benchmark graph to GML and CSV,
// and parses those formats back for round-trip verification.
//
// The schemas are fixed for compatibility with downstream tooling and
// must not drift:
//
//	GML:       graph header (directed, comment, avgDegree, mu), one node
//	           block per node (id, label, community, degree), one edge
//	           block per unique edge (source, target, type ∈ intra|inter).
//	CSV nodes: id,label,community,degree,expected_degree
//	CSV edges: source,target,type,source_community,target_community
//
// Export is a thin adapter over the generator's query API and the graph
// capability seam; it performs no graph mutation and holds no state. The
// readers accept exactly what the writers emit (plus whitespace slack in
// GML) — they are round-trip verifiers, not general-purpose parsers.
package export
