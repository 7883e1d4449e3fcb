// Package quality computes read-only validation metrics over a finished
// graph and its community assignment: modularity, degree statistics,
// community-size statistics and per-community summaries of externally
// attached node attributes.
//
// Nothing in this package mutates the graph or the assignment; every
// function is an observational query. The metrics exist to judge whether
// a generated topology is fit for purpose (e.g. that planted communities
// are denser inside than a random-graph expectation), and to support
// caller-side decisions the generator deliberately does not make — such
// as requiring at least two communities before seeding opposing
// sub-populations (see LargestCommunities).
//
// Aggregates lean on gonum (stat.Mean, floats.Min/Max); the median follows
// the sorted-middle-element convention so small even-sized samples match
// the original reporting.
package quality
