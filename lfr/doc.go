// Package lfr implements the Lancichinetti–Fortunato–Radicchi (LFR)
// benchmark graph generator: power-law degree sequences, power-law
// community sizes, random node-to-community assignment, and a greedy
// deficit-first edge construction that approximates both the degree
// targets and a tunable intra/inter-community mixing ratio μ.
//
// The package offers the following key components:
//
//   - Params:    the nine constructed parameters (tau1, tau2, mu, degree and
//     community bounds, avgDegree, symmetrical), validated by New.
//   - Option:    functional options — WithSeed/WithRand for determinism,
//     WithAdjustThreshold/WithIterationFactor for the tuning
//     constants, WithLabelFunc for export labels.
//   - Generator: the engine. Generate(g) runs the five-stage pipeline into
//     any core.Graph host; read-only accessors expose the frozen
//     degree sequence, community sizes, membership and Stats.
//
// Pipeline (single-threaded, each stage consuming the previous stage's
// frozen output, all randomness from one seeded RNG):
//
//  1. power-law variate sampling (inverse transform, bounded, clamped)
//  2. degree sequence with a gently enforced average and parity fix
//  3. community sizes accumulated until they sum exactly to N
//  4. shuffled assignment of node ids to communities
//  5. greedy deficit-first edge construction under an iteration cap
//
// Guarantees:
//
//   - Determinism: identical seed and parameters ⇒ byte-identical degree
//     sequence, community assignment and edge set across runs.
//   - Hard invariants always hold: no self-loops, no duplicate edges, no
//     node's realized degree exceeding its target.
//   - Soft targets (total edge count, per-node intra/inter split) are
//     approximated from above, never exceeded. Shortfall is reported via
//     Stats, never as an error.
//
// Validation is two-phase and fail-fast with no partial side effects:
// New rejects out-of-domain parameters with sentinel errors identifying
// the violated constraint; Generate rejects hosts with fewer than
// MinNodes nodes or AvgDegree ≥ N before any allocation or random draw.
//
// See individual function documentation for detailed contracts and
// complexity notes.
package lfr
