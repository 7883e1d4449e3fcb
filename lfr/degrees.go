// SPDX-License-Identifier: MIT
// Package: lfrbench/lfr
//
// degrees.go — stage 2: the target degree sequence.
//
// Contract:
//   - Every entry lies in [MinDegree, MaxDegree].
//   - The mean approximates AvgDegree: if the sampled mean deviates by at
//     least adjustThreshold (relative), one multiplicative correction
//     clamped to [adjustFactorMin, adjustFactorMax] is applied and entries
//     are re-clamped. The bounded correction preserves the power-law shape
//     rather than forcing an exact mean.
//   - Undirected hosts: the total degree is even. Parity is restored by
//     incrementing one node below MaxDegree — the randomly drawn start if
//     possible, otherwise the first such node scanning from id 0.
//
// Determinism: rng draws occur in a fixed order (one per node, then at
// most one for the parity start).

package lfr

import "math"

// buildDegreeSequence samples one target degree per node and gently
// reconciles the sequence with AvgDegree. Complexity: O(n).
func (gen *Generator) buildDegreeSequence(n int, directed bool) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = powerLawVariate(gen.cfg.rng, gen.params.MinDegree, gen.params.MaxDegree, gen.params.Tau1)
	}

	gen.rescaleTowardAverage(seq)

	if !directed {
		gen.restoreParity(seq)
	}
	return seq
}

// rescaleTowardAverage applies at most one bounded multiplicative
// correction pulling the sequence mean toward AvgDegree.
func (gen *Generator) rescaleTowardAverage(seq []int) {
	mean := intMean(seq)
	target := gen.params.AvgDegree
	if mean == 0 || math.Abs(mean-target)/target < gen.cfg.adjustThreshold {
		return // close enough; leave the sampled shape untouched
	}

	factor := target / mean
	if factor < adjustFactorMin {
		factor = adjustFactorMin
	} else if factor > adjustFactorMax {
		factor = adjustFactorMax
	}
	for i, d := range seq {
		seq[i] = clampInt(int(math.Round(float64(d)*factor)), gen.params.MinDegree, gen.params.MaxDegree)
	}
}

// restoreParity makes the total degree even for undirected hosts by
// incrementing one node that is still below MaxDegree.
func (gen *Generator) restoreParity(seq []int) {
	total := 0
	for _, d := range seq {
		total += d
	}
	if total%2 == 0 {
		return
	}

	start := gen.cfg.rng.Intn(len(seq))
	if seq[start] < gen.params.MaxDegree {
		seq[start]++
		return
	}
	// Randomly drawn node is saturated: deterministic fallback scan.
	for i := range seq {
		if seq[i] < gen.params.MaxDegree {
			seq[i]++
			return
		}
	}
	// All nodes at MaxDegree: MaxDegree·n is odd only when both are odd;
	// the sequence stays odd and edge construction absorbs the shortfall.
}

// intMean returns the arithmetic mean of s, 0 for an empty slice.
func intMean(s []int) float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0
	for _, v := range s {
		sum += v
	}
	return float64(sum) / float64(len(s))
}
