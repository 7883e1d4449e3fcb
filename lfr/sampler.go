// SPDX-License-Identifier: MIT
// Package: lfrbench/lfr
//
// sampler.go — bounded power-law variate sampling.
//
// Canonical model:
//   - Inverse-transform sampling on the continuous power law x^(-tau) over
//     [lo, hi], rounded to the nearest integer and clamped into [lo, hi].
//   - When |1 - tau| < tauUniformEpsilon the closed-form inverse divides by
//     ~zero; sampling degenerates to discrete uniform over [lo, hi].
//
// Determinism: pure function of (rng state, lo, hi, tau); exactly one rng
// draw per call on either branch.

package lfr

import (
	"math"
	"math/rand"
)

// powerLawVariate draws one integer from a bounded power-law distribution
// with exponent tau over [lo, hi]. Callers guarantee 1 ≤ lo ≤ hi and a
// non-nil rng (enforced upstream by Params.Validate and newGenConfig).
// Complexity: O(1).
func powerLawVariate(rng *rand.Rand, lo, hi int, tau float64) int {
	exponent := 1.0 - tau
	if math.Abs(exponent) < tauUniformEpsilon {
		// Degenerate exponent: log-uniform collapses to discrete uniform.
		return lo + rng.Intn(hi-lo+1)
	}

	loPow := math.Pow(float64(lo), exponent)
	hiPow := math.Pow(float64(hi), exponent)

	// Inverse transform: u ~ U[0,1) mapped through the power-law CDF.
	x := loPow + rng.Float64()*(hiPow-loPow)
	v := int(math.Round(math.Pow(x, 1.0/exponent)))

	return clampInt(v, lo, hi)
}

// clampInt confines v to the closed interval [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
