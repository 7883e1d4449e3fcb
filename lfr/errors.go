// SPDX-License-Identifier: MIT
// Package: lfrbench/lfr
//
// errors.go — sentinel errors for the lfr package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach parameter context via fmt.Errorf("...: %w").
//   - The engine MUST NOT panic at runtime; validation panics are confined
//     to option constructors (WithX...).
//   - Edge-construction shortfall is NOT an error; it surfaces via Stats.

package lfr

import "errors"

// ErrBadExponent indicates a power-law exponent (tau1 or tau2) outside the
// open interval (1, +inf). The closed-form inverse transform degenerates at
// tau = 1, so the domain excludes it.
// Usage: if errors.Is(err, ErrBadExponent) { /* fix tau1/tau2 */ }.
var ErrBadExponent = errors.New("lfr: power-law exponent must be greater than 1")

// ErrBadMixing indicates a mixing parameter mu outside the closed
// interval [0, 1].
var ErrBadMixing = errors.New("lfr: mixing parameter out of range")

// ErrBadDegreeBounds indicates MinDegree < 1 or MaxDegree < MinDegree.
var ErrBadDegreeBounds = errors.New("lfr: invalid degree bounds")

// ErrBadAvgDegree indicates AvgDegree outside [MinDegree, MaxDegree].
var ErrBadAvgDegree = errors.New("lfr: average degree outside degree bounds")

// ErrBadCommunityBounds indicates MinCommunity < 1 or
// MaxCommunity < MinCommunity.
var ErrBadCommunityBounds = errors.New("lfr: invalid community size bounds")

// ErrNilGraph indicates Generate was invoked with a nil host graph.
var ErrNilGraph = errors.New("lfr: nil host graph")

// ErrTooFewNodes indicates the host graph has fewer than MinNodes nodes.
// LFR structure is meaningless on tiny graphs; the floor matches the
// generation-time validation contract.
// Usage: if errors.Is(err, ErrTooFewNodes) { /* grow the host graph */ }.
var ErrTooFewNodes = errors.New("lfr: too few nodes")

// ErrAvgDegreeTooDense indicates AvgDegree >= NodeCount, i.e. the requested
// average degree cannot be realized on a simple graph of that order.
var ErrAvgDegreeTooDense = errors.New("lfr: average degree must be less than node count")
