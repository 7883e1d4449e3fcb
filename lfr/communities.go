// SPDX-License-Identifier: MIT
// Package: lfrbench/lfr
//
// communities.go — stages 3 and 4: community sizes and node assignment.
//
// Contract:
//   - Σ sizes == n exactly, always. The community count is NOT a declared
//     parameter; it is an emergent property of the random draws.
//   - Sizes are power-law distributed in [MinCommunity, MaxCommunity]
//     except for the reconciliation of the final remainder:
//     remainder ≥ MinCommunity → emitted as one more community;
//     otherwise merged into the previously emitted community;
//     no previous community → the remainder alone becomes the single
//     community regardless of the floor (the sum invariant wins).
//   - Assignment walks a uniformly shuffled id order, filling communities
//     in generation order (not sorted by size). Leftover ids caused by
//     rounding go one by one to the currently smallest community
//     (ties broken by lowest community id).

package lfr

// buildCommunitySizes accumulates power-law sizes until they sum exactly
// to n. Complexity: O(n / MinCommunity) draws.
func (gen *Generator) buildCommunitySizes(n int) []int {
	var sizes []int
	total := 0
	for total < n {
		size := powerLawVariate(gen.cfg.rng, gen.params.MinCommunity, gen.params.MaxCommunity, gen.params.Tau2)
		if total+size <= n {
			sizes = append(sizes, size)
			total += size
			continue
		}

		remaining := n - total
		switch {
		case remaining >= gen.params.MinCommunity:
			sizes = append(sizes, remaining)
		case len(sizes) > 0:
			sizes[len(sizes)-1] += remaining
		default:
			// First and only community smaller than the floor: emit the
			// remainder verbatim so Σ sizes == n still holds.
			sizes = append(sizes, remaining)
		}
		total = n
	}
	return sizes
}

// assignCommunities partitions shuffled node ids per the as-generated size
// list, producing membership (node → community) and the community member
// lists. Complexity: O(n + K).
func (gen *Generator) assignCommunities(n int) {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	gen.cfg.rng.Shuffle(n, func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	gen.membership = make([]int, n)
	gen.communities = make([][]int, len(gen.communitySizes))

	idx := 0
	for c, size := range gen.communitySizes {
		if size > n-idx {
			size = n - idx // clip the final community's intake
		}
		gen.communities[c] = make([]int, 0, size)
		for k := 0; k < size; k++ {
			id := order[idx]
			gen.communities[c] = append(gen.communities[c], id)
			gen.membership[id] = c
			idx++
		}
	}

	// Rounding leftovers: keep sizes balanced by feeding the smallest
	// community first.
	for idx < n {
		c := gen.smallestCommunity()
		id := order[idx]
		gen.communities[c] = append(gen.communities[c], id)
		gen.membership[id] = c
		idx++
	}
}

// smallestCommunity returns the id of the community with the fewest
// members, ties broken by lowest id.
func (gen *Generator) smallestCommunity() int {
	minID, minSize := 0, int(^uint(0)>>1)
	for c, members := range gen.communities {
		if len(members) < minSize {
			minID, minSize = c, len(members)
		}
	}
	return minID
}
