package kmedoids

import (
	"math"
	"slices"
)

// swapCandidate is one (medoid, replacement point) pair of a refinement pass.
type swapCandidate struct {
	medoid int
	point  int
}

// enumerateSwaps lists every (medoid, non-medoid) pair for one refinement
// pass, medoid-major, non-medoids in ascending index order.
func enumerateSwaps(medoids []int, n int) []swapCandidate {
	isMedoid := make([]bool, n)
	for _, m := range medoids {
		isMedoid[m] = true
	}

	pairs := make([]swapCandidate, 0, len(medoids)*(n-len(medoids)))
	for _, m := range medoids {
		for p := 0; p < n; p++ {
			if !isMedoid[p] {
				pairs = append(pairs, swapCandidate{medoid: m, point: p})
			}
		}
	}
	return pairs
}

// evaluateSwaps computes the clustering and cost each candidate swap would
// produce against the current medoids. Pairs invalidated by an earlier
// accepted swap (medoid no longer current, or point already promoted) get a
// +Inf cost and a nil clustering so they can never be accepted.
func evaluateSwaps(distMatrix []float64, n int, medoids []int, pairs []swapCandidate) ([]float64, [][][]int) {
	costs := make([]float64, len(pairs))
	clusterings := make([][][]int, len(pairs))
	for i, pair := range pairs {
		costs[i], clusterings[i] = evaluateSwap(distMatrix, n, medoids, pair)
	}
	return costs, clusterings
}

// evaluateSwap computes the cost and clustering of a single candidate swap,
// or (+Inf, nil) if the pair no longer applies to the current medoids.
func evaluateSwap(distMatrix []float64, n int, medoids []int, pair swapCandidate) (float64, [][]int) {
	pos := slices.Index(medoids, pair.medoid)
	if pos < 0 || slices.Contains(medoids, pair.point) {
		return math.Inf(1), nil
	}
	candidate := slices.Clone(medoids)
	candidate[pos] = pair.point
	clusters, cost := assignClusters(distMatrix, n, candidate)
	return cost, clusters
}

// refine improves the seeded medoids by single-swap hill climbing: every
// (medoid, non-medoid) swap that strictly lowers the configuration cost is
// accepted immediately, and the pass keeps scanning the pre-pass pair
// enumeration against the updated medoids. Refinement stops once a full
// pass improves the cost by no more than tolerance, or after maxIterations
// passes.
//
// workers > 1 evaluates candidate swaps concurrently in chunks. Acceptance
// still happens in enumeration order against the exact state a sequential
// scan would see: once a swap in a chunk is accepted, the rest of the
// chunk's results are discarded and re-evaluated, so the outcome is
// identical for any workers value.
func refine(distMatrix []float64, n int, medoids []int, maxIterations int, tolerance float64, workers int) ([]int, [][]int, float64, int, bool) {
	clusters, cost := assignClusters(distMatrix, n, medoids)

	costChange := math.Inf(1)
	iterations := 0
	for iterations < maxIterations && costChange > tolerance {
		costChange = 0
		pairs := enumerateSwaps(medoids, n)

		i := 0
		for i < len(pairs) {
			end := min(i+max(workers, 1), len(pairs))

			var candCosts []float64
			var candClusters [][][]int
			if workers > 1 {
				candCosts, candClusters = evaluateSwapsParallel(distMatrix, n, medoids, pairs[i:end])
			} else {
				candCosts, candClusters = evaluateSwaps(distMatrix, n, medoids, pairs[i:end])
			}

			accepted := false
			for j, candCost := range candCosts {
				if candCost < cost {
					pair := pairs[i+j]
					next := slices.Clone(medoids)
					next[slices.Index(next, pair.medoid)] = pair.point

					costChange = cost - candCost
					medoids = next
					clusters = candClusters[j]
					cost = candCost

					i += j + 1
					accepted = true
					break
				}
			}
			if !accepted {
				i = end
			}
		}
		iterations++
	}

	return medoids, clusters, cost, iterations, costChange <= tolerance
}
