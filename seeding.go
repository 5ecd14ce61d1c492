package kmedoids

import (
	"math"
	"math/rand"
	"sort"
)

// seedMedoids picks k initial medoids with a K-Means++-flavored heuristic.
// The first medoid is uniform over all n points. Each subsequent medoid is
// drawn uniformly from the percentile window [startProb, endProb] of the
// non-medoid points sorted ascending by distance to their closest existing
// medoid, biasing the seeds toward mutually distant points without landing
// on the extreme tail. Requires 1 <= k < n.
func seedMedoids(distMatrix []float64, n, k int, startProb, endProb float64, rng *rand.Rand) []int {
	medoids := make([]int, 0, k)
	isMedoid := make([]bool, n)

	first := rng.Intn(n)
	medoids = append(medoids, first)
	isMedoid[first] = true

	type candidate struct {
		point int
		dist  float64
	}
	candidates := make([]candidate, 0, n-1)

	for len(medoids) < k {
		candidates = candidates[:0]
		for p := 0; p < n; p++ {
			if isMedoid[p] {
				continue
			}
			_, d := closestMedoid(distMatrix, n, medoids, p)
			candidates = append(candidates, candidate{point: p, dist: d})
		}

		// Ties broken by point index so the sorted order is deterministic.
		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].dist != candidates[j].dist {
				return candidates[i].dist < candidates[j].dist
			}
			return candidates[i].point < candidates[j].point
		})

		startIdx, endIdx := windowBounds(startProb, endProb, len(candidates))
		pick := candidates[startIdx+rng.Intn(endIdx-startIdx+1)].point
		medoids = append(medoids, pick)
		isMedoid[pick] = true
	}

	return medoids
}

// windowBounds maps the [startProb, endProb] percentile window onto index
// bounds over a sorted list of count candidates. Both bounds are clamped to
// valid indices and the window always contains at least one candidate.
func windowBounds(startProb, endProb float64, count int) (startIdx, endIdx int) {
	startIdx = int(math.Floor(startProb * float64(count)))
	endIdx = int(math.Round(endProb * float64(count-1)))
	if startIdx > count-1 {
		startIdx = count - 1
	}
	if endIdx > count-1 {
		endIdx = count - 1
	}
	if endIdx < startIdx {
		endIdx = startIdx
	}
	return startIdx, endIdx
}
