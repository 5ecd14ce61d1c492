package kmedoids

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// closestMedoid returns the medoid nearest to point and its distance.
// Medoids are scanned in slice order, first wins on ties. Returns (-1, +Inf)
// for an empty medoid slice.
func closestMedoid(distMatrix []float64, n int, medoids []int, point int) (int, float64) {
	best := -1
	bestDist := math.Inf(1)
	for _, m := range medoids {
		if d := distMatrix[m*n+point]; d < bestDist {
			best = m
			bestDist = d
		}
	}
	return best, bestDist
}

// closestUnassigned returns the unassigned point nearest to medoid and its
// distance. Points are scanned in ascending index order, first wins on ties.
// Returns (-1, +Inf) if every point is assigned.
func closestUnassigned(distMatrix []float64, n int, medoid int, assigned []bool) (int, float64) {
	best := -1
	bestDist := math.Inf(1)
	for p := 0; p < n; p++ {
		if assigned[p] {
			continue
		}
		if d := distMatrix[medoid*n+p]; d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best, bestDist
}

// assignClusters builds a full clustering for the given medoids and returns
// it with its configuration cost.
//
// Assignment is round-robin: every medoid starts as the sole member of its
// own cluster, then the medoids take turns claiming their closest
// still-unassigned point until all n points are placed. Clusters therefore
// grow at roughly even rates; a point can end up with a medoid that is not
// its globally nearest one.
//
// The returned clusters are index-aligned with medoids, each listing the
// medoid first and then its members in claim order. Cost is the sum over
// clusters of the mean point-to-medoid distance, the medoid contributing a
// zero term.
func assignClusters(distMatrix []float64, n int, medoids []int) (clusters [][]int, cost float64) {
	assigned := make([]bool, n)
	clusters = make([][]int, len(medoids))
	dists := make([][]float64, len(medoids))
	for i, m := range medoids {
		clusters[i] = []int{m}
		dists[i] = []float64{0}
		assigned[m] = true
	}

	remaining := n - len(medoids)
	for remaining > 0 {
		for i, m := range medoids {
			if remaining == 0 {
				break
			}
			p, d := closestUnassigned(distMatrix, n, m, assigned)
			if p < 0 {
				break
			}
			clusters[i] = append(clusters[i], p)
			dists[i] = append(dists[i], d)
			assigned[p] = true
			remaining--
		}
	}

	for i := range dists {
		cost += stat.Mean(dists[i], nil)
	}
	return clusters, cost
}
