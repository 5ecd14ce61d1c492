package kmedoids

import (
	"math/rand"
	"testing"
)

func TestSeedMedoids_DistinctCount(t *testing.T) {
	dm := lineMatrix5()
	for k := 1; k < 5; k++ {
		rng := rand.New(rand.NewSource(1))
		medoids := seedMedoids(dm, 5, k, 0.90, 0.99, rng)

		if len(medoids) != k {
			t.Fatalf("k=%d: got %d medoids", k, len(medoids))
		}
		seen := map[int]bool{}
		for _, m := range medoids {
			if m < 0 || m >= 5 {
				t.Errorf("k=%d: medoid %d out of range", k, m)
			}
			if seen[m] {
				t.Errorf("k=%d: duplicate medoid %d", k, m)
			}
			seen[m] = true
		}
	}
}

func TestSeedMedoids_Deterministic(t *testing.T) {
	dm := lineMatrix5()

	first := seedMedoids(dm, 5, 3, 0.90, 0.99, rand.New(rand.NewSource(99)))
	second := seedMedoids(dm, 5, 3, 0.90, 0.99, rand.New(rand.NewSource(99)))

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("medoid[%d] differs for identical seed: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestSeedMedoids_FavorsDistantPoints(t *testing.T) {
	// Two far-apart blobs: {0,1,2} near zero, {3,4,5} near 100. With the
	// default window the second medoid must come from the blob opposite the
	// first, since those points dominate the high-distance tail.
	data := []float64{0, 1, 2, 100, 101, 102}
	dm := ComputePairwiseDistances(data, 6, 1, EuclideanMetric{})

	for seed := int64(1); seed <= 20; seed++ {
		medoids := seedMedoids(dm, 6, 2, 0.90, 0.99, rand.New(rand.NewSource(seed)))
		a, b := medoids[0], medoids[1]
		if (a <= 2) == (b <= 2) {
			t.Errorf("seed %d: medoids %v are in the same blob", seed, medoids)
		}
	}
}

func TestWindowBounds(t *testing.T) {
	tests := []struct {
		name      string
		startProb float64
		endProb   float64
		count     int
		wantStart int
		wantEnd   int
	}{
		{"defaults count 10", 0.90, 0.99, 10, 9, 9},
		{"defaults count 100", 0.90, 0.99, 100, 90, 98},
		{"defaults count 1", 0.90, 0.99, 1, 0, 0},
		{"defaults count 2", 0.90, 0.99, 2, 1, 1},
		{"full window", 0.0, 1.0, 4, 0, 3},
		{"narrow low window", 0.0, 0.1, 10, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := windowBounds(tt.startProb, tt.endProb, tt.count)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("got [%d, %d], want [%d, %d]", start, end, tt.wantStart, tt.wantEnd)
			}
			if start > end {
				t.Errorf("empty window [%d, %d]", start, end)
			}
			if end > tt.count-1 {
				t.Errorf("end %d exceeds last index %d", end, tt.count-1)
			}
		})
	}
}
