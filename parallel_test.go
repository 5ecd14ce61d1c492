package kmedoids

import "testing"

func TestComputePairwiseDistancesParallel_BitwiseIdentical(t *testing.T) {
	data := []float64{
		0, 0,
		3, 0,
		0, 4,
		1, 1,
		5, 5,
	}
	n, dims := 5, 2
	metric := EuclideanMetric{}

	sequential := ComputePairwiseDistances(data, n, dims, metric)

	for _, workers := range []int{1, 2, 4, 16} {
		parallel := ComputePairwiseDistancesParallel(data, n, dims, metric, workers)

		if len(parallel) != len(sequential) {
			t.Fatalf("workers=%d: length mismatch %d != %d", workers, len(parallel), len(sequential))
		}
		for i := range sequential {
			if parallel[i] != sequential[i] {
				t.Errorf("workers=%d: result[%d] = %v, expected %v (bitwise)",
					workers, i, parallel[i], sequential[i])
			}
		}
	}
}

func TestComputePairwiseDistancesParallel_SinglePoint(t *testing.T) {
	data := []float64{1, 2}
	result := ComputePairwiseDistancesParallel(data, 1, 2, EuclideanMetric{}, 4)
	if len(result) != 1 || result[0] != 0 {
		t.Errorf("expected [0], got %v", result)
	}
}

func TestEvaluateSwapsParallel_MatchesSequential(t *testing.T) {
	dm := lineMatrix5()
	medoids := []int{1, 3}
	pairs := enumerateSwaps(medoids, 5)

	seqCosts, seqClusters := evaluateSwaps(dm, 5, medoids, pairs)
	parCosts, parClusters := evaluateSwapsParallel(dm, 5, medoids, pairs)

	for i := range pairs {
		if seqCosts[i] != parCosts[i] {
			t.Errorf("pair %v: parallel cost %v, sequential %v", pairs[i], parCosts[i], seqCosts[i])
		}
		if len(seqClusters[i]) != len(parClusters[i]) {
			t.Errorf("pair %v: cluster counts differ", pairs[i])
		}
	}
}
