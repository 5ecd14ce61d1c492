package kmedoids

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// symmetryTolerance is the maximum |d(i,j) - d(j,i)| accepted by
// ValidateDistanceMatrix before the matrix is considered asymmetric.
const symmetryTolerance = 1e-12

// ValidateDistanceMatrix checks the preconditions K-Medoids places on a
// precomputed distance matrix: length n*n, finite non-negative entries, a
// zero diagonal, and symmetry within a small tolerance. All errors wrap
// ErrInvalidParameter.
func ValidateDistanceMatrix(distMatrix []float64, n int) error {
	if len(distMatrix) != n*n {
		return fmt.Errorf("kmedoids: distMatrix length %d does not match n*n = %d (n=%d): %w", len(distMatrix), n*n, n, ErrInvalidParameter)
	}
	for i := 0; i < n; i++ {
		if d := distMatrix[i*n+i]; d != 0 {
			return fmt.Errorf("kmedoids: distMatrix diagonal entry (%d,%d) is %g, want 0: %w", i, i, d, ErrInvalidParameter)
		}
		for j := i + 1; j < n; j++ {
			dij := distMatrix[i*n+j]
			dji := distMatrix[j*n+i]
			if dij < 0 || math.IsNaN(dij) || math.IsInf(dij, 0) {
				return fmt.Errorf("kmedoids: distMatrix entry (%d,%d) is %g, want finite and >= 0: %w", i, j, dij, ErrInvalidParameter)
			}
			if math.Abs(dij-dji) > symmetryTolerance {
				return fmt.Errorf("kmedoids: distMatrix is asymmetric at (%d,%d): %g vs %g: %w", i, j, dij, dji, ErrInvalidParameter)
			}
		}
	}
	return nil
}

// ClusterSymmetric performs K-Medoids clustering on a gonum symmetric
// matrix of pairwise distances. The Config.Metric field is ignored.
func ClusterSymmetric(d mat.Symmetric, cfg Config) (*Result, error) {
	n := d.SymmetricDim()
	distMatrix := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := d.At(i, j)
			distMatrix[i*n+j] = v
			distMatrix[j*n+i] = v
		}
	}
	return ClusterPrecomputed(distMatrix, n, cfg)
}
