package kmedoids

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"time"
)

// ErrInvalidParameter is wrapped by all configuration and input validation
// errors. Test with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// Config controls K-Medoids clustering behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// NumClusters is the number of clusters (and medoids) to produce.
	// Must be >= 1 and strictly less than the number of points. Default: 2.
	NumClusters int

	// StartProb and EndProb bound the percentile window used during medoid
	// seeding: each new medoid is drawn uniformly from the points whose
	// distance to their closest existing medoid falls in the
	// [StartProb, EndProb] percentile range. Must satisfy
	// 0 <= StartProb < EndProb <= 1. Defaults: 0.90, 0.99.
	StartProb float64
	EndProb   float64

	// MaxIterations caps the number of refinement passes. 0 means no
	// refinement: the result reflects seeding and initial assignment only.
	// Must be >= 0. Default: 10.
	MaxIterations int

	// Tolerance is the improvement threshold for convergence: refinement
	// stops once a full pass lowers the cost by no more than this amount.
	// Must be >= 0. Default: 0.01.
	Tolerance float64

	// RandomSeed seeds the random source used for medoid seeding, making
	// runs reproducible. 0 means seed from the current time.
	RandomSeed int64

	// Metric is the distance function used by Cluster to build the pairwise
	// distance matrix from raw data. Built-in: EuclideanMetric,
	// ManhattanMetric, CosineMetric, ChebyshevMetric, MinkowskiMetric.
	// Use DistanceFunc to wrap a custom function. Ignored by
	// ClusterPrecomputed and ClusterSymmetric. Default: EuclideanMetric.
	Metric DistanceMetric

	// Workers controls the number of goroutines used for pairwise distance
	// computation in Cluster and for candidate-swap evaluation during
	// refinement. The clustering result is identical for any value.
	// 0 means use runtime.NumCPU().
	Workers int

	// ValidateMatrix enables checking that a precomputed distance matrix is
	// non-negative, symmetric, and zero on the diagonal before clustering.
	// Off by default: these are otherwise documented preconditions.
	ValidateMatrix bool
}

// Result contains the output of a K-Medoids run.
type Result struct {
	// Medoids is the final set of medoid point indices, in the order the
	// algorithm holds them (seeding order, with swaps applied in place).
	Medoids []int

	// Clusters maps each medoid index to the sorted indices of the points
	// assigned to it. Every medoid is a member of its own cluster, and the
	// clusters partition all n points.
	Clusters map[int][]int

	// Cost is the configuration cost of the final clustering: the sum over
	// clusters of the mean point-to-medoid distance within the cluster.
	Cost float64

	// Iterations is the number of refinement passes that ran.
	Iterations int

	// Converged reports whether refinement stopped because a full pass
	// improved the cost by no more than Tolerance, rather than by hitting
	// MaxIterations.
	Converged bool
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		NumClusters:   2,
		StartProb:     0.90,
		EndProb:       0.99,
		MaxIterations: 10,
		Tolerance:     0.01,
		Metric:        EuclideanMetric{},
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
// MaxIterations and Tolerance are left alone: zero is meaningful for both.
func applyDefaults(cfg *Config) {
	if cfg.NumClusters == 0 {
		cfg.NumClusters = 2
	}
	if cfg.StartProb == 0 && cfg.EndProb == 0 {
		cfg.StartProb = 0.90
		cfg.EndProb = 0.99
	}
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.RandomSeed == 0 {
		cfg.RandomSeed = time.Now().UnixNano()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive
// error if not. Checks that depend on the point count live in
// clusterFromDistMatrix.
func validateConfig(cfg *Config) error {
	if cfg.NumClusters < 1 {
		return fmt.Errorf("kmedoids: NumClusters must be >= 1, got %d: %w", cfg.NumClusters, ErrInvalidParameter)
	}
	if cfg.StartProb < 0 {
		return fmt.Errorf("kmedoids: StartProb must be >= 0, got %f: %w", cfg.StartProb, ErrInvalidParameter)
	}
	if cfg.EndProb > 1 {
		return fmt.Errorf("kmedoids: EndProb must be <= 1, got %f: %w", cfg.EndProb, ErrInvalidParameter)
	}
	if cfg.StartProb >= cfg.EndProb {
		return fmt.Errorf("kmedoids: StartProb must be < EndProb, got [%f, %f]: %w", cfg.StartProb, cfg.EndProb, ErrInvalidParameter)
	}
	if cfg.MaxIterations < 0 {
		return fmt.Errorf("kmedoids: MaxIterations must be >= 0, got %d: %w", cfg.MaxIterations, ErrInvalidParameter)
	}
	if cfg.Tolerance < 0 {
		return fmt.Errorf("kmedoids: Tolerance must be >= 0, got %f: %w", cfg.Tolerance, ErrInvalidParameter)
	}
	return nil
}

// Cluster performs K-Medoids clustering on raw coordinate data.
// Each element is a point (float64 slice); all points must have the same
// dimensionality. The pairwise distance matrix is computed with cfg.Metric
// using cfg.Workers goroutines. Returns an error if the config is invalid.
func Cluster(data [][]float64, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := len(data)
	if n == 0 {
		return nil, fmt.Errorf("kmedoids: data must contain at least one point: %w", ErrInvalidParameter)
	}

	dims := len(data[0])
	flatData := make([]float64, n*dims)
	for i, row := range data {
		copy(flatData[i*dims:], row)
	}

	distMatrix := ComputePairwiseDistancesParallel(flatData, n, dims, cfg.Metric, cfg.Workers)
	return clusterFromDistMatrix(distMatrix, n, cfg)
}

// ClusterPrecomputed performs K-Medoids clustering on a precomputed distance
// matrix. distMatrix is a flat []float64 of length n*n in row-major order,
// where distMatrix[i*n+j] is the distance between points i and j. The matrix
// must be non-negative, symmetric, and zero on the diagonal; set
// cfg.ValidateMatrix to have this enforced. The Config.Metric field is
// ignored since distances are already computed.
//
// Assignment grows clusters round-robin (each medoid claims its closest
// unassigned point in turn) rather than sending every point to its globally
// nearest medoid. The resulting cost can therefore exceed what textbook PAM
// assignment would give, in exchange for evenly sized clusters.
func ClusterPrecomputed(distMatrix []float64, n int, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	if len(distMatrix) != n*n {
		return nil, fmt.Errorf("kmedoids: distMatrix length %d does not match n*n = %d (n=%d): %w", len(distMatrix), n*n, n, ErrInvalidParameter)
	}

	return clusterFromDistMatrix(distMatrix, n, cfg)
}

// clusterFromDistMatrix runs the K-Medoids pipeline: n-dependent validation,
// seeding, initial assignment, then swap refinement.
func clusterFromDistMatrix(distMatrix []float64, n int, cfg Config) (*Result, error) {
	if cfg.NumClusters >= n {
		return nil, fmt.Errorf("kmedoids: NumClusters must be < number of points, got k=%d with n=%d: %w", cfg.NumClusters, n, ErrInvalidParameter)
	}
	if cfg.ValidateMatrix {
		if err := ValidateDistanceMatrix(distMatrix, n); err != nil {
			return nil, err
		}
	}

	rng := rand.New(rand.NewSource(cfg.RandomSeed))
	medoids := seedMedoids(distMatrix, n, cfg.NumClusters, cfg.StartProb, cfg.EndProb, rng)
	medoids, clusters, cost, iterations, converged := refine(distMatrix, n, medoids, cfg.MaxIterations, cfg.Tolerance, cfg.Workers)

	return &Result{
		Medoids:    medoids,
		Clusters:   clusterMap(medoids, clusters),
		Cost:       cost,
		Iterations: iterations,
		Converged:  converged,
	}, nil
}

// clusterMap converts the internal medoid-aligned cluster slices into the
// public medoid-keyed map, sorting each member list.
func clusterMap(medoids []int, clusters [][]int) map[int][]int {
	out := make(map[int][]int, len(medoids))
	for i, m := range medoids {
		members := make([]int, len(clusters[i]))
		copy(members, clusters[i])
		sort.Ints(members)
		out[m] = members
	}
	return out
}
