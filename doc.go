// Package kmedoids implements K-Medoids clustering via a randomized variant
// of PAM (Partitioning Around Medoids).
//
// K-Medoids partitions n points into k clusters, each represented by one of
// the points themselves (its medoid). It only requires pairwise distances,
// so it works where centroid-based methods like K-Means do not apply: the
// points never need a coordinate space, just a distance matrix.
//
// Basic usage with a precomputed distance matrix (flat, row-major, n×n):
//
//	cfg := kmedoids.DefaultConfig()
//	cfg.NumClusters = 3
//	result, err := kmedoids.ClusterPrecomputed(distMatrix, n, cfg)
//	// result.Medoids is the final medoid set (point indices)
//	// result.Clusters maps each medoid to its member point indices
//	// result.Cost is the summed mean intra-cluster distance
//
// For raw coordinate data, Cluster computes the distance matrix first:
//
//	result, err := kmedoids.Cluster(data, cfg)
//
// # Algorithm
//
// Initial medoids are seeded with a K-Means++-flavored heuristic: after a
// uniform first pick, each subsequent medoid is drawn uniformly from a
// percentile window (default 90th–99th) of the points sorted by distance to
// their closest existing medoid. This favors mutually distant seeds while
// avoiding extreme outliers.
//
// Points are then assigned to clusters round-robin: each medoid repeatedly
// claims its closest still-unassigned point until every point is placed.
// This grows clusters at roughly even rates, which differs from the textbook
// PAM rule of sending every point to its globally nearest medoid; see the
// assignment documentation on ClusterPrecomputed for the consequences.
//
// Refinement repeatedly tries swapping a medoid for a non-medoid, keeping
// any swap that strictly lowers the configuration cost, until a full pass
// improves the cost by no more than Tolerance or MaxIterations passes have
// run.
//
// Runs are deterministic for a fixed Config.RandomSeed.
package kmedoids
