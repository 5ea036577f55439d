// Package fxkmeans provides deterministic k-means clustering of 2D points in
// bounded-width integer arithmetic.
//
// Every quantity the kernel touches has a statically known width: coordinates
// are 16-bit unsigned, L1 distances need 17 bits, and the per-cluster sums
// need bits(N * maxCoord). A Config whose worst case does not fit is rejected
// by New before anything runs, so the kernel itself cannot overflow.
//
// # Quick Start
//
//	cfg := fxkmeans.DefaultConfig() // 50 points, 3 clusters, coords in [0, 100]
//	c, err := fxkmeans.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	points, centers := dataset.Generate(fxkmeans.DefaultSeed, cfg.N, cfg.M, cfg.MaxCoord)
//	res, err := c.Run(ctx, points, centers)
//	fmt.Println(res.Iterations, res.Centers)
//
// # One Step
//
// Run repeats Step until no centroid moves. Step is exposed for drivers that
// want to own the loop:
//
//	for {
//	    assignment, changed, err := c.Step(points, centers)
//	    ...
//	    if !changed {
//	        break
//	    }
//	}
//
// # Semantics
//
//   - Distance is L1 by default (Chebyshev is available via Config.Metric).
//   - Ties go to the lowest centroid index.
//   - New centroids are integer means truncated toward zero.
//   - A cluster that no point chooses keeps its centroid for that step and is
//     not counted as a change.
//   - Run has no iteration cap unless WithMaxIterations is given.
//
// # Parallelism
//
// WithWorkers splits the assignment pass across goroutines. Partial
// accumulators are merged in a fixed order, so results are bit-identical to
// the sequential kernel.
//
// # Persistence
//
// The kernel does no I/O. Package sink writes the reference text dumps
// (dataset, initial centers, final centers, assignment) to a blobstore,
// which may be a local directory, S3 or MinIO.
package fxkmeans
