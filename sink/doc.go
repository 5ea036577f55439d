// Package sink persists the clustering dumps of a run.
//
// A run writes up to four blobs under runs/<run-id>/ of a blobstore:
//
//	random_data.txt     the dataset, one "x y" line per point
//	random_centers.txt  the initial centroids
//	final_centers.txt   the centroids after convergence
//	final_ids.txt       the cluster id of every point
//
// Commit then points CURRENT at the run. Names get a .lz4 or .zst suffix when
// the run is written compressed; the loaders detect the suffix.
package sink
