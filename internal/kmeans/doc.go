// Package kmeans implements the fixed-point k-means iteration kernel.
//
// One step is two engines run back to back:
//
//   - Assign: each point scans every centroid, keeps the first one at minimum
//     distance, and adds itself to that cluster's accumulators.
//   - Update: each centroid becomes the truncated integer mean of its members.
//     A centroid with no members keeps its previous value.
//
// All quantities use the widths documented in package fixed. Callers are
// expected to have validated sizes and coordinate bounds beforehand; the
// kernel itself has no runtime failure modes apart from cancellation.
package kmeans
