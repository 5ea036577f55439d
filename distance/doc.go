// Package distance provides bounded-width integer distance calculations
// between 2D points.
//
// Every metric works on 16-bit unsigned coordinates without signed
// intermediates: each axis difference is computed as larger minus smaller,
// so it fits in 16 bits, and the result fits in 17 bits.
//
// # Supported Metrics
//
//   - MetricL1: Manhattan distance |dx| + |dy| (default)
//   - MetricChebyshev: max(|dx|, |dy|)
//
// # Usage
//
//	d := distance.Manhattan(core.P(1, 2), core.P(4, 0)) // 5
//	fn, err := distance.Provider(distance.MetricL1)
package distance
