// Package fixed derives and checks the integer widths used by the clustering kernel.
//
// The kernel stores every quantity in a fixed Go integer type. The widths a
// configuration actually needs are derived from the dataset size N and the
// coordinate bound, and a configuration is rejected up front if any of them
// exceeds its storage type:
//
//	quantity        required bits              storage
//	coordinate      bits(maxCoord)             uint16
//	axis distance   bits(maxCoord)             uint16
//	L1 distance     bits(maxCoord) + 1         uint32 (seeded at 17-bit max)
//	member count    bits(N)                    uint32
//	coordinate sum  bits(N * maxCoord)         uint32
package fixed
