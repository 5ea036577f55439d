package fixed

import (
	"fmt"
	"math/bits"
)

// Storage widths of the kernel's integer types, in bits.
const (
	CoordBits        = 16
	AxisDistanceBits = 16
	DistanceBits     = 32
	CountBits        = 32
	SumBits          = 32
)

// DistanceSeed is the initial running minimum for the nearest-centroid scan:
// the largest value of a 17-bit distance. Any real L1 distance between two
// 16-bit points is at most 2*65535 and therefore strictly smaller.
const DistanceSeed uint32 = 1<<(CoordBits+1) - 1

// Widths holds the number of bits each quantity needs for a configuration.
type Widths struct {
	Coord        int
	AxisDistance int
	Distance     int
	Count        int
	Sum          int
}

// Required derives the widths needed for n points with coordinates in [0, maxCoord].
// Negative inputs are treated as zero; callers validate signs separately.
func Required(n, maxCoord int) Widths {
	un := uint64(max(n, 0))
	uc := uint64(max(maxCoord, 0))

	coord := bits.Len64(uc)
	return Widths{
		Coord:        coord,
		AxisDistance: coord,
		Distance:     coord + 1,
		Count:        bits.Len64(un),
		Sum:          sumBits(un, uc),
	}
}

// sumBits returns bits(n*maxCoord), saturating at 128 on overflow of the product.
func sumBits(n, maxCoord uint64) int {
	hi, lo := bits.Mul64(n, maxCoord)
	if hi != 0 {
		return 64 + bits.Len64(hi)
	}
	return bits.Len64(lo)
}

// OverflowError reports a quantity whose required width exceeds its storage.
type OverflowError struct {
	Quantity  string
	Required  int
	Available int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s needs %d bits, storage has %d", e.Quantity, e.Required, e.Available)
}

// Check returns an *OverflowError for the first quantity that does not fit.
func (w Widths) Check() error {
	checks := []struct {
		name      string
		required  int
		available int
	}{
		{"coordinate", w.Coord, CoordBits},
		{"axis distance", w.AxisDistance, AxisDistanceBits},
		// One guard bit above the sum keeps the seed strictly larger than any distance.
		{"distance", w.Distance + 1, DistanceBits},
		{"member count", w.Count, CountBits},
		{"coordinate sum", w.Sum, SumBits},
	}
	for _, c := range checks {
		if c.required > c.available {
			return &OverflowError{Quantity: c.name, Required: c.required, Available: c.available}
		}
	}
	return nil
}

// MaxSum returns the largest coordinate sum a cluster can accumulate: every point
// in one cluster at the coordinate bound.
func MaxSum(n, maxCoord int) uint64 {
	return uint64(max(n, 0)) * uint64(max(maxCoord, 0))
}
