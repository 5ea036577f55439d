package distance

import (
	"fmt"
	"strings"

	"github.com/hupe1980/fxkmeans/core"
)

// AbsDiff returns |a - b| without leaving the unsigned domain.
func AbsDiff(a, b core.Coord) uint16 {
	if a >= b {
		return uint16(a - b)
	}
	return uint16(b - a)
}

// Manhattan calculates the L1 distance between two points.
// The 16-bit axis distances are summed into a wider type, so the result
// never wraps.
func Manhattan(a, b core.Point) uint32 {
	return uint32(AbsDiff(a.X, b.X)) + uint32(AbsDiff(a.Y, b.Y))
}

// Chebyshev calculates the L∞ distance between two points.
func Chebyshev(a, b core.Point) uint32 {
	return uint32(max(AbsDiff(a.X, b.X), AbsDiff(a.Y, b.Y)))
}

// Metric represents the distance metric used for point-to-centroid comparison.
type Metric int

const (
	MetricL1 Metric = iota
	MetricChebyshev
)

func (m Metric) String() string {
	switch m {
	case MetricL1:
		return "L1"
	case MetricChebyshev:
		return "Chebyshev"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseMetric parses a metric name, case-insensitively.
// "manhattan" is accepted as an alias for L1.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "l1", "manhattan":
		return MetricL1, nil
	case "chebyshev", "linf":
		return MetricChebyshev, nil
	default:
		return 0, fmt.Errorf("unknown metric %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Metric) MarshalText() ([]byte, error) {
	if _, err := Provider(m); err != nil {
		return nil, err
	}
	return []byte(strings.ToLower(m.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Metric) UnmarshalText(text []byte) error {
	parsed, err := ParseMetric(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Func is a function type for distance calculation.
type Func func(a, b core.Point) uint32

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL1:
		return Manhattan, nil
	case MetricChebyshev:
		return Chebyshev, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
