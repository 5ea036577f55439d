package core

import "fmt"

// Coord is a single unsigned 16-bit coordinate.
// All coordinate arithmetic in the kernel is bounded by this width.
type Coord uint16

// MaxCoord is the largest representable coordinate value.
const MaxCoord = ^Coord(0)

// Point is an immutable 2D point with bounded integer coordinates.
type Point struct {
	X, Y Coord
}

// P is shorthand for constructing a Point in tests and examples.
func P(x, y Coord) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Within reports whether both coordinates are <= bound.
func (p Point) Within(bound Coord) bool {
	return p.X <= bound && p.Y <= bound
}

// Clone returns a copy of pts. The kernel mutates centroid slices in place,
// so callers that need to keep the initial set copy it first.
func Clone(pts []Point) []Point {
	if pts == nil {
		return nil
	}
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}
