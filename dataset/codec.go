package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/fxkmeans/core"
	"github.com/hupe1980/fxkmeans/internal/conv"
)

var (
	// ErrMalformedLine is returned for a line with the wrong number of fields
	// or a field that is not an integer.
	ErrMalformedLine = errors.New("malformed line")

	// ErrOutOfRange is returned for a coordinate or cluster id outside its bound.
	ErrOutOfRange = errors.New("value out of range")
)

// ParseError records the line a decode failed on.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EncodePoints writes one "x y" line per point.
func EncodePoints(w io.Writer, points []core.Point) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 16)
	for _, p := range points {
		buf = strconv.AppendUint(buf[:0], uint64(p.X), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendUint(buf, uint64(p.Y), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodePoints reads a point dump. Blank lines are skipped. Coordinates above
// maxCoord are rejected.
func DecodePoints(r io.Reader, maxCoord int) ([]core.Point, error) {
	bound := clampBound(maxCoord)

	var points []core.Point
	err := scanLines(r, func(line int, fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("%w: want 2 fields, got %d", ErrMalformedLine, len(fields))
		}
		x, err := parseCoord(fields[0], bound)
		if err != nil {
			return err
		}
		y, err := parseCoord(fields[1], bound)
		if err != nil {
			return err
		}
		points = append(points, core.P(x, y))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return points, nil
}

// EncodeAssignment writes one cluster id per line.
func EncodeAssignment(w io.Writer, assignment []int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 8)
	for _, id := range assignment {
		buf = strconv.AppendInt(buf[:0], int64(id), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodeAssignment reads an assignment dump. Ids must lie in [0, m); with
// m <= 0 only the lower bound is checked.
func DecodeAssignment(r io.Reader, m int) ([]int, error) {
	var assignment []int
	err := scanLines(r, func(line int, fields []string) error {
		if len(fields) != 1 {
			return fmt.Errorf("%w: want 1 field, got %d", ErrMalformedLine, len(fields))
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer", ErrMalformedLine, fields[0])
		}
		if id < 0 || (m > 0 && id >= m) {
			return fmt.Errorf("%w: cluster id %d", ErrOutOfRange, id)
		}
		assignment = append(assignment, id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assignment, nil
}

func parseCoord(s string, bound int) (core.Coord, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedLine, s)
	}
	if v > bound {
		return 0, fmt.Errorf("%w: coordinate %d exceeds %d", ErrOutOfRange, v, bound)
	}
	c, err := conv.IntToUint16(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	return core.Coord(c), nil
}

func scanLines(r io.Reader, fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if err := fn(line, fields); err != nil {
			return &ParseError{Line: line, Err: err}
		}
	}
	return sc.Err()
}
