package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hupe1980/fxkmeans/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePoints(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePoints(&buf, []core.Point{core.P(1, 2), core.P(100, 0)}))
	assert.Equal(t, "1 2\n100 0\n", buf.String())
}

func TestDecodePoints(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		points, err := DecodePoints(strings.NewReader("1 2\n\n  100   0  \n"), 100)
		require.NoError(t, err)
		assert.Equal(t, []core.Point{core.P(1, 2), core.P(100, 0)}, points)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		points, _ := Generate(42, 50, 0, 100)
		var buf bytes.Buffer
		require.NoError(t, EncodePoints(&buf, points))

		got, err := DecodePoints(&buf, 100)
		require.NoError(t, err)
		assert.Equal(t, points, got)
	})

	tests := []struct {
		name  string
		input string
		line  int
		want  error
	}{
		{"OneField", "1 2\n3\n", 2, ErrMalformedLine},
		{"ThreeFields", "1 2 3\n", 1, ErrMalformedLine},
		{"NotInteger", "1 2\n\nx 4\n", 3, ErrMalformedLine},
		{"Negative", "-1 2\n", 1, ErrOutOfRange},
		{"AboveBound", "1 101\n", 1, ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePoints(strings.NewReader(tt.input), 100)
			require.ErrorIs(t, err, tt.want)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.line, pe.Line)
		})
	}
}

func TestAssignmentCodec(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeAssignment(&buf, []int{0, 0, 2, 2, 1}))
	assert.Equal(t, "0\n0\n2\n2\n1\n", buf.String())

	got, err := DecodeAssignment(&buf, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 2, 2, 1}, got)

	_, err = DecodeAssignment(strings.NewReader("0\n3\n"), 3)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = DecodeAssignment(strings.NewReader("0\n-1\n"), 0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = DecodeAssignment(strings.NewReader("0 1\n"), 0)
	assert.ErrorIs(t, err, ErrMalformedLine)

	got, err = DecodeAssignment(strings.NewReader("7\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, got)
}
