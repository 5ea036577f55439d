//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToUint16(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint16(0)
		assert.NoError(t, err)
		assert.Equal(t, uint16(0), got)
	})

	t.Run("valid max uint16", func(t *testing.T) {
		got, err := IntToUint16(math.MaxUint16)
		assert.NoError(t, err)
		assert.Equal(t, uint16(math.MaxUint16), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint16(-1)
		assert.Error(t, err)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := IntToUint16(math.MaxUint16 + 1)
		assert.Error(t, err)
	})
}
