package compress

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	payload := []byte(strings.Repeat("12 34\n56 78\n", 500))

	for _, typ := range []Type{None, LZ4, ZSTD} {
		t.Run(typ.String(), func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewWriter(&buf, typ)
			require.NoError(t, err)
			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			if typ != None {
				assert.Less(t, buf.Len(), len(payload))
			}

			r, err := NewReader(&buf, typ)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())

			assert.Equal(t, payload, got)
		})
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"", None},
		{"none", None},
		{"LZ4", LZ4},
		{"zstd", ZSTD},
		{"zst", ZSTD},
	}
	for _, tt := range tests {
		got, err := ParseType(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseType("gzip")
	assert.Error(t, err)
}

func TestFromName(t *testing.T) {
	assert.Equal(t, LZ4, FromName("runs/x/final_ids.txt.lz4"))
	assert.Equal(t, ZSTD, FromName("runs/x/final_ids.txt.zst"))
	assert.Equal(t, None, FromName("runs/x/final_ids.txt"))

	for _, typ := range []Type{None, LZ4, ZSTD} {
		assert.Equal(t, typ, FromName("random_data.txt"+typ.Ext()))
	}
}

func TestUnknownType(t *testing.T) {
	_, err := NewWriter(io.Discard, Type(9))
	assert.Error(t, err)
	_, err = NewReader(strings.NewReader(""), Type(9))
	assert.Error(t, err)
	assert.Equal(t, "Unknown(9)", Type(9).String())
}
