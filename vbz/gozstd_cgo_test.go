//go:build cgo

package vbz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGozstdCodec_RoundTrip(t *testing.T) {
	samples := []int16{5, -5, 300, -300, 0, 1, -1}

	codec, err := NewCodec(Gozstd)
	require.NoError(t, err)

	blob, err := EncodeWith(samples, codec)
	require.NoError(t, err)

	decoded, err := DecodeWith(blob, len(samples), codec)
	require.NoError(t, err)
	assert.Equal(t, samples, decoded)
}

func TestGozstdCodec_DecompressEmptyIsEmpty(t *testing.T) {
	codec := NewGozstdCodec()
	out, err := codec.Decompress(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
