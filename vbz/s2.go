package vbz

import "github.com/klauspost/compress/s2"

// S2Codec is an alternate outer compressor tuned for very fast
// decompression; S2 blocks self-describe their decoded length, so
// Decompress needs no scratch-buffer growth loop.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec returns a new S2Codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Compress compresses data as a single S2 block.
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses an S2 block.
func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
