//go:build cgo

package vbz

import "github.com/valyala/gozstd"

// GozstdCodec is a cgo-backed alternate outer compressor, wrapping
// valyala/gozstd's binding to the reference libzstd. It trades the pure-Go
// ZstdCodec's portability for libzstd's compression ratio and speed; build
// without cgo and the codec NewCodec(Gozstd) returns fails on every
// Compress/Decompress call (see gozstd_nocgo.go).
type GozstdCodec struct {
	level int
}

var _ Codec = GozstdCodec{}

// NewGozstdCodec returns a GozstdCodec at libzstd compression level 3,
// matching gozstd's own CompressLevel default used elsewhere in the
// ecosystem for general-purpose data.
func NewGozstdCodec() GozstdCodec {
	return GozstdCodec{level: 3}
}

// Compress compresses data with libzstd at c.level.
func (c GozstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, c.level), nil
}

// Decompress decompresses a libzstd-compressed buffer.
func (c GozstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
