package vbz

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCodec is the default outer compressor. It uses klauspost/compress's
// pure-Go zstd implementation for portability in non-cgo builds; the
// cgo-backed libzstd binding is available as GozstdCodec (OuterCodec
// Gozstd) for builds that want it.
//
// zstd.SpeedFastest is the closest analogue klauspost's encoder exposes to
// "compression level 1"; klauspost's encoder levels are named speed tiers
// rather than the classic libzstd 1-22 integer scale.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec returns a new ZstdCodec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
		if err != nil {
			panic(fmt.Sprintf("vbz: failed to create zstd encoder: %v", err))
		}

		return enc
	},
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic(fmt.Sprintf("vbz: failed to create zstd decoder: %v", err))
		}

		return dec
	},
}

// Compress compresses data with zstd at the fastest encoder level.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	enc := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

// Decompress decompresses a zstd-compressed buffer.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	dec := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)

	return dec.DecodeAll(data, nil)
}
