package vbz

import (
	"fmt"

	"github.com/pod5io/pod5/errs"
)

// Codec is the outer general-purpose compressor stage of the VBZ pipeline.
// It compresses/decompresses the concatenated (control | data) buffer
// produced by the stream-vbyte-16 stage.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// OuterCodec names the built-in outer compressors a Codec can select among.
type OuterCodec uint8

const (
	// Zstd is the default outer compressor, matching the reference
	// implementation's zstd::encode_all(.., 1).
	Zstd OuterCodec = iota
	LZ4
	S2
	// Gozstd selects the cgo-backed libzstd binding (GozstdCodec) instead
	// of the pure-Go zstd implementation Zstd uses. Only usable in a cgo
	// build; see GozstdCodec.
	Gozstd
)

// NewCodec returns the built-in Codec for the given outer compressor choice.
func NewCodec(codec OuterCodec) (Codec, error) {
	switch codec {
	case Zstd:
		return NewZstdCodec(), nil
	case LZ4:
		return NewLZ4Codec(), nil
	case S2:
		return NewS2Codec(), nil
	case Gozstd:
		return NewGozstdCodec(), nil
	default:
		return nil, fmt.Errorf("vbz: unknown outer codec %d", codec)
	}
}

// defaultCodec is used by the package-level Encode/Decode convenience
// functions; callers who need an alternate outer compressor use EncodeWith/
// DecodeWith directly.
var defaultCodec = NewZstdCodec()

// Encode runs the full four-stage VBZ pipeline over x using the default
// outer compressor (zstd). Empty input yields a valid empty-decoded blob.
func Encode(x []int16) ([]byte, error) {
	return EncodeWith(x, defaultCodec)
}

// EncodeWith runs the VBZ pipeline with an explicit outer Codec.
func EncodeWith(x []int16, codec Codec) ([]byte, error) {
	d := deltaEncode(x)
	u := make([]uint16, len(d))
	for i, v := range d {
		u[i] = zigzagEncode(v)
	}
	inner := encodeStreamVByte16(u)

	outer, err := codec.Compress(inner)
	if err != nil {
		return nil, errs.NewCodecError("outer-compress", err)
	}

	return outer, nil
}

// Decode reverses Encode, given the number of samples n the blob is known
// to decode to (SignalTable rows carry this count in their `samples`
// column). It uses the default outer compressor (zstd); callers that wrote
// with a different outer codec must use DecodeWith.
func Decode(blob []byte, n int) ([]int16, error) {
	return DecodeWith(blob, n, defaultCodec)
}

// DecodeWith reverses EncodeWith with an explicit outer Codec.
func DecodeWith(blob []byte, n int, codec Codec) ([]int16, error) {
	if n == 0 {
		return []int16{}, nil
	}

	inner, err := codec.Decompress(blob)
	if err != nil {
		return nil, errs.NewCodecError("outer-decompress", err)
	}

	u, err := decodeStreamVByte16(inner, n)
	if err != nil {
		return nil, errs.NewCodecError("inner-length", err)
	}

	d := make([]int16, n)
	for i, v := range u {
		d[i] = zigzagDecode(v)
	}

	return deltaDecode(d), nil
}
