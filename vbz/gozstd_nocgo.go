//go:build !cgo

package vbz

import "github.com/pod5io/pod5/errs"

// GozstdCodec is unavailable in a non-cgo build: NewCodec(Gozstd) still
// returns this stub, and its Compress and Decompress always return an error
// instead of silently falling back to a different outer compressor.
type GozstdCodec struct{}

var _ Codec = GozstdCodec{}

// NewGozstdCodec returns a GozstdCodec stub whose methods always fail; a
// non-cgo binary has no libzstd to bind to.
func NewGozstdCodec() GozstdCodec {
	return GozstdCodec{}
}

func (c GozstdCodec) Compress(data []byte) ([]byte, error) {
	return nil, errs.NewCodecError("outer-compress", errGozstdUnavailable)
}

func (c GozstdCodec) Decompress(data []byte) ([]byte, error) {
	return nil, errs.NewCodecError("outer-decompress", errGozstdUnavailable)
}

var errGozstdUnavailable = errNoCgo{}

type errNoCgo struct{}

func (errNoCgo) Error() string {
	return "vbz: GozstdCodec requires a cgo build (built with CGO_ENABLED=0)"
}
