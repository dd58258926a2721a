package envelope

import "github.com/pod5io/pod5/format"

// Descriptor records where one embedded table region lives in the file:
// its content type, its absolute byte offset from file start, and its
// length in bytes. This is the in-memory form of a footer entry;
// the footer package is responsible for flat-buffer (de)serialization, this
// package only deals with the bytes the descriptor points at.
type Descriptor struct {
	ContentType format.ContentType
	Offset      int64
	Length      int64
}

// End returns the exclusive end offset of the region this descriptor covers.
func (d Descriptor) End() int64 {
	return d.Offset + d.Length
}

// Align8 returns the number of zero-padding bytes needed so that n becomes a
// multiple of 8. Every table region's end offset must be 8-byte aligned
// before the trailing section marker is written.
func Align8(n int64) int64 {
	rem := n % 8
	if rem == 0 {
		return 0
	}

	return 8 - rem
}
