package envelope

import (
	"encoding/binary"
	"io"
)

// WriteSignature writes the 8-byte SIG constant.
func WriteSignature(w io.Writer) (int, error) {
	return w.Write(Signature[:])
}

// WriteSectionMarker writes the given 16-byte section marker.
func WriteSectionMarker(w io.Writer, sm SectionMarker) (int, error) {
	return w.Write(sm[:])
}

// WriteFooterMagic writes the 8-byte FM constant.
func WriteFooterMagic(w io.Writer) (int, error) {
	return w.Write(FooterMagic[:])
}

// WriteFooterLength writes FLEN as a little-endian signed int64.
func WriteFooterLength(w io.Writer, n int64) (int, error) {
	var buf [FooterLengthSize]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))

	return w.Write(buf[:])
}

// WritePadding writes n zero bytes. Used to bring a table region's end
// offset to an 8-byte boundary before the trailing section marker (design
// note: pad explicitly, don't rely on the IPC writer's internal padding).
func WritePadding(w io.Writer, n int64) (int, error) {
	if n == 0 {
		return 0, nil
	}
	buf := make([]byte, n)

	return w.Write(buf)
}
