package envelope

import (
	"encoding/binary"

	"github.com/pod5io/pod5/errs"
)

// Trailer is everything the read procedure extracts from the end of
// a POD5 file: the raw footer body (still to be flat-buffer-parsed by the
// footer package), the absolute offset at which the footer body begins, and
// the section marker that must match the one following the leading
// signature.
type Trailer struct {
	FooterBody   []byte
	FooterOffset int64
	Marker       SectionMarker
}

// ReadLeadingSignature validates the 8 bytes at offset 0.
func ReadLeadingSignature(r ReaderAt) error {
	var buf [SignatureSize]byte
	if _, err := r.ReadAt(buf[:], 0); err != nil {
		return errs.Wrap(errs.ErrSignatureFailure, "start", err)
	}
	if buf != Signature {
		return errs.NewSignatureFailure("start")
	}

	return nil
}

// ReadTrailingSignature validates the 8 bytes at fileSize-8.
func ReadTrailingSignature(r ReaderAt, fileSize int64) error {
	var buf [SignatureSize]byte
	if _, err := r.ReadAt(buf[:], fileSize-SignatureSize); err != nil {
		return errs.Wrap(errs.ErrSignatureFailure, "end", err)
	}
	if buf != Signature {
		return errs.NewSignatureFailure("end")
	}

	return nil
}

// ReadOpeningMarker reads the 16-byte section marker immediately following
// the leading signature, at offset SignatureSize.
func ReadOpeningMarker(r ReaderAt) (SectionMarker, error) {
	var sm SectionMarker
	if _, err := r.ReadAt(sm[:], SignatureSize); err != nil {
		return sm, errs.Wrap(errs.ErrSignatureFailure, "opening marker", err)
	}

	return sm, nil
}

// ReaderAt is the minimal byte-source contract the envelope needs: random
// access reads by absolute offset. *os.File and *bytes.Reader both satisfy
// it, as does a memory-mapped region wrapped in a small adapter.
type ReaderAt interface {
	ReadAt(p []byte, off int64) (n int, err error)
}

// Locate implements the read procedure: it validates both
// signatures, reads FLEN from its fixed trailing position, and returns the
// footer body bytes plus the closing section marker (which the caller
// should compare against ReadOpeningMarker's result.
//
// The trailer is laid out, working backward from file end:
//
//	... FOOTER | FLEN (8) | SM (16) | SIG (8)
func Locate(r ReaderAt, fileSize int64) (Trailer, error) {
	if err := ReadLeadingSignature(r); err != nil {
		return Trailer{}, err
	}
	if err := ReadTrailingSignature(r, fileSize); err != nil {
		return Trailer{}, err
	}

	flenOffset := fileSize - (SignatureSize + SectionMarkerSize + FooterLengthSize)
	if flenOffset < SignatureSize+SectionMarkerSize {
		return Trailer{}, errs.NewSignatureFailure("truncated trailer")
	}

	var flenBuf [FooterLengthSize]byte
	if _, err := r.ReadAt(flenBuf[:], flenOffset); err != nil {
		return Trailer{}, errs.Wrap(errs.ErrSignatureFailure, "footer length", err)
	}
	flen := int64(binary.LittleEndian.Uint64(flenBuf[:]))
	if flen < 0 || flen > MaxFooterLength {
		return Trailer{}, errs.NewSignatureFailure("implausible footer length")
	}

	footerOffset := flenOffset - flen
	if footerOffset < SignatureSize+SectionMarkerSize {
		return Trailer{}, errs.NewSignatureFailure("footer length overruns file")
	}

	body := make([]byte, flen)
	if flen > 0 {
		if _, err := r.ReadAt(body, footerOffset); err != nil {
			return Trailer{}, errs.Wrap(errs.ErrSignatureFailure, "footer body", err)
		}
	}

	closingMarkerOffset := fileSize - SignatureSize - SectionMarkerSize
	var closing SectionMarker
	if _, err := r.ReadAt(closing[:], closingMarkerOffset); err != nil {
		return Trailer{}, errs.Wrap(errs.ErrSignatureFailure, "closing marker", err)
	}

	return Trailer{FooterBody: body, FooterOffset: footerOffset, Marker: closing}, nil
}

// HasValidSignature is a cheap file-type sniff: it checks only the leading
// signature, without touching the footer. Useful for quickly rejecting
// non-POD5 input before paying the cost of a full Locate.
func HasValidSignature(r ReaderAt) (bool, error) {
	var buf [SignatureSize]byte
	if _, err := r.ReadAt(buf[:], 0); err != nil {
		return false, err
	}

	return buf == Signature, nil
}
