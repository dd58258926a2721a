// Package envelope implements the byte-exact POD5 container framing: the
// file signature, the section marker discipline, the footer magic, and the
// trailing footer-length field. It has no knowledge of table contents or of
// Arrow/flatbuffers; it only knows how to find and validate the envelope
// that wraps them.
//
// Layout (see data model):
//
//	SIG  SM  <table region>*  FM  FOOTER  FLEN  SM  SIG
package envelope

import "math"

// Fixed section sizes, in bytes.
const (
	SignatureSize    = 8  // SIG
	SectionMarkerSize = 16 // SM, a 16-byte UUID
	FooterMagicSize  = 8  // FM
	FooterLengthSize = 8  // FLEN, little-endian signed int64

	// TrailerSize is the total byte length of the fixed trailer that
	// follows the footer body: SM + SIG. FLEN itself precedes this.
	TrailerSize = SectionMarkerSize + SignatureSize
)

// Signature is the 8-byte constant that must appear at offset 0 and at
// file-size-8 of every POD5 file.
var Signature = [SignatureSize]byte{0x8B, 'P', 'O', 'D', 0x0D, 0x0A, 0x1A, 0x0A}

// FooterMagic is the 8-byte constant that immediately follows the last
// table region's trailing section marker.
var FooterMagic = [FooterMagicSize]byte{'F', 'O', 'O', 'T', 'E', 'R', 0x00, 0x00}

// MaxFooterLength guards against an absurd FLEN value (e.g. from a corrupted
// or truncated file) causing an attempted multi-gigabyte allocation.
const MaxFooterLength = math.MaxInt32
