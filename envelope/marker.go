package envelope

import "github.com/google/uuid"

// SectionMarker is the 16-byte identifier generated once per file and
// re-emitted, byte-identical, at every section boundary. It is a UUID in
// storage form, not a validated UUID version; any 16 bytes chosen at
// writer construction qualify.
type SectionMarker [SectionMarkerSize]byte

// NewSectionMarker generates a fresh random section marker. Writer calls
// this exactly once at construction and stores the result; it must never be
// regenerated mid-file, or every reader's byte-identity check breaks.
func NewSectionMarker() SectionMarker {
	var sm SectionMarker
	copy(sm[:], uuid.New()[:])

	return sm
}

// Bytes returns the marker's 16 raw bytes.
func (m SectionMarker) Bytes() []byte {
	return m[:]
}

// Equal reports whether two section markers are byte-identical.
func (m SectionMarker) Equal(other SectionMarker) bool {
	return m == other
}
