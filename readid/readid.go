// Package readid is the 16-byte read identifier used as the join key
// between SignalTable and ReadsTable rows. It wraps google/uuid so the
// raw FixedSizeBinary(16) column bytes and the canonical hyphenated
// string form convert into each other without ambiguity.
package readid

import (
	"fmt"

	"github.com/google/uuid"
)

// ReadID is a 128-bit read identifier, physically a FixedSizeBinary(16)
// value tagged with the minknow.uuid extension in both the Signal and
// Reads table schemas.
type ReadID uuid.UUID

// Nil is the zero ReadID.
var Nil ReadID

// FromBytes interprets a 16-byte slice as a ReadID. It returns an error
// if b is not exactly 16 bytes.
func FromBytes(b []byte) (ReadID, error) {
	if len(b) != 16 {
		return Nil, fmt.Errorf("readid: want 16 bytes, got %d", len(b))
	}

	var id ReadID
	copy(id[:], b)
	return id, nil
}

// Bytes returns the 16 raw bytes of id, suitable for writing into a
// FixedSizeBinary(16) Arrow column.
func (id ReadID) Bytes() []byte {
	return id[:]
}

// String renders id in canonical hyphenated form (8-4-4-4-12 hex digits),
// matching the string form the original test fixtures key calibration
// maps by.
func (id ReadID) String() string {
	return uuid.UUID(id).String()
}

// Parse parses a canonical hyphenated UUID string into a ReadID.
func Parse(s string) (ReadID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Nil, fmt.Errorf("readid: %w", err)
	}
	return ReadID(u), nil
}

// New generates a fresh random (v4) ReadID, used by writers assigning
// identifiers to newly ingested reads.
func New() ReadID {
	return ReadID(uuid.New())
}
