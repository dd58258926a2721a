// Package calibration builds the per-read {offset, scale} lookup used to
// rescale decoded signal between ADC counts and picoamperes. It is
// populated by a single scan of the ReadsTable.
package calibration

import (
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"

	"github.com/pod5io/pod5/readid"
)

// Entry is one read's affine rescaling pair: picoamperes = (adc + Offset) * Scale.
type Entry struct {
	Offset float32
	Scale  float32
}

// Calibration maps a read to its Entry. Lookups accept either the raw
// ReadID or its canonical hyphenated string form, since the original
// fixtures key calibration maps by string UUID.
type Calibration struct {
	byID  map[readid.ReadID]Entry
	byStr map[string]Entry
}

// New returns an empty Calibration.
func New() *Calibration {
	return &Calibration{
		byID:  make(map[readid.ReadID]Entry),
		byStr: make(map[string]Entry),
	}
}

// Put records the calibration entry for id, indexing it under both key
// forms.
func (c *Calibration) Put(id readid.ReadID, e Entry) {
	c.byID[id] = e
	c.byStr[id.String()] = e
}

// Lookup returns the Entry for id.
func (c *Calibration) Lookup(id readid.ReadID) (Entry, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// LookupString returns the Entry for a canonical hyphenated read-id string.
func (c *Calibration) LookupString(s string) (Entry, bool) {
	e, ok := c.byStr[s]
	return e, ok
}

// Len returns the number of reads indexed.
func (c *Calibration) Len() int {
	return len(c.byID)
}

// Build scans one ReadsTable record batch and records each row's
// (read_id, calibration_offset, calibration_scale) triple. Calling Build
// repeatedly across a multi-batch table accumulates into the same
// Calibration.
func (c *Calibration) Build(rec arrow.Record) error {
	readIDCol := rec.Column(readIndex(rec.Schema(), "read_id")).(*array.FixedSizeBinary)
	offsetCol := rec.Column(readIndex(rec.Schema(), "calibration_offset")).(*array.Float32)
	scaleCol := rec.Column(readIndex(rec.Schema(), "calibration_scale")).(*array.Float32)

	n := int(rec.NumRows())
	for i := 0; i < n; i++ {
		id, err := readid.FromBytes(readIDCol.Value(i))
		if err != nil {
			return err
		}

		c.Put(id, Entry{Offset: offsetCol.Value(i), Scale: scaleCol.Value(i)})
	}

	return nil
}

func readIndex(schema *arrow.Schema, name string) int {
	indices := schema.FieldIndices(name)
	if len(indices) == 0 {
		return -1
	}
	return indices[0]
}
