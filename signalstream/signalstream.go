// Package signalstream provides SignalTable helpers: VBZ decoding of one
// record batch at a time and ADC<->picoampere rescaling. It does not wrap
// table.Reader; callers iterate the SignalTable themselves and pass each
// batch to DecodeBatch.
package signalstream

import (
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"

	"github.com/pod5io/pod5/calibration"
	"github.com/pod5io/pod5/readid"
	"github.com/pod5io/pod5/vbz"
)

// Row is one decoded SignalTable row: the read it belongs to and its
// signal samples in original chronological order.
type Row struct {
	ReadID  readid.ReadID
	Samples []int16
}

// DecodeBatch decodes the VBZ-compressed signal column of rec one row at a
// time, using each row's samples column as its decode length, and returns
// one Row per record row in the same order. It does not build a new
// record batch; rec itself is left unchanged.
func DecodeBatch(rec arrow.Record) ([]Row, error) {
	schema := rec.Schema()
	readIDCol := rec.Column(fieldIndex(schema, "read_id")).(*array.FixedSizeBinary)
	signalCol := rec.Column(fieldIndex(schema, "signal")).(*array.LargeBinary)
	samplesCol := rec.Column(fieldIndex(schema, "samples")).(*array.Uint32)

	n := int(rec.NumRows())
	rows := make([]Row, n)

	for i := 0; i < n; i++ {
		id, err := readid.FromBytes(readIDCol.Value(i))
		if err != nil {
			return nil, err
		}

		decoded, err := vbz.Decode(signalCol.Value(i), int(samplesCol.Value(i)))
		if err != nil {
			return nil, err
		}

		rows[i] = Row{ReadID: id, Samples: decoded}
	}

	return rows, nil
}

// ToPicoamperes rescales adc sample values to picoamperes using the
// read's calibration entry: picoamperes = (adc + offset) * scale.
func ToPicoamperes(samples []int16, e calibration.Entry) []float32 {
	out := make([]float32, len(samples))
	for i, v := range samples {
		out[i] = (float32(v) + e.Offset) * e.Scale
	}
	return out
}

// ToADC reverses ToPicoamperes: adc = picoamperes/scale - offset.
func ToADC(picoamperes []float32, e calibration.Entry) []int16 {
	out := make([]int16, len(picoamperes))
	for i, v := range picoamperes {
		out[i] = int16(v/e.Scale - e.Offset)
	}
	return out
}

func fieldIndex(schema *arrow.Schema, name string) int {
	indices := schema.FieldIndices(name)
	if len(indices) == 0 {
		return -1
	}
	return indices[0]
}
