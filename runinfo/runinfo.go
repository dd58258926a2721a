// Package runinfo decodes the RunInfoTable into one RunInfo value per row,
// normalizing context_tags/tracking_id regardless of whether the region
// stores them in the canonical Map<Utf8, Utf8> form or the legacy
// List<Struct{key,value}> form older writers produced.
package runinfo

import (
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"

	"github.com/pod5io/pod5/errs"
)

// RunInfo is one decoded RunInfoTable row.
type RunInfo struct {
	AcquisitionID        string
	AcquisitionStartTime int64
	AdcMin               int16
	AdcMax               int16
	SampleRate           uint16
	ContextTags          map[string]string
	TrackingID           map[string]string
}

// Decode reads every row of rec, which must carry a RunInfoTable schema,
// into a RunInfo slice in row order.
func Decode(rec arrow.Record) ([]RunInfo, error) {
	schema := rec.Schema()

	acqIDCol := rec.Column(fieldIndex(schema, "acquisition_id")).(*array.String)
	startCol := rec.Column(fieldIndex(schema, "acquisition_start_time")).(*array.Int64)
	adcMinCol := rec.Column(fieldIndex(schema, "adc_min")).(*array.Int16)
	adcMaxCol := rec.Column(fieldIndex(schema, "adc_max")).(*array.Int16)
	rateCol := rec.Column(fieldIndex(schema, "sample_rate")).(*array.Uint16)
	contextCol := rec.Column(fieldIndex(schema, "context_tags"))
	trackingCol := rec.Column(fieldIndex(schema, "tracking_id"))

	n := int(rec.NumRows())
	out := make([]RunInfo, n)

	for i := 0; i < n; i++ {
		contextTags, err := decodeTagColumn(contextCol, i)
		if err != nil {
			return nil, fmt.Errorf("pod5: context_tags row %d: %w", i, err)
		}

		trackingID, err := decodeTagColumn(trackingCol, i)
		if err != nil {
			return nil, fmt.Errorf("pod5: tracking_id row %d: %w", i, err)
		}

		out[i] = RunInfo{
			AcquisitionID:        acqIDCol.Value(i),
			AcquisitionStartTime: startCol.Value(i),
			AdcMin:               adcMinCol.Value(i),
			AdcMax:               adcMaxCol.Value(i),
			SampleRate:           rateCol.Value(i),
			ContextTags:          contextTags,
			TrackingID:           trackingID,
		}
	}

	return out, nil
}

// decodeTagColumn normalizes row i of col to a string map. col is expected
// to be either a canonical *array.Map (current writers) or a legacy
// *array.List of Struct{key Utf8, value Utf8} rows (older writers, before
// context_tags/tracking_id became a real map type); both decode to the
// identical map[string]string shape so downstream code never has to care
// which form a given file used.
func decodeTagColumn(col arrow.Array, row int) (map[string]string, error) {
	if col.IsNull(row) {
		return map[string]string{}, nil
	}

	switch c := col.(type) {
	case *array.Map:
		return decodeMapRow(c, row)
	case *array.List:
		return decodeLegacyListRow(c, row)
	default:
		return nil, fmt.Errorf("%w: unsupported context_tags/tracking_id column type %T", errs.ErrFooterMalformed, col)
	}
}

func decodeMapRow(m *array.Map, row int) (map[string]string, error) {
	start, end := m.ValueOffsets(row)

	keys, ok := m.Keys().(*array.String)
	if !ok {
		return nil, fmt.Errorf("%w: map keys column is not Utf8", errs.ErrFooterMalformed)
	}
	values, ok := m.Items().(*array.String)
	if !ok {
		return nil, fmt.Errorf("%w: map values column is not Utf8", errs.ErrFooterMalformed)
	}

	out := make(map[string]string, end-start)
	for i := start; i < end; i++ {
		out[keys.Value(int(i))] = values.Value(int(i))
	}

	return out, nil
}

// decodeLegacyListRow handles the pre-Map encoding: one List row holding a
// Struct array with "key" and "value" Utf8 fields, one struct per entry.
func decodeLegacyListRow(l *array.List, row int) (map[string]string, error) {
	start, end := l.ValueOffsets(row)

	structs, ok := l.ListValues().(*array.Struct)
	if !ok {
		return nil, fmt.Errorf("%w: legacy context_tags/tracking_id list does not hold structs", errs.ErrFooterMalformed)
	}

	keyIdx, valueIdx := -1, -1
	dt := structs.DataType().(*arrow.StructType)
	for i, f := range dt.Fields() {
		switch f.Name {
		case "key":
			keyIdx = i
		case "value":
			valueIdx = i
		}
	}
	if keyIdx < 0 || valueIdx < 0 {
		return nil, fmt.Errorf("%w: legacy context_tags/tracking_id struct missing key/value fields", errs.ErrFooterMalformed)
	}

	keys, ok := structs.Field(keyIdx).(*array.String)
	if !ok {
		return nil, fmt.Errorf("%w: legacy context_tags/tracking_id key field is not Utf8", errs.ErrFooterMalformed)
	}
	values, ok := structs.Field(valueIdx).(*array.String)
	if !ok {
		return nil, fmt.Errorf("%w: legacy context_tags/tracking_id value field is not Utf8", errs.ErrFooterMalformed)
	}

	out := make(map[string]string, end-start)
	for i := start; i < end; i++ {
		out[keys.Value(int(i))] = values.Value(int(i))
	}

	return out, nil
}

func fieldIndex(schema *arrow.Schema, name string) int {
	indices := schema.FieldIndices(name)
	if len(indices) == 0 {
		return -1
	}
	return indices[0]
}
