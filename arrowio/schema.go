package arrowio

import "github.com/apache/arrow/go/v17/arrow"

// Arrow encodes extension types as plain field metadata rather than a
// distinct wire representation; minknow.uuid and minknow.vbz are both
// advisory tags on an otherwise ordinary physical type, so readers that
// don't know about them still see a well-formed FixedSizeBinary(16) or
// LargeBinary column.
const (
	extensionNameKey = "ARROW:extension:name"
	uuidExtension     = "minknow.uuid"
	vbzExtension      = "minknow.vbz"
)

func extensionMetadata(name string) arrow.Metadata {
	return arrow.NewMetadata([]string{extensionNameKey}, []string{name})
}

// Schema metadata keys stamped on every embedded IPC region,
// identifying which pod5 build and file produced it.
const (
	MetaPod5Version     = "MINKNOW:pod5_version"
	MetaSoftware         = "MINKNOW:software"
	MetaFileIdentifier   = "MINKNOW:file_identifier"
)

// SignalSchema is the Arrow schema of the SignalTable region: one row per
// VBZ-compressed signal chunk.
func SignalSchema(pod5Version, software, fileIdentifier string) *arrow.Schema {
	fields := []arrow.Field{
		{Name: "read_id", Type: &arrow.FixedSizeBinaryType{ByteWidth: 16}, Metadata: extensionMetadata(uuidExtension)},
		{Name: "signal", Type: arrow.BinaryTypes.LargeBinary, Metadata: extensionMetadata(vbzExtension)},
		{Name: "samples", Type: arrow.PrimitiveTypes.Uint32},
	}
	return arrow.NewSchema(fields, regionMetadata(pod5Version, software, fileIdentifier))
}

// ReadsSchema is the Arrow schema of the ReadsTable region: one row per
// read, referencing SignalTable rows and RunInfoTable by dictionary key.
func ReadsSchema(pod5Version, software, fileIdentifier string) *arrow.Schema {
	smallDict := &arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int16, ValueType: arrow.BinaryTypes.String}

	fields := []arrow.Field{
		{Name: "read_id", Type: &arrow.FixedSizeBinaryType{ByteWidth: 16}, Metadata: extensionMetadata(uuidExtension)},
		{Name: "signal_rows", Type: arrow.ListOf(arrow.PrimitiveTypes.Uint64)},
		{Name: "calibration_offset", Type: arrow.PrimitiveTypes.Float32},
		{Name: "calibration_scale", Type: arrow.PrimitiveTypes.Float32},
		{Name: "channel", Type: arrow.PrimitiveTypes.Uint16},
		{Name: "well", Type: arrow.PrimitiveTypes.Uint8},
		{Name: "pore_type", Type: smallDict},
		{Name: "end_reason", Type: smallDict},
		{Name: "run_info", Type: smallDict},
		{Name: "median_before", Type: arrow.PrimitiveTypes.Float32},
		{Name: "num_minknow_events", Type: arrow.PrimitiveTypes.Uint32},
	}
	return arrow.NewSchema(fields, regionMetadata(pod5Version, software, fileIdentifier))
}

// RunInfoSchema is the Arrow schema of the RunInfoTable region: one row
// per distinct acquisition.
func RunInfoSchema(pod5Version, software, fileIdentifier string) *arrow.Schema {
	stringMap := arrow.MapOf(arrow.BinaryTypes.String, arrow.BinaryTypes.String)

	fields := []arrow.Field{
		{Name: "acquisition_id", Type: arrow.BinaryTypes.String},
		{Name: "acquisition_start_time", Type: arrow.PrimitiveTypes.Int64},
		{Name: "adc_min", Type: arrow.PrimitiveTypes.Int16},
		{Name: "adc_max", Type: arrow.PrimitiveTypes.Int16},
		{Name: "sample_rate", Type: arrow.PrimitiveTypes.Uint16},
		{Name: "context_tags", Type: stringMap},
		{Name: "tracking_id", Type: stringMap},
	}
	return arrow.NewSchema(fields, regionMetadata(pod5Version, software, fileIdentifier))
}

func regionMetadata(pod5Version, software, fileIdentifier string) *arrow.Metadata {
	m := arrow.NewMetadata(
		[]string{MetaPod5Version, MetaSoftware, MetaFileIdentifier},
		[]string{pod5Version, software, fileIdentifier},
	)
	return &m
}
