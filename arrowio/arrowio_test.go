package arrowio

import (
	"bytes"
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/stretchr/testify/require"
)

func TestSchemas_CarryRegionMetadata(t *testing.T) {
	for _, schema := range []*arrow.Schema{
		SignalSchema("0.3.23", "pod5io-test", "file-123"),
		ReadsSchema("0.3.23", "pod5io-test", "file-123"),
		RunInfoSchema("0.3.23", "pod5io-test", "file-123"),
	} {
		md := schema.Metadata()
		idx := md.FindKey(MetaPod5Version)
		require.GreaterOrEqual(t, idx, 0)
		require.Equal(t, "0.3.23", md.Values()[idx])
	}
}

func TestWriterReader_RoundTrip(t *testing.T) {
	schema := RunInfoSchema("0.3.23", "pod5io-test", "file-123")

	pool := memory.NewGoAllocator()
	bld := array.NewRecordBuilder(pool, schema)
	defer bld.Release()

	bld.Field(0).(*array.StringBuilder).Append("acq-1")
	bld.Field(1).(*array.Int64Builder).Append(1690000000000000)
	bld.Field(2).(*array.Int16Builder).Append(-4096)
	bld.Field(3).(*array.Int16Builder).Append(4096)
	bld.Field(4).(*array.Uint16Builder).Append(4000)

	ctxBld := bld.Field(5).(*array.MapBuilder)
	ctxBld.Append(true)
	ctxBld.KeyBuilder().(*array.StringBuilder).Append("sample_id")
	ctxBld.ItemBuilder().(*array.StringBuilder).Append("sample-A")

	trkBld := bld.Field(6).(*array.MapBuilder)
	trkBld.Append(true)
	trkBld.KeyBuilder().(*array.StringBuilder).Append("run_id")
	trkBld.ItemBuilder().(*array.StringBuilder).Append("run-A")

	rec := bld.NewRecord()
	defer rec.Release()

	var buf bytes.Buffer
	w, err := NewWriter(&buf, schema)
	require.NoError(t, err)
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Close())

	r, err := Open(bytes.NewReader(buf.Bytes()), 0, int64(buf.Len()))
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, 1, r.NumRecords())
	require.True(t, r.Schema().Equal(schema))

	got, err := r.Record(0)
	require.NoError(t, err)
	defer got.Release()

	assert := require.New(t)
	assert.Equal(int64(1), got.NumRows())
}
