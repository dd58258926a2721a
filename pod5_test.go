package pod5

import (
	"bytes"
	"testing"

	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pod5io/pod5/arrowio"
	"github.com/pod5io/pod5/format"
	"github.com/pod5io/pod5/readid"
	"github.com/pod5io/pod5/vbz"
	"github.com/pod5io/pod5/writer"
)

func buildMinimalFile(t *testing.T) []byte {
	t.Helper()

	sink := writer.NewMemSink()
	w, err := writer.New(sink, writer.WithFileIdentifier("file-xyz"))
	require.NoError(t, err)

	pool := memory.NewGoAllocator()
	id := readid.New()
	samples := []int16{1, 2, 3}
	blob, err := vbz.Encode(samples)
	require.NoError(t, err)

	signalSchema := arrowio.SignalSchema(w.Pod5Version(), w.Software(), w.FileIdentifier())
	require.NoError(t, w.WithGuard(format.ContentTypeSignal, func(g *writer.TableWriteGuard) error {
		bld := array.NewRecordBuilder(pool, signalSchema)
		defer bld.Release()
		bld.Field(0).(*array.FixedSizeBinaryBuilder).Append(id.Bytes())
		bld.Field(1).(*array.LargeBinaryBuilder).Append(blob)
		bld.Field(2).(*array.Uint32Builder).Append(uint32(len(samples)))
		rec := bld.NewRecord()
		defer rec.Release()
		return g.WriteBatch(rec)
	}))

	runInfoSchema := arrowio.RunInfoSchema(w.Pod5Version(), w.Software(), w.FileIdentifier())
	require.NoError(t, w.WithGuard(format.ContentTypeRunInfo, func(g *writer.TableWriteGuard) error {
		bld := array.NewRecordBuilder(pool, runInfoSchema)
		defer bld.Release()
		bld.Field(0).(*array.StringBuilder).Append("acq-1")
		bld.Field(1).(*array.Int64Builder).Append(0)
		bld.Field(2).(*array.Int16Builder).Append(-1)
		bld.Field(3).(*array.Int16Builder).Append(1)
		bld.Field(4).(*array.Uint16Builder).Append(4000)
		bld.Field(5).(*array.MapBuilder).AppendNull()
		bld.Field(6).(*array.MapBuilder).AppendNull()
		rec := bld.NewRecord()
		defer rec.Release()
		return g.WriteBatch(rec)
	}))

	readsSchema := arrowio.ReadsSchema(w.Pod5Version(), w.Software(), w.FileIdentifier())
	require.NoError(t, w.WithGuard(format.ContentTypeReads, func(g *writer.TableWriteGuard) error {
		bld := array.NewRecordBuilder(pool, readsSchema)
		defer bld.Release()
		bld.Field(0).(*array.FixedSizeBinaryBuilder).Append(id.Bytes())
		rowsBld := bld.Field(1).(*array.ListBuilder)
		rowsBld.Append(true)
		rowsBld.ValueBuilder().(*array.Uint64Builder).Append(0)
		bld.Field(2).(*array.Float32Builder).Append(0)
		bld.Field(3).(*array.Float32Builder).Append(1)
		bld.Field(4).(*array.Uint16Builder).Append(1)
		bld.Field(5).(*array.Uint8Builder).Append(0)
		require.NoError(t, bld.Field(6).(*array.Int16DictionaryBuilder).AppendString("R10"))
		require.NoError(t, bld.Field(7).(*array.Int16DictionaryBuilder).AppendString("signal_positive"))
		require.NoError(t, bld.Field(8).(*array.Int16DictionaryBuilder).AppendString("acq-1"))
		bld.Field(9).(*array.Float32Builder).Append(0)
		bld.Field(10).(*array.Uint32Builder).Append(3)
		rec := bld.NewRecord()
		defer rec.Release()
		return g.WriteBatch(rec)
	}))

	require.NoError(t, w.Finish())
	return sink.Bytes()
}

func TestOpen_ExposesAllThreeTables(t *testing.T) {
	data := buildMinimalFile(t)
	src := bytes.NewReader(data)

	f, err := Open(src, int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, "file-xyz", f.FileIdentifier())

	sig, err := f.SignalTable()
	require.NoError(t, err)
	assert.Equal(t, 1, sig.Len())

	reads, err := f.ReadsTable()
	require.NoError(t, err)
	assert.Equal(t, 1, reads.Len())

	runInfo, err := f.RunInfoTable()
	require.NoError(t, err)
	assert.Equal(t, 1, runInfo.Len())
}

func TestReadsTable_DictionaryColumnsDecodeToOriginalStrings(t *testing.T) {
	data := buildMinimalFile(t)
	src := bytes.NewReader(data)

	f, err := Open(src, int64(len(data)))
	require.NoError(t, err)

	reads, err := f.ReadsTable()
	require.NoError(t, err)
	defer reads.Close()

	rec, err := reads.Next()
	require.NoError(t, err)
	defer rec.Release()

	poreType := rec.Column(6).(*array.Dictionary)
	endReason := rec.Column(7).(*array.Dictionary)
	runInfoCol := rec.Column(8).(*array.Dictionary)

	assert.Equal(t, "R10", poreType.Dictionary().(*array.String).Value(poreType.GetValueIndex(0)))
	assert.Equal(t, "signal_positive", endReason.Dictionary().(*array.String).Value(endReason.GetValueIndex(0)))
	assert.Equal(t, "acq-1", runInfoCol.Dictionary().(*array.String).Value(runInfoCol.GetValueIndex(0)))
}

func TestRunInfo_DecodesNormalizedRows(t *testing.T) {
	data := buildMinimalFile(t)
	src := bytes.NewReader(data)

	f, err := Open(src, int64(len(data)))
	require.NoError(t, err)

	rows, err := f.RunInfo()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "acq-1", rows[0].AcquisitionID)
	assert.Equal(t, uint16(4000), rows[0].SampleRate)
	assert.Equal(t, map[string]string{}, rows[0].ContextTags)
}

func TestHasValidSignature(t *testing.T) {
	data := buildMinimalFile(t)
	ok, err := HasValidSignature(bytes.NewReader(data))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = HasValidSignature(bytes.NewReader([]byte("not a pod5 file")))
	require.NoError(t, err)
	assert.False(t, ok)
}
