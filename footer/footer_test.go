package footer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pod5io/pod5/envelope"
	"github.com/pod5io/pod5/errs"
	"github.com/pod5io/pod5/format"
)

func TestBuildParse_RoundTrip(t *testing.T) {
	descriptors := []envelope.Descriptor{
		{ContentType: format.ContentTypeSignal, Offset: 24, Length: 100},
		{ContentType: format.ContentTypeReads, Offset: 140, Length: 60},
		{ContentType: format.ContentTypeRunInfo, Offset: 216, Length: 40},
		{ContentType: format.ContentTypeOtherIndex, Offset: 272, Length: 30},
	}

	body := Build("file-abc", "pod5-go-test", "0.3.0", descriptors)

	f, err := Parse(body)
	require.NoError(t, err)
	assert.Equal(t, "file-abc", f.FileIdentifier)
	assert.Equal(t, "pod5-go-test", f.Software)
	assert.Equal(t, "0.3.0", f.Pod5Version)
	require.Len(t, f.Entries, 4)
	assert.Equal(t, descriptors[0], f.Entries[0])
	assert.Equal(t, descriptors[3], f.Entries[3])
}

func TestBuildParse_EmptyContents(t *testing.T) {
	body := Build("id", "sw", "0.3.0", nil)

	f, err := Parse(body)
	require.NoError(t, err)
	assert.Empty(t, f.Entries)
}

func TestParse_EmptyBodyIsMalformed(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorIs(t, err, errs.ErrFooterMalformed)
}

func TestParse_GarbageBytesRecoversAsMalformed(t *testing.T) {
	_, err := Parse([]byte{0x01, 0x02, 0x03, 0x04})
	assert.ErrorIs(t, err, errs.ErrFooterMalformed)
}

func TestFind_ReturnsFirstMatch(t *testing.T) {
	f := &Footer{Entries: []envelope.Descriptor{
		{ContentType: format.ContentTypeSignal, Offset: 1, Length: 2},
		{ContentType: format.ContentTypeReads, Offset: 3, Length: 4},
	}}

	got, err := f.Find(format.ContentTypeReads)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Offset)
}

func TestFind_MissingMandatoryTableReturnsTypedError(t *testing.T) {
	f := &Footer{}

	_, err := f.Find(format.ContentTypeSignal)
	assert.ErrorIs(t, err, errs.ErrSignalTableMissing)

	_, err = f.Find(format.ContentTypeReads)
	assert.ErrorIs(t, err, errs.ErrReadTableMissing)

	_, err = f.Find(format.ContentTypeRunInfo)
	assert.ErrorIs(t, err, errs.ErrRunInfoTableMissing)
}

func TestFindAll_ReturnsEveryMatchInOrder(t *testing.T) {
	f := &Footer{Entries: []envelope.Descriptor{
		{ContentType: format.ContentTypeOtherIndex, Offset: 1, Length: 1},
		{ContentType: format.ContentTypeSignal, Offset: 2, Length: 1},
		{ContentType: format.ContentTypeOtherIndex, Offset: 3, Length: 1},
	}}

	got := f.FindAll(format.ContentTypeOtherIndex)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].Offset)
	assert.Equal(t, int64(3), got[1].Offset)
}
