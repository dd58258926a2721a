package envelope

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMinimalEnvelope(t *testing.T, footerBody []byte) ([]byte, SectionMarker) {
	t.Helper()

	marker := NewSectionMarker()
	var buf bytes.Buffer

	_, err := WriteSignature(&buf)
	require.NoError(t, err)
	_, err = WriteSectionMarker(&buf, marker)
	require.NoError(t, err)

	_, err = WriteFooterMagic(&buf)
	require.NoError(t, err)
	_, err = buf.Write(footerBody)
	require.NoError(t, err)
	_, err = WriteFooterLength(&buf, int64(len(footerBody)))
	require.NoError(t, err)
	_, err = WriteSectionMarker(&buf, marker)
	require.NoError(t, err)
	_, err = WriteSignature(&buf)
	require.NoError(t, err)

	return buf.Bytes(), marker
}

func TestLocate_RoundTrip(t *testing.T) {
	body := []byte("pretend-flatbuffer-footer")
	data, marker := buildMinimalEnvelope(t, body)

	trailer, err := Locate(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, body, trailer.FooterBody)
	assert.True(t, trailer.Marker.Equal(marker))
}

func TestLocate_RejectsBadLeadingSignature(t *testing.T) {
	data, _ := buildMinimalEnvelope(t, []byte("x"))
	data[0] = 0x00

	_, err := Locate(bytes.NewReader(data), int64(len(data)))
	assert.ErrorContains(t, err, "signature")
}

func TestLocate_RejectsBadTrailingSignature(t *testing.T) {
	data, _ := buildMinimalEnvelope(t, []byte("x"))
	data[len(data)-1] = 0x00

	_, err := Locate(bytes.NewReader(data), int64(len(data)))
	assert.ErrorContains(t, err, "signature")
}

func TestLocate_RejectsTruncatedFile(t *testing.T) {
	_, err := Locate(bytes.NewReader([]byte("too short")), 9)
	assert.Error(t, err)
}

func TestHasValidSignature(t *testing.T) {
	data, _ := buildMinimalEnvelope(t, []byte("x"))

	ok, err := HasValidSignature(bytes.NewReader(data))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = HasValidSignature(bytes.NewReader([]byte("not pod5")))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadOpeningMarker_MatchesWrittenMarker(t *testing.T) {
	data, marker := buildMinimalEnvelope(t, []byte("x"))

	got, err := ReadOpeningMarker(bytes.NewReader(data))
	require.NoError(t, err)
	assert.True(t, got.Equal(marker))
}

func TestWritePadding_ZeroIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	n, err := WritePadding(&buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, buf.Len())
}

func TestWritePadding_WritesZeroBytes(t *testing.T) {
	var buf bytes.Buffer
	n, err := WritePadding(&buf, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, buf.Bytes())
}

func TestAlign8(t *testing.T) {
	cases := map[int64]int64{0: 0, 1: 7, 7: 1, 8: 0, 9: 7, 15: 1, 16: 0}
	for n, want := range cases {
		assert.Equal(t, want, Align8(n), "Align8(%d)", n)
	}
}
