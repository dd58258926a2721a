package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentType_String(t *testing.T) {
	cases := map[ContentType]string{
		ContentTypeSignal:     "Signal",
		ContentTypeReads:      "Reads",
		ContentTypeRunInfo:    "RunInfo",
		ContentTypeOtherIndex: "OtherIndex",
		ContentType(99):       "Unknown",
	}

	for ct, want := range cases {
		assert.Equal(t, want, ct.String())
	}
}

func TestContentType_Mandatory(t *testing.T) {
	assert.True(t, ContentTypeSignal.Mandatory())
	assert.True(t, ContentTypeReads.Mandatory())
	assert.True(t, ContentTypeRunInfo.Mandatory())
	assert.False(t, ContentTypeOtherIndex.Mandatory())
}
