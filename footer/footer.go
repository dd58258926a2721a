// Package footer builds and parses the flat-buffer table index that sits
// near the end of every POD5 file. It is the only package that
// touches internal/fbs/pod5footer directly; everyone else works with the
// plain Footer/Descriptor values this package exposes.
package footer

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/pod5io/pod5/envelope"
	"github.com/pod5io/pod5/errs"
	"github.com/pod5io/pod5/format"
	"github.com/pod5io/pod5/internal/fbs/pod5footer"
)

// Footer is the parsed form of the flat-buffer index: the file identifier,
// software string, POD5 version, and the list of embedded table descriptors.
type Footer struct {
	FileIdentifier string
	Software       string
	Pod5Version    string
	Entries        []envelope.Descriptor
}

// Parse validates and decodes a footer body previously located by
// envelope.Locate. It returns ErrFooterMalformed if flat-buffer validation
// fails, or ErrContentsMissing if the embedded-files list is absent.
func Parse(data []byte) (parsed *Footer, err error) {
	if len(data) == 0 {
		return nil, &errs.Pod5Error{Kind: errs.ErrFooterMalformed, Context: "empty footer body"}
	}

	// The flatbuffers accessor API indexes raw byte offsets and panics on
	// corrupt vtables/offsets rather than returning an error; convert that
	// into a normal error here so callers never need a recover of their own.
	defer func() {
		if r := recover(); r != nil {
			parsed = nil
			err = &errs.Pod5Error{Kind: errs.ErrFooterMalformed, Context: fmt.Sprintf("%v", r)}
		}
	}()

	root := pod5footer.GetRootAsFooter(data, 0)
	if !root.HasContents() {
		return nil, &errs.Pod5Error{Kind: errs.ErrContentsMissing}
	}

	n := root.ContentsLength()
	entries := make([]envelope.Descriptor, n)
	for i := 0; i < n; i++ {
		ef := root.Contents(i)
		entries[i] = envelope.Descriptor{
			Offset:      ef.Offset(),
			Length:      ef.Length(),
			ContentType: format.ContentType(ef.ContentType()),
		}
	}

	return &Footer{
		FileIdentifier: string(root.FileIdentifier()),
		Software:       string(root.Software()),
		Pod5Version:    string(root.Pod5Version()),
		Entries:        entries,
	}, nil
}

// Find returns the first entry of the given content type, or a typed
// missing-table error if there is none. It does not check that a mandatory
// kind appears at most once; enforcing that is the writer's job.
func (f *Footer) Find(contentType format.ContentType) (envelope.Descriptor, error) {
	for _, e := range f.Entries {
		if e.ContentType == contentType {
			return e, nil
		}
	}

	return envelope.Descriptor{}, missingErrFor(contentType)
}

// FindAll returns every entry of the given content type, in footer order.
// Used for OtherIndex, which may repeat; harmless for the mandatory kinds
// too (it returns a 0-or-1 length slice for those, post-write-guard).
func (f *Footer) FindAll(contentType format.ContentType) []envelope.Descriptor {
	var out []envelope.Descriptor
	for _, e := range f.Entries {
		if e.ContentType == contentType {
			out = append(out, e)
		}
	}

	return out
}

func missingErrFor(contentType format.ContentType) error {
	switch contentType {
	case format.ContentTypeSignal:
		return errs.NewTableMissing(errs.ErrSignalTableMissing)
	case format.ContentTypeReads:
		return errs.NewTableMissing(errs.ErrReadTableMissing)
	case format.ContentTypeRunInfo:
		return errs.NewTableMissing(errs.ErrRunInfoTableMissing)
	default:
		return fmt.Errorf("pod5: no %s entry in footer", contentType)
	}
}

// Build serializes file_identifier, software, pod5_version, and the given
// descriptors into the flat-buffer footer body. The returned bytes are the
// exact bytes that go on disk between FOOTER_MAGIC and FLEN; padding, if
// any, is the writer's responsibility.
func Build(fileIdentifier, software, pod5Version string, descriptors []envelope.Descriptor) []byte {
	b := flatbuffers.NewBuilder(1024)

	entryOffsets := make([]flatbuffers.UOffsetT, len(descriptors))
	for i, d := range descriptors {
		pod5footer.EmbeddedFileStart(b)
		pod5footer.EmbeddedFileAddOffset(b, d.Offset)
		pod5footer.EmbeddedFileAddLength(b, d.Length)
		pod5footer.EmbeddedFileAddContentType(b, int8(d.ContentType))
		entryOffsets[i] = pod5footer.EmbeddedFileEnd(b)
	}

	pod5footer.FooterStartContentsVector(b, len(entryOffsets))
	for i := len(entryOffsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(entryOffsets[i])
	}
	contentsVec := b.EndVector(len(entryOffsets))

	fileIDOff := b.CreateString(fileIdentifier)
	softwareOff := b.CreateString(software)
	versionOff := b.CreateString(pod5Version)

	pod5footer.FooterStart(b)
	pod5footer.FooterAddFileIdentifier(b, fileIDOff)
	pod5footer.FooterAddSoftware(b, softwareOff)
	pod5footer.FooterAddPod5Version(b, versionOff)
	pod5footer.FooterAddContents(b, contentsVec)
	root := pod5footer.FooterEnd(b)

	b.Finish(root)

	return b.FinishedBytes()
}
