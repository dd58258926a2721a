// Package writer produces a byte-valid POD5 file in a single forward pass
// over a seekable sink. Writer drives the outer envelope
// lifecycle; TableWriteGuard drives one table region at a time.
package writer

import (
	"io"

	"github.com/apache/arrow/go/v17/arrow"

	"github.com/pod5io/pod5/arrowio"
	"github.com/pod5io/pod5/envelope"
	"github.com/pod5io/pod5/errs"
	"github.com/pod5io/pod5/footer"
	"github.com/pod5io/pod5/format"
	"github.com/pod5io/pod5/readid"
)

type state int

const (
	stateFresh state = iota
	stateReady
	stateWriting
	stateDone
)

// Sink is the seekable write destination a Writer is constructed over.
// *os.File and *bytes.Buffer-backed implementations both satisfy it when
// wrapped appropriately; Writer only ever appends, so Seek is used only by
// New, to rewind to io.SeekStart and then read the cursor position via
// io.SeekCurrent.
type Sink interface {
	io.Writer
	io.Seeker
}

// Writer drives the Fresh -> Ready -> WritingT -> Ready -> Done envelope
// lifecycle. One random section marker is generated at
// construction and reused, byte-identical, at every boundary.
type Writer struct {
	sink           Sink
	marker         envelope.SectionMarker
	fileIdentifier string
	software       string
	pod5Version    string

	state        state
	cursor       int64
	writtenKinds map[format.ContentType]bool
	descriptors  []envelope.Descriptor
	activeGuard  *TableWriteGuard
}

// Option configures a Writer at construction.
type Option func(*Writer)

// WithSoftware overrides the software string stamped into the footer and
// every table region's schema metadata. Defaults to format.DefaultSoftware.
func WithSoftware(software string) Option {
	return func(w *Writer) { w.software = software }
}

// WithFileIdentifier overrides the file identifier stamped into the
// footer. Defaults to a fresh random UUID string.
func WithFileIdentifier(id string) Option {
	return func(w *Writer) { w.fileIdentifier = id }
}

// New performs the Fresh -> Ready transition: rewinds sink, writes SIG,
// writes the file's single section marker, and records the cursor.
func New(sink Sink, opts ...Option) (*Writer, error) {
	w := &Writer{
		sink:         sink,
		marker:       envelope.NewSectionMarker(),
		software:     format.DefaultSoftware,
		pod5Version:  format.Pod5Version,
		writtenKinds: make(map[format.ContentType]bool),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.fileIdentifier == "" {
		w.fileIdentifier = readid.New().String()
	}

	if _, err := sink.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	if _, err := envelope.WriteSignature(sink); err != nil {
		return nil, err
	}
	if _, err := envelope.WriteSectionMarker(sink, w.marker); err != nil {
		return nil, err
	}

	pos, err := sink.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	w.cursor = pos
	w.state = stateReady

	return w, nil
}

// OpenTable performs the Ready -> WritingT transition: it fails with
// ContentTypeAlreadyWritten if kind is mandatory and has already been
// closed once. The returned TableWriteGuard exclusively borrows w until
// closed.
func (w *Writer) OpenTable(kind format.ContentType) (*TableWriteGuard, error) {
	if w.state != stateReady {
		return nil, errs.ErrWriterClosed
	}
	if kind.Mandatory() && w.writtenKinds[kind] {
		return nil, errs.NewContentTypeAlreadyWritten(kind.String())
	}

	w.state = stateWriting
	sectionStart := w.cursor

	g := &TableWriteGuard{
		w:            w,
		kind:         kind,
		sectionStart: sectionStart,
	}
	w.activeGuard = g

	return g, nil
}

// WithGuard is the closure form of OpenTable: it opens kind, invokes fn,
// and closes the guard regardless of whether fn returns an error,
// propagating whichever error occurred first.
func (w *Writer) WithGuard(kind format.ContentType, fn func(*TableWriteGuard) error) error {
	g, err := w.OpenTable(kind)
	if err != nil {
		return err
	}

	fnErr := fn(g)
	closeErr := g.Close()
	if fnErr != nil {
		return fnErr
	}
	return closeErr
}

// closeTable performs the WritingT -> Ready transition: pad to 8-byte
// alignment, write the section marker, append the region's descriptor,
// and advance the cursor.
func (w *Writer) closeTable(g *TableWriteGuard, regionLen int64) error {
	pad := envelope.Align8(regionLen)
	if _, err := envelope.WritePadding(w.sink, pad); err != nil {
		return err
	}
	if _, err := envelope.WriteSectionMarker(w.sink, w.marker); err != nil {
		return err
	}

	w.descriptors = append(w.descriptors, envelope.Descriptor{
		ContentType: g.kind,
		Offset:      g.sectionStart,
		Length:      regionLen,
	})
	w.writtenKinds[g.kind] = true
	w.cursor = g.sectionStart + regionLen + pad + envelope.SectionMarkerSize
	w.state = stateReady
	w.activeGuard = nil

	return nil
}

// Finish performs the Ready -> Done transition: writes the footer magic,
// the serialized footer body, the footer length, the closing section
// marker, and the closing signature. Finish consumes the Writer; no
// further OpenTable calls are valid afterward. A file with any subset of
// the three mandatory table kinds present, including just one, is a
// valid file; Finish does not require all three to have been written.
func (w *Writer) Finish() error {
	if w.state != stateReady {
		return errs.ErrWriterClosed
	}

	if _, err := envelope.WriteFooterMagic(w.sink); err != nil {
		return err
	}

	body := footer.Build(w.fileIdentifier, w.software, w.pod5Version, w.descriptors)
	if _, err := w.sink.Write(body); err != nil {
		return err
	}
	if _, err := envelope.WriteFooterLength(w.sink, int64(len(body))); err != nil {
		return err
	}
	if _, err := envelope.WriteSectionMarker(w.sink, w.marker); err != nil {
		return err
	}
	if _, err := envelope.WriteSignature(w.sink); err != nil {
		return err
	}

	w.state = stateDone
	return nil
}

// emptySchemaForKind returns the schema a zero-batch region of kind should
// still advertise. The three mandatory kinds have a fixed schema; an
// OtherIndex region closed without ever writing a batch carries no
// caller-defined schema to fall back on, so it gets a field-less one.
func (w *Writer) emptySchemaForKind(kind format.ContentType) *arrow.Schema {
	switch kind {
	case format.ContentTypeSignal:
		return arrowio.SignalSchema(w.pod5Version, w.software, w.fileIdentifier)
	case format.ContentTypeReads:
		return arrowio.ReadsSchema(w.pod5Version, w.software, w.fileIdentifier)
	case format.ContentTypeRunInfo:
		return arrowio.RunInfoSchema(w.pod5Version, w.software, w.fileIdentifier)
	default:
		return arrow.NewSchema(nil, nil)
	}
}

// FileIdentifier returns the file identifier this Writer will stamp into
// the footer and every table region's schema metadata.
func (w *Writer) FileIdentifier() string { return w.fileIdentifier }

// Software returns the software string this Writer stamps.
func (w *Writer) Software() string { return w.software }

// Pod5Version returns the format version string this Writer stamps.
func (w *Writer) Pod5Version() string { return w.pod5Version }
