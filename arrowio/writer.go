package arrowio

import (
	"io"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/ipc"

	"github.com/pod5io/pod5/errs"
)

// Writer starts a fresh Arrow IPC file-format region at the sink's current
// position and appends record batches to it. A Writer is single-use: once
// Close returns, no further Write calls are valid (mirrors the
// TableWriteGuard discipline one level down, at the collaborator itself).
type Writer struct {
	fw     *ipc.FileWriter
	schema *arrow.Schema
}

// NewWriter opens a new Arrow IPC file-format region against sink. The
// region's header goes out with the first Write (or with Close, for a
// region with no batches), and each batch is written as it arrives
// rather than buffering the whole region in memory.
func NewWriter(sink io.Writer, schema *arrow.Schema) (*Writer, error) {
	fw, err := ipc.NewFileWriter(sink, ipc.WithSchema(schema))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodecError, "open arrow ipc writer", err)
	}

	return &Writer{fw: fw, schema: schema}, nil
}

// Schema returns the schema this writer was opened with.
func (w *Writer) Schema() *arrow.Schema {
	return w.schema
}

// Write appends one record batch. rec's schema must match the schema the
// Writer was opened with.
func (w *Writer) Write(rec arrow.Record) error {
	if !rec.Schema().Equal(w.schema) {
		return &errs.Pod5Error{Kind: errs.ErrSchemaMismatch}
	}

	if err := w.fw.Write(rec); err != nil {
		return errs.Wrap(errs.ErrTableRead, "write record batch", err)
	}

	return nil
}

// Close finalizes the Arrow IPC footer for this region. After Close, the
// byte range written is a complete, independently parseable Arrow IPC file.
func (w *Writer) Close() error {
	return w.fw.Close()
}
