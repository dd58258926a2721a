package writer

import (
	"io"

	"github.com/apache/arrow/go/v17/arrow"

	"github.com/pod5io/pod5/arrowio"
	"github.com/pod5io/pod5/errs"
	"github.com/pod5io/pod5/format"
)

type guardPhase int

const (
	guardPreInit guardPhase = iota
	guardPostInit
	guardClosed
)

// countingWriter tracks how many bytes have passed through it, so
// TableWriteGuard can report the exact region length closeTable needs
// without the caller threading a counter through.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// TableWriteGuard manages one table region's IPC writer lifecycle.
// It starts in PreInit, deferring Arrow IPC construction until the first
// batch supplies a schema; the first WriteBatch call transitions it to
// PostInit.
type TableWriteGuard struct {
	w            *Writer
	kind         format.ContentType
	sectionStart int64

	phase  guardPhase
	schema *arrow.Schema
	out    *countingWriter
	aw     *arrowio.Writer
}

// WriteBatch appends one record batch. The first call derives the
// region's schema from rec and constructs the underlying Arrow IPC
// writer stamped with the Writer's pod5_version/software/file_identifier
// metadata; every later call in this guard's lifetime must use an
// identical schema or returns ErrSchemaMismatch.
func (g *TableWriteGuard) WriteBatch(rec arrow.Record) error {
	if g.phase == guardClosed {
		return errs.ErrGuardClosed
	}

	if g.phase == guardPreInit {
		src := rec.Schema()
		srcMeta := src.Metadata()
		keys := []string{arrowio.MetaPod5Version, arrowio.MetaSoftware, arrowio.MetaFileIdentifier}
		vals := []string{g.w.pod5Version, g.w.software, g.w.fileIdentifier}
		for i, k := range srcMeta.Keys() {
			if k != arrowio.MetaPod5Version && k != arrowio.MetaSoftware && k != arrowio.MetaFileIdentifier {
				keys = append(keys, k)
				vals = append(vals, srcMeta.Values()[i])
			}
		}
		stamped := arrow.NewMetadata(keys, vals)
		g.schema = arrow.NewSchemaWithEndian(src.Fields(), &stamped, src.Endianness())
		g.out = &countingWriter{w: g.w.sink}

		aw, err := arrowio.NewWriter(g.out, g.schema)
		if err != nil {
			return err
		}
		g.aw = aw
		g.phase = guardPostInit
	}

	if !rec.Schema().Equal(g.schema) {
		return &errs.Pod5Error{Kind: errs.ErrSchemaMismatch, Context: g.kind.String()}
	}

	return g.aw.Write(rec)
}

// Close finishes the IPC region (finalizing its Arrow footer if any
// batch was written, or emitting an empty-but-well-formed region
// otherwise, per the "allow empty" default), then triggers the outer
// Writer's WritingT -> Ready transition.
func (g *TableWriteGuard) Close() error {
	if g.phase == guardClosed {
		return nil
	}

	if g.phase == guardPreInit {
		// No batch was ever written: build a real Arrow IPC file carrying
		// the content type's schema but zero record batches, rather than a
		// zero-byte region a reader's ipc.NewFileReader can't parse.
		schema := g.w.emptySchemaForKind(g.kind)
		out := &countingWriter{w: g.w.sink}

		aw, err := arrowio.NewWriter(out, schema)
		if err != nil {
			return err
		}
		if err := aw.Close(); err != nil {
			return err
		}

		g.phase = guardClosed
		return g.w.closeTable(g, out.n)
	}

	if err := g.aw.Close(); err != nil {
		return err
	}
	regionLen := g.out.n
	g.phase = guardClosed

	return g.w.closeTable(g, regionLen)
}

// Schema returns the schema this guard was initialized with, or nil if
// no batch has been written yet.
func (g *TableWriteGuard) Schema() *arrow.Schema {
	return g.schema
}
