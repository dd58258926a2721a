// Package table implements TableReader/TableIterator: given a table
// descriptor and a seekable byte source, produces a lazy, single-pass
// sequence of record batches from one embedded Arrow IPC region.
package table

import (
	"io"

	"github.com/apache/arrow/go/v17/arrow"

	"github.com/pod5io/pod5/arrowio"
	"github.com/pod5io/pod5/envelope"
	"github.com/pod5io/pod5/errs"
)

// Reader opens one embedded table region for iteration. It is
// single-pass: restartability requires calling Open again against the
// same descriptor.
type Reader struct {
	r      *arrowio.Reader
	schema *arrow.Schema
	next   int
}

// Open binds desc to src and parses the region's Arrow IPC header. It
// does not read any record batch bodies yet.
func Open(src envelope.ReaderAt, desc envelope.Descriptor) (*Reader, error) {
	ar, err := arrowio.Open(src, desc.Offset, desc.Length)
	if err != nil {
		return nil, errs.NewTableRead(desc.ContentType.String(), err)
	}

	return &Reader{r: ar, schema: ar.Schema()}, nil
}

// Schema returns the region's Arrow schema.
func (r *Reader) Schema() *arrow.Schema {
	return r.schema
}

// Len returns the total number of record batches in the region.
func (r *Reader) Len() int {
	return r.r.NumRecords()
}

// Next returns the next record batch, or io.EOF once all batches have
// been consumed. The caller owns the returned record and must Release it.
func (r *Reader) Next() (arrow.Record, error) {
	if r.next >= r.r.NumRecords() {
		return nil, io.EOF
	}

	rec, err := r.r.Record(r.next)
	if err != nil {
		return nil, err
	}
	r.next++

	return rec, nil
}

// Close releases the underlying Arrow IPC reader. It does not close src.
func (r *Reader) Close() error {
	return r.r.Close()
}

// Each calls fn for every record batch in order, releasing each record
// once fn returns. Iteration stops at the first error, either from the
// reader or from fn.
func (r *Reader) Each(fn func(arrow.Record) error) error {
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		err = fn(rec)
		rec.Release()
		if err != nil {
			return err
		}
	}
}
