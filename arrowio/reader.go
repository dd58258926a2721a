package arrowio

import (
	"io"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/pod5io/pod5/errs"
)

// Reader opens one embedded Arrow IPC file-format region and iterates its
// record batches in order. It never reads past the region's byte range
// even when the backing file continues beyond it.
type Reader struct {
	fr *ipc.FileReader
}

// Open binds an io.ReaderAt to the byte range [offset, offset+length) and
// parses it as a self-contained Arrow IPC file. The returned Reader owns
// no file descriptor; closing it releases only the Arrow-side reader
// state.
func Open(r io.ReaderAt, offset, length int64) (*Reader, error) {
	section := io.NewSectionReader(r, offset, length)

	fr, err := ipc.NewFileReader(section, ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		return nil, errs.Wrap(errs.ErrTableRead, "open arrow ipc region", err)
	}

	return &Reader{fr: fr}, nil
}

// Schema returns the region's Arrow schema, including any metadata
// stamped at write time.
func (r *Reader) Schema() *arrow.Schema {
	return r.fr.Schema()
}

// NumRecords returns the number of record batches in the region.
func (r *Reader) NumRecords() int {
	return r.fr.NumRecords()
}

// Record returns the i'th record batch. The returned arrow.Record is
// owned by the caller and must be released with Release() when done.
func (r *Reader) Record(i int) (arrow.Record, error) {
	rec, err := r.fr.RecordAt(i)
	if err != nil {
		return nil, errs.Wrap(errs.ErrTableRead, "read record batch", err)
	}
	return rec, nil
}

// Close releases the underlying Arrow file reader.
func (r *Reader) Close() error {
	return r.fr.Close()
}
