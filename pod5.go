// Package pod5 provides convenient top-level read wrappers around envelope,
// footer, table and runinfo. For fine-grained control over
// table iteration or the write lifecycle, use those packages directly.
//
// # Basic Usage
//
// Reading a file's RunInfo and Signal tables:
//
//	f, _ := os.Open("reads.pod5")
//	defer f.Close()
//	info, _ := os.Stat("reads.pod5")
//
//	file, err := pod5.Open(f, info.Size())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	sig, _ := file.SignalTable()
//	err = sig.Each(func(rec arrow.Record) error {
//	    rows, err := signalstream.DecodeBatch(rec)
//	    ...
//	})
//
// Writing a file follows the Writer/TableWriteGuard lifecycle directly;
// see package writer.
package pod5

import (
	"github.com/apache/arrow/go/v17/arrow"

	"github.com/pod5io/pod5/envelope"
	"github.com/pod5io/pod5/footer"
	"github.com/pod5io/pod5/format"
	"github.com/pod5io/pod5/runinfo"
	"github.com/pod5io/pod5/table"
)

// File is an opened, validated POD5 envelope: its parsed footer plus the
// byte source table regions are read from.
type File struct {
	src    envelope.ReaderAt
	footer *footer.Footer
}

// Open validates the envelope (read procedure) and parses its
// footer. size is the total byte length of src.
func Open(src envelope.ReaderAt, size int64) (*File, error) {
	trailer, err := envelope.Locate(src, size)
	if err != nil {
		return nil, err
	}

	f, err := footer.Parse(trailer.FooterBody)
	if err != nil {
		return nil, err
	}

	return &File{src: src, footer: f}, nil
}

// Close is a no-op: File does not own src and never closes it.
func (f *File) Close() error { return nil }

// FileIdentifier returns the footer's file identifier string.
func (f *File) FileIdentifier() string { return f.footer.FileIdentifier }

// Software returns the footer's software string.
func (f *File) Software() string { return f.footer.Software }

// Pod5Version returns the footer's format version string.
func (f *File) Pod5Version() string { return f.footer.Pod5Version }

// SignalTable opens a TableReader over the SignalTable region.
func (f *File) SignalTable() (*table.Reader, error) {
	return f.openMandatory(format.ContentTypeSignal)
}

// ReadsTable opens a TableReader over the ReadsTable region.
func (f *File) ReadsTable() (*table.Reader, error) {
	return f.openMandatory(format.ContentTypeReads)
}

// RunInfoTable opens a TableReader over the RunInfoTable region.
func (f *File) RunInfoTable() (*table.Reader, error) {
	return f.openMandatory(format.ContentTypeRunInfo)
}

// RunInfo reads every row of the RunInfoTable, normalizing context_tags
// and tracking_id to plain string maps regardless of whether the region
// stores them in the canonical map form or the legacy list-of-struct form
// (see package runinfo).
func (f *File) RunInfo() ([]runinfo.RunInfo, error) {
	r, err := f.RunInfoTable()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var out []runinfo.RunInfo
	err = r.Each(func(rec arrow.Record) error {
		rows, err := runinfo.Decode(rec)
		if err != nil {
			return err
		}
		out = append(out, rows...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// OtherIndexes opens a TableReader for every OtherIndex region present,
// in footer order.
func (f *File) OtherIndexes() ([]*table.Reader, error) {
	descs := f.footer.FindAll(format.ContentTypeOtherIndex)
	readers := make([]*table.Reader, 0, len(descs))
	for _, d := range descs {
		r, err := table.Open(f.src, d)
		if err != nil {
			return nil, err
		}
		readers = append(readers, r)
	}
	return readers, nil
}

func (f *File) openMandatory(kind format.ContentType) (*table.Reader, error) {
	desc, err := f.footer.Find(kind)
	if err != nil {
		return nil, err
	}
	return table.Open(f.src, desc)
}

// HasValidSignature is a cheap pre-flight check, re-exported from
// envelope for convenience; see envelope.HasValidSignature.
func HasValidSignature(src envelope.ReaderAt) (bool, error) {
	return envelope.HasValidSignature(src)
}
