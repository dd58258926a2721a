// Package arrowio binds the envelope's embedded table regions to a real
// columnar IPC implementation: github.com/apache/arrow/go/v17. It is the
// concrete collaborator behind the otherwise-abstract "Open a region,
// iterate record batches" / "start a region, write record batches, close
// it" contracts used by table, signalstream and writer.
//
// arrowio is the only package that calls the arrow/ipc reader and writer.
// Record batches themselves are plain arrow.Record values, which table,
// signalstream, calibration, runinfo and writer consume directly.
package arrowio
