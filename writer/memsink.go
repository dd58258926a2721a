package writer

import (
	"errors"
	"io"
)

// MemSink is a minimal growable in-memory Sink, used by tests and by
// callers who build a file entirely in memory before flushing it to
// storage.
type MemSink struct {
	buf []byte
	pos int64
}

var _ Sink = (*MemSink)(nil)

// NewMemSink returns an empty in-memory Sink.
func NewMemSink() *MemSink {
	return &MemSink{}
}

// Bytes returns the sink's current contents.
func (s *MemSink) Bytes() []byte {
	return s.buf
}

func (s *MemSink) Write(p []byte) (int, error) {
	end := s.pos + int64(len(p))
	if end > int64(len(s.buf)) {
		grown := make([]byte, end)
		copy(grown, s.buf)
		s.buf = grown
	}
	n := copy(s.buf[s.pos:end], p)
	s.pos = end
	return n, nil
}

func (s *MemSink) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = s.pos + offset
	case io.SeekEnd:
		newPos = int64(len(s.buf)) + offset
	default:
		return 0, errors.New("memSink: invalid whence")
	}
	if newPos < 0 {
		return 0, errors.New("memSink: negative position")
	}
	s.pos = newPos
	return newPos, nil
}
