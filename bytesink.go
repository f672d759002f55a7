package serd

import (
	"bufio"
	"io"
)

// ByteSink is a push-based byte stream with optional block buffering, the
// contract a Writer serializes into. It wraps an io.Writer, since Go's
// io.Writer already is the "push n bytes, report how many were written"
// contract; WriteString avoids a throwaway []byte conversion for the
// writer's many literal string fragments.
type ByteSink struct {
	w          *bufio.Writer
	raw        io.Writer
	unbuffered bool // flush after every write
}

// NewByteSink wraps w for writing. blockSize <= 0 selects an unbuffered
// sink that flushes after every write, matching the byte-at-a-time source
// side's use for interactive streams.
func NewByteSink(w io.Writer, blockSize int) *ByteSink {
	if blockSize <= 0 {
		return &ByteSink{w: bufio.NewWriterSize(w, 1), raw: w, unbuffered: true}
	}
	return &ByteSink{w: bufio.NewWriterSize(w, blockSize), raw: w}
}

// Write pushes p, returning the number of bytes actually accepted; a
// short write (n < len(p)) signals a BadWrite condition to the caller.
func (s *ByteSink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if err == nil && s.unbuffered {
		err = s.w.Flush()
	}
	return n, err
}

// WriteString is the string-argument equivalent of Write.
func (s *ByteSink) WriteString(str string) (int, error) {
	n, err := s.w.WriteString(str)
	if err == nil && s.unbuffered {
		err = s.w.Flush()
	}
	return n, err
}

// WriteByte pushes a single byte.
func (s *ByteSink) WriteByte(b byte) error {
	err := s.w.WriteByte(b)
	if err == nil && s.unbuffered {
		err = s.w.Flush()
	}
	return err
}

// Flush forces any buffered bytes out to the underlying writer. A Writer
// calls this at the end of serialization and the caller should check its
// error, since a buffered short write otherwise surfaces only here.
func (s *ByteSink) Flush() error {
	return s.w.Flush()
}
