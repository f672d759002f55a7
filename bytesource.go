package serd

import (
	"bufio"
	"io"
)

// ByteSource is a pull-based byte stream with cursor tracking, the
// contract a Reader scans from. It wraps an io.Reader rather than
// defining a from-scratch pull function, since Go's io.Reader already is
// that contract (a byte count and a short-read-means-EOF convention);
// PeekByte/ReadByte add the one-byte lookahead the lexer needs.
type ByteSource struct {
	r      *bufio.Reader
	name   *Node
	line   int
	column int
	eof    bool

	// pageSize configures how many bytes bufio pre-fills per refill; it
	// does not change the public one-byte-at-a-time API, since the
	// reader below it already requests one rune at a time.
	pageSize int
}

// NewByteSource wraps r for reading, attributing cursor positions to
// name (typically the document's IRI). pageSize sets the size of the
// underlying bufio buffer, with a minimum of 16 bytes. Every source is
// buffered: there is no single-byte-at-a-time read mode, and a refill
// may take up to a full buffer from r ahead of what the parser consumed.
func NewByteSource(r io.Reader, name *Node, pageSize int) *ByteSource {
	size := pageSize
	if size < 16 {
		size = 16 // bufio.NewReaderSize enforces a minimum internally too
	}
	return &ByteSource{
		r:        bufio.NewReaderSize(r, size),
		name:     name,
		line:     1,
		column:   1,
		pageSize: pageSize,
	}
}

// Cursor returns the position of the next unread byte.
func (s *ByteSource) Cursor() Cursor {
	return Cursor{Name: s.name, Line: s.line, Column: s.column}
}

// ReadByte returns the next byte, advancing the cursor. Column advances
// by one per byte regardless of UTF-8 continuation bytes; line
// increments and column resets to 1 on '\n'.
func (s *ByteSource) ReadByte() (byte, error) {
	b, err := s.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			s.eof = true
		}
		return 0, err
	}
	if b == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return b, nil
}

// PeekByte returns the next byte without consuming it, or an error
// (typically io.EOF) if none is available.
func (s *ByteSource) PeekByte() (byte, error) {
	buf, err := s.r.Peek(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// PeekN returns up to n bytes without consuming them; it returns fewer
// than n bytes along with a nil error at EOF or when n exceeds the
// buffer size.
func (s *ByteSource) PeekN(n int) ([]byte, error) {
	buf, err := s.r.Peek(n)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, err
	}
	return buf, nil
}

// AtEOF reports whether the source has observed end-of-stream.
func (s *ByteSource) AtEOF() bool { return s.eof }
