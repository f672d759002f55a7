package serd

import (
	"io"
	"strings"
	"testing"
)

func TestByteSourceCursorAdvancesAcrossLines(t *testing.T) {
	s := NewByteSource(strings.NewReader("ab\ncd"), NewIRI("http://example.org/doc"), 16)
	c := s.Cursor()
	if c.Line != 1 || c.Column != 1 {
		t.Fatalf("expected initial cursor 1:1, got %d:%d", c.Line, c.Column)
	}
	for i := 0; i < 3; i++ { // consume "a", "b", "\n"
		if _, err := s.ReadByte(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	c = s.Cursor()
	if c.Line != 2 || c.Column != 1 {
		t.Fatalf("expected cursor 2:1 after newline, got %d:%d", c.Line, c.Column)
	}
}

func TestByteSourcePeekByteDoesNotConsume(t *testing.T) {
	s := NewByteSource(strings.NewReader("xy"), nil, 16)
	b, err := s.PeekByte()
	if err != nil || b != 'x' {
		t.Fatalf("expected peek 'x', got %q err=%v", b, err)
	}
	b, err = s.ReadByte()
	if err != nil || b != 'x' {
		t.Fatalf("expected read 'x' after peek, got %q err=%v", b, err)
	}
}

func TestByteSourceAtEOF(t *testing.T) {
	s := NewByteSource(strings.NewReader("a"), nil, 16)
	if s.AtEOF() {
		t.Fatalf("expected AtEOF false before reading past end")
	}
	if _, err := s.ReadByte(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.ReadByte(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if !s.AtEOF() {
		t.Fatalf("expected AtEOF true after io.EOF")
	}
}

func TestByteSourcePeekNAtEOFReturnsShort(t *testing.T) {
	s := NewByteSource(strings.NewReader("ab"), nil, 16)
	buf, err := s.PeekN(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(buf) != "ab" {
		t.Fatalf("expected short peek %q, got %q", "ab", buf)
	}
}
