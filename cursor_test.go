package serd

import "testing"

func TestCursorEqual(t *testing.T) {
	doc := NewIRI("http://example.org/doc")
	a := Cursor{Name: doc, Line: 4, Column: 2}
	b := Cursor{Name: doc, Line: 4, Column: 2}
	if !a.Equal(b) {
		t.Fatalf("expected identical cursors to compare equal")
	}
	b.Column = 3
	if a.Equal(b) {
		t.Fatalf("expected differing column to break equality")
	}
	b = Cursor{Name: NewIRI("http://example.org/other"), Line: 4, Column: 2}
	if a.Equal(b) {
		t.Fatalf("expected differing document name to break equality")
	}
}
