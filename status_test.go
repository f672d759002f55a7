package serd

import (
	"errors"
	"testing"
)

func TestStatusStringCoversEveryValue(t *testing.T) {
	for s := Success; s <= Internal; s++ {
		if got := s.String(); got == "unknown status" {
			t.Fatalf("Status %d has no String() case", s)
		}
	}
	if Status(999).String() != "unknown status" {
		t.Fatalf("expected unrecognized Status to report \"unknown status\"")
	}
}

func TestSyntaxErrorFormatsWithAndWithoutCursor(t *testing.T) {
	e := &SyntaxError{Status: BadSyntax, Message: "unexpected token"}
	if e.Error() != "serd: bad syntax: unexpected token" {
		t.Fatalf("unexpected cursor-less error text: %q", e.Error())
	}
	e.Cursor = Cursor{Line: 3, Column: 7}
	if e.Error() != "3:7: bad syntax: unexpected token" {
		t.Fatalf("unexpected cursor-bearing error text: %q", e.Error())
	}
}

func TestSyntaxErrorIsMatchesEmbeddedStatus(t *testing.T) {
	e := &SyntaxError{Status: BadCURIE, Message: "undefined prefix"}
	if !errors.Is(e, BadCURIE) {
		t.Fatalf("expected errors.Is to match the embedded Status")
	}
	if errors.Is(e, NotFound) {
		t.Fatalf("expected errors.Is to reject a non-matching Status")
	}
}

func TestStatusAsError(t *testing.T) {
	var err error = Failure
	if err.Error() != "failure" {
		t.Fatalf("expected bare Status to satisfy error, got %q", err.Error())
	}
}
