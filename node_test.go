package serd

import "testing"

func TestNodeEqualityAndOrder(t *testing.T) {
	a := NewIRI("http://example.org/a")
	b := NewIRI("http://example.org/a")
	c := NewIRI("http://example.org/b")

	if !Equal(a, b) {
		t.Fatalf("equal IRIs with same text must compare equal")
	}
	if Equal(a, c) {
		t.Fatalf("distinct IRI text must not compare equal")
	}
	if Compare(a, c) >= 0 {
		t.Fatalf("expected a < c lexicographically, got Compare=%d", Compare(a, c))
	}
}

func TestNodeFlagsAgreeWithText(t *testing.T) {
	n := NewIRI("http://example.org/has\nnewline\"and quote")
	if n.Flags()&HasNewline == 0 {
		t.Fatalf("expected HasNewline to be set")
	}
	if n.Flags()&HasQuote == 0 {
		t.Fatalf("expected HasQuote to be set")
	}

	plain := NewIRI("http://example.org/plain")
	if plain.Flags()&(HasNewline|HasQuote) != 0 {
		t.Fatalf("expected no newline/quote flags on plain text")
	}
}

func TestLiteralDatatypeAndLanguageMutuallyExclusive(t *testing.T) {
	if _, err := NewLiteral("hello", NewIRI(xsdString), "en"); err == nil {
		t.Fatalf("expected error constructing literal with both datatype and language")
	}

	// rdf:langString datatype is silently dropped in favor of lang.
	n, err := NewLiteral("hello", NewIRI(rdfLangString), "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Language() != "en" {
		t.Fatalf("expected language tag 'en', got %q", n.Language())
	}
	if n.Datatype() != nil {
		t.Fatalf("expected no explicit datatype when rdf:langString implied by language")
	}
}

func TestBlankNodeRejectsEmptyLabel(t *testing.T) {
	if _, err := NewBlank(""); err != ErrEmptyBlankLabel {
		t.Fatalf("expected ErrEmptyBlankLabel, got %v", err)
	}
}
