package serd

import (
	"bytes"
	"strings"
	"testing"
)

func runTurtleRoundTrip(t *testing.T, doc string, opts WriterOptions) string {
	t.Helper()
	env := NewEnvironment()
	var buf bytes.Buffer
	w := NewWriter(NewByteSink(&buf, 256), env, opts)
	if err := ReadAll(strings.NewReader(doc), w, env, ReaderOptions{Syntax: Turtle}); err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("unexpected finish error: %v", err)
	}
	return buf.String()
}

func TestWriterNTriplesFlatForm(t *testing.T) {
	var buf bytes.Buffer
	env := NewEnvironment()
	w := NewWriter(NewByteSink(&buf, 256), env, WriterOptions{Syntax: NTriples})

	stmt := Statement{
		Subject:   NewIRI("http://example.org/s"),
		Predicate: NewIRI("http://example.org/p"),
		Object:    MustLiteral("hello", nil, ""),
	}
	if err := w.Statement(0, stmt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<http://example.org/s> <http://example.org/p> "hello" .` + "\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

// Scenario from spec §8.3: same-subject statements abbreviate with ';'.
func TestWriterAbbreviatesSameSubject(t *testing.T) {
	var buf bytes.Buffer
	env := NewEnvironment()
	if err := env.SetPrefix("ex", NewIRI("http://example.org/")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := NewWriter(NewByteSink(&buf, 256), env, WriterOptions{Syntax: Turtle, Qualify: true})

	s := NewIRI("http://example.org/alice")
	p1 := NewIRI("http://example.org/knows")
	p2 := NewIRI("http://example.org/name")
	if err := w.Statement(0, Statement{Subject: s, Predicate: p1, Object: NewIRI("http://example.org/bob")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Statement(0, Statement{Subject: s, Predicate: p2, Object: MustLiteral("Alice", nil, "")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, ";") {
		t.Fatalf("expected ';' abbreviation for shared subject, got %q", out)
	}
	if !strings.Contains(out, "ex:alice") {
		t.Fatalf("expected qualified subject ex:alice, got %q", out)
	}
}

// Scenario from spec §8.3: anonymous blank subject round-trips through
// reader and writer as "[ ... ]" without an explicit blank label.
func TestWriterRoundTripsAnonymousBlankSubject(t *testing.T) {
	const doc = `@prefix ex: <http://example.org/> .
[ ex:p ex:o ] ex:q ex:r .
`
	out := runTurtleRoundTrip(t, doc, WriterOptions{Syntax: Turtle, Qualify: true})
	if !strings.Contains(out, "[ ") {
		t.Fatalf("expected output to contain an anonymous blank node bracket, got %q", out)
	}
	if strings.Contains(out, "_:b") {
		t.Fatalf("expected no explicit blank label in output, got %q", out)
	}
}

// Scenario from spec §8.3: list sugar round-trips as "( ... )", never
// naming rdf:first/rdf:rest/rdf:nil.
func TestWriterRoundTripsListSugar(t *testing.T) {
	const doc = `@prefix ex: <http://example.org/> .
ex:s ex:p ( 1 2 3 ) .
`
	out := runTurtleRoundTrip(t, doc, WriterOptions{Syntax: Turtle, Qualify: true})
	if !strings.Contains(out, "(") || !strings.Contains(out, ")") {
		t.Fatalf("expected list sugar brackets in output, got %q", out)
	}
	if strings.Contains(out, "rdf:first") || strings.Contains(out, "rdf:rest") || strings.Contains(out, "rdf-syntax-ns#first") {
		t.Fatalf("expected rdf:first/rdf:rest never to be named literally, got %q", out)
	}
	if !strings.Contains(out, "1") || !strings.Contains(out, "2") || !strings.Contains(out, "3") {
		t.Fatalf("expected all three list items present, got %q", out)
	}
}

func TestWriterAutoQualifiesUnboundNamespace(t *testing.T) {
	var buf bytes.Buffer
	env := NewEnvironment()
	w := NewWriter(NewByteSink(&buf, 256), env, WriterOptions{Syntax: Turtle, Qualify: true})

	stmt := Statement{
		Subject:   NewIRI("http://example.org/s"),
		Predicate: NewIRI("http://example.org/p"),
		Object:    NewIRI("http://example.org/o"),
	}
	if err := w.Statement(0, stmt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "@prefix ns0:") {
		t.Fatalf("expected an auto-generated ns0 prefix directive, got %q", out)
	}
}

func TestWriterRdfTypeAbbreviatesToA(t *testing.T) {
	var buf bytes.Buffer
	env := NewEnvironment()
	w := NewWriter(NewByteSink(&buf, 256), env, WriterOptions{Syntax: Turtle, Qualify: true})

	stmt := Statement{
		Subject:   NewIRI("http://example.org/s"),
		Predicate: NewIRI(rdfType),
		Object:    NewIRI("http://example.org/Thing"),
	}
	if err := w.Statement(0, stmt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, " a ") {
		t.Fatalf("expected rdf:type abbreviated to 'a', got %q", out)
	}
}

// Boundary scenario from spec §8.2: a literal containing both '"' and '\n'
// in terse syntax must be emitted triple-quoted, with bare newlines and
// interior quotes left unescaped and only the final quote escaped.
func TestWriterEmitsTripleQuotedForNewlineAndQuote(t *testing.T) {
	var buf bytes.Buffer
	env := NewEnvironment()
	w := NewWriter(NewByteSink(&buf, 256), env, WriterOptions{Syntax: Turtle})

	stmt := Statement{
		Subject:   NewIRI("http://example.org/s"),
		Predicate: NewIRI("http://example.org/p"),
		Object:    MustLiteral("line one\nhas a \" quote\"", nil, ""),
	}
	if err := w.Statement(0, stmt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	want := `<http://example.org/s> <http://example.org/p> """line one` + "\n" + `has a " quote\"""" .` + "\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

// A literal with a newline but no quote must still use the plain
// single-quoted form with \n escaped, not triple-quoting.
func TestWriterKeepsSingleQuoteFormForNewlineOnly(t *testing.T) {
	var buf bytes.Buffer
	env := NewEnvironment()
	w := NewWriter(NewByteSink(&buf, 256), env, WriterOptions{Syntax: Turtle})

	stmt := Statement{
		Subject:   NewIRI("http://example.org/s"),
		Predicate: NewIRI("http://example.org/p"),
		Object:    MustLiteral("line one\nline two", nil, ""),
	}
	if err := w.Statement(0, stmt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	want := `<http://example.org/s> <http://example.org/p> "line one\nline two" .` + "\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}
