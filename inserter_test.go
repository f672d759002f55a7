package serd

import "testing"

func TestInserterExpandsCURIEsAndRelativeIRIs(t *testing.T) {
	env := NewEnvironment()
	if err := env.SetBase(NewIRI("http://example.org/")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := env.SetPrefix("ex", NewIRI("http://example.org/ns#")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store := NewStore()
	ins := NewInserter(store, env)

	stmt := Statement{
		Subject:   NewIRI("alice"),
		Predicate: NewCURIE("ex:knows"),
		Object:    NewIRI("bob"),
	}
	if err := ins.Statement(0, stmt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Find(Pattern{}).All()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(got))
	}
	s := got[0]
	if s.Subject.Text() != "http://example.org/alice" {
		t.Fatalf("expected expanded subject, got %q", s.Subject.Text())
	}
	if s.Predicate.Text() != "http://example.org/ns#knows" {
		t.Fatalf("expected expanded predicate, got %q", s.Predicate.Text())
	}
	if s.Object.Text() != "http://example.org/bob" {
		t.Fatalf("expected expanded object, got %q", s.Object.Text())
	}
}

func TestInserterSubstitutesDefaultGraph(t *testing.T) {
	env := NewEnvironment()
	store := NewStore()
	ins := NewInserter(store, env)
	ins.DefaultGraph = NewIRI("http://example.org/g0")

	stmt := Statement{
		Subject:   NewIRI("http://example.org/s"),
		Predicate: NewIRI("http://example.org/p"),
		Object:    NewIRI("http://example.org/o"),
	}
	if err := ins.Statement(0, stmt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Find(Pattern{GraphWild: true}).All()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Graph == nil || got[0].Graph.Text() != "http://example.org/g0" {
		t.Fatalf("expected statement to carry the default graph substitute, got %v", got)
	}
}

func TestInserterPropagatesBaseAndPrefixEvents(t *testing.T) {
	env := NewEnvironment()
	store := NewStore()
	ins := NewInserter(store, env)

	if err := ins.Base(NewIRI("http://example.org/")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ins.Prefix("ex", NewIRI("http://example.org/ns#")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if env.Base() == nil || env.Base().Text() != "http://example.org/" {
		t.Fatalf("expected Base event to update environment base")
	}
	if iri, ok := env.lookupPrefix("ex"); !ok || iri != "http://example.org/ns#" {
		t.Fatalf("expected Prefix event to bind ex, got %q ok=%v", iri, ok)
	}
}
