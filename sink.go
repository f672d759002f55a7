package serd

// StatementFlags are abbreviation hints a Reader attaches to a Statement
// event, advising a downstream Sink (typically a Writer) about grouping
// the producer has already decided on. They are advisory only: a sink is
// free to ignore them and still produce correct output, just less
// abbreviated.
type StatementFlags uint8

const (
	// EmptyS marks a subject with no properties yet (a fresh "[]" or
	// blank node about to be described).
	EmptyS StatementFlags = 1 << iota
	// AnonSBegin opens an anonymous-blank-node subject scope, closed by
	// a matching End event carrying the same blank node.
	AnonSBegin
	// AnonOBegin opens an anonymous-blank-node object scope.
	AnonOBegin
	// ListSBegin marks the subject as the head of an RDF collection.
	ListSBegin
	// ListOBegin marks the object as the head of an RDF collection.
	ListOBegin
	// TerseS hints that the subject was written in terse/abbreviated
	// form (e.g. inside "[ ... ]").
	TerseS
	// TerseO hints that the object was written in terse form.
	TerseO
)

// Has reports whether all bits of want are set in f.
func (f StatementFlags) Has(want StatementFlags) bool { return f&want == want }

// Sink is a polymorphic consumer of the four event kinds a Reader
// produces. Implementations may filter, rewrite, fan out to multiple
// downstream sinks, or terminate the chain (a Writer or store Inserter).
// A Sink method returning a non-nil error aborts the read that is
// driving it; the Reader returns a *SyntaxError to its caller as is and
// wraps any other error in a *SyntaxError with Status Failure.
type Sink interface {
	// Base is called when the document's base IRI changes (e.g. a
	// Turtle @base or SPARQL BASE directive).
	Base(iri *Node) error
	// Prefix is called when a prefix binding is declared or rebound.
	Prefix(name string, iri *Node) error
	// Statement is called once per parsed triple or quad, with
	// abbreviation hints describing how the producer encountered it.
	Statement(flags StatementFlags, stmt Statement) error
	// End closes an anonymous blank-node or list scope previously
	// opened by a Statement event carrying AnonSBegin/AnonOBegin/
	// ListSBegin/ListOBegin for node.
	End(node *Node) error
}

// BaseSink is embeddable by Sink implementations that only care about a
// subset of events: its methods are no-ops, so an embedder need only
// override the events it cares about.
type BaseSink struct{}

func (BaseSink) Base(*Node) error                         { return nil }
func (BaseSink) Prefix(string, *Node) error                { return nil }
func (BaseSink) Statement(StatementFlags, Statement) error { return nil }
func (BaseSink) End(*Node) error                           { return nil }

// FuncSink adapts four plain functions into a Sink, for quick one-off
// pipelines (tests, filters) that don't warrant a named type. A nil
// function behaves like BaseSink's no-op for that event.
type FuncSink struct {
	OnBase      func(iri *Node) error
	OnPrefix    func(name string, iri *Node) error
	OnStatement func(flags StatementFlags, stmt Statement) error
	OnEnd       func(node *Node) error
}

func (s FuncSink) Base(iri *Node) error {
	if s.OnBase == nil {
		return nil
	}
	return s.OnBase(iri)
}

func (s FuncSink) Prefix(name string, iri *Node) error {
	if s.OnPrefix == nil {
		return nil
	}
	return s.OnPrefix(name, iri)
}

func (s FuncSink) Statement(flags StatementFlags, stmt Statement) error {
	if s.OnStatement == nil {
		return nil
	}
	return s.OnStatement(flags, stmt)
}

func (s FuncSink) End(node *Node) error {
	if s.OnEnd == nil {
		return nil
	}
	return s.OnEnd(node)
}

// TeeSink fans every event out to each of Sinks in order, stopping at the
// first error.
type TeeSink struct {
	Sinks []Sink
}

func (t TeeSink) Base(iri *Node) error {
	for _, s := range t.Sinks {
		if err := s.Base(iri); err != nil {
			return err
		}
	}
	return nil
}

func (t TeeSink) Prefix(name string, iri *Node) error {
	for _, s := range t.Sinks {
		if err := s.Prefix(name, iri); err != nil {
			return err
		}
	}
	return nil
}

func (t TeeSink) Statement(flags StatementFlags, stmt Statement) error {
	for _, s := range t.Sinks {
		if err := s.Statement(flags, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (t TeeSink) End(node *Node) error {
	for _, s := range t.Sinks {
		if err := s.End(node); err != nil {
			return err
		}
	}
	return nil
}
