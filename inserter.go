package serd

// Inserter is a Sink that resolves every term it receives through an
// Environment before adding the resulting statement to a Store: relative
// IRIs are resolved against the environment's base, CURIEs are expanded
// to full IRIs, and a missing graph is substituted with DefaultGraph if
// one is configured. It is the counterpart to a Writer at the other end
// of a sink chain: a Writer serializes, an Inserter materializes.
type Inserter struct {
	BaseSink

	store *Store
	env   *Environment

	// DefaultGraph, if non-nil, is used in place of the default graph
	// for any statement arriving with Graph == nil.
	DefaultGraph *Node
}

// NewInserter returns an Inserter that expands terms against env and adds
// the result to store.
func NewInserter(store *Store, env *Environment) *Inserter {
	return &Inserter{store: store, env: env}
}

// Base implements Sink by forwarding to the environment.
func (ins *Inserter) Base(iri *Node) error {
	return ins.env.SetBase(iri)
}

// Prefix implements Sink by forwarding to the environment.
func (ins *Inserter) Prefix(name string, iri *Node) error {
	return ins.env.SetPrefix(name, iri)
}

// Statement expands stmt's four components through the environment and
// adds the result to the store. A duplicate statement is silently
// accepted (Add's false-but-nil-error return), matching the store's own
// idempotent-insert semantics.
func (ins *Inserter) Statement(flags StatementFlags, stmt Statement) error {
	subj, err := ins.env.Expand(stmt.Subject)
	if err != nil {
		return err
	}
	pred, err := ins.env.Expand(stmt.Predicate)
	if err != nil {
		return err
	}
	obj, err := ins.env.Expand(stmt.Object)
	if err != nil {
		return err
	}
	graph := stmt.Graph
	if graph != nil {
		graph, err = ins.env.Expand(graph)
		if err != nil {
			return err
		}
	} else {
		graph = ins.DefaultGraph
	}
	_, err = ins.store.Add(Statement{Subject: subj, Predicate: pred, Object: obj, Graph: graph, Cursor: stmt.Cursor})
	return err
}
