package serd

// Statement is a (subject, predicate, object, graph?) tuple. Subject and
// predicate must never be Literal nodes; object may be any kind; Graph is
// nil for the default graph. A Statement produced by the store carries the
// same node pointers that were passed to Store.Add; the store does not copy
// or intern nodes. A caller-constructed Statement owns whatever nodes it
// references.
type Statement struct {
	Subject   *Node
	Predicate *Node
	Object    *Node
	Graph     *Node // nil => default graph

	Cursor *Cursor // optional parse-origin record
}

// IsQuad reports whether the statement carries an explicit (non-default)
// graph component.
func (s Statement) IsQuad() bool { return s.Graph != nil }

// Equal compares two statements by their four node components; Cursor is
// not part of identity.
func (s Statement) Equal(o Statement) bool {
	return Equal(s.Subject, o.Subject) &&
		Equal(s.Predicate, o.Predicate) &&
		Equal(s.Object, o.Object) &&
		Equal(s.Graph, o.Graph)
}

// Pattern is a 4-tuple for store queries. A nil Subject, Predicate or
// Object is a wildcard that matches any node at that position. A nil
// Graph matches only the default graph unless GraphWild is set.
type Pattern struct {
	Subject   *Node
	Predicate *Node
	Object    *Node
	Graph     *Node

	// GraphWild distinguishes "wildcard over graph, including default"
	// from "explicitly match the default graph" when Graph == nil: when
	// false (the zero value with Graph == nil means "default graph
	// exactly"), set GraphWild to true to mean "any graph".
	GraphWild bool
}

func (p Pattern) matches(s Statement) bool {
	if p.Subject != nil && !Equal(p.Subject, s.Subject) {
		return false
	}
	if p.Predicate != nil && !Equal(p.Predicate, s.Predicate) {
		return false
	}
	if p.Object != nil && !Equal(p.Object, s.Object) {
		return false
	}
	if !p.GraphWild && !Equal(p.Graph, s.Graph) {
		return false
	}
	if p.GraphWild && p.Graph != nil && !Equal(p.Graph, s.Graph) {
		return false
	}
	return true
}

// boundCount returns how many of (S,P,O,G) are concrete in the pattern;
// the graph counts as concrete (bound or explicitly default) unless
// GraphWild is set.
func (p Pattern) boundCount() int {
	n := 0
	if p.Subject != nil {
		n++
	}
	if p.Predicate != nil {
		n++
	}
	if p.Object != nil {
		n++
	}
	if !p.GraphWild {
		n++
	}
	return n
}
