package serd

import "sort"

// index names the six subject/predicate/object orderings a Store
// maintains. There are no graph-prefixed orderings: the graph is compared
// last within each ordering, and queries filter on it.
type indexKind int

const (
	idxSPO indexKind = iota
	idxSOP
	idxPSO
	idxPOS
	idxOSP
	idxOPS
	numIndexes
)

// entry is one statement as stored in an index: a reordering of its four
// node pointers plus the statement's position in Store.all, used to
// recover the full Statement during a scan.
type entry struct {
	a, b, c, g *Node
	pos        int
}

// Store is an in-memory, multi-indexed collection of statements, the
// in-process analogue of a serd "world" or "model": every statement
// added is interned into all six (subject, predicate, object)
// permutations so a Pattern query with any combination of bound terms
// can be served by a single ordered range scan rather than a full scan.
//
// Store is not safe for concurrent use without external synchronization.
type Store struct {
	all     []Statement
	indexes [numIndexes][]entry
	version int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Len returns the number of statements currently in the store.
func (s *Store) Len() int { return len(s.all) }

// Add inserts stmt, returning (true, nil) if it was newly added or
// (false, nil) if an identical statement already existed. A store never
// holds two equal statements.
func (s *Store) Add(stmt Statement) (bool, error) {
	if stmt.Subject == nil || stmt.Predicate == nil || stmt.Object == nil {
		return false, &SyntaxError{Status: BadArgument, Message: "statement missing subject, predicate or object"}
	}
	if stmt.Subject.Kind() == Literal || stmt.Predicate.Kind() == Literal || stmt.Predicate.Kind() == Blank {
		return false, &SyntaxError{Status: BadArgument, Message: "subject/predicate cannot be a literal, predicate cannot be blank"}
	}
	if _, ok := s.find(Pattern{Subject: stmt.Subject, Predicate: stmt.Predicate, Object: stmt.Object, Graph: stmt.Graph}); ok {
		return false, nil
	}
	pos := len(s.all)
	s.all = append(s.all, stmt)
	s.insertIndexes(stmt, pos)
	s.version++
	return true, nil
}

// find does a linear existence check, used only by Add; rangeBySubject
// walks the whole SPO index to collect the subject's statements, so the
// cost grows with the size of the store.
func (s *Store) find(p Pattern) (Statement, bool) {
	for _, stmt := range s.rangeBySubject(p.Subject) {
		if Equal(stmt.Predicate, p.Predicate) && Equal(stmt.Object, p.Object) && Equal(stmt.Graph, p.Graph) {
			return stmt, true
		}
	}
	return Statement{}, false
}

func (s *Store) rangeBySubject(subj *Node) []Statement {
	if subj == nil {
		return s.all
	}
	var out []Statement
	for _, e := range s.indexes[idxSPO] {
		if Equal(e.a, subj) {
			out = append(out, s.all[e.pos])
		}
	}
	return out
}

func (s *Store) insertIndexes(stmt Statement, pos int) {
	combos := [numIndexes][3]*Node{
		idxSPO: {stmt.Subject, stmt.Predicate, stmt.Object},
		idxSOP: {stmt.Subject, stmt.Object, stmt.Predicate},
		idxPSO: {stmt.Predicate, stmt.Subject, stmt.Object},
		idxPOS: {stmt.Predicate, stmt.Object, stmt.Subject},
		idxOSP: {stmt.Object, stmt.Subject, stmt.Predicate},
		idxOPS: {stmt.Object, stmt.Predicate, stmt.Subject},
	}
	for k, c := range combos {
		e := entry{a: c[0], b: c[1], c: c[2], g: stmt.Graph, pos: pos}
		idx := s.indexes[k]
		i := sort.Search(len(idx), func(j int) bool { return entryLess(e, idx[j]) })
		idx = append(idx, entry{})
		copy(idx[i+1:], idx[i:])
		idx[i] = e
		s.indexes[k] = idx
	}
}

func entryLess(a, b entry) bool {
	if c := Compare(a.a, b.a); c != 0 {
		return c < 0
	}
	if c := Compare(a.b, b.b); c != 0 {
		return c < 0
	}
	if c := Compare(a.c, b.c); c != 0 {
		return c < 0
	}
	return Compare(a.g, b.g) < 0
}

// Remove deletes stmt if present, returning whether it was found.
func (s *Store) Remove(stmt Statement) bool {
	for i, existing := range s.all {
		if existing.Equal(stmt) {
			s.removeAt(i)
			return true
		}
	}
	return false
}

// removeAt deletes the statement at position pos in s.all and rebuilds
// every index from scratch, the mechanism shared by Remove and
// Iterator.Erase.
func (s *Store) removeAt(pos int) {
	s.all = append(s.all[:pos], s.all[pos+1:]...)
	s.rebuildIndexes()
	s.version++
}

// Count returns the number of statements matching p.
func (s *Store) Count(p Pattern) int {
	it := s.Find(p)
	n := 0
	for {
		_, ok, err := it.Next()
		if err != nil || !ok {
			return n
		}
		n++
	}
}

// Ask reports whether any statement matches p.
func (s *Store) Ask(p Pattern) bool {
	_, ok, err := s.Find(p).Next()
	return err == nil && ok
}

func (s *Store) rebuildIndexes() {
	for k := range s.indexes {
		s.indexes[k] = s.indexes[k][:0]
	}
	all := s.all
	s.all = s.all[:0]
	for _, stmt := range all {
		pos := len(s.all)
		s.all = append(s.all, stmt)
		s.insertIndexes(stmt, pos)
	}
}

// bestIndex picks which of the six orderings lets a query for p resolve
// via the narrowest contiguous range, preferring the index whose leading
// bound components match the most of (subject, predicate, object).
func bestIndex(p Pattern) (indexKind, []*Node) {
	switch {
	case p.Subject != nil && p.Predicate != nil:
		return idxSPO, []*Node{p.Subject, p.Predicate}
	case p.Subject != nil && p.Object != nil:
		return idxSOP, []*Node{p.Subject, p.Object}
	case p.Predicate != nil && p.Object != nil:
		return idxPOS, []*Node{p.Predicate, p.Object}
	case p.Subject != nil:
		return idxSPO, []*Node{p.Subject}
	case p.Predicate != nil:
		return idxPSO, []*Node{p.Predicate}
	case p.Object != nil:
		return idxOSP, []*Node{p.Object}
	default:
		return idxSPO, nil
	}
}

// Iterator walks a Store's matches for a Pattern in index order. It is
// invalidated by any Add/Remove on the store that occurred after it was
// created; Next then returns (Statement{}, false, err) with err a
// *SyntaxError of Status BadIterator.
type Iterator struct {
	store   *Store
	version int64
	pattern Pattern
	kind    indexKind
	i, end  int
}

// Find returns an iterator over every statement matching p, using
// whichever index best narrows the scan given p's bound components
// (a "range" search when enough leading components are bound to binary
// search a contiguous span, degrading to a "filter" scan of the whole
// chosen index otherwise).
func (s *Store) Find(p Pattern) *Iterator {
	kind, prefix := bestIndex(p)
	idx := s.indexes[kind]
	lo, hi := 0, len(idx)
	if len(prefix) > 0 {
		lo = sort.Search(len(idx), func(j int) bool { return !entryPrefixLess(idx[j], prefix) })
		hi = sort.Search(len(idx), func(j int) bool { return entryPrefixGreater(idx[j], prefix) })
	}
	return &Iterator{store: s, version: s.version, pattern: p, kind: kind, i: lo, end: hi}
}

func entryPrefixLess(e entry, prefix []*Node) bool {
	fields := [3]*Node{e.a, e.b, e.c}
	for i, want := range prefix {
		if Compare(fields[i], want) < 0 {
			return true
		}
		if Compare(fields[i], want) > 0 {
			return false
		}
	}
	return false
}

func entryPrefixGreater(e entry, prefix []*Node) bool {
	fields := [3]*Node{e.a, e.b, e.c}
	for i, want := range prefix {
		if Compare(fields[i], want) > 0 {
			return true
		}
		if Compare(fields[i], want) < 0 {
			return false
		}
	}
	return false
}

// Next advances the iterator and reports whether a statement was
// produced. On BadIterator or exhaustion it returns false.
func (it *Iterator) Next() (Statement, bool, error) {
	if it.version != it.store.version {
		return Statement{}, false, &SyntaxError{Status: BadIterator, Message: "store mutated during iteration"}
	}
	idx := it.store.indexes[it.kind]
	for it.i < it.end {
		e := idx[it.i]
		it.i++
		stmt := it.store.all[e.pos]
		if it.pattern.matches(stmt) {
			return stmt, true, nil
		}
	}
	return Statement{}, false, nil
}

// Erase removes the statement most recently returned by Next from every
// index in the store and advances the iterator past it, so a following
// Next call resumes at whatever would otherwise have come after it. It
// must not be called before the first successful Next, or twice for the
// same yielded statement.
func (it *Iterator) Erase() error {
	if it.version != it.store.version {
		return &SyntaxError{Status: BadIterator, Message: "store mutated during iteration"}
	}
	if it.i == 0 {
		return &SyntaxError{Status: BadArgument, Message: "Erase called before Next yielded a statement"}
	}
	pos := it.store.indexes[it.kind][it.i-1].pos
	it.store.removeAt(pos)
	it.version = it.store.version
	it.i--
	it.end--
	return nil
}

// All drains the iterator into a slice; a convenience for small result
// sets and tests.
func (it *Iterator) All() ([]Statement, error) {
	var out []Statement
	for {
		stmt, ok, err := it.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, stmt)
	}
}

// Sink returns a Sink that adds every statement it receives to the
// store, ignoring Base/Prefix/End events. It is a thin adapter for
// feeding a Reader directly into a Store without an Environment-aware
// Inserter in front of it.
func (s *Store) Sink() Sink {
	return FuncSink{
		OnStatement: func(flags StatementFlags, stmt Statement) error {
			_, err := s.Add(stmt)
			return err
		},
	}
}
