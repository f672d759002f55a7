package serd

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Syntax selects which of the four grammars a Reader or Writer speaks.
type Syntax int

const (
	// NTriples is the flat, line-based triple syntax: no prefixes, no
	// abbreviation, one statement per '.'.
	NTriples Syntax = iota
	// NQuads is N-Triples plus an optional fourth (graph) term per
	// statement.
	NQuads
	// Turtle is the terse, abbreviating triple syntax with prefixes,
	// blank-node property lists and collection sugar.
	Turtle
	// TriG is Turtle plus named and default graph blocks.
	TriG
)

func (s Syntax) String() string {
	switch s {
	case NTriples:
		return "N-Triples"
	case NQuads:
		return "N-Quads"
	case Turtle:
		return "Turtle"
	case TriG:
		return "TriG"
	default:
		return "unknown syntax"
	}
}

func (s Syntax) isTerse() bool { return s == Turtle || s == TriG }
func (s Syntax) hasGraphBlocks() bool { return s == TriG }
func (s Syntax) hasInlineGraphTerm() bool { return s == NQuads }

// LogFields carries the structured fields a ReaderOptions.Log callback
// receives alongside a formatted message, mirroring the library's
// SERD_FILE/SERD_LINE/SERD_COL/SERD_STATUS convention.
type LogFields struct {
	File   *Node
	Line   int
	Column int
	Status Status
}

// LogLevel mirrors syslog severities, the vocabulary the log callback's
// level argument is drawn from.
type LogLevel int

const (
	LogEmerg LogLevel = iota
	LogAlert
	LogCrit
	LogErr
	LogWarning
	LogNotice
	LogInfo
	LogDebug
)

// LogFunc is a pluggable sink for errors and warnings a Reader chooses
// not to treat as fatal (lax-mode bad-syntax/bad-CURIE). A nil LogFunc
// discards everything, equivalent to a quiet sink.
type LogFunc func(domain string, level LogLevel, fields LogFields, message string)

// ReaderOptions configures a Reader.
type ReaderOptions struct {
	Syntax Syntax

	// Strict, when true, turns every grammar violation into a
	// terminating error. When false, bad-syntax and bad-CURIE errors
	// are reported via Log and the reader resynchronizes at the next
	// newline, per §4.F.4/§7.
	Strict bool

	// BlankPrefix, if set, is prepended to every reader-generated blank
	// label (e.g. "doc1" → "doc1b1", "doc1b2", ...), avoiding id-clash
	// with a document's own "_:b0"-shaped user labels.
	BlankPrefix string

	// Log receives non-fatal diagnostics in lax mode. Nil discards them.
	Log LogFunc

	// SourceName, if set, is attached to cursors and used as the
	// document identifier in LogFields.File.
	SourceName *Node

	// MaxNestingDepth bounds how many "[...]"/"(...)" scopes may nest
	// inside one another (TriG graph blocks are not counted) before the reader
	// reports Overflow, standing in for the fixed-capacity parse-time
	// stack arena of §4.F.2/§9 — this port represents node text as plain
	// owned Go strings rather than offsets into a bump-allocated byte
	// arena (see uri.go's URI type for the same deviation), so there is
	// no byte-budget to exhaust; bounding recursive nesting depth instead
	// bounds the one parse-time resource a GC-backed implementation can
	// still exhaust, the Go call stack itself. Zero means unbounded.
	MaxNestingDepth int
}

// Reader parses one of the four syntaxes from a byte source, dispatching
// Base/Prefix/Statement/End events to a Sink as it goes.
type Reader struct {
	lex  *lexer
	src  *ByteSource
	sink Sink
	env  *Environment
	opts ReaderOptions

	tokens    [3]token
	peekCount int

	bnodeSeq   int
	rootGraph  *Node // non-nil while inside a TriG named graph block
	nestDepth  int   // current "[...]"/"(...)" nesting level
}

// NewReader constructs a Reader over src, dispatching events to sink as
// it parses, using (and mutating, on @base/@prefix/BASE/PREFIX) env.
func NewReader(src *ByteSource, sink Sink, env *Environment, opts ReaderOptions) *Reader {
	if env == nil {
		env = NewEnvironment()
	}
	return &Reader{
		lex:  newLexer(src, opts.Strict),
		src:  src,
		sink: sink,
		env:  env,
		opts: opts,
	}
}

func (r *Reader) next() token {
	if r.peekCount > 0 {
		r.peekCount--
	} else {
		r.tokens[0] = r.lex.nextToken()
	}
	return r.tokens[r.peekCount]
}

func (r *Reader) peek() token {
	if r.peekCount > 0 {
		return r.tokens[r.peekCount-1]
	}
	r.peekCount = 1
	r.tokens[0] = r.lex.nextToken()
	return r.tokens[0]
}

func (r *Reader) backup() { r.peekCount++ }

// parseError is the panic payload recover() catches at the top of
// ReadChunk/ReadDocument, following the same errorf/recover discipline
// as a recursive-descent parser that doesn't want to thread an error
// return through every single production.
type parseError struct {
	err *SyntaxError
}

func (r *Reader) errorf(status Status, c Cursor, format string, args ...interface{}) {
	panic(parseError{&SyntaxError{Status: status, Cursor: c, Message: fmt.Sprintf(format, args...)}})
}

func (r *Reader) tokCursor(t token) Cursor {
	return Cursor{Name: r.opts.SourceName, Line: t.line, Column: t.col}
}

func (r *Reader) recover(errp *error) {
	e := recover()
	if e == nil {
		return
	}
	if _, ok := e.(runtime.Error); ok {
		panic(e)
	}
	pe, ok := e.(parseError)
	if !ok {
		panic(e)
	}
	*errp = pe.err
}

// ReadDocument parses the entire remaining input, dispatching every event
// to the Reader's sink. It returns nil on a clean EOF.
func (r *Reader) ReadDocument() error {
	for {
		ok, err := r.ReadChunk()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// ReadChunk parses exactly one top-level unit (a directive, or a
// triples/graph block up to its terminating '.'/'}'), dispatching
// whatever events it produced. It returns ok=false with a nil error at a
// clean EOF, suited to use as a yield point over a non-blocking source.
//
// In lax mode (ReaderOptions.Strict == false), a BadSyntax or BadCURIE
// error is instead reported through opts.Log and the reader
// resynchronizes at the next newline before retrying, per §4.F.4/§7;
// ReadChunk only returns an error for a condition lax mode doesn't cover,
// or when Strict is true.
func (r *Reader) ReadChunk() (ok bool, err error) {
	for {
		ok, err = r.readOneUnit()
		se, isSyntaxErr := err.(*SyntaxError)
		if err == nil || r.opts.Strict || !isSyntaxErr || !isRecoverableStatus(se.Status) {
			return ok, err
		}
		r.logRecovered(se)
		if !r.resyncToNextLine() {
			return false, nil
		}
	}
}

func (r *Reader) readOneUnit() (ok bool, err error) {
	defer r.recover(&err)

	if b, peekErr := r.src.PeekN(1); peekErr == nil && len(b) == 1 && b[0] == 0 {
		r.src.ReadByte() // skip a leading NUL, for null-delimited socket framing
	}

	tok := r.peek()
	if tok.typ == tokEOF {
		return false, nil
	}

	if !r.parseTopLevelUnit() {
		return false, nil
	}
	return true, nil
}

// isRecoverableStatus reports whether lax mode should resync-and-continue
// for this status rather than abort the whole read.
func isRecoverableStatus(s Status) bool {
	return s == BadSyntax || s == BadCURIE
}

func (r *Reader) logRecovered(se *SyntaxError) {
	if r.opts.Log == nil {
		return
	}
	r.opts.Log("reader", LogWarning, LogFields{
		File:   se.Cursor.Name,
		Line:   se.Cursor.Line,
		Column: se.Cursor.Column,
		Status: se.Status,
	}, se.Message)
}

// resyncToNextLine discards the reader's pending lookahead tokens and
// advances the raw byte source past the next newline, so parsing can
// resume at the start of a fresh line after a lax-mode error. It returns
// false if EOF was reached without finding one.
func (r *Reader) resyncToNextLine() bool {
	r.peekCount = 0
	r.nestDepth = 0
	for {
		b, err := r.src.ReadByte()
		if err != nil {
			return false
		}
		if b == '\n' {
			r.lex = newLexer(r.src, r.opts.Strict)
			return true
		}
	}
}

// parseTopLevelUnit consumes and dispatches one directive or
// triples/graph-block unit. It returns false only when it discovers EOF
// before any content (used by the initial dispatch in ReadChunk, kept
// here too for lax-mode resync loops that re-enter it).
func (r *Reader) parseTopLevelUnit() bool {
	tok := r.peek()
	switch tok.typ {
	case tokEOF:
		return false
	case tokAtPrefix:
		r.next()
		r.parsePrefixDirective(true)
	case tokAtBase:
		r.next()
		r.parseBaseDirective(true)
	case tokSparqlPrefix:
		r.next()
		r.parsePrefixDirective(false)
	case tokSparqlBase:
		r.next()
		r.parseBaseDirective(false)
	case tokGraphStart:
		if !r.opts.Syntax.hasGraphBlocks() {
			r.errorf(BadSyntax, r.tokCursor(tok), "'{' is not valid in %s", r.opts.Syntax)
		}
		r.next()
		r.parseGraphBlockBody()
		r.expect(tokGraphEnd, "graph block closing '}'")
	default:
		r.parseTriplesOrNamedGraph()
	}
	return true
}

func (r *Reader) expect(want tokenType, context string) token {
	t := r.next()
	if t.typ != want {
		if t.typ == tokError {
			r.errorf(BadSyntax, r.tokCursor(t), "%s", t.text)
		}
		r.errorf(BadSyntax, r.tokCursor(t), "expected %s, got %s", context, t.typ)
	}
	return t
}

// enterNesting accounts for entering one more "[...]"/"(...)" scope,
// reporting Overflow once MaxNestingDepth is exceeded (0 disables the
// bound). It returns a closer the caller should defer, so the depth is
// restored on every exit path, including an errorf panic unwinding
// through it.
func (r *Reader) enterNesting(tok token) func() {
	r.nestDepth++
	if r.opts.MaxNestingDepth > 0 && r.nestDepth > r.opts.MaxNestingDepth {
		r.errorf(Overflow, r.tokCursor(tok), "nesting exceeds the configured limit of %d", r.opts.MaxNestingDepth)
	}
	return func() { r.nestDepth-- }
}

func (r *Reader) freshBlank() *Node {
	r.bnodeSeq++
	label := fmt.Sprintf("%sb%d", r.opts.BlankPrefix, r.bnodeSeq)
	n, err := NewBlank(label)
	if err != nil {
		r.errorf(Internal, Cursor{}, "%v", err)
	}
	return n
}

func (r *Reader) checkBlankLabelClash(label string) {
	prefix := r.opts.BlankPrefix + "b"
	if r.opts.BlankPrefix == "" {
		prefix = "b"
	}
	if strings.HasPrefix(label, prefix) {
		rest := label[len(prefix):]
		if rest != "" && isAllDigits(rest) {
			r.errorf(IDClash, Cursor{}, "user blank label %q collides with the generated-label scheme; configure a distinct blank prefix", label)
		}
	}
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// parsePrefixDirective parses the body after @prefix/PREFIX has been
// consumed. requireDot is true for the Turtle "@prefix ... ." form and
// false for the SPARQL-style "PREFIX ..." form (no trailing dot).
func (r *Reader) parsePrefixDirective(requireDot bool) {
	label := r.expect(tokPNameNSOrLN(), "prefix label")
	name := strings.TrimSuffix(label.text, ":")
	iriTok := r.expect(tokIRIRef, "prefix IRI")
	iriNode, err := r.env.ResolveIRI(iriTok.text)
	if err != nil {
		r.errorf(BadArgument, r.tokCursor(iriTok), "%v", err)
	}
	if err := r.env.SetPrefix(name, iriNode); err != nil {
		r.errorf(BadArgument, r.tokCursor(iriTok), "%v", err)
	}
	if requireDot {
		r.expect(tokDot, "'.' terminating @prefix")
	}
	if err := r.sink.Prefix(name, iriNode); err != nil {
		panic(parseError{asSyntaxError(err, r.tokCursor(iriTok))})
	}
}

func (r *Reader) parseBaseDirective(requireDot bool) {
	iriTok := r.expect(tokIRIRef, "base IRI")
	iriNode, err := r.env.ResolveIRI(iriTok.text)
	if err != nil {
		r.errorf(BadArgument, r.tokCursor(iriTok), "%v", err)
	}
	if err := r.env.SetBase(iriNode); err != nil {
		r.errorf(BadArgument, r.tokCursor(iriTok), "%v", err)
	}
	if requireDot {
		r.expect(tokDot, "'.' terminating @base")
	}
	if err := r.sink.Base(iriNode); err != nil {
		panic(parseError{asSyntaxError(err, r.tokCursor(iriTok))})
	}
}

func asSyntaxError(err error, c Cursor) *SyntaxError {
	if se, ok := err.(*SyntaxError); ok {
		return se
	}
	return &SyntaxError{Status: Failure, Cursor: c, Message: err.Error()}
}

// tokPNameNSOrLN is a small adapter: the lexer always produces tokPNameLN
// for "name:" (an empty local part is valid PN_LOCAL), so prefix labels
// are recognized by that token type too.
func tokPNameNSOrLN() tokenType { return tokPNameLN }

// parseTriplesOrNamedGraph parses the default production at top level: a
// term, which is then either a graph label followed by a TriG wrapped
// graph block, or the subject of an ordinary triples statement.
func (r *Reader) parseTriplesOrNamedGraph() {
	subjTok := r.peek()
	subj := r.parseSubjectTerm()

	if r.opts.Syntax.hasGraphBlocks() && r.peek().typ == tokGraphStart {
		if subj.Kind() == Literal {
			r.errorf(BadSyntax, r.tokCursor(subjTok), "graph name must not be a literal")
		}
		r.next()
		prevGraph := r.rootGraph
		r.rootGraph = subj
		r.parseGraphBlockBody()
		r.rootGraph = prevGraph
		r.expect(tokGraphEnd, "graph block closing '}'")
		return
	}

	r.parsePredicateObjectListWithFlag(subj, 0)
	r.expect(tokDot, "'.' terminating triples")
}

// parseGraphBlockBody parses zero or more triples statements up to (but
// not including) the closing '}', each attributed to r.rootGraph (set by
// the caller before entering).
func (r *Reader) parseGraphBlockBody() {
	for {
		tok := r.peek()
		if tok.typ == tokGraphEnd {
			return
		}
		subj := r.parseSubjectTerm()
		r.parsePredicateObjectListWithFlag(subj, 0)
		r.expect(tokDot, "'.' terminating triples")
	}
}

// parseSubjectTerm parses a subject position term: an IRI, prefixed
// name, blank node label, anonymous blank ("[]" or a property list), or
// (non-standard but harmless to accept) a collection.
func (r *Reader) parseSubjectTerm() *Node {
	tok := r.next()
	switch tok.typ {
	case tokIRIRef:
		return r.resolveIRIRefToken(tok)
	case tokPNameLN:
		if !r.opts.Syntax.isTerse() {
			r.errorf(BadSyntax, r.tokCursor(tok), "prefixed name is not valid in %s", r.opts.Syntax)
		}
		return r.resolvePrefixedNameToken(tok)
	case tokBlankNodeLabel:
		r.checkBlankLabelClash(tok.text)
		n, err := NewBlank(tok.text)
		if err != nil {
			r.errorf(BadSyntax, r.tokCursor(tok), "%v", err)
		}
		return n
	case tokAnonBlank:
		return r.freshBlank()
	case tokPropertyListStart:
		if !r.opts.Syntax.isTerse() {
			r.errorf(BadSyntax, r.tokCursor(tok), "'[' is not valid in %s", r.opts.Syntax)
		}
		defer r.enterNesting(tok)()
		return r.parseBlankPropertyList()
	case tokCollectionStart:
		if !r.opts.Syntax.isTerse() {
			r.errorf(BadSyntax, r.tokCursor(tok), "'(' is not valid in %s", r.opts.Syntax)
		}
		defer r.enterNesting(tok)()
		return r.parseCollection()
	case tokError:
		r.errorf(BadSyntax, r.tokCursor(tok), "%s", tok.text)
	}
	r.errorf(BadSyntax, r.tokCursor(tok), "unexpected %s as subject", tok.typ)
	return nil
}

// parsePredicateObjectListWithFlag parses "predicate objectList (';'
// predicate objectList)*" for the given subject, emitting one Statement
// per object against r.currentGraph(). leadingFlag controls whether the
// very first emitted statement should carry AnonSBegin/ListSBegin (set
// only when subject was just opened by "[ ... ]" or "( ... )" at the top
// of its own scope, per §8.3 example 2).
func (r *Reader) parsePredicateObjectListWithFlag(subj *Node, leadingFlag StatementFlags) {
	graph := r.currentGraph()
	first := true
	for {
		predTok := r.next()
		var pred *Node
		switch predTok.typ {
		case tokA:
			if !r.opts.Syntax.isTerse() {
				r.errorf(BadSyntax, r.tokCursor(predTok), "'a' is not valid in %s", r.opts.Syntax)
			}
			pred = NewIRI(rdfType)
		case tokIRIRef:
			pred = r.resolveIRIRefToken(predTok)
		case tokPNameLN:
			if !r.opts.Syntax.isTerse() {
				r.errorf(BadSyntax, r.tokCursor(predTok), "prefixed name is not valid in %s", r.opts.Syntax)
			}
			pred = r.resolvePrefixedNameToken(predTok)
		case tokError:
			r.errorf(BadSyntax, r.tokCursor(predTok), "%s", predTok.text)
		default:
			r.errorf(BadSyntax, r.tokCursor(predTok), "unexpected %s as predicate", predTok.typ)
		}

		for {
			flags := StatementFlags(0)
			if first {
				flags = leadingFlag
			}
			obj, alreadyEmitted := r.parseObjectTerm(subj, pred, graph, &flags)
			stmtGraph := graph
			if r.opts.Syntax.hasInlineGraphTerm() && stmtGraph == nil {
				if g := r.tryParseInlineGraphTerm(); g != nil {
					stmtGraph = g
				}
			}
			if !alreadyEmitted {
				if err := r.sink.Statement(flags, Statement{Subject: subj, Predicate: pred, Object: obj, Graph: stmtGraph}); err != nil {
					panic(parseError{asSyntaxError(err, r.tokCursor(predTok))})
				}
			}
			first = false

			switch r.peek().typ {
			case tokComma:
				r.next()
				continue
			}
			break
		}

		if r.peek().typ == tokSemicolon {
			for r.peek().typ == tokSemicolon {
				r.next() // repeated ';'
			}
			if t := r.peek().typ; t == tokDot || t == tokPropertyListEnd {
				return // trailing ';' with nothing after it
			}
			continue
		}
		return
	}
}

// parseObjectTerm parses one object-position term. For a non-empty
// anonymous blank-node or collection scope, the wrapping "subj pred obj"
// statement is emitted by this function itself (with AnonOBegin/
// ListOBegin set), before any of the scope's own nested Statement/End
// events, so a streaming Writer sees the bracket opened before it is
// asked to render what's inside it. The returned bool reports whether
// the wrapper statement was already emitted (true) or still needs to be
// built and dispatched by the caller (false, the ordinary case, and also
// the case for an empty "[]"/"()" with nothing to wrap).
func (r *Reader) parseObjectTerm(subj, pred, graph *Node, flags *StatementFlags) (*Node, bool) {
	tok := r.next()
	switch tok.typ {
	case tokIRIRef:
		return r.resolveIRIRefToken(tok), false
	case tokPNameLN:
		if !r.opts.Syntax.isTerse() {
			r.errorf(BadSyntax, r.tokCursor(tok), "prefixed name is not valid in %s", r.opts.Syntax)
		}
		return r.resolvePrefixedNameToken(tok), false
	case tokBlankNodeLabel:
		r.checkBlankLabelClash(tok.text)
		n, err := NewBlank(tok.text)
		if err != nil {
			r.errorf(BadSyntax, r.tokCursor(tok), "%v", err)
		}
		return n, false
	case tokAnonBlank:
		return r.freshBlank(), false
	case tokString:
		return r.finishLiteral(tok), false
	case tokInteger:
		return MustLiteral(tok.text, NewIRI(xsdInteger), ""), false
	case tokDecimal:
		return MustLiteral(tok.text, NewIRI(xsdDecimal), ""), false
	case tokDouble:
		return MustLiteral(tok.text, NewIRI(xsdDouble), ""), false
	case tokBooleanTrue:
		if !r.opts.Syntax.isTerse() {
			r.errorf(BadSyntax, r.tokCursor(tok), "bareword boolean is not valid in %s", r.opts.Syntax)
		}
		return NewBoolean(true), false
	case tokBooleanFalse:
		if !r.opts.Syntax.isTerse() {
			r.errorf(BadSyntax, r.tokCursor(tok), "bareword boolean is not valid in %s", r.opts.Syntax)
		}
		return NewBoolean(false), false
	case tokPropertyListStart:
		if !r.opts.Syntax.isTerse() {
			r.errorf(BadSyntax, r.tokCursor(tok), "'[' is not valid in %s", r.opts.Syntax)
		}
		defer r.enterNesting(tok)()
		return r.parseBlankPropertyListAsObject(subj, pred, graph, flags)
	case tokCollectionStart:
		if !r.opts.Syntax.isTerse() {
			r.errorf(BadSyntax, r.tokCursor(tok), "'(' is not valid in %s", r.opts.Syntax)
		}
		defer r.enterNesting(tok)()
		return r.parseCollectionAsObject(subj, pred, graph, flags)
	case tokError:
		r.errorf(BadSyntax, r.tokCursor(tok), "%s", tok.text)
	}
	r.errorf(BadSyntax, r.tokCursor(tok), "unexpected %s as object", tok.typ)
	return nil, false
}

// parseBlankPropertyListAsObject parses "[ predicateObjectList? ]" in
// object position, the opening '[' already consumed. An empty "[]" is
// returned as a plain fresh blank with no wrapper/End events at all, the
// same as a bare anonymous blank token; a non-empty list first dispatches
// the "subj pred blank" wrapper (flagged AnonOBegin) and only then parses
// its body, so the wrapper always precedes the content it wraps.
func (r *Reader) parseBlankPropertyListAsObject(subj, pred, graph *Node, flags *StatementFlags) (*Node, bool) {
	blank := r.freshBlank()
	if r.peek().typ == tokPropertyListEnd {
		r.next()
		return blank, false
	}
	*flags |= AnonOBegin
	if err := r.sink.Statement(*flags, Statement{Subject: subj, Predicate: pred, Object: blank, Graph: graph}); err != nil {
		panic(parseError{asSyntaxError(err, Cursor{})})
	}
	r.parsePredicateObjectListWithFlag(blank, 0)
	r.expect(tokPropertyListEnd, "']' closing blank node property list")
	if err := r.sink.End(blank); err != nil {
		panic(parseError{asSyntaxError(err, Cursor{})})
	}
	return blank, true
}

// parseBlankPropertyList parses the body of "[ predicateObjectList? ]" in
// subject position, the opening '[' already consumed. There is no
// wrapping statement to sequence against here (the blank itself becomes
// the caller's subject), so its first inner statement (if any) is
// flagged AnonSBegin directly.
func (r *Reader) parseBlankPropertyList() *Node {
	blank := r.freshBlank()
	if r.peek().typ == tokPropertyListEnd {
		r.next()
		return blank
	}
	r.parsePredicateObjectListWithFlag(blank, AnonSBegin)
	r.expect(tokPropertyListEnd, "']' closing blank node property list")
	if err := r.sink.End(blank); err != nil {
		panic(parseError{asSyntaxError(err, Cursor{})})
	}
	return blank
}

// currentGraph returns the name of the enclosing TriG graph block
// (r.rootGraph), or nil outside one; statements of nested anonymous
// nodes and collections take their graph from it.
func (r *Reader) currentGraph() *Node { return r.rootGraph }

// parseCollection parses the body of "( item* )" in subject position, the
// opening '(' already consumed, as the rdf:first/rdf:rest linked list
// sugar. There is no wrapping statement to sequence against here (the
// list head itself becomes the caller's subject), so items are parsed
// and dispatched directly, with the first one flagged ListSBegin.
func (r *Reader) parseCollection() *Node {
	if r.peek().typ == tokCollectionEnd {
		r.next()
		return NewIRI(rdfNil)
	}
	head := r.freshBlank()
	r.parseCollectionItems(head, ListSBegin)
	return head
}

// parseCollectionAsObject parses "( item* )" in object position, the
// opening '(' already consumed. A non-empty list first dispatches the
// "subj pred head" wrapper statement (flagged ListOBegin), then parses
// the rdf:first/rdf:rest chain, so the wrapper always precedes its
// content; an empty "()" is just rdf:nil, with no wrapper at all.
func (r *Reader) parseCollectionAsObject(subj, pred, graph *Node, flags *StatementFlags) (*Node, bool) {
	if r.peek().typ == tokCollectionEnd {
		r.next()
		return NewIRI(rdfNil), false
	}
	*flags |= ListOBegin
	head := r.freshBlank()
	if err := r.sink.Statement(*flags, Statement{Subject: subj, Predicate: pred, Object: head, Graph: graph}); err != nil {
		panic(parseError{asSyntaxError(err, Cursor{})})
	}
	r.parseCollectionItems(head, 0)
	return head, true
}

// parseCollectionItems parses the "item (item)*" body of a collection
// already headed by head, dispatching one rdf:first and one rdf:rest
// statement per item and a final End(head). leadingFlag, if non-zero, is
// OR'd onto the very first rdf:first statement's flags.
func (r *Reader) parseCollectionItems(head *Node, leadingFlag StatementFlags) {
	cur := head
	first := true
	for {
		flags := StatementFlags(0)
		if first {
			flags = leadingFlag
		}
		itemFlags := StatementFlags(0)
		item, alreadyEmitted := r.parseObjectTerm(cur, NewIRI(rdfFirst), r.currentGraph(), &itemFlags)
		flags |= itemFlags
		if !alreadyEmitted {
			if err := r.sink.Statement(flags, Statement{Subject: cur, Predicate: NewIRI(rdfFirst), Object: item, Graph: r.currentGraph()}); err != nil {
				panic(parseError{asSyntaxError(err, Cursor{})})
			}
		}
		first = false

		if r.peek().typ == tokCollectionEnd {
			r.next()
			if err := r.sink.Statement(0, Statement{Subject: cur, Predicate: NewIRI(rdfRest), Object: NewIRI(rdfNil), Graph: r.currentGraph()}); err != nil {
				panic(parseError{asSyntaxError(err, Cursor{})})
			}
			break
		}
		next := r.freshBlank()
		if err := r.sink.Statement(0, Statement{Subject: cur, Predicate: NewIRI(rdfRest), Object: next, Graph: r.currentGraph()}); err != nil {
			panic(parseError{asSyntaxError(err, Cursor{})})
		}
		cur = next
	}

	if err := r.sink.End(head); err != nil {
		panic(parseError{asSyntaxError(err, Cursor{})})
	}
}

// tryParseInlineGraphTerm consumes and returns an N-Quads-style fourth
// (graph) term if one is present before the statement's terminating '.',
// or nil if the next token is already '.' (a plain triple).
func (r *Reader) tryParseInlineGraphTerm() *Node {
	switch r.peek().typ {
	case tokIRIRef:
		return r.resolveIRIRefToken(r.next())
	case tokPNameLN:
		return r.resolvePrefixedNameToken(r.next())
	case tokBlankNodeLabel:
		tok := r.next()
		n, err := NewBlank(tok.text)
		if err != nil {
			r.errorf(BadSyntax, r.tokCursor(tok), "%v", err)
		}
		return n
	default:
		return nil
	}
}

func (r *Reader) resolveIRIRefToken(tok token) *Node {
	n, err := r.env.ResolveIRI(tok.text)
	if err != nil {
		r.errorf(BadArgument, r.tokCursor(tok), "%v", err)
	}
	return n
}

func (r *Reader) resolvePrefixedNameToken(tok token) *Node {
	i := strings.IndexByte(tok.text, ':')
	name, suffix := tok.text[:i], tok.text[i+1:]
	iri, ok := r.env.lookupPrefix(name)
	if !ok {
		r.errorf(BadCURIE, r.tokCursor(tok), "undefined prefix %q", name)
	}
	suffix = unescapePNLocal(suffix)
	return NewIRI(iri + suffix)
}

func unescapePNLocal(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			b.WriteByte(s[i])
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// finishLiteral parses the optional "^^datatype" or "@lang" suffix after
// a string token and builds the resulting Literal node.
func (r *Reader) finishLiteral(strTok token) *Node {
	switch r.peek().typ {
	case tokLangTag:
		langTok := r.next()
		n, err := NewLiteral(strTok.text, nil, langTok.text)
		if err != nil {
			r.errorf(Invalid, r.tokCursor(strTok), "%v", err)
		}
		return n
	case tokDataTypeMarker:
		r.next()
		dtTok := r.next()
		var dt *Node
		switch dtTok.typ {
		case tokIRIRef:
			dt = r.resolveIRIRefToken(dtTok)
		case tokPNameLN:
			dt = r.resolvePrefixedNameToken(dtTok)
		default:
			r.errorf(BadSyntax, r.tokCursor(dtTok), "expected datatype IRI, got %s", dtTok.typ)
		}
		n, err := NewLiteral(strTok.text, dt, "")
		if err != nil {
			r.errorf(Invalid, r.tokCursor(strTok), "%v", err)
		}
		return n
	default:
		n, err := NewLiteral(strTok.text, NewIRI(xsdString), "")
		if err != nil {
			r.errorf(Invalid, r.tokCursor(strTok), "%v", err)
		}
		return n
	}
}

// ReadAll is a convenience wrapper: it reads src fully through a Reader
// configured with opts against env, dispatching to sink, and translates
// a clean EOF to nil (matching the common case of "parse this whole
// document" callers, as opposed to ReadChunk's incremental use).
func ReadAll(src io.Reader, sink Sink, env *Environment, opts ReaderOptions) error {
	bs := NewByteSource(src, opts.SourceName, 4096)
	rd := NewReader(bs, sink, env, opts)
	return rd.ReadDocument()
}
