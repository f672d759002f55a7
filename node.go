package serd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind is the tag of an RDF term value.
type Kind uint8

// The four node kinds. A Node never changes kind after construction.
const (
	IRI Kind = iota
	Blank
	CURIE
	Literal
)

func (k Kind) String() string {
	switch k {
	case IRI:
		return "IRI"
	case Blank:
		return "Blank"
	case CURIE:
		return "CURIE"
	case Literal:
		return "Literal"
	default:
		return "Kind(?)"
	}
}

// Flags records precomputed textual properties of a Node's text, so that
// the writer never has to rescan a literal body to decide how to quote it.
type Flags uint8

const (
	// HasNewline is set when text contains a literal '\n' byte.
	HasNewline Flags = 1 << iota
	// HasQuote is set when text contains a '"' byte.
	HasQuote
	// HasDatatype is set on a Literal carrying a non-language datatype.
	HasDatatype
	// HasLanguage is set on a Literal carrying a language tag.
	HasLanguage
)

// Node is an immutable RDF term: an IRI, a blank node, a CURIE, or a
// literal. Nodes are allocated once and never mutated; two Nodes compare
// equal iff their kind, text and meta are recursively equal.
//
// A Node is always used through a pointer. Nodes are not interned: equal
// Nodes may be distinct pointers, and the statement store's index
// comparators compare Nodes by value (Compare), not by pointer identity.
type Node struct {
	kind  Kind
	text  string
	flags Flags
	meta  *Node // Literal only: either a datatype node or a language-tag node
}

// Kind returns the node's kind.
func (n *Node) Kind() Kind { return n.kind }

// Text returns the node's lexical form: the IRI string, the blank label,
// the CURIE body, or the literal body.
func (n *Node) Text() string { return n.text }

// Flags returns the precomputed textual properties of Text.
func (n *Node) Flags() Flags { return n.flags }

// Datatype returns the literal's datatype node (IRI or CURIE kind), or nil
// if n is not a Literal or carries no explicit datatype.
func (n *Node) Datatype() *Node {
	if n.kind != Literal || n.meta == nil {
		return nil
	}
	if n.meta.kind == Literal {
		return nil
	}
	return n.meta
}

// Language returns the literal's language tag, or "" if n is not a
// language-tagged Literal.
func (n *Node) Language() string {
	if n.kind != Literal || n.meta == nil || n.meta.kind != Literal {
		return ""
	}
	return n.meta.text
}

func computeFlags(text string) Flags {
	var f Flags
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			f |= HasNewline
		case '"':
			f |= HasQuote
		}
	}
	return f
}

// Equal reports whether a and b are the same term.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// Compare defines a total order over nodes: by kind, then text, then meta.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	if c := strings.Compare(a.text, b.text); c != 0 {
		return c
	}
	switch {
	case a.meta == nil && b.meta == nil:
		return 0
	case a.meta == nil:
		return -1
	case b.meta == nil:
		return 1
	default:
		return Compare(a.meta, b.meta)
	}
}

// Errors returned by the Node constructors.
var (
	ErrEmptyBlankLabel  = errors.New("serd: blank node label must not be empty")
	ErrLiteralMetaClash = errors.New("serd: literal cannot have both a datatype and a language tag")
	ErrNotFinite        = errors.New("serd: value is not finite")
	ErrRelativeDatatype = errors.New("serd: literal datatype IRI must be absolute")
)

// NewIRI constructs an IRI node. text is taken verbatim: callers that need
// validation should route through Parse/Resolve first.
func NewIRI(text string) *Node {
	return &Node{kind: IRI, text: text, flags: computeFlags(text)}
}

// NewCURIE constructs a CURIE node from a "prefix:suffix" body.
func NewCURIE(text string) *Node {
	return &Node{kind: CURIE, text: text, flags: computeFlags(text)}
}

// NewBlank constructs a blank node with the given label (without the
// leading "_:"). It fails if label is empty.
func NewBlank(label string) (*Node, error) {
	if label == "" {
		return nil, ErrEmptyBlankLabel
	}
	return &Node{kind: Blank, text: label, flags: computeFlags(label)}, nil
}

// rdfLangString is the datatype IRI text implied by the presence of a
// language tag; an explicit datatype equal to it is elided in favour of
// the language meta, per the RDF 1.1 concepts spec.
const rdfLangString = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"

// NewLiteral constructs a literal with an optional datatype node (IRI or
// CURIE kind) and/or language tag. At most one of datatype/lang may be
// supplied, except that a datatype whose text is rdf:langString is
// silently dropped in favour of lang, rather than rejected.
func NewLiteral(body string, datatype *Node, lang string) (*Node, error) {
	if datatype != nil && lang != "" {
		if datatype.text != rdfLangString {
			return nil, ErrLiteralMetaClash
		}
		datatype = nil
	}
	n := &Node{kind: Literal, text: body, flags: computeFlags(body)}
	switch {
	case lang != "":
		n.meta = &Node{kind: Literal, text: lang}
		n.flags |= HasLanguage
	case datatype != nil:
		if datatype.kind != IRI && datatype.kind != CURIE {
			return nil, fmt.Errorf("serd: literal datatype must be an IRI or CURIE node, got %v", datatype.kind)
		}
		n.meta = datatype
		n.flags |= HasDatatype
	}
	return n, nil
}

// MustLiteral is like NewLiteral but panics on error; useful for building
// well-known constant literals (datatype IRIs and the like) at init time.
func MustLiteral(body string, datatype *Node, lang string) *Node {
	n, err := NewLiteral(body, datatype, lang)
	if err != nil {
		panic(err)
	}
	return n
}

// NewBoolean constructs an xsd:boolean literal.
func NewBoolean(b bool) *Node {
	text := "false"
	if b {
		text = "true"
	}
	return MustLiteral(text, NewIRI(xsdBoolean), "")
}

// NewInteger constructs a canonical xsd:integer literal, or a literal of
// the given datatype if datatype is non-nil (e.g. a derived integer type
// like xsd:long).
func NewInteger(i int64, datatype *Node) *Node {
	dt := datatype
	if dt == nil {
		dt = NewIRI(xsdInteger)
	}
	return MustLiteral(strconv.FormatInt(i, 10), dt, "")
}

// Strings used by format verification in tests and writers.
func (n *Node) String() string {
	switch n.kind {
	case IRI:
		return "<" + n.text + ">"
	case Blank:
		return "_:" + n.text
	case CURIE:
		return n.text
	case Literal:
		s := `"` + n.text + `"`
		if lang := n.Language(); lang != "" {
			return s + "@" + lang
		}
		if dt := n.Datatype(); dt != nil {
			return s + "^^" + dt.String()
		}
		return s
	default:
		return "?"
	}
}
