package serd

import "strings"

// prefixBinding is one entry of an Environment's ordered prefix table.
type prefixBinding struct {
	name string
	iri  string
}

// Environment holds an optional base IRI and an ordered table of
// name-to-IRI prefix bindings, mirroring the @base/@prefix (or
// xml:base/xmlns) state a Turtle/TriG/RDF-XML document accumulates as it
// is read. CURIE expansion and qualification are both relative to the
// current state of an Environment, so the zero value is a valid, empty
// environment.
type Environment struct {
	base     *URI
	baseText string
	prefixes []prefixBinding
}

// NewEnvironment returns an empty environment with no base and no prefixes.
func NewEnvironment() *Environment {
	return &Environment{}
}

// Base returns the current base IRI node, or nil if none is set.
func (e *Environment) Base() *Node {
	if e.baseText == "" {
		return nil
	}
	return NewIRI(e.baseText)
}

// SetBase installs iri as the environment's base. iri must already be an
// absolute IRI node (HasScheme); relative references must be resolved by
// the caller (typically via ResolveIRI against the previous base) before
// calling SetBase, matching how a Turtle @base directive is itself
// resolved against the prior base before taking effect.
func (e *Environment) SetBase(iri *Node) error {
	if iri == nil || iri.Kind() != IRI {
		return &SyntaxError{Status: BadArgument, Message: "base must be an IRI node"}
	}
	u, err := ParseURI(iri.Text())
	if err != nil {
		return err
	}
	if !u.hasScheme {
		return &SyntaxError{Status: BadArgument, Message: "base IRI must be absolute"}
	}
	e.base = u
	e.baseText = iri.Text()
	return nil
}

// SetPrefix binds name to iri. If iri is relative it is resolved against
// the current base, failing if no base is set. A duplicate name replaces
// the existing binding in place, preserving its original position so that
// qualify's "first matching prefix" behaviour is stable across rebinds
// only insofar as later bindings still win by value, not by scan order.
func (e *Environment) SetPrefix(name string, iri *Node) error {
	if iri == nil || iri.Kind() != IRI {
		return &SyntaxError{Status: BadArgument, Message: "prefix target must be an IRI node"}
	}
	text := iri.Text()
	u, err := ParseURI(text)
	if err != nil {
		return err
	}
	if !u.hasScheme {
		if e.base == nil {
			return &SyntaxError{Status: BadArgument, Message: "cannot resolve relative prefix IRI without a base"}
		}
		resolved, err := e.base.Resolve(text)
		if err != nil {
			return err
		}
		text = resolved.Serialize()
	}
	for i := range e.prefixes {
		if e.prefixes[i].name == name {
			e.prefixes[i].iri = text
			return nil
		}
	}
	e.prefixes = append(e.prefixes, prefixBinding{name: name, iri: text})
	return nil
}

// Prefixes returns a snapshot of the current (name, iri) bindings in
// table order, for a writer emitting @prefix directives.
func (e *Environment) Prefixes() []struct{ Name, IRI string } {
	out := make([]struct{ Name, IRI string }, len(e.prefixes))
	for i, p := range e.prefixes {
		out[i] = struct{ Name, IRI string }{p.name, p.iri}
	}
	return out
}

// Qualify attempts to abbreviate an absolute IRI as a CURIE by a linear
// scan over the prefix table: the first prefix whose IRI is a byte-prefix
// of iri, and whose residual suffix forms a valid PN_LOCAL, wins. Returns
// nil if no prefix qualifies.
func (e *Environment) Qualify(iri string) *Node {
	for _, p := range e.prefixes {
		if !strings.HasPrefix(iri, p.iri) {
			continue
		}
		suffix := iri[len(p.iri):]
		if suffix == "" || isValidPNLocal(suffix) {
			return NewCURIE(p.name + ":" + suffix)
		}
	}
	return nil
}

func isValidPNLocal(s string) bool {
	if s == "" {
		return false
	}
	runes := []rune(s)
	if !isPnCharsU(runes[0]) && runes[0] != ':' && !isDigit(runes[0]) && runes[0] != '%' && runes[0] != '\\' {
		return false
	}
	for i := 1; i < len(runes); i++ {
		r := runes[i]
		if isPnChars(r) || r == ':' || r == '.' {
			continue
		}
		if r == '%' && i+2 < len(runes) && isHexDigit(runes[i+1]) && isHexDigit(runes[i+2]) {
			continue
		}
		if r == '\\' {
			continue
		}
		return false
	}
	return !strings.HasSuffix(s, ".") || strings.HasSuffix(s, `\.`)
}

// ResolveIRI resolves text (a URI reference, typically from an IRIREF
// token) against the environment's current base, failing if no base is
// set and text is itself relative.
func (e *Environment) ResolveIRI(text string) (*Node, error) {
	u, err := ParseURI(text)
	if err != nil {
		return nil, err
	}
	if u.hasScheme {
		return NewIRI(text), nil
	}
	if e.base == nil {
		return nil, &SyntaxError{Status: BadArgument, Message: "relative IRI with no base set"}
	}
	resolved, err := e.base.Resolve(text)
	if err != nil {
		return nil, err
	}
	if !resolved.hasScheme {
		return nil, &SyntaxError{Status: BadArgument, Message: "IRI remains relative after resolution"}
	}
	return NewIRI(resolved.Serialize()), nil
}

// Expand fully resolves node against the environment: an IRI is resolved
// against base; a CURIE is split at its first ':' and its prefix looked
// up; a Literal with a CURIE or relative-IRI datatype has that datatype
// recursively expanded; a Blank is returned unchanged. Returns an error if
// an IRI remains relative, or a CURIE's prefix is undefined.
func (e *Environment) Expand(n *Node) (*Node, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Kind() {
	case IRI:
		return e.ResolveIRI(n.Text())
	case CURIE:
		return e.expandCURIE(n.Text())
	case Blank:
		return n, nil
	case Literal:
		dt := n.Datatype()
		if dt == nil {
			return n, nil
		}
		if dt.Kind() == IRI {
			u, err := ParseURI(dt.Text())
			if err == nil && u.hasScheme {
				return n, nil
			}
		}
		expandedDT, err := e.Expand(dt)
		if err != nil {
			return nil, err
		}
		return NewLiteral(n.Text(), expandedDT, n.Language())
	default:
		return n, nil
	}
}

// lookupPrefix returns the IRI bound to name, if any. Used by the reader
// and writer to resolve/qualify a PrefixedName term directly, without
// going through a CURIE Node value.
func (e *Environment) lookupPrefix(name string) (string, bool) {
	for _, p := range e.prefixes {
		if p.name == name {
			return p.iri, true
		}
	}
	return "", false
}

func (e *Environment) expandCURIE(text string) (*Node, error) {
	i := strings.IndexByte(text, ':')
	if i < 0 {
		return nil, &SyntaxError{Status: BadCURIE, Message: "CURIE missing ':'"}
	}
	name, suffix := text[:i], text[i+1:]
	for _, p := range e.prefixes {
		if p.name == name {
			return NewIRI(p.iri + suffix), nil
		}
	}
	return nil, &SyntaxError{Status: BadCURIE, Message: "undefined CURIE prefix: " + name}
}
