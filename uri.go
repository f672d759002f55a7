package serd

import "strings"

// URI is a parsed view over an absolute or relative URI reference, split
// into its RFC 3986 components. Unlike a zero-copy slice-into-buffer view,
// these are plain Go strings; the component boundaries still follow RFC
// 3986 §3 exactly; only the storage strategy differs from a C port that
// would slice the original buffer.
type URI struct {
	Scheme    string // without trailing ':'
	authority string // without leading "//"
	PathBase  string // unused by ParseURI; set by callers building relative-to views
	Path      string
	Query     string // without leading '?'
	Fragment  string // without leading '#'

	hasScheme    bool
	hasAuthority bool
	hasQuery     bool
	hasFragment  bool
}

// HasScheme reports whether the URI has an explicit scheme equal to s
// (case-insensitively, per RFC 3986 §3.1).
func (u *URI) HasScheme(s string) bool {
	return u.hasScheme && strings.EqualFold(u.Scheme, s)
}

// Authority returns the authority component, or "" with ok=false if the
// URI has no authority (as distinct from an empty authority "//").
func (u *URI) Authority() (string, bool) { return u.authority, u.hasAuthority }

// IsAbsolute reports whether the URI has a scheme and no fragment, per the
// RFC 3986 §4.3 definition of "absolute-URI".
func (u *URI) IsAbsolute() bool { return u.hasScheme && !u.hasFragment }

// ParseURI splits s into URI components per RFC 3986 §5.3's pseudocode,
// performing no normalization beyond segmentation: percent-escapes and
// dot-segments are preserved as written. Parsing an IRI (non-ASCII bytes
// in path/query/fragment) is accepted permissively, mirroring the
// reader's treatment of IRI references over strict ASCII URIs.
func ParseURI(s string) (*URI, error) {
	u := &URI{}
	rest := s

	if i := strings.IndexByte(rest, ':'); i > 0 && isSchemeLead(rest[:i]) {
		u.Scheme = rest[:i]
		u.hasScheme = true
		rest = rest[i+1:]
	}

	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		end := len(rest)
		for i, c := range []byte(rest) {
			if c == '/' || c == '?' || c == '#' {
				end = i
				break
			}
		}
		u.authority = rest[:end]
		u.hasAuthority = true
		rest = rest[end:]
	}

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		u.Fragment = rest[i+1:]
		u.hasFragment = true
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		u.Query = rest[i+1:]
		u.hasQuery = true
		rest = rest[:i]
	}

	u.Path = rest
	return u, nil
}

func isSchemeLead(s string) bool {
	if s == "" || !isAlpha(rune(s[0])) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := rune(s[i])
		if !isAlpha(c) && !isDigit(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

// Resolve implements RFC 3986 §5.2.2 reference resolution: u is the base
// (must be absolute), ref is parsed and resolved against it. In the RFC's
// terms u is Base, ref is R, and the returned URI is the target T.
func (u *URI) Resolve(ref string) (*URI, error) {
	r, err := ParseURI(ref)
	if err != nil {
		return nil, err
	}

	t := &URI{}
	switch {
	case r.hasScheme:
		t.Scheme, t.hasScheme = r.Scheme, true
		t.authority, t.hasAuthority = r.authority, r.hasAuthority
		t.Path = removeDotSegments(r.Path)
		t.Query, t.hasQuery = r.Query, r.hasQuery
	case r.hasAuthority:
		t.Scheme, t.hasScheme = u.Scheme, u.hasScheme
		t.authority, t.hasAuthority = r.authority, true
		t.Path = removeDotSegments(r.Path)
		t.Query, t.hasQuery = r.Query, r.hasQuery
	case r.Path == "":
		t.Scheme, t.hasScheme = u.Scheme, u.hasScheme
		t.authority, t.hasAuthority = u.authority, u.hasAuthority
		t.Path = u.Path
		if r.hasQuery {
			t.Query, t.hasQuery = r.Query, true
		} else {
			t.Query, t.hasQuery = u.Query, u.hasQuery
		}
	default:
		t.Scheme, t.hasScheme = u.Scheme, u.hasScheme
		t.authority, t.hasAuthority = u.authority, u.hasAuthority
		if strings.HasPrefix(r.Path, "/") {
			t.Path = removeDotSegments(r.Path)
		} else {
			t.Path = removeDotSegments(mergePath(u, r.Path))
		}
		t.Query, t.hasQuery = r.Query, r.hasQuery
	}
	t.Fragment, t.hasFragment = r.Fragment, r.hasFragment
	return t, nil
}

// mergePath implements RFC 3986 §5.2.3's "merge" routine.
func mergePath(base *URI, refPath string) string {
	if base.hasAuthority && base.Path == "" {
		return "/" + refPath
	}
	if i := strings.LastIndexByte(base.Path, '/'); i >= 0 {
		return base.Path[:i+1] + refPath
	}
	return refPath
}

// removeDotSegments implements RFC 3986 §5.2.4.
func removeDotSegments(path string) string {
	in := path
	var out strings.Builder

	for in != "" {
		switch {
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		case strings.HasPrefix(in, "/./"):
			in = "/" + in[3:]
		case in == "/.":
			in = "/"
		case strings.HasPrefix(in, "/../"):
			in = "/" + in[4:]
			removeLastSegment(&out)
		case in == "/..":
			in = "/"
			removeLastSegment(&out)
		case in == ".", in == "..":
			in = ""
		default:
			i := 0
			if strings.HasPrefix(in, "/") {
				i = 1
			}
			j := strings.IndexByte(in[i:], '/')
			if j < 0 {
				out.WriteString(in)
				in = ""
			} else {
				out.WriteString(in[:i+j])
				in = in[i+j:]
			}
		}
	}
	return out.String()
}

func removeLastSegment(out *strings.Builder) {
	s := out.String()
	i := strings.LastIndexByte(s, '/')
	if i < 0 {
		out.Reset()
		return
	}
	out.Reset()
	out.WriteString(s[:i])
}

// NewResolvedIRI parses text as a URI reference and resolves it against
// base (itself parsed as a URI reference), requiring the result to be
// absolute. Used by make_resolved_iri callers that already hold a base
// node rather than going through an Environment.
func NewResolvedIRI(text string, base *Node) (*Node, error) {
	if base == nil {
		u, err := ParseURI(text)
		if err != nil {
			return nil, err
		}
		if !u.hasScheme {
			return nil, &SyntaxError{Status: BadArgument, Message: "relative IRI with no base given"}
		}
		return NewIRI(text), nil
	}
	bu, err := ParseURI(base.Text())
	if err != nil {
		return nil, err
	}
	resolved, err := bu.Resolve(text)
	if err != nil {
		return nil, err
	}
	if !resolved.hasScheme {
		return nil, &SyntaxError{Status: BadArgument, Message: "IRI remains relative after resolution"}
	}
	return NewIRI(resolved.Serialize()), nil
}

// NewRelativeIRI renders target relative to base when target is a
// descendant of both base and root (root must itself be a prefix of
// base's path, bounding how far a ".." climb may go); otherwise it
// returns target unchanged as an IRI node. A nil root means "no bound
// beyond base itself" (no ".." climbing at all, only the nested-under-base
// case); a non-nil root additionally allows climbing out of base's own
// directory, as far up as root's path, via SerializeRelativeRooted.
func NewRelativeIRI(target string, base *Node, root *Node) (*Node, error) {
	tu, err := ParseURI(target)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return NewIRI(target), nil
	}
	bu, err := ParseURI(base.Text())
	if err != nil {
		return nil, err
	}
	if root == nil {
		return NewIRI(tu.SerializeRelative(bu)), nil
	}
	ru, err := ParseURI(root.Text())
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(bu.Path, ru.Path) {
		return NewIRI(target), nil
	}
	rel := tu.SerializeRelativeRooted(bu, ru)
	if rel == tu.Serialize() {
		return NewIRI(target), nil
	}
	return NewIRI(rel), nil
}

// Serialize reassembles the URI into its textual form per RFC 3986 §5.3.
func (u *URI) Serialize() string {
	var b strings.Builder
	if u.hasScheme {
		b.WriteString(u.Scheme)
		b.WriteByte(':')
	}
	if u.hasAuthority {
		b.WriteString("//")
		b.WriteString(u.authority)
	}
	b.WriteString(u.Path)
	if u.hasQuery {
		b.WriteByte('?')
		b.WriteString(u.Query)
	}
	if u.hasFragment {
		b.WriteByte('#')
		b.WriteString(u.Fragment)
	}
	return b.String()
}

// SerializeRelative serializes u relative to root: if u shares root's
// scheme and authority and its path is nested under root's path, the
// common prefix is dropped. Used by the writer to emit "</local/path>"
// style references when a document's base matches.
func (u *URI) SerializeRelative(root *URI) string {
	if root == nil || !u.hasScheme || !root.hasScheme || !strings.EqualFold(u.Scheme, root.Scheme) {
		return u.Serialize()
	}
	if u.hasAuthority != root.hasAuthority || u.authority != root.authority {
		return u.Serialize()
	}
	rp := root.Path
	if i := strings.LastIndexByte(rp, '/'); i >= 0 {
		rp = rp[:i+1]
	}
	if rp == "" || !strings.HasPrefix(u.Path, rp) {
		return u.Serialize()
	}
	var b strings.Builder
	b.WriteString(u.Path[len(rp):])
	if u.hasQuery {
		b.WriteByte('?')
		b.WriteString(u.Query)
	}
	if u.hasFragment {
		b.WriteByte('#')
		b.WriteString(u.Fragment)
	}
	return b.String()
}

// pathSegments splits a path into its non-empty '/'-delimited segments.
func pathSegments(p string) []string {
	var segs []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// baseDirSegments returns the segments of the directory containing p: all
// of p's segments if p already names a directory (ends in '/', or has
// none), otherwise all but the last (the file name).
func baseDirSegments(p string) []string {
	segs := pathSegments(p)
	if strings.HasSuffix(p, "/") || len(segs) == 0 {
		return segs
	}
	return segs[:len(segs)-1]
}

// commonPrefixLen returns how many leading elements a and b share.
func commonPrefixLen(a, b []string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// pathUnder reports whether p is prefix or a descendant of prefix, with the
// match landing on a '/' segment boundary (so "/ab" is not "under" "/a").
func pathUnder(p, prefix string) bool {
	prefix = strings.TrimSuffix(prefix, "/")
	if !strings.HasPrefix(p, prefix) {
		return false
	}
	rest := p[len(prefix):]
	return rest == "" || strings.HasPrefix(rest, "/")
}

// SerializeRelativeRooted serializes u relative to base, climbing via
// "../" segments when u's path lies outside base's own directory but is
// still nested under root's path. root bounds how far up the climb may
// go: it is the highest directory a "../"-chain is allowed to reach. If
// root is nil this is equivalent to SerializeRelative(base).
//
// For example, with root "file:///foo/root" and base
// "file:///foo/root/sub/base", a target of "file:///foo/root/other" is
// nested under root (though not under base's own directory) and
// serializes as "../other".
func (u *URI) SerializeRelativeRooted(base, root *URI) string {
	if root == nil {
		return u.SerializeRelative(base)
	}
	if !u.hasScheme || !base.hasScheme || !root.hasScheme ||
		!strings.EqualFold(u.Scheme, base.Scheme) || !strings.EqualFold(base.Scheme, root.Scheme) {
		return u.Serialize()
	}
	if u.hasAuthority != base.hasAuthority || u.authority != base.authority {
		return u.Serialize()
	}
	if base.hasAuthority != root.hasAuthority || base.authority != root.authority {
		return u.Serialize()
	}
	if !pathUnder(base.Path, root.Path) || !pathUnder(u.Path, root.Path) {
		return u.Serialize()
	}

	baseDir := baseDirSegments(base.Path)
	target := pathSegments(u.Path)
	common := commonPrefixLen(baseDir, target)
	climbs := len(baseDir) - common
	residual := target[common:]

	if climbs == 0 && len(residual) == 0 && len(baseDir) > 0 {
		// u's path is textually identical to base's own directory: an
		// empty relative reference would resolve back to base itself, not
		// to u, so climb one level and descend back in to disambiguate.
		climbs = 1
		residual = baseDir[len(baseDir)-1:]
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("../", climbs))
	b.WriteString(strings.Join(residual, "/"))
	if u.hasQuery {
		b.WriteByte('?')
		b.WriteString(u.Query)
	}
	if u.hasFragment {
		b.WriteByte('#')
		b.WriteString(u.Fragment)
	}
	return b.String()
}
