package serd

// Cursor records where a byte of input came from: which document, and its
// 1-based line and column. Columns advance by one per byte read, matching
// the reader's byte-source contract rather than rune count, so a cursor
// stays cheap to maintain while scanning.
type Cursor struct {
	Name   *Node // document identifier, typically an IRI or a plain string node
	Line   int
	Column int
}

// Equal reports field-wise equality of two cursors.
func (c Cursor) Equal(other Cursor) bool {
	return Equal(c.Name, other.Name) && c.Line == other.Line && c.Column == other.Column
}
