package serd

import "unicode/utf8"

// Character class tables and UTF-8 helpers shared by the reader and writer.
//
// The PN_CHARS family below follows the Turtle/SPARQL grammar definitions
// (https://www.w3.org/TR/turtle/#grammar-production-PN_CHARS_BASE) and is
// laid out as the same kind of paired range table used by the lexer this
// package grew out of.
var (
	hexDigits = []byte("0123456789ABCDEFabcdef")

	// badIRIRunes are bytes/runes disallowed unescaped inside an IRIREF.
	badIRIRunes = [...]rune{' ', '<', '>', '"', '{', '}', '|', '^', '`', '\\'}

	pnCharsBaseTab = []rune{
		'A', 'Z',
		'a', 'z',
		0x00C0, 0x00D6,
		0x00D8, 0x00F6,
		0x00F8, 0x02FF,
		0x0370, 0x037D,
		0x037F, 0x1FFF,
		0x200C, 0x200D,
		0x2070, 0x218F,
		0x2C00, 0x2FEF,
		0x3001, 0xD7FF,
		0xF900, 0xFDCF,
		0xFDF0, 0xFFFD,
		0x10000, 0xEFFFF,
	}

	pnCharsUExtra = []rune{'_', '_'}

	pnCharsExtra = []rune{
		'-', '-',
		'0', '9',
		0x00B7, 0x00B7,
		0x0300, 0x036F,
		0x203F, 0x2040,
	}

	pnLocalEsc = [...]rune{
		'_', '~', '.', '-', '!', '$', '&', '\'', '(', ')',
		'*', '+', ',', ';', '=', '/', '?', '#', '@', '%',
	}
)

func inRanges(r rune, tab []rune) bool {
	for i := 0; i+1 < len(tab); i += 2 {
		if r >= tab[i] && r <= tab[i+1] {
			return true
		}
	}
	return false
}

func isPnCharsBase(r rune) bool {
	return inRanges(r, pnCharsBaseTab)
}

func isPnCharsU(r rune) bool {
	return isPnCharsBase(r) || inRanges(r, pnCharsUExtra)
}

func isPnChars(r rune) bool {
	return isPnCharsU(r) || inRanges(r, pnCharsExtra)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlphaOrDigit(r rune) bool {
	return isAlpha(r) || isDigit(r)
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// isUnreservedFileByte reports whether b needs no percent-encoding in a
// file: URI path, per RFC 3986 unreserved plus the small path-safe set
// make_file_uri is specified to preserve.
func isUnreservedFileByte(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '-', '.', '_', '~',
		':', '/', '@', '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

// decodeRuneFFFD decodes like utf8.DecodeRuneInString: an invalid encoding
// yields U+FFFD (the same value as utf8.RuneError) with width 1, or width
// 0 for empty input, so only the width tells it apart from a valid U+FFFD.
func decodeRuneFFFD(s string) (r rune, size int) {
	r, size = utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return 0xFFFD, size
	}
	return r, size
}
