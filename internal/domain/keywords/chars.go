package keywords

// Character classes follow the C locale so that non-ASCII bytes are never
// punctuation or blanks and end up inside tokens.

// IsSpace reports whether c is a C-locale whitespace byte.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsAlnum reports whether c is an ASCII letter or digit.
func IsAlnum(c byte) bool {
	return IsDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsPunct reports whether c is printable ASCII that is neither a letter, a
// digit nor a space. Underscore and tilde are punctuation here; callers that
// build identifiers treat them separately.
func IsPunct(c byte) bool {
	return c > ' ' && c < 0x7f && !IsAlnum(c)
}

// IsIdentByte reports whether c may appear inside an identifier token.
func IsIdentByte(c byte) bool {
	return IsAlnum(c) || c == '_' || c == '~' || c >= 0x80
}
