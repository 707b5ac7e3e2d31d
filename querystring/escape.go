package querystring

import (
	"net/url"
	"strings"
)

// Escape percent-encodes every byte of s outside the unreserved set
// (ALPHA, DIGIT, "-", "_", ".", "~"). Spaces become "%20", never "+".
func Escape(s string) string {
	// QueryEscape only differs from component escaping in its use of "+"
	// for spaces. A literal "+" is already encoded as %2B at this point.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Unescape decodes the %XX sequences in s. A "+" is kept as-is, and
// malformed escapes are left in the output untouched rather than
// reported.
func Unescape(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	if u, err := url.PathUnescape(s); err == nil {
		return u
	}

	return unescapeLenient(s)
}

// unescapeLenient decodes every well-formed %XX sequence and copies
// anything else through.
func unescapeLenient(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
