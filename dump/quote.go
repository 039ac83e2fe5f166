package dump

import "strings"

const hexDigits = "0123456789abcdef"

// QuoteString escapes s for a double quoted literal. Bytes below 0x20
// become a backslash and two lowercase hex digits, '"' and '\' get a
// backslash prefix, and every other byte passes through unchanged. The
// scan is byte-wise, so multi byte runes are left as their raw bytes.
func QuoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c < 32:
			b.WriteByte('\\')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0xf])
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
