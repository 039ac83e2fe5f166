package scan

import (
	"encoding/hex"
	"strings"
)

// quoted scans the double-quoted string at the cursor. It decodes the
// named JSON escapes, \uXXXX, and the serializer's two-hex-digit
// \hh form for control bytes; the named forms are tried first, which
// is unambiguous because control bytes render with a leading 0 or 1
// while the escape letters are all above 'a'.
//
// ok=false reports a malformed string whose error is already emitted;
// the caller resyncs.
func (s *scanner) quoted() (v string, ok bool, err error) {
	s.i++
	b := &strings.Builder{}
	for {
		if s.eof() {
			if !s.eofSent {
				s.eofSent = true
				if err := s.errorf("unterminated string"); err != nil {
					return "", false, err
				}
			}
			return "", false, errEOF
		}
		c := s.d[s.i]
		switch {
		case c == '"':
			s.i++
			return b.String(), true, nil
		case c == '\\':
			s.i++
			if s.eof() {
				continue
			}
			e := s.d[s.i]
			s.i++
			switch e {
			case '"', '\\', '/':
				b.WriteByte(e)
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'u':
				if len(s.d)-s.i < 4 || !allHex(s.d[s.i:s.i+4]) {
					if err := s.errorf("malformed \\u escape"); err != nil {
						return "", false, err
					}
					return "", false, nil
				}
				dst := []byte{0, 0}
				hex.Decode(dst, s.d[s.i:s.i+4])
				b.WriteRune(rune(dst[0])<<8 | rune(dst[1]))
				s.i += 4
			default:
				s.i--
				if len(s.d)-s.i < 2 || !allHex(s.d[s.i:s.i+2]) {
					if err := s.errorf("unknown escape \\%c", e); err != nil {
						return "", false, err
					}
					return "", false, nil
				}
				dst := []byte{0}
				hex.Decode(dst, s.d[s.i:s.i+2])
				b.WriteByte(dst[0])
				s.i += 2
			}
		case c < 0x20:
			if err := s.errorf("control character in string"); err != nil {
				return "", false, err
			}
			return "", false, nil
		default:
			b.WriteByte(c)
			s.i++
		}
	}
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}
