package scan

import (
	"strconv"

	"github.com/marksantaniello/jsobj/stream"
)

// number scans the numeric literal at the cursor. Integer-shaped text
// becomes EventInt; a fraction or exponent, or an integer too wide for
// int64, becomes EventReal.
func (s *scanner) number(key *string) (bool, error) {
	start := s.i
	if s.at('-') {
		s.i++
	}
	n := asciiDigits(s.d[s.i:])
	if n == 0 {
		if err := s.errorf("malformed number"); err != nil {
			return false, err
		}
		return false, nil
	}
	if n > 1 && s.d[s.i] == '0' {
		if err := s.errorf("number with leading zero"); err != nil {
			return false, err
		}
		return false, nil
	}
	s.i += n
	f := fract(s.d[s.i:])
	s.i += f
	e := exp(s.d[s.i:])
	s.i += e
	text := string(s.d[start:s.i])
	if f+e == 0 {
		v, err := strconv.ParseInt(text, 10, 64)
		if err == nil {
			return true, s.emitAt(start, &stream.Event{Type: stream.EventInt, Key: key, Int: v})
		}
		// out of int64 range
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if err := s.errorf("malformed number %q", text); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, s.emitAt(start, &stream.Event{Type: stream.EventReal, Key: key, Float: v})
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func fract(d []byte) int {
	if len(d) == 0 {
		return 0
	}
	if d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// '.' must be followed by 1 or more digits, rfc 7159
		return 0
	}
	return n + 1
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}
