package scan

import (
	"errors"
	"fmt"
	"io"

	"github.com/marksantaniello/jsobj/stream"
)

// errEOF unwinds scanner frames after truncated input has been
// reported. run swallows it; only sink errors escape Scan.
var errEOF = errors.New("unexpected end of input")

// Scan reads a JSON document from r and pushes its event stream into
// sink. The returned error is the sink's own abort error or a read
// failure; syntax errors travel as EventError events and never fail
// the scan by themselves.
func Scan(r io.Reader, sink stream.EventSink, opts ...Option) error {
	d, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return ScanBytes(d, sink, opts...)
}

// ScanBytes scans an in-memory document. See Scan.
func ScanBytes(d []byte, sink stream.EventSink, opts ...Option) error {
	s := &scanner{d: d, pos: newPosDoc(d), sink: sink}
	for _, opt := range opts {
		opt(s)
	}
	return s.run()
}

type scanner struct {
	d    []byte
	i    int
	pos  *posDoc
	sink stream.EventSink

	maxDepth int
	eofSent  bool
}

func (s *scanner) eof() bool {
	return s.i >= len(s.d)
}

func (s *scanner) at(c byte) bool {
	return s.i < len(s.d) && s.d[s.i] == c
}

func (s *scanner) skipSpace() {
	for !s.eof() {
		switch s.d[s.i] {
		case ' ', '\t', '\n', '\r':
			s.i++
		default:
			return
		}
	}
}

func (s *scanner) emit(ev *stream.Event) error {
	return s.sink.WriteEvent(ev)
}

// emitAt stamps ev with the source position of the byte at offset
// before emitting.
func (s *scanner) emitAt(offset int, ev *stream.Event) error {
	ev.Line, ev.Col = s.pos.lineCol(offset)
	return s.emit(ev)
}

// errorf reports a syntax error at the cursor. A nil return means the
// sink elected to continue.
func (s *scanner) errorf(format string, args ...any) error {
	line, col := s.pos.lineCol(s.i)
	return s.emit(&stream.Event{
		Type: stream.EventError,
		Line: line,
		Col:  col,
		Msg:  fmt.Sprintf(format, args...),
	})
}

// eofErr reports truncated input, once, and hands frames errEOF to
// unwind on.
func (s *scanner) eofErr() error {
	if !s.eofSent {
		s.eofSent = true
		if err := s.errorf("unexpected end of input"); err != nil {
			return err
		}
	}
	return errEOF
}

// end closes the current container. Callers have already consumed the
// closing bracket, so it sits one byte back.
func (s *scanner) end() error {
	return s.emitAt(s.i-1, &stream.Event{Type: stream.EventEnd})
}

func (s *scanner) run() error {
	s.skipSpace()
	if s.eof() {
		if err := s.errorf("empty document"); err != nil {
			return err
		}
		return nil
	}
	if c := s.d[s.i]; c != '{' && c != '[' {
		if err := s.errorf("root value must be an object or array"); err != nil {
			return err
		}
		for !s.eof() && s.d[s.i] != '{' && s.d[s.i] != '[' {
			s.i++
		}
		if s.eof() {
			return nil
		}
	}
	_, err := s.value(nil, 0)
	if errors.Is(err, errEOF) {
		return nil
	}
	if err != nil {
		return err
	}
	s.skipSpace()
	if !s.eof() {
		if err := s.errorf("trailing data after document"); err != nil {
			return err
		}
	}
	return nil
}

// value scans one value and emits its events. ok=false reports a
// malformed value whose error is already emitted; the caller resyncs.
// depth counts containers already open.
func (s *scanner) value(key *string, depth int) (ok bool, err error) {
	if s.eof() {
		return false, s.eofErr()
	}
	c := s.d[s.i]
	switch {
	case c == '{' || c == '[':
		if s.maxDepth > 0 && depth >= s.maxDepth {
			if err := s.errorf("nesting deeper than %d", s.maxDepth); err != nil {
				return false, err
			}
			return false, nil
		}
		if c == '{' {
			return true, s.object(key, depth+1)
		}
		return true, s.array(key, depth+1)
	case c == '"':
		start := s.i
		v, ok, err := s.quoted()
		if err != nil || !ok {
			return ok, err
		}
		return true, s.emitAt(start, &stream.Event{Type: stream.EventString, Key: key, String: v})
	case c == '-' || asciiDigit(c):
		return s.number(key)
	default:
		return s.keyword(key)
	}
}

func (s *scanner) object(key *string, depth int) error {
	if err := s.emitAt(s.i, &stream.Event{Type: stream.EventBeginObject, Key: key}); err != nil {
		return err
	}
	s.i++
	s.skipSpace()
	if s.at('}') {
		s.i++
		return s.end()
	}
	for {
		s.skipSpace()
		if s.eof() {
			return s.eofErr()
		}
		if !s.at('"') {
			if err := s.errorf("expected object key"); err != nil {
				return err
			}
			more, err := s.resync()
			if err != nil || !more {
				return err
			}
			continue
		}
		k, ok, err := s.quoted()
		if err != nil {
			return err
		}
		if !ok {
			more, err := s.resync()
			if err != nil || !more {
				return err
			}
			continue
		}
		s.skipSpace()
		if s.eof() {
			return s.eofErr()
		}
		if !s.at(':') {
			if err := s.errorf("expected ':' after object key"); err != nil {
				return err
			}
			more, err := s.resync()
			if err != nil || !more {
				return err
			}
			continue
		}
		s.i++
		s.skipSpace()
		ok, err = s.value(&k, depth)
		if err != nil {
			return err
		}
		if !ok {
			more, err := s.resync()
			if err != nil || !more {
				return err
			}
			continue
		}
		s.skipSpace()
		if s.eof() {
			return s.eofErr()
		}
		switch s.d[s.i] {
		case ',':
			s.i++
		case '}':
			s.i++
			return s.end()
		default:
			if err := s.errorf("expected ',' or '}'"); err != nil {
				return err
			}
			more, err := s.resync()
			if err != nil || !more {
				return err
			}
		}
	}
}

func (s *scanner) array(key *string, depth int) error {
	if err := s.emitAt(s.i, &stream.Event{Type: stream.EventBeginArray, Key: key}); err != nil {
		return err
	}
	s.i++
	s.skipSpace()
	if s.at(']') {
		s.i++
		return s.end()
	}
	for {
		s.skipSpace()
		if s.eof() {
			return s.eofErr()
		}
		ok, err := s.value(nil, depth)
		if err != nil {
			return err
		}
		if !ok {
			more, err := s.resync()
			if err != nil || !more {
				return err
			}
			continue
		}
		s.skipSpace()
		if s.eof() {
			return s.eofErr()
		}
		switch s.d[s.i] {
		case ',':
			s.i++
		case ']':
			s.i++
			return s.end()
		default:
			if err := s.errorf("expected ',' or ']'"); err != nil {
				return err
			}
			more, err := s.resync()
			if err != nil || !more {
				return err
			}
		}
	}
}

// resync skips to the next separator after a member error. more=true
// means the container loop may take another member; false means the
// container closed (End emitted) or input ended. The skip is byte
// literal: quotes and brackets inside the skipped text are not
// interpreted, so recovery is approximate for badly broken input.
func (s *scanner) resync() (more bool, err error) {
	for !s.eof() {
		switch s.d[s.i] {
		case ',':
			s.i++
			return true, nil
		case '}', ']':
			s.i++
			return false, s.end()
		}
		s.i++
	}
	return false, s.eofErr()
}

func (s *scanner) keyword(key *string) (bool, error) {
	for _, kw := range []struct {
		text string
		ev   stream.Event
	}{
		{"true", stream.Event{Type: stream.EventBool, Bool: true}},
		{"false", stream.Event{Type: stream.EventBool}},
		{"null", stream.Event{Type: stream.EventNull}},
	} {
		n := len(kw.text)
		if s.i+n <= len(s.d) && string(s.d[s.i:s.i+n]) == kw.text {
			start := s.i
			s.i += n
			ev := kw.ev
			ev.Key = key
			return true, s.emitAt(start, &ev)
		}
	}
	if err := s.errorf("unexpected character %q", s.d[s.i]); err != nil {
		return false, err
	}
	return false, nil
}
