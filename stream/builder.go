package stream

import (
	"fmt"

	"github.com/marksantaniello/jsobj/ir"
)

// ErrorFunc decides whether a parse survives a syntax error. It
// receives the error's 1-based position and message; returning true
// continues the parse, false aborts it.
type ErrorFunc func(line, col uint, msg string) bool

// Builder is the EventSink that assembles an ir.Node tree from a
// scanner's event stream. One Builder serves one parse: it owns every
// intermediate container until Root hands the finished tree off, and
// an abort discards them all.
//
// Events that violate the scanner contract (a dictionary value with no
// key, End with nothing open, values after the document closed) panic.
type Builder struct {
	errorFunc ErrorFunc
	positions map[*ir.Node]*Pos
	stack     []*ir.Node
	root      *ir.Node
	state     buildState
}

// Pos locates a node in the scanned source, 1-based. End marks the
// closing bracket of a container and stays zero for scalars.
type Pos struct {
	Line, Col       uint
	EndLine, EndCol uint
}

type buildState int

const (
	buildIdle buildState = iota
	buildBusy
	buildDone
	buildAborted
)

// BuildOption configures a Builder.
type BuildOption func(*Builder)

// WithErrorFunc installs the predicate consulted on EventError.
// Without one, the first error aborts.
func WithErrorFunc(f ErrorFunc) BuildOption {
	return func(b *Builder) {
		b.errorFunc = f
	}
}

// WithPositions records the source position of every node into m as
// the tree builds.
func WithPositions(m map[*ir.Node]*Pos) BuildOption {
	return func(b *Builder) {
		b.positions = m
	}
}

// NewBuilder creates a Builder ready to receive events.
func NewBuilder(opts ...BuildOption) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WriteEvent dispatches one event into the tree under construction.
// It returns an ErrAborted error when an EventError ends the parse;
// after that the Builder is spent and further writes keep returning
// ErrAborted.
func (b *Builder) WriteEvent(ev *Event) error {
	if b.state == buildAborted {
		return ErrAborted
	}
	if ev.Type == EventError {
		// Trailing-garbage errors arrive after the root closed and
		// can still abort, discarding the finished tree.
		if b.errorFunc != nil && b.errorFunc(ev.Line, ev.Col, ev.Msg) {
			return nil
		}
		b.root = nil
		b.stack = nil
		b.state = buildAborted
		return fmt.Errorf("%d:%d: %s: %w", ev.Line, ev.Col, ev.Msg, ErrAborted)
	}
	if b.state == buildDone {
		panic("event after document end")
	}

	switch ev.Type {
	case EventBeginObject, EventBeginArray:
		v := ir.NewDict()
		if ev.Type == EventBeginArray {
			v = ir.NewArray()
		}
		if len(b.stack) == 0 {
			b.root = v
			b.state = buildBusy
			b.note(ev, v)
		} else {
			b.place(ev, v)
		}
		b.stack = append(b.stack, v)
	case EventEnd:
		if len(b.stack) == 0 {
			panic("end with no open container")
		}
		top := b.stack[len(b.stack)-1]
		if b.positions != nil {
			if p := b.positions[top]; p != nil {
				p.EndLine, p.EndCol = ev.Line, ev.Col
			}
		}
		b.stack = b.stack[:len(b.stack)-1]
		if len(b.stack) == 0 {
			b.state = buildDone
		}
	case EventString:
		b.place(ev, ir.FromString(ev.String))
	case EventInt:
		b.place(ev, ir.FromInt(ev.Int))
	case EventReal:
		b.place(ev, ir.FromFloat(ev.Float))
	case EventBool:
		b.place(ev, ir.FromBool(ev.Bool))
	case EventNull:
		b.place(ev, ir.Null())
	default:
		panic("type")
	}
	return nil
}

// place attaches v under the active container per the event's key.
func (b *Builder) place(ev *Event, v *ir.Node) {
	if len(b.stack) == 0 {
		panic("scalar at document root")
	}
	top := b.stack[len(b.stack)-1]
	switch top.Type {
	case ir.DictType:
		if ev.Key == nil {
			panic("dictionary value without key")
		}
		top.Set(*ev.Key, v)
	case ir.ArrayType:
		top.Append(v)
	default:
		panic("type")
	}
	b.note(ev, v)
}

func (b *Builder) note(ev *Event, v *ir.Node) {
	if b.positions == nil {
		return
	}
	b.positions[v] = &Pos{Line: ev.Line, Col: ev.Col}
}

// Root returns the finished tree. Before the top-level container
// closes it returns ErrIncomplete; after an abort, ErrAborted.
func (b *Builder) Root() (*ir.Node, error) {
	switch b.state {
	case buildIdle:
		return nil, fmt.Errorf("%w: no input", ErrIncomplete)
	case buildBusy:
		return nil, fmt.Errorf("%w: %d open containers", ErrIncomplete, len(b.stack))
	case buildAborted:
		return nil, ErrAborted
	default:
		return b.root, nil
	}
}
