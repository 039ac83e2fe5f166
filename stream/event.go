package stream

import "fmt"

// Event is one notification from a push-style scanner. Exactly one
// payload field group is meaningful, selected by Type.
//
// Value events (scalars and container begins) carry an optional Key:
// set when the enclosing container is a dictionary, nil in array
// context and at the document root.
type Event struct {
	Type EventType
	Key  *string

	// Scalar payloads.
	String string
	Int    int64
	Float  float64
	Bool   bool

	// Source position, 1-based. Value events carry the start of their
	// first token, End the closing bracket, EventError the offending
	// byte.
	Line uint
	Col  uint

	// EventError message.
	Msg string
}

// IsValue reports whether the event opens a value: a scalar or a
// container begin, as opposed to End or Error.
func (e *Event) IsValue() bool {
	switch e.Type {
	case EventString, EventInt, EventReal, EventBool, EventNull,
		EventBeginObject, EventBeginArray:
		return true
	default:
		return false
	}
}

// EventType discriminates the kinds of scanner notifications.
type EventType int

const (
	EventString EventType = iota
	EventInt
	EventReal
	EventBool
	EventNull
	EventBeginObject
	EventBeginArray
	EventEnd
	EventError
)

func (t EventType) String() string {
	switch t {
	case EventString:
		return "String"
	case EventInt:
		return "Int"
	case EventReal:
		return "Real"
	case EventBool:
		return "Bool"
	case EventNull:
		return "Null"
	case EventBeginObject:
		return "BeginObject"
	case EventBeginArray:
		return "BeginArray"
	case EventEnd:
		return "End"
	case EventError:
		return "Error"
	default:
		return "Unknown"
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]EventType{
		"String":      EventString,
		"Int":         EventInt,
		"Real":        EventReal,
		"Bool":        EventBool,
		"Null":        EventNull,
		"BeginObject": EventBeginObject,
		"BeginArray":  EventBeginArray,
		"End":         EventEnd,
		"Error":       EventError,
	}[k]
	if ok {
		*t = pt
		return nil
	}
	return fmt.Errorf("unknown event type %q", k)
}
