package stream

import (
	"errors"
	"io"
)

// EventReader provides events from a source (a recorded sequence, a
// scanner goroutine, ...).
type EventReader interface {
	ReadEvent() (*Event, error)
}

// EventSink receives events (tree builder, collector, ...).
type EventSink interface {
	WriteEvent(*Event) error
}

// SliceReader replays a recorded event sequence.
type SliceReader struct {
	events []Event
	i      int
}

// NewSliceReader creates a reader over events.
func NewSliceReader(events []Event) *SliceReader {
	return &SliceReader{events: events}
}

// ReadEvent returns the next recorded event, io.EOF past the end.
func (r *SliceReader) ReadEvent() (*Event, error) {
	if r.i >= len(r.events) {
		return nil, io.EOF
	}
	ev := &r.events[r.i]
	r.i++
	return ev, nil
}

// Collector is an EventSink that records every event it receives and
// never aborts. Feeding it from a scanner yields the full event
// sequence for an input, syntax errors included.
type Collector struct {
	Events []Event
}

func (c *Collector) WriteEvent(ev *Event) error {
	c.Events = append(c.Events, *ev)
	return nil
}

// Errors returns the recorded error events in order.
func (c *Collector) Errors() []Event {
	var res []Event
	for i := range c.Events {
		if c.Events[i].Type == EventError {
			res = append(res, c.Events[i])
		}
	}
	return res
}

// Replay pumps r into sink until io.EOF. A sink error stops the replay
// and is returned as is.
func Replay(sink EventSink, r EventReader) error {
	for {
		ev, err := r.ReadEvent()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := sink.WriteEvent(ev); err != nil {
			return err
		}
	}
}
