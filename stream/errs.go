package stream

import "errors"

var (
	// ErrAborted reports a parse stopped by the error policy: the
	// predicate returned false on a syntax error, or no predicate was
	// installed. The partial tree is discarded.
	ErrAborted = errors.New("parse aborted")

	// ErrIncomplete reports Root called before the top-level container
	// closed.
	ErrIncomplete = errors.New("incomplete document")
)
