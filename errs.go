package jsobj

import (
	"errors"

	"github.com/marksantaniello/jsobj/stream"
)

var (
	// ErrAborted is stream.ErrAborted, re-exported so callers of the
	// Parse entry points need not import stream to test for it.
	ErrAborted = stream.ErrAborted

	// ErrIncomplete is stream.ErrIncomplete, likewise re-exported.
	ErrIncomplete = stream.ErrIncomplete

	// ErrRoot reports a parsed document whose root is not an object.
	// The builder accepts an array root; the Parse entry points do not.
	ErrRoot = errors.New("document root must be an object")
)
