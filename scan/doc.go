// Package scan is the push-style JSON scanner behind jsobj parsing.
//
// Scan and ScanBytes walk a document once and report it to a
// stream.EventSink as scalar, container begin/end, and error events.
// The scanner never fails on bad input by itself: each syntax error
// becomes a positioned EventError, and the sink's response decides
// what happens next. A nil response resynchronizes the scan at the
// next ',', ']' or '}' and keeps going; an error response stops the
// scan immediately and Scan returns it.
//
// Feeding a stream.Builder yields a tree:
//
//	b := stream.NewBuilder()
//	if err := scan.ScanBytes(d, b); err != nil {
//		return nil, err
//	}
//	return b.Root()
//
// The document root must be an object or array. Strings decode the
// named JSON escapes, \uXXXX, and the \hh two-hex-digit control-byte
// form the dump package emits. Integer-shaped numbers that fit int64
// scan as Int events, everything else numeric as Real.
package scan
