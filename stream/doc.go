// Package stream defines the event protocol between a push-style
// scanner and the tree builder.
//
// A scanner reports a document as a flat sequence of Events: scalars,
// BeginObject/BeginArray with a shared End, and positioned syntax
// errors. Each value event carries the dictionary key it lands under,
// when there is one. Any EventSink can consume the sequence; Builder
// is the sink that assembles an ir.Node tree from it:
//
//	b := stream.NewBuilder()
//	for _, ev := range events {
//		if err := b.WriteEvent(&ev); err != nil {
//			return err
//		}
//	}
//	root, err := b.Root()
//
// Syntax errors flow through the builder's error predicate: returning
// true continues the parse, false aborts it and discards the partial
// tree. The default policy, with no predicate installed, aborts on the
// first error.
package stream
