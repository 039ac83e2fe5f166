package scan

// Option configures a scan.
type Option func(*scanner)

// WithMaxDepth bounds container nesting at n open containers; opening
// one more is reported as a syntax error. Zero means no bound.
func WithMaxDepth(n int) Option {
	return func(s *scanner) {
		s.maxDepth = n
	}
}
