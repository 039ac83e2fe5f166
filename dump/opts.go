package dump

type Option func(*EncState)

// WithIndent sets the number of spaces per nesting level. The default
// is 4.
func WithIndent(n int) Option {
	return func(es *EncState) { es.indent = n }
}

func WithColors(c *Colors) Option {
	return func(es *EncState) { es.Color = c.Color }
}
