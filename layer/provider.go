package layer

// GlyphOffsetAlphaProvider computes per-glyph offsets and alpha right
// before a text layer draws. Compute receives the layer's local time and
// the glyph count and fills dx, dy and alpha, each of length n, which
// start at 0, 0 and 1. It reports whether any value was applied.
type GlyphOffsetAlphaProvider interface {
	Compute(localTimeUS int64, n int, dx, dy, alpha []float32) bool
}

// GlyphProviderFunc adapts a per-glyph callback to a provider. A callback
// returning ok=false leaves the glyph at offset (0, 0) with alpha 1.
type GlyphProviderFunc func(index, total int, timeUS int64) (dx, dy, alpha float32, ok bool)

// Compute implements GlyphOffsetAlphaProvider.
func (f GlyphProviderFunc) Compute(localTimeUS int64, n int, dx, dy, alpha []float32) bool {
	for i := 0; i < n; i++ {
		x, y, a, ok := f(i, n, localTimeUS)
		if !ok {
			x, y, a = 0, 0, 1
		}
		dx[i], dy[i], alpha[i] = x, y, a
	}
	return true
}
