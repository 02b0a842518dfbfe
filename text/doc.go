// Package text adapts glyph layout for text layers.
//
// A Layouter turns a string and font size into an ordered list of
// positioned glyphs. Each glyph carries the source text of its cluster as
// its Name, which is all the animation engine needs to classify
// whitespace and build character or word ranges. Line breaks are emitted
// as zero-advance glyphs named "\n".
//
// Two layouters are provided:
//   - GoTextLayouter shapes with HarfBuzz via go-text/typesetting, using
//     the Go Regular font unless another is configured.
//   - ClusterLayouter emits one glyph per extended grapheme cluster with
//     monospace advances, which keeps layouts deterministic in tests and
//     headless tools.
package text
