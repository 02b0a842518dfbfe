// Package textmotion synthesizes text animators for text layers.
//
// A [Preset] turns [Options] into one text animator per glyph range: the
// whole text, each letter or each word. Every animator carries a single
// keyframe whose start is staggered by range index. Applying a preset
// first removes the animators it created earlier, so applying the same
// options repeatedly is idempotent and presets can be re-applied with new
// options at any time.
//
// The package also provides a staggered slide-left effect driven by a
// glyph offset/alpha provider rather than by animators:
//
//	p := textmotion.NewSlideLeftPreset(l, 3_000_000, 240, 40,
//		textmotion.DefaultStagger, textmotion.DefaultTrailing)
//	p.Apply(0.5)
package textmotion
