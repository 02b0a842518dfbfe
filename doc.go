// Package motion provides the value types shared by the motion scene-graph
// engine: points, affine matrices, rectangles, colors and integer opacity,
// plus the package-wide logger.
//
// # Architecture
//
// The engine is split into small packages, leaves first:
//   - timeline: time, frame and progress conversions across frame rates
//   - keyframe: animatable properties and keyframe interpolation
//   - transform: the anchor/position/scale/rotation/opacity bundle
//   - text: glyph layout adapters consumed by text layers
//   - recording: the drawing sink layers render into
//   - layer: the layer and composition tree, track mattes, versions
//   - textmotion: declarative per-character text motion presets
//   - scenefile: YAML and TOML scene documents
//
// # Coordinate System
//
// Origin at top-left, X increases right, Y increases down. Rotation
// properties are stored in degrees and converted to radians only when a
// matrix is built.
//
// # Time
//
// Hosts exchange time in microseconds. Inside the tree every layer keeps
// integer frames at its own frame rate, converted per hop with
// round-half-to-even.
package motion
