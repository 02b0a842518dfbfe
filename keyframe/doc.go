// Package keyframe implements animatable properties: values that are either
// constant or driven by an ordered list of keyframes.
//
// A Property is bound to its value type when it is constructed
// (NewScalar, NewPoint, NewOpacity). The binding selects the interpolation
// and cloning behaviour for that type, so point keyframes always evaluate
// and clone as multi-dimension keyframes with spatial tangents, while
// scalar and opacity keyframes use a single eased value.
//
// Keyframe frames are local to the layer that owns the property. A
// keyframe covers the half-open span [StartFrame, EndFrame). Frames
// before the first keyframe take its start value and frames at or after
// the last keyframe take its end value.
package keyframe
