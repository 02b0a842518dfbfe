package keyframe

import "errors"

var (
	// ErrNoKeyframes is returned when an animated property is given an
	// empty keyframe list.
	ErrNoKeyframes = errors.New("keyframe: no keyframes")

	// ErrNilKeyframe is returned when a keyframe list contains nil.
	ErrNilKeyframe = errors.New("keyframe: nil keyframe")

	// ErrInvertedSpan is returned when a keyframe ends before it starts.
	ErrInvertedSpan = errors.New("keyframe: end frame before start frame")

	// ErrOverlap is returned when keyframes are unordered or overlap.
	ErrOverlap = errors.New("keyframe: keyframes overlap or are out of order")
)
