package keyframe

import (
	"fmt"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/timeline"
)

// Interpolation selects how a keyframe moves from its start to its end value.
type Interpolation uint8

const (
	// Hold keeps the start value until the end frame.
	Hold Interpolation = iota
	// Linear interpolates at constant speed.
	Linear
	// Bezier eases time through a unit cubic bezier.
	Bezier
)

var interpolationNames = [...]string{
	Hold:   "hold",
	Linear: "linear",
	Bezier: "bezier",
}

// String returns the lower-case name of the interpolation.
func (i Interpolation) String() string {
	if int(i) < len(interpolationNames) {
		return interpolationNames[i]
	}
	return fmt.Sprintf("Interpolation(%d)", i)
}

// ParseInterpolation parses a name produced by String.
func ParseInterpolation(s string) (Interpolation, bool) {
	for i, name := range interpolationNames {
		if name == s {
			return Interpolation(i), true
		}
	}
	return Hold, false
}

// Variant is the concrete evaluation family of a keyframe. It is assigned
// by the property a keyframe is stored in and never inferred from values.
type Variant uint8

const (
	// SingleEase keyframes ease one value with one control-point pair.
	SingleEase Variant = iota
	// MultiDimension keyframes ease each axis independently or follow a
	// spatial path when tangents are present.
	MultiDimension
)

func (v Variant) String() string {
	if v == MultiDimension {
		return "multi-dimension"
	}
	return "single-ease"
}

// Keyframe is one time-bounded interpolation segment.
type Keyframe[T any] struct {
	StartValue, EndValue T
	StartFrame, EndFrame timeline.Frame
	Interpolation        Interpolation

	// BezierOut and BezierIn hold the easing control points, one per
	// axis. Missing axes reuse the first control point.
	BezierOut, BezierIn []motion.Point

	// SpatialOut and SpatialIn are tangents of the motion path, relative to
	// the start and end values. Only point keyframes use them.
	SpatialOut, SpatialIn motion.Point

	Variant Variant
}

// Duration returns EndFrame-StartFrame.
func (k *Keyframe[T]) Duration() timeline.Frame {
	return k.EndFrame - k.StartFrame
}

// Contains reports whether frame lies in [StartFrame, EndFrame).
func (k *Keyframe[T]) Contains(frame timeline.Frame) bool {
	return frame >= k.StartFrame && frame < k.EndFrame
}

// Fraction returns the linear progress of frame through the keyframe,
// clamped to [0, 1]. Zero-length keyframes report 1.
func (k *Keyframe[T]) Fraction(frame timeline.Frame) float64 {
	d := k.Duration()
	if d <= 0 {
		return 1
	}
	t := float64(frame-k.StartFrame) / float64(d)
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}

// HasSpatialTangents reports whether either spatial tangent is non-zero.
func (k *Keyframe[T]) HasSpatialTangents() bool {
	return !k.SpatialOut.IsZero() || !k.SpatialIn.IsZero()
}

// controlPoints returns the easing control points for one axis.
func (k *Keyframe[T]) controlPoints(axis int) (out, in motion.Point, ok bool) {
	if len(k.BezierOut) == 0 || len(k.BezierIn) == 0 {
		return motion.Point{}, motion.Point{}, false
	}
	out, in = k.BezierOut[0], k.BezierIn[0]
	if axis < len(k.BezierOut) {
		out = k.BezierOut[axis]
	}
	if axis < len(k.BezierIn) {
		in = k.BezierIn[axis]
	}
	return out, in, true
}

// easedFraction applies the keyframe's easing to a linear fraction.
func (k *Keyframe[T]) easedFraction(t float64, axis int) float64 {
	if k.Interpolation != Bezier {
		return t
	}
	out, in, ok := k.controlPoints(axis)
	if !ok {
		return t
	}
	return CubicBezier(out.X, out.Y, in.X, in.Y)(t)
}

// Validate checks that keyframes are non-nil, have non-negative spans and
// are ordered without overlap.
func Validate[T any](keyframes []*Keyframe[T]) error {
	if len(keyframes) == 0 {
		return ErrNoKeyframes
	}
	for i, k := range keyframes {
		if k == nil {
			return fmt.Errorf("keyframe %d: %w", i, ErrNilKeyframe)
		}
		if k.EndFrame < k.StartFrame {
			return fmt.Errorf("keyframe %d [%d,%d]: %w", i, k.StartFrame, k.EndFrame, ErrInvertedSpan)
		}
		if i > 0 && k.StartFrame < keyframes[i-1].EndFrame {
			return fmt.Errorf("keyframe %d starts at %d before previous end %d: %w",
				i, k.StartFrame, keyframes[i-1].EndFrame, ErrOverlap)
		}
	}
	return nil
}
