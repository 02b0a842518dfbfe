package keyframe

import (
	"slices"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/timeline"
)

// kind binds a value type to its interpolation and cloning rules.
type kind[T comparable] struct {
	variant     Variant
	interpolate func(k *Keyframe[T], t float64) T
}

// clone copies a keyframe into the kind's variant. Single-ease kinds drop
// spatial tangents.
func (kd *kind[T]) clone(k *Keyframe[T]) *Keyframe[T] {
	nk := &Keyframe[T]{
		StartValue:    k.StartValue,
		EndValue:      k.EndValue,
		StartFrame:    k.StartFrame,
		EndFrame:      k.EndFrame,
		Interpolation: k.Interpolation,
		BezierOut:     slices.Clone(k.BezierOut),
		BezierIn:      slices.Clone(k.BezierIn),
		Variant:       kd.variant,
	}
	if kd.variant == MultiDimension {
		nk.SpatialOut = k.SpatialOut
		nk.SpatialIn = k.SpatialIn
	}
	return nk
}

var scalarKind = &kind[float64]{
	variant: SingleEase,
	interpolate: func(k *Keyframe[float64], t float64) float64 {
		t = k.easedFraction(t, 0)
		return k.StartValue + (k.EndValue-k.StartValue)*t
	},
}

var opacityKind = &kind[motion.Opacity]{
	variant: SingleEase,
	interpolate: func(k *Keyframe[motion.Opacity], t float64) motion.Opacity {
		t = k.easedFraction(t, 0)
		a, b := float64(k.StartValue), float64(k.EndValue)
		return motion.ClampOpacity(a + (b-a)*t)
	},
}

var pointKind = &kind[motion.Point]{
	variant: MultiDimension,
	interpolate: func(k *Keyframe[motion.Point], t float64) motion.Point {
		if k.HasSpatialTangents() {
			path := newSpatialPath(k.StartValue, k.SpatialOut, k.SpatialIn, k.EndValue)
			return path.pointAtDistance(k.easedFraction(t, 0))
		}
		tx := k.easedFraction(t, 0)
		ty := k.easedFraction(t, 1)
		return motion.Point{
			X: k.StartValue.X + (k.EndValue.X-k.StartValue.X)*tx,
			Y: k.StartValue.Y + (k.EndValue.Y-k.StartValue.Y)*ty,
		}
	},
}

// Property is an animatable value of type T. The zero value is not usable;
// construct properties with NewScalar, NewPoint or NewOpacity.
//
// Property is not safe for concurrent use. Properties reachable from a
// layer are guarded by the layer's lock.
type Property[T comparable] struct {
	value     T
	keyframes []*Keyframe[T]
	kind      *kind[T]
}

// NewScalar returns a constant scalar property.
func NewScalar(v float64) *Property[float64] {
	return &Property[float64]{value: v, kind: scalarKind}
}

// NewPoint returns a constant point property.
func NewPoint(v motion.Point) *Property[motion.Point] {
	return &Property[motion.Point]{value: v, kind: pointKind}
}

// NewOpacity returns a constant opacity property.
func NewOpacity(v motion.Opacity) *Property[motion.Opacity] {
	return &Property[motion.Opacity]{value: v, kind: opacityKind}
}

// AnimatedScalar returns a scalar property driven by keyframes.
func AnimatedScalar(keyframes ...*Keyframe[float64]) (*Property[float64], error) {
	p := NewScalar(0)
	if err := p.SetKeyframes(keyframes); err != nil {
		return nil, err
	}
	return p, nil
}

// AnimatedPoint returns a point property driven by keyframes.
func AnimatedPoint(keyframes ...*Keyframe[motion.Point]) (*Property[motion.Point], error) {
	p := NewPoint(motion.Point{})
	if err := p.SetKeyframes(keyframes); err != nil {
		return nil, err
	}
	return p, nil
}

// AnimatedOpacity returns an opacity property driven by keyframes.
func AnimatedOpacity(keyframes ...*Keyframe[motion.Opacity]) (*Property[motion.Opacity], error) {
	p := NewOpacity(motion.Opaque)
	if err := p.SetKeyframes(keyframes); err != nil {
		return nil, err
	}
	return p, nil
}

// Animated reports whether the property is driven by keyframes.
func (p *Property[T]) Animated() bool {
	return len(p.keyframes) > 0
}

// Variant returns the keyframe variant used by this property's type.
func (p *Property[T]) Variant() Variant {
	return p.kind.variant
}

// Value returns the constant value, or the first keyframe's start value
// when the property is animated.
func (p *Property[T]) Value() T {
	if len(p.keyframes) > 0 {
		return p.keyframes[0].StartValue
	}
	return p.value
}

// SetValue makes the property constant, discarding any keyframes. It
// reports whether anything changed.
func (p *Property[T]) SetValue(v T) bool {
	if len(p.keyframes) == 0 && p.value == v {
		return false
	}
	p.value = v
	p.keyframes = nil
	return true
}

// Keyframes returns copies of the keyframes.
func (p *Property[T]) Keyframes() []*Keyframe[T] {
	out := make([]*Keyframe[T], len(p.keyframes))
	for i, k := range p.keyframes {
		out[i] = p.kind.clone(k)
	}
	return out
}

// NumKeyframes returns the number of keyframes.
func (p *Property[T]) NumKeyframes() int {
	return len(p.keyframes)
}

// SetKeyframes validates and stores copies of keyframes, tagged with the
// property's variant. On error the property is left unchanged.
func (p *Property[T]) SetKeyframes(keyframes []*Keyframe[T]) error {
	if err := Validate(keyframes); err != nil {
		return err
	}
	kfs := make([]*Keyframe[T], len(keyframes))
	for i, k := range keyframes {
		kfs[i] = p.kind.clone(k)
	}
	p.keyframes = kfs
	return nil
}

// Span returns the first start frame and last end frame. It reports false
// for constant properties.
func (p *Property[T]) Span() (start, end timeline.Frame, ok bool) {
	if len(p.keyframes) == 0 {
		return 0, 0, false
	}
	return p.keyframes[0].StartFrame, p.keyframes[len(p.keyframes)-1].EndFrame, true
}

// ValueAt evaluates the property at a local frame.
func (p *Property[T]) ValueAt(frame timeline.Frame) T {
	n := len(p.keyframes)
	if n == 0 {
		return p.value
	}
	first, last := p.keyframes[0], p.keyframes[n-1]
	if frame < first.StartFrame {
		return first.StartValue
	}
	if frame >= last.EndFrame {
		return last.EndValue
	}
	i, found := slices.BinarySearchFunc(p.keyframes, frame, func(k *Keyframe[T], f timeline.Frame) int {
		switch {
		case f < k.StartFrame:
			return 1
		case f >= k.EndFrame:
			return -1
		}
		return 0
	})
	if !found {
		// In a gap between keyframes the previous keyframe has finished.
		return p.keyframes[i-1].EndValue
	}
	k := p.keyframes[i]
	t := k.Fraction(frame)
	if k.Interpolation == Hold {
		if t < 1 {
			return k.StartValue
		}
		return k.EndValue
	}
	if t == 0 {
		return k.StartValue
	}
	return p.kind.interpolate(k, t)
}

// Clone returns a deep copy. Keyframes are re-created in the property's
// own variant.
func (p *Property[T]) Clone() *Property[T] {
	if p == nil {
		return nil
	}
	c := &Property[T]{value: p.value, kind: p.kind}
	if len(p.keyframes) > 0 {
		c.keyframes = make([]*Keyframe[T], len(p.keyframes))
		for i, k := range p.keyframes {
			c.keyframes[i] = p.kind.clone(k)
		}
	}
	return c
}

// Equal reports whether two properties hold the same constant or the same
// keyframes.
func (p *Property[T]) Equal(o *Property[T]) bool {
	if p == nil || o == nil {
		return p == o
	}
	if p.value != o.value || len(p.keyframes) != len(o.keyframes) {
		return false
	}
	for i, k := range p.keyframes {
		ok := o.keyframes[i]
		if k.StartValue != ok.StartValue || k.EndValue != ok.EndValue ||
			k.StartFrame != ok.StartFrame || k.EndFrame != ok.EndFrame ||
			k.Interpolation != ok.Interpolation ||
			k.SpatialOut != ok.SpatialOut || k.SpatialIn != ok.SpatialIn ||
			!slices.Equal(k.BezierOut, ok.BezierOut) || !slices.Equal(k.BezierIn, ok.BezierIn) {
			return false
		}
	}
	return true
}
