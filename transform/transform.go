// Package transform implements the layer transform bundle: anchor point,
// position (unified or split into x and y), scale, rotation and opacity,
// each an animatable property.
package transform

import (
	"math"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
	"github.com/gogpu/motion/timeline"
)

// Transform2D holds the animatable transform properties of a layer.
// Exactly one position representation is active at a time: either the
// unified Position or the split XPosition/YPosition pair.
//
// Transform2D is not safe for concurrent use.
type Transform2D struct {
	anchorPoint *keyframe.Property[motion.Point]
	position    *keyframe.Property[motion.Point]
	xPosition   *keyframe.Property[float64]
	yPosition   *keyframe.Property[float64]
	scale       *keyframe.Property[motion.Point]
	rotation    *keyframe.Property[float64]
	opacity     *keyframe.Property[motion.Opacity]
}

// Default returns a transform with anchor (0,0), position (0,0), scale
// (1,1), rotation 0 and full opacity.
func Default() *Transform2D {
	return &Transform2D{
		anchorPoint: keyframe.NewPoint(motion.Point{}),
		position:    keyframe.NewPoint(motion.Point{}),
		scale:       keyframe.NewPoint(motion.Pt(1, 1)),
		rotation:    keyframe.NewScalar(0),
		opacity:     keyframe.NewOpacity(motion.Opaque),
	}
}

// Clone returns a deep copy.
func (t *Transform2D) Clone() *Transform2D {
	if t == nil {
		return nil
	}
	return &Transform2D{
		anchorPoint: t.anchorPoint.Clone(),
		position:    t.position.Clone(),
		xPosition:   t.xPosition.Clone(),
		yPosition:   t.yPosition.Clone(),
		scale:       t.scale.Clone(),
		rotation:    t.rotation.Clone(),
		opacity:     t.opacity.Clone(),
	}
}

// AnchorPoint returns the anchor property. The returned property is owned
// by the transform.
func (t *Transform2D) AnchorPoint() *keyframe.Property[motion.Point] { return t.anchorPoint }

// Position returns the unified position, or nil when split position is
// active.
func (t *Transform2D) Position() *keyframe.Property[motion.Point] { return t.position }

// XPosition returns the split x position, or nil when unified.
func (t *Transform2D) XPosition() *keyframe.Property[float64] { return t.xPosition }

// YPosition returns the split y position, or nil when unified.
func (t *Transform2D) YPosition() *keyframe.Property[float64] { return t.yPosition }

// Scale returns the scale property.
func (t *Transform2D) Scale() *keyframe.Property[motion.Point] { return t.scale }

// Rotation returns the rotation property in degrees.
func (t *Transform2D) Rotation() *keyframe.Property[float64] { return t.rotation }

// Opacity returns the opacity property.
func (t *Transform2D) Opacity() *keyframe.Property[motion.Opacity] { return t.opacity }

// SplitPosition reports whether the x/y representation is active.
func (t *Transform2D) SplitPosition() bool { return t.position == nil }

// SetAnchorPoint replaces the anchor property. Nil is ignored.
func (t *Transform2D) SetAnchorPoint(p *keyframe.Property[motion.Point]) {
	if p != nil {
		t.anchorPoint = p
	}
}

// SetPosition activates the unified position and clears both split
// components. Nil is ignored.
func (t *Transform2D) SetPosition(p *keyframe.Property[motion.Point]) {
	if p == nil {
		return
	}
	t.position = p
	t.xPosition = nil
	t.yPosition = nil
}

// SetXPosition activates split position with the given x component. When
// switching from unified position, y is seeded from the former position's
// static y.
func (t *Transform2D) SetXPosition(x *keyframe.Property[float64]) {
	if x == nil {
		return
	}
	t.split()
	t.xPosition = x
}

// SetYPosition is the y counterpart of SetXPosition.
func (t *Transform2D) SetYPosition(y *keyframe.Property[float64]) {
	if y == nil {
		return
	}
	t.split()
	t.yPosition = y
}

// SetSplitPosition activates split position. A nil component keeps its
// current split value, or is seeded from the unified position.
func (t *Transform2D) SetSplitPosition(x, y *keyframe.Property[float64]) {
	t.split()
	if x != nil {
		t.xPosition = x
	}
	if y != nil {
		t.yPosition = y
	}
}

// split switches to the x/y representation in place.
func (t *Transform2D) split() {
	if t.position == nil {
		return
	}
	p := t.position.Value()
	t.position = nil
	t.xPosition = keyframe.NewScalar(p.X)
	t.yPosition = keyframe.NewScalar(p.Y)
}

// SetScale replaces the scale property. Nil is ignored.
func (t *Transform2D) SetScale(p *keyframe.Property[motion.Point]) {
	if p != nil {
		t.scale = p
	}
}

// SetRotation replaces the rotation property. Nil is ignored.
func (t *Transform2D) SetRotation(p *keyframe.Property[float64]) {
	if p != nil {
		t.rotation = p
	}
}

// SetOpacity replaces the opacity property. Nil is ignored.
func (t *Transform2D) SetOpacity(p *keyframe.Property[motion.Opacity]) {
	if p != nil {
		t.opacity = p
	}
}

// PositionAt evaluates the position at frame. Without a unified position
// the split components are read, absent components counting as 0.
func (t *Transform2D) PositionAt(frame timeline.Frame) motion.Point {
	if t.position != nil {
		return t.position.ValueAt(frame)
	}
	var p motion.Point
	if t.xPosition != nil {
		p.X = t.xPosition.ValueAt(frame)
	}
	if t.yPosition != nil {
		p.Y = t.yPosition.ValueAt(frame)
	}
	return p
}

// StaticPosition returns the position ignoring animation.
func (t *Transform2D) StaticPosition() motion.Point {
	if t.position != nil {
		return t.position.Value()
	}
	var p motion.Point
	if t.xPosition != nil {
		p.X = t.xPosition.Value()
	}
	if t.yPosition != nil {
		p.Y = t.yPosition.Value()
	}
	return p
}

// Matrix builds the local matrix at frame. Points are moved by -anchor,
// scaled, rotated and finally translated by position.
func (t *Transform2D) Matrix(frame timeline.Frame) motion.Matrix {
	anchor := t.anchorPoint.ValueAt(frame)
	pos := t.PositionAt(frame)
	scale := t.scale.ValueAt(frame)
	rad := t.rotation.ValueAt(frame) * math.Pi / 180

	m := motion.Translate(pos.X, pos.Y)
	if rad != 0 {
		m = m.Multiply(motion.Rotate(rad))
	}
	m = m.Multiply(motion.Scale(scale.X, scale.Y))
	if !anchor.IsZero() {
		m = m.Multiply(motion.Translate(-anchor.X, -anchor.Y))
	}
	return m
}

// Evaluate returns the local matrix and the opacity as a fraction.
func (t *Transform2D) Evaluate(frame timeline.Frame) (motion.Matrix, float64) {
	return t.Matrix(frame), t.opacity.ValueAt(frame).Alpha()
}

// IsStatic reports whether no property is animated.
func (t *Transform2D) IsStatic() bool {
	animated := t.anchorPoint.Animated() || t.scale.Animated() ||
		t.rotation.Animated() || t.opacity.Animated()
	if t.position != nil {
		animated = animated || t.position.Animated()
	}
	if t.xPosition != nil {
		animated = animated || t.xPosition.Animated()
	}
	if t.yPosition != nil {
		animated = animated || t.yPosition.Animated()
	}
	return !animated
}

// Equal reports whether two transforms hold equal properties in the same
// position representation.
func (t *Transform2D) Equal(o *Transform2D) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.anchorPoint.Equal(o.anchorPoint) &&
		t.position.Equal(o.position) &&
		t.xPosition.Equal(o.xPosition) &&
		t.yPosition.Equal(o.yPosition) &&
		t.scale.Equal(o.scale) &&
		t.rotation.Equal(o.rotation) &&
		t.opacity.Equal(o.opacity)
}
