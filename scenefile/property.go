package scenefile

import (
	"fmt"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
	"github.com/gogpu/motion/transform"
)

// buildTransform returns a copy of base with the properties set in tr.
func buildTransform(base *transform.Transform2D, tr *Transform) (*transform.Transform2D, error) {
	t := base.Clone()
	if tr.AnchorPoint != nil {
		p, err := pointProperty(tr.AnchorPoint)
		if err != nil {
			return nil, fmt.Errorf("anchorPoint: %w", err)
		}
		t.SetAnchorPoint(p)
	}
	if tr.Position != nil {
		p, err := pointProperty(tr.Position)
		if err != nil {
			return nil, fmt.Errorf("position: %w", err)
		}
		t.SetPosition(p)
	}
	if tr.Scale != nil {
		p, err := pointProperty(tr.Scale)
		if err != nil {
			return nil, fmt.Errorf("scale: %w", err)
		}
		t.SetScale(p)
	}
	if tr.Rotation != nil {
		p, err := scalarProperty(tr.Rotation)
		if err != nil {
			return nil, fmt.Errorf("rotation: %w", err)
		}
		t.SetRotation(p)
	}
	if tr.Opacity != nil {
		p, err := opacityProperty(tr.Opacity)
		if err != nil {
			return nil, fmt.Errorf("opacity: %w", err)
		}
		t.SetOpacity(p)
	}
	return t, nil
}

func toPoint(p Point) motion.Point { return motion.Pt(p.X, p.Y) }

func identity(v float64) float64 { return v }

func pointProperty(p *PointProperty) (*keyframe.Property[motion.Point], error) {
	if len(p.Keyframes) == 0 {
		return keyframe.NewPoint(motion.Pt(p.X, p.Y)), nil
	}
	kfs, err := convertKeyframes(p.Keyframes, toPoint)
	if err != nil {
		return nil, err
	}
	return keyframe.AnimatedPoint(kfs...)
}

func scalarProperty(p *ScalarProperty) (*keyframe.Property[float64], error) {
	if len(p.Keyframes) == 0 {
		return keyframe.NewScalar(p.Value), nil
	}
	kfs, err := convertKeyframes(p.Keyframes, identity)
	if err != nil {
		return nil, err
	}
	return keyframe.AnimatedScalar(kfs...)
}

func opacityProperty(p *ScalarProperty) (*keyframe.Property[motion.Opacity], error) {
	if len(p.Keyframes) == 0 {
		return keyframe.NewOpacity(motion.ClampOpacity(p.Value)), nil
	}
	kfs, err := convertKeyframes(p.Keyframes, motion.ClampOpacity)
	if err != nil {
		return nil, err
	}
	return keyframe.AnimatedOpacity(kfs...)
}

func points(in []Point) []motion.Point {
	if len(in) == 0 {
		return nil
	}
	out := make([]motion.Point, len(in))
	for i, p := range in {
		out[i] = toPoint(p)
	}
	return out
}

// convertKeyframes maps document keyframes to property keyframes. An
// empty interpolation name means linear.
func convertKeyframes[S, T any](in []Keyframe[S], value func(S) T) ([]*keyframe.Keyframe[T], error) {
	out := make([]*keyframe.Keyframe[T], 0, len(in))
	for i := range in {
		k := &in[i]
		interp := keyframe.Linear
		if k.Interpolation != "" {
			var ok bool
			if interp, ok = keyframe.ParseInterpolation(k.Interpolation); !ok {
				return nil, fmt.Errorf("keyframe %d: %w: %q", i, ErrUnknownInterpolation, k.Interpolation)
			}
		}
		kf := &keyframe.Keyframe[T]{
			StartValue:    value(k.Start),
			EndValue:      value(k.End),
			StartFrame:    k.StartFrame,
			EndFrame:      k.EndFrame,
			Interpolation: interp,
			BezierOut:     points(k.BezierOut),
			BezierIn:      points(k.BezierIn),
		}
		if k.SpatialOut != nil {
			kf.SpatialOut = toPoint(*k.SpatialOut)
		}
		if k.SpatialIn != nil {
			kf.SpatialIn = toPoint(*k.SpatialIn)
		}
		out = append(out, kf)
	}
	return out, nil
}
