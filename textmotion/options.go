package textmotion

import (
	"fmt"

	"github.com/gogpu/motion"
)

// Type is the property a preset animates.
type Type uint8

const (
	// Fade animates glyph opacity from transparent to opaque.
	Fade Type = iota
	// Scale grows glyphs from nothing to full size.
	Scale
	// Slide moves glyphs in from an offset along Direction.
	Slide
	// Swing rotates glyphs in from a direction-dependent angle.
	Swing
)

var typeNames = [...]string{
	Fade:  "fade",
	Scale: "scale",
	Slide: "slide",
	Swing: "swing",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

// Direction orients Slide offsets and Swing angles.
type Direction uint8

const (
	Up Direction = iota
	Left
	Right
	Down
	Side
)

var directionNames = [...]string{
	Up:    "up",
	Left:  "left",
	Right: "right",
	Down:  "down",
	Side:  "side",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// Easing selects the bezier curve of each synthesized keyframe.
type Easing uint8

const (
	Smooth Easing = iota
	EaseIn
	EaseOut
	Back
	Bounce
	Spring
)

var easingNames = [...]string{
	Smooth:  "smooth",
	EaseIn:  "ease-in",
	EaseOut: "ease-out",
	Back:    "back",
	Bounce:  "bounce",
	Spring:  "spring",
}

func (e Easing) String() string {
	if int(e) < len(easingNames) {
		return easingNames[e]
	}
	return fmt.Sprintf("Easing(%d)", e)
}

// controlPoints returns the bezier out and in control points.
func (e Easing) controlPoints() (out, in motion.Point) {
	switch e {
	case EaseIn:
		return motion.Pt(0.42, 0), motion.Pt(1, 1)
	case EaseOut:
		return motion.Pt(0, 0), motion.Pt(0.58, 1)
	case Back:
		return motion.Pt(0.36, -0.2), motion.Pt(0.66, 1.2)
	case Bounce:
		return motion.Pt(0.3, 1.3), motion.Pt(0.6, 1)
	case Spring:
		return motion.Pt(0.45, 1.4), motion.Pt(0.8, 1)
	}
	return motion.Pt(0.42, 0), motion.Pt(0.58, 1)
}

// Effect selects how glyphs are grouped into staggered ranges.
type Effect uint8

const (
	// EffectNone animates the whole text as one range.
	EffectNone Effect = iota
	// EffectLetter animates each non-whitespace glyph.
	EffectLetter
	// EffectWord animates each whitespace-delimited word.
	EffectWord
)

var effectNames = [...]string{
	EffectNone:   "none",
	EffectLetter: "letter",
	EffectWord:   "word",
}

func (e Effect) String() string {
	if int(e) < len(effectNames) {
		return effectNames[e]
	}
	return fmt.Sprintf("Effect(%d)", e)
}

// EffectSmooth distributes range start offsets across the total stagger.
type EffectSmooth uint8

const (
	// SmoothNone staggers linearly by EffectDelay.
	SmoothNone EffectSmooth = iota
	SmoothSmooth
	SmoothEaseIn
	SmoothEaseOut
)

var effectSmoothNames = [...]string{
	SmoothNone:    "none",
	SmoothSmooth:  "smooth",
	SmoothEaseIn:  "ease-in",
	SmoothEaseOut: "ease-out",
}

func (s EffectSmooth) String() string {
	if int(s) < len(effectSmoothNames) {
		return effectSmoothNames[s]
	}
	return fmt.Sprintf("EffectSmooth(%d)", s)
}

// curve maps t in [0, 1] through the smoothing curve.
func (s EffectSmooth) curve(t float64) float64 {
	t = min(max(t, 0), 1)
	switch s {
	case SmoothSmooth:
		return t * t * (3 - 2*t)
	case SmoothEaseIn:
		return t * t
	case SmoothEaseOut:
		inv := 1 - t
		return 1 - inv*inv
	}
	return t
}

// Options configure a text motion preset. Times are in microseconds.
type Options struct {
	Type      Type
	Direction Direction
	// Duration is the length of each range's animation.
	Duration float64
	// Distance scales Slide offsets by the font size.
	Distance float64
	Easing   Easing
	Effect   Effect
	// EffectDelay is the start offset between successive ranges.
	EffectDelay  float64
	EffectSmooth EffectSmooth
}

// DefaultOptions returns a whole-text fade with zero duration.
func DefaultOptions() Options {
	return Options{
		Type:      Fade,
		Direction: Up,
		Distance:  0.5,
		Easing:    Smooth,
	}
}

// ParseType returns the Type with the given name.
func ParseType(s string) (Type, bool) { return parse(typeNames[:], s, Fade) }

// ParseDirection returns the Direction with the given name.
func ParseDirection(s string) (Direction, bool) { return parse(directionNames[:], s, Up) }

// ParseEasing returns the Easing with the given name.
func ParseEasing(s string) (Easing, bool) { return parse(easingNames[:], s, Smooth) }

// ParseEffect returns the Effect with the given name.
func ParseEffect(s string) (Effect, bool) { return parse(effectNames[:], s, EffectNone) }

// ParseEffectSmooth returns the EffectSmooth with the given name.
func ParseEffectSmooth(s string) (EffectSmooth, bool) {
	return parse(effectSmoothNames[:], s, SmoothNone)
}

func parse[E ~uint8](names []string, s string, def E) (E, bool) {
	for i, name := range names {
		if name == s {
			return E(i), true
		}
	}
	return def, false
}
