package keyframe

import (
	"github.com/gogpu/motion"
)

// pathSamples is the number of chords used to approximate arc length.
const pathSamples = 64

// spatialPath is the cubic motion path of a point keyframe with tangents:
// start, start+SpatialOut, end+SpatialIn, end.
type spatialPath struct {
	p0, p1, p2, p3 motion.Point
	lengths        [pathSamples + 1]float64
}

func newSpatialPath(start, out, in, end motion.Point) *spatialPath {
	sp := &spatialPath{p0: start, p1: start.Add(out), p2: end.Add(in), p3: end}
	prev := start
	for i := 1; i <= pathSamples; i++ {
		pt := sp.at(float64(i) / pathSamples)
		sp.lengths[i] = sp.lengths[i-1] + pt.Distance(prev)
		prev = pt
	}
	return sp
}

func (sp *spatialPath) at(u float64) motion.Point {
	inv := 1 - u
	a := inv * inv * inv
	b := 3 * inv * inv * u
	c := 3 * inv * u * u
	d := u * u * u
	return motion.Point{
		X: a*sp.p0.X + b*sp.p1.X + c*sp.p2.X + d*sp.p3.X,
		Y: a*sp.p0.Y + b*sp.p1.Y + c*sp.p2.Y + d*sp.p3.Y,
	}
}

// pointAtDistance returns the point reached after fraction t of the path's
// arc length. Fractions outside [0,1] extrapolate along the chord.
func (sp *spatialPath) pointAtDistance(t float64) motion.Point {
	total := sp.lengths[pathSamples]
	switch {
	case t == 0:
		return sp.p0
	case t == 1:
		return sp.p3
	case t < 0 || t > 1 || total == 0:
		return sp.p0.Lerp(sp.p3, t)
	}
	target := t * total
	lo, hi := 0, pathSamples
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if sp.lengths[mid] < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	seg := sp.lengths[hi] - sp.lengths[lo]
	frac := 0.0
	if seg > 0 {
		frac = (target - sp.lengths[lo]) / seg
	}
	u := (float64(lo) + frac) / pathSamples
	return sp.at(u)
}
