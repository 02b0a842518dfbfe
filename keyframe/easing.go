package keyframe

import "math"

// CubicBezier returns the easing function of the unit cubic bezier from
// (0,0) through control points (x1,y1) and (x2,y2) to (1,1). The x
// coordinates are clamped to [0,1] so x(u) stays monotonic. The y
// coordinates are not, so the eased value may overshoot.
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	x1 = clampUnit(x1)
	x2 = clampUnit(x2)
	if x1 == y1 && x2 == y2 {
		return clampUnit
	}
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return sampleCurve(y1, y2, solveCurveX(x1, x2, t))
	}
}

// solveCurveX finds u with x(u) = t using Newton-Raphson with a bisection
// fallback.
func solveCurveX(x1, x2, t float64) float64 {
	const eps = 1e-9

	u := t
	for range 8 {
		x := sampleCurve(x1, x2, u) - t
		if math.Abs(x) < eps {
			return u
		}
		dx := sampleCurveDerivative(x1, x2, u)
		if math.Abs(dx) < 1e-7 {
			break
		}
		u -= x / dx
	}

	lo, hi := 0.0, 1.0
	u = t
	for range 60 {
		x := sampleCurve(x1, x2, u) - t
		if math.Abs(x) < eps {
			break
		}
		if x > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) * 0.5
	}
	return u
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
