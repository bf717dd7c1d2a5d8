package fuzzy

import "math"

// Membership returns the degree of value in s, always within [0,1].
//
// At or beyond the first/last breakpoint the edge degree is returned (0 for
// open sets). Inside the support the enclosing half-open segment
// [x_i, x_{i+1}) is interpolated; a value equal to x_i yields y_i exactly.
func (s *Set) Membership(value float64) float64 {
	if !s.valid() || math.IsNaN(value) {
		return 0
	}
	pts := s.points
	n := len(pts)
	if value <= pts[0].X {
		return pts[0].Degree
	}
	if value >= pts[n-1].X {
		return pts[n-1].Degree
	}

	for i := 0; i < n-1; i++ {
		lo, hi := pts[i], pts[i+1]
		if value == lo.X {
			return lo.Degree
		}
		if value < hi.X {
			return interpolate(lo, hi, value)
		}
	}
	// Unreachable: value < pts[n-1].X guarantees a segment above.
	return 0
}

// interpolate evaluates the segment lo..hi at value, lo.X < value < hi.X.
func interpolate(lo, hi Point, value float64) float64 {
	if lo.Degree == hi.Degree {
		return lo.Degree
	}
	d := lo.Degree + (value-lo.X)/(hi.X-lo.X)*(hi.Degree-lo.Degree)
	return clamp01(d)
}

func clamp01(d float64) float64 {
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}
