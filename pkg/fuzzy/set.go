package fuzzy

import "math"

// Point is one breakpoint of a membership curve.
type Point struct {
	X      float64 `json:"x" yaml:"x" mapstructure:"x"`
	Degree float64 `json:"degree" yaml:"degree" mapstructure:"degree"`
}

// Set is a named piecewise-linear fuzzy set. The zero value is not usable;
// build sets with NewSet, Triangular, Trapezoidal or Ramp.
type Set struct {
	name   string
	points []Point
}

// NewSet validates the breakpoints and returns an immutable set.
// Three or more points must have strictly increasing x, degrees in [0,1]
// and degree 0 at both ends. Exactly two points form a ramp and must run
// between degree 0 and degree 1 in either direction.
func NewSet(name string, points ...Point) (*Set, error) {
	if name == "" {
		return nil, invalid(name, ErrEmptyName)
	}
	if len(points) < 2 {
		return nil, invalid(name, ErrTooFewPoints)
	}
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Degree) {
			return nil, invalid(name, ErrNonFinite)
		}
		if p.Degree < 0 || p.Degree > 1 {
			return nil, invalid(name, ErrDegreeRange)
		}
		if i > 0 && p.X <= points[i-1].X {
			return nil, invalid(name, ErrNotIncreasing)
		}
	}

	first, last := points[0], points[len(points)-1]
	if len(points) == 2 {
		if !(first.Degree == 0 && last.Degree == 1) && !(first.Degree == 1 && last.Degree == 0) {
			return nil, invalid(name, ErrNotMonotone)
		}
	} else if first.Degree != 0 || last.Degree != 0 {
		return nil, invalid(name, ErrOpenSupport)
	}

	cp := make([]Point, len(points))
	copy(cp, points)
	return &Set{name: name, points: cp}, nil
}

// Triangular returns the set (a,0),(b,1),(c,0).
func Triangular(name string, a, b, c float64) (*Set, error) {
	return NewSet(name, Point{a, 0}, Point{b, 1}, Point{c, 0})
}

// Trapezoidal returns the set (a,0),(b,1),(c,1),(d,0).
func Trapezoidal(name string, a, b, c, d float64) (*Set, error) {
	return NewSet(name, Point{a, 0}, Point{b, 1}, Point{c, 1}, Point{d, 0})
}

// Ramp returns a two-point shoulder set. Values before from take
// from.Degree and values after to take to.Degree, so the degree at the
// raised edge is 1, not 0. Ramps are the only sets that are not zero at
// the edges of their support.
func Ramp(name string, from, to Point) (*Set, error) {
	return NewSet(name, from, to)
}

// Must panics if err is non-nil. Intended for static catalogs.
func Must(s *Set, err error) *Set {
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the set label.
func (s *Set) Name() string { return s.name }

// Points returns a copy of the breakpoints.
func (s *Set) Points() []Point {
	cp := make([]Point, len(s.points))
	copy(cp, s.points)
	return cp
}

// Support returns the x-range spanned by the breakpoints.
func (s *Set) Support() (lo, hi float64) {
	return s.points[0].X, s.points[len(s.points)-1].X
}

// IsRamp reports whether the set is the two-point shoulder variant.
func (s *Set) IsRamp() bool { return len(s.points) == 2 }

func (s *Set) valid() bool { return s != nil && len(s.points) >= 2 }
