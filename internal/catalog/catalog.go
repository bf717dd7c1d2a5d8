// Package catalog builds the passenger age bracket catalog from
// configuration. Brackets are declared under the age_brackets key as an
// ordered list; the order of the list is the order of every membership
// result.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/tower/pkg/fuzzy"
)

// Key is the configuration key holding the bracket definitions.
const Key = "age_brackets"

// Bracket shapes.
const (
	ShapeTriangular  = "triangular"
	ShapeTrapezoidal = "trapezoidal"
	ShapeRamp        = "ramp"
	ShapeRampDown    = "ramp_down"
	ShapePoints      = "points"
)

// Catalog errors.
var (
	ErrUnknownShape = errors.New("unknown bracket shape")
	ErrParamCount   = errors.New("wrong number of bracket params")
	ErrNoBrackets   = errors.New("no age brackets configured")
)

// Definition describes one age bracket. Params are read according to Shape:
// triangular takes a, b, c; trapezoidal takes a, b, c, d; ramp and
// ramp_down take the x where the ramp starts and the x where it ends.
// The points shape ignores Params and uses Points verbatim.
type Definition struct {
	Name   string        `mapstructure:"name" yaml:"name" json:"name"`
	Shape  string        `mapstructure:"shape" yaml:"shape" json:"shape"`
	Params []float64     `mapstructure:"params" yaml:"params,omitempty" json:"params,omitempty"`
	Points []fuzzy.Point `mapstructure:"points" yaml:"points,omitempty" json:"points,omitempty"`
}

// DefaultDefinitions returns the brackets used when the configuration has
// none: Young, Adult and Senior.
func DefaultDefinitions() []Definition {
	return []Definition{
		{Name: "Young", Shape: ShapeTriangular, Params: []float64{17, 28, 30}},
		{Name: "Adult", Shape: ShapeTrapezoidal, Params: []float64{28, 35, 50, 60}},
		{Name: "Senior", Shape: ShapeRamp, Params: []float64{55, 70}},
	}
}

// Set builds the fuzzy set described by d.
func (d Definition) Set() (*fuzzy.Set, error) {
	shape := strings.ToLower(strings.TrimSpace(d.Shape))
	want := map[string]int{
		ShapeTriangular:  3,
		ShapeTrapezoidal: 4,
		ShapeRamp:        2,
		ShapeRampDown:    2,
	}
	if n, ok := want[shape]; ok && len(d.Params) != n {
		return nil, fmt.Errorf("%w: %s needs %d, got %d", ErrParamCount, shape, n, len(d.Params))
	}

	p := d.Params
	switch shape {
	case ShapeTriangular:
		return fuzzy.Triangular(d.Name, p[0], p[1], p[2])
	case ShapeTrapezoidal:
		return fuzzy.Trapezoidal(d.Name, p[0], p[1], p[2], p[3])
	case ShapeRamp:
		return fuzzy.Ramp(d.Name, fuzzy.Point{X: p[0], Degree: 0}, fuzzy.Point{X: p[1], Degree: 1})
	case ShapeRampDown:
		return fuzzy.Ramp(d.Name, fuzzy.Point{X: p[0], Degree: 1}, fuzzy.Point{X: p[1], Degree: 0})
	case ShapePoints:
		return fuzzy.NewSet(d.Name, d.Points...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, d.Shape)
	}
}

// Build validates defs and returns them as a catalog in the same order.
func Build(defs []Definition) (*fuzzy.Catalog, error) {
	if len(defs) == 0 {
		return nil, ErrNoBrackets
	}
	sets := make([]*fuzzy.Set, 0, len(defs))
	for i, d := range defs {
		s, err := d.Set()
		if err != nil {
			return nil, fmt.Errorf("age bracket %d (%s): %w", i+1, d.Name, err)
		}
		sets = append(sets, s)
	}
	return fuzzy.NewCatalog(sets...)
}

// Definitions decodes the bracket definitions from v, falling back to
// DefaultDefinitions when the key is absent.
func Definitions(v *viper.Viper) ([]Definition, error) {
	if v == nil || !v.IsSet(Key) {
		return DefaultDefinitions(), nil
	}
	var defs []Definition
	if err := v.UnmarshalKey(Key, &defs); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", Key, err)
	}
	return defs, nil
}

// Load decodes and builds the catalog configured in v.
func Load(v *viper.Viper) (*fuzzy.Catalog, error) {
	defs, err := Definitions(v)
	if err != nil {
		return nil, err
	}
	return Build(defs)
}
