package fuzzy_test

import (
	"fmt"

	"github.com/mesh-intelligence/tower/pkg/fuzzy"
)

// ExampleSet_Membership scores ages against the triangular "Young" set
// (17, 28, 30): zero at the support edges, one at the peak, linear between.
func ExampleSet_Membership() {
	young, err := fuzzy.Triangular("Young", 17, 28, 30)
	if err != nil {
		panic(err)
	}
	for _, age := range []float64{10, 17, 22.5, 28, 29, 30} {
		fmt.Printf("%.1f -> %.2f\n", age, young.Membership(age))
	}

	// Output:
	// 10.0 -> 0.00
	// 17.0 -> 0.00
	// 22.5 -> 0.50
	// 28.0 -> 1.00
	// 29.0 -> 0.50
	// 30.0 -> 0.00
}

// ExampleCatalog_Evaluate classifies one age across overlapping brackets.
func ExampleCatalog_Evaluate() {
	catalog, err := fuzzy.NewCatalog(
		fuzzy.Must(fuzzy.Triangular("Young", 17, 28, 30)),
		fuzzy.Must(fuzzy.Trapezoidal("Adult", 28, 35, 50, 60)),
		fuzzy.Must(fuzzy.Ramp("Senior", fuzzy.Point{X: 55, Degree: 0}, fuzzy.Point{X: 70, Degree: 1})),
	)
	if err != nil {
		panic(err)
	}

	r := catalog.Evaluate(57.5)
	for _, e := range r.Memberships {
		fmt.Printf("%s: %.3f\n", e.Set, e.Degree)
	}

	// Output:
	// Young: 0.000
	// Adult: 0.250
	// Senior: 0.167
}

// ExampleNewSet shows the error reported for a malformed breakpoint list.
func ExampleNewSet() {
	_, err := fuzzy.NewSet("Broken",
		fuzzy.Point{X: 0, Degree: 0},
		fuzzy.Point{X: 0, Degree: 1},
		fuzzy.Point{X: 5, Degree: 0},
	)
	fmt.Println(err)

	// Output:
	// fuzzy: invalid set "Broken": breakpoint x must be strictly increasing
}
