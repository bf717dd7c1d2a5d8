package fuzzy_test

import (
	"testing"

	"github.com/mesh-intelligence/tower/pkg/fuzzy"
)

// BenchmarkMembership measures a single triangular evaluation.
// Complexity: O(P)
func BenchmarkMembership(b *testing.B) {
	s := fuzzy.Must(fuzzy.Triangular("Young", 17, 28, 30))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Membership(float64(i % 100))
	}
}

// BenchmarkCatalogEvaluate measures a three-bracket membership vector.
// Complexity: O(S×P)
func BenchmarkCatalogEvaluate(b *testing.B) {
	c, err := fuzzy.NewCatalog(
		fuzzy.Must(fuzzy.Triangular("Young", 17, 28, 30)),
		fuzzy.Must(fuzzy.Trapezoidal("Adult", 28, 35, 50, 60)),
		fuzzy.Must(fuzzy.Ramp("Senior", fuzzy.Point{X: 55}, fuzzy.Point{X: 70, Degree: 1})),
	)
	if err != nil {
		b.Fatalf("setup NewCatalog failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Evaluate(float64(i % 100))
	}
}
