package fuzzy

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func young(t testing.TB) *Set {
	t.Helper()
	s, err := Triangular("Young", 17, 28, 30)
	require.NoError(t, err)
	return s
}

func TestMembership_DefaultTriangle(t *testing.T) {
	s := young(t)
	tests := []struct {
		value float64
		want  float64
	}{
		{17, 0},
		{28, 1},
		{30, 0},
		{22.5, 0.5},
		{29, 0.5},
		{10, 0},
		{35, 0},
		{-5, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, s.Membership(tc.value), "membership(%v)", tc.value)
	}
}

func TestMembership_Trapezoid(t *testing.T) {
	s, err := Trapezoidal("Adult", 28, 35, 50, 60)
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.Membership(28))
	assert.Equal(t, 1.0, s.Membership(35))
	assert.Equal(t, 1.0, s.Membership(42), "plateau")
	assert.Equal(t, 1.0, s.Membership(50))
	assert.Equal(t, 0.5, s.Membership(55))
	assert.Equal(t, 0.0, s.Membership(60))
	assert.InDelta(t, 0.5, s.Membership(31.5), 1e-12)
}

func TestMembership_Polyline(t *testing.T) {
	s, err := NewSet("bumpy", Point{0, 0}, Point{2, 0.5}, Point{4, 0.5}, Point{6, 1}, Point{8, 0})
	require.NoError(t, err)

	assert.Equal(t, 0.25, s.Membership(1))
	assert.Equal(t, 0.5, s.Membership(2))
	assert.Equal(t, 0.5, s.Membership(3))
	assert.Equal(t, 0.75, s.Membership(5))
	assert.Equal(t, 1.0, s.Membership(6))
	assert.Equal(t, 0.5, s.Membership(7))
}

func TestMembership_Ramps(t *testing.T) {
	rise, err := Ramp("Senior", Point{55, 0}, Point{70, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, rise.Membership(40))
	assert.Equal(t, 0.0, rise.Membership(55))
	assert.InDelta(t, 1.0/3.0, rise.Membership(60), 1e-12)
	assert.Equal(t, 1.0, rise.Membership(70))
	assert.Equal(t, 1.0, rise.Membership(95), "shoulder holds the edge degree")

	fall, err := Ramp("Child", Point{12, 1}, Point{18, 0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, fall.Membership(0))
	assert.Equal(t, 0.5, fall.Membership(15))
	assert.Equal(t, 0.0, fall.Membership(18))
	assert.Equal(t, 0.0, fall.Membership(30))
}

func TestMembership_NonFiniteInput(t *testing.T) {
	s := young(t)
	assert.Equal(t, 0.0, s.Membership(math.NaN()))
	assert.Equal(t, 0.0, s.Membership(math.Inf(1)))
	assert.Equal(t, 0.0, s.Membership(math.Inf(-1)))

	var zero Set
	assert.Equal(t, 0.0, zero.Membership(20))
	var nilSet *Set
	assert.Equal(t, 0.0, nilSet.Membership(20))
}

func TestMembership_Monotonic(t *testing.T) {
	s := young(t)

	prev := s.Membership(17)
	for x := 17.25; x < 28; x += 0.25 {
		got := s.Membership(x)
		assert.Greater(t, got, prev, "rising edge must be strictly increasing at %v", x)
		prev = got
	}

	prev = s.Membership(28)
	for x := 28.1; x < 30; x += 0.1 {
		got := s.Membership(x)
		assert.Less(t, got, prev, "falling edge must be strictly decreasing at %v", x)
		prev = got
	}
}

func TestMembership_RangeClosure(t *testing.T) {
	sets := []*Set{
		young(t),
		Must(Trapezoidal("Adult", 28, 35, 50, 60)),
		Must(Ramp("Senior", Point{55, 0}, Point{70, 1})),
		Must(NewSet("narrow", Point{1e-9, 0}, Point{2e-9, 1}, Point{3e-9, 0})),
	}
	values := []float64{-1e300, -1, 0, 1e-9, 1.5e-9, 16.999, 17.0001, 27.9999, 28.0001, 45, 59.999, 1e300}
	for _, s := range sets {
		for _, v := range values {
			got := s.Membership(v)
			assert.GreaterOrEqual(t, got, 0.0, "%s(%v)", s.Name(), v)
			assert.LessOrEqual(t, got, 1.0, "%s(%v)", s.Name(), v)
		}
	}
}

func TestMembership_Concurrent(t *testing.T) {
	s := young(t)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if s.Membership(22.5) != 0.5 {
					t.Error("unexpected membership under concurrency")
					return
				}
			}
		}()
	}
	wg.Wait()
}
