package nurbs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ungerik/go3d/float64/vec3"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, want, got vec3.T, epsilon float64) {
	t.Helper()
	d := vec3.Sub(&got, &want)
	if d.Length() > epsilon {
		t.Fatalf("got %v, expected %v", got, want)
	}
}

// quarterCircle returns the control data of the exact rational quadratic
// quarter circle from (1,0,0) to (0,1,0) on the unit circle.
func quarterCircle() (degree int, knots KnotVector, controlPoints []vec3.T, weights []float64) {
	return 2,
		KnotVector{0, 0, 0, 1, 1, 1},
		[]vec3.T{{1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		[]float64{1, 0.7071067811865476, 1}
}

// wavyCubic returns a smooth clamped cubic with five control points on the
// domain [0, 1].
func wavyCubic() (degree int, knots KnotVector, controlPoints []vec3.T) {
	return 3,
		ClampedUniformKnots(3, 5),
		[]vec3.T{
			{0, 0, 0},
			{1, 2, 0},
			{2, -1, 1},
			{3, 1, -1},
			{4, 0, 0},
		}
}

func grid(lo, hi float64, n int) []float64 {
	ts := make([]float64, n+1)
	for i := range ts {
		ts[i] = lo + (hi-lo)*float64(i)/float64(n)
	}
	return ts
}
