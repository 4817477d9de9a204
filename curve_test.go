package nurbs

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestBuildValidatesKnotVector(t *testing.T) {
	cps := []vec3.T{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	// Too short for degree 2 with three control points.
	_, err := Build(Native, 2, KnotVector{0, 0, 1, 1}, cps, nil, false)
	var kerr *KnotVectorError
	if !errors.As(err, &kerr) {
		t.Fatalf("got %v, expected *KnotVectorError", err)
	}

	// The same data fails for every backend; validation runs before
	// dispatch.
	for _, impl := range []Implementation{Native, Span, Implementation(42)} {
		if _, err := Build(impl, 2, KnotVector{0, 0, 1, 1}, cps, nil, false); !errors.As(err, &kerr) {
			t.Errorf("%s: got %v, expected *KnotVectorError", impl, err)
		}
	}
}

func TestBuildUnsupportedImplementation(t *testing.T) {
	degree, knots, cps := wavyCubic()
	_, err := Build(Implementation(42), degree, knots, cps, nil, false)
	var uerr *UnsupportedImplementationError
	if !errors.As(err, &uerr) {
		t.Fatalf("got %v, expected *UnsupportedImplementationError", err)
	}
	if uerr.Implementation != Implementation(42) {
		t.Errorf("error names %s, want Implementation(42)", uerr.Implementation)
	}
}

func TestBuildNormalizesKnots(t *testing.T) {
	cps := []vec3.T{{0, 0, 0}, {1, 1, 0}, {2, 0, 0}, {3, 1, 0}}
	knots := KnotVector{2, 2, 2, 4, 6, 6, 6}
	c, err := Build(Native, 2, knots, cps, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, KnotVector{0, 0, 0, 0.5, 1, 1, 1}, c.KnotVector())
	lo, hi := c.ParameterBounds()
	diff(t, 0.0, lo)
	diff(t, 1.0, hi)

	// Normalization only rescales the parametrization; the curve's image
	// is unchanged.
	plain, err := Build(Native, 2, knots, cps, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	for _, u := range grid(0, 1, 20) {
		assertNear(t, EvaluateAt(plain, 2+4*u), EvaluateAt(c, u), 1e-12)
	}
}

func TestRebuildRoundTrip(t *testing.T) {
	degree, knots, cps, ws := quarterCircle()
	native := mustBuild(t, Native, degree, knots, cps, ws)

	span, err := Rebuild(native, Span)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := span.(*SpanCurve); !ok {
		t.Fatalf("got %T, expected *SpanCurve", span)
	}
	back, err := Rebuild(span, Native)
	if err != nil {
		t.Fatal(err)
	}

	approx := cmpopts.EquateApprox(0, 1e-15)
	for _, c := range []Curve{span, back} {
		diff(t, native.Degree(), c.Degree())
		diff(t, native.KnotVector(), c.KnotVector(), approx)
		diff(t, native.ControlPoints(), c.ControlPoints(), approx)
		diff(t, native.Weights(), c.Weights(), approx)
	}

	ts := grid(0, 1, 25)
	want := native.Evaluate(ts)
	for _, c := range []Curve{span, back} {
		for n, pt := range c.Evaluate(ts) {
			assertNear(t, want[n], pt, 1e-9)
		}
	}
}

func TestRebuildUnsupported(t *testing.T) {
	degree, knots, cps := wavyCubic()
	c := mustBuild(t, Native, degree, knots, cps, nil)
	var uerr *UnsupportedImplementationError
	if _, err := Rebuild(c, Implementation(7)); !errors.As(err, &uerr) {
		t.Fatalf("got %v, expected *UnsupportedImplementationError", err)
	}
}

func TestImplementationString(t *testing.T) {
	diff(t, "NATIVE", Native.String())
	diff(t, "SPAN", Span.String())
	diff(t, "Implementation(9)", Implementation(9).String())
}

func TestSingleValueHelpers(t *testing.T) {
	degree, knots, cps := wavyCubic()
	c := mustBuild(t, Native, degree, knots, cps, nil)
	ts := []float64{0.37}
	assertNear(t, c.Evaluate(ts)[0], EvaluateAt(c, 0.37), 1e-15)
	assertNear(t, c.Tangent(ts)[0], TangentAt(c, 0.37), 1e-15)
	assertNear(t, c.Derivatives(2, ts)[1][0], SecondDerivativeAt(c, 0.37), 1e-15)
	assertNear(t, c.Derivatives(3, ts)[2][0], ThirdDerivativeAt(c, 0.37), 1e-15)
}
