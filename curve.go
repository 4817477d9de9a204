package nurbs

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// Implementation selects a curve evaluator backend.
type Implementation int

const (
	// Native selects the memoized Cox–de Boor evaluator, [NativeCurve].
	Native Implementation = iota
	// Span selects the span-based evaluator, [SpanCurve].
	Span
)

func (impl Implementation) String() string {
	switch impl {
	case Native:
		return "NATIVE"
	case Span:
		return "SPAN"
	default:
		return fmt.Sprintf("Implementation(%d)", int(impl))
	}
}

// Curve is the contract shared by all curve evaluator backends.
//
// Accessor methods return copies; a curve's data is immutable once built.
// Evaluation methods are batched and do not clamp parameters into the
// curve's domain. Implementations may differ in the domain they assign to
// equivalent curve data, so callers must query ParameterBounds rather than
// assume one.
type Curve interface {
	Degree() int
	KnotVector() KnotVector
	ControlPoints() []vec3.T
	Weights() []float64
	// ParameterBounds returns the parameter domain of the curve.
	ParameterBounds() (min, max float64)
	// Evaluate returns the curve position at each parameter.
	Evaluate(ts []float64) []vec3.T
	// Tangent returns the first derivative of the curve at each parameter.
	// The result is not normalized.
	Tangent(ts []float64) []vec3.T
	// Derivatives returns the first order derivatives of the curve at each
	// parameter: the returned slice has length order, with element zero
	// holding first derivatives.
	Derivatives(order int, ts []float64) [][]vec3.T
	// ExtrudeAlongVector lifts the curve into the ruled surface between
	// the curve and its translate along v.
	ExtrudeAlongVector(v vec3.T) *Surface
}

// Build validates the degree/knot-vector/control-point relationship and
// constructs a curve under the requested backend. A nil weights slice builds
// a non-rational curve, equivalent to all weights being one. When normalize
// is set, the knot vector is rescaled onto [0, 1] before construction.
//
// Build returns a [*KnotVectorError] for malformed knot data and a
// [*UnsupportedImplementationError] for an unknown backend.
func Build(impl Implementation, degree int, knots KnotVector, controlPoints []vec3.T, weights []float64, normalize bool) (Curve, error) {
	if err := CheckKnotVector(degree, knots, len(controlPoints)); err != nil {
		return nil, err
	}
	if normalize {
		knots = knots.Normalized()
	}
	switch impl {
	case Native:
		return newNativeCurve(degree, knots, controlPoints, weights), nil
	case Span:
		return newSpanCurve(degree, knots, controlPoints, weights), nil
	default:
		return nil, &UnsupportedImplementationError{Implementation: impl}
	}
}

// Rebuild constructs an equivalent curve under the target backend from any
// curve satisfying the [Curve] contract. This is a structural conversion of
// the curve's data, not a numerical re-fit.
func Rebuild(c Curve, impl Implementation) (Curve, error) {
	return Build(impl, c.Degree(), c.KnotVector(), c.ControlPoints(), c.Weights(), false)
}

// EvaluateAt evaluates the curve at a single parameter.
func EvaluateAt(c Curve, t float64) vec3.T {
	return c.Evaluate([]float64{t})[0]
}

// TangentAt returns the curve's first derivative at a single parameter.
func TangentAt(c Curve, t float64) vec3.T {
	return c.Tangent([]float64{t})[0]
}

// SecondDerivativeAt returns the curve's second derivative at a single
// parameter.
func SecondDerivativeAt(c Curve, t float64) vec3.T {
	return c.Derivatives(2, []float64{t})[1][0]
}

// ThirdDerivativeAt returns the curve's third derivative at a single
// parameter.
func ThirdDerivativeAt(c Curve, t float64) vec3.T {
	return c.Derivatives(3, []float64{t})[2][0]
}

// uniformWeights returns k weights of one.
func uniformWeights(k int) []float64 {
	ws := make([]float64, k)
	for i := range ws {
		ws[i] = 1
	}
	return ws
}

// binomial returns the binomial coefficient C(n, k) for small n.
func binomial(n, k int) int {
	c := 1
	for j := 0; j < k; j++ {
		c = c * (n - j) / (j + 1)
	}
	return c
}
