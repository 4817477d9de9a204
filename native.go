package nurbs

import (
	"slices"

	"github.com/ungerik/go3d/float64/vec3"
)

// NativeCurve is the built-in rational curve evaluator. It computes the
// curve as a quotient of two vector-valued polynomials using memoized
// Cox–de Boor basis functions, and curve derivatives by successive
// application of the quotient rule.
//
// Its parameter domain is [min(knots), max(knots)]. Construct instances
// with [Build].
type NativeCurve struct {
	degree        int
	knots         KnotVector
	controlPoints []vec3.T
	weights       []float64
	basis         *BasisFunctions
}

var _ Curve = (*NativeCurve)(nil)

func newNativeCurve(degree int, knots KnotVector, controlPoints []vec3.T, weights []float64) *NativeCurve {
	if weights == nil {
		weights = uniformWeights(len(controlPoints))
	} else {
		weights = slices.Clone(weights)
	}
	return &NativeCurve{
		degree:        degree,
		knots:         slices.Clone(knots),
		controlPoints: slices.Clone(controlPoints),
		weights:       weights,
		basis:         NewBasisFunctions(knots),
	}
}

func (c *NativeCurve) Degree() int { return c.degree }

func (c *NativeCurve) KnotVector() KnotVector { return slices.Clone(c.knots) }

func (c *NativeCurve) ControlPoints() []vec3.T { return slices.Clone(c.controlPoints) }

func (c *NativeCurve) Weights() []float64 { return slices.Clone(c.weights) }

func (c *NativeCurve) ParameterBounds() (min, max float64) {
	return c.knots.Min(), c.knots.Max()
}

// fraction contracts the derivOrder-th basis function derivatives with the
// weighted control points, producing the vector-valued numerator and scalar
// denominator of the rational curve at each parameter.
func (c *NativeCurve) fraction(derivOrder int, ts []float64) ([]vec3.T, []float64) {
	num := make([]vec3.T, len(ts))
	denom := make([]float64, len(ts))
	for i, pt := range c.controlPoints {
		f, err := c.basis.Derivative(i, c.degree, derivOrder)
		if err != nil {
			// Build validated the degree/knot-vector relationship, so the
			// recursion cannot run out of knots.
			panic(err)
		}
		ns := f(ts)
		w := c.weights[i]
		for n := range ts {
			coeff := w * ns[n]
			num[n][0] += coeff * pt[0]
			num[n][1] += coeff * pt[1]
			num[n][2] += coeff * pt[2]
			denom[n] += coeff
		}
	}
	return num, denom
}

// Evaluate returns the curve position at each parameter. Samples where the
// denominator is exactly zero evaluate to the zero vector.
func (c *NativeCurve) Evaluate(ts []float64) []vec3.T {
	num, denom := c.fraction(0, ts)
	return maskedDivide(num, denom)
}

// Tangent returns the first derivative of the curve at each parameter. The
// result is not normalized.
func (c *NativeCurve) Tangent(ts []float64) []vec3.T {
	return c.Derivatives(1, ts)[0]
}

// SecondDerivative returns the second derivative of the curve at each
// parameter.
func (c *NativeCurve) SecondDerivative(ts []float64) []vec3.T {
	return c.Derivatives(2, ts)[1]
}

// ThirdDerivative returns the third derivative of the curve at each
// parameter.
func (c *NativeCurve) ThirdDerivative(ts []float64) []vec3.T {
	return c.Derivatives(3, ts)[2]
}

// Derivatives returns the first order derivatives of the curve at each
// parameter.
func (c *NativeCurve) Derivatives(order int, ts []float64) [][]vec3.T {
	nums := make([][]vec3.T, order+1)
	denoms := make([][]float64, order+1)
	for k := 0; k <= order; k++ {
		nums[k], denoms[k] = c.fraction(k, ts)
	}
	return rationalChain(order, nums, denoms)[1:]
}

func (c *NativeCurve) ExtrudeAlongVector(v vec3.T) *Surface {
	return extrude(c, v)
}

// rationalChain turns the homogeneous numerator/denominator derivative
// batches of a rational curve into curve derivative batches. nums[k] and
// denoms[k] hold the k-th derivative of numerator and denominator; the
// result holds curve derivatives of order 0 through order. nums is consumed.
//
// The curve satisfies curve·denominator = numerator, so by the general
// Leibniz rule
//
//	numerator⁽ᵏ⁾ = Σ_{j=0..k} C(k,j)·curve⁽ᵏ⁻ʲ⁾·denominator⁽ʲ⁾
//
// which solved for curve⁽ᵏ⁾ gives the familiar chain
//
//	curve′  = (numerator′ − curve·denominator′) / denominator
//	curve″  = (numerator″ − 2·curve′·denominator′ − curve·denominator″) / denominator
//	curve‴  = (numerator‴ − 3·curve″·denominator′ − 3·curve′·denominator″ − curve·denominator‴) / denominator
//
// and so on with binomial coefficients.
func rationalChain(order int, nums [][]vec3.T, denoms [][]float64) [][]vec3.T {
	curves := make([][]vec3.T, order+1)
	curves[0] = maskedDivide(nums[0], denoms[0])
	for k := 1; k <= order; k++ {
		rhs := nums[k]
		for j := 1; j <= k; j++ {
			coeff := float64(binomial(k, j))
			prev := curves[k-j]
			dj := denoms[j]
			for n := range rhs {
				rhs[n][0] -= coeff * prev[n][0] * dj[n]
				rhs[n][1] -= coeff * prev[n][1] * dj[n]
				rhs[n][2] -= coeff * prev[n][2] * dj[n]
			}
		}
		curves[k] = maskedDivide(rhs, denoms[0])
	}
	return curves
}

// maskedDivide divides each numerator by its denominator. Samples whose
// denominator is exactly zero produce the zero vector rather than NaN or
// Inf; the masking is per sample and leaves the rest of the batch intact.
func maskedDivide(num []vec3.T, denom []float64) []vec3.T {
	out := make([]vec3.T, len(num))
	for n, d := range denom {
		if d != 0 {
			out[n] = num[n].Scaled(1 / d)
		}
	}
	return out
}
