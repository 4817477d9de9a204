package nurbs

import (
	"slices"

	"github.com/ungerik/go3d/float64/vec3"
)

// SpanCurve evaluates the same rational curves as [NativeCurve] using the
// span-based algorithms of Piegl & Tiller: for each parameter only the p+1
// non-vanishing basis functions are computed, without recursion or
// memoization.
//
// Unlike [NativeCurve], SpanCurve clamps batch parameters into the curve's
// domain before evaluating. Construct instances with [Build].
type SpanCurve struct {
	degree        int
	knots         KnotVector
	controlPoints []vec3.T
	weights       []float64
}

var _ Curve = (*SpanCurve)(nil)

func newSpanCurve(degree int, knots KnotVector, controlPoints []vec3.T, weights []float64) *SpanCurve {
	if weights == nil {
		weights = uniformWeights(len(controlPoints))
	} else {
		weights = slices.Clone(weights)
	}
	return &SpanCurve{
		degree:        degree,
		knots:         slices.Clone(knots),
		controlPoints: slices.Clone(controlPoints),
		weights:       weights,
	}
}

func (c *SpanCurve) Degree() int { return c.degree }

func (c *SpanCurve) KnotVector() KnotVector { return slices.Clone(c.knots) }

func (c *SpanCurve) ControlPoints() []vec3.T { return slices.Clone(c.controlPoints) }

func (c *SpanCurve) Weights() []float64 { return slices.Clone(c.weights) }

func (c *SpanCurve) ParameterBounds() (min, max float64) {
	return c.knots.Min(), c.knots.Max()
}

// basisFunctions returns the p+1 basis functions that do not vanish on the
// given knot span, evaluated at u. Algorithm A2.2.
func (c *SpanCurve) basisFunctions(span int, u float64) []float64 {
	p := c.degree
	vals := make([]float64, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)
	vals[0] = 1
	for j := 1; j <= p; j++ {
		left[j] = u - c.knots[span+1-j]
		right[j] = c.knots[span+j] - u
		var saved float64
		for r := 0; r < j; r++ {
			temp := vals[r] / (right[r+1] + left[j-r])
			vals[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		vals[j] = saved
	}
	return vals
}

// derivativeBasisFunctions returns the non-vanishing basis functions and
// their derivatives up to order n on the given knot span, evaluated at u.
// Row k of the result holds the k-th derivatives; row 0 the function
// values. Rows beyond the degree are zero. Algorithm A2.3.
func (c *SpanCurve) derivativeBasisFunctions(span int, u float64, n int) [][]float64 {
	p := c.degree
	du := min(n, p)

	ndu := make([][]float64, p+1)
	for j := range ndu {
		ndu[j] = make([]float64, p+1)
	}
	left := make([]float64, p+1)
	right := make([]float64, p+1)
	ndu[0][0] = 1
	for j := 1; j <= p; j++ {
		left[j] = u - c.knots[span+1-j]
		right[j] = c.knots[span+j] - u
		var saved float64
		for r := 0; r < j; r++ {
			// Lower triangle: knot differences. Upper triangle: basis
			// function values.
			ndu[j][r] = right[r+1] + left[j-r]
			temp := ndu[r][j-1] / ndu[j][r]
			ndu[r][j] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		ndu[j][j] = saved
	}

	ders := make([][]float64, n+1)
	for k := range ders {
		ders[k] = make([]float64, p+1)
	}
	for j := 0; j <= p; j++ {
		ders[0][j] = ndu[j][p]
	}

	var a [2][]float64
	a[0] = make([]float64, p+1)
	a[1] = make([]float64, p+1)
	for r := 0; r <= p; r++ {
		s1, s2 := 0, 1
		a[0][0] = 1
		for k := 1; k <= du; k++ {
			var d float64
			rk, pk := r-k, p-k
			if r >= k {
				a[s2][0] = a[s1][0] / ndu[pk+1][rk]
				d = a[s2][0] * ndu[rk][pk]
			}
			var j1, j2 int
			if rk >= -1 {
				j1 = 1
			} else {
				j1 = -rk
			}
			if r-1 <= pk {
				j2 = k - 1
			} else {
				j2 = p - r
			}
			for j := j1; j <= j2; j++ {
				a[s2][j] = (a[s1][j] - a[s1][j-1]) / ndu[pk+1][rk+j]
				d += a[s2][j] * ndu[rk+j][pk]
			}
			if r <= pk {
				a[s2][k] = -a[s1][k-1] / ndu[pk+1][r]
				d += a[s2][k] * ndu[r][pk]
			}
			ders[k][r] = d
			s1, s2 = s2, s1
		}
	}

	acc := p
	for k := 1; k <= du; k++ {
		for j := 0; j <= p; j++ {
			ders[k][j] *= float64(acc)
		}
		acc *= p - k
	}
	return ders
}

// Evaluate returns the curve position at each parameter, clamped into the
// curve's domain. Samples where the denominator is exactly zero evaluate to
// the zero vector.
func (c *SpanCurve) Evaluate(ts []float64) []vec3.T {
	ts = c.clamped(ts)
	num := make([]vec3.T, len(ts))
	denom := make([]float64, len(ts))
	for n, u := range ts {
		span := c.knots.Span(c.degree, u)
		vals := c.basisFunctions(span, u)
		for j, b := range vals {
			i := span - c.degree + j
			coeff := c.weights[i] * b
			pt := c.controlPoints[i]
			num[n][0] += coeff * pt[0]
			num[n][1] += coeff * pt[1]
			num[n][2] += coeff * pt[2]
			denom[n] += coeff
		}
	}
	return maskedDivide(num, denom)
}

// Tangent returns the first derivative of the curve at each parameter. The
// result is not normalized.
func (c *SpanCurve) Tangent(ts []float64) []vec3.T {
	return c.Derivatives(1, ts)[0]
}

// Derivatives returns the first order derivatives of the curve at each
// parameter, clamped into the curve's domain.
func (c *SpanCurve) Derivatives(order int, ts []float64) [][]vec3.T {
	ts = c.clamped(ts)
	nums := make([][]vec3.T, order+1)
	denoms := make([][]float64, order+1)
	for k := 0; k <= order; k++ {
		nums[k] = make([]vec3.T, len(ts))
		denoms[k] = make([]float64, len(ts))
	}
	for n, u := range ts {
		span := c.knots.Span(c.degree, u)
		ders := c.derivativeBasisFunctions(span, u, order)
		for k := 0; k <= order; k++ {
			for j, b := range ders[k] {
				i := span - c.degree + j
				coeff := c.weights[i] * b
				pt := c.controlPoints[i]
				nums[k][n][0] += coeff * pt[0]
				nums[k][n][1] += coeff * pt[1]
				nums[k][n][2] += coeff * pt[2]
				denoms[k][n] += coeff
			}
		}
	}
	return rationalChain(order, nums, denoms)[1:]
}

func (c *SpanCurve) ExtrudeAlongVector(v vec3.T) *Surface {
	return extrude(c, v)
}

// clamped returns a copy of ts with each parameter clamped into the curve's
// domain.
func (c *SpanCurve) clamped(ts []float64) []float64 {
	lo, hi := c.ParameterBounds()
	out := make([]float64, len(ts))
	for n, t := range ts {
		out[n] = min(max(t, lo), hi)
	}
	return out
}
