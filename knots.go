package nurbs

import (
	"fmt"
	"slices"
)

// KnotVector is a non-decreasing sequence of parameter values defining the
// intervals over which B-spline basis functions are piecewise polynomial.
//
// For a curve of degree p with k control points the knot vector has
// k + p + 1 entries. Use [CheckKnotVector] to verify that relationship.
type KnotVector []float64

// Min returns the smallest knot value.
func (kv KnotVector) Min() float64 {
	return slices.Min(kv)
}

// Max returns the largest knot value.
func (kv KnotVector) Max() float64 {
	return slices.Max(kv)
}

// Normalized returns a copy of the knot vector rescaled affinely onto the
// canonical domain [0, 1]. A knot vector whose knots are all equal is
// returned as all zeros.
func (kv KnotVector) Normalized() KnotVector {
	lo, hi := kv.Min(), kv.Max()
	out := make(KnotVector, len(kv))
	if hi == lo {
		return out
	}
	scale := 1 / (hi - lo)
	for i, u := range kv {
		out[i] = (u - lo) * scale
	}
	return out
}

// Span returns the index i of the knot span [kv[i], kv[i+1]) containing u,
// for a curve of the given degree. Parameters at or beyond the domain
// maximum are assigned to the last non-empty span, so the final interval is
// closed on both ends.
//
// This is the binary search of algorithm A2.1 from Piegl & Tiller.
func (kv KnotVector) Span(degree int, u float64) int {
	n := len(kv) - degree - 2 // index of the last basis function
	if u >= kv[n+1] {
		return n
	}
	if u <= kv[degree] {
		return degree
	}
	lo, hi := degree, n+1
	mid := (lo + hi) / 2
	for u < kv[mid] || u >= kv[mid+1] {
		if u < kv[mid] {
			hi = mid
		} else {
			lo = mid
		}
		mid = (lo + hi) / 2
	}
	return mid
}

// CheckKnotVector verifies that knots can serve as the knot vector of a
// curve of the given degree with numControlPoints control points: the length
// must equal numControlPoints + degree + 1, the knots must be non-decreasing,
// and no knot value may repeat more than degree+1 times. It returns a
// [*KnotVectorError] describing the first violation, or nil.
func CheckKnotVector(degree int, knots KnotVector, numControlPoints int) error {
	if degree < 0 {
		return &KnotVectorError{fmt.Sprintf("degree %d is negative", degree)}
	}
	if want := numControlPoints + degree + 1; len(knots) != want {
		return &KnotVectorError{fmt.Sprintf(
			"length is %d, need %d for degree %d with %d control points",
			len(knots), want, degree, numControlPoints)}
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return &KnotVectorError{fmt.Sprintf(
				"knots decrease at index %d: %g < %g", i, knots[i], knots[i-1])}
		}
	}
	mult := 1
	for i := 1; i < len(knots); i++ {
		if knots[i] == knots[i-1] {
			mult++
			if mult > degree+1 {
				return &KnotVectorError{fmt.Sprintf(
					"knot %g has multiplicity greater than %d", knots[i], degree+1)}
			}
		} else {
			mult = 1
		}
	}
	return nil
}

// ClampedUniformKnots generates the clamped uniform knot vector on [0, 1]
// for a curve of the given degree with numControlPoints control points: the
// boundary knots repeat degree+1 times and interior knots are evenly spaced.
// For degree 1 with 2 control points this is [0, 0, 1, 1].
func ClampedUniformKnots(degree, numControlPoints int) KnotVector {
	kv := make(KnotVector, numControlPoints+degree+1)
	interior := len(kv) - 2*(degree+1)
	for i := range kv {
		switch {
		case i <= degree:
			kv[i] = 0
		case i >= len(kv)-degree-1:
			kv[i] = 1
		default:
			kv[i] = float64(i-degree) / float64(interior+1)
		}
	}
	return kv
}
