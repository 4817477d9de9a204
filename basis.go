package nurbs

import (
	"slices"
	"sync"
)

// BatchFunc maps a batch of parameter values to a batch of scalar values,
// one per parameter.
type BatchFunc func(ts []float64) []float64

type basisKey struct {
	i, p, k int
}

// BasisFunctions evaluates B-spline basis functions and their derivatives
// over a fixed knot vector, using the Cox–de Boor recursion.
//
// Evaluators memoize the recursion per (i, p, k) and must not be shared
// across knot vectors; the cache closes over the knot vector it was built
// with and is only ever invalidated by discarding the evaluator. A fully
// constructed evaluator is safe for concurrent use.
type BasisFunctions struct {
	knots KnotVector

	mu    sync.Mutex
	cache map[basisKey]BatchFunc
}

// NewBasisFunctions returns a basis function evaluator over a copy of the
// given knot vector.
func NewBasisFunctions(knots KnotVector) *BasisFunctions {
	return &BasisFunctions{
		knots: slices.Clone(knots),
		cache: make(map[basisKey]BatchFunc),
	}
}

// KnotVector returns a copy of the evaluator's knot vector.
func (b *BasisFunctions) KnotVector() KnotVector {
	return slices.Clone(b.knots)
}

// Function returns the basis function N[i,p] as a batch evaluator.
//
// An out-of-range index i (negative, or too large for any basis function to
// exist) yields the all-zero function. A recurrence that would address a
// knot beyond the vector returns a [*IndexRangeError] instead, as that
// indicates an inconsistent degree/knot-vector relationship.
func (b *BasisFunctions) Function(i, p int) (BatchFunc, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.function(i, p)
}

// Derivative returns the k-th derivative of N[i,p] as a batch evaluator.
// Derivative(i, p, 0) is Function(i, p).
func (b *BasisFunctions) Derivative(i, p, k int) (BatchFunc, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.derivative(i, p, k)
}

func (b *BasisFunctions) function(i, p int) (BatchFunc, error) {
	key := basisKey{i, p, 0}
	if f, ok := b.cache[key]; ok {
		return f, nil
	}

	u := b.knots
	var f BatchFunc
	if p <= 0 {
		switch {
		case i < 0 || i >= len(u):
			f = zeroBatch
		case i+1 >= len(u):
			return nil, &IndexRangeError{Index: i, Degree: p, Len: len(u)}
		default:
			lo, hi := u[i], u[i+1]
			// The last interval is closed on both ends so that the domain
			// maximum evaluates to 1 for the final basis function.
			closed := hi >= u[len(u)-1]
			f = func(ts []float64) []float64 {
				out := make([]float64, len(ts))
				for n, t := range ts {
					if t >= lo && (t < hi || closed && t <= hi) {
						out[n] = 1
					}
				}
				return out
			}
		}
	} else {
		if i < 0 || i >= len(u) {
			f = zeroBatch
		} else if i+p+1 >= len(u) {
			return nil, &IndexRangeError{Index: i, Degree: p, Len: len(u)}
		} else {
			n1, err := b.function(i, p-1)
			if err != nil {
				return nil, err
			}
			n2, err := b.function(i+1, p-1)
			if err != nil {
				return nil, err
			}
			lo, hi := u[i], u[i+p+1]
			// Terms with a zero denominator contribute zero, the 0/0
			// convention of the standard recurrence.
			d1 := u[i+p] - u[i]
			d2 := u[i+p+1] - u[i+1]
			f = func(ts []float64) []float64 {
				v1 := n1(ts)
				v2 := n2(ts)
				out := make([]float64, len(ts))
				for n, t := range ts {
					if d1 != 0 {
						out[n] += (t - lo) / d1 * v1[n]
					}
					if d2 != 0 {
						out[n] += (hi - t) / d2 * v2[n]
					}
				}
				return out
			}
		}
	}

	b.cache[key] = f
	return f, nil
}

func (b *BasisFunctions) derivative(i, p, k int) (BatchFunc, error) {
	if k <= 0 {
		return b.function(i, p)
	}
	key := basisKey{i, p, k}
	if f, ok := b.cache[key]; ok {
		return f, nil
	}

	u := b.knots
	var f BatchFunc
	if p <= 0 || i < 0 || i >= len(u) {
		// Degree-0 basis functions are piecewise constant; their
		// derivatives vanish, as do those of out-of-range functions.
		f = zeroBatch
	} else if i+p+1 >= len(u) {
		return nil, &IndexRangeError{Index: i, Degree: p, Len: len(u)}
	} else {
		n1, err := b.derivative(i, p-1, k-1)
		if err != nil {
			return nil, err
		}
		n2, err := b.derivative(i+1, p-1, k-1)
		if err != nil {
			return nil, err
		}
		d1 := u[i+p] - u[i]
		d2 := u[i+p+1] - u[i+1]
		pf := float64(p)
		f = func(ts []float64) []float64 {
			v1 := n1(ts)
			v2 := n2(ts)
			out := make([]float64, len(ts))
			for n := range ts {
				var s float64
				if d1 != 0 {
					s += v1[n] / d1
				}
				if d2 != 0 {
					s -= v2[n] / d2
				}
				out[n] = pf * s
			}
			return out
		}
	}

	b.cache[key] = f
	return f, nil
}

func zeroBatch(ts []float64) []float64 {
	return make([]float64, len(ts))
}
