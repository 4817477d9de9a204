package nurbs

import "fmt"

// KnotVectorError reports a knot vector that cannot belong to a curve with
// the given degree and number of control points. It is returned by [Build]
// and [CheckKnotVector] before any curve object is constructed.
type KnotVectorError struct {
	Msg string
}

func (e *KnotVectorError) Error() string {
	return "nurbs: invalid knot vector: " + e.Msg
}

// UnsupportedImplementationError reports a request for an unknown or
// unavailable evaluator backend.
type UnsupportedImplementationError struct {
	Implementation Implementation
}

func (e *UnsupportedImplementationError) Error() string {
	return fmt.Sprintf("nurbs: unsupported curve implementation: %s", e.Implementation)
}

// IndexRangeError reports that the basis function recursion addressed a knot
// index beyond the knot vector. This indicates an inconsistent
// degree/knot-vector/control-point-count relationship, which [Build] rules
// out; encountering it means the evaluator was constructed from unvalidated
// data.
type IndexRangeError struct {
	Index  int // basis function index i
	Degree int // basis function degree p
	Len    int // knot vector length
}

func (e *IndexRangeError) Error() string {
	return fmt.Sprintf("nurbs: basis function N[%d,%d] addresses knots beyond vector of length %d",
		e.Index, e.Degree, e.Len)
}
