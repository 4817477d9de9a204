// Package nurbs evaluates NURBS (non-uniform rational B-spline) curves:
// positions, tangents, and higher-order derivatives at batches of parameter
// values, as well as ruled surfaces obtained by extruding a curve along a
// vector.
//
// # Curves
//
// A rational curve is defined by a degree, a non-decreasing knot vector, a
// sequence of 3D control points, and one weight per control point. With all
// weights equal the curve reduces to a plain B-spline. Curves are built with
// [Build], which validates the degree/knot-vector/control-point relationship
// before any curve exists, and are immutable afterwards; all evaluation
// methods are pure reads and safe for concurrent use.
//
// [Curve] is the contract shared by all evaluator backends. [Native] selects
// the memoized Cox–de Boor evaluator, [Span] the span-based evaluator using
// the algorithms of Piegl and Tiller. Both compute the same curves; callers
// should program against [Curve] and use [Rebuild] to re-home a curve under a
// different backend. Backends may disagree about the parameter domain of a
// curve, so callers must query [Curve.ParameterBounds] rather than assume a
// domain.
//
// # Evaluation
//
// Evaluation is batched: [Curve.Evaluate], [Curve.Tangent], and
// [Curve.Derivatives] map a slice of parameter values to a slice of results.
// [EvaluateAt] and friends are batch-of-one conveniences. Parameters outside
// the curve's domain are not an error; callers that want clamped behavior
// clamp before evaluating.
//
// Rational curves are evaluated as a quotient of two vector-valued
// polynomials. Wherever the denominator is exactly zero, the result is the
// zero vector rather than NaN or Inf; this masking is applied per sample and
// never contaminates the rest of a batch.
//
// # Surfaces
//
// [Curve.ExtrudeAlongVector] lifts a curve into a [Surface], a ruled NURBS
// surface of degree (p, 1) between the curve and its translate. Surfaces
// support tensor-product evaluation via [Surface.Evaluate] but are otherwise
// independent of the curve they came from.
//
// # Literature
//
// The span-based algorithms follow The NURBS Book by Piegl and Tiller (2nd
// edition), algorithms A2.1 through A2.3 and the rational derivative
// correction of A4.2.
package nurbs
