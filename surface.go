package nurbs

import (
	"fmt"
	"slices"

	"github.com/ungerik/go3d/float64/vec3"
)

// Surface is a tensor-product rational NURBS surface. The control point
// grid is indexed [i][j], with i running along the u direction and j along
// the v direction; weights are parallel-indexed.
//
// Surfaces returned by [Curve.ExtrudeAlongVector] are ruled: degree 1 in v
// with two control point layers, the source curve's points and their
// translate. A surface holds no reference to the curve it came from.
type Surface struct {
	degreeU, degreeV int
	knotsU, knotsV   KnotVector
	controlPoints    [][]vec3.T
	weights          [][]float64
	basisU, basisV   *BasisFunctions
}

// NewSurface validates the per-direction degree/knot-vector/control-point
// relationships and the grid shape, and constructs a surface. A nil weights
// grid is equivalent to all weights being one.
func NewSurface(degreeU, degreeV int, knotsU, knotsV KnotVector, controlPoints [][]vec3.T, weights [][]float64) (*Surface, error) {
	if len(controlPoints) == 0 {
		return nil, &KnotVectorError{"control point grid is empty"}
	}
	cols := len(controlPoints[0])
	grid := make([][]vec3.T, len(controlPoints))
	for i, row := range controlPoints {
		if len(row) != cols {
			return nil, &KnotVectorError{fmt.Sprintf(
				"control point grid is ragged: row %d has %d points, row 0 has %d",
				i, len(row), cols)}
		}
		grid[i] = slices.Clone(row)
	}
	if err := CheckKnotVector(degreeU, knotsU, len(grid)); err != nil {
		return nil, err
	}
	if err := CheckKnotVector(degreeV, knotsV, cols); err != nil {
		return nil, err
	}
	ws := make([][]float64, len(grid))
	for i := range ws {
		if weights == nil {
			ws[i] = uniformWeights(cols)
			continue
		}
		if i >= len(weights) || len(weights[i]) != cols {
			return nil, &KnotVectorError{fmt.Sprintf(
				"weight grid does not match %d×%d control point grid", len(grid), cols)}
		}
		ws[i] = slices.Clone(weights[i])
	}
	return &Surface{
		degreeU:       degreeU,
		degreeV:       degreeV,
		knotsU:        slices.Clone(knotsU),
		knotsV:        slices.Clone(knotsV),
		controlPoints: grid,
		weights:       ws,
		basisU:        NewBasisFunctions(knotsU),
		basisV:        NewBasisFunctions(knotsV),
	}, nil
}

// Degrees returns the surface degrees along u and v.
func (s *Surface) Degrees() (u, v int) { return s.degreeU, s.degreeV }

// KnotVectorU returns a copy of the knot vector along u.
func (s *Surface) KnotVectorU() KnotVector { return slices.Clone(s.knotsU) }

// KnotVectorV returns a copy of the knot vector along v.
func (s *Surface) KnotVectorV() KnotVector { return slices.Clone(s.knotsV) }

// ControlPoints returns a copy of the control point grid, indexed [i][j]
// for u index i and v index j.
func (s *Surface) ControlPoints() [][]vec3.T {
	out := make([][]vec3.T, len(s.controlPoints))
	for i, row := range s.controlPoints {
		out[i] = slices.Clone(row)
	}
	return out
}

// Weights returns a copy of the weight grid.
func (s *Surface) Weights() [][]float64 {
	out := make([][]float64, len(s.weights))
	for i, row := range s.weights {
		out[i] = slices.Clone(row)
	}
	return out
}

// ParameterBounds returns the parameter domains of the surface along u and
// v.
func (s *Surface) ParameterBounds() (uMin, uMax, vMin, vMax float64) {
	return s.knotsU.Min(), s.knotsU.Max(), s.knotsV.Min(), s.knotsV.Max()
}

// Evaluate returns the surface position at (u, v). As with curves, a sample
// whose denominator is exactly zero evaluates to the zero vector.
func (s *Surface) Evaluate(u, v float64) vec3.T {
	us := []float64{u}
	vs := []float64{v}
	nv := make([]float64, len(s.controlPoints[0]))
	for j := range nv {
		f, err := s.basisV.Function(j, s.degreeV)
		if err != nil {
			panic(err)
		}
		nv[j] = f(vs)[0]
	}
	var num vec3.T
	var denom float64
	for i, row := range s.controlPoints {
		f, err := s.basisU.Function(i, s.degreeU)
		if err != nil {
			panic(err)
		}
		nu := f(us)[0]
		if nu == 0 {
			continue
		}
		for j, pt := range row {
			coeff := s.weights[i][j] * nu * nv[j]
			num[0] += coeff * pt[0]
			num[1] += coeff * pt[1]
			num[2] += coeff * pt[2]
			denom += coeff
		}
	}
	if denom == 0 {
		return vec3.T{}
	}
	return num.Scaled(1 / denom)
}

// extrude builds the ruled surface between c and its translate along v: the
// grid stacks the original control points (v index 0) and their offsets
// (v index 1), weights are duplicated across both layers, and the v knot
// vector is the clamped degree-1 vector [0, 0, 1, 1].
func extrude(c Curve, v vec3.T) *Surface {
	cps := c.ControlPoints()
	ws := c.Weights()
	grid := make([][]vec3.T, len(cps))
	wgrid := make([][]float64, len(cps))
	for i, pt := range cps {
		grid[i] = []vec3.T{pt, vec3.Add(&pt, &v)}
		wgrid[i] = []float64{ws[i], ws[i]}
	}
	s, err := NewSurface(c.Degree(), 1, c.KnotVector(), ClampedUniformKnots(1, 2), grid, wgrid)
	if err != nil {
		// The inputs come from a curve that was itself validated.
		panic(err)
	}
	return s
}
