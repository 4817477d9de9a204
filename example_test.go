package nurbs_test

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
	"honnef.co/go/nurbs"
)

func Example() {
	// The exact rational quadratic quarter circle from (1,0,0) to (0,1,0).
	c, err := nurbs.Build(
		nurbs.Native,
		2,
		nurbs.KnotVector{0, 0, 0, 1, 1, 1},
		[]vec3.T{{1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		[]float64{1, 0.7071067811865476, 1},
		false,
	)
	if err != nil {
		panic(err)
	}

	mid := nurbs.EvaluateAt(c, 0.5)
	fmt.Printf("%.4f %.4f %.4f\n", mid[0], mid[1], mid[2])
	// Output: 0.7071 0.7071 0.0000
}

func ExampleCurve_ExtrudeAlongVector() {
	c, err := nurbs.Build(
		nurbs.Native,
		1,
		nurbs.KnotVector{0, 0, 1, 1},
		[]vec3.T{{0, 0, 0}, {1, 0, 0}},
		nil,
		false,
	)
	if err != nil {
		panic(err)
	}

	s := c.ExtrudeAlongVector(vec3.T{0, 2, 0})
	du, dv := s.Degrees()
	pt := s.Evaluate(0.5, 0.5)
	fmt.Printf("degree (%d, %d), point %.2f %.2f %.2f\n", du, dv, pt[0], pt[1], pt[2])
	// Output: degree (1, 1), point 0.50 1.00 0.00
}
