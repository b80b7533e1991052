package cauchy_test

import (
	"fmt"
	"math"
	"math/cmplx"

	cauchy "github.com/zhucer2003/BIE2D"
)

// Example is the classic close-evaluation self-test: sample a known
// holomorphic function on a wobbly closed curve, then evaluate it at
// geometrically shrinking distances from a boundary point. Accuracy must
// not degrade as the distance shrinks.
func Example() {
	const n = 200
	curve := cauchy.PTR(func(t float64) (complex128, complex128) {
		e := cmplx.Rect(1, t)
		r := complex(1+0.3*math.Cos(5*t), 0)
		dr := complex(-1.5*math.Sin(5*t), 0)
		return r * e, (dr + 1i*r) * e
	}, n)

	// v(z) = 1/(z − p) with the pole outside the curve is holomorphic on
	// the whole interior.
	pole := complex128(1.5 + 1.5i)
	vb := make([]complex128, n)
	for j, x := range curve.Nodes {
		vb[j] = 1 / (x - pole)
	}

	distances := []float64{1, 1e-3, 1e-6, 1e-9, 1e-12, 1e-15}
	x0, nrm := curve.Nodes[0], curve.Normals[0]
	targets := make([]complex128, len(distances))
	for i, d := range distances {
		targets[i] = x0 - complex(d, 0)*nrm
	}

	values, derivs, err := cauchy.EvaluateValueAndDerivativeOpt(
		targets, curve, vb, cauchy.Interior, cauchy.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}

	ok := func(b bool) string {
		if b {
			return "ok"
		}
		return "FAIL"
	}
	for i, tt := range targets {
		verr := cmplx.Abs(values[i] - 1/(tt-pole))
		perr := cmplx.Abs(derivs[i] + 1/((tt-pole)*(tt-pole)))
		fmt.Printf("d=%.0e value %s derivative %s\n",
			distances[i], ok(verr < 1e-9), ok(perr < 1e-7))
	}

	// Output:
	// d=1e+00 value ok derivative ok
	// d=1e-03 value ok derivative ok
	// d=1e-06 value ok derivative ok
	// d=1e-09 value ok derivative ok
	// d=1e-12 value ok derivative ok
	// d=1e-15 value ok derivative ok
}
