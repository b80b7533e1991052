package cauchy

import (
	"math/cmplx"
	"testing"
)

// TestDeltaInvariance: for targets farther than delta from every node, the
// corrected scheme must agree with the standard evaluator no matter which
// delta is chosen — including delta zero, which corrects every pair.
func TestDeltaInvariance(t *testing.T) {
	const n = 150
	c := PTR(wobbly, n).WithInteriorPoint(0)

	for _, side := range []Side{Interior, Exterior} {
		pole := complex128(1.5 + 1.5i)
		targets := []complex128{0, 0.2 - 0.1i, -0.3i}
		if side == Exterior {
			pole = 0.2 + 0.1i
			targets = []complex128{2 + 2i, -3, 1.8i}
		}
		vb := poleSamples(c, pole)

		wantV, wantP, err := EvaluateValueAndDerivative(targets, c, vb, side)
		if err != nil {
			t.Fatal(err)
		}
		for _, delta := range []float64{1e-3, 1e-2, 0.3, 0} {
			v, vp, err := EvaluateValueAndDerivativeOpt(targets, c, vb, side,
				Options{NearSingular: true, Delta: delta})
			if err != nil {
				t.Fatal(err)
			}
			assertNear(t, wantV, v, 1e-12)
			assertNear(t, wantP, vp, 1e-10)
		}
	}
}

// TestNearSingularValueClose exercises the value-only corrected path right
// against the boundary, on both sides.
func TestNearSingularValueClose(t *testing.T) {
	const n = 200
	c := PTR(wobbly, n).WithInteriorPoint(0)
	x0, nrm := c.Nodes[0], c.Normals[0]

	for _, side := range []Side{Interior, Exterior} {
		pole := complex128(1.5 + 1.5i)
		sign := -1.0
		if side == Exterior {
			pole = 0.2 + 0.1i
			sign = 1.0
		}
		vb := poleSamples(c, pole)
		targets := []complex128{x0 + complex(sign*1e-8, 0)*nrm}

		got, err := EvaluateValueOpt(targets, c, vb, side, DefaultOptions())
		if err != nil {
			t.Fatal(err)
		}
		if e := cmplx.Abs(got[0] - 1/(targets[0]-pole)); e > 1e-12 {
			t.Errorf("%v: value error %g", side, e)
		}
	}
}

// TestCorrectedDiffMatchesNaiveFar: for a pair that is not actually close,
// the rearranged difference must agree with the naive one, since the two
// forms are algebraically identical.
func TestCorrectedDiffMatchesNaiveFar(t *testing.T) {
	const n = 100
	c := PTR(wobbly, n).WithInteriorPoint(0)

	for _, side := range []Side{Interior, Exterior} {
		pole := complex128(1.5 + 1.5i)
		target := complex128(0.1 + 0.1i)
		if side == Exterior {
			pole = 0.2 + 0.1i
			target = 2 - 1.5i
		}
		vb := poleSamples(c, pole)

		g := newNearGeom([]complex128{target}, c, side, DefaultDelta)
		vc := g.values(vb)[0]
		for _, j := range []int{0, 17, n - 1} {
			naive := vb[j] - vc
			corrected := g.correctedDiff(vb, 0, j)
			if e := cmplx.Abs(naive - corrected); e > 1e-13 {
				t.Errorf("%v, node %d: naive %v, corrected %v (difference %g)",
					side, j, naive, corrected, e)
			}
		}
	}
}
