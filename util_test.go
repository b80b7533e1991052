package cauchy

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, want, got []complex128, epsilon float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("got %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if e := cmplx.Abs(got[i] - want[i]); e > epsilon {
			t.Errorf("element %d: got %v, want %v (error %g)", i, got[i], want[i], e)
		}
	}
}

// wobbly parametrizes the five-lobed curve z(t) = (1 + 0.3·cos 5t)·e^{it},
// counterclockwise.
func wobbly(t float64) (complex128, complex128) {
	e := cmplx.Rect(1, t)
	r := complex(1+0.3*math.Cos(5*t), 0)
	dr := complex(-1.5*math.Sin(5*t), 0)
	return r * e, (dr + 1i*r) * e
}

// poleSamples samples v(z) = 1/(z − pole) at the curve's nodes. With the
// pole on the opposite side of the curve from the targets, v is holomorphic
// on the evaluation side (and decays at infinity, as the exterior case
// requires).
func poleSamples(c Curve, pole complex128) []complex128 {
	vb := make([]complex128, len(c.Nodes))
	for j, x := range c.Nodes {
		vb[j] = 1 / (x - pole)
	}
	return vb
}
