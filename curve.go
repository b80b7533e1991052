package cauchy

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

var (
	// ErrEmptyCurve reports a curve with no quadrature nodes.
	ErrEmptyCurve = errors.New("curve has no nodes")
	// ErrLengthMismatch reports input slices whose lengths disagree with
	// the number of nodes.
	ErrLengthMismatch = errors.New("mismatched lengths")
)

// Curve is a closed curve in the complex plane, sampled on a global
// quadrature rule. The nodes are ordered along the curve; the
// parametrization is counterclockwise, so the normals point away from the
// enclosed region.
type Curve struct {
	// Nodes are the quadrature node positions.
	Nodes []complex128
	// Weights are the arc-length quadrature weights. They are positive.
	Weights []float64
	// Normals are the unit outward normals at the nodes.
	Normals []complex128
	// CW are the complex speed weights i·Normals[j]·Weights[j], the
	// quantities all contour sums are taken against. They are derived at
	// construction and must not be mutated afterwards.
	CW []complex128

	interior option[complex128]
}

// NewCurve returns a curve over the given samples and derives the complex
// speed weights. It requires at least one node and equal slice lengths.
func NewCurve(nodes []complex128, weights []float64, normals []complex128) (Curve, error) {
	if len(nodes) == 0 {
		return Curve{}, ErrEmptyCurve
	}
	if len(weights) != len(nodes) || len(normals) != len(nodes) {
		return Curve{}, fmt.Errorf("%w: %d nodes, %d weights, %d normals",
			ErrLengthMismatch, len(nodes), len(weights), len(normals))
	}
	cw := make([]complex128, len(nodes))
	for j := range nodes {
		cw[j] = 1i * normals[j] * complex(weights[j], 0)
	}
	return Curve{Nodes: nodes, Weights: weights, Normals: normals, CW: cw}, nil
}

// WithInteriorPoint returns a copy of the curve carrying an interior
// reference point, which the exterior near-singular scheme requires. The
// point must lie strictly inside the curve and well away from the
// boundary; this is the caller's responsibility and is not validated.
func (c Curve) WithInteriorPoint(a complex128) Curve {
	c.interior.set(a)
	return c
}

// InteriorPoint returns the interior reference point, if one is set.
func (c Curve) InteriorPoint() (complex128, bool) {
	return c.interior.value, c.interior.isSet
}

// PTR discretizes a smooth closed curve with the n-point periodic
// trapezoid rule. f must return the position z(t) and derivative z′(t) of
// a counterclockwise 2π-periodic parametrization. For analytic curves this
// rule converges spectrally, which the accuracy of the evaluators assumes.
func PTR(f func(t float64) (z, dz complex128), n int) Curve {
	if n < 1 {
		panic("PTR needs at least one node")
	}
	h := 2 * math.Pi / float64(n)
	c := Curve{
		Nodes:   make([]complex128, n),
		Weights: make([]float64, n),
		Normals: make([]complex128, n),
		CW:      make([]complex128, n),
	}
	for j := 0; j < n; j++ {
		z, dz := f(float64(j) * h)
		speed := cmplx.Abs(dz)
		c.Nodes[j] = z
		c.Weights[j] = speed * h
		c.Normals[j] = -1i * dz / complex(speed, 0)
		c.CW[j] = dz * complex(h, 0)
	}
	return c
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}
