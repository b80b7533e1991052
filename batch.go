package cauchy

import "fmt"

// Mat is a dense complex matrix in row-major order.
type Mat struct {
	Rows, Cols int
	Data       []complex128
}

// NewMat returns a zeroed rows×cols matrix.
func NewMat(rows, cols int) Mat {
	return Mat{Rows: rows, Cols: cols, Data: make([]complex128, rows*cols)}
}

// Identity returns the n×n identity matrix.
func Identity(n int) Mat {
	m := NewMat(n, n)
	for i := 0; i < n; i++ {
		m.Data[i*n+i] = 1
	}
	return m
}

// At returns the element at row i, column j.
func (m Mat) At(i, j int) complex128 { return m.Data[i*m.Cols+j] }

// Set stores v at row i, column j.
func (m Mat) Set(i, j int, v complex128) { m.Data[i*m.Cols+j] = v }

// Col copies column j into a new slice.
func (m Mat) Col(j int) []complex128 {
	out := make([]complex128, m.Rows)
	for i := range out {
		out[i] = m.Data[i*m.Cols+j]
	}
	return out
}

// MulVec returns the matrix-vector product m·x.
func (m Mat) MulVec(x []complex128) []complex128 {
	if len(x) != m.Cols {
		panic(fmt.Sprintf("MulVec: %d columns, %d vector entries", m.Cols, len(x)))
	}
	out := make([]complex128, m.Rows)
	for i := range out {
		var s complex128
		for j, v := range m.Data[i*m.Cols : (i+1)*m.Cols] {
			s += v * x[j]
		}
		out[i] = s
	}
	return out
}

// EvaluateBatch evaluates many boundary-value vectors at once. boundary is
// N×n, one function per column; the result is M×n, column k matching a
// single-vector call on column k of boundary. The pairwise geometric
// matrices are built once and shared across columns, so this is the cheap
// way to evaluate many functions on the same curve and targets.
func EvaluateBatch(targets []complex128, c Curve, boundary Mat, side Side, opts Options) (Mat, error) {
	values, _, err := evaluateBatch(targets, c, boundary, side, opts, false)
	return values, err
}

// EvaluateBatchAndDerivative is like [EvaluateBatch] and also returns the
// first derivatives, column by column.
func EvaluateBatchAndDerivative(targets []complex128, c Curve, boundary Mat, side Side, opts Options) (values, derivatives Mat, err error) {
	return evaluateBatch(targets, c, boundary, side, opts, true)
}

// EvaluateOperator materializes the dense M×N evaluation operator by
// feeding the identity matrix through the batch evaluator, at O(N²·M)
// cost. Right-multiplying the result by a boundary-value vector equals
// evaluating that vector directly.
func EvaluateOperator(targets []complex128, c Curve, side Side, opts Options) (Mat, error) {
	return EvaluateBatch(targets, c, Identity(len(c.Nodes)), side, opts)
}

// EvaluateOperatorAndDerivative is like [EvaluateOperator] and also
// returns the M×N operator mapping boundary values to derivatives.
func EvaluateOperatorAndDerivative(targets []complex128, c Curve, side Side, opts Options) (values, derivatives Mat, err error) {
	return EvaluateBatchAndDerivative(targets, c, Identity(len(c.Nodes)), side, opts)
}

func evaluateBatch(targets []complex128, c Curve, boundary Mat, side Side, opts Options, wantDeriv bool) (Mat, Mat, error) {
	if err := checkEval(c, boundary.Rows, side, opts); err != nil {
		return Mat{}, Mat{}, err
	}
	values := NewMat(len(targets), boundary.Cols)
	var derivatives Mat
	if wantDeriv {
		derivatives = NewMat(len(targets), boundary.Cols)
	}
	var g *nearGeom
	if opts.NearSingular {
		g = newNearGeom(targets, c, side, opts.Delta)
	}
	for k := 0; k < boundary.Cols; k++ {
		vb := boundary.Col(k)
		var v, vp []complex128
		switch {
		case opts.NearSingular && wantDeriv:
			v, vp = g.valuesAndDerivatives(vb, nodeDerivatives(c, vb, side))
		case opts.NearSingular:
			v = g.values(vb)
		case wantDeriv:
			v = barycentric(targets, c, vb, side)
			vp = barycentric(targets, c, nodeDerivatives(c, vb, side), side)
		default:
			v = barycentric(targets, c, vb, side)
		}
		for i := range v {
			values.Set(i, k, v[i])
		}
		if wantDeriv {
			for i := range vp {
				derivatives.Set(i, k, vp[i])
			}
		}
	}
	return values, derivatives, nil
}
