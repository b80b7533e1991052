package cauchy

import "math/cmplx"

// nearGeom holds the boundary-value-independent part of the near-singular
// corrected scheme: the pairwise displacement matrices, the
// pole-regularized denominator sums, the exterior prefactors, and the
// node–target pairs that need the cancellation-free correction. Building
// it once lets the batch evaluator share it across boundary-value columns.
type nearGeom struct {
	targets []complex128
	c       Curve
	ext     bool
	pole    complex128   // interior reference point; exterior only
	inva    []complex128 // 1/(x_j − pole); exterior only

	comp []complex128 // cw_j/(x_j − t_i), target-major
	invd []complex128 // 1/(x_j − t_i), target-major
	j0   []complex128 // denominator sums, pole-regularized for exterior
	pref []complex128 // 1/(t_i − pole) for exterior, 1 otherwise
	hit  []int        // index of the node coinciding with target i, or -1
	bad  [][]int      // nodes within delta of target i, ascending
}

// newNearGeom builds the shared geometry. delta is the pair-correction
// distance threshold; zero marks every pair for correction. The caller has
// already validated the curve, the side, delta, and (for the exterior) the
// presence of the interior reference point.
func newNearGeom(targets []complex128, c Curve, side Side, delta float64) *nearGeom {
	n := len(c.Nodes)
	m := len(targets)
	g := &nearGeom{
		targets: targets,
		c:       c,
		ext:     side == Exterior,
		comp:    make([]complex128, n*m),
		invd:    make([]complex128, n*m),
		j0:      make([]complex128, m),
		pref:    make([]complex128, m),
		hit:     make([]int, m),
		bad:     make([][]int, m),
	}
	if g.ext {
		g.pole, _ = c.InteriorPoint()
		g.inva = make([]complex128, n)
		for j, x := range c.Nodes {
			g.inva[j] = 1 / (x - g.pole)
		}
	}
	for i, t := range targets {
		if g.ext {
			g.pref[i] = 1 / (t - g.pole)
		} else {
			g.pref[i] = 1
		}
		if k := hitNode(c.Nodes, t); k >= 0 {
			// The outputs for this target are overwritten with nodal
			// quantities; its matrix rows stay zero.
			g.hit[i] = k
			continue
		}
		g.hit[i] = -1
		row := g.comp[i*n : (i+1)*n]
		inv := g.invd[i*n : (i+1)*n]
		for j, x := range c.Nodes {
			d := x - t
			inv[j] = 1 / d
			row[j] = c.CW[j] * inv[j]
			pc := row[j]
			if g.ext {
				pc *= g.inva[j]
			}
			g.j0[i] += pc
			if delta == 0 || cmplx.Abs(d) < delta {
				g.bad[i] = append(g.bad[i], j)
			}
		}
	}
	return g
}

// values evaluates one boundary-value vector at every target.
func (g *nearGeom) values(vb []complex128) []complex128 {
	n := len(g.c.Nodes)
	out := make([]complex128, len(g.targets))
	for i := range g.targets {
		if k := g.hit[i]; k >= 0 {
			out[i] = vb[k]
			continue
		}
		var i0 complex128
		for j, w := range g.comp[i*n : (i+1)*n] {
			i0 += vb[j] * w
		}
		out[i] = g.pref[i] * (i0 / g.j0[i])
	}
	return out
}

// valuesAndDerivatives evaluates one boundary-value vector, with first
// derivatives. sw holds the Schneider–Werner nodal derivatives, used
// verbatim when a target hits a node.
func (g *nearGeom) valuesAndDerivatives(vb, sw []complex128) (values, derivatives []complex128) {
	n := len(g.c.Nodes)
	values = g.values(vb)
	derivatives = make([]complex128, len(g.targets))
	for i := range g.targets {
		if k := g.hit[i]; k >= 0 {
			derivatives[i] = sw[k]
			continue
		}
		row := g.comp[i*n : (i+1)*n]
		inv := g.invd[i*n : (i+1)*n]
		// The naive difference vb_j − v(t_i) cancels catastrophically when
		// node j is close to target i; those pairs get the rearranged,
		// cancellation-free form instead.
		bad := g.bad[i]
		var sum complex128
		for j, w := range row {
			var dv complex128
			if len(bad) > 0 && bad[0] == j {
				bad = bad[1:]
				dv = g.correctedDiff(vb, i, j)
			} else {
				dv = vb[j] - values[i]
			}
			sum += dv * w * inv[j]
		}
		derivatives[i] = g.pref[i] * (sum / g.j0[i])
	}
	return values, derivatives
}

// correctedDiff computes vb_j − v(t_i) for node j close to target i. The
// forms below are algebraically identical to the naive difference but
// never subtract two nearly equal quantities: the cancellation happens
// inside each summand, where it is benign.
func (g *nearGeom) correctedDiff(vb []complex128, i, j int) complex128 {
	n := len(g.c.Nodes)
	row := g.comp[i*n : (i+1)*n]
	if !g.ext {
		var s complex128
		for k, w := range row {
			s += w * (vb[j] - vb[k])
		}
		return s / g.j0[i]
	}
	var s complex128
	for k, w := range row {
		s += w * (vb[j]*g.inva[k] - vb[k]*g.inva[j])
	}
	p := s / g.j0[i]
	xj := g.c.Nodes[j]
	return g.pref[i] * ((xj-g.pole)*p + (g.targets[i]-xj)*vb[j])
}
