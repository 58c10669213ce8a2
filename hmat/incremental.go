// SPDX-License-Identifier: MIT
// Package hmat: incremental closure.
//
// Contract:
//   - m was strongly closed, then ONLY the rows/columns of variable v
//     (literals 2v, 2v+1) were tightened.
//   - Under that precondition, running just the two pivots 2v and 2v+1
//     of the Floyd–Warshall loop followed by one strengthening sweep
//     restores the strong normal form in O(n²) instead of O(n³).
package hmat

import "github.com/katalvlaran/octlat/comp"

// IncrClosure re-closes m after a single-variable modification.
// Returns true when the constraint set became unsatisfiable.
//
// In sparse mode the caller's constraint writes have already merged
// every touched component into v's (EnsureRelated does this), so the
// kernel runs restricted to v's component; a v still independent has no
// finite constraint at all and nothing to propagate.
func (m *Mat) IncrClosure(v int) bool {
	if m.dense {
		return m.incrDense(v)
	}
	c := m.part.Find(v)
	if c < 0 {
		return false
	}

	return m.incrComponent(m.part.Comp(c), v)
}

// incrDense runs pivots 2v and 2v+1 over the full matrix.
func (m *Mat) incrDense(v int) bool {
	n2 := 2 * m.dim
	b := m.bounds
	var (
		k, i, j, br, at int
		ik, kj, cand    float64
	)
	for k = 2 * v; k <= 2*v+1; k++ {
		for i = 0; i < n2; i++ {
			ik = b[MatPos2(i, k)]
			if isInf(ik) {
				continue
			}
			br = i | 1
			for j = 0; j <= br; j++ {
				kj = b[MatPos2(k, j)]
				if isInf(kj) {
					continue
				}
				cand = ik + kj
				at = MatPos(i, j)
				if cand < b[at] {
					b[at] = cand
				}
			}
		}
	}
	if m.strengthenDense() {
		return true
	}

	return m.resetDiagDense()
}

// incrComponent runs the two pivots of v restricted to its component,
// then one strengthening sweep over that component.
func (m *Mat) incrComponent(l *comp.List, v int) bool {
	lits := litsOf(l)
	s2 := len(lits)
	b := m.bounds
	var (
		li, lj, br, at int
		gi, gj         int
		ik, kj, cand   float64
		ii, jj, half   float64
	)
	for gk := 2 * v; gk <= 2*v+1; gk++ {
		for li = 0; li < s2; li++ {
			gi = lits[li]
			ik = b[MatPos2(gi, gk)]
			if isInf(ik) {
				continue
			}
			br = li | 1
			for lj = 0; lj <= br; lj++ {
				gj = lits[lj]
				kj = b[MatPos2(gk, gj)]
				if isInf(kj) {
					continue
				}
				cand = ik + kj
				at = MatPos(gi, gj)
				if cand < b[at] {
					b[at] = cand
				}
			}
		}
	}

	// One strengthening sweep plus the emptiness check and diagonal
	// settle, all restricted to the component.
	for li = 0; li < s2; li++ {
		gi = lits[li]
		ii = b[MatPos(gi, gi^1)]
		if isInf(ii) {
			continue
		}
		br = li | 1
		for lj = 0; lj <= br; lj++ {
			gj = lits[lj]
			jj = b[MatPos(gj^1, gj)]
			if isInf(jj) {
				continue
			}
			half = (ii + jj) / 2
			at = MatPos(gi, gj)
			if half < b[at] {
				b[at] = half
			}
		}
	}
	for li = 0; li < s2; li++ {
		gi = lits[li]
		at = MatPos(gi, gi)
		if b[at] < 0 {
			return true
		}
		b[at] = 0
	}

	return false
}
