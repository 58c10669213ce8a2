// SPDX-License-Identifier: MIT
// Package hmat: strong closure kernels.
//
// Contract:
//   - Entries are bounds on Lⱼ − Lᵢ; +Inf means "no constraint".
//   - The kernel is in-place: a matrix found unsatisfiable is left in
//     an unspecified state and must be discarded by the caller.
//
// The algorithm is the Floyd–Warshall variant for octagons (Miné):
// for every pivot literal k, relax m[i,j] against m[i,k] + m[k,j];
// after each variable (pivot pair 2v, 2v+1), strengthen m[i,j] against
// (m[i,i⊕1] + m[j⊕1,j]) / 2, which is the octagonal coherence
// Lⱼ − Lᵢ = (Lᵢ₊ᵦ − Lᵢ)/2 + (Lⱼ − Lⱼ₊ᵦ)/2 on doubled unary bounds.
// A negative diagonal entry at any point means the constraint set is
// empty. Loop order is fixed (k → i → j) for deterministic
// accumulation, as in the dense APSP kernel this one generalizes.
package hmat

import "github.com/katalvlaran/octlat/comp"

// StrongClosure transforms m into its strong normal form in place.
// Returns true when the constraint set is unsatisfiable (the caller
// must then discard m — the lattice element is ⊥).
//
// Complexity: dense O(n³); sparse O(Σ kᵢ³) over component sizes,
// partition preserved.
func (m *Mat) StrongClosure() bool {
	if m.dense {
		return m.closeDense()
	}
	for c := 0; c < m.part.Len(); c++ {
		if m.closeComponent(m.part.Comp(c)) {
			return true
		}
	}

	return false
}

// closeDense runs the full-matrix kernel.
func (m *Mat) closeDense() bool {
	n2 := 2 * m.dim
	b := m.bounds

	// Predeclare all loop counters and temporaries; nothing allocates
	// inside the hot loops.
	var (
		k, i, j, at  int     // pivot, row, column, flat offset
		ik, kj, cand float64 // m[i,k], m[k,j], candidate path via k
	)

	for k = 0; k < n2; k++ {
		// Shortest-path step for pivot literal k: relax every pair
		// (i, j) against the path i → k → j. MatPos2 maps an unstored
		// pair to its partner's slot, so each stored entry is relaxed
		// through k in both of its orientations.
		for i = 0; i < n2; i++ {
			ik = b[MatPos2(i, k)]
			if isInf(ik) {
				continue // no path through k from i
			}
			for j = 0; j < n2; j++ {
				kj = b[MatPos2(k, j)]
				if isInf(kj) {
					continue
				}
				cand = ik + kj
				at = MatPos2(i, j)
				if cand < b[at] {
					b[at] = cand
				}
			}
		}

		// Strengthen after each full variable (every second pivot), and
		// bail out as soon as the diagonal goes negative.
		if k&1 == 1 && m.strengthenDense() {
			return true
		}
	}

	return m.resetDiagDense()
}

// strengthenDense applies the strengthening pass over the whole matrix
// and checks the diagonal. Returns true when the set became empty.
func (m *Mat) strengthenDense() bool {
	n2 := 2 * m.dim
	b := m.bounds
	var (
		i, j, br, at int
		ii, jj, half float64
	)
	for i = 0; i < n2; i++ {
		ii = b[MatPos(i, i^1)] // doubled unary bound of literal i⊕1
		if isInf(ii) {
			continue
		}
		br = i | 1
		for j = 0; j <= br; j++ {
			jj = b[MatPos(j^1, j)] // doubled unary bound of literal j
			if isInf(jj) {
				continue
			}
			half = (ii + jj) / 2
			at = MatPos(i, j)
			if half < b[at] {
				b[at] = half
			}
		}
	}
	for i = 0; i < n2; i++ {
		if b[MatPos(i, i)] < 0 {
			return true // unsatisfiable
		}
	}

	return false
}

// resetDiagDense zeroes the diagonal of a satisfiable closed matrix,
// or reports emptiness if a negative entry slipped to the end.
func (m *Mat) resetDiagDense() bool {
	n2 := 2 * m.dim
	var i, at int
	for i = 0; i < n2; i++ {
		at = MatPos(i, i)
		if m.bounds[at] < 0 {
			return true
		}
		m.bounds[at] = 0
	}

	return false
}

// litsOf expands a component into its literal index list: variable v
// contributes literals 2v and 2v+1, in ascending order.
func litsOf(l *comp.List) []int {
	lits := make([]int, 0, 2*l.Size())
	for _, v := range l.Vars() {
		lits = append(lits, 2*v, 2*v+1)
	}

	return lits
}

// closeComponent runs the same kernel restricted to one component.
// Entries within a component are always materialized, so raw buffer
// access is safe.
func (m *Mat) closeComponent(l *comp.List) bool {
	lits := litsOf(l)
	s2 := len(lits)
	b := m.bounds

	var (
		lk, li, lj, br, at int     // local pivot/row/col, row break, offset
		gk, gi, gj         int     // global literals
		ik, kj, cand       float64 // bounds and candidate
		ii, jj, half       float64 // strengthening temporaries
	)

	for lk = 0; lk < s2; lk++ {
		gk = lits[lk]
		for li = 0; li < s2; li++ {
			gi = lits[li]
			ik = b[MatPos2(gi, gk)]
			if isInf(ik) {
				continue
			}
			for lj = 0; lj < s2; lj++ {
				gj = lits[lj]
				kj = b[MatPos2(gk, gj)]
				if isInf(kj) {
					continue
				}
				cand = ik + kj
				at = MatPos2(gi, gj) // both orientations of each stored entry
				if cand < b[at] {
					b[at] = cand
				}
			}
		}

		if lk&1 == 0 {
			continue
		}
		// Strengthening restricted to the component, then the
		// per-component emptiness check.
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
			if b[MatPos(gi, gi)] < 0 {
				return true
			}
		}
	}

	// Satisfiable: settle the component diagonal back to zero.
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
