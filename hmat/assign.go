// SPDX-License-Identifier: MIT
// Package hmat: single-variable update kernels backing assignments.
package hmat

// Translate applies Xᵥ := Xᵥ + [lo, hi] in place: every bound where
// Xᵥ appears positively grows by hi, every bound where it appears
// negatively grows by −lo, and the doubled unary bounds grow twice as
// much. Translation maps a closed matrix to a closed matrix, so
// callers may keep the closure cache.
func (m *Mat) Translate(v int, lo, hi float64) {
	// a bounds the increment of −Xᵥ occurrences, b of +Xᵥ ones.
	a, b := -lo, hi

	shiftAgainst := func(l int) {
		// (l, 2v) bounds L₂ᵥ − Lₗ = Xᵥ − Lₗ: grows by sup of the delta.
		m.bounds[MatPos2(l, 2*v)] += b
		// (l, 2v+1) bounds −Xᵥ − Lₗ: grows by sup of −delta.
		m.bounds[MatPos2(l, 2*v+1)] += a
	}
	if m.dense {
		n2 := 2 * m.dim
		for l := 0; l < n2; l++ {
			if l>>1 != v {
				shiftAgainst(l)
			}
		}
	} else {
		c := m.part.Find(v)
		if c < 0 {
			return // no finite bound mentions v; nothing moves
		}
		for _, u := range m.part.Comp(c).Vars() {
			if u != v {
				shiftAgainst(2 * u)
				shiftAgainst(2*u + 1)
			}
		}
	}
	// Doubled unary bounds: 2Xᵥ and −2Xᵥ.
	m.bounds[MatPos(2*v, 2*v+1)] += 2 * a
	m.bounds[MatPos(2*v+1, 2*v)] += 2 * b
}

// NegateVar applies Xᵥ := −Xᵥ in place by swapping the literal pair
// 2v ↔ 2v+1. Through coherence, swapping the two v-columns across all
// foreign rows also swaps the two v-rows, so one pass suffices. The
// matrix stays closed if it was.
func (m *Mat) NegateVar(v int) {
	swapAt := func(l int) {
		p, q := MatPos2(l, 2*v), MatPos2(l, 2*v+1)
		m.bounds[p], m.bounds[q] = m.bounds[q], m.bounds[p]
	}
	if m.dense {
		n2 := 2 * m.dim
		for l := 0; l < n2; l++ {
			if l>>1 != v {
				swapAt(l)
			}
		}
	} else {
		c := m.part.Find(v)
		if c < 0 {
			return
		}
		for _, u := range m.part.Comp(c).Vars() {
			if u != v {
				swapAt(2 * u)
				swapAt(2*u + 1)
			}
		}
	}
	p, q := MatPos(2*v, 2*v+1), MatPos(2*v+1, 2*v)
	m.bounds[p], m.bounds[q] = m.bounds[q], m.bounds[p]
}
