// SPDX-License-Identifier: MIT
// Package hmat: dimension surgery — add/remove/permute variables,
// forget, expand, fold.
//
// All index remapping relies on one fact: the maps used here are
// monotone on variables and preserve literal parity, so a canonical
// stored pair maps to a canonical stored pair and MatPos stays valid on
// both sides (MatPos2 where a permutation may invert the order).
package hmat

import "github.com/katalvlaran/octlat/comp"

// mapLit translates literal i under a variable map.
func mapLit(i int, varMap []int) int {
	return 2*varMap[i>>1] + i&1
}

// AddDimensions returns a copy of m with new unconstrained variables
// inserted. pos is ascending; each entry p inserts one fresh variable
// before old position p (duplicates insert several). New variables
// start independent: +∞ rows/columns, zero diagonal, member of no
// component.
func (m *Mat) AddDimensions(pos []int) *Mat {
	newDim := m.dim + len(pos)

	// varMap[v] = v + #(insertions at or before v).
	varMap := make([]int, m.dim)
	var shifted int
	for v := 0; v < m.dim; v++ {
		for shifted < len(pos) && pos[shifted] <= v {
			shifted++
		}
		varMap[v] = v + shifted
	}

	if m.dense {
		r := NewDenseTop(newDim)
		n2 := 2 * m.dim
		var i, j, br int
		for i = 0; i < n2; i++ {
			br = i | 1
			for j = 0; j <= br; j++ {
				r.bounds[MatPos(mapLit(i, varMap), mapLit(j, varMap))] = m.bounds[MatPos(i, j)]
			}
		}

		return r
	}

	r := &Mat{dim: newDim, bounds: make([]float64, MatSize(newDim)), part: comp.NewPartition()}
	m.copyComps(r, varMap)

	return r
}

// RemoveDimensions returns a copy of m with the given variables
// dropped. vars is ascending and distinct. In sparse mode a component
// that loses a member is re-detected from its surviving finite bounds,
// since the removed variable may have been the only bridge between two
// halves.
func (m *Mat) RemoveDimensions(vars []int) *Mat {
	newDim := m.dim - len(vars)

	// varMap[v] = new index, or -1 when v is removed.
	varMap := make([]int, m.dim)
	var gone int
	for v := 0; v < m.dim; v++ {
		if gone < len(vars) && vars[gone] == v {
			varMap[v] = -1
			gone++
			continue
		}
		varMap[v] = v - gone
	}

	if m.dense {
		r := &Mat{dim: newDim, bounds: make([]float64, MatSize(newDim)), dense: true}
		n2 := 2 * m.dim
		var i, j, br int
		for i = 0; i < n2; i++ {
			if varMap[i>>1] < 0 {
				continue
			}
			br = i | 1
			for j = 0; j <= br; j++ {
				if varMap[j>>1] < 0 {
					continue
				}
				r.bounds[MatPos(mapLit(i, varMap), mapLit(j, varMap))] = m.bounds[MatPos(i, j)]
			}
		}

		return r
	}

	r := &Mat{dim: newDim, bounds: make([]float64, MatSize(newDim)), part: comp.NewPartition()}
	for c := 0; c < m.part.Len(); c++ {
		// Surviving members of this component, still in old indices.
		var kept []int
		for _, v := range m.part.Comp(c).Vars() {
			if varMap[v] >= 0 {
				kept = append(kept, v)
			}
		}
		if len(kept) == 0 {
			continue
		}

		// Regroup by the finite bounds that actually survive.
		split := comp.Detect(kept, func(u, v int) bool {
			return !isInf(m.bounds[MatPos2(2*u, 2*v)]) ||
				!isInf(m.bounds[MatPos2(2*u+1, 2*v+1)]) ||
				!isInf(m.bounds[MatPos2(2*u, 2*v+1)]) ||
				!isInf(m.bounds[MatPos2(2*u+1, 2*v)])
		}, func(v int) bool {
			return !isInf(m.bounds[MatPos(2*v, 2*v+1)]) ||
				!isInf(m.bounds[MatPos(2*v+1, 2*v)])
		})

		// Copy each surviving group's block and register it, remapped.
		for sc := 0; sc < split.Len(); sc++ {
			oldVars := split.Comp(sc).Vars()
			lits := litsOf(split.Comp(sc))
			var li, lj, br int
			for li = range lits {
				br = li | 1
				for lj = 0; lj <= br; lj++ {
					gi, gj := lits[li], lits[lj]
					r.bounds[MatPos(mapLit(gi, varMap), mapLit(gj, varMap))] = m.bounds[MatPos(gi, gj)]
				}
			}
			mapped := make([]int, len(oldVars))
			for x, v := range oldVars {
				mapped[x] = varMap[v]
			}
			r.part.Add(comp.NewList(mapped...))
		}
	}

	return r
}

// Permute returns the matrix with variables renamed by perm (a
// bijection on [0,dim)): dst[π(i), π(j)] = src[i,j].
func (m *Mat) Permute(perm []int) *Mat {
	if m.dense {
		r := &Mat{dim: m.dim, bounds: make([]float64, MatSize(m.dim)), dense: true}
		n2 := 2 * m.dim
		var i, j, br int
		for i = 0; i < n2; i++ {
			br = i | 1
			for j = 0; j <= br; j++ {
				// A permutation may invert the pair order; MatPos2
				// re-canonicalizes through coherence.
				r.bounds[MatPos2(mapLit(i, perm), mapLit(j, perm))] = m.bounds[MatPos(i, j)]
			}
		}

		return r
	}

	r := &Mat{dim: m.dim, bounds: make([]float64, MatSize(m.dim)), part: comp.NewPartition()}
	m.copyComps(r, perm)

	return r
}

// copyComps copies every component block of m into r under varMap and
// registers the remapped components. varMap must be defined (≥ 0) on
// all component members.
func (m *Mat) copyComps(r *Mat, varMap []int) {
	for c := 0; c < m.part.Len(); c++ {
		vars := m.part.Comp(c).Vars()
		lits := litsOf(m.part.Comp(c))
		var li, lj, br int
		for li = range lits {
			br = li | 1
			for lj = 0; lj <= br; lj++ {
				gi, gj := lits[li], lits[lj]
				r.bounds[MatPos2(mapLit(gi, varMap), mapLit(gj, varMap))] = m.bounds[MatPos(gi, gj)]
			}
		}
		mapped := make([]int, len(vars))
		for x, v := range vars {
			mapped[x] = varMap[v]
		}
		r.part.Add(comp.NewList(mapped...))
	}
}

// Forget erases every constraint mentioning the given variables, in
// place. With project set, each variable is additionally pinned to
// exactly 0 (both doubled unary bounds become 0) — the semantics of
// projecting onto the hyperplane Xᵥ = 0. The result is closed iff the
// input was.
func (m *Mat) Forget(vars []int, project bool) {
	inf := pinf()
	for _, v := range vars {
		if m.dense {
			n2 := 2 * m.dim
			for j := 0; j < n2; j++ {
				if j>>1 == v {
					continue
				}
				// Columns 2v and 2v+1 across all foreign rows cover,
				// via coherence, every stored entry mentioning v.
				m.bounds[MatPos2(j, 2*v)] = inf
				m.bounds[MatPos2(j, 2*v+1)] = inf
			}
			m.bounds[MatPos(2*v, 2*v+1)] = inf
			m.bounds[MatPos(2*v+1, 2*v)] = inf
			m.bounds[MatPos(2*v, 2*v)] = 0
			m.bounds[MatPos(2*v+1, 2*v+1)] = 0
		} else {
			// Detaching makes every entry of v undefined (implicitly
			// top) in one partition update; no buffer writes needed.
			m.part.Detach(v)
		}
		if project {
			m.EnsureSelf(v)
			m.bounds[MatPos(2*v, 2*v+1)] = 0
			m.bounds[MatPos(2*v+1, 2*v)] = 0
		}
	}
}

// Expand returns a copy of m with n fresh variables appended, each
// carrying the same constraints as v against the rest of the world.
// The copies are unrelated to each other and to v — expansion models n
// indistinguishable instances, not n aliases.
func (m *Mat) Expand(v, n int) *Mat {
	newDim := m.dim + n

	if m.dense {
		r := NewDenseTop(newDim)
		n2 := 2 * m.dim
		var i, j, br int
		for i = 0; i < n2; i++ {
			br = i | 1
			for j = 0; j <= br; j++ {
				r.bounds[MatPos(i, j)] = m.bounds[MatPos(i, j)]
			}
		}
		for w := m.dim; w < newDim; w++ {
			r.copyVarRelations(m, v, w, nil)
		}

		return r
	}

	r := &Mat{dim: newDim, bounds: make([]float64, MatSize(newDim)), part: comp.NewPartition()}
	identity := make([]int, m.dim)
	for x := range identity {
		identity[x] = x
	}
	m.copyComps(r, identity)
	if c := r.part.Find(v); c >= 0 {
		// Each copy joins v's component and receives v's block. Only
		// the original members contribute constraints; entries among
		// the copies themselves are initialized and stay top.
		members := r.part.Comp(c).ToSortedArray()
		for w := m.dim; w < newDim; w++ {
			r.iniSelfRelation(w)
			cur := r.part.Comp(r.part.Find(v)).ToSortedArray()
			for _, u := range cur {
				r.iniRelation(u, w)
			}
			r.copyVarRelations(m, v, w, members)
			r.part.Insert(w, r.part.Find(v))
		}
	}

	return r
}

// copyVarRelations copies v's constraints onto w inside r. others
// restricts the foreign literals to a member set (sparse); nil means
// every variable of m (dense).
func (r *Mat) copyVarRelations(m *Mat, v, w int, others []int) {
	copyOne := func(u int) {
		if u == v || u == w {
			return
		}
		for s := 0; s <= 1; s++ {
			r.bounds[MatPos2(2*w+s, 2*u)] = m.bounds[MatPos2(2*v+s, 2*u)]
			r.bounds[MatPos2(2*w+s, 2*u+1)] = m.bounds[MatPos2(2*v+s, 2*u+1)]
			r.bounds[MatPos2(2*u, 2*w+s)] = m.bounds[MatPos2(2*u, 2*v+s)]
			r.bounds[MatPos2(2*u+1, 2*w+s)] = m.bounds[MatPos2(2*u+1, 2*v+s)]
		}
	}
	if others == nil {
		for u := 0; u < m.dim; u++ {
			copyOne(u)
		}
	} else {
		for _, u := range others {
			copyOne(u)
		}
	}
	r.bounds[MatPos(2*w, 2*w+1)] = m.bounds[MatPos(2*v, 2*v+1)]
	r.bounds[MatPos(2*w+1, 2*w)] = m.bounds[MatPos(2*v+1, 2*v)]
}

// Fold collapses vars (ascending, len ≥ 1) into vars[0] by joining
// their rows/columns, then removes the rest. The input should be
// closed for the join to be as precise as the domain allows; the
// result is not closed.
func (m *Mat) Fold(vars []int) *Mat {
	d := vars[0]
	c := m.Clone()

	if !c.dense {
		// Materialize d against everything any folded variable relates
		// to, merging all their components into d's. EnsureRelated may
		// densify along the way, after which there is nothing left to
		// materialize.
	merge:
		for _, v := range vars[1:] {
			cv := c.part.Find(v)
			if cv < 0 {
				continue
			}
			for _, u := range c.part.Comp(cv).ToSortedArray() {
				if u != d {
					c.EnsureRelated(d, u)
				}
				if c.dense {
					break merge
				}
			}
		}
	}

	src := m.view()
	folded := make(map[int]bool, len(vars))
	for _, v := range vars {
		folded[v] = true
	}

	// d's new constraints: the pointwise max (join) over all folded
	// variables' constraints against each foreign literal.
	writeMax := func(row, col int, pick func(v int) (int, int)) {
		best := src.at(pick(vars[0]))
		for _, v := range vars[1:] {
			if b := src.at(pick(v)); b > best {
				best = b
			}
		}
		c.Set(row, col, best)
	}
	forEachForeign := func(u int) {
		for s := 0; s <= 1; s++ {
			for t := 0; t <= 1; t++ {
				sv, tv := s, t
				writeMax(2*d+sv, 2*u+tv, func(v int) (int, int) { return 2*v + sv, 2*u + tv })
				writeMax(2*u+tv, 2*d+sv, func(v int) (int, int) { return 2*u + tv, 2*v + sv })
			}
		}
	}
	if c.dense {
		for u := 0; u < m.dim; u++ {
			if !folded[u] {
				forEachForeign(u)
			}
		}
	} else if cd := c.part.Find(d); cd >= 0 {
		for _, u := range c.part.Comp(cd).ToSortedArray() {
			if !folded[u] {
				forEachForeign(u)
			}
		}
	}
	writeMax(2*d, 2*d+1, func(v int) (int, int) { return 2 * v, 2*v + 1 })
	writeMax(2*d+1, 2*d, func(v int) (int, int) { return 2*v + 1, 2 * v })

	return c.RemoveDimensions(vars[1:])
}
