// SPDX-License-Identifier: MIT
// Package hmat: matrix-level lattice operations.
//
// Contract (enforced by the oct package, asserted here only by loop
// bounds): operands of binary operations have the same dimension.
// Results land un-closed; the caller re-closes on demand. Ordering
// predicates require the receiver (and for Eq both operands) to be in
// strong closed form — comparing un-closed matrices entry-wise is
// meaningless because two different matrices can denote the same set.
package hmat

import (
	"math"
	"sort"

	"github.com/katalvlaran/octlat/comp"
	"gonum.org/v1/gonum/floats"
)

// IsTop reports whether m is the unconstrained octagon: zero diagonal,
// +∞ everywhere else. In sparse mode an empty partition answers
// immediately; otherwise every materialized relation must still be
// trivial.
func (m *Mat) IsTop() bool {
	if !m.dense {
		for c := 0; c < m.part.Len(); c++ {
			vars := m.part.Comp(c).Vars()
			for x, u := range vars {
				if !m.trivialRelation(u, u) {
					return false
				}
				for _, v := range vars[x+1:] {
					if !m.trivialRelation(u, v) {
						return false
					}
				}
			}
		}

		return true
	}
	n2 := 2 * m.dim
	var i, j, br int
	for i = 0; i < n2; i++ {
		br = i | 1
		for j = 0; j <= br; j++ {
			if i == j {
				if m.bounds[MatPos(i, j)] != 0 {
					return false
				}
				continue
			}
			if !isInf(m.bounds[MatPos(i, j)]) {
				return false
			}
		}
	}

	return true
}

// Leq reports m ⊑ b entry-wise. The receiver must be closed; b may be
// in any form. Only the finite entries of b can fail the test, so the
// scan is restricted to them: in sparse mode a finite b entry whose
// variables are unrelated in m reads m as +∞ and fails unless b is +∞
// as well.
func (m *Mat) Leq(b *Mat) bool {
	mv := m.view()
	if b.dense {
		n2 := 2 * m.dim
		var i, j, br int
		var bb float64
		for i = 0; i < n2; i++ {
			br = i | 1
			for j = 0; j <= br; j++ {
				if i == j {
					continue
				}
				bb = b.bounds[MatPos(i, j)]
				if isInf(bb) {
					continue
				}
				if mv.at(i, j) > bb {
					return false
				}
			}
		}

		return true
	}
	for c := 0; c < b.part.Len(); c++ {
		lits := litsOf(b.part.Comp(c))
		var li, lj, br int
		var bb float64
		for li = range lits {
			br = li | 1
			for lj = 0; lj <= br; lj++ {
				gi, gj := lits[li], lits[lj]
				if gi == gj {
					continue
				}
				bb = b.bounds[MatPos(gi, gj)]
				if isInf(bb) {
					continue
				}
				if mv.at(gi, gj) > bb {
					return false
				}
			}
		}
	}

	return true
}

// Eq reports entry-wise equality of two closed matrices. Two dense
// buffers compare exactly in one sweep; otherwise entries are compared
// through views, restricted to the union of the partitions (entries
// outside every component are top on both sides by construction).
func (m *Mat) Eq(b *Mat) bool {
	if m.dense && b.dense {
		return floats.Equal(m.bounds, b.bounds)
	}
	if m.dense || b.dense {
		mv, bv := m.view(), b.view()
		n2 := 2 * m.dim
		var i, j, br int
		for i = 0; i < n2; i++ {
			br = i | 1
			for j = 0; j <= br; j++ {
				if mv.at(i, j) != bv.at(i, j) {
					return false
				}
			}
		}

		return true
	}
	mv, bv := m.view(), b.view()
	u := comp.UnionOf(m.part, b.part)
	for c := 0; c < u.Len(); c++ {
		lits := litsOf(u.Comp(c))
		var li, lj, br int
		for li = range lits {
			br = li | 1
			for lj = 0; lj <= br; lj++ {
				gi, gj := lits[li], lits[lj]
				if mv.at(gi, gj) != bv.at(gi, gj) {
					return false
				}
			}
		}
	}

	return true
}

// binOp builds the result of an entry-wise binary operation. Dense
// operands force a dense result; two sparse operands produce a sparse
// result over the given partition.
func binOp(a, b *Mat, part *comp.Partition, f func(x, y float64) float64) *Mat {
	av, bv := a.view(), b.view()
	if a.dense || b.dense || part == nil {
		r := NewDenseTop(a.dim)
		n2 := 2 * a.dim
		var i, j, br int
		for i = 0; i < n2; i++ {
			br = i | 1
			for j = 0; j <= br; j++ {
				r.bounds[MatPos(i, j)] = f(av.at(i, j), bv.at(i, j))
			}
		}

		return r
	}
	r := &Mat{dim: a.dim, bounds: make([]float64, MatSize(a.dim)), part: part}
	for c := 0; c < part.Len(); c++ {
		lits := litsOf(part.Comp(c))
		var li, lj, br int
		for li = range lits {
			br = li | 1
			for lj = 0; lj <= br; lj++ {
				gi, gj := lits[li], lits[lj]
				r.bounds[MatPos(gi, gj)] = f(av.at(gi, gj), bv.at(gi, gj))
			}
		}
	}

	return r
}

// Meet returns the pointwise minimum of a and b: the greatest octagon
// matrix below both. Sparse partitions take their union — variables
// related on either side stay related. The result is not closed.
func Meet(a, b *Mat) *Mat {
	var part *comp.Partition
	if !a.dense && !b.dense {
		part = comp.UnionOf(a.part, b.part)
	}
	r := binOp(a, b, part, math.Min)
	r.MaybeDensify()

	return r
}

// Join returns the pointwise maximum of a and b. Both operands must be
// closed, or the result over-approximates more than necessary. Sparse
// partitions take their common refinement — an entry is finite only
// when finite on both sides. The result is not closed in general.
func Join(a, b *Mat) *Mat {
	var part *comp.Partition
	if !a.dense && !b.dense {
		part = comp.RefineOf(a.part, b.part)
	}

	return binOp(a, b, part, math.Max)
}

// Widening returns the standard octagon widening: keep the bounds of a
// that b honors, drop every bound b escapes to +∞. Precondition a ⊑ b.
// The result is NOT closed and must not be closed before the next
// widening on pain of non-termination.
func Widening(a, b *Mat) *Mat {
	var part *comp.Partition
	if !a.dense && !b.dense {
		part = comp.RefineOf(a.part, b.part)
	}

	return binOp(a, b, part, func(x, y float64) float64 {
		if y > x {
			return pinf()
		}

		return x
	})
}

// WideningThresholds widens like Widening but, instead of jumping
// straight to +∞, an escaping bound climbs to the least threshold that
// still contains it. thresholds must be sorted ascending.
func WideningThresholds(a, b *Mat, thresholds []float64) *Mat {
	var part *comp.Partition
	if !a.dense && !b.dense {
		part = comp.RefineOf(a.part, b.part)
	}

	return binOp(a, b, part, func(x, y float64) float64 {
		if y <= x {
			return x
		}
		// First threshold t with y ≤ t; +∞ when none is left.
		at := sort.SearchFloat64s(thresholds, y)
		if at == len(thresholds) {
			return pinf()
		}

		return thresholds[at]
	})
}

// Narrowing refines a by b on exactly the bounds a knows nothing
// about: r = b where a is +∞, r = a elsewhere. Guarantees
// a ⊓ b ⊑ r ⊑ a. Sparse partitions take their union.
func Narrowing(a, b *Mat) *Mat {
	var part *comp.Partition
	if !a.dense && !b.dense {
		part = comp.UnionOf(a.part, b.part)
	}

	return binOp(a, b, part, func(x, y float64) float64 {
		if isInf(x) {
			return y
		}

		return x
	})
}
