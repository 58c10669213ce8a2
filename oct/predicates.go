// SPDX-License-Identifier: MIT
// Package oct: predicates and projections.
//
// The flag cascade on a negative answer follows one fixed order:
// integer dimensions make the answer incomplete, otherwise a skipped
// closure makes it algorithm-limited; a definitive answer sets no
// flag. No predicate here raises the Conv flag.
package oct

import (
	"math"

	"github.com/katalvlaran/octlat/hmat"
	"github.com/katalvlaran/octlat/linear"
)

// IsBottom reports definitive emptiness. A cached closure is a
// certificate of non-emptiness on ℚ; without any matrix the value is
// definitively empty; an un-closed matrix leaves the answer unknown
// and the conservative false is flagged.
func IsBottom(man *Manager, o *Oct) bool {
	man.enter(o.dim)
	if man.autoClose() {
		cacheClosure(o)
	}
	switch {
	case o.closed != nil:
		if o.intdim > 0 {
			man.flagIncomplete()
		}

		return false
	case o.m == nil:
		return true
	default:
		man.flagAlgo()

		return false
	}
}

// IsTop reports whether o is the unconstrained octagon.
func IsTop(man *Manager, o *Oct) bool {
	man.enter(o.dim)
	m := o.matrix()
	if m == nil {
		return false
	}

	return m.IsTop()
}

// IsLeq reports o1 ⊑ o2. Operands of different dimensions are
// incomparable: safe false, no flags.
func IsLeq(man *Manager, o1, o2 *Oct) bool {
	man.enter(o1.dim)
	if o1.dim != o2.dim || o1.intdim != o2.intdim {
		return false
	}
	if man.autoClose() {
		cacheClosure(o1)
	}
	switch {
	case o1.isBottom():
		return true
	case o2.isBottom():
		if o1.closed != nil {
			if o1.intdim > 0 {
				man.flagIncomplete()
			}

			return false
		}
		man.flagAlgo()

		return false
	default:
		return o1.matrix().Leq(o2.matrix())
	}
}

// IsEq reports o1 = o2 as sets of points, comparing closed forms
// entry-wise.
func IsEq(man *Manager, o1, o2 *Oct) bool {
	man.enter(o1.dim)
	if o1.dim != o2.dim || o1.intdim != o2.intdim {
		return false
	}
	if man.autoClose() {
		cacheClosure(o1)
		cacheClosure(o2)
	}
	switch {
	case o1.isBottom():
		if o2.isBottom() {
			return true
		}
		if o2.closed != nil {
			if o1.intdim > 0 {
				man.flagIncomplete()
			}

			return false
		}
		man.flagAlgo()

		return false
	case o2.isBottom():
		if o1.closed != nil {
			if o1.intdim > 0 {
				man.flagIncomplete()
			}

			return false
		}
		man.flagAlgo()

		return false
	default:
		return o1.matrix().Eq(o2.matrix())
	}
}

// IsDimensionUnconstrained reports whether variable v appears in no
// constraint at all. ⊥ constrains everything; an out-of-range index is
// never a variable.
func IsDimensionUnconstrained(man *Manager, o *Oct, v int) bool {
	man.enter(o.dim)
	if v >= o.dim || v < 0 {
		return false
	}
	m := o.matrix()
	if m == nil {
		return false
	}
	if !m.IsDense() {
		// Independent variables are unconstrained by construction.
		c := m.Part().Find(v)
		if c < 0 {
			return true
		}
		for _, u := range m.Part().Comp(c).Vars() {
			if !unrelatedTo(m, u, v) {
				return false
			}
		}

		return true
	}
	for u := 0; u < o.dim; u++ {
		if !unrelatedTo(m, u, v) {
			return false
		}
	}

	return true
}

// unrelatedTo checks that no finite bound couples u with v (or bounds
// v itself when u == v).
func unrelatedTo(m *hmat.Mat, u, v int) bool {
	if u == v {
		return math.IsInf(m.At(2*v, 2*v+1), 1) && math.IsInf(m.At(2*v+1, 2*v), 1)
	}

	return math.IsInf(m.At(2*u, 2*v), 1) &&
		math.IsInf(m.At(2*u+1, 2*v), 1) &&
		math.IsInf(m.At(2*u, 2*v+1), 1) &&
		math.IsInf(m.At(2*u+1, 2*v+1), 1)
}

// varBounds reads the interval of variable v from a matrix: the stored
// doubled bounds halve into [−m(2v,2v+1)/2, m(2v+1,2v)/2].
func varBounds(m *hmat.Mat, v int) linear.Interval {
	if !m.IsDense() && m.Part().Find(v) < 0 {
		return linear.Top()
	}

	return linear.Interval{
		Inf: -m.At(2*v, 2*v+1) / 2,
		Sup: m.At(2*v+1, 2*v) / 2,
	}
}

// BoundDimension returns the interval of one variable: ⊥ yields the
// empty interval, an un-closed value yields sound but possibly loose
// bounds (flagged).
func BoundDimension(man *Manager, o *Oct, v int) (linear.Interval, error) {
	man.enter(o.dim)
	if v >= o.dim || v < 0 {
		return linear.Interval{}, ErrBadDimension
	}
	if man.autoClose() {
		cacheClosure(o)
	}
	if o.isBottom() {
		return linear.Bottom(), nil
	}
	if o.closed != nil {
		if o.intdim > 0 {
			man.flagIncomplete()
		}

		return varBounds(o.closed, v), nil
	}
	man.flagAlgo()

	return varBounds(o.m, v), nil
}

// ToBox projects every variable onto its interval. On ⊥ every interval
// is empty.
func ToBox(man *Manager, o *Oct) []linear.Interval {
	man.enter(o.dim)
	if man.autoClose() {
		cacheClosure(o)
	}
	box := make([]linear.Interval, o.dim)
	if o.isBottom() {
		for v := range box {
			box[v] = linear.Bottom()
		}

		return box
	}
	m := o.matrix()
	for v := range box {
		box[v] = varBounds(m, v)
	}
	man.Result.Exact = false
	if o.closed == nil {
		man.flagAlgo()
	} else if o.intdim > 0 {
		man.flagIncomplete()
	}

	return box
}

// SatInterval reports whether variable v definitively stays within
// itv. ⊥ satisfies every property.
func SatInterval(man *Manager, o *Oct, v int, itv linear.Interval) bool {
	man.enter(o.dim)
	if v >= o.dim || v < 0 {
		return false
	}
	if man.autoClose() {
		cacheClosure(o)
	}
	if o.isBottom() {
		return true
	}
	if itv.Contains(varBounds(o.matrix(), v)) {
		return true
	}
	// Not saturated for sure only when closed, exact and real-typed.
	switch {
	case o.intdim > 0:
		man.flagIncomplete()
	case o.closed == nil:
		man.flagAlgo()
	}

	return false
}

// SatLincons reports whether every point of o satisfies the
// constraint. The strongest representable bound for the constraint's
// shape is read off the matrix and compared against the constant.
// ⊥ satisfies every property; congruences and disequalities are never
// claimed.
func SatLincons(man *Manager, o *Oct, cons linear.Lincons) bool {
	man.enter(o.dim)
	if man.autoClose() {
		cacheClosure(o)
	}
	if o.isBottom() {
		return true
	}

	switch cons.Typ {
	case linear.ConsEqMod, linear.ConsDisEq:
		return false
	case linear.ConsEq, linear.ConsSupEq, linear.ConsSup:
		// handled below
	default:
		return false
	}

	m := o.matrix()
	u := uexprOf(man, cons.Expr, o.dim)
	switch u.shape {
	case shapeEmpty:
		// An empty coefficient denotes the empty expression set; every
		// property holds vacuously.
		return true

	case shapeZero:
		// [−a,b] ⋈ 0 decided on the constant alone.
		if (cons.Typ == linear.ConsSupEq && man.tmp[0] <= 0) ||
			(cons.Typ == linear.ConsSup && man.tmp[0] < 0) ||
			(cons.Typ == linear.ConsEq && man.tmp[0] == 0 && man.tmp[1] == 0) {
			return true
		}

		return satFlags(man, o)

	case shapeUnary:
		ui := lit(u.i, u.coefI)
		// Doubled scale: tmp ± the doubled unary bounds of literal ui.
		man.tmp[0] *= 2
		man.tmp[1] *= 2
		man.tmp[0] += m.At(ui, ui^1) // bound on −2·(cᵢXᵢ)
		man.tmp[1] += m.At(ui^1, ui) // bound on +2·(cᵢXᵢ)
		if man.tmp[0] <= 0 &&
			(cons.Typ != linear.ConsSup || man.tmp[0] < 0) &&
			(cons.Typ != linear.ConsEq || man.tmp[1] <= 0) {
			return true
		}

		return satFlags(man, o)

	case shapeBinary:
		ui, uj := lit(u.i, u.coefI), lit(u.j, u.coefJ)
		man.tmp[0] += m.At(uj, ui^1) // bound on −(cᵢXᵢ + cⱼXⱼ)
		man.tmp[1] += m.At(uj^1, ui) // bound on +(cᵢXᵢ + cⱼXⱼ)
		if man.tmp[0] <= 0 &&
			(cons.Typ != linear.ConsSup || man.tmp[0] < 0) &&
			(cons.Typ != linear.ConsEq || man.tmp[1] <= 0) {
			return true
		}

		return satFlags(man, o)

	default: // shapeOther: no clue
		man.flagIncomplete()

		return false
	}
}

// satFlags applies the negative-answer cascade and returns false.
func satFlags(man *Manager, o *Oct) bool {
	switch {
	case o.intdim > 0:
		man.flagIncomplete()
	case o.closed == nil:
		man.flagAlgo()
	}

	return false
}

// ToLinconsArray extracts one e ≥ 0 constraint per finite off-diagonal
// bound of the best available matrix. ⊥ extracts the single witness
// −1 ≥ 0.
func ToLinconsArray(man *Manager, o *Oct) []linear.Lincons {
	man.enter(o.dim)
	if o.isBottom() {
		return []linear.Lincons{linear.Unsat()}
	}
	m := o.matrix()
	var out []linear.Lincons
	emit := func(i, j int) {
		if i == j {
			return
		}
		c := m.At(i, j)
		if math.IsInf(c, 1) {
			return
		}
		out = append(out, linconsOfBound(i, j, c))
	}
	if !m.IsDense() {
		part := m.Part()
		for ci := 0; ci < part.Len(); ci++ {
			lits := make([]int, 0, 2*part.Comp(ci).Size())
			for _, v := range part.Comp(ci).Vars() {
				lits = append(lits, 2*v, 2*v+1)
			}
			for li, gi := range lits {
				for lj := 0; lj <= (li | 1); lj++ {
					emit(gi, lits[lj])
				}
			}
		}

		return out
	}
	for i := 0; i < 2*o.dim; i++ {
		for j := 0; j <= (i | 1); j++ {
			emit(i, j)
		}
	}

	return out
}

// linconsOfBound renders the stored bound Lⱼ − Lᵢ ≤ c as the
// constraint c + Lᵢ − Lⱼ ≥ 0 over the underlying variables. When both
// literals name the same variable the bound is a doubled unary one
// (∓2Xᵥ ≤ c), emitted halved with a unit coefficient: c/2 ± Xᵥ ≥ 0.
func linconsOfBound(i, j int, c float64) linear.Lincons {
	sign := func(l int) float64 {
		if l&1 == 0 {
			return 1
		}

		return -1
	}
	vi, vj := i>>1, j>>1
	cst := c
	var terms []linear.Term
	if vi == vj {
		cst = c / 2
		terms = []linear.Term{{Dim: vi, Coeff: linear.Point((sign(i) - sign(j)) / 2)}}
	} else {
		terms = []linear.Term{
			{Dim: vi, Coeff: linear.Point(sign(i))},
			{Dim: vj, Coeff: linear.Point(-sign(j))},
		}
	}

	return linear.NewLincons(linear.ConsSupEq, linear.MustLinexpr(linear.Point(cst), terms...))
}
