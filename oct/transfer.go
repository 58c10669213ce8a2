// SPDX-License-Identifier: MIT
// Package oct: transfer functions — guards, assignments, substitutions.
//
// Integer policy (one canonical rule, applied here and only here):
// bounds are tightened on construction. A guard that constrains only
// integer dimensions floors its bound (2⌊c/2⌋ on the doubled unary
// scale, ⌊c⌋ on the binary scale), and a strict comparison steps an
// integral bound down by one. SatLincons never tightens — it only
// reports incompleteness on integer dimensions.
package oct

import (
	"math"

	"github.com/katalvlaran/octlat/hmat"
	"github.com/katalvlaran/octlat/linear"
)

// intTighten floors an integer-valued bound; a strict bound that is
// already integral steps down by one.
func intTighten(c float64, strict bool) float64 {
	if math.IsInf(c, 1) {
		return c
	}
	f := math.Floor(c)
	if strict && f == c {
		return c - 1
	}

	return f
}

// addLincons applies the constraint array to w in place. Returns
// emptiness, exactness, and the set of modified variables (for the
// incremental-closure fast path).
func addLincons(man *Manager, w *hmat.Mat, intdim int, cons []linear.Lincons) (empty, exact bool, modified map[int]bool) {
	exact = true
	modified = make(map[int]bool)
	for _, cn := range cons {
		var strict bool
		switch cn.Typ {
		case linear.ConsEqMod, linear.ConsDisEq:
			// Not octagonal; skipping them is sound but not best.
			exact = false
			continue
		case linear.ConsSup:
			strict = true
		case linear.ConsEq, linear.ConsSupEq:
			// handled below
		default:
			exact = false
			continue
		}

		u := uexprOf(man, cn.Expr, w.Dim())
		switch u.shape {
		case shapeEmpty:
			return true, exact, modified

		case shapeZero:
			// [−a,b] ⋈ 0 holds for some constant or for none.
			a, b := man.tmp[0], man.tmp[1]
			sat := true
			switch cn.Typ {
			case linear.ConsSupEq:
				sat = b >= 0
			case linear.ConsSup:
				sat = b > 0
			case linear.ConsEq:
				sat = a >= 0 && b >= 0
			}
			if !sat {
				return true, exact, modified
			}

		case shapeUnary:
			isInt := u.i < intdim
			ui := lit(u.i, u.coefI)
			w.EnsureSelf(u.i)
			// cᵢXᵢ + [−a,b] ⋈ 0 upper side: −cᵢXᵢ ≤ b, doubled.
			ub := 2 * man.tmp[1]
			if isInt {
				ub = 2 * intTighten(man.tmp[1], strict)
			} else if strict {
				exact = false // closed bound stands in for an open one
			}
			w.Tighten(ui, ui^1, ub)
			if cn.Typ == linear.ConsEq {
				lb := 2 * man.tmp[0]
				if isInt {
					lb = 2 * intTighten(man.tmp[0], false)
				}
				w.Tighten(ui^1, ui, lb)
			}
			modified[u.i] = true

		case shapeBinary:
			bothInt := u.i < intdim && u.j < intdim
			ui, uj := lit(u.i, u.coefI), lit(u.j, u.coefJ)
			w.EnsureRelated(u.i, u.j)
			ub := man.tmp[1]
			if bothInt {
				ub = intTighten(ub, strict)
			} else if strict {
				exact = false
			}
			w.Tighten(uj, ui^1, ub)
			if cn.Typ == linear.ConsEq {
				lb := man.tmp[0]
				if bothInt {
					lb = intTighten(lb, false)
				}
				w.Tighten(uj^1, ui, lb)
			}
			// Both touched entries carry a literal of u.i, so u.i alone
			// qualifies as the incremental-closure pivot variable.
			modified[u.i] = true

		default: // shapeOther: leave the matrix unchanged, report inexact
			exact = false
		}
	}

	return false, exact, modified
}

// MeetLinconsArray intersects o with a conjunction of linear
// constraints. A single-variable update on a closed value re-closes
// incrementally in O(n²); anything wider lands un-closed.
func MeetLinconsArray(man *Manager, destructive bool, o *Oct, cons []linear.Lincons) *Oct {
	man.enter(o.dim)
	if man.autoClose() {
		cacheClosure(o)
	}
	r := target(destructive, o)
	if o.isBottom() {
		r.setBottom()

		return r
	}
	wasClosed := o.closed != nil
	w := o.matrix().Clone()
	wasDense := w.IsDense()
	empty, exact, modified := addLincons(man, w, o.intdim, cons)
	if empty {
		r.setBottom()

		return r
	}
	if !exact {
		man.flagIncomplete()
	}
	// The incremental kernel needs its precondition intact: a matrix
	// that switched representation mid-way lost the per-component
	// normal form and must re-close fully. Lazy policy skips closure
	// altogether.
	if man.autoClose() && wasClosed && w.IsDense() == wasDense && len(modified) == 1 {
		for v := range modified {
			if w.IncrClosure(v) {
				r.setBottom()

				return r
			}
		}
		r.closed = w
		r.m = nil

		return r
	}
	r.m = w
	r.closed = nil

	return r
}

// boxOf projects every variable of a matrix onto its interval.
func boxOf(m *hmat.Mat, dim int) []linear.Interval {
	box := make([]linear.Interval, dim)
	for v := range box {
		box[v] = varBounds(m, v)
	}

	return box
}

// setVarBounds constrains Xᵈ to itv on w (doubled unary scale),
// flooring when d is integer-typed.
func setVarBounds(w *hmat.Mat, d int, itv linear.Interval, isInt bool) {
	w.EnsureSelf(d)
	if !math.IsInf(itv.Sup, 1) {
		ub := itv.Sup
		if isInt {
			ub = intTighten(ub, false)
		}
		w.Tighten(2*d+1, 2*d, 2*ub)
	}
	if !math.IsInf(itv.Inf, -1) {
		lb := -itv.Inf // bound on −Xᵈ
		if isInt {
			lb = intTighten(lb, false)
		}
		w.Tighten(2*d, 2*d+1, 2*lb)
	}
}

// AssignLinexprArray applies the parallel assignment dims[k] := exprs[k].
// A single octagonal assignment is handled exactly; the parallel case
// falls back to interval evaluation over the pre-state box (sound,
// flagged incomplete).
func AssignLinexprArray(man *Manager, destructive bool, o *Oct, dims []int, exprs []*linear.Linexpr) *Oct {
	man.enter(o.dim)
	if len(dims) == 1 {
		return assignOne(man, destructive, o, dims[0], exprs[0])
	}
	if man.autoClose() {
		cacheClosure(o)
	}
	r := target(destructive, o)
	if o.isBottom() {
		r.setBottom()

		return r
	}

	// Parallel: every right-hand side evaluates on the pre-state.
	src := o.matrix()
	box := boxOf(src, o.dim)
	vals := make([]linear.Interval, len(exprs))
	for k, e := range exprs {
		vals[k] = e.Eval(box)
		if vals[k].IsEmpty() {
			r.setBottom()

			return r
		}
	}
	w := src.Clone()
	w.Forget(dims, false)
	for k, d := range dims {
		setVarBounds(w, d, vals[k], d < o.intdim)
	}
	man.flagIncomplete()
	r.m = w
	r.closed = nil

	return r
}

// assignOne applies Xᵈ := e with the exact octagonal cases split out.
func assignOne(man *Manager, destructive bool, o *Oct, d int, e *linear.Linexpr) *Oct {
	if man.autoClose() {
		cacheClosure(o)
	}
	r := target(destructive, o)
	if o.isBottom() {
		r.setBottom()

		return r
	}
	wasClosed := o.closed != nil
	w := o.matrix().Clone()
	wasDense := w.IsDense()
	u := uexprOf(man, e, o.dim)
	exact := true
	respectClosure := false

	switch {
	case u.shape == shapeEmpty:
		r.setBottom()

		return r

	case u.shape == shapeUnary && u.i == d:
		// Xᵈ := ±Xᵈ + [lo,hi] — an invertible update expressible as a
		// literal swap plus a translation; both preserve closure.
		if u.coefI == -1 {
			w.NegateVar(d)
		}
		w.Translate(d, -man.tmp[0], man.tmp[1])
		respectClosure = true

	case u.shape == shapeUnary:
		// Xᵈ := cᵢXᵢ + [lo,hi]: forget the target, then bind it back
		// with the octagonal equality cᵢXᵢ − Xᵈ + [lo,hi] = 0.
		lo, hi := -man.tmp[0], man.tmp[1]
		w.Forget([]int{d}, false)
		eq := linear.NewLincons(linear.ConsEq, linear.MustLinexpr(
			linear.Interval{Inf: lo, Sup: hi},
			linear.Term{Dim: u.i, Coeff: linear.Point(float64(u.coefI))},
			linear.Term{Dim: d, Coeff: linear.Point(-1)},
		))
		empty, ex, _ := addLincons(man, w, o.intdim, []linear.Lincons{eq})
		if empty {
			r.setBottom()

			return r
		}
		exact = ex

	case u.shape == shapeZero:
		// Constant assignment.
		w.Forget([]int{d}, false)
		setVarBounds(w, d, linear.Interval{Inf: -man.tmp[0], Sup: man.tmp[1]}, d < o.intdim)

	default:
		// Any BINARY (with or without d) or OTHER: not octagonal — fall back to the
		// interval value of e over the pre-state box.
		itv := e.Eval(boxOf(o.matrix(), o.dim))
		if itv.IsEmpty() {
			r.setBottom()

			return r
		}
		w.Forget([]int{d}, false)
		setVarBounds(w, d, itv, d < o.intdim)
		exact = false
	}

	if !exact {
		man.flagIncomplete()
	}
	switch {
	case respectClosure && wasClosed:
		r.closed = w
		r.m = nil
	case man.autoClose() && wasClosed && w.IsDense() == wasDense:
		// Only d's rows/columns moved: incremental closure applies.
		if w.IncrClosure(d) {
			r.setBottom()

			return r
		}
		r.closed = w
		r.m = nil
	default:
		if !wasClosed {
			man.flagAlgo()
		}
		r.m = w
		r.closed = nil
	}

	return r
}

// SubstituteLinexprArray applies the backward counterpart of
// assignment: result = {x | x[dims := exprs(x)] ∈ o}. The single
// invertible cases are exact; everything else degrades to a sound
// projection.
func SubstituteLinexprArray(man *Manager, destructive bool, o *Oct, dims []int, exprs []*linear.Linexpr) *Oct {
	man.enter(o.dim)
	if len(dims) == 1 {
		return substituteOne(man, destructive, o, dims[0], exprs[0])
	}
	if man.autoClose() {
		cacheClosure(o)
	}
	r := target(destructive, o)
	if o.isBottom() {
		r.setBottom()

		return r
	}
	// Parallel substitution: sound fallback — drop all knowledge of the
	// substituted variables.
	w := o.matrix().Clone()
	wasClosed := o.closed != nil
	w.Forget(dims, false)
	man.flagIncomplete()
	if wasClosed {
		r.closed = w
		r.m = nil
	} else {
		r.m = w
		r.closed = nil
	}

	return r
}

// substituteOne applies the backward transfer for Xᵈ := e.
func substituteOne(man *Manager, destructive bool, o *Oct, d int, e *linear.Linexpr) *Oct {
	if man.autoClose() {
		cacheClosure(o)
	}
	r := target(destructive, o)
	if o.isBottom() {
		r.setBottom()

		return r
	}
	wasClosed := o.closed != nil
	w := o.matrix().Clone()
	wasDense := w.IsDense()
	u := uexprOf(man, e, o.dim)

	switch {
	case u.shape == shapeEmpty:
		r.setBottom()

		return r

	case u.shape == shapeUnary && u.i == d:
		// Invertible on d: the pre-state is the assignment by the
		// inverse expression.
		if u.coefI == 1 {
			// Inverse of Xᵈ += [lo,hi] is Xᵈ += [−hi,−lo].
			w.Translate(d, -man.tmp[1], man.tmp[0])
		} else {
			// Xᵈ := −Xᵈ + [lo,hi] is its own inverse.
			w.NegateVar(d)
			w.Translate(d, -man.tmp[0], man.tmp[1])
		}
		if wasClosed {
			r.closed = w
			r.m = nil
		} else {
			man.flagAlgo()
			r.m = w
			r.closed = nil
		}

		return r

	case u.shape == shapeUnary || u.shape == shapeZero:
		// e does not mention d: pre = forget_d(o ⊓ {Xᵈ − e = 0}).
		terms := []linear.Term{{Dim: d, Coeff: linear.Point(1)}}
		if u.shape == shapeUnary {
			terms = append(terms, linear.Term{Dim: u.i, Coeff: linear.Point(-float64(u.coefI))})
		}
		eq := linear.NewLincons(linear.ConsEq, linear.MustLinexpr(
			linear.Interval{Inf: -man.tmp[1], Sup: man.tmp[0]}, // −cst
			terms...,
		))
		empty, ex, _ := addLincons(man, w, o.intdim, []linear.Lincons{eq})
		if empty {
			r.setBottom()

			return r
		}
		if !ex {
			man.flagIncomplete()
		}
		if wasClosed {
			// Propagate through the equality before projecting it away.
			// A representation switch voids the incremental
			// precondition; re-close fully in that case.
			if w.IsDense() == wasDense {
				if w.IncrClosure(d) {
					r.setBottom()

					return r
				}
			} else if w.StrongClosure() {
				r.setBottom()

				return r
			}
			w.Forget([]int{d}, false)
			r.closed = w
			r.m = nil

			return r
		}
		man.flagAlgo()
		w.Forget([]int{d}, false)
		r.m = w
		r.closed = nil

		return r

	default:
		// Not invertible, not octagonal: projecting d away is sound.
		w.Forget([]int{d}, false)
		man.flagIncomplete()
		if wasClosed {
			r.closed = w
			r.m = nil
		} else {
			r.m = w
			r.closed = nil
		}

		return r
	}
}
