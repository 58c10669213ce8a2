// SPDX-License-Identifier: MIT
// Package oct: lattice operations on values.
//
// Results are produced on the un-closed slot; predicates re-close
// lazily. ⊥ is contagious through meet and neutral through join.
package oct

import "github.com/katalvlaran/octlat/hmat"

// assertSameShape panics on operand shape mismatch — a caller contract
// violation, not a runtime condition.
func assertSameShape(a, b *Oct) {
	if a.dim != b.dim || a.intdim != b.intdim {
		panic(panicDimMismatch)
	}
}

// Meet returns the intersection a ⊓ b: the pointwise minimum of the
// two constraint matrices. Exact on ℚ.
func Meet(man *Manager, destructive bool, a, b *Oct) *Oct {
	man.enter(a.dim)
	assertSameShape(a, b)
	r := target(destructive, a)
	if a.isBottom() || b.isBottom() {
		r.setBottom()

		return r
	}
	w := hmat.Meet(a.matrix(), b.matrix())
	r.m = w
	r.closed = nil

	return r
}

// Join returns the octagonal hull a ⊔ b: the pointwise maximum of the
// two closed matrices. The hull generally contains points outside
// γ(a) ∪ γ(b), so Exact is cleared; on closed operands the result is
// still the best octagon (Best stays set).
func Join(man *Manager, destructive bool, a, b *Oct) *Oct {
	man.enter(a.dim)
	assertSameShape(a, b)
	if man.autoClose() {
		cacheClosure(a)
		cacheClosure(b)
	}
	r := target(destructive, a)
	switch {
	case a.isBottom() && b.isBottom():
		r.setBottom()

		return r
	case a.isBottom():
		other := Copy(man, b)
		r.m, r.closed = other.m, other.closed

		return r
	case b.isBottom():
		other := Copy(man, a)
		r.m, r.closed = other.m, other.closed

		return r
	}
	if a.closed == nil || b.closed == nil {
		man.flagAlgo()
	}
	man.Result.Exact = false
	w := hmat.Join(a.matrix(), b.matrix())
	r.m = w
	r.closed = nil

	return r
}

// Widening extrapolates from a to b: bounds that grew are dropped (or
// raised to a threshold by WideningThresholds). Precondition a ⊑ b.
// The left operand is used as-is — closing it between widening steps
// would defeat termination — while the right one is closed for
// precision.
func Widening(man *Manager, destructive bool, a, b *Oct) *Oct {
	return widenWith(man, destructive, a, b, nil)
}

// WideningThresholds widens with a sorted ladder of thresholds: an
// escaping bound climbs to the least threshold above it before giving
// up to +∞. Thresholds are on the stored scale (doubled for unary
// bounds).
func WideningThresholds(man *Manager, destructive bool, a, b *Oct, thresholds []float64) *Oct {
	return widenWith(man, destructive, a, b, thresholds)
}

func widenWith(man *Manager, destructive bool, a, b *Oct, thresholds []float64) *Oct {
	man.enter(a.dim)
	assertSameShape(a, b)
	if man.autoClose() {
		cacheClosure(b)
	}
	r := target(destructive, a)
	switch {
	case a.isBottom():
		other := Copy(man, b)
		r.m, r.closed = other.m, other.closed

		return r
	case b.isBottom():
		other := Copy(man, a)
		r.m, r.closed = other.m, other.closed

		return r
	}
	man.Result.Exact = false
	var w *hmat.Mat
	if thresholds == nil {
		w = hmat.Widening(a.matrix(), b.matrix())
	} else {
		w = hmat.WideningThresholds(a.matrix(), b.matrix(), thresholds)
	}
	r.m = w
	r.closed = nil

	return r
}

// Narrowing refines a by b on the bounds a lost to +∞, guaranteeing
// a ⊓ b ⊑ result ⊑ a — the descending counterpart of widening.
func Narrowing(man *Manager, destructive bool, a, b *Oct) *Oct {
	man.enter(a.dim)
	assertSameShape(a, b)
	if man.autoClose() {
		cacheClosure(b)
	}
	r := target(destructive, a)
	if a.isBottom() || b.isBottom() {
		r.setBottom()

		return r
	}
	man.Result.Exact = false
	w := hmat.Narrowing(a.matrix(), b.matrix())
	r.m = w
	r.closed = nil

	return r
}
