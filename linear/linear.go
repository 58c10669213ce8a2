// SPDX-License-Identifier: MIT
// Package linear: interval arithmetic and expression/constraint values.
package linear

import (
	"math"
	"sort"
)

// Interval is a closed interval [Inf, Sup] over the extended reals.
// Inf > Sup denotes the empty interval.
type Interval struct {
	Inf, Sup float64
}

// Point returns the singleton interval [c, c].
func Point(c float64) Interval { return Interval{Inf: c, Sup: c} }

// Top returns the whole line (-∞, +∞).
func Top() Interval { return Interval{Inf: math.Inf(-1), Sup: math.Inf(1)} }

// Bottom returns the canonical empty interval.
func Bottom() Interval { return Interval{Inf: 1, Sup: -1} }

// IsEmpty reports whether the interval contains no point.
func (iv Interval) IsEmpty() bool { return iv.Inf > iv.Sup }

// IsTop reports whether the interval is the whole line.
func (iv Interval) IsTop() bool {
	return math.IsInf(iv.Inf, -1) && math.IsInf(iv.Sup, 1)
}

// IsPoint reports whether the interval is a finite singleton.
func (iv Interval) IsPoint() bool { return iv.Inf == iv.Sup && !math.IsInf(iv.Inf, 0) }

// Contains reports iv ⊇ other.
func (iv Interval) Contains(other Interval) bool {
	if other.IsEmpty() {
		return true
	}

	return iv.Inf <= other.Inf && other.Sup <= iv.Sup
}

// Add returns the interval sum; empty operands absorb.
func (iv Interval) Add(other Interval) Interval {
	if iv.IsEmpty() || other.IsEmpty() {
		return Bottom()
	}

	return Interval{Inf: iv.Inf + other.Inf, Sup: iv.Sup + other.Sup}
}

// Neg returns the mirrored interval [-Sup, -Inf].
func (iv Interval) Neg() Interval {
	if iv.IsEmpty() {
		return Bottom()
	}

	return Interval{Inf: -iv.Sup, Sup: -iv.Inf}
}

// MulScalar returns c·iv.
func (iv Interval) MulScalar(c float64) Interval {
	if iv.IsEmpty() {
		return Bottom()
	}
	if c >= 0 {
		return Interval{Inf: c * iv.Inf, Sup: c * iv.Sup}
	}

	return Interval{Inf: c * iv.Sup, Sup: c * iv.Inf}
}

// Mul returns the interval product iv·other (four-corner rule).
func (iv Interval) Mul(other Interval) Interval {
	if iv.IsEmpty() || other.IsEmpty() {
		return Bottom()
	}
	corners := [4]float64{
		iv.Inf * other.Inf, iv.Inf * other.Sup,
		iv.Sup * other.Inf, iv.Sup * other.Sup,
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, c := range corners {
		// NaN can only arise from 0·∞; treat that corner as 0.
		if math.IsNaN(c) {
			c = 0
		}
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}

	return Interval{Inf: lo, Sup: hi}
}

// Term is one cᵢ·Xᵢ summand.
type Term struct {
	Dim   int      // variable index
	Coeff Interval // coefficient range; Point(c) for the exact case
}

// Linexpr is c₀ + Σ cᵢ·Xᵢ with interval constant and coefficients.
// Terms are kept sorted by Dim and free of duplicates.
type Linexpr struct {
	cst   Interval
	terms []Term
}

// NewLinexpr builds an expression from a constant and terms.
// Terms are sorted by dimension; a duplicate dimension or a negative
// one yields an error.
func NewLinexpr(cst Interval, terms ...Term) (*Linexpr, error) {
	e := &Linexpr{cst: cst, terms: make([]Term, len(terms))}
	copy(e.terms, terms)
	sort.Slice(e.terms, func(i, j int) bool { return e.terms[i].Dim < e.terms[j].Dim })
	for i, tm := range e.terms {
		if tm.Dim < 0 {
			return nil, ErrBadDimension
		}
		if i > 0 && e.terms[i-1].Dim == tm.Dim {
			return nil, ErrDuplicateTerm
		}
	}

	return e, nil
}

// MustLinexpr is NewLinexpr for statically known-good inputs; it panics
// on a malformed expression (programmer error).
func MustLinexpr(cst Interval, terms ...Term) *Linexpr {
	e, err := NewLinexpr(cst, terms...)
	if err != nil {
		panic(err)
	}

	return e
}

// Cst returns the constant interval c₀.
func (e *Linexpr) Cst() Interval { return e.cst }

// Terms returns the sorted term list. Callers must not mutate it.
func (e *Linexpr) Terms() []Term { return e.terms }

// Eval bounds the expression over a box: c₀ + Σ cᵢ·box[i].
// A variable index outside the box evaluates as the whole line.
func (e *Linexpr) Eval(box []Interval) Interval {
	acc := e.cst
	for _, tm := range e.terms {
		x := Top()
		if tm.Dim < len(box) {
			x = box[tm.Dim]
		}
		acc = acc.Add(tm.Coeff.Mul(x))
		if acc.IsEmpty() {
			return Bottom()
		}
	}

	return acc
}

// Lincons couples an expression with a comparison against zero.
type Lincons struct {
	Expr *Linexpr
	Typ  ConsTyp
}

// NewLincons pairs an expression with its comparison.
func NewLincons(typ ConsTyp, expr *Linexpr) Lincons {
	return Lincons{Expr: expr, Typ: typ}
}

// Unsat returns the canonical unsatisfiable constraint −1 ≥ 0, used by
// constraint extraction on the bottom element.
func Unsat() Lincons {
	return Lincons{Expr: MustLinexpr(Point(-1)), Typ: ConsSupEq}
}
