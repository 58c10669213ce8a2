// SPDX-License-Identifier: MIT
// Package oct: linear-expression classification.
//
// The transfer functions only handle expressions the octagon can
// represent exactly: at most two variables, unit coefficients. The
// classifier reduces an arbitrary linear expression to that shape (or
// to OTHER), parking the constant interval [−a, b] in the manager's
// scratch buffer as tmp[0]=a, tmp[1]=b.
package oct

import "github.com/katalvlaran/octlat/linear"

// exprShape is the octagonal classification of a linear expression.
type exprShape int

const (
	shapeEmpty  exprShape = iota // some coefficient interval is empty
	shapeZero                    // constant only
	shapeUnary                   // ±Xᵢ + cst
	shapeBinary                  // ±Xᵢ ±Xⱼ + cst
	shapeOther                   // anything else; handled by fallback
)

// uexpr is a classified expression: the shape, the variable indices
// and their ±1 signs. The constant lives in man.tmp.
type uexpr struct {
	shape        exprShape
	i, j         int
	coefI, coefJ int
}

// uexprOf classifies e over dim variables and stores the constant
// interval as tmp[0] = −inf(cst), tmp[1] = sup(cst).
func uexprOf(man *Manager, e *linear.Linexpr, dim int) uexpr {
	cst := e.Cst()
	man.tmp[0], man.tmp[1] = -cst.Inf, cst.Sup

	u := uexpr{shape: shapeZero}
	for _, tm := range e.Terms() {
		c := tm.Coeff
		if c.IsEmpty() {
			return uexpr{shape: shapeEmpty}
		}
		if c.Inf == 0 && c.Sup == 0 {
			continue // vanished term
		}

		// Only exact unit coefficients stay octagonal.
		var sign int
		switch {
		case c.IsPoint() && c.Inf == 1:
			sign = 1
		case c.IsPoint() && c.Inf == -1:
			sign = -1
		default:
			return uexpr{shape: shapeOther}
		}
		if tm.Dim >= dim {
			return uexpr{shape: shapeOther}
		}

		switch u.shape {
		case shapeZero:
			u.shape, u.i, u.coefI = shapeUnary, tm.Dim, sign
		case shapeUnary:
			u.shape, u.j, u.coefJ = shapeBinary, tm.Dim, sign
		default:
			return uexpr{shape: shapeOther} // three or more variables
		}
	}

	return u
}

// lit returns the literal encoding +Xᵥ (2v) or −Xᵥ (2v+1) for a ±1
// coefficient.
func lit(v, coef int) int {
	if coef == 1 {
		return 2 * v
	}

	return 2*v + 1
}
