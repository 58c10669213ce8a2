// Package linear defines configuration constants and sentinel errors
// for expression and constraint values.
package linear

import "errors"

// ConsTyp enumerates the comparison of a constraint's expression
// against zero.
//
//   - ConsEq     - e = 0
//   - ConsSupEq  - e ≥ 0
//   - ConsSup    - e > 0
//   - ConsEqMod  - e ≡ 0 (mod k); recognized, never interpreted
//   - ConsDisEq  - e ≠ 0; recognized, never interpreted
type ConsTyp int

const (
	// ConsEq: the expression equals zero.
	ConsEq ConsTyp = iota

	// ConsSupEq: the expression is non-negative.
	ConsSupEq

	// ConsSup: the expression is strictly positive.
	ConsSup

	// ConsEqMod: congruence constraint; octagons skip it soundly.
	ConsEqMod

	// ConsDisEq: disequality constraint; octagons skip it soundly.
	ConsDisEq
)

// Sentinel errors for expression construction and evaluation.
var (
	// ErrBadDimension indicates a term references a negative variable index.
	ErrBadDimension = errors.New("linear: negative variable index")

	// ErrDuplicateTerm indicates two terms name the same variable.
	ErrDuplicateTerm = errors.New("linear: duplicate term for one variable")
)
