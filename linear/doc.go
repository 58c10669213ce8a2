// Package linear defines the value types the octagon domain consumes:
// intervals, linear expressions and linear constraints.
//
// An expression is c₀ + Σ cᵢ·Xᵢ where the constant and every
// coefficient is an interval (a point interval for the common exact
// case). A constraint couples an expression with a comparison against
// zero: e = 0, e ≥ 0, e > 0, plus the congruence and disequality forms
// the domain recognizes but does not interpret.
//
// These are plain values with constructors and accessors — the domain
// consumes them by value and never mutates a caller's expression.
package linear
