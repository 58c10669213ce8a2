package oct_test

import (
	"testing"

	"github.com/katalvlaran/octlat/linear"
	"github.com/katalvlaran/octlat/oct"
	"github.com/stretchr/testify/require"
)

// upperCons encodes Xᵥ ≤ c as the constraint −Xᵥ + c ≥ 0.
func upperCons(v int, c float64) linear.Lincons {
	return linear.NewLincons(linear.ConsSupEq, linear.MustLinexpr(
		linear.Point(c), linear.Term{Dim: v, Coeff: linear.Point(-1)}))
}

// lowerCons encodes Xᵥ ≥ c as the constraint Xᵥ − c ≥ 0.
func lowerCons(v int, c float64) linear.Lincons {
	return linear.NewLincons(linear.ConsSupEq, linear.MustLinexpr(
		linear.Point(-c), linear.Term{Dim: v, Coeff: linear.Point(1)}))
}

// diffCons encodes Xᵤ − Xᵥ ≤ c as −Xᵤ + Xᵥ + c ≥ 0.
func diffCons(u, v int, c float64) linear.Lincons {
	return linear.NewLincons(linear.ConsSupEq, linear.MustLinexpr(
		linear.Point(c),
		linear.Term{Dim: u, Coeff: linear.Point(-1)},
		linear.Term{Dim: v, Coeff: linear.Point(1)}))
}

// rangeOct builds a value over dim variables with Xᵥ ∈ [lo, hi].
func rangeOct(t *testing.T, man *oct.Manager, dim, v int, lo, hi float64) *oct.Oct {
	t.Helper()
	o := oct.MeetLinconsArray(man, true, oct.Top(man, dim, 0),
		[]linear.Lincons{upperCons(v, hi), lowerCons(v, lo)})
	require.False(t, oct.IsBottom(man, o), "a non-empty range must not collapse")

	return o
}
