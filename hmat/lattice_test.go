package hmat_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/octlat/hmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// interval builds a closed matrix over dim variables with Xᵥ ∈ [lo,hi].
func interval(t *testing.T, dim, v int, lo, hi float64) *hmat.Mat {
	t.Helper()
	m := hmat.NewTop(dim)
	upperBound(m, v, hi)
	lowerBound(m, v, lo)
	require.False(t, m.StrongClosure())

	return m
}

// TestIsTop distinguishes the unconstrained octagon from everything
// else in both storage modes.
func TestIsTop(t *testing.T) {
	assert.True(t, hmat.NewTop(3).IsTop(), "fresh sparse matrix is top")
	assert.True(t, hmat.NewDenseTop(3).IsTop(), "fresh dense matrix is top")

	m := hmat.NewTop(3)
	upperBound(m, 1, 5)
	assert.False(t, m.IsTop(), "a finite bound breaks top")

	d := hmat.NewDenseTop(3)
	d.Tighten(2, 0, 1)
	assert.False(t, d.IsTop(), "a finite dense entry breaks top")
}

// TestJoin_IntervalHull reproduces the join scenario:
// {X₀ ∈ [0,1]} ⊔ {X₀ ∈ [3,4]} = {X₀ ∈ [0,4]}, with both operands below
// the result.
func TestJoin_IntervalHull(t *testing.T) {
	a := interval(t, 2, 0, 0, 1)
	b := interval(t, 2, 0, 3, 4)

	j := hmat.Join(a, b)

	assert.Equal(t, 8.0, j.At(1, 0), "upper bound 2X₀ ≤ 8")
	assert.Equal(t, 0.0, j.At(0, 1), "lower bound −2X₀ ≤ 0")
	assert.True(t, a.Leq(j), "a ⊑ a⊔b")
	assert.True(t, b.Leq(j), "b ⊑ a⊔b")
}

// TestMeet_BelowBothOperands checks the meet half of the lattice laws
// and the pointwise-min semantics.
func TestMeet_BelowBothOperands(t *testing.T) {
	a := interval(t, 2, 0, 0, 5)
	b := interval(t, 2, 0, 3, 9)

	m := hmat.Meet(a, b)
	require.False(t, m.StrongClosure(), "overlapping intervals meet to a non-empty set")

	assert.Equal(t, 10.0, m.At(1, 0), "upper bound is the tighter 2X₀ ≤ 10")
	assert.Equal(t, -6.0, m.At(0, 1), "lower bound is the tighter −2X₀ ≤ −6")
	assert.True(t, m.Leq(a), "a⊓b ⊑ a")
	assert.True(t, m.Leq(b), "a⊓b ⊑ b")
}

// TestMeet_UnionsPartitions verifies that meet relates variables that
// either operand relates.
func TestMeet_UnionsPartitions(t *testing.T) {
	a := hmat.NewTop(12)
	diffBound(a, 0, 1, 2)
	require.False(t, a.StrongClosure())

	b := hmat.NewTop(12)
	diffBound(b, 1, 2, 3)
	require.False(t, b.StrongClosure())

	m := hmat.Meet(a, b)
	require.False(t, m.IsDense(), "three covered variables out of twelve stay sparse")
	assert.True(t, m.Part().IsConnected(0, 2), "0-1 from a and 1-2 from b chain into one component")
	assert.Equal(t, 2.0, m.At(2, 0), "bound from a survives")
	assert.Equal(t, 3.0, m.At(4, 2), "bound from b survives")
}

// TestIsEq_AcrossRepresentations compares a closed sparse matrix with
// its densified twin.
func TestIsEq_AcrossRepresentations(t *testing.T) {
	a := hmat.NewTop(8)
	diffBound(a, 0, 1, 2)
	upperBound(a, 0, 4)
	require.False(t, a.StrongClosure())

	d := a.Clone()
	d.ConvertToDense(false)

	assert.True(t, a.Eq(d), "densification preserves every observable bound")
	assert.True(t, d.Eq(a), "equality is symmetric across representations")

	d.Tighten(3, 2, 1) // X₁ ≤ 1/2, not present in a
	assert.False(t, a.Eq(d), "a genuinely tighter bound must break equality")
}

// TestWidening_DropsUnstableBounds reproduces the widening scenario:
// widen({X₀ ∈ [0,1]}, {X₀ ∈ [0,2]}) keeps the stable lower bound and
// drops the growing upper bound to +∞.
func TestWidening_DropsUnstableBounds(t *testing.T) {
	a := interval(t, 2, 0, 0, 1)
	b := interval(t, 2, 0, 0, 2)
	require.True(t, a.Leq(b), "widening precondition a ⊑ b")

	w := hmat.Widening(a, b)

	assert.True(t, math.IsInf(w.At(1, 0), 1), "upper bound widened away")
	assert.Equal(t, 0.0, w.At(0, 1), "stable lower bound kept")
}

// TestWideningThresholds_ClimbsTheLadder verifies that an escaping
// bound stops at the least threshold containing it instead of +∞.
func TestWideningThresholds_ClimbsTheLadder(t *testing.T) {
	a := interval(t, 2, 0, 0, 1)
	b := interval(t, 2, 0, 0, 2)
	thresholds := []float64{5, 10} // doubled-bound scale: 2X₀ ≤ t

	w := hmat.WideningThresholds(a, b, thresholds)

	// b's doubled upper bound is 4; the least threshold ≥ 4 is 5.
	assert.Equal(t, 5.0, w.At(1, 0), "bound climbs to the least covering threshold")
	assert.Equal(t, 0.0, w.At(0, 1), "stable bound kept verbatim")

	c := interval(t, 2, 0, 0, 6)
	w2 := hmat.WideningThresholds(a, c, thresholds)
	assert.True(t, math.IsInf(w2.At(1, 0), 1), "beyond the last threshold the bound escapes to +∞")
}

// TestNarrowing_RecoversOnlyLostBounds verifies A⊓B ⊑ A△B ⊑ A: the
// narrowing refills exactly the +∞ entries of A.
func TestNarrowing_RecoversOnlyLostBounds(t *testing.T) {
	a := interval(t, 2, 0, 0, 1)
	b := interval(t, 2, 0, 0, 2)
	w := hmat.Widening(a, b) // lower bound kept, upper +∞
	require.False(t, w.StrongClosure())

	n := hmat.Narrowing(w, b)

	assert.Equal(t, 4.0, n.At(1, 0), "the +∞ entry refills from b")
	assert.Equal(t, 0.0, n.At(0, 1), "finite entries of the left operand win")

	meet := hmat.Meet(w, b)
	require.False(t, meet.StrongClosure())
	require.False(t, n.StrongClosure())
	assert.True(t, meet.Leq(n), "a⊓b ⊑ a△b")
	assert.True(t, n.Leq(w), "a△b ⊑ a")
}
