package hmat_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/octlat/hmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constrained builds a closed sparse matrix over 8 variables with a
// related pair (0,1) and a unary bound on 3.
func constrained(t *testing.T) *hmat.Mat {
	t.Helper()
	m := hmat.NewTop(8)
	diffBound(m, 0, 1, 2)
	lowerBound(m, 1, -1)
	upperBound(m, 3, 7)
	require.False(t, m.StrongClosure())

	return m
}

// TestAddRemove_RoundTrip adds two variables and removes them again;
// the result must be indistinguishable from the original.
func TestAddRemove_RoundTrip(t *testing.T) {
	m := constrained(t)

	grown := m.AddDimensions([]int{1, 3})
	require.Equal(t, 10, grown.Dim(), "two variables inserted")

	// Old variable 1 now lives at index 2; its bound against old 0 must
	// have moved with it: X₀ − X₂ ≤ 2 is stored at (2·2, 2·0) = (4, 0).
	assert.Equal(t, 2.0, grown.At(4, 0), "bound follows the shifted variable")
	assert.True(t, math.IsInf(grown.At(3, 2), 1), "inserted variable is unconstrained")

	back := grown.RemoveDimensions([]int{1, 4})
	require.Equal(t, 8, back.Dim())
	assert.True(t, m.Eq(back), "add-then-remove is the identity")
}

// TestPermute_RoundTrip renames variables by a permutation and back.
func TestPermute_RoundTrip(t *testing.T) {
	m := constrained(t)
	perm := []int{3, 0, 2, 1, 4, 5, 7, 6}
	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}

	p := m.Permute(perm)
	// X₀ − X₁ ≤ 2 became X₃ − X₀ ≤ 2, stored at (2·0, 2·3) = (0, 6).
	assert.Equal(t, 2.0, p.At(0, 6), "bound lands on the renamed pair")

	back := p.Permute(inv)
	assert.True(t, m.Eq(back), "permute then inverse-permute is the identity")
}

// TestRemove_SplitsComponent removes the bridge variable of a chain
// component and expects the survivors to regroup independently.
func TestRemove_SplitsComponent(t *testing.T) {
	m := hmat.NewTop(12)
	diffBound(m, 0, 1, 2) // 0—1
	diffBound(m, 1, 2, 3) // 1—2 : component {0,1,2} bridged by 1
	diffBound(m, 4, 5, 1)

	// Remove the bridge BEFORE closing, so no transitive 0—2 bound was
	// ever derived and the component genuinely splits.
	r := m.RemoveDimensions([]int{1})
	require.Equal(t, 11, r.Dim())
	require.False(t, r.IsDense())

	assert.False(t, r.Part().IsConnected(0, 1), "old 0 and old 2 lost their bridge")
	assert.True(t, r.Part().IsConnected(3, 4), "untouched component survives (shifted)")
	assert.Equal(t, 1.0, r.At(8, 6), "surviving bound X₃−X₄ ≤ 1 (old 4,5 shifted down)")
}

// TestForget_ErasesAndProjects exercises both forget flavors.
func TestForget_ErasesAndProjects(t *testing.T) {
	m := constrained(t)
	m.Forget([]int{1}, false)

	assert.True(t, math.IsInf(m.At(2, 0), 1), "relation to the forgotten variable is gone")
	assert.True(t, math.IsInf(m.At(2, 3), 1), "its lower bound is gone")
	assert.Equal(t, 0.0, m.At(2, 2), "diagonal stays zero")

	p := constrained(t)
	p.Forget([]int{1}, true)
	assert.Equal(t, 0.0, p.At(2, 3), "projection pins the variable: −2X₁ ≤ 0")
	assert.Equal(t, 0.0, p.At(3, 2), "projection pins the variable: 2X₁ ≤ 0")
}

// TestForget_DenseMatchesSparse forgets the same variable in both
// representations and compares observable bounds.
func TestForget_DenseMatchesSparse(t *testing.T) {
	s := constrained(t)
	d := s.Clone()
	d.ConvertToDense(false)

	s.Forget([]int{1}, false)
	d.Forget([]int{1}, false)

	assert.True(t, s.Eq(d), "forget is representation-independent")
}

// TestExpand_CopiesConstraints appends a copy of variable 1 and checks
// the copy mirrors the original's constraints without aliasing it.
func TestExpand_CopiesConstraints(t *testing.T) {
	m := constrained(t)
	e := m.Expand(1, 1)
	require.Equal(t, 9, e.Dim())

	// Copy lives at index 8. X₀ − X₈ ≤ 2 mirrors X₀ − X₁ ≤ 2.
	assert.Equal(t, 2.0, e.At(16, 0), "difference bound copied onto the clone")
	assert.Equal(t, 2.0, e.At(16, 17), "lower bound copied: −2X₈ ≤ 2")
	assert.True(t, math.IsInf(e.At(16, 2), 1), "clone and original are unrelated")
}

// TestFold_JoinsThenDrops folds a variable and its expanded copy back
// together; since the copy was identical, folding must restore the
// original constraints.
func TestFold_JoinsThenDrops(t *testing.T) {
	m := constrained(t)
	e := m.Expand(1, 1)
	require.False(t, e.StrongClosure(), "expanded matrix stays satisfiable")

	f := e.Fold([]int{1, 8})
	require.Equal(t, 8, f.Dim())
	require.False(t, f.StrongClosure())

	assert.True(t, m.Eq(f), "expand followed by fold restores the original")
}
