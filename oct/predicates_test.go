package oct_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/octlat/linear"
	"github.com/katalvlaran/octlat/oct"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTop_IsTopAndUnbounded covers the first concrete scenario:
// top(2) is top and projects to the unbounded box.
func TestTop_IsTopAndUnbounded(t *testing.T) {
	man := oct.NewManager()
	o := oct.Top(man, 2, 0)

	assert.True(t, oct.IsTop(man, o), "a fresh top is top")
	assert.False(t, oct.IsBottom(man, o), "top is not bottom")

	box := oct.ToBox(man, o)
	want := []linear.Interval{linear.Top(), linear.Top()}
	assert.Empty(t, cmp.Diff(want, box), "both variables unbounded")
}

// TestMeet_GuardsOneVariable covers the second scenario: guarding X₀
// into [1,3] leaves X₁ unconstrained.
func TestMeet_GuardsOneVariable(t *testing.T) {
	man := oct.NewManager()
	o := oct.MeetLinconsArray(man, true, oct.Top(man, 2, 0),
		[]linear.Lincons{upperCons(0, 3), lowerCons(0, 1)})

	box := oct.ToBox(man, o)
	want := []linear.Interval{{Inf: 1, Sup: 3}, linear.Top()}
	assert.Empty(t, cmp.Diff(want, box), "X₀ ∈ [1,3], X₁ free")

	assert.True(t, oct.IsDimensionUnconstrained(man, o, 1), "X₁ has no constraint")
	assert.False(t, oct.IsDimensionUnconstrained(man, o, 0), "X₀ is bounded")
	assert.False(t, oct.IsDimensionUnconstrained(man, o, 7), "out of range is never a variable")
}

// TestSatLincons_TransitiveChain covers the third scenario: from
// X₀−X₁ ≤ 2 and X₁−X₂ ≤ 3, closure entails X₀−X₂ ≤ 5 but not ≤ 4.
func TestSatLincons_TransitiveChain(t *testing.T) {
	man := oct.NewManager()
	o := oct.MeetLinconsArray(man, true, oct.Top(man, 3, 0),
		[]linear.Lincons{diffCons(0, 1, 2), diffCons(1, 2, 3)})

	assert.True(t, oct.SatLincons(man, o, diffCons(0, 2, 5)), "X₀−X₂ ≤ 5 is entailed")
	assert.False(t, oct.SatLincons(man, o, diffCons(0, 2, 4)), "X₀−X₂ ≤ 4 is not")
}

// TestMeet_Contradiction covers the fourth scenario: X₀ ≤ 1 ∧ X₀ ≥ 2
// closes to ⊥.
func TestMeet_Contradiction(t *testing.T) {
	man := oct.NewManager()
	o := oct.MeetLinconsArray(man, true, oct.Top(man, 2, 0),
		[]linear.Lincons{upperCons(0, 1), lowerCons(0, 2)})

	assert.True(t, oct.IsBottom(man, o), "contradictory bounds are bottom")
	assert.True(t, oct.SatLincons(man, o, upperCons(1, -100)), "bottom satisfies everything")
	assert.True(t, oct.SatInterval(man, o, 0, linear.Point(42)), "bottom saturates any interval")

	cons := oct.ToLinconsArray(man, o)
	require.Len(t, cons, 1, "bottom extracts the single unsat witness")
	assert.Equal(t, linear.Point(-1), cons[0].Expr.Cst(), "the witness is −1 ≥ 0")
}

// TestSatInterval_And_BoundDimension exercise the per-variable
// projections.
func TestSatInterval_And_BoundDimension(t *testing.T) {
	man := oct.NewManager()
	o := rangeOct(t, man, 3, 1, -2, 4)

	assert.True(t, oct.SatInterval(man, o, 1, linear.Interval{Inf: -5, Sup: 5}), "wider interval saturates")
	assert.False(t, oct.SatInterval(man, o, 1, linear.Interval{Inf: 0, Sup: 5}), "narrower interval does not")
	assert.False(t, oct.SatInterval(man, o, 9, linear.Top()), "bad index is safe false")

	iv, err := oct.BoundDimension(man, o, 1)
	require.NoError(t, err)
	assert.Equal(t, linear.Interval{Inf: -2, Sup: 4}, iv, "projected bounds")

	_, err = oct.BoundDimension(man, o, 3)
	assert.ErrorIs(t, err, oct.ErrBadDimension, "out-of-range dimension errors")

	free, err := oct.BoundDimension(man, o, 2)
	require.NoError(t, err)
	assert.True(t, free.IsTop(), "unconstrained variable projects to the whole line")
}

// TestIsLeq_And_IsEq cover ordering across distinct and equal values,
// plus the dimension-mismatch safe default.
func TestIsLeq_And_IsEq(t *testing.T) {
	man := oct.NewManager()
	small := rangeOct(t, man, 2, 0, 1, 2)
	big := rangeOct(t, man, 2, 0, 0, 5)

	assert.True(t, oct.IsLeq(man, small, big), "tighter range is below")
	assert.False(t, oct.IsLeq(man, big, small), "and not conversely")
	assert.False(t, oct.IsEq(man, small, big), "distinct sets differ")
	assert.True(t, oct.IsEq(man, small, oct.Copy(man, small)), "a copy is equal")

	other := oct.Top(man, 3, 0)
	assert.False(t, oct.IsLeq(man, small, other), "dimension mismatch is safe false")
	assert.False(t, oct.IsEq(man, small, other), "dimension mismatch is safe false")

	bot := oct.Bottom(man, 2, 0)
	assert.True(t, oct.IsLeq(man, bot, small), "bottom is below everything")
	assert.False(t, oct.IsLeq(man, small, bot), "non-empty is not below bottom")
	assert.True(t, oct.IsEq(man, bot, oct.Bottom(man, 2, 0)), "two bottoms are equal")
}

// TestToLinconsArray_RoundTrip extracts constraints and re-meets them
// into a fresh top: the round trip must reproduce the same set.
func TestToLinconsArray_RoundTrip(t *testing.T) {
	man := oct.NewManager()
	o := oct.MeetLinconsArray(man, true, oct.Top(man, 3, 0),
		[]linear.Lincons{diffCons(0, 1, 2), upperCons(1, 7), lowerCons(0, -1)})

	cons := oct.ToLinconsArray(man, o)
	require.NotEmpty(t, cons, "a constrained value extracts constraints")

	back := oct.MeetLinconsArray(man, true, oct.Top(man, 3, 0), cons)
	assert.True(t, oct.IsEq(man, o, back), "extract-then-meet reproduces the value")
}

// TestDenseSparseObservationalEquality checks property 8: the same
// constraint set processed through a wide (sparse) and a narrow
// (densified) value entails exactly the same extracted constraints.
func TestDenseSparseObservationalEquality(t *testing.T) {
	man := oct.NewManager()
	guards := []linear.Lincons{diffCons(0, 1, 2), diffCons(1, 2, 3), upperCons(2, 10)}

	// Over 12 variables the three constrained ones stay decomposed;
	// over 3 variables the density policy switches to dense.
	wide := oct.MeetLinconsArray(man, true, oct.Top(man, 12, 0), guards)
	narrow := oct.MeetLinconsArray(man, true, oct.Top(man, 3, 0), guards)

	// Force closure so the extraction sees the transitive bounds too.
	require.False(t, oct.IsBottom(man, wide))
	require.False(t, oct.IsBottom(man, narrow))

	for _, c := range oct.ToLinconsArray(man, narrow) {
		assert.True(t, oct.SatLincons(man, wide, c), "wide value entails every narrow constraint")
	}
	for _, c := range oct.ToLinconsArray(man, wide) {
		assert.True(t, oct.SatLincons(man, narrow, c), "narrow value entails every wide constraint")
	}
}

// TestLazyClosure_FlagsConservativeAnswers verifies the algorithm<0
// policy: predicates degrade soundly and clear the Best flag.
func TestLazyClosure_FlagsConservativeAnswers(t *testing.T) {
	lazy := oct.NewManager(oct.WithLazyClosure())
	o := oct.MeetLinconsArray(lazy, true, oct.Top(lazy, 2, 0),
		[]linear.Lincons{upperCons(0, 1), lowerCons(0, 2)})

	// The contradiction is only discoverable by closure, which lazy
	// mode skips: the answer stays a conservative false, flagged.
	assert.False(t, oct.IsBottom(lazy, o), "unclosed value cannot prove emptiness")
	assert.False(t, lazy.Result.Best, "conservative answer clears Best")

	eager := oct.NewManager()
	assert.True(t, oct.IsBottom(eager, o), "eager closure finds the contradiction")
}
