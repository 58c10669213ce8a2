package oct_test

import (
	"fmt"

	"github.com/katalvlaran/octlat/linear"
	"github.com/katalvlaran/octlat/oct"
)

// ExampleSatLincons walks the classic derivation: two difference
// constraints close into a transitive third one.
func ExampleSatLincons() {
	man := oct.NewManager()

	// X₀ − X₁ ≤ 2 and X₁ − X₂ ≤ 3 over three real variables.
	le := func(u, v int, c float64) linear.Lincons {
		return linear.NewLincons(linear.ConsSupEq, linear.MustLinexpr(
			linear.Point(c),
			linear.Term{Dim: u, Coeff: linear.Point(-1)},
			linear.Term{Dim: v, Coeff: linear.Point(1)}))
	}
	o := oct.MeetLinconsArray(man, true, oct.Top(man, 3, 0),
		[]linear.Lincons{le(0, 1, 2), le(1, 2, 3)})

	fmt.Println("X0-X2 <= 5:", oct.SatLincons(man, o, le(0, 2, 5)))
	fmt.Println("X0-X2 <= 4:", oct.SatLincons(man, o, le(0, 2, 4)))
	// Output:
	// X0-X2 <= 5: true
	// X0-X2 <= 4: false
}

// ExampleToBox projects a guarded value onto interval bounds.
func ExampleToBox() {
	man := oct.NewManager()
	o := oct.MeetLinconsArray(man, true, oct.Top(man, 2, 0),
		[]linear.Lincons{
			// X₀ ≤ 3 and X₀ ≥ 1; X₁ stays free.
			linear.NewLincons(linear.ConsSupEq, linear.MustLinexpr(
				linear.Point(3), linear.Term{Dim: 0, Coeff: linear.Point(-1)})),
			linear.NewLincons(linear.ConsSupEq, linear.MustLinexpr(
				linear.Point(-1), linear.Term{Dim: 0, Coeff: linear.Point(1)})),
		})

	box := oct.ToBox(man, o)
	fmt.Printf("X0 in [%g, %g]\n", box[0].Inf, box[0].Sup)
	fmt.Println("X1 unbounded:", box[1].IsTop())
	// Output:
	// X0 in [1, 3]
	// X1 unbounded: true
}
