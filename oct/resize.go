// SPDX-License-Identifier: MIT
// Package oct: dimension operations on values.
//
// Closure bookkeeping per operation:
//   - adding unconstrained variables or permuting preserves closure;
//   - removing benefits from closing first (bounds transiting through
//     the removed variables must be materialized before they vanish);
//   - forget preserves closure, but projecting onto Xᵥ=0 introduces
//     fresh bounds that strengthening could propagate — un-closed;
//   - expand and fold produce un-closed results.
package oct

// AddDimensions inserts unconstrained variables, one before each entry
// of pos (ascending, values in [0, dim]). addInt of the inserted
// variables are integer-typed; insertions must respect the
// integers-first layout.
func AddDimensions(man *Manager, destructive bool, o *Oct, pos []int, addInt int) *Oct {
	man.enter(o.dim)
	r := target(destructive, o)
	r.dim = o.dim + len(pos)
	r.intdim = o.intdim + addInt
	if o.isBottom() {
		r.setBottom()

		return r
	}
	if o.closed != nil {
		// New variables are unrelated to everything: the normal form
		// survives the insertion.
		r.closed = o.closed.AddDimensions(pos)
		r.m = nil

		return r
	}
	r.m = o.m.AddDimensions(pos)
	r.closed = nil

	return r
}

// RemoveDimensions drops the listed variables (ascending, distinct).
// remInt of them are integer-typed. The value is closed first when the
// policy allows, so constraints that flow through a removed variable
// survive as direct bounds; otherwise the un-closed removal is sound
// but lossy and flagged.
func RemoveDimensions(man *Manager, destructive bool, o *Oct, vars []int, remInt int) *Oct {
	man.enter(o.dim)
	if man.autoClose() {
		cacheClosure(o)
	}
	r := target(destructive, o)
	r.dim = o.dim - len(vars)
	r.intdim = o.intdim - remInt
	if o.isBottom() {
		r.setBottom()

		return r
	}
	if o.closed != nil {
		// A sub-matrix of a closed matrix is closed.
		r.closed = o.closed.RemoveDimensions(vars)
		r.m = nil

		return r
	}
	man.flagAlgo()
	r.m = o.m.RemoveDimensions(vars)
	r.closed = nil

	return r
}

// PermuteDimensions renames variables by a bijection on [0, dim).
// Pure renaming: exact, closure-preserving.
func PermuteDimensions(man *Manager, destructive bool, o *Oct, perm []int) *Oct {
	man.enter(o.dim)
	r := target(destructive, o)
	if o.isBottom() {
		r.setBottom()

		return r
	}
	if o.closed != nil {
		r.closed = o.closed.Permute(perm)
		r.m = nil

		return r
	}
	r.m = o.m.Permute(perm)
	r.closed = nil

	return r
}

// ForgetArray erases every constraint on the listed variables; with
// project set each one is then pinned to exactly 0. Closing first
// keeps the indirect consequences of the forgotten constraints.
func ForgetArray(man *Manager, destructive bool, o *Oct, vars []int, project bool) *Oct {
	man.enter(o.dim)
	if man.autoClose() {
		cacheClosure(o)
	}
	r := target(destructive, o)
	if o.isBottom() {
		r.setBottom()

		return r
	}
	w := o.matrix().Clone()
	wasClosed := o.closed != nil
	if !wasClosed {
		man.flagAlgo()
	}
	w.Forget(vars, project)
	if wasClosed && !project {
		// Forgetting rows of a closed matrix leaves it closed.
		r.closed = w
		r.m = nil

		return r
	}
	r.m = w
	r.closed = nil

	return r
}

// Expand appends n copies of variable v, each constrained exactly as v
// but unrelated to v and to each other.
func Expand(man *Manager, destructive bool, o *Oct, v, n int) *Oct {
	man.enter(o.dim)
	r := target(destructive, o)
	r.dim = o.dim + n
	if v < o.intdim {
		r.intdim = o.intdim + n
	}
	if o.isBottom() {
		r.setBottom()

		return r
	}
	r.m = o.matrix().Expand(v, n)
	r.closed = nil

	return r
}

// Fold collapses the listed variables (ascending) into the first one
// by joining their constraints, then removes the rest. Closure first
// makes the join as tight as the domain allows.
func Fold(man *Manager, destructive bool, o *Oct, vars []int) *Oct {
	man.enter(o.dim)
	if man.autoClose() {
		cacheClosure(o)
	}
	r := target(destructive, o)
	r.dim = o.dim - (len(vars) - 1)
	intGone := 0
	for _, v := range vars[1:] {
		if v < o.intdim {
			intGone++
		}
	}
	r.intdim = o.intdim - intGone
	if o.isBottom() {
		r.setBottom()

		return r
	}
	if o.closed == nil {
		man.flagAlgo()
	}
	man.Result.Exact = false
	r.m = o.matrix().Fold(vars)
	r.closed = nil

	return r
}
