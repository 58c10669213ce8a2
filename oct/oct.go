// SPDX-License-Identifier: MIT
// Package oct: construction, copying and closure caching.
package oct

import "github.com/katalvlaran/octlat/hmat"

// Top returns the unconstrained octagon over dim variables, the first
// intdim of them integer-typed. The fresh value is trivially closed.
func Top(man *Manager, dim, intdim int) *Oct {
	man.enter(dim)
	m := hmat.NewTop(dim)

	return &Oct{dim: dim, intdim: intdim, m: m, closed: m.Clone()}
}

// Bottom returns the empty octagon: no point satisfies it.
func Bottom(man *Manager, dim, intdim int) *Oct {
	man.enter(dim)

	return &Oct{dim: dim, intdim: intdim}
}

// Copy returns a deep copy; the two values share no storage.
func Copy(man *Manager, o *Oct) *Oct {
	man.enter(o.dim)
	c := &Oct{dim: o.dim, intdim: o.intdim}
	if o.m != nil {
		c.m = o.m.Clone()
	}
	if o.closed != nil {
		c.closed = o.closed.Clone()
	}

	return c
}

// cacheClosure computes and caches the strong closure of o when it is
// missing. Discovering unsatisfiability collapses the value to ⊥.
func cacheClosure(o *Oct) {
	if o.closed != nil || o.m == nil {
		return
	}
	c := o.m.Clone()
	if c.StrongClosure() {
		o.m = nil
		o.closed = nil

		return
	}
	o.closed = c
}

// setBottom collapses o to ⊥ in place.
func (o *Oct) setBottom() {
	o.m = nil
	o.closed = nil
}

// target returns the value operations write into: o itself when
// destructive, a fresh shell with the same dimensions otherwise.
func target(destructive bool, o *Oct) *Oct {
	if destructive {
		return o
	}

	return &Oct{dim: o.dim, intdim: o.intdim}
}
