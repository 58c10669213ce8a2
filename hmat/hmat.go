// SPDX-License-Identifier: MIT
// Package hmat: allocation, copying, accessors and lazy initialization
// of the half-matrix.
package hmat

import (
	"github.com/katalvlaran/octlat/comp"
)

// NewTop returns the unconstrained octagon matrix over dim variables in
// sparse form: an empty partition, every variable independent, every
// bound implicitly +∞ with a zero diagonal. O(n²) allocation, O(1)
// initialization — undefined entries are never read.
func NewTop(dim int) *Mat {
	return &Mat{
		dim:    dim,
		bounds: make([]float64, MatSize(dim)),
		dense:  false,
		part:   comp.NewPartition(),
	}
}

// NewDenseTop returns the unconstrained matrix in dense form: diagonal
// zero, all other entries +∞.
func NewDenseTop(dim int) *Mat {
	m := &Mat{
		dim:    dim,
		bounds: make([]float64, MatSize(dim)),
		dense:  true,
	}
	m.fillTop()

	return m
}

// fillTop overwrites every stored entry with its top value.
func (m *Mat) fillTop() {
	inf := pinf()
	for i := range m.bounds {
		m.bounds[i] = inf
	}
	n2 := 2 * m.dim
	for i := 0; i < n2; i++ {
		m.bounds[MatPos(i, i)] = 0
	}
}

// Clone returns a deep copy: bounds buffer and partition are owned
// exclusively by the copy (spec'd memory discipline — values never
// share buffers).
func (m *Mat) Clone() *Mat {
	c := &Mat{
		dim:    m.dim,
		bounds: make([]float64, len(m.bounds)),
		dense:  m.dense,
	}
	copy(c.bounds, m.bounds)
	if m.part != nil {
		c.part = m.part.Clone()
	}

	return c
}

// view is a read snapshot used by O(n²) loops: it resolves implicit
// top entries without per-access Find calls.
type view struct {
	b     []float64
	idx   []int // var → component, -1 independent; nil for dense
	dense bool
}

func (m *Mat) view() view {
	v := view{b: m.bounds, dense: m.dense}
	if !m.dense {
		v.idx = m.part.Index(m.dim)
	}

	return v
}

// at returns the bound for (i,j), resolving undefined sparse entries to
// their implicit value (0 on the diagonal, +∞ elsewhere).
func (vw view) at(i, j int) float64 {
	if vw.dense {
		return vw.b[MatPos2(i, j)]
	}
	vi, vj := i>>1, j>>1
	if vi == vj {
		if vw.idx[vi] >= 0 {
			return vw.b[MatPos2(i, j)]
		}
		if i == j {
			return 0
		}

		return pinf()
	}
	ci := vw.idx[vi]
	if ci >= 0 && ci == vw.idx[vj] {
		return vw.b[MatPos2(i, j)]
	}

	return pinf()
}

// At returns the bound for an arbitrary literal pair (i,j): an upper
// bound on Lⱼ − Lᵢ. One-off accessor; loops should grab a view.
func (m *Mat) At(i, j int) float64 {
	return m.view().at(i, j)
}

// Set stores v at (i,j) unconditionally. The relation must already be
// materialized in sparse mode (EnsureSelf / EnsureRelated).
func (m *Mat) Set(i, j int, v float64) {
	m.bounds[MatPos2(i, j)] = v
}

// Tighten lowers the bound at (i,j) to v when v is smaller. The
// relation must already be materialized in sparse mode.
func (m *Mat) Tighten(i, j int, v float64) {
	at := MatPos2(i, j)
	if v < m.bounds[at] {
		m.bounds[at] = v
	}
}

// iniRelation materializes the four cross entries between variables
// u and v (diagonal entries when u == v), mirroring the lazy scheme of
// the decomposed representation: fresh entries are top.
func (m *Mat) iniRelation(u, v int) {
	if u == v {
		m.iniSelfRelation(u)

		return
	}
	inf := pinf()
	m.bounds[MatPos2(2*u, 2*v)] = inf
	m.bounds[MatPos2(2*u+1, 2*v+1)] = inf
	m.bounds[MatPos2(2*u, 2*v+1)] = inf
	m.bounds[MatPos2(2*u+1, 2*v)] = inf
}

// iniSelfRelation materializes variable v's own entries: zero diagonal,
// +∞ unary bounds.
func (m *Mat) iniSelfRelation(v int) {
	inf := pinf()
	m.bounds[MatPos(2*v, 2*v)] = 0
	m.bounds[MatPos(2*v+1, 2*v+1)] = 0
	m.bounds[MatPos(2*v, 2*v+1)] = inf
	m.bounds[MatPos(2*v+1, 2*v)] = inf
}

// iniCompRelations materializes every cross entry between two
// components about to merge.
func (m *Mat) iniCompRelations(c1, c2 *comp.List) {
	for _, u := range c1.Vars() {
		for _, v := range c2.Vars() {
			if u != v {
				m.iniRelation(u, v)
			}
		}
	}
}

// iniCompElemRelation materializes every cross entry between component
// c and the single variable j joining it.
func (m *Mat) iniCompElemRelation(c *comp.List, j int) {
	for _, u := range c.Vars() {
		if u != j {
			m.iniRelation(u, j)
		}
	}
}

// EnsureSelf guarantees that variable v belongs to some component, so
// its unary bounds are materialized and writable. No-op in dense mode.
func (m *Mat) EnsureSelf(v int) {
	if m.dense || m.part.Find(v) >= 0 {
		return
	}
	m.iniSelfRelation(v)
	m.part.Add(comp.NewList(v))
}

// EnsureRelated guarantees that u and v share a component, merging and
// materializing as needed. This is the sparse bookkeeping behind adding
// a binary constraint. No-op in dense mode.
func (m *Mat) EnsureRelated(u, v int) {
	if m.dense || u == v {
		m.EnsureSelf(u)

		return
	}
	cu, cv := m.part.Find(u), m.part.Find(v)
	switch {
	case cu < 0 && cv < 0:
		// Both independent: a fresh two-variable component.
		m.iniSelfRelation(u)
		m.iniSelfRelation(v)
		m.iniRelation(u, v)
		m.part.Add(comp.NewList(u, v))
	case cu < 0:
		// u joins v's component.
		m.iniSelfRelation(u)
		m.iniCompElemRelation(m.part.Comp(cv), u)
		m.part.Insert(u, cv)
	case cv < 0:
		// v joins u's component.
		m.iniSelfRelation(v)
		m.iniCompElemRelation(m.part.Comp(cu), v)
		m.part.Insert(v, cu)
	case cu != cv:
		// Two live components merge.
		m.iniCompRelations(m.part.Comp(cu), m.part.Comp(cv))
		m.part.Union(cu, cv)
	}
	m.MaybeDensify()
}

// trivialRelation reports whether every materialized entry between u
// and v still holds its top value.
func (m *Mat) trivialRelation(u, v int) bool {
	if u == v {
		return m.bounds[MatPos(2*u, 2*u)] == 0 &&
			m.bounds[MatPos(2*u+1, 2*u+1)] == 0 &&
			isInf(m.bounds[MatPos(2*u, 2*u+1)]) &&
			isInf(m.bounds[MatPos(2*u+1, 2*u)])
	}

	return isInf(m.bounds[MatPos2(2*u, 2*v)]) &&
		isInf(m.bounds[MatPos2(2*u+1, 2*v+1)]) &&
		isInf(m.bounds[MatPos2(2*u, 2*v+1)]) &&
		isInf(m.bounds[MatPos2(2*u+1, 2*v)])
}

// ConvertToDense materializes every undefined entry (top off-diagonal,
// zero diagonal) and switches to dense mode. When keepPartition is set
// the partition is retained for callers that still want the component
// structure (e.g. to hand it back after a dense intermezzo); the matrix
// itself stops consulting it.
func (m *Mat) ConvertToDense(keepPartition bool) *comp.Partition {
	saved := m.part
	if m.dense {
		if !keepPartition {
			return nil
		}

		return saved
	}
	vw := m.view()
	n2 := 2 * m.dim
	// Materialize row by row; vw.at resolves the undefined slots.
	var i, j, br int
	for i = 0; i < n2; i++ {
		br = i | 1
		for j = 0; j <= br; j++ {
			m.bounds[MatPos(i, j)] = vw.at(i, j)
		}
	}
	m.dense = true
	m.part = nil
	if !keepPartition {
		return nil
	}

	return saved
}

// MaybeDensify applies the transition policy: once components cover at
// least half of the variables, per-component bookkeeping stops paying
// for itself and the matrix converts to dense in place.
func (m *Mat) MaybeDensify() {
	if m.dense {
		return
	}
	if DenseRatioDen*m.part.TotalSize() >= DenseRatioNum*m.dim {
		m.ConvertToDense(false)
	}
}
