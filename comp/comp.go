// SPDX-License-Identifier: MIT
// Package comp: component lists and the partition container.
//
// Contract:
//   - A List holds distinct variable indices in ascending order.
//   - Lists of one Partition are pairwise disjoint and ordered by their
//     smallest member.
//   - All mutators preserve both invariants.
package comp

import "sort"

// List is one component: the sorted set of variable indices that are
// (potentially) jointly constrained.
type List struct {
	vars []int // ascending, distinct
}

// NewList builds a component from the given variables.
// Input need not be sorted; duplicates are collapsed.
func NewList(vars ...int) *List {
	l := &List{vars: make([]int, 0, len(vars))}
	for _, v := range vars {
		l.Insert(v)
	}

	return l
}

// Size returns the number of variables in the component.
func (l *List) Size() int { return len(l.vars) }

// Min returns the smallest variable index; -1 for an empty component.
func (l *List) Min() int {
	if len(l.vars) == 0 {
		return -1
	}

	return l.vars[0]
}

// Has reports whether v belongs to the component.
// Complexity: O(log k) via binary search on the sorted slice.
func (l *List) Has(v int) bool {
	i := sort.SearchInts(l.vars, v)

	return i < len(l.vars) && l.vars[i] == v
}

// Insert adds v keeping ascending order; no-op if already present.
// Complexity: O(k) worst case (shift), O(log k) when already present.
func (l *List) Insert(v int) {
	i := sort.SearchInts(l.vars, v)
	if i < len(l.vars) && l.vars[i] == v {
		return // already a member
	}
	l.vars = append(l.vars, 0)
	copy(l.vars[i+1:], l.vars[i:])
	l.vars[i] = v
}

// Remove deletes v from the component; no-op if absent.
func (l *List) Remove(v int) {
	i := sort.SearchInts(l.vars, v)
	if i >= len(l.vars) || l.vars[i] != v {
		return
	}
	l.vars = append(l.vars[:i], l.vars[i+1:]...)
}

// ToSortedArray returns a fresh copy of the member indices, ascending.
func (l *List) ToSortedArray() []int {
	out := make([]int, len(l.vars))
	copy(out, l.vars)

	return out
}

// Vars exposes the internal sorted slice for read-only iteration in hot
// loops. Callers MUST NOT mutate the result.
func (l *List) Vars() []int { return l.vars }

// merge folds other into l, preserving ascending order.
// Complexity: O(k₁+k₂) — a single linear merge of two sorted slices.
func (l *List) merge(other *List) {
	a, b := l.vars, other.vars
	out := make([]int, 0, len(a)+len(b))
	var i, j int // merge cursors
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default: // equal members collapse (disjointness normally rules this out)
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	l.vars = out
}

// clone returns a deep copy of the component.
func (l *List) clone() *List {
	return &List{vars: l.ToSortedArray()}
}

// Partition is an ordered collection of disjoint components.
type Partition struct {
	lists []*List // ordered by List.Min()
}

// NewPartition returns an empty partition (every variable independent).
func NewPartition() *Partition { return &Partition{} }

// Len returns the number of components.
func (p *Partition) Len() int { return len(p.lists) }

// Comp returns the component at index c. The index is only stable until
// the next structural mutation (Union, Detach, Add).
func (p *Partition) Comp(c int) *List { return p.lists[c] }

// TotalSize returns Σ kᵢ — the number of variables covered by any
// component. Drives the sparse→dense transition in hmat.
func (p *Partition) TotalSize() int {
	var total int
	for _, l := range p.lists {
		total += len(l.vars)
	}

	return total
}

// Find returns the index of the component containing v, or -1 when v is
// independent. Complexity: O(c·log k) over c components.
func (p *Partition) Find(v int) int {
	for i, l := range p.lists {
		if l.Has(v) {
			return i
		}
	}

	return -1
}

// IsConnected reports whether u and v share a component.
func (p *Partition) IsConnected(u, v int) bool {
	c := p.Find(u)

	return c >= 0 && p.lists[c].Has(v)
}

// Index returns a dense lookup table: Index()[v] is the component index
// of v, or -1 when independent. n is the total variable count.
// Use it to avoid repeated Find calls inside O(n²) loops.
func (p *Partition) Index(n int) []int {
	idx := make([]int, n)
	for v := range idx {
		idx[v] = -1
	}
	for c, l := range p.lists {
		for _, v := range l.vars {
			idx[v] = c
		}
	}

	return idx
}

// Add appends a new component, keeping the by-Min ordering.
// Returns the index of the inserted component.
func (p *Partition) Add(l *List) int {
	at := sort.Search(len(p.lists), func(i int) bool { return p.lists[i].Min() >= l.Min() })
	p.lists = append(p.lists, nil)
	copy(p.lists[at+1:], p.lists[at:])
	p.lists[at] = l

	return at
}

// Insert adds variable v to component c, preserving sorted order inside
// the component and the by-Min ordering of the partition.
func (p *Partition) Insert(v, c int) {
	l := p.lists[c]
	l.Insert(v)
	p.reorder(c)
}

// Union merges component b into component a (order-preserving merge)
// and removes b. Returns the index of the merged component.
// No-op when a == b.
func (p *Partition) Union(a, b int) int {
	if a == b {
		return a
	}
	la, lb := p.lists[a], p.lists[b]
	la.merge(lb)
	p.lists = append(p.lists[:b], p.lists[b+1:]...)
	if b < a {
		a-- // removal shifted the merged component left
	}
	p.reorder(a)

	return p.Find(la.Min())
}

// Detach removes v from whatever component holds it; a component left
// empty is dropped. Returns true when v was a member of some component.
func (p *Partition) Detach(v int) bool {
	c := p.Find(v)
	if c < 0 {
		return false
	}
	l := p.lists[c]
	l.Remove(v)
	if l.Size() == 0 {
		p.lists = append(p.lists[:c], p.lists[c+1:]...)

		return true
	}
	p.reorder(c)

	return true
}

// reorder restores the by-Min ordering after component c changed its
// smallest member. Single element rotation, O(c).
func (p *Partition) reorder(c int) {
	l := p.lists[c]
	p.lists = append(p.lists[:c], p.lists[c+1:]...)
	p.Add(l)
}

// Clone returns a deep copy of the partition.
func (p *Partition) Clone() *Partition {
	q := &Partition{lists: make([]*List, len(p.lists))}
	for i, l := range p.lists {
		q.lists[i] = l.clone()
	}

	return q
}

// Equal reports structural equality: same components, same members.
// The canonical ordering makes a positional comparison sufficient.
func (p *Partition) Equal(q *Partition) bool {
	if len(p.lists) != len(q.lists) {
		return false
	}
	for i, l := range p.lists {
		m := q.lists[i]
		if len(l.vars) != len(m.vars) {
			return false
		}
		for k, v := range l.vars {
			if m.vars[k] != v {
				return false
			}
		}
	}

	return true
}

// UnionOf returns the coarsest partition in which any two variables
// connected in either a or b are connected: the partition union used by
// meet and narrowing. Operands are not mutated.
func UnionOf(a, b *Partition) *Partition {
	u := a.Clone()
	for _, l := range b.lists {
		// Fold each component of b into u, merging every component of u
		// it touches into one.
		target := -1
		for _, v := range l.vars {
			c := u.Find(v)
			switch {
			case c < 0:
				if target < 0 {
					target = u.Add(NewList(v))
				} else {
					u.Insert(v, target)
					target = u.Find(v)
				}
			case target < 0:
				target = c
			case c != target:
				target = u.Union(target, c)
			}
		}
	}

	return u
}

// RefineOf returns the common refinement of a and b: variables stay
// connected only when connected in BOTH operands. Used by join and
// widening, where an entry is finite only when finite on both sides.
func RefineOf(a, b *Partition) *Partition {
	r := NewPartition()
	for _, la := range a.lists {
		for _, lb := range b.lists {
			// Intersect two sorted slices linearly.
			var common []int
			va, vb := la.vars, lb.vars
			var i, j int
			for i < len(va) && j < len(vb) {
				switch {
				case va[i] < vb[j]:
					i++
				case va[i] > vb[j]:
					j++
				default:
					common = append(common, va[i])
					i++
					j++
				}
			}
			if len(common) > 0 {
				r.Add(&List{vars: common})
			}
		}
	}

	return r
}
