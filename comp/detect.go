// SPDX-License-Identifier: MIT
// Package comp: connected-component re-detection.
//
// Removing a dimension can disconnect the component it belonged to; the
// remaining members must then be regrouped according to the finite
// bounds that actually survive. Detect performs that regrouping with a
// plain BFS over the "has a finite relation" predicate.
package comp

// Detect partitions vars into connected components of the relation
// reported by related. related(u,v) must be symmetric; it is consulted
// only for u != v. self(v) reports whether v carries a finite unary
// bound: a variable with no surviving relation AND no unary bound is
// left independent, while a self-constrained one keeps a singleton
// component so its stored bounds stay meaningful. The result lists
// follow the package ordering invariants (sorted members, by-Min
// component order).
//
// Complexity: O(k²) calls to related for k = len(vars); memory O(k).
func Detect(vars []int, related func(u, v int) bool, self func(v int) bool) *Partition {
	p := NewPartition()
	if len(vars) == 0 {
		return p
	}

	visited := make(map[int]bool, len(vars))

	// Traverse every seed variable.
	for _, seed := range vars {
		if visited[seed] {
			continue
		}
		visited[seed] = true

		// BFS to collect one component of the finite-relation graph.
		queue := []int{seed}
		members := NewList(seed)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range vars {
				if visited[v] || v == u {
					continue
				}
				if !related(u, v) {
					continue
				}
				visited[v] = true
				members.Insert(v)
				queue = append(queue, v)
			}
		}

		// Singletons with no surviving relation and no unary bound stay
		// independent: a 1-element top component carries no information
		// the implicit representation does not.
		if members.Size() > 1 || self(seed) {
			p.Add(members)
		}
	}

	return p
}
