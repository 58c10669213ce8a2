// Package comp maintains the component partition of an octagon: the
// grouping of variables that share at least one finite constraint.
//
// 🚀 What is a component partition?
//
//	A partition is a set of pairwise-disjoint, sorted lists of variable
//	indices. Two variables in the same list may be related by a finite
//	bound; variables in no list are independent and implicitly
//	unconstrained (top). The half-matrix only materializes entries whose
//	two variables share a component, which is what lets closure run per
//	component in O(Σ kᵢ³) instead of O(n³).
//
// ✨ Key operations:
//   - Find / IsConnected   — membership and joint-membership queries
//   - Union                — order-preserving merge in O(k₁+k₂)
//   - UnionOf / RefineOf   — partition union (meet) and common
//     refinement (join) of two partitions
//   - Detect               — rebuild components from observed finite
//     relations after a structural change (dimension removal)
//
// Components are always kept sorted by variable index, and the list of
// components is kept sorted by smallest member, so that iteration order
// is deterministic and structural comparison is cheap.
//
// See hmat for the half-matrix that consumes this partition.
package comp
