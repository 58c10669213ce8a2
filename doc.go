// Package octlat is a relational numerical abstract domain toolkit:
// an optimized octagon domain for static analyzers and verifiers.
//
// 🚀 What is octlat?
//
//	An octagon abstracts a set of program states by constraints of the
//	form ±Xi ±Xj ≤ c over n real/integer variables. octlat answers the
//	questions an analyzer asks about such sets:
//
//	  • Ordering: is one octagon included in another? Are they equal?
//	  • Combination: meet, join, widening (with thresholds), narrowing
//	  • Transfer: assignments, linear guards, bound extraction
//	  • Resizing: add/remove/permute variables, forget, expand, fold
//
// ✨ Why choose octlat?
//
//   - Strong closure       — every answer is computed on the unique
//     normal form (shortest paths + strengthening), so comparisons are
//     sound and as precise as the domain allows on ℚ
//   - Decomposition        — variables that never interact live in
//     separate components; closure runs per component in O(Σ kᵢ³)
//     instead of O(n³)
//   - Incremental closure  — touching one variable re-closes in O(n²)
//
// Under the hood, everything is organized under four subpackages:
//
//	comp/   — component partition: which variables are jointly constrained
//	hmat/   — half-matrix storage, closure kernels, matrix-level lattice
//	linear/ — interval, linear expression and constraint value types
//	oct/    — the domain itself: values, manager, predicates, transfer
//
// Quick ASCII example:
//
//	   X₀ − X₁ ≤ 2        closure derives
//	   X₁ − X₂ ≤ 3   ──►  X₀ − X₂ ≤ 5
//
// Dive into the package docs for the representation details (literal
// encoding, coherence, the half-matrix index) and the closure algorithm.
//
//	go get github.com/katalvlaran/octlat
package octlat
