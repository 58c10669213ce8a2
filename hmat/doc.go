// Package hmat implements the half-matrix of an octagon and every
// matrix-level operation of the domain: strong closure, incremental
// closure, lattice operations and dimension surgery.
//
// 🚀 Representation
//
//	For n variables the matrix works over 2n "literals": literal 2k
//	denotes +Xₖ and literal 2k+1 denotes −Xₖ. The entry at (i,j) is an
//	upper bound on Lⱼ − Lᵢ. Coherence makes half of the square matrix
//	redundant — m[i,j] = m[j⊕1, i⊕1] — so only entries with j ≤ i|1 are
//	stored, 2n(n+1) float64 values in a flat buffer addressed by MatPos.
//
//	Bounds are IEEE doubles: +Inf is the absent constraint, sums
//	saturate through IEEE arithmetic, and a negative diagonal entry
//	signals unsatisfiability.
//
// ✨ Two storage modes:
//   - dense  — the full half-matrix buffer is meaningful.
//   - sparse — a comp.Partition lists which variables interact; only
//     entries whose variables share a component are meaningful, all
//     others are implicitly top and physically undefined. Closure and
//     binary operations then run per component in O(Σ kᵢ³).
//
// The sparse form shares the full-size buffer and materializes entries
// lazily as components grow or merge; ConvertToDense is therefore a
// single O(n²) initialization pass with no reshuffling.
//
// Strong closure is the Floyd–Warshall variant for octagons: one
// shortest-path pass per literal pivot, a strengthening pass after each
// variable, and an emptiness check on the diagonal. Incremental closure
// re-closes after a single-variable change in O(n²) by running only
// that variable's two pivots.
package hmat
