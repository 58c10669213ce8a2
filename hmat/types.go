// Package hmat defines the half-matrix container and its storage
// policy constants.
package hmat

import (
	"math"

	"github.com/katalvlaran/octlat/comp"
)

// DenseRatioNum / DenseRatioDen encode the sparse→dense transition
// threshold: a matrix densifies once Σ kᵢ ≥ dim·Num/Den, i.e. once
// components cover at least half of the variables.
const (
	DenseRatioNum = 1
	DenseRatioDen = 2
)

// Mat is a half-matrix over 2·dim literals.
//
// Invariants:
//   - len(bounds) == MatSize(dim).
//   - dense==true  ⇒ every stored entry is meaningful; part is nil.
//   - dense==false ⇒ part is non-nil; an entry is meaningful only when
//     its two variables share a component (or are the same variable and
//     that variable is in some component); all other entries are
//     physically undefined and implicitly top.
//   - Coherence: the stored entry at MatPos2(i,j) represents both
//     (i,j) and (j⊕1, i⊕1), except on the diagonal, where (i,i) and
//     (i⊕1,i⊕1) have separate slots.
type Mat struct {
	dim    int
	bounds []float64
	dense  bool
	part   *comp.Partition // nil iff dense
}

// Dim returns the number of variables.
func (m *Mat) Dim() int { return m.dim }

// IsDense reports the storage mode.
func (m *Mat) IsDense() bool { return m.dense }

// Part exposes the component partition; nil for dense matrices.
// Callers must not mutate it directly — use the EnsureXxx helpers so
// that lazily materialized entries stay in sync with the partition.
func (m *Mat) Part() *comp.Partition { return m.part }

// pinf returns +∞, the absent-constraint bound.
func pinf() float64 { return math.Inf(1) }

// isInf reports whether x is the absent-constraint bound.
func isInf(x float64) bool { return math.IsInf(x, 1) }
