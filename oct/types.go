// Package oct defines the domain value, the manager with its policy
// options, and the package sentinel errors.
package oct

import (
	"errors"

	"github.com/katalvlaran/octlat/hmat"
)

// Sentinel errors for octagon operations.
var (
	// ErrBadDimension indicates a variable index outside [0, dim).
	ErrBadDimension = errors.New("oct: variable index out of range")
)

// DEFAULTS - single source of truth for zero-value manager behavior.
const (
	// DefaultAlgorithm ≥ 0 means "close lazily before operations that
	// benefit from the normal form" — the precise mode. Negative values
	// skip automatic closure and trade precision for speed.
	DefaultAlgorithm = 0
)

// panic messages for programmer errors (no magic strings).
const (
	panicDimMismatch = "oct: operands have different dimensions"
)

// Oct is one octagon value over dim variables, the first intdim of
// which are integer-typed.
//
// Invariants:
//   - m == nil && closed == nil ⇔ the value is ⊥.
//   - closed, when non-nil, is in strong closed form and denotes the
//     same set of points as m.
type Oct struct {
	dim    int
	intdim int
	m      *hmat.Mat // latest constraints, possibly un-closed
	closed *hmat.Mat // cached strong closure
}

// Dim returns the number of variables.
func (o *Oct) Dim() int { return o.dim }

// IntDim returns how many leading variables are integer-typed.
func (o *Oct) IntDim() int { return o.intdim }

// isBottom reports the definitive-⊥ representation (both matrices nil).
func (o *Oct) isBottom() bool { return o.m == nil && o.closed == nil }

// matrix returns the best available matrix: the closed form when
// cached, the raw constraints otherwise; nil on ⊥.
func (o *Oct) matrix() *hmat.Mat {
	if o.closed != nil {
		return o.closed
	}

	return o.m
}

// Result carries the per-operation precision flags, reset at each
// entry point.
//
//   - Exact - the result is exactly the concrete outcome on ℚ.
//   - Best  - the result is the best the octagon domain can express.
//   - Conv  - finite-precision arithmetic rounded some bound.
type Result struct {
	Exact, Best, Conv bool
}

// Option configures a Manager.
type Option func(*Options)

// Options stores the effective manager configuration.
type Options struct {
	algorithm int
}

// WithAlgorithm sets the closure policy level. Values ≥ 0 enable
// automatic closure before precision-sensitive operations; negative
// values disable it.
func WithAlgorithm(level int) Option {
	return func(o *Options) { o.algorithm = level }
}

// WithLazyClosure disables automatic closure entirely; predicates on
// un-closed values then answer conservatively and clear the Best flag.
func WithLazyClosure() Option {
	return func(o *Options) { o.algorithm = -1 }
}

// Manager carries policy, result flags and the scratch buffer shared
// by expression classification. One call at a time per manager.
type Manager struct {
	opts Options
	// Result holds the flags of the most recent operation.
	Result Result
	// tmp is the classification scratch buffer, ≥ 2(dim+1) entries,
	// grown on demand and reused across calls.
	tmp []float64
}

// NewManager builds a manager with the documented defaults applied
// first and the given options on top, last-writer-wins.
func NewManager(opts ...Option) *Manager {
	m := &Manager{opts: Options{algorithm: DefaultAlgorithm}}
	for _, opt := range opts {
		opt(&m.opts)
	}

	return m
}

// enter resets the result flags and sizes the scratch buffer for a
// dim-variable operation. Every public entry point calls it first.
func (man *Manager) enter(dim int) {
	man.Result = Result{Exact: true, Best: true}
	if need := 2 * (dim + 1); len(man.tmp) < need {
		man.tmp = make([]float64, need)
	}
}

// flagIncomplete records a result that may be less precise than the
// best expressible one (integer dimensions, inexact sub-steps).
func (man *Manager) flagIncomplete() {
	man.Result.Exact = false
	man.Result.Best = false
}

// flagAlgo records a precision loss caused by skipping closure.
func (man *Manager) flagAlgo() {
	man.Result.Exact = false
	man.Result.Best = false
}

// flagConv records a rounding of some bound.
func (man *Manager) flagConv() {
	man.Result.Conv = true
	man.Result.Exact = false
}

// autoClose reports whether the policy asks for closure caching.
func (man *Manager) autoClose() bool { return man.opts.algorithm >= 0 }
