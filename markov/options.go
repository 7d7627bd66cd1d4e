// Functional configuration for the power-iteration solver.
//
// Design goals (same rules as the matrix package):
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: WithX constructors panic only on nonsensical
//     values (programmer error); Solve itself never panics on user input.
//   - Last-writer-wins when the same option is given twice.

package markov

import (
	"fmt"
	"math"

	"github.com/katalvlaran/helloworld/matrix"
)

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultTolerance is the convergence threshold on the distance between
	// successive iterates. Small enough that float64 results agree with the
	// true fixed point to ~12 digits on well-mixed chains.
	DefaultTolerance = 1e-12

	// DefaultMaxIterations caps the number of multiplications.
	DefaultMaxIterations = 10000

	// DefaultStochasticTolerance is the row-sum slack used by WithStochasticCheck
	// when eps is zero.
	DefaultStochasticTolerance = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid  = "markov: WithTolerance: eps must be finite, non-negative"
	panicMaxIterInvalid    = "markov: WithMaxIterations: n must be >= 1"
	panicNormInvalid       = "markov: WithNorm: unknown norm"
	panicStochasticInvalid = "markov: WithStochasticCheck: eps must be finite, non-negative"
)

// Norm selects the distance used to compare successive iterates.
type Norm int

const (
	// NormMax compares with max_i |a[i]-b[i]| (default).
	NormMax Norm = iota
	// NormL1 compares with Σ_i |a[i]-b[i]|.
	NormL1
)

// String implements fmt.Stringer.
func (n Norm) String() string {
	switch n {
	case NormMax:
		return "max"
	case NormL1:
		return "l1"
	default:
		return fmt.Sprintf("Norm(%d)", int(n))
	}
}

// ParseNorm maps "max"/"inf" and "l1" to a Norm.
func ParseNorm(s string) (Norm, error) {
	switch s {
	case "max", "inf", "":
		return NormMax, nil
	case "l1":
		return NormL1, nil
	default:
		return NormMax, fmt.Errorf("markov: unknown norm %q", s)
	}
}

// Option mutates solver options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; entry points accept ...Option.
type Options struct {
	tol             float64 // >= 0; 0 means exact equality
	maxIter         int     // >= 1
	norm            Norm    // distance for the convergence check
	checkStochastic bool    // validate rows before iterating
	stochasticTol   float64 // row-sum slack when checkStochastic
}

// WithTolerance sets the convergence threshold.
// Iteration stops at the first k with dist(p_{k+1}, p_k) ≤ eps.
// Panics when eps is negative, NaN or ±Inf.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = eps }
}

// WithExactEquality stops only when two successive iterates are identical
// element by element. Equivalent to WithTolerance(0).
func WithExactEquality() Option {
	return WithTolerance(0)
}

// WithMaxIterations caps the number of multiplications. Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithNorm selects the distance used by the convergence check.
func WithNorm(n Norm) Option {
	if n != NormMax && n != NormL1 {
		panic(panicNormInvalid)
	}

	return func(o *Options) { o.norm = n }
}

// WithStochasticCheck validates the transition matrix before iterating:
// every entry ≥ 0 and every row sums to 1 within eps (DefaultStochasticTolerance
// when eps == 0).
func WithStochasticCheck(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicStochasticInvalid)
	}
	if eps == 0 {
		eps = DefaultStochasticTolerance
	}

	return func(o *Options) {
		o.checkStochastic = true
		o.stochasticTol = eps
	}
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIterations,
		norm:    NormMax,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // last-writer-wins
		}
	}

	return o
}

// distance evaluates the configured norm.
func (o Options) distance(a, b []float64) (float64, error) {
	if o.norm == NormL1 {
		return matrix.L1Diff(a, b)
	}

	return matrix.MaxAbsDiff(a, b)
}

// Tolerance reports the effective convergence threshold.
func (o Options) Tolerance() float64 { return o.tol }

// MaxIterations reports the effective iteration cap.
func (o Options) MaxIterations() int { return o.maxIter }

// Norm reports the effective distance.
func (o Options) Norm() Norm { return o.norm }

// NewOptions resolves opts against the defaults; useful for logging the
// effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}
