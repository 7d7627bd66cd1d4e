package markov

import (
	"fmt"

	"github.com/katalvlaran/helloworld/matrix"
)

// Solve runs power iteration from v until the distribution stops changing.
// MAIN DESCRIPTION:
//   - p₀ = v; p_{k+1} = p_k · m; stop at the first k with
//     dist(p_{k+1}, p_k) ≤ tol and return (p_{k+1}, k+1).
//
// Implementation:
//   - Stage 1: resolve options; validate m square, len(v) == n, v finite,
//     and (optionally) rows stochastic.
//   - Stage 2: snapshot m (Clone) and v (copy) so the caller's values are
//     never read again nor mutated.
//   - Stage 3: iterate with matrix.VecMat up to the cap.
//
// Behavior highlights:
//   - A vector that is already stationary returns after exactly 1 iteration.
//   - On the cap, the last iterate is returned along with ErrNonConvergence.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrNotStochastic,
//     ErrNonConvergence (all wrapped with "markov.Solve").
//
// Complexity:
//   - Time O(k·n²), Space O(n²).
func Solve(m matrix.Matrix, v []float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if err := validateSolve(m, v, o); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	tm := m.Clone()
	p := make([]float64, len(v))
	copy(p, v)

	var next []float64
	var dist float64
	var err error
	for k := 1; k <= o.maxIter; k++ {
		next, err = matrix.VecMat(p, tm)
		if err != nil {
			return Result{}, fmt.Errorf("%s: iteration %d: %w", opSolve, k, err)
		}
		if err = matrix.ValidateFiniteVec(next); err != nil {
			return Result{Vector: p, Iterations: k - 1}, fmt.Errorf("%s: iteration %d: %w", opSolve, k, err)
		}
		dist, err = o.distance(p, next)
		if err != nil {
			return Result{}, fmt.Errorf("%s: iteration %d: %w", opSolve, k, err)
		}
		if dist <= o.tol {
			return Result{Vector: next, Iterations: k, Residual: dist}, nil
		}
		p = next
	}

	return Result{Vector: p, Iterations: o.maxIter, Residual: dist},
		fmt.Errorf("%s: %d iterations, last step %g > %g: %w", opSolve, o.maxIter, dist, o.tol, ErrNonConvergence)
}

// validateSolve applies the checks in priority order:
// nil → square → vector length → finite → stochastic.
func validateSolve(m matrix.Matrix, v []float64, o Options) error {
	if err := matrix.ValidateSquare(m); err != nil {
		return err
	}
	if err := matrix.ValidateVecLen(v, m.Rows()); err != nil {
		return err
	}
	if err := matrix.ValidateFiniteVec(v); err != nil {
		return err
	}
	if o.checkStochastic {
		if err := matrix.ValidateRowStochastic(m, o.stochasticTol); err != nil {
			return err
		}
	}

	return nil
}

// VectorDot performs a single transition step v · m without iterating.
// The matrix need not be square: the result has m.Cols() entries.
// A stationary v satisfies VectorDot(m, v) == v up to rounding.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(v) != m.Rows()), ErrNaNInf.
func VectorDot(m matrix.Matrix, v []float64) ([]float64, error) {
	if err := matrix.ValidateFiniteVec(v); err != nil {
		return nil, fmt.Errorf("%s: %w", opVectorDot, err)
	}
	out, err := matrix.VecMat(v, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opVectorDot, err)
	}

	return out, nil
}
