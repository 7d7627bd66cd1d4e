package markov

import (
	"errors"

	"github.com/katalvlaran/helloworld/matrix"
)

// Sentinel errors returned by the solver.
var (
	// ErrNonConvergence indicates that successive iterates were still farther
	// apart than the tolerance after the maximum number of multiplications.
	ErrNonConvergence = errors.New("markov: did not converge within iteration bound")

	// ErrDimensionMismatch indicates a non-square matrix or a vector whose
	// length differs from the number of states. It is the matrix package
	// sentinel, so errors.Is matches either name.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrNaNInf indicates a non-finite value in the input vector or an iterate.
	ErrNaNInf = matrix.ErrNaNInf

	// ErrNotStochastic is returned under WithStochasticCheck for invalid rows.
	ErrNotStochastic = matrix.ErrNotStochastic
)

// Operation tags for error wrapping.
const (
	opSolve     = "markov.Solve"
	opVectorDot = "markov.VectorDot"
	opChain     = "markov.Chain"
)

// Result pairs the converged (or last computed) distribution with the number
// of vector-matrix multiplications performed to reach it.
type Result struct {
	// Vector is p_{k} for the final k. It is freshly allocated.
	Vector []float64

	// Iterations is the 1-based multiplication count, including the one that
	// detected convergence. On ErrNonConvergence it equals the cap.
	Iterations int

	// Residual is the distance between the last two iterates under the
	// configured norm.
	Residual float64
}
