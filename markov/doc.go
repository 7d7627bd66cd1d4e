// Package markov computes stationary distributions of finite Markov chains
// by power iteration.
//
// Overview:
//
//   - A chain is described by a square, row-stochastic transition matrix M
//     (M[i,j] is the probability of moving from state i to state j) and a
//     starting distribution p₀ over its states.
//   - Solve repeatedly applies one transition, p_{k+1} = p_k · M, until two
//     successive iterates are closer than a tolerance, and returns the last
//     iterate together with the 1-based number of multiplications performed
//     (the multiplication that detected convergence is counted).
//   - VectorDot performs a single step without iterating; it is the natural
//     way to check a candidate v satisfies v · M == v.
//   - Chain is an immutable, builder-style value holding a matrix and a
//     vector; WithMatrix and WithVector return new Chains.
//
// Convergence policy:
//
//   - The default check is max_i |p_{k+1}[i] - p_k[i]| ≤ DefaultTolerance,
//     capped at DefaultMaxIterations multiplications.
//   - WithExactEquality() restores strict element-wise equality. Floating-point
//     rounding can make an ergodic chain oscillate forever under that policy,
//     so the iteration cap still applies.
//   - Periodic chains (e.g. two states swapping) never converge from a
//     non-stationary start; Solve reports ErrNonConvergence instead of hanging.
//
// Performance and complexity:
//
//   - Time:  O(k · n²) for k iterations on an n-state chain.
//   - Space: O(n²) for the private copy of the matrix plus O(n) per iterate.
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrDimensionMismatch: the matrix is not square or the vector length
//     differs from the number of states.
//   - ErrNaNInf: the starting vector holds NaN/±Inf, or an iterate overflowed.
//   - ErrNotStochastic: WithStochasticCheck was requested and a row is invalid.
//   - ErrNonConvergence: the cap was reached; the Result still carries the
//     last iterate.
//
// Example usage:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{
//	    {0.2, 0.6, 0.2},
//	    {0.1, 0.5, 0.4},
//	    {0.3, 0.3, 0.4},
//	})
//	res, err := markov.Solve(m, []float64{1, 0, 0})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Vector, res.Iterations) // ≈ [0.1915 0.4468 0.3617]
package markov
