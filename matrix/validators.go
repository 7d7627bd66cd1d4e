// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/stochastic checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// AI-Hints:
//  - Use ValidateVecLen for any MatVec/VecMat-like operations to avoid ad hoc length code.
//  - Use ValidateRowStochastic before treating a matrix as a transition table;
//    it reuses RowSums (and so MatVec) for the row totals.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Square → rows).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return fmt.Errorf("ValidateVecLen: len %d, want %d: %w", len(x), n, ErrDimensionMismatch)
	}

	return nil
}

// ValidateFiniteVec rejects vectors holding NaN or ±Inf.
// Time: O(n).
func ValidateFiniteVec(x []float64) error {
	for i, v := range x {
		if isNonFinite(v) {
			return fmt.Errorf("ValidateFiniteVec: index %d: %w", i, ErrNaNInf)
		}
	}

	return nil
}

// ValidateRowStochastic checks that m is square, every entry is ≥ 0 and every
// row sums to 1 within tol.
//
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: scan entries row by row for negatives; first one wins.
//   - Stage 3: RowSums, then compare each sum against 1.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNotStochastic (with row index).
// Complexity: O(n^2).
func ValidateRowStochastic(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.Rows()

	var v float64
	var err error
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateRowStochastic", err)
			}
			if v < 0 {
				return fmt.Errorf("ValidateRowStochastic: entry (%d,%d)=%g is negative: %w", i, j, v, ErrNotStochastic)
			}
		}
	}

	sums, err := RowSums(m)
	if err != nil {
		return validatorErrorf("ValidateRowStochastic", err)
	}
	for i, sum := range sums {
		if math.Abs(sum-1.0) > tol {
			return fmt.Errorf("ValidateRowStochastic: row %d sums to %g: %w", i, sum, ErrNotStochastic)
		}
	}

	return nil
}
