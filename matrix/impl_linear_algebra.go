// SPDX-License-Identifier: MIT
// Package matrix provides universal matrix-vector kernels on any Matrix
// implementation. All functions perform strict fail-fast validation and
// return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare the canonical products used by the Markov solver: MatVec (A·x)
//     and VecMat (xᵀ·A, one power-iteration step).
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial value for dot-product accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec  = "MatVec"
	opVecMat  = "VecMat"
	opRowSums = "RowSums"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// dot returns Σ_j row[j]·x[j] accumulated in increasing j.
func dot(row, x []float64) float64 {
	acc := ZeroSum
	for j, v := range row {
		acc += v * x[j]
	}

	return acc
}

// MatVec computes y = m · x for a column vector x (y[i] is the dot product
// of row i with x).
//
// Contract: len(x) == m.Cols(); the result has m.Rows() entries.
// A *Dense is read through row sub-slices of its buffer; any other Matrix is
// copied one row at a time through At. Both paths feed the same dot helper,
// so they agree bit for bit.
//
// Errors: ErrNilMatrix (nil m or x), ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r+c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		for i := range y {
			y[i] = dot(d.data[i*cols:(i+1)*cols], x)
		}

		return y, nil
	}

	row := make([]float64, cols)
	var err error
	for i := range y {
		for j := range row {
			if row[j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
		}
		y[i] = dot(row, x)
	}

	return y, nil
}

// VecMat computes the row-vector product y = xᵀ * m.
// MAIN DESCRIPTION:
//   - y[j] = Σ_i x[i]·m[i,j]; this is one step of the Markov power iteration
//     (a distribution over states pushed through a row-stochastic matrix).
//
// Implementation:
//   - Stage 1: validate m non-nil and len(x) == m.Rows().
//   - Stage 2: fast-path for *Dense walks the buffer row by row (i outer, j
//     inner) so memory is read sequentially; rows with x[i]==0 are skipped.
//   - Stage 3: fallback uses At with the same i→j order.
//
// Inputs:
//   - x: row vector of length m.Rows().
//   - m: any Matrix.
//
// Returns:
//   - []float64 of length m.Cols(); x and m are not mutated.
//
// Errors:
//   - ErrNilMatrix (nil m or nil x), ErrDimensionMismatch (len(x) != Rows).
//
// Determinism:
//   - Each y[j] accumulates its terms in increasing i, in both paths.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func VecMat(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols) // zero-initialized accumulators

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var xv float64
		for i = 0; i < d.r; i++ {
			xv = x[i]
			if xv == 0 {
				continue
			}
			base = i * d.c
			for j = 0; j < d.c; j++ {
				y[j] += xv * d.data[base+j]
			}
		}

		return y, nil
	}

	var i, j int
	var mv, xv float64
	var err error
	for i = 0; i < rows; i++ {
		xv = x[i]
		if xv == 0 {
			continue
		}
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opVecMat, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[j] += xv * mv
		}
	}

	return y, nil
}
