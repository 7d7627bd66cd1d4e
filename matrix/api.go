// SPDX-License-Identifier: MIT
// Package matrix — reductions built on the canonical kernels.
//
// AI-Hints:
//   - A row-stochastic matrix has RowSums == ones(rows); ValidateRowStochastic
//     relies on exactly that.

package matrix

// ones returns a vector of n ones.
func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1.0
	}

	return v
}

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Implementation: MatVec(m, ones(cols)), so both the *Dense fast path and the
// interface fallback are shared with the kernel.
// Complexity: O(rc).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	sums, err := MatVec(m, ones(m.Cols()))
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	return sums, nil
}
