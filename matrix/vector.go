// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const (
	opMaxAbsDiff = "MaxAbsDiff"
	opL1Diff     = "L1Diff"
)

// validatePair checks that both vectors are non-nil and equally long.
func validatePair(tag string, a, b []float64) error {
	if a == nil || b == nil {
		return matrixErrorf(tag, ErrNilMatrix)
	}
	if len(a) != len(b) {
		return fmt.Errorf("%s: len %d vs %d: %w", tag, len(a), len(b), ErrDimensionMismatch)
	}

	return nil
}

// MaxAbsDiff returns the max-norm distance max_i |a[i]-b[i]|.
// Two empty vectors are at distance 0.
// Complexity: O(n).
func MaxAbsDiff(a, b []float64) (float64, error) {
	if err := validatePair(opMaxAbsDiff, a, b); err != nil {
		return 0, err
	}
	var d, maxD float64
	for i := range a {
		d = math.Abs(a[i] - b[i])
		if d > maxD {
			maxD = d
		}
	}

	return maxD, nil
}

// L1Diff returns the L1 distance Σ_i |a[i]-b[i]| (twice the total variation
// distance when a and b are distributions).
// Complexity: O(n).
func L1Diff(a, b []float64) (float64, error) {
	if err := validatePair(opL1Diff, a, b); err != nil {
		return 0, err
	}
	sum := ZeroSum
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}

	return sum, nil
}

// VecSum returns Σ_i x[i] accumulated in index order.
func VecSum(x []float64) float64 {
	sum := ZeroSum
	for _, v := range x {
		sum += v
	}

	return sum
}
