// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/helloworld/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Kernels then take the At/Set fallback instead of the *Dense fast-path,
// which lets tests assert both paths agree.
type hide struct{ matrix.Matrix }

// MustRows builds a *Dense from row literals or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// transition3 is the ergodic 3-state chain used across the package tests.
func transition3(t *testing.T) *matrix.Dense {
	return MustRows(t, [][]float64{
		{0.2, 0.6, 0.2},
		{0.1, 0.5, 0.4},
		{0.3, 0.3, 0.4},
	})
}
