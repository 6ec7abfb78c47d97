// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// tb is the subset of testing.TB our helpers need (shared by tests and benchmarks).
type tb interface {
	Helper()
	Fatalf(format string, args ...any)
}

// mustFromRows builds a *Matrix from row literals or fails the test.
func mustFromRows(t tb, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// mustNew allocates an r×c zero matrix or fails the test.
func mustNew(t tb, r, c int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(r, c)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// fillRand fills m with deterministic values in [-5, 5) from the given seed.
func fillRand(m *matrix.Matrix, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	m.Apply(func(_, _ int, _ float64) float64 {
		return rng.Float64()*10 - 5
	})
}

// toGonum copies m into a gonum Dense for cross-checking.
func toGonum(m *matrix.Matrix) *mat.Dense {
	r, c := m.Shape()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		data = append(data, m.RawRowView(i)...)
	}

	return mat.NewDense(r, c, data)
}

// requireMatchesGonum asserts that m and g agree element-wise within tol.
func requireMatchesGonum(t *testing.T, g mat.Matrix, m *matrix.Matrix, tol float64) {
	t.Helper()
	gr, gc := g.Dims()
	require.Equal(t, gr, m.Rows())
	require.Equal(t, gc, m.Cols())
	m.Do(func(i, j int, v float64) bool {
		require.InDelta(t, g.At(i, j), v, tol, "cell (%d,%d)", i, j)
		return true
	})
}

// requireRows asserts m holds exactly the given rows (within the package Epsilon).
func requireRows(t *testing.T, want [][]float64, m *matrix.Matrix) {
	t.Helper()
	require.True(t, mustFromRows(t, want).Equal(m), "want %v, got\n%s", want, m)
}
