// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for comparison, element-wise
// arithmetic and multiplication.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestEqualTolerance(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{1 + 5e-8, 2}, {3, 4 - 5e-8}})
	c := mustFromRows(t, [][]float64{{1 + 2e-7, 2}, {3, 4}})

	require.True(t, a.Equal(b))
	require.True(t, matrix.Equal(a, b))
	require.False(t, a.Equal(c))
	require.True(t, matrix.EqualApprox(a, c, 1e-6))
}

func TestEqualDifferentShapes(t *testing.T) {
	a := mustNew(t, 2, 2)
	b := mustNew(t, 2, 3)
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(a.Transpose().Minor(0, 0))) // 1×1 vs 2×2
	require.False(t, a.Equal(matrix.Empty()))
	require.False(t, matrix.Empty().Equal(a))
	require.True(t, matrix.Empty().Equal(matrix.Empty()))
}

func TestAdd(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := matrix.Sum(a, b)
	require.NoError(t, err)
	requireRows(t, [][]float64{{6, 8}, {10, 12}}, sum)
	requireRows(t, [][]float64{{1, 2}, {3, 4}}, a) // facade leaves a alone

	require.NoError(t, a.Add(b))
	require.True(t, a.Equal(sum))
}

func TestAddDimensionMismatch(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, 3, 2)

	err := a.Add(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	requireRows(t, [][]float64{{1, 2}, {3, 4}}, a)

	_, err = matrix.Sum(a, matrix.Empty())
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSub(t *testing.T) {
	a := mustFromRows(t, [][]float64{{5, 6}, {7, 8}})
	b := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	requireRows(t, [][]float64{{4, 4}, {4, 4}}, matrix.Diff(a, b))
	a.Sub(b)
	requireRows(t, [][]float64{{4, 4}, {4, 4}}, a)
}

// TestSubMismatchIsNoOp pins the silent-skip behavior of Sub.
func TestSubMismatchIsNoOp(t *testing.T) {
	a := mustFromRows(t, [][]float64{{5, 6}, {7, 8}})
	b := mustFromRows(t, [][]float64{{1, 2, 3}})

	require.NotPanics(t, func() { a.Sub(b) })
	requireRows(t, [][]float64{{5, 6}, {7, 8}}, a)
	requireRows(t, [][]float64{{5, 6}, {7, 8}}, matrix.Diff(a, b))
}

// TestAddSubRoundTrip checks (a + b) - b == a for random equal-shaped operands.
func TestAddSubRoundTrip(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		a := mustNew(t, 3, 4)
		b := mustNew(t, 3, 4)
		fillRand(a, seed)
		fillRand(b, seed*97)
		orig := a.Clone()

		require.NoError(t, a.Add(b))
		a.Sub(b)
		require.True(t, a.Equal(orig))
	}
}

func TestScale(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	requireRows(t, [][]float64{{2, 4}, {6, 8}}, matrix.Scaled(a, 2))
	requireRows(t, [][]float64{{1, 2}, {3, 4}}, a)

	a.Scale(-0.5)
	requireRows(t, [][]float64{{-0.5, -1}, {-1.5, -2}}, a)

	e := matrix.Empty()
	e.Scale(3) // no shape constraint
	require.True(t, e.IsEmpty())
}

func TestMul(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := [][]float64{{58, 64}, {139, 154}}

	p, err := matrix.Product(a, b)
	require.NoError(t, err)
	requireRows(t, want, p)
	require.Equal(t, 2, a.Rows()) // operands untouched
	require.Equal(t, 3, a.Cols())

	require.NoError(t, a.Mul(b))
	requireRows(t, want, a)
}

func TestMulDimensionMismatch(t *testing.T) {
	a := mustNew(t, 2, 3)
	b := mustNew(t, 2, 3)

	require.ErrorIs(t, a.Mul(b), matrix.ErrDimensionMismatch)
	require.Equal(t, 3, a.Cols()) // unchanged on failure

	_, err := matrix.Product(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMulSelfSquare(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 1}, {0, 1}})
	require.NoError(t, a.Mul(a))
	requireRows(t, [][]float64{{1, 2}, {0, 1}}, a)
}

// TestMulAssociative checks (a·b)·c == a·(b·c) on a shape-compatible chain.
func TestMulAssociative(t *testing.T) {
	a := mustNew(t, 2, 3)
	b := mustNew(t, 3, 4)
	c := mustNew(t, 4, 2)
	fillRand(a, 11)
	fillRand(b, 22)
	fillRand(c, 33)

	ab, err := matrix.Product(a, b)
	require.NoError(t, err)
	left, err := matrix.Product(ab, c)
	require.NoError(t, err)

	bc, err := matrix.Product(b, c)
	require.NoError(t, err)
	right, err := matrix.Product(a, bc)
	require.NoError(t, err)

	require.Equal(t, 2, left.Rows())
	require.Equal(t, 2, left.Cols())
	require.True(t, matrix.EqualApprox(left, right, 1e-9))
}

func TestMulMatchesGonum(t *testing.T) {
	a := mustNew(t, 4, 5)
	b := mustNew(t, 5, 3)
	fillRand(a, 5)
	fillRand(b, 6)

	p, err := matrix.Product(a, b)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(toGonum(a), toGonum(b))
	requireMatchesGonum(t, &want, p, 1e-12)
}
