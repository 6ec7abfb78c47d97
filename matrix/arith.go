// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels of Matrix: comparison,
// element-wise addition and subtraction, scalar scaling and the
// triple-loop product.
//
// Purpose:
//   - Keep the in-place (mutating) forms as methods on *Matrix.
//   - Define operation tags and shared constants for error reporting.
//
// Notes:
//   - Non-mutating facades live in api.go; checked variants in checked.go.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for dot products and expansions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opDeterminant = "Determinant"
	opComplements = "CalcComplements"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Returns:
//   - error: formats as "<tag>: <underlying>" and still matches errors.Is/As.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Equal reports whether m and other have the same shape and every pair of
// corresponding elements differs by less than Epsilon.
// Shapes that differ (including empty vs non-empty) are never equal; two
// empty sentinels are equal.
// Complexity: Time O(r*c), Space O(1).
func (m *Matrix) Equal(other *Matrix) bool {
	return equalWithin(m, other, Epsilon)
}

// equalWithin is the shared comparison kernel for Equal and EqualApprox.
func equalWithin(a, b *Matrix, eps float64) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data { // deterministic 0..n-1
		if math.Abs(a.data[idx]-b.data[idx]) >= eps {
			return false
		}
	}

	return true
}

// Add accumulates other into m element-wise (m += other).
// Implementation:
//   - Stage 1: ValidateSameShape(m, other).
//   - Stage 2: single flat loop over the row-major buffers.
//
// Errors:
//   - ErrDimensionMismatch when shapes differ; m is not modified.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix) Add(other *Matrix) error {
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf(opAdd, err)
	}
	for idx := range m.data {
		m.data[idx] += other.data[idx]
	}

	return nil
}

// Sub subtracts other from m element-wise (m -= other).
// When the shapes differ Sub does nothing and reports nothing; see
// CheckedSub for the error-returning form.
// Complexity: Time O(r*c), Space O(1).
func (m *Matrix) Sub(other *Matrix) {
	if ValidateSameShape(m, other) != nil {
		return
	}
	for idx := range m.data {
		m.data[idx] -= other.data[idx]
	}
}

// Scale multiplies every element by k in place. Always succeeds.
func (m *Matrix) Scale(k float64) {
	for idx := range m.data {
		m.data[idx] *= k
	}
}

// Mul replaces m with the product m × other.
// Implementation:
//   - Stage 1: ValidateMulCompatible (m.Cols == other.Rows).
//   - Stage 2: compute the product into a fresh buffer (see product).
//   - Stage 3: adopt the result's shape and buffer.
//
// Errors:
//   - ErrDimensionMismatch; m is not modified.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Matrix) Mul(other *Matrix) error {
	if err := ValidateMulCompatible(m, other); err != nil {
		return matrixErrorf(opMul, err)
	}
	res := product(m, other)
	m.MoveFrom(res)

	return nil
}

// product computes a × b with the i→k→j loop order over row-major strides.
// The caller guarantees a.c == b.r.
// A product of empty sentinels (0 inner dimension) is empty.
func product(a, b *Matrix) *Matrix {
	if a.r == 0 || b.c == 0 {
		return Empty()
	}
	res := &Matrix{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}

	// a.data layout: i*a.c + k
	// b.data layout: k*b.c + j
	var i, j, k int
	var av float64
	var rowOffsetA, rowOffsetB, rowOffsetR int
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsetR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res
}
