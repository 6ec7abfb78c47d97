// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide operator-style, non-mutating entry points (a+b, a-b, a*k, a*b, a==b).
//   - Avoid any logic duplication: each facade clones the left operand and
//     delegates to the canonical in-place method.
//
// Determinism & Policy:
//   - Facades keep the error discipline of the method they wrap: Sum and
//     Product fail on mismatch, Diff silently returns an unchanged copy.
//   - Operands are never mutated.

package matrix

// Sum returns a + b as a new matrix.
// Errors: ErrDimensionMismatch (wrapped with "Add").
func Sum(a, b *Matrix) (*Matrix, error) {
	res := a.Clone()
	if err := res.Add(b); err != nil {
		return nil, err
	}

	return res, nil
}

// Diff returns a - b as a new matrix. On a shape mismatch the result is an
// unchanged copy of a.
func Diff(a, b *Matrix) *Matrix {
	res := a.Clone()
	res.Sub(b)

	return res
}

// Scaled returns k · a as a new matrix.
func Scaled(a *Matrix, k float64) *Matrix {
	res := a.Clone()
	res.Scale(k)

	return res
}

// Product returns a × b as a new matrix; a and b are left unchanged.
// Errors: ErrDimensionMismatch (wrapped with "Mul") when a.Cols != b.Rows.
// Complexity: Time O(r*n*c), Space O(r*c).
func Product(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return product(a, b), nil
}

// Equal reports a == b under the fixed Epsilon tolerance.
func Equal(a, b *Matrix) bool { return a.Equal(b) }

// EqualApprox reports whether a and b have the same shape and every pair of
// elements differs by less than eps.
func EqualApprox(a, b *Matrix, eps float64) bool { return equalWithin(a, b, eps) }
