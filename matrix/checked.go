// SPDX-License-Identifier: MIT

// Package matrix - checked facades.
//
// Purpose:
//   - Offer a single result-or-error contract for the operations whose
//     Matrix methods degrade silently (Sub, Determinant, CalcComplements,
//     Inverse).
//   - Leave the methods themselves untouched; these wrappers only add
//     validation in front of them.
//
// Error priority (fixed, covered by tests):
//   empty -> non-square -> singular.

package matrix

import "math"

// CheckedSub returns a - b as a new matrix, or ErrDimensionMismatch.
func CheckedSub(a, b *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return Diff(a, b), nil
}

// CheckedDeterminant returns det(m).
// Errors: ErrEmpty, ErrNonSquare (wrapped with "Determinant").
func CheckedDeterminant(m *Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return m.Determinant(), nil
}

// CheckedComplements returns the cofactor matrix of m.
// Errors: ErrEmpty, ErrNonSquare (wrapped with "CalcComplements").
func CheckedComplements(m *Matrix) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opComplements, err)
	}

	return m.CalcComplements(), nil
}

// CheckedInverse returns m⁻¹ via the adjugate.
// MAIN DESCRIPTION:
//   - Same computation as Inverse, but every degenerate case is an error and
//     singularity is decided by a tolerance instead of exact zero.
//
// Implementation:
//   - Stage 1: ValidateSquare (ErrEmpty / ErrNonSquare).
//   - Stage 2: det := Determinant(); |det| <= eps -> ErrSingular.
//   - Stage 3: adj(m) / det.
//
// Inputs:
//   - opts: WithEpsilon(eps); default DefaultSingularEpsilon.
//
// Errors:
//   - ErrEmpty, ErrNonSquare, ErrSingular (wrapped with "Inverse").
//
// Notes:
//   - WithEpsilon(0) still rejects only an exact zero determinant, matching
//     Inverse apart from the error return.
func CheckedInverse(m *Matrix, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det := m.Determinant()
	if math.Abs(det) <= o.eps {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	return adjugateOver(m.CalcComplements(), det), nil
}
