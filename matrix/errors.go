// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Hard failures return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Operations
// wrap with matrixErrorf(tag, ErrX); callers still match with errors.Is.
//
// Two disciplines coexist on the Matrix surface:
//   - hard: New/Create with non-positive shape, Add with mismatched shapes,
//     Mul with incompatible inner dimensions (an error is returned);
//   - soft: Sub on mismatch (no-op), Determinant of non-square (0),
//     CalcComplements/Inverse of non-square or singular (empty sentinel).
//
// The Checked* facades (checked.go) report every one of those as an error.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by CheckedInverse when |det| is within eps of zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrEmpty signals that the empty sentinel was passed where data is required.
	ErrEmpty = errors.New("matrix: empty matrix")
)
