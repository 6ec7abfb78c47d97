// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal by delegating shape/empty checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate only on failure.
//
// Note:
//  - Validators assume non-nil operands; nil *Matrix is a programmer error.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows().
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m holds data and is square.
//
// Errors: ErrEmpty for the sentinel, ErrNonSquare when Rows != Cols.
// Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if m.IsEmpty() {
		return validatorErrorf("ValidateSquare", ErrEmpty)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// validateShape rejects non-positive dimensions and shapes whose element
// count exceeds MaxElements, before allocation.
func validateShape(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return ErrInvalidDimensions
	}
	if rows > MaxElements/cols {
		return ErrInvalidDimensions
	}

	return nil
}
