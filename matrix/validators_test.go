// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateSameShape(t *testing.T) {
	require.NoError(t, matrix.ValidateSameShape(mustNew(t, 2, 3), mustNew(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape(mustNew(t, 2, 3), mustNew(t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(mustNew(t, 2, 3), mustNew(t, 2, 2)), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSameShape(matrix.Empty(), matrix.Empty()))
}

func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible(mustNew(t, 2, 3), mustNew(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(mustNew(t, 2, 3), mustNew(t, 2, 3)), matrix.ErrDimensionMismatch)
}

// TestValidateSquarePriority checks empty is reported before non-square.
func TestValidateSquarePriority(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(mustNew(t, 4, 4)))
	require.ErrorIs(t, matrix.ValidateSquare(matrix.Empty()), matrix.ErrEmpty)
	require.ErrorIs(t, matrix.ValidateSquare(mustNew(t, 1, 2)), matrix.ErrNonSquare)
}
