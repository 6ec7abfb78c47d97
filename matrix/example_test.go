package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// ExampleMatrix_Inverse builds a 2×2 matrix, inverts it and checks A·A⁻¹ = I.
func ExampleMatrix_Inverse() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})

	fmt.Println("det =", a.Determinant())
	inv := a.Inverse()
	fmt.Print(inv)

	id, _ := matrix.NewIdentity(2)
	p, _ := matrix.Product(a, inv)
	fmt.Println("A·A⁻¹ == I:", p.Equal(id))

	// Output:
	// det = -2
	// [-2, 1]
	// [1.5, -0.5]
	// A·A⁻¹ == I: true
}

// ExampleMatrix_Mul multiplies a 2×3 by a 3×2 matrix in place.
func ExampleMatrix_Mul() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.NewFromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})

	if err := a.Mul(b); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(a)

	// Output:
	// [58, 64]
	// [139, 154]
}

// Example_errorDisciplines contrasts the hard and soft failure paths.
func Example_errorDisciplines() {
	a, _ := matrix.New(2, 2)
	b, _ := matrix.New(3, 3)

	err := a.Add(b)
	fmt.Println("Add mismatch:", errors.Is(err, matrix.ErrDimensionMismatch))

	a.Sub(b) // silently skipped
	fmt.Println("Sub left a as:", a.Rows(), "x", a.Cols())

	fmt.Println("Inverse of zero matrix empty:", a.Inverse().IsEmpty())

	_, err = matrix.CheckedInverse(a)
	fmt.Println(err)

	// Output:
	// Add mismatch: true
	// Sub left a as: 2 x 2
	// Inverse of zero matrix empty: true
	// Inverse: matrix: singular matrix
}
