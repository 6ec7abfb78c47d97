// Package lvmatrix is a small dense-matrix toolkit: a float64 matrix value
// type with the classic textbook operations, plus an interactive calculator.
//
// Under the hood, everything is organized under these directories:
//
//	matrix/       the Matrix type: construction, copy/move, arithmetic,
//	                transpose, minors, Laplace determinant, cofactors, inverse
//	cmd/matcalc/  REPL over named matrices (readline + logrus)
//	examples/     runnable walkthroughs
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	fmt.Println(a.Determinant()) // -2
//	fmt.Print(a.Inverse())       // [-2, 1]
//	                             // [1.5, -0.5]
//
// Determinant and Inverse use cofactor expansion (O(n!)); the package is
// meant for small matrices where exact textbook behaviour matters more than
// speed.
package lvmatrix
