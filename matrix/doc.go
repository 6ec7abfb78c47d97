// Package matrix implements a dense, row-major matrix of float64 values.
//
// The matrix package provides:
//
//   - Matrix, a value type owning a single flat buffer of Rows()*Cols()
//     elements, with an empty 0×0 sentinel as its zero value.
//   - In-place arithmetic (Add, Sub, Scale, Mul) and non-mutating facades
//     (Sum, Diff, Scaled, Product, Equal).
//   - Transpose, Minor, Laplace Determinant, CalcComplements (cofactors)
//     and the adjugate Inverse.
//   - Checked* facades that report every degenerate input as an error.
//
// Errors come in two flavours. Construction with non-positive dimensions,
// Add on mismatched shapes and Mul on incompatible inner dimensions return
// sentinel errors (match them with errors.Is). Sub on mismatched shapes is a
// no-op, Determinant of a non-square matrix is 0, and CalcComplements/Inverse
// of a non-square or singular matrix return the empty sentinel.
//
// Determinant runs in O(n!) time; the package targets small matrices.
//
// See the examples in this package for usage patterns.
package matrix
