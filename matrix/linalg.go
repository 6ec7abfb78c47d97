// SPDX-License-Identifier: MIT

// Package matrix - transpose, minors, Laplace determinant, cofactors and the
// adjugate inverse.
//
// Numeric policy:
//   - Determinant expands along the first row recursively: O(n!) time. Intended
//     for small matrices only; there is no pivoting and no LU path.
//   - Every minor is a fresh Matrix; recursion shares no mutable state.
//   - Non-square and singular inputs degrade to 0 / the empty sentinel instead
//     of returning errors (see checked.go for the error-returning forms).

package matrix

// Transpose returns a new (Cols × Rows) matrix with entry (j,i) = m(i,j).
// The transpose of the empty sentinel is empty.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix) Transpose() *Matrix {
	if m.IsEmpty() {
		return Empty()
	}
	res := &Matrix{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res
}

// Minor returns the (Rows-1 × Cols-1) submatrix obtained by deleting the
// given row and column.
// MAIN DESCRIPTION:
//   - Copy-based extraction; the result owns its buffer.
//
// Implementation:
//   - Stage 1: allocate (r-1)×(c-1).
//   - Stage 2: walk the source row-major, skipping row and col, appending
//     to the destination in order.
//
// Notes:
//   - A single row or column has no proper minor: the result is the empty
//     sentinel. Indices are not range-checked.
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func (m *Matrix) Minor(row, col int) *Matrix {
	if m.r < 2 || m.c < 2 {
		return Empty()
	}
	res := &Matrix{r: m.r - 1, c: m.c - 1, data: make([]float64, (m.r-1)*(m.c-1))}
	dst := 0
	var i, j, base int
	for i = 0; i < m.r; i++ {
		if i == row {
			continue
		}
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j == col {
				continue
			}
			res.data[dst] = m.data[base+j]
			dst++
		}
	}

	return res
}

// Determinant computes det(m) by cofactor expansion along the first row:
//
//	det = Σ_j (-1)^j · m(0,j) · det(Minor(0,j))
//
// Behavior highlights:
//   - Non-square (including empty) input yields 0.
//   - 1×1 yields its sole element.
//
// Complexity:
//   - Time O(n!), Space O(n^2) per recursion level.
func (m *Matrix) Determinant() float64 {
	if m.r != m.c || m.IsEmpty() {
		return 0
	}
	if m.r == 1 {
		return m.data[0]
	}

	det := ZeroSum
	sign := 1.0
	for j := 0; j < m.c; j++ {
		det += sign * m.data[j] * m.Minor(0, j).Determinant()
		sign = -sign
	}

	return det
}

// CalcComplements returns the cofactor matrix C with
// C(i,j) = (-1)^(i+j) · det(Minor(i,j)).
// Non-square input yields the empty sentinel.
//
// A 1×1 input has no proper minor, so the Laplace definition does not
// apply. Rather than failing, the cofactor is defined as 1 (the determinant
// of the 0×0 matrix), which makes Inverse of [a] equal [1/a]. Callers that
// need 1×1 input rejected must check the shape themselves.
//
// Complexity: Time O(n^2 · (n-1)!), Space O(n^2).
func (m *Matrix) CalcComplements() *Matrix {
	if m.r != m.c || m.IsEmpty() {
		return Empty()
	}
	res := &Matrix{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	if m.r == 1 {
		res.data[0] = 1
		return res
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			cof := m.Minor(i, j).Determinant()
			if (i+j)%2 != 0 {
				cof = -cof
			}
			res.data[i*m.c+j] = cof
		}
	}

	return res
}

// Inverse returns m⁻¹ = adj(m) / det(m), where adj is the transposed
// cofactor matrix: entry (j,i) = C(i,j) / det.
// Behavior highlights:
//   - det == 0 (exact comparison) yields the empty sentinel; so does any
//     non-square input, whose Determinant is 0 by definition.
//   - A determinant of, say, 1e-300 is treated as invertible; use
//     CheckedInverse with WithEpsilon for a tolerance-based test.
//
// Complexity:
//   - Dominated by CalcComplements.
func (m *Matrix) Inverse() *Matrix {
	det := m.Determinant()
	if det == 0 {
		return Empty()
	}

	return adjugateOver(m.CalcComplements(), det)
}

// adjugateOver transposes the cofactor matrix c and divides every entry by det.
func adjugateOver(c *Matrix, det float64) *Matrix {
	res := &Matrix{r: c.c, c: c.r, data: make([]float64, len(c.data))}
	var i, j int
	for i = 0; i < c.r; i++ {
		for j = 0; j < c.c; j++ {
			res.data[j*c.r+i] = c.data[i*c.c+j] / det
		}
	}

	return res
}
