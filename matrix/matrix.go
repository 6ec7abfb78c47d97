// SPDX-License-Identifier: MIT

// Package matrix - row-major storage, construction & element access.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Keep the empty sentinel (0×0, nil buffer) as the zero value of Matrix.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set/Ref: O(1); String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtEmpty    = "[]"
)

// Matrix is a dense rows×cols grid of float64 values.
//   - r,c hold dimensions; both are 0 only for the empty sentinel.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is the empty sentinel and is ready to use.
type Matrix struct {
	r, c int       // row and column counts (0,0 for the empty sentinel)
	data []float64 // contiguous row-major storage (len == r*c); nil when empty
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates a rows×cols zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows ≥ 1 && cols ≥ 1; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled flat buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (*Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}

	// make() zero-fills deterministically.
	return &Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Empty returns a fresh empty sentinel (0×0, no storage).
func Empty() *Matrix { return &Matrix{} }

// NewFromRows builds a matrix from row literals, copying the values.
// Implementation:
//   - Stage 1: reject zero rows or a zero-length first row (ErrInvalidDimensions).
//   - Stage 2: reject ragged rows (ErrDimensionMismatch).
//   - Stage 3: copy each row into its offset of the flat buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w",
				i, len(row), m.c, ErrDimensionMismatch)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether m is the empty sentinel.
func (m *Matrix) IsEmpty() bool { return m.data == nil }

// At returns the value at (i, j).
// No bounds validation is done here: indices outside
// 0 ≤ i < Rows(), 0 ≤ j < Cols() either panic or alias a neighbouring cell.
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.c+j] }

// Set stores v at (i, j). Same (absent) bounds contract as At.
func (m *Matrix) Set(i, j int, v float64) { m.data[i*m.c+j] = v }

// Ref returns a pointer to the cell (i, j) for in-place updates:
//
//	*m.Ref(0, 1) += 2
//
// The pointer is invalidated by Create, Release, Mul and MoveFrom.
func (m *Matrix) Ref(i, j int) *float64 { return &m.data[i*m.c+j] }

// RawRowView returns row i as a slice sharing storage with m.
// Writes through the slice are visible in m.
func (m *Matrix) RawRowView(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Behavior highlights:
//   - The empty sentinel renders as "[]".
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Matrix) String() string {
	if m.IsEmpty() {
		return _fmtEmpty
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Matrix) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major order.
// Complexity: Time O(r*c), Space O(1).
func (m *Matrix) Apply(f func(i, j int, v float64) float64) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
