// SPDX-License-Identifier: MIT

// Package matrix - lifecycle: allocation, release, copy and move.
//
// Ownership rules:
//   - Every Matrix owns its buffer exclusively; no two matrices share one.
//   - Copies (Clone, CopyFrom) are deep.
//   - Moves (Move, MoveFrom) hand the buffer over and leave the source empty.
//   - Release returns a matrix to the empty sentinel; calling it again is a no-op.

package matrix

// Create releases any storage held by m and allocates exactly rows×cols zeros.
// MAIN DESCRIPTION:
//   - Reshape-in-place primitive used whenever m's shape must change.
//
// Implementation:
//   - Stage 1: Release (idempotent).
//   - Stage 2: validate rows ≥ 1 && cols ≥ 1.
//   - Stage 3: allocate and set the new shape.
//
// Errors:
//   - ErrInvalidDimensions; m is left as the empty sentinel.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) Create(rows, cols int) error {
	m.Release()
	if err := validateShape(rows, cols); err != nil {
		return err
	}
	m.r, m.c = rows, cols
	m.data = make([]float64, rows*cols)

	return nil
}

// Release drops the backing buffer and resets m to the empty sentinel.
// Safe on an already-empty matrix.
func (m *Matrix) Release() {
	m.data = nil
	m.r, m.c = 0, 0
}

// Clone returns a deep copy. A clone of the empty sentinel is empty.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix) Clone() *Matrix {
	if m.IsEmpty() {
		return Empty()
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Matrix{r: m.r, c: m.c, data: cp}
}

// CopyFrom replaces m's content with a deep copy of src (copy assignment).
// Self-assignment is a no-op.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix) CopyFrom(src *Matrix) {
	if m == src {
		return
	}
	m.Release()
	if src.IsEmpty() {
		return
	}
	m.r, m.c = src.r, src.c
	m.data = make([]float64, len(src.data))
	copy(m.data, src.data)
}

// Move returns a new Matrix that takes over m's buffer and shape.
// m is left as the empty sentinel; no element is copied.
func (m *Matrix) Move() *Matrix {
	out := &Matrix{r: m.r, c: m.c, data: m.data}
	m.data = nil
	m.r, m.c = 0, 0

	return out
}

// MoveFrom releases m, then takes over src's buffer and shape (move assignment).
// src is left as the empty sentinel. Self-move is a no-op.
func (m *Matrix) MoveFrom(src *Matrix) {
	if m == src {
		return
	}
	m.Release()
	m.r, m.c, m.data = src.r, src.c, src.data
	src.data = nil
	src.r, src.c = 0, 0
}
