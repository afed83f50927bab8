// SPDX-License-Identifier: MIT

// Package matrix - Compressed sparse row storage with an explicit fill value.
//
// Purpose:
//   - Store only written cells; every other cell reads as Fill().
//   - Keep an explicitly written zero distinct from an absent cell.
//
// Layout (standard CSR):
//   - indptr[i]..indptr[i+1] is the slice of indices/values belonging to row i.
//   - indices within a row are strictly ascending.
//
// AI-Hints:
//   - Build through COO (coordinate builder); repeated writes to one cell keep
//     the LAST value.
//   - ToDense renders absent cells as the zero value (the common sparse-library
//     convention); ToDenseFilled renders them as Fill().
//
// Complexity quicksheet:
//   - COO.Set: O(1) amortized; COO.ToCSR: O(nnz log nnz + r).
//   - CSR.At: O(log nnz(row)); ToDense: O(r*c).

package matrix

import (
	"fmt"
	"sort"
)

const (
	ctxCOOSet = "COO.Set"
	ctxCSRAt  = "CSR.At"
)

// COO accumulates (row, col, value) writes for a CSR matrix.
// Not safe for concurrent use.
type COO[T Number] struct {
	r, c    int
	fill    T
	entries map[pairKey]T
}

// NewCOO creates an empty rows×cols coordinate builder with the given fill value.
//
// Errors:
//   - ErrInvalidDimensions on negative shape.
func NewCOO[T Number](rows, cols int, fill T) (*COO[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &COO[T]{r: rows, c: cols, fill: fill, entries: make(map[pairKey]T)}, nil
}

// Set records v at (row, col); a later Set to the same cell overwrites it.
//
// Errors:
//   - ErrOutOfRange when (row, col) is outside the shape.
func (b *COO[T]) Set(row, col int, v T) error {
	if row < 0 || row >= b.r || col < 0 || col >= b.c {
		return fmt.Errorf("%s(%d,%d): %w", ctxCOOSet, row, col, ErrOutOfRange)
	}
	b.entries[pairKey{u: row, v: col}] = v

	return nil
}

// ToCSR compresses the recorded writes.
//
// Implementation:
//   - Stage 1: collect keys and sort by (row, col) for deterministic layout.
//   - Stage 2: count entries per row into indptr (prefix sums).
//   - Stage 3: emit indices/values in sorted order.
//
// Complexity:
//   - Time O(nnz log nnz + r), Space O(nnz + r).
func (b *COO[T]) ToCSR() *CSR[T] {
	keys := make([]pairKey, 0, len(b.entries))
	for k := range b.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].u != keys[j].u {
			return keys[i].u < keys[j].u
		}

		return keys[i].v < keys[j].v
	})

	m := &CSR[T]{
		r:       b.r,
		c:       b.c,
		fill:    b.fill,
		indptr:  make([]int, b.r+1),
		indices: make([]int, len(keys)),
		values:  make([]T, len(keys)),
	}
	for _, k := range keys {
		m.indptr[k.u+1]++
	}
	for i := 0; i < b.r; i++ {
		m.indptr[i+1] += m.indptr[i]
	}
	for n, k := range keys {
		m.indices[n] = k.v
		m.values[n] = b.entries[k]
	}

	return m
}

// CSR is an immutable compressed-sparse-row matrix with a fill value.
type CSR[T Number] struct {
	r, c    int
	fill    T
	indptr  []int // len r+1
	indices []int // column of each stored value
	values  []T   // stored values
}

// Rows returns the row count.
func (m *CSR[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *CSR[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *CSR[T]) Shape() (rows, cols int) { return m.r, m.c }

// Fill returns the value reported for cells that were never written.
func (m *CSR[T]) Fill() T { return m.fill }

// NNZ returns the number of explicitly stored cells.
func (m *CSR[T]) NNZ() int { return len(m.values) }

// find locates (row, col) within the row's sorted column slice.
func (m *CSR[T]) find(row, col int) (int, bool) {
	lo, hi := m.indptr[row], m.indptr[row+1]
	n := sort.SearchInts(m.indices[lo:hi], col)
	if lo+n < hi && m.indices[lo+n] == col {
		return lo + n, true
	}

	return 0, false
}

// At returns the stored value at (row, col), or Fill() when absent.
//
// Errors:
//   - ErrOutOfRange when (row, col) is outside the shape.
//
// Complexity:
//   - Time O(log nnz(row)).
func (m *CSR[T]) At(row, col int) (T, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		var zero T
		return zero, fmt.Errorf("%s(%d,%d): %w", ctxCSRAt, row, col, ErrOutOfRange)
	}
	if n, ok := m.find(row, col); ok {
		return m.values[n], nil
	}

	return m.fill, nil
}

// Stored reports the explicitly stored value at (row, col).
// ok is false for absent or out-of-range cells.
func (m *CSR[T]) Stored(row, col int) (v T, ok bool) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return v, false
	}
	n, ok := m.find(row, col)
	if !ok {
		return v, false
	}

	return m.values[n], true
}

// Do calls f for every stored cell in row-major order.
func (m *CSR[T]) Do(f func(i, j int, v T)) {
	for i := 0; i < m.r; i++ {
		for n := m.indptr[i]; n < m.indptr[i+1]; n++ {
			f(i, m.indices[n], m.values[n])
		}
	}
}

// ToDense materializes the matrix with absent cells as the zero value of T.
// Complexity: O(r*c).
func (m *CSR[T]) ToDense() *Dense[T] {
	var zero T

	return m.toDense(zero)
}

// ToDenseFilled materializes the matrix with absent cells as Fill().
// Complexity: O(r*c).
func (m *CSR[T]) ToDenseFilled() *Dense[T] {
	return m.toDense(m.fill)
}

func (m *CSR[T]) toDense(absent T) *Dense[T] {
	d := &Dense[T]{r: m.r, c: m.c, data: make([]T, m.r*m.c)}
	var zero T
	if absent != zero {
		for i := range d.data {
			d.data[i] = absent
		}
	}
	m.Do(func(i, j int, v T) { d.data[i*m.c+j] = v })

	return d
}
