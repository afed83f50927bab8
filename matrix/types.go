// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by dense and sparse containers.
package matrix

// Number is the element constraint for Dense and CSR.
// Adjacency uses uint8, edge relations int32, features float32.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// pairKey is an ordered (row, col) cell coordinate used by the COO builder
// to collapse repeated writes under "last-write-wins".
// Complexity: O(1) to build; hash-friendly.
type pairKey struct {
	u int // row index
	v int // column index
}
