// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public functions return these sentinels (possibly wrapped with
// call-site context via %w) and tests check them via errors.Is.
// Panics are reserved for internal-consistency faults of the source graph.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at the
// detection site; callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	// Zero dimensions are legal (an empty graph yields a 0×0 matrix).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a row/vector whose length does not fit the
	// target shape (SetRow, ragged input to NewDenseFromRows).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrGraphNil indicates that a nil *core.Graph or *core.View was passed to a builder.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNodeIndexExceedsEdges is returned by the edge-relation builder when a
	// node index does not fit its n_edges × n_edges shape (n_nodes > n_edges).
	ErrNodeIndexExceedsEdges = errors.New("matrix: node index exceeds edge-relation matrix size")
)
