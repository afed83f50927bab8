// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/triples/core"
)

// RelationAbsent is the fill value of the edge-relation matrix: "no relation
// recorded for this (subject, object) pair". It is distinct from relation
// index 0.
const RelationAbsent int32 = -1

// EdgeRelations builds the sparse edge-relation matrix of g.
// See EdgeRelationsOf.
//
// Errors:
//   - ErrGraphNil, ErrNodeIndexExceedsEdges.
func EdgeRelations(g *core.Graph) (*CSR[int32], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return EdgeRelationsOf(g.Snapshot())
}

// EdgeRelationsOf builds an n_edges × n_edges sparse matrix with fill
// RelationAbsent. For every triple, cell [s, o] (subject and object NODE
// indices) holds the first-seen index r of the triple's relation in Edges().
//
// Implementation:
//   - Stage 1: size the builder by NEdges() on both axes.
//   - Stage 2: for every triple resolve s, o, r; write r at [s, o].
//   - Stage 3: compress to CSR.
//
// Behavior highlights:
//   - The shape is driven by the edge count while rows/cols are addressed by
//     node indices. It is only well-defined while n_nodes <= n_edges; a node
//     index that does not fit returns ErrNodeIndexExceedsEdges instead of
//     writing out of bounds. A single triple (a, r, b) already hits this on an
//     undirected graph (2 nodes, 1 edge).
//   - A later triple with the same (s, o) pair overwrites the earlier relation.
//   - Unresolvable labels panic (internal-consistency fault).
//
// Errors:
//   - ErrGraphNil for a nil View.
//   - ErrNodeIndexExceedsEdges (wrapped with the offending triple and indices).
//
// Complexity:
//   - Time O(T + nnz log nnz + E), Space O(nnz + E).
func EdgeRelationsOf(v *core.View) (*CSR[int32], error) {
	if v == nil {
		return nil, ErrGraphNil
	}
	n := v.NEdges()
	b, err := NewCOO[int32](n, n, RelationAbsent)
	if err != nil {
		return nil, err
	}

	var s, o, r int
	for _, t := range v.Triples() {
		s = v.MustNodeIndex(t.Subject(), t)
		o = v.MustNodeIndex(t.Object(), t)
		r = v.MustEdgeIndex(t)
		if s >= n || o >= n {
			return nil, fmt.Errorf("EdgeRelations: %v at [%d,%d] with %d edges: %w", t, s, o, n, ErrNodeIndexExceedsEdges)
		}
		if err = b.Set(s, o, int32(r)); err != nil {
			return nil, err
		}
	}

	return b.ToCSR(), nil
}
