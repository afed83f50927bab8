// SPDX-License-Identifier: MIT
// Package matrix - graph → matrix builders.
//
// Deliverables:
//   1) Adjacency: dense n_nodes × n_nodes binary presence matrix.
//   2) EdgeRelations: sparse n_edges × n_edges relation-index matrix, fill -1.
//
// AI-Hints:
//   - Both builders read one core.View in a single pass over its triples, so
//     they are safe to run concurrently over the same View.
//   - Repeated (subject, object) pairs collapse into one cell: presence for
//     Adjacency, last writer wins for EdgeRelations.
//   - Neither builder symmetrizes; an undirected graph gives a symmetric
//     adjacency only when its triple set is symmetric.

package matrix

import "github.com/katalvlaran/triples/core"

// adjacencyPresent marks "at least one triple from row-node to col-node".
const adjacencyPresent uint8 = 1

// Adjacency builds the node adjacency matrix of g.
//
// Implementation:
//   - Stage 1: validate input graph (ErrGraphNil).
//   - Stage 2: take a consistent snapshot.
//   - Stage 3: delegate to AdjacencyOf.
//
// Errors:
//   - ErrGraphNil.
//
// Complexity:
//   - Time O(V² + T), Space O(V²).
func Adjacency(g *core.Graph) (*Dense[uint8], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return AdjacencyOf(g.Snapshot())
}

// AdjacencyOf builds an n_nodes × n_nodes matrix where cell [s, o] is 1 iff
// some triple has subject index s and object index o.
//
// Implementation:
//   - Stage 1: allocate a zero matrix sized by NNodes().
//   - Stage 2: for every triple resolve subject/object (MustNodeIndex) and mark the cell.
//
// Behavior highlights:
//   - Records presence only, not multiplicity nor which relation connects the pair.
//   - An unresolvable subject/object panics: the View's registries are corrupted.
//
// Errors:
//   - ErrGraphNil for a nil View.
//
// Complexity:
//   - Time O(V² + T), Space O(V²).
func AdjacencyOf(v *core.View) (*Dense[uint8], error) {
	if v == nil {
		return nil, ErrGraphNil
	}
	n := v.NNodes()
	m, err := NewDense[uint8](n, n)
	if err != nil {
		return nil, err
	}

	var s, o int
	for _, t := range v.Triples() {
		s = v.MustNodeIndex(t.Subject(), t)
		o = v.MustNodeIndex(t.Object(), t)
		m.data[s*n+o] = adjacencyPresent // indices are < n by construction
	}

	return m, nil
}
