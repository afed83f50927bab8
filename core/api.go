// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Bulk constructors and configuration getters.
// Policy:
//   - Bulk constructors are exactly "NewGraph + AddTriple per element, in order".
//   - Bulk constructors always produce Undirected graphs.

package core

import "github.com/katalvlaran/triples/triple"

// FromTriples builds an undirected Graph from triples, in sequence order.
//
// Implementation:
//   - Stage 1: allocate an empty Undirected graph.
//   - Stage 2: AddTriple each element; no re-ordering, no batch-level dedup.
//
// Complexity:
//   - Time O(T), Space O(T).
func FromTriples(ts []triple.Triple) *Graph {
	g := NewGraph()
	g.AddTriples(ts...)

	return g
}

// FromTuples builds an undirected Graph from raw {subject, relation, object}
// tuples, in sequence order.
// Complexity: O(T).
func FromTuples(sro [][3]string) *Graph {
	g := NewGraph()
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, t := range sro {
		g.addTripleLocked(triple.FromTuple(t))
	}

	return g
}

// Policy returns the construction-time EdgePolicy.
func (g *Graph) Policy() EdgePolicy {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.policy
}
