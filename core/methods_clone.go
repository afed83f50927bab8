// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and structural equality.
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.

package core

import "github.com/katalvlaran/triples/triple"

// Clone returns a deep copy of the Graph: policy, triples and both registries.
// Indices in the clone equal the indices in the source.
//
// Complexity: O(T + V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ts := make([]triple.Triple, len(g.triples))
	copy(ts, g.triples)

	return &Graph{
		policy:  g.policy,
		triples: ts,
		nodes:   g.nodes.clone(),
		edges:   g.edges.clone(),
	}
}

// Equal reports whether two graphs have the same policy and the same triple
// sequence. Registries are a function of (policy, triples), so they are equal
// too. A nil Graph equals only another nil Graph.
//
// Complexity: O(T)
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g == other {
		return true
	}
	// Snapshot one graph at a time; never hold both locks.
	lp, lt := g.Policy(), g.Triples()
	rp, rt := other.Policy(), other.Triples()

	if lp != rp || len(lt) != len(rt) {
		return false
	}
	for i := range lt {
		if lt[i] != rt[i] {
			return false
		}
	}

	return true
}
