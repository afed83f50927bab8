// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Graph mutation (AddTriple) and read-only queries.
// Determinism:
//   - Nodes()/Edges()/Triples() return insertion order; indices are first-seen.
// Concurrency:
//   - AddTriple takes mu for writing; every query takes mu for reading.
// AI-HINT (file):
//   - Registration order inside AddTriple is part of the contract: subject,
//     object, relation, then the triple itself.

package core

import "github.com/katalvlaran/triples/triple"

// AddTriple adds a triple to the graph.
//
// Implementation:
//   - Stage 1: register subject as a node (no-op when known).
//   - Stage 2: register object as a node (no-op when known).
//   - Stage 3: register relation as an edge according to the EdgePolicy.
//   - Stage 4: append the triple.
//
// Behavior highlights:
//   - All four stages happen under one write lock, so readers never observe
//     a triple whose endpoints are not yet registered.
//   - Duplicate triples are kept verbatim.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddTriple(t triple.Triple) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addTripleLocked(t)
}

// AddTriples adds each triple in order; equivalent to repeated AddTriple
// but under a single lock acquisition.
func (g *Graph) AddTriples(ts ...triple.Triple) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, t := range ts {
		g.addTripleLocked(t)
	}
}

// addTripleLocked performs AddTriple stages 1–4. Caller holds mu.
func (g *Graph) addTripleLocked(t triple.Triple) {
	g.nodes.register(t.Subject(), true)
	g.nodes.register(t.Object(), true)
	g.edges.register(t.Relation(), g.policy.dedup())
	g.triples = append(g.triples, t)
}

// NodeIndex returns the index of a node label.
// ok is false when the label never appeared as a subject or object.
// Complexity: O(1).
func (g *Graph) NodeIndex(label string) (idx int, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes.lookup(label)
}

// EdgeIndex returns the index of the first occurrence of a relation label
// in Edges(). ok is false when the label was never registered.
// Complexity: O(1).
func (g *Graph) EdgeIndex(label string) (idx int, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.lookup(label)
}

// IsDirected reports whether edge labels are de-duplicated.
func (g *Graph) IsDirected() bool { return g.Policy() == Directed }

// IsUndirected reports whether every triple contributes its own edge entry.
func (g *Graph) IsUndirected() bool { return g.Policy() == Undirected }

// Len returns the number of triples in the graph.
func (g *Graph) Len() int { return g.NTriples() }

// IsEmpty reports whether no triple has been added.
func (g *Graph) IsEmpty() bool { return g.NTriples() == 0 }

// NNodes returns the number of distinct node labels.
func (g *Graph) NNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes.len()
}

// NEdges returns the number of edge entries (see EdgePolicy).
func (g *Graph) NEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.len()
}

// NTriples returns the number of triples in the graph.
func (g *Graph) NTriples() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.triples)
}

// Triples returns a copy of the triples in insertion order.
// Complexity: O(T).
func (g *Graph) Triples() []triple.Triple {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]triple.Triple, len(g.triples))
	copy(out, g.triples)

	return out
}

// Nodes returns a copy of the node labels in first-seen order.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes.labels()
}

// Edges returns a copy of the edge entries in registration order.
// Under Undirected this may repeat a label once per triple.
// Complexity: O(E).
func (g *Graph) Edges() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.labels()
}

// DistinctEdges returns each relation label once, in first-seen order.
// Under Directed this equals Edges().
func (g *Graph) DistinctEdges() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.distinct()
}
