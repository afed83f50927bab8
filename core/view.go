// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Immutable read-only snapshot consumed by matrix and feature builders.
// Determinism:
//   - A View never changes after Snapshot returns, whatever happens to the Graph.
// Concurrency:
//   - Snapshot takes a read lock on the source; a View needs no locking and
//     may be shared by any number of goroutines.
// AI-HINT (file):
//   - Builders take one View and read it in a single pass; use MustNodeIndex
//     for labels that come from the View's own triples.

package core

import (
	"fmt"

	"github.com/katalvlaran/triples/triple"
)

const (
	panicUnresolvedNode = "core: internal consistency fault: node %q of %v is not registered"
	panicUnresolvedEdge = "core: internal consistency fault: relation %q of %v is not registered"
)

// View is a consistent snapshot of a Graph's triples and registries.
type View struct {
	policy  EdgePolicy
	triples []triple.Triple
	nodes   *registry
	edges   *registry
}

// Snapshot returns an independent View of the current graph state.
//
// Implementation:
//   - Stage 1: acquire the read lock, so no AddTriple is half-applied.
//   - Stage 2: copy triples and clone both registries.
//
// Complexity:
//   - Time O(T + V + E), Space O(T + V + E).
func (g *Graph) Snapshot() *View {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ts := make([]triple.Triple, len(g.triples))
	copy(ts, g.triples)

	return &View{
		policy:  g.policy,
		triples: ts,
		nodes:   g.nodes.clone(),
		edges:   g.edges.clone(),
	}
}

// Policy returns the EdgePolicy of the source graph.
func (v *View) Policy() EdgePolicy { return v.policy }

// NNodes returns the number of distinct node labels.
func (v *View) NNodes() int { return v.nodes.len() }

// NEdges returns the number of edge entries.
func (v *View) NEdges() int { return v.edges.len() }

// NTriples returns the number of triples.
func (v *View) NTriples() int { return len(v.triples) }

// Triples returns the snapshot's triples. The slice must not be modified.
func (v *View) Triples() []triple.Triple { return v.triples }

// Nodes returns the snapshot's node labels. The slice must not be modified.
func (v *View) Nodes() []string { return v.nodes.seq }

// Edges returns the snapshot's edge entries. The slice must not be modified.
func (v *View) Edges() []string { return v.edges.seq }

// NodeIndex returns the index of a node label, if registered.
func (v *View) NodeIndex(label string) (int, bool) { return v.nodes.lookup(label) }

// EdgeIndex returns the first-seen index of a relation label, if registered.
func (v *View) EdgeIndex(label string) (int, bool) { return v.edges.lookup(label) }

// MustNodeIndex resolves the subject or object of t.
// A miss means the registries are corrupted, so it panics.
func (v *View) MustNodeIndex(label string, t triple.Triple) int {
	idx, ok := v.nodes.lookup(label)
	if !ok {
		panic(fmt.Sprintf(panicUnresolvedNode, label, t))
	}

	return idx
}

// MustEdgeIndex resolves the relation of t; panics like MustNodeIndex.
func (v *View) MustEdgeIndex(t triple.Triple) int {
	idx, ok := v.edges.lookup(t.Relation())
	if !ok {
		panic(fmt.Sprintf(panicUnresolvedEdge, t.Relation(), t))
	}

	return idx
}
