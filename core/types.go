// SPDX-License-Identifier: MIT

// Package core defines the knowledge-graph aggregate: a Graph accumulating
// triple.Triple statements while maintaining node and edge label registries.
//
// This file declares EdgePolicy, GraphOption, Graph and the NewGraph
// constructor.
package core

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/triples/triple"
)

// EdgePolicy selects how relation labels are registered as edges.
//
//   - Undirected: every AddTriple appends its relation (multiset, one entry per triple).
//   - Directed:   a relation is appended only the first time it is seen (set).
//
// The policy is fixed for the graph's lifetime.
type EdgePolicy uint8

const (
	// Undirected keeps one edge entry per triple. Default.
	Undirected EdgePolicy = iota

	// Directed de-duplicates edge labels exactly like nodes.
	Directed
)

// String returns "undirected" or "directed".
func (p EdgePolicy) String() string {
	switch p {
	case Undirected:
		return "undirected"
	case Directed:
		return "directed"
	default:
		return fmt.Sprintf("EdgePolicy(%d)", uint8(p))
	}
}

// dedup reports whether the policy registers each edge label once.
// Unknown policies are a programmer error.
func (p EdgePolicy) dedup() bool {
	switch p {
	case Undirected:
		return false
	case Directed:
		return true
	default:
		panic(fmt.Sprintf(panicUnknownPolicy, uint8(p)))
	}
}

const panicUnknownPolicy = "core: unknown EdgePolicy %d"

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithEdgePolicy sets the edge-registration policy.
// Panics on an undefined policy value (programmer error).
func WithEdgePolicy(p EdgePolicy) GraphOption {
	_ = p.dedup() // validate eagerly

	return func(g *Graph) { g.policy = p }
}

// WithDirected is shorthand for WithEdgePolicy(Directed).
func WithDirected() GraphOption {
	return WithEdgePolicy(Directed)
}

// Graph is a collection of triples and an abstraction for subgraphs of a
// knowledge graph.
//
// Invariants:
//   - nodes holds every subject/object label exactly once, in first-seen order;
//     a node's index never changes once assigned.
//   - under Directed, edges has set semantics; under Undirected,
//     edges.len() == len(triples).
//   - len(triples) equals the number of AddTriple calls.
//
// mu guards every field below; AddTriple holds the write lock for the whole
// register-register-register-append sequence.
type Graph struct {
	mu sync.RWMutex

	policy EdgePolicy // fixed at construction

	triples []triple.Triple // insertion order, duplicates kept
	nodes   *registry       // subject/object labels, always de-duplicated
	edges   *registry       // relation labels, de-duplicated per policy
}

// NewGraph creates an empty Graph.
// By default the graph is Undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		policy:  Undirected,
		triples: make([]triple.Triple, 0),
		nodes:   newRegistry(),
		edges:   newRegistry(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
