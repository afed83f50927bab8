// Package core provides the in-memory knowledge graph: an ordered collection
// of triple.Triple statements plus the node and edge label registries derived
// from them.
//
// A Graph G = (T, V, E) keeps:
//
//   - T: triples, in insertion order, duplicates kept verbatim
//   - V: nodes, every label seen as a subject or object, once each
//   - E: edges, relation labels registered under the graph's EdgePolicy
//
// Edge policies:
//
//	– Undirected (default)
//	    One edge entry per triple; E is a multiset and len(E) == len(T).
//
//	– Directed (WithDirected / WithEdgePolicy(Directed))
//	    A relation label is registered once, like a node.
//
// Indices:
//
//	A label's index is the position of its first registration. It is assigned
//	when the label is first seen and never changes. Registries are
//	order-preserving maps, so NodeIndex/EdgeIndex are O(1).
//
// Construction:
//
//	g := core.NewGraph()                       // empty, undirected
//	g.AddTriple(triple.New("simon", "plays", "tennis"))
//
//	g := core.FromTuples([][3]string{          // bulk, undirected
//		{"simon", "plays", "tennis"},
//		{"tennis", "plays", "simon"},
//	})
//
// Core Methods:
//
//	AddTriple(t triple.Triple)              // O(1) amortized
//	NodeIndex(label) (int, bool)            // O(1)
//	EdgeIndex(label) (int, bool)            // O(1)
//	NNodes(), NEdges(), NTriples(), Len()   // O(1)
//	Nodes(), Edges(), Triples()             // O(n) copies
//	Snapshot() *View                        // O(T+V+E)
//	Clone() *Graph, Equal(*Graph) bool
//
// Concurrency:
//
//	AddTriple applies its four steps (subject, object, relation, triple)
//	under one write lock. Queries take the read lock. Matrix and feature
//	builders work on a View, which is immutable and lock-free.
//
// Errors:
//
//	Missing labels are ordinary (ok == false). A triple whose endpoints cannot
//	be resolved inside a View is an internal-consistency fault and panics.
package core
