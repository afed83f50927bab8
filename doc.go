// Package triples turns a knowledge graph of (subject, relation, object)
// triples into matrices for downstream numeric work.
//
// 🚀 What you get
//
//	• triple/     the Triple value type
//	• core/       Graph: ordered node/edge registries, thread-safe AddTriple, snapshots
//	• matrix/     Dense and CSR storage, adjacency and edge-relation builders
//	• embedding/  the label → vector capability: in-memory Table, text loader, eino adapter
//	• features/   node/edge feature matrices and a concurrent BuildAll
//	• loader/     HCL triple files → Graph
//	• cmd/kgdemo  a small driver printing every view
//
// ✨ Guarantees
//
//   - Node indices are assigned on first sight and never change.
//   - Undirected graphs keep one edge entry per triple; directed graphs keep one per label.
//   - Builders read an immutable View, so they can run side by side.
//   - Missing embeddings become zero rows, never errors.
//
// Quick start:
//
//	g := core.FromTuples([][3]string{
//		{"simon", "plays", "tennis"},
//		{"tennis", "plays", "simon"},
//	})
//	am, _ := matrix.Adjacency(g)     // 2×2 presence matrix
//	em, _ := matrix.EdgeRelations(g) // 2×2 relation indices, -1 where absent
//	fmt.Print(am, em.ToDenseFilled())
package triples
