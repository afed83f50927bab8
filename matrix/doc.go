// Package matrix offers the array views of a knowledge graph.
//
// The matrix package provides:
//
//   - Dense[T]: row-major container with safe At/Set accessors.
//   - CSR[T]: compressed sparse rows with an explicit fill value, built via COO.
//   - Adjacency: n_nodes × n_nodes binary matrix, [s,o] = 1 iff a triple
//     links subject s to object o.
//   - EdgeRelations: n_edges × n_edges sparse matrix, [s,o] = index of the
//     relation of the last triple linking s to o, fill RelationAbsent (-1).
//
// Builders accept a *core.Graph (snapshotted internally) or a *core.View, so
// several builders can share one snapshot.
//
// Matrices are best for small graphs where O(V²) memory is acceptable.
package matrix
