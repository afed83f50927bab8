package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/triples/core"
	"github.com/katalvlaran/triples/matrix"
	"github.com/katalvlaran/triples/triple"
)

// ringGraph builds n triples v_i --r_(i%k)--> v_(i+1 mod n): n nodes, n edge entries.
func ringGraph(n, k int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddTriple(triple.New(
			fmt.Sprintf("v%d", i),
			fmt.Sprintf("r%d", i%k),
			fmt.Sprintf("v%d", (i+1)%n),
		))
	}

	return g
}

// BenchmarkAdjacency_Ring measures the dense builder on a 1000-node ring.
func BenchmarkAdjacency_Ring(b *testing.B) {
	v := ringGraph(1000, 16).Snapshot()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.AdjacencyOf(v)
	}
}

// BenchmarkEdgeRelations_Ring measures COO build + CSR compression.
func BenchmarkEdgeRelations_Ring(b *testing.B) {
	v := ringGraph(1000, 16).Snapshot()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.EdgeRelationsOf(v)
	}
}
