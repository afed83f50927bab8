// SPDX-License-Identifier: MIT
// Package core_test verifies Graph registration rules, indices and rendering.

package core_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triples/core"
	"github.com/katalvlaran/triples/triple"
)

// TestGraph_Fixture ASSERTS the acceptance counts and node order.
func TestGraph_Fixture(t *testing.T) {
	g := core.FromTuples(SRO)

	require.Equal(t, 4, g.NNodes())
	require.Equal(t, 8, g.NEdges())
	require.Equal(t, 8, g.NTriples())
	require.Equal(t, 8, g.Len())
	require.False(t, g.IsEmpty())
	require.True(t, g.IsUndirected())
	require.False(t, g.IsDirected())

	if diff := cmp.Diff([]string{Simon, Tennis, Melbourne, Australia}, g.Nodes()); diff != "" {
		t.Fatalf("Nodes() mismatch (-want +got):\n%s", diff)
	}
	wantEdges := []string{Plays, Lives, Sport, Located, Plays, Lives, Sport, Located}
	if diff := cmp.Diff(wantEdges, g.Edges()); diff != "" {
		t.Fatalf("Edges() mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []string{Plays, Lives, Sport, Located}, g.DistinctEdges())
}

// TestGraph_BulkConstructorsAgree ASSERTS FromTriples, FromTuples and
// repeated AddTriple produce equal graphs.
func TestGraph_BulkConstructorsAgree(t *testing.T) {
	a := core.FromTuples(SRO)
	b := core.FromTriples(sroTriples())
	c := core.NewGraph()
	for _, tr := range sroTriples() {
		c.AddTriple(tr)
	}

	require.True(t, a.Equal(b))
	require.True(t, b.Equal(c))
	require.Equal(t, a.Nodes(), c.Nodes())
	require.Equal(t, a.Edges(), c.Edges())
	require.Equal(t, sroTriples(), a.Triples())
}

// TestGraph_EdgePolicies ASSERTS the dedup-vs-multiset rule per policy.
func TestGraph_EdgePolicies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		graph     func() *core.Graph
		wantEdges []string
	}{
		{
			name:      "Undirected_Multiset",
			graph:     func() *core.Graph { return core.FromTuples(SRO) },
			wantEdges: []string{Plays, Lives, Sport, Located, Plays, Lives, Sport, Located},
		},
		{
			name:      "Directed_Set",
			graph:     newDirectedSRO,
			wantEdges: []string{Plays, Lives, Sport, Located},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := tc.graph()
			require.Equal(t, tc.wantEdges, g.Edges())
			require.Equal(t, len(tc.wantEdges), g.NEdges())
			require.Equal(t, 8, g.NTriples(), "triple count is independent of dedup")
			require.Equal(t, 4, g.NNodes())
		})
	}
}

// TestGraph_Directed ASSERTS directed flags and set semantics for edges.
func TestGraph_Directed(t *testing.T) {
	g := newDirectedSRO()

	require.True(t, g.IsDirected())
	require.False(t, g.IsUndirected())
	require.Equal(t, core.Directed, g.Policy())
	require.Equal(t, g.DistinctEdges(), g.Edges())
}

// TestGraph_DuplicateTriplesKept ASSERTS n_triples counts every call.
func TestGraph_DuplicateTriplesKept(t *testing.T) {
	g := core.NewGraph()
	tr := triple.New("a", "r", "b")
	for i := 0; i < 5; i++ {
		g.AddTriple(tr)
	}

	require.Equal(t, 5, g.NTriples())
	require.Equal(t, 2, g.NNodes())
	require.Equal(t, 5, g.NEdges())

	d := core.NewGraph(core.WithDirected())
	for i := 0; i < 5; i++ {
		d.AddTriple(tr)
	}
	require.Equal(t, 5, d.NTriples())
	require.Equal(t, 1, d.NEdges())
}

// TestGraph_NodeIndexStable ASSERTS first-seen indices never move.
func TestGraph_NodeIndexStable(t *testing.T) {
	g := core.NewGraph()

	_, ok := g.NodeIndex(Simon)
	require.False(t, ok, "absent label must be reported as absent")

	g.AddTriple(triple.New(Simon, Plays, Tennis))
	si, ok := g.NodeIndex(Simon)
	require.True(t, ok)
	require.Equal(t, 0, si)
	ti, _ := g.NodeIndex(Tennis)
	require.Equal(t, 1, ti)

	// Later insertions, including re-use of known labels, keep indices.
	g.AddTriple(triple.New(Melbourne, Lives, Simon))
	g.AddTriple(triple.New(Tennis, Sport, Australia))
	si2, _ := g.NodeIndex(Simon)
	ti2, _ := g.NodeIndex(Tennis)
	mi, _ := g.NodeIndex(Melbourne)
	ai, _ := g.NodeIndex(Australia)
	require.Equal(t, []int{0, 1, 2, 3}, []int{si2, ti2, mi, ai})

	// Relations are not nodes.
	_, ok = g.NodeIndex(Plays)
	require.False(t, ok)
}

// TestGraph_EdgeIndexFirstSeen ASSERTS EdgeIndex reports the first occurrence
// even when the multiset holds later duplicates.
func TestGraph_EdgeIndexFirstSeen(t *testing.T) {
	g := core.FromTuples(SRO)

	for label, want := range map[string]int{Plays: 0, Lives: 1, Sport: 2, Located: 3} {
		got, ok := g.EdgeIndex(label)
		require.True(t, ok, label)
		require.Equal(t, want, got, label)
	}
	_, ok := g.EdgeIndex(Simon)
	require.False(t, ok)
}

// TestGraph_SelfLoopAndEmptyLabels ASSERTS no label validation happens.
func TestGraph_SelfLoopAndEmptyLabels(t *testing.T) {
	g := core.NewGraph()
	g.AddTriple(triple.New("x", "self", "x"))
	g.AddTriple(triple.New("", "", ""))

	require.Equal(t, []string{"x", ""}, g.Nodes())
	idx, ok := g.NodeIndex("")
	require.True(t, ok)
	require.Equal(t, 1, idx)
}

// TestGraph_Empty ASSERTS zero-value accessors.
func TestGraph_Empty(t *testing.T) {
	g := core.NewGraph()

	require.True(t, g.IsEmpty())
	require.Zero(t, g.Len())
	require.Empty(t, g.Nodes())
	require.Empty(t, g.Edges())
	require.Empty(t, g.Triples())
	require.Equal(t, "", g.String())
}

// TestGraph_AccessorsReturnCopies ASSERTS callers cannot corrupt registries.
func TestGraph_AccessorsReturnCopies(t *testing.T) {
	g := core.FromTuples(SRO)

	nodes := g.Nodes()
	nodes[0] = "mutated"
	ts := g.Triples()
	ts[0] = triple.New("x", "y", "z")

	require.Equal(t, Simon, g.Nodes()[0])
	require.Equal(t, triple.New(Simon, Plays, Tennis), g.Triples()[0])
}

// TestGraph_Rendering ASSERTS Display/Debug forms join triples line by line.
func TestGraph_Rendering(t *testing.T) {
	g := core.FromTuples(SRO[:2])

	require.Equal(t,
		"(simon -- plays -- tennis)\n(simon -- lives -- melbourne)\n",
		g.String())
	require.Equal(t,
		"(\"simon\" -- \"plays\" -- \"tennis\")\n(\"simon\" -- \"lives\" -- \"melbourne\")\n",
		fmt.Sprintf("%#v", g))
}

// TestGraph_CloneIndependence ASSERTS clones share nothing with the source.
func TestGraph_CloneIndependence(t *testing.T) {
	g := core.FromTuples(SRO)
	c := g.Clone()
	require.True(t, g.Equal(c))

	c.AddTriple(triple.New("australia", "near", "new zealand"))
	require.False(t, g.Equal(c))
	require.Equal(t, 4, g.NNodes())
	require.Equal(t, 5, c.NNodes())
	_, ok := g.NodeIndex("new zealand")
	require.False(t, ok)
}

// TestGraph_Equal ASSERTS policy and order participate in equality.
func TestGraph_Equal(t *testing.T) {
	var nilGraph *core.Graph
	require.True(t, nilGraph.Equal(nil))
	require.False(t, core.NewGraph().Equal(nil))

	require.False(t, core.FromTuples(SRO).Equal(newDirectedSRO()), "policy differs")

	reversed := make([][3]string, len(SRO))
	for i := range SRO {
		reversed[len(SRO)-1-i] = SRO[i]
	}
	require.False(t, core.FromTuples(SRO).Equal(core.FromTuples(reversed)), "order differs")
}
