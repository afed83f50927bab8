// SPDX-License-Identifier: MIT

package features

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/triples/core"
	"github.com/katalvlaran/triples/embedding"
	"github.com/katalvlaran/triples/matrix"
)

// Views bundles every derived view of one graph snapshot.
// NodeFeatures and EdgeEmbeddings are nil when BuildAll was given no source.
type Views struct {
	Adjacency      *matrix.Dense[uint8]
	EdgeRelations  *matrix.CSR[int32]
	NodeFeatures   *matrix.Dense[float32]
	EdgeEmbeddings *matrix.Dense[float32]
}

// BuildAll snapshots g once and runs the adjacency, edge-relation,
// node-feature and edge-embedding builders concurrently over that snapshot.
//
// Implementation:
//   - Stage 1: validate g, take a View.
//   - Stage 2: one errgroup goroutine per builder, each writing its own field.
//   - Stage 3: return the first builder error, or the completed Views.
//
// Behavior highlights:
//   - AddTriple calls racing with BuildAll are either fully in the snapshot or not at all.
//   - src may be nil; the two feature matrices are then skipped.
//   - ctx is checked before each builder starts; builders themselves do not block.
//
// Errors:
//   - matrix.ErrGraphNil.
//   - matrix.ErrNodeIndexExceedsEdges from the edge-relation builder.
//   - ctx.Err() when ctx is done before a builder starts.
func BuildAll(ctx context.Context, g *core.Graph, src embedding.Source) (*Views, error) {
	if g == nil {
		return nil, matrix.ErrGraphNil
	}
	v := g.Snapshot()

	var out Views
	eg, ectx := errgroup.WithContext(ctx)
	run := func(name string, build func() error) {
		eg.Go(func() error {
			if err := ectx.Err(); err != nil {
				return err
			}
			if err := build(); err != nil {
				return fmt.Errorf("BuildAll %s: %w", name, err)
			}
			return nil
		})
	}

	run("adjacency", func() (err error) {
		out.Adjacency, err = matrix.AdjacencyOf(v)
		return err
	})
	run("edge relations", func() (err error) {
		out.EdgeRelations, err = matrix.EdgeRelationsOf(v)
		return err
	})
	if src != nil {
		run("node features", func() (err error) {
			out.NodeFeatures, err = NodeFeaturesOf(v, src)
			return err
		})
		run("edge embeddings", func() (err error) {
			out.EdgeEmbeddings, err = EdgeEmbeddingsOf(v, src)
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &out, nil
}
