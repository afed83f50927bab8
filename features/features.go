// SPDX-License-Identifier: MIT

// Package features turns graph labels into dense float32 feature matrices by
// looking them up in an embedding.Source.
//
// Rows follow registration order: row i of NodeFeatures is nodes[i], row i of
// EdgeEmbeddings is edges[i]. An undirected graph registers one edge entry per
// triple, so its EdgeEmbeddings has one row per triple.
//
// A label the source does not know, or whose vector has the wrong length,
// yields a zero row. Missing embeddings are expected and never an error.
package features

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/triples/core"
	"github.com/katalvlaran/triples/embedding"
	"github.com/katalvlaran/triples/matrix"
)

// ErrSourceNil is returned when a nil embedding.Source is passed to a lookup builder.
var ErrSourceNil = errors.New("features: embedding source is nil")

// NodeFeatures builds the n_nodes × d node feature matrix of g, d = src.Dims().
//
// Errors:
//   - matrix.ErrGraphNil, ErrSourceNil.
//   - matrix.ErrInvalidDimensions when src reports a negative Dims.
func NodeFeatures(g *core.Graph, src embedding.Source) (*matrix.Dense[float32], error) {
	if g == nil {
		return nil, matrix.ErrGraphNil
	}

	return NodeFeaturesOf(g.Snapshot(), src)
}

// NodeFeaturesOf is NodeFeatures over an existing snapshot.
func NodeFeaturesOf(v *core.View, src embedding.Source) (*matrix.Dense[float32], error) {
	if v == nil {
		return nil, matrix.ErrGraphNil
	}

	return lookupRows("NodeFeatures", v.Nodes(), src)
}

// EdgeEmbeddings builds the n_edges × d relation feature matrix of g.
// Repeated relation entries (undirected graphs) get repeated rows.
//
// Errors: as NodeFeatures.
func EdgeEmbeddings(g *core.Graph, src embedding.Source) (*matrix.Dense[float32], error) {
	if g == nil {
		return nil, matrix.ErrGraphNil
	}

	return EdgeEmbeddingsOf(g.Snapshot(), src)
}

// EdgeEmbeddingsOf is EdgeEmbeddings over an existing snapshot.
func EdgeEmbeddingsOf(v *core.View, src embedding.Source) (*matrix.Dense[float32], error) {
	if v == nil {
		return nil, matrix.ErrGraphNil
	}

	return lookupRows("EdgeEmbeddings", v.Edges(), src)
}

// lookupRows fills one row per label.
//
// Implementation:
//   - Stage 1: allocate a zero len(labels) × d matrix.
//   - Stage 2: copy each hit of the right length into its row; misses stay zero.
//
// Complexity:
//   - Time O(n*d) plus n lookups, Space O(n*d).
func lookupRows(op string, labels []string, src embedding.Source) (*matrix.Dense[float32], error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrSourceNil)
	}
	d := src.Dims()
	m, err := matrix.NewDense[float32](len(labels), d)
	if err != nil {
		return nil, fmt.Errorf("%s: dims %d: %w", op, d, err)
	}
	for i, label := range labels {
		vec, ok := src.Lookup(label)
		if !ok || len(vec) != d {
			continue
		}
		if err = m.SetRow(i, vec); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", op, i, err)
		}
	}

	return m, nil
}
