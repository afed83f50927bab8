// SPDX-License-Identifier: MIT

// Package embedding models the external embedding capability consumed by the
// feature builders: given a label, optionally return a fixed-length float32
// vector.
//
// The package ships three ways of obtaining a Source:
//
//   - NewTable + Put: build an in-memory table by hand.
//   - LoadText / LoadTextFile: read word2vec/fastText text vectors.
//   - Precompute: run labels through an eino embedding.Embedder once.
//
// How a Source is populated is irrelevant to the feature builders; they only
// call Dims and Lookup.
package embedding

import (
	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Sentinel errors.
var (
	// ErrInvalidDims indicates a non-positive vector dimensionality.
	ErrInvalidDims = errors.New("embedding: dims must be > 0")

	// ErrDimensionMismatch indicates a vector whose length differs from Dims().
	ErrDimensionMismatch = errors.New("embedding: vector length mismatch")

	// ErrMalformedLine indicates an unparsable line in a text vector file.
	ErrMalformedLine = errors.New("embedding: malformed line")

	// ErrNoLabels indicates Precompute had nothing to embed and no WithDims hint.
	ErrNoLabels = errors.New("embedding: no labels to embed")
)

// Source is the embedding capability.
//
// Lookup returns the vector for label and true, or nil and false when the
// label is unknown. A returned slice must be treated as read-only.
// Dims is the length of every vector Lookup returns.
type Source interface {
	Lookup(label string) ([]float32, bool)
	Dims() int
}

// Table is an in-memory Source keyed by label, iterated in insertion order.
// Not safe for concurrent Put; concurrent Lookup is fine.
type Table struct {
	dims int
	vecs *orderedmap.OrderedMap[string, []float32]
}

var _ Source = (*Table)(nil)

// NewTable creates an empty table of dims-length vectors.
//
// Errors:
//   - ErrInvalidDims when dims <= 0.
func NewTable(dims int) (*Table, error) {
	if dims <= 0 {
		return nil, errors.Wrapf(ErrInvalidDims, "NewTable(%d)", dims)
	}

	return &Table{dims: dims, vecs: orderedmap.New[string, []float32]()}, nil
}

// Put stores a copy of vec under label, replacing any previous vector while
// keeping the label's original position.
//
// Errors:
//   - ErrDimensionMismatch when len(vec) != Dims().
func (t *Table) Put(label string, vec []float32) error {
	if len(vec) != t.dims {
		return errors.Wrapf(ErrDimensionMismatch, "Put(%q): len %d, want %d", label, len(vec), t.dims)
	}
	cp := make([]float32, len(vec))
	copy(cp, vec)
	t.vecs.Set(label, cp)

	return nil
}

// Lookup implements Source.
func (t *Table) Lookup(label string) ([]float32, bool) {
	return t.vecs.Get(label)
}

// Dims implements Source.
func (t *Table) Dims() int { return t.dims }

// Len returns the number of labels stored.
func (t *Table) Len() int { return t.vecs.Len() }

// Labels returns the stored labels in first-insertion order.
func (t *Table) Labels() []string {
	out := make([]string, 0, t.vecs.Len())
	for pair := t.vecs.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}
