// SPDX-License-Identifier: MIT
//
// File: registry.go
// Role: Order-preserving label registry backing Graph.nodes and Graph.edges.
// Determinism:
//   - labels() follows registration order; distinct() follows first-seen order.
// Concurrency:
//   - None; callers hold Graph.mu.

package core

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// registry records label registrations.
//
//   - seq is the registration sequence; it may repeat a label when the
//     caller registers without de-duplication (undirected edges).
//   - index maps label → position of its FIRST registration in seq and keeps
//     first-seen order, so lookups are O(1) and never observe a later duplicate.
type registry struct {
	seq   []string
	index *orderedmap.OrderedMap[string, int]
}

func newRegistry() *registry {
	return &registry{
		seq:   make([]string, 0),
		index: orderedmap.New[string, int](),
	}
}

// register appends label to seq unless dedup is set and the label is known.
// Returns the label's stable (first-seen) index.
//
// Complexity: O(1) amortized.
func (r *registry) register(label string, dedup bool) int {
	idx, seen := r.index.Get(label)
	if seen && dedup {
		return idx
	}
	r.seq = append(r.seq, label)
	if !seen {
		idx = len(r.seq) - 1
		r.index.Set(label, idx)
	}

	return idx
}

// lookup returns the first-seen index of label.
func (r *registry) lookup(label string) (int, bool) {
	return r.index.Get(label)
}

// len is the length of the registration sequence.
func (r *registry) len() int { return len(r.seq) }

// labels returns a copy of the registration sequence.
func (r *registry) labels() []string {
	out := make([]string, len(r.seq))
	copy(out, r.seq)

	return out
}

// distinct returns each label once, in first-seen order.
func (r *registry) distinct() []string {
	out := make([]string, 0, r.index.Len())
	for pair := r.index.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}

// clone returns an independent copy preserving order and indices.
// Complexity: O(len(seq)).
func (r *registry) clone() *registry {
	cp := &registry{
		seq:   r.labels(),
		index: orderedmap.New[string, int](orderedmap.WithCapacity[string, int](r.index.Len())),
	}
	for pair := r.index.Oldest(); pair != nil; pair = pair.Next() {
		cp.index.Set(pair.Key, pair.Value)
	}

	return cp
}
