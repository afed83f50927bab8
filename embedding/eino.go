// SPDX-License-Identifier: MIT

package embedding

import (
	"context"

	einoemb "github.com/cloudwego/eino/components/embedding"
	"github.com/pkg/errors"
)

// DefaultBatchSize is the number of labels sent per EmbedStrings call.
const DefaultBatchSize = 64

// PrecomputeOption configures Precompute.
type PrecomputeOption func(*precomputeConfig)

type precomputeConfig struct {
	batchSize int
	dims      int
	embedOpts []einoemb.Option
}

// WithBatchSize sets how many labels go into one EmbedStrings call.
// Values <= 0 fall back to DefaultBatchSize.
func WithBatchSize(n int) PrecomputeOption {
	return func(c *precomputeConfig) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

// WithExpectedDims fixes the vector length up front; every returned vector
// must match it, and an empty label set yields an empty table of that size.
func WithExpectedDims(d int) PrecomputeOption {
	return func(c *precomputeConfig) { c.dims = d }
}

// WithEmbedOptions forwards eino options (model, etc.) to every EmbedStrings call.
func WithEmbedOptions(opts ...einoemb.Option) PrecomputeOption {
	return func(c *precomputeConfig) { c.embedOpts = append(c.embedOpts, opts...) }
}

// Precompute embeds labels once through an eino Embedder and freezes the
// result into a Table, so the feature builders stay synchronous.
//
// Implementation:
//   - Stage 1: de-duplicate labels, keeping first-seen order.
//   - Stage 2: call EmbedStrings per batch; check ctx between batches.
//   - Stage 3: narrow float64 → float32 and Put into the table.
//
// Errors:
//   - Embedder errors and ctx errors, wrapped with the batch range.
//   - ErrDimensionMismatch when the embedder returns the wrong number of
//     vectors or a vector of the wrong length.
//   - ErrNoLabels when labels is empty and WithExpectedDims was not given.
func Precompute(ctx context.Context, emb einoemb.Embedder, labels []string, opts ...PrecomputeOption) (*Table, error) {
	cfg := precomputeConfig{batchSize: DefaultBatchSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	uniq := dedupLabels(labels)
	if len(uniq) == 0 {
		if cfg.dims <= 0 {
			return nil, ErrNoLabels
		}
		return NewTable(cfg.dims)
	}

	var tbl *Table
	if cfg.dims > 0 {
		var err error
		if tbl, err = NewTable(cfg.dims); err != nil {
			return nil, err
		}
	}
	for lo := 0; lo < len(uniq); lo += cfg.batchSize {
		hi := lo + cfg.batchSize
		if hi > len(uniq) {
			hi = len(uniq)
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "precompute batch [%d:%d]", lo, hi)
		}
		batch := uniq[lo:hi]
		vecs, err := emb.EmbedStrings(ctx, batch, cfg.embedOpts...)
		if err != nil {
			return nil, errors.Wrapf(err, "embed batch [%d:%d]", lo, hi)
		}
		if len(vecs) != len(batch) {
			return nil, errors.Wrapf(ErrDimensionMismatch, "batch [%d:%d]: %d vectors for %d labels", lo, hi, len(vecs), len(batch))
		}
		if tbl == nil {
			if tbl, err = NewTable(len(vecs[0])); err != nil {
				return nil, errors.Wrapf(err, "batch [%d:%d]", lo, hi)
			}
		}
		for i, v := range vecs {
			if err = tbl.Put(batch[i], narrow(v)); err != nil {
				return nil, err
			}
		}
	}

	return tbl, nil
}

func dedupLabels(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}

	return out
}

func narrow(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}

	return out
}
