package embedding_test

import (
	"context"
	"errors"
	"testing"

	einoemb "github.com/cloudwego/eino/components/embedding"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triples/embedding"
)

// fakeEmbedder maps each text to {len(text), index-in-call} and records batches.
type fakeEmbedder struct {
	calls   [][]string
	failAt  int // 1-based call number to fail; 0 = never
	short   bool
	widthAt map[string]int
}

var _ einoemb.Embedder = (*fakeEmbedder)(nil)

func (f *fakeEmbedder) EmbedStrings(_ context.Context, texts []string, _ ...einoemb.Option) ([][]float64, error) {
	f.calls = append(f.calls, append([]string(nil), texts...))
	if f.failAt == len(f.calls) {
		return nil, errors.New("upstream unavailable")
	}
	out := make([][]float64, 0, len(texts))
	for i, s := range texts {
		w := 2
		if n, ok := f.widthAt[s]; ok {
			w = n
		}
		v := make([]float64, w)
		v[0] = float64(len(s))
		if w > 1 {
			v[1] = float64(i)
		}
		out = append(out, v)
	}
	if f.short {
		out = out[:len(out)-1]
	}

	return out, nil
}

func TestPrecompute_BatchesAndDedup(t *testing.T) {
	emb := &fakeEmbedder{}
	tbl, err := embedding.Precompute(context.Background(), emb,
		[]string{"simon", "plays", "tennis", "plays", "simon"},
		embedding.WithBatchSize(2))
	require.NoError(t, err)

	require.Equal(t, [][]string{{"simon", "plays"}, {"tennis"}}, emb.calls)
	require.Equal(t, 2, tbl.Dims())
	require.Equal(t, []string{"simon", "plays", "tennis"}, tbl.Labels())
	v, ok := tbl.Lookup("tennis")
	require.True(t, ok)
	require.Equal(t, []float32{6, 0}, v)
}

func TestPrecompute_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := embedding.Precompute(ctx, &fakeEmbedder{}, nil)
	require.ErrorIs(t, err, embedding.ErrNoLabels)

	tbl, err := embedding.Precompute(ctx, &fakeEmbedder{}, nil, embedding.WithExpectedDims(4))
	require.NoError(t, err)
	require.Equal(t, 4, tbl.Dims())
	require.Zero(t, tbl.Len())

	_, err = embedding.Precompute(ctx, &fakeEmbedder{failAt: 2}, []string{"a", "b", "c"}, embedding.WithBatchSize(2))
	require.Error(t, err)
	require.Contains(t, err.Error(), "embed batch [2:3]")
	require.Contains(t, err.Error(), "upstream unavailable")

	_, err = embedding.Precompute(ctx, &fakeEmbedder{short: true}, []string{"a", "b"})
	require.ErrorIs(t, err, embedding.ErrDimensionMismatch)

	_, err = embedding.Precompute(ctx, &fakeEmbedder{widthAt: map[string]int{"b": 3}}, []string{"a", "b"})
	require.ErrorIs(t, err, embedding.ErrDimensionMismatch)

	_, err = embedding.Precompute(ctx, &fakeEmbedder{}, []string{"a"}, embedding.WithExpectedDims(5))
	require.ErrorIs(t, err, embedding.ErrDimensionMismatch)
}

func TestPrecompute_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	emb := &fakeEmbedder{}

	_, err := embedding.Precompute(ctx, emb, []string{"a"})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, emb.calls)
}
