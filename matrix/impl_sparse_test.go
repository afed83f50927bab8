package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triples/matrix"
)

func TestCOO_InvalidShapeAndBounds(t *testing.T) {
	_, err := matrix.NewCOO[int32](-1, 2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	b, err := matrix.NewCOO[int32](2, 2, -1)
	require.NoError(t, err)
	require.ErrorIs(t, b.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, b.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestCSR_FillZeroAndLastWriteWins(t *testing.T) {
	b, err := matrix.NewCOO[int32](3, 3, -1)
	require.NoError(t, err)
	require.NoError(t, b.Set(2, 1, 5))
	require.NoError(t, b.Set(0, 2, 0)) // explicit zero
	require.NoError(t, b.Set(2, 1, 7)) // overwrite
	require.NoError(t, b.Set(2, 0, 4))

	m := b.ToCSR()
	rows, cols := m.Shape()
	require.Equal(t, 3, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, int32(-1), m.Fill())
	require.Equal(t, 3, m.NNZ())

	v, err := m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, int32(7), v)

	v, err = m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, int32(0), v, "explicit zero is stored")

	v, err = m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, int32(-1), v, "absent cell reads as fill")

	_, ok := m.Stored(1, 1)
	require.False(t, ok)
	sv, ok := m.Stored(0, 2)
	require.True(t, ok)
	require.Zero(t, sv)
	_, ok = m.Stored(9, 9)
	require.False(t, ok)

	_, err = m.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.Equal(t, [][]int32{{0, 0, 0}, {0, 0, 0}, {4, 7, 0}}, m.ToDense().ToRows())
	require.Equal(t, [][]int32{{-1, -1, 0}, {-1, -1, -1}, {4, 7, -1}}, m.ToDenseFilled().ToRows())
}

func TestCSR_DoIsRowMajor(t *testing.T) {
	b, _ := matrix.NewCOO[int32](3, 3, -1)
	_ = b.Set(2, 0, 1)
	_ = b.Set(0, 2, 2)
	_ = b.Set(0, 1, 3)
	_ = b.Set(1, 1, 4)

	type cell struct{ i, j int }
	var order []cell
	b.ToCSR().Do(func(i, j int, _ int32) { order = append(order, cell{i, j}) })

	require.Equal(t, []cell{{0, 1}, {0, 2}, {1, 1}, {2, 0}}, order)
}

func TestCSR_Empty(t *testing.T) {
	b, err := matrix.NewCOO[int32](0, 0, -1)
	require.NoError(t, err)
	m := b.ToCSR()

	require.Zero(t, m.NNZ())
	require.Zero(t, m.Rows())
	require.Zero(t, m.Cols())
	require.Empty(t, m.ToDense().ToRows())
}
