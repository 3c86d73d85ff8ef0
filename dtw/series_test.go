package dtw_test

import (
	"testing"

	"github.com/katalvlaran/dtwbasic/dtw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestSeries_Layouts checks that the flattened, row-wise and gonum
// constructors agree on the same three 2-component samples.
func TestSeries_Layouts(t *testing.T) {
	flat, err := dtw.NewSeries([]float64{1, 2, 3, 10, 20, 30}, 2)
	require.NoError(t, err)
	rows, err := dtw.FromRows([][]float64{{1, 10}, {2, 20}, {3, 30}})
	require.NoError(t, err)
	dense, err := dtw.FromMatrix(mat.NewDense(3, 2, []float64{1, 10, 2, 20, 3, 30}))
	require.NoError(t, err)

	for _, s := range []dtw.Series{flat, rows, dense} {
		assert.Equal(t, 3, s.Len())
		assert.Equal(t, 2, s.Dim())
		assert.Equal(t, 20.0, s.At(1, 1))
		assert.Equal(t, []float64{3, 30}, s.Sample(2, make([]float64, 4)))
	}
}

// TestSeries_ConstructorErrors covers every rejected shape.
func TestSeries_ConstructorErrors(t *testing.T) {
	_, err := dtw.NewSeries([]float64{1, 2}, 0)
	assert.ErrorIs(t, err, dtw.ErrBadInput)

	_, err = dtw.NewSeries(nil, 1)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput)

	_, err = dtw.NewSeries([]float64{1, 2, 3}, 2)
	assert.ErrorIs(t, err, dtw.ErrDimensionMismatch)

	_, err = dtw.FromRows(nil)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput)

	_, err = dtw.FromRows([][]float64{{}})
	assert.ErrorIs(t, err, dtw.ErrBadInput)

	_, err = dtw.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, dtw.ErrDimensionMismatch)

	_, err = dtw.FromMatrix(&mat.Dense{})
	assert.ErrorIs(t, err, dtw.ErrEmptyInput)
}

// TestSeries_ZNormalize standardises each component independently.
func TestSeries_ZNormalize(t *testing.T) {
	s, err := dtw.FromRows([][]float64{{1, 5}, {2, 5}, {3, 5}})
	require.NoError(t, err)

	z := s.ZNormalize()
	require.Equal(t, 3, z.Len())
	require.Equal(t, 2, z.Dim())
	for i, want := range []float64{-1, 0, 1} {
		assert.InDelta(t, want, z.At(i, 0), 1e-12)
		assert.Equal(t, 0.0, z.At(i, 1), "constant component collapses to zero")
	}
	assert.Equal(t, 2.0, s.At(1, 0), "input left untouched")

	one := dtw.Univariate([]float64{42}).ZNormalize()
	assert.Equal(t, 0.0, one.At(0, 0), "single sample has no spread")
}
