package dtw

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Series is an immutable multivariate time series of n samples with dim
// components each. Samples are stored column-major, the layout numeric hosts
// hand across a call boundary: component k of sample i lives at data[i+n*k],
// i.e. dim stacked blocks of length n.
//
// The zero value is an empty series and is rejected by every DTW entry point.
type Series struct {
	data []float64
	n    int
	dim  int
}

// NewSeries wraps a flattened column-major block of dim components.
// The slice is not copied; callers must not mutate it while the Series is in use.
func NewSeries(data []float64, dim int) (Series, error) {
	if dim < 1 {
		return Series{}, fmt.Errorf("%w: dim=%d, want >= 1", ErrBadInput, dim)
	}
	if len(data) == 0 {
		return Series{}, ErrEmptyInput
	}
	if len(data)%dim != 0 {
		return Series{}, fmt.Errorf("%w: %d values are not a multiple of dim=%d",
			ErrDimensionMismatch, len(data), dim)
	}

	return Series{data: data, n: len(data) / dim, dim: dim}, nil
}

// Univariate wraps values as a one-component series without copying.
func Univariate(values []float64) Series {
	return Series{data: values, n: len(values), dim: 1}
}

// FromRows builds a series from one row per sample. All rows must have the
// same non-zero length.
func FromRows(rows [][]float64) (Series, error) {
	if len(rows) == 0 {
		return Series{}, ErrEmptyInput
	}
	n, dim := len(rows), len(rows[0])
	if dim == 0 {
		return Series{}, fmt.Errorf("%w: row 0 has no components", ErrBadInput)
	}

	data := make([]float64, n*dim)
	for i, row := range rows {
		if len(row) != dim {
			return Series{}, fmt.Errorf("%w: row %d has %d components, want %d",
				ErrDimensionMismatch, i, len(row), dim)
		}
		for k, v := range row {
			data[i+n*k] = v
		}
	}

	return Series{data: data, n: n, dim: dim}, nil
}

// FromMatrix copies a gonum matrix into a series: rows are samples, columns
// are components.
func FromMatrix(m mat.Matrix) (Series, error) {
	n, dim := m.Dims()
	if n == 0 || dim == 0 {
		return Series{}, ErrEmptyInput
	}
	data := make([]float64, n*dim)
	for k := 0; k < dim; k++ {
		mat.Col(data[k*n:(k+1)*n], k, m)
	}

	return Series{data: data, n: n, dim: dim}, nil
}

// Len returns the number of samples.
func (s Series) Len() int { return s.n }

// Dim returns the number of components per sample.
func (s Series) Dim() int { return s.dim }

// At returns component k of sample i (both 0-based).
func (s Series) At(i, k int) float64 { return s.data[i+s.n*k] }

// Sample gathers the components of sample i into dst and returns dst[:Dim()].
// dst must have room for Dim() values.
func (s Series) Sample(i int, dst []float64) []float64 {
	dst = dst[:s.dim]
	for k := range dst {
		dst[k] = s.data[i+s.n*k]
	}

	return dst
}

// ZNormalize returns a copy in which every component has zero mean and unit
// sample standard deviation. Components with zero (or undefined, n == 1)
// spread become all zeros.
func (s Series) ZNormalize() Series {
	out := Series{data: make([]float64, len(s.data)), n: s.n, dim: s.dim}
	for k := 0; k < s.dim; k++ {
		col := s.data[k*s.n : (k+1)*s.n]
		dst := out.data[k*s.n : (k+1)*s.n]
		mean, std := stat.MeanStdDev(col, nil)
		if std == 0 || math.IsNaN(std) {
			continue
		}
		for i, v := range col {
			dst[i] = (v - mean) / std
		}
	}

	return out
}
