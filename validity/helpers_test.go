package validity_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/bsseq/matrix"
	"github.com/stretchr/testify/require"
)

// validPair builds an r×c pair with 0 <= M <= Cov and finite Cov everywhere.
func validPair(t *testing.T, r, c int) (m, cov *matrix.Dense) {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	cov, err = matrix.NewDense(r, c)
	require.NoError(t, err)

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			mv := float64((i + 2*j) % 5)
			require.NoError(t, m.Set(i, j, mv))
			require.NoError(t, cov.Set(i, j, mv+float64(i%3)))
		}
	}

	return m, cov
}

// set writes v at (i,j) and fails the test on error.
func set(t *testing.T, d *matrix.Dense, i, j int, v float64) {
	t.Helper()
	require.NoError(t, d.Set(i, j, v))
}

// at reads (i,j) and fails the test on error.
func at(t *testing.T, d *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := d.At(i, j)
	require.NoError(t, err)

	return v
}

// countingMatrix counts how many columns were fetched across all extractors.
type countingMatrix struct {
	matrix.Matrix
	fetched atomic.Int64
}

func (c *countingMatrix) Columns(start, length int) (matrix.Extractor, error) {
	ext, err := c.Matrix.Columns(start, length)
	if err != nil {
		return nil, err
	}

	return &countingExtractor{inner: ext, n: &c.fetched}, nil
}

type countingExtractor struct {
	inner matrix.Extractor
	n     *atomic.Int64
}

func (e *countingExtractor) Fetch(buf []float64) []float64 {
	e.n.Add(1)
	return e.inner.Fetch(buf)
}

// faultyMatrix panics while fetching column panicCol, or fails Columns
// outright when columnsErr is set.
type faultyMatrix struct {
	matrix.Matrix
	panicCol   int
	columnsErr error
}

var errBackend = errors.New("backend unavailable")

func (f *faultyMatrix) Columns(start, length int) (matrix.Extractor, error) {
	if f.columnsErr != nil {
		return nil, f.columnsErr
	}
	ext, err := f.Matrix.Columns(start, length)
	if err != nil {
		return nil, err
	}

	return &faultyExtractor{inner: ext, col: start, panicCol: f.panicCol}, nil
}

type faultyExtractor struct {
	inner         matrix.Extractor
	col, panicCol int
}

func (e *faultyExtractor) Fetch(buf []float64) []float64 {
	if e.col == e.panicCol {
		panic("corrupt chunk")
	}
	e.col++

	return e.inner.Fetch(buf)
}

// shapePanicMatrix panics as soon as its shape is queried.
type shapePanicMatrix struct{ matrix.Matrix }

func (shapePanicMatrix) Rows() int { panic("no shape") }
