// SPDX-License-Identifier: MIT

// Package matrix - compressed sparse column (CSC) storage.
//
// Layout:
//   - colPtr has Cols()+1 entries; the non-zeros of column j live at
//     positions [colPtr[j], colPtr[j+1]) of rowIdx/values.
//   - rowIdx is strictly increasing inside a column.
//
// Extraction zero-fills the caller's buffer and scatters the stored entries,
// so an implicit zero is indistinguishable from an explicit one.
// Coverage matrices from sequencing are mostly zeros, which is why this
// backing exists.

package matrix

import "fmt"

// Sparse is an immutable CSC matrix.
type Sparse struct {
	r, c   int
	colPtr []int
	rowIdx []int
	values []float64
}

var _ Matrix = (*Sparse)(nil)

// NewSparse validates and copies CSC arrays.
//
// Errors:
//   - ErrInvalidDimensions on negative dims.
//   - ErrBadSparse when len(colPtr) != cols+1, colPtr is not non-decreasing
//     from 0 to len(rowIdx), len(rowIdx) != len(values), or row indices are
//     out of range / not strictly increasing per column.
//
// Complexity: O(c + nnz).
func NewSparse(rows, cols int, colPtr, rowIdx []int, values []float64) (*Sparse, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if len(colPtr) != cols+1 || len(rowIdx) != len(values) {
		return nil, fmt.Errorf("NewSparse: array lengths: %w", ErrBadSparse)
	}
	if colPtr[0] != 0 || colPtr[cols] != len(rowIdx) {
		return nil, fmt.Errorf("NewSparse: column pointer bounds: %w", ErrBadSparse)
	}
	for j := 0; j < cols; j++ {
		lo, hi := colPtr[j], colPtr[j+1]
		if lo > hi || hi > len(rowIdx) {
			return nil, fmt.Errorf("NewSparse: column %d pointers: %w", j, ErrBadSparse)
		}
		prev := -1
		for k := lo; k < hi; k++ {
			ri := rowIdx[k]
			if ri <= prev || ri >= rows {
				return nil, fmt.Errorf("NewSparse: column %d row index %d: %w", j, ri, ErrBadSparse)
			}
			prev = ri
		}
	}

	s := &Sparse{
		r:      rows,
		c:      cols,
		colPtr: append([]int(nil), colPtr...),
		rowIdx: append([]int(nil), rowIdx...),
		values: append([]float64(nil), values...),
	}

	return s, nil
}

// NewSparseFromDense compresses d, keeping every cell that is not exactly 0
// (NA, NaN and ±Inf are kept).
// Complexity: O(r*c).
func NewSparseFromDense(d *Dense) (*Sparse, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	s := &Sparse{r: d.r, c: d.c, colPtr: make([]int, d.c+1)}
	for j := 0; j < d.c; j++ {
		for i := 0; i < d.r; i++ {
			v := d.data[i*d.c+j]
			if v != 0 { // true for NaN and NA as well
				s.rowIdx = append(s.rowIdx, i)
				s.values = append(s.values, v)
			}
		}
		s.colPtr[j+1] = len(s.rowIdx)
	}

	return s, nil
}

// Rows returns the row count.
func (s *Sparse) Rows() int { return s.r }

// Cols returns the column count.
func (s *Sparse) Cols() int { return s.c }

// NNZ returns the number of stored entries.
func (s *Sparse) NNZ() int { return len(s.values) }

// Columns returns an extractor over columns [start, start+length).
func (s *Sparse) Columns(start, length int) (Extractor, error) {
	if err := checkColumnRange(s.c, start, length); err != nil {
		return nil, rangeErrorf("Sparse", ctxColumns, start, length, err)
	}

	return &sparseExtractor{s: s, next: start, end: start + length}, nil
}

type sparseExtractor struct {
	s         *Sparse
	next, end int
}

func (e *sparseExtractor) Fetch(buf []float64) []float64 {
	col := advance(&e.next, e.end)
	out := buf[:e.s.r]
	clear(out)
	for k := e.s.colPtr[col]; k < e.s.colPtr[col+1]; k++ {
		out[e.s.rowIdx[k]] = e.s.values[k]
	}

	return out
}
