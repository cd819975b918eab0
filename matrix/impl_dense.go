// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Store any float64 verbatim, including NA, NaN and ±Inf: Dense is an input
//     container for validators, so it must be able to hold invalid data.
//   - Serve consecutive column extraction by gathering the strided column into
//     the caller's buffer.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Fetch: O(r).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxColumns = "Columns" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// rangeErrorf wraps an error raised for the column range [start, start+length)
// with the backing type and method, e.g. "Dense.Columns(start=2,length=3)".
func rangeErrorf(kind, method string, start, length int, err error) error {
	return fmt.Errorf("%s.%s(start=%d,length=%d): %w", kind, method, start, length, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>= 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation.
//
// Behavior highlights:
//   - 0×N and N×0 are legal; validators must accept empty inputs.
//   - No panics on user errors; returns sentinel errors.
//
// Errors:
//   - ErrInvalidDimensions when rows<0 or cols<0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom wraps a row-major slice of length rows*cols. The slice is
// copied, so later writes by the caller do not leak into the matrix.
//
// Errors:
//   - ErrInvalidDimensions on negative dims or len(data) != rows*cols.
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d) len=%d: %w", rows, cols, len(data), ErrInvalidDimensions)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseRows builds a Dense from a slice of equal-length rows; handy in tests
// and examples. An empty input gives a 0×0 matrix.
func NewDenseRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{}, nil
	}
	c := len(rows[0])
	m, _ := NewDense(len(rows), c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseRows: row %d has %d values, want %d: %w", i, len(row), c, ErrInvalidDimensions)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange. Any value is accepted,
// NA and non-finite included.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders rows as "[a, b]\n" lines.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Columns returns an extractor over columns [start, start+length).
// MAIN DESCRIPTION:
//   - Row-major storage has strided columns, so every Fetch gathers into buf.
//
// Errors:
//   - ErrOutOfRange when the range is not inside [0, Cols()].
//
// Complexity:
//   - Time O(1) to create; O(r) per Fetch; no allocation per Fetch.
func (m *Dense) Columns(start, length int) (Extractor, error) {
	if err := checkColumnRange(m.c, start, length); err != nil {
		return nil, rangeErrorf("Dense", ctxColumns, start, length, err)
	}

	return &denseExtractor{m: m, next: start, end: start + length}, nil
}

// denseExtractor walks consecutive columns of a Dense.
type denseExtractor struct {
	m         *Dense
	next, end int // next column to fetch; one past the last
}

func (e *denseExtractor) Fetch(buf []float64) []float64 {
	col := advance(&e.next, e.end)
	r, c := e.m.r, e.m.c
	out := buf[:r]
	for i := 0; i < r; i++ {
		out[i] = e.m.data[i*c+col]
	}

	return out
}

// checkColumnRange validates [start, start+length) against ncol.
func checkColumnRange(ncol, start, length int) error {
	if start < 0 || length < 0 || start+length > ncol {
		return ErrOutOfRange
	}

	return nil
}

// advance returns *next and increments it, panicking past end.
func advance(next *int, end int) int {
	if *next >= end {
		panic(fmt.Sprintf("matrix: Fetch past end of column range (%d >= %d)", *next, end))
	}
	col := *next
	*next++

	return col
}
