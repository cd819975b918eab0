// SPDX-License-Identifier: MIT

// Package matrix - delayed (lazily evaluated) matrices.
//
// A Delayed matrix records operations on a seed Matrix and applies them only
// when columns are fetched: an element-wise map and/or a column subset.
// Nothing is materialised, so a delayed view over a large backing costs
// O(1) memory beyond the subset index.

package matrix

import "fmt"

// Delayed is a lazy view over a seed Matrix.
type Delayed struct {
	seed Matrix
	cols []int                 // seed column for each view column; nil means identity
	fn   func(float64) float64 // element-wise transform; nil means identity
}

var _ Matrix = (*Delayed)(nil)

// NewDelayedMap returns a view whose cells are fn(seed[i,j]).
// fn must be safe for concurrent use.
//
// Errors: ErrNilMatrix, ErrNilFunc.
func NewDelayedMap(seed Matrix, fn func(float64) float64) (*Delayed, error) {
	if seed == nil {
		return nil, ErrNilMatrix
	}
	if fn == nil {
		return nil, ErrNilFunc
	}

	return &Delayed{seed: seed, fn: fn}, nil
}

// NewDelayedSubset returns a view of the given seed columns, in order.
// Repeated indices are allowed.
//
// Errors: ErrNilMatrix, ErrOutOfRange for an index outside [0, seed.Cols()).
func NewDelayedSubset(seed Matrix, cols []int) (*Delayed, error) {
	if seed == nil {
		return nil, ErrNilMatrix
	}
	n := seed.Cols()
	for _, j := range cols {
		if j < 0 || j >= n {
			return nil, fmt.Errorf("NewDelayedSubset: column %d: %w", j, ErrOutOfRange)
		}
	}

	return &Delayed{seed: seed, cols: append([]int{}, cols...)}, nil
}

// Map stacks another element-wise transform on top of d (applied after the existing one).
func (d *Delayed) Map(fn func(float64) float64) (*Delayed, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	next := &Delayed{seed: d.seed, cols: d.cols, fn: fn}
	if prev := d.fn; prev != nil {
		next.fn = func(x float64) float64 { return fn(prev(x)) }
	}

	return next, nil
}

// Rows returns the seed's row count.
func (d *Delayed) Rows() int { return d.seed.Rows() }

// Cols returns the view's column count.
func (d *Delayed) Cols() int {
	if d.cols != nil {
		return len(d.cols)
	}

	return d.seed.Cols()
}

// Columns returns an extractor over view columns [start, start+length).
// Without a subset the seed's own extractor is reused; with a subset every
// fetched column opens a one-column extractor on the seed.
func (d *Delayed) Columns(start, length int) (Extractor, error) {
	if err := checkColumnRange(d.Cols(), start, length); err != nil {
		return nil, rangeErrorf("Delayed", ctxColumns, start, length, err)
	}
	e := &delayedExtractor{d: d, next: start, end: start + length}
	if d.cols == nil {
		inner, err := d.seed.Columns(start, length)
		if err != nil {
			return nil, err
		}
		e.inner = inner
	}

	return e, nil
}

type delayedExtractor struct {
	d         *Delayed
	inner     Extractor // set when there is no subset
	next, end int
}

func (e *delayedExtractor) Fetch(buf []float64) []float64 {
	col := advance(&e.next, e.end)
	var src []float64
	if e.inner != nil {
		src = e.inner.Fetch(buf)
	} else {
		one, err := e.d.seed.Columns(e.d.cols[col], 1)
		if err != nil {
			// indices were validated at construction; the seed changed shape underneath us
			panic(fmt.Sprintf("matrix: delayed subset column %d: %v", e.d.cols[col], err))
		}
		src = one.Fetch(buf)
	}
	if e.d.fn == nil {
		return src
	}
	out := buf[:len(src)]
	for i, v := range src {
		out[i] = e.d.fn(v)
	}

	return out
}
