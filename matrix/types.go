// SPDX-License-Identifier: MIT

// Package matrix: the read-only numeric matrix surface consumed by validators.
// This file contains ONLY the interfaces; errors live in errors.go and the
// concrete backings in impl_*.go.
package matrix

// Matrix is a read-only two-dimensional container of float64 values that can
// be walked column by column. The backing store is opaque: dense, sparse,
// delayed and any caller-supplied layout are all consumed the same way.
//
// Concurrency contract:
//   - Rows, Cols and Columns may be called from many goroutines at once.
//   - Each Extractor is owned by the goroutine that created it.
//
// Complexity notes: Rows/Cols are O(1); Columns is O(1) unless documented
// otherwise by the backing.
type Matrix interface {
	// Rows returns the number of rows (>= 0).
	Rows() int

	// Cols returns the number of columns (>= 0).
	Cols() int

	// Columns returns an extractor over the consecutive columns
	// [start, start+length). Returns ErrOutOfRange when the range does not
	// fit inside [0, Cols()).
	Columns(start, length int) (Extractor, error)
}

// Extractor yields consecutive columns of a Matrix, one per Fetch call.
type Extractor interface {
	// Fetch returns the next column as a slice of length Rows().
	// The result is either buf (filled in place) or a read-only view into
	// the backing storage; callers must not write to it and must not keep it
	// past the next Fetch. buf must have len >= Rows().
	// Calling Fetch more than `length` times panics.
	Fetch(buf []float64) []float64
}
