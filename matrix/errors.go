// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and accessors return these sentinels (optionally wrapped
// with call context via %w); tests match them with errors.Is. No public
// function panics on user-triggered conditions, except Extractor.Fetch past
// the end of its range, which is a programmer error.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping across logs.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative
	// or do not match the supplied backing data.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index or a column range is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadSparse signals malformed compressed-sparse-column arrays
	// (non-monotone column pointers, unsorted or out-of-range row indices).
	ErrBadSparse = errors.New("matrix: malformed sparse structure")

	// ErrNilFunc indicates that a nil element-wise function was passed to a delayed matrix.
	ErrNilFunc = errors.New("matrix: nil function")
)
