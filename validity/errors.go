// SPDX-License-Identifier: MIT
// Package validity: failure set.
// Every failure is a value, never a panic. The messages are user-facing: the
// host validity layer shows Error() verbatim, so they must not be wrapped
// before reaching CheckMAndCov. Match them with errors.Is.

package validity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidThreadCount: the worker count is not a single positive integer.
	ErrInvalidThreadCount = errors.New("Number of threads should be a positive integer.")

	// ErrNilInput: one of the matrices is nil.
	ErrNilInput = errors.New("'M' and 'Cov' must not be NULL.")

	// ErrRowMismatch: M and Cov have different row counts. Checked before columns.
	ErrRowMismatch = errors.New("'M' and 'Cov' must have the same number of rows.")

	// ErrColMismatch: row counts agree but column counts differ.
	ErrColMismatch = errors.New("'M' and 'Cov' must have the same number of columns.")

	// ErrMissingM: M holds NA (or any NaN; M has no separate finiteness rule).
	ErrMissingM = errors.New("'M' must not contain NAs.")

	// ErrMissingCov: Cov holds the NA marker. A plain NaN is reported as ErrNonFiniteCov.
	ErrMissingCov = errors.New("'Cov' must not contain NAs.")

	// ErrNegativeM: M < 0 somewhere.
	ErrNegativeM = errors.New("'M' must not contain negative values.")

	// ErrMExceedsCov: M > Cov somewhere.
	ErrMExceedsCov = errors.New("All values of 'M' must be less than or equal to the corresponding value of 'Cov'.")

	// ErrNonFiniteCov: Cov is ±Inf or a NaN that is not the NA marker.
	ErrNonFiniteCov = errors.New("All values of 'Cov' must be finite.")

	// ErrInternal is matched by every *InternalError.
	ErrInternal = errors.New("internal error while checking 'M' and 'Cov'")
)

// InternalError is an unexpected fault (panic or backing-store error) caught
// during validation and turned into a reportable failure.
type InternalError struct {
	Cause any // recovered panic value or error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInternal.Error(), e.Cause)
}

// Is lets errors.Is(err, ErrInternal) succeed.
func (e *InternalError) Is(target error) bool { return target == ErrInternal }

// Unwrap exposes the cause when it is itself an error.
func (e *InternalError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}

	return nil
}
