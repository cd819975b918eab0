// SPDX-License-Identifier: MIT

// Package validity - the paired M/Cov check.
//
// Stages:
//   - Stage 1: worker count and nil guards.
//   - Stage 2: shape (rows before columns), sequential.
//   - Stage 3: one goroutine per column block; each scans its columns with
//     its own pair of row buffers and records at most one failure in its own
//     slot, stopping at the first one.
//   - Stage 4: after the join, the first non-nil slot in worker order wins.
//
// The reported failure is deterministic for a fixed (workers, ncol): slots
// are indexed by worker, not by completion time.

package validity

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bsseq/matrix"
)

// Validate checks that m (methylated counts) and cov (coverage) form a
// valid pair, scanning column blocks on `workers` goroutines.
// MAIN DESCRIPTION:
//   - Returns nil on success or one of the package failures otherwise.
//   - Never panics: faults inside the scan become *InternalError.
//
// Per-cell rules, first violation wins within a column:
//  1. M is NA or NaN        -> ErrMissingM
//  2. Cov is NA             -> ErrMissingCov
//  3. M < 0                 -> ErrNegativeM
//  4. M > Cov               -> ErrMExceedsCov
//  5. Cov is ±Inf or NaN    -> ErrNonFiniteCov
//
// Complexity:
//   - Time O(nrow*ncol/workers) wall clock, Space O(nrow*workers).
func Validate(m, cov matrix.Matrix, workers int, opts ...Option) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &InternalError{Cause: r}
		}
	}()
	o := gatherOptions(opts...)

	if workers <= 0 {
		return ErrInvalidThreadCount
	}
	if err := matrix.ValidateSameShape(m, cov); err != nil {
		switch {
		case errors.Is(err, matrix.ErrNilMatrix):
			return ErrNilInput
		case m.Rows() != cov.Rows():
			return ErrRowMismatch
		default:
			return ErrColMismatch
		}
	}
	nrow, ncol := m.Rows(), m.Cols()

	blocks := partition(ncol, workers)
	o.logger.Debug("validity: scanning",
		slog.Int("rows", nrow), slog.Int("cols", ncol),
		slog.Int("workers", workers), slog.Int("blocks", len(blocks)))

	// one slot per worker that owns columns; idle workers would stay empty anyway
	slots := make([]error, len(blocks))
	var g errgroup.Group
	g.SetLimit(max(len(blocks), 1))
	for tid, b := range blocks {
		g.Go(func() error {
			slots[tid] = scanBlock(m, cov, nrow, b)
			o.logger.Debug("validity: worker done",
				slog.Int("worker", tid), slog.Int("start", b.start),
				slog.Int("length", b.length), slog.Bool("ok", slots[tid] == nil))
			return nil
		})
	}
	_ = g.Wait() // workers report through slots only

	for _, e := range slots {
		if e != nil {
			o.logger.Debug("validity: failed", slog.String("reason", e.Error()))
			return e
		}
	}

	return nil
}

// CheckMAndCov is the entry point for a host validity method: it returns ""
// when the pair is valid and the failure message otherwise. nt mirrors a host
// integer vector and must hold exactly one positive value.
// It never panics.
func CheckMAndCov(m, cov matrix.Matrix, nt []int, opts ...Option) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = (&InternalError{Cause: r}).Error()
		}
	}()
	if len(nt) != 1 {
		return ErrInvalidThreadCount.Error()
	}
	if err := Validate(m, cov, nt[0], opts...); err != nil {
		return err.Error()
	}

	return ""
}

// scanBlock walks columns b.start.. of both matrices with one extractor each
// and two row buffers allocated once. A panic from a backing store is
// recovered into *InternalError so it cannot take down the process from a
// worker goroutine.
func scanBlock(m, cov matrix.Matrix, nrow int, b block) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &InternalError{Cause: r}
		}
	}()

	mExt, err := m.Columns(b.start, b.length)
	if err != nil {
		return &InternalError{Cause: fmt.Errorf("M columns: %w", err)}
	}
	covExt, err := cov.Columns(b.start, b.length)
	if err != nil {
		return &InternalError{Cause: fmt.Errorf("Cov columns: %w", err)}
	}

	mBuf := make([]float64, nrow)
	covBuf := make([]float64, nrow)
	for c := 0; c < b.length; c++ {
		if err = checkColumn(mExt.Fetch(mBuf), covExt.Fetch(covBuf)); err != nil {
			return err
		}
	}

	return nil
}

// checkColumn applies the per-cell rules in their fixed order.
func checkColumn(mCol, covCol []float64) error {
	for r, mv := range mCol {
		cv := covCol[r]
		switch {
		case math.IsNaN(mv):
			return ErrMissingM
		case matrix.IsNA(cv):
			return ErrMissingCov
		case mv < 0:
			return ErrNegativeM
		case mv > cv:
			return ErrMExceedsCov
		case math.IsInf(cv, 0) || math.IsNaN(cv):
			return ErrNonFiniteCov
		}
	}

	return nil
}
