// Package bsseq checks the methylation and coverage matrices of a BSseq
// object before the object is accepted.
//
// A BSseq object pairs two equal-shaped matrices (rows = genomic positions,
// columns = samples):
//
//	M   - methylated read counts
//	Cov - total read coverage
//
// and is only valid when, cell by cell, neither holds NA, 0 <= M <= Cov and
// Cov is finite.
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/   - read-only column-extractable matrices: Dense, Sparse, Delayed, NA marker
//	validity/ - the parallel M/Cov check and its host-facing entry point
//	config/   - environment configuration (worker count, logging)
//	logger/   - log/slog factory
//
// Quick example:
//
//	msg := validity.CheckMAndCov(M, Cov, []int{4})
//	// msg == "" when the pair is valid
package bsseq
