// Package validity checks that a methylated-count matrix M and a coverage
// matrix Cov form a valid BSseq pair.
//
// A pair is valid when both matrices have the same shape and, cell by cell,
// M and Cov are not NA, 0 <= M <= Cov, and Cov is finite. Columns are split
// into contiguous blocks scanned in parallel; each worker stops at its first
// violation and the first failing worker (by index) decides the reported
// message.
//
// A plain NaN in M is reported as missing, while in Cov only the NA marker is
// reported as missing and any other NaN fails the finiteness rule.
//
// Failures are returned as values: Validate returns an error, CheckMAndCov
// returns the message string ("" when valid) for host validity methods that
// cannot raise.
//
//	msg := validity.CheckMAndCov(M, Cov, []int{4})
//	if msg != "" {
//		return msg
//	}
package validity
