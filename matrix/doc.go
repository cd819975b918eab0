// Package matrix offers the read-only numeric matrix surface used by the
// bsseq validators.
//
// The matrix package provides:
//
//   - Matrix and Extractor: shape query plus forward-sequential column
//     extraction into caller-owned buffers.
//   - Dense (row-major), Sparse (compressed sparse column) and Delayed
//     (lazy map / column subset) backings.
//   - NA and IsNA: the missing-value marker, distinct from an ordinary NaN.
//   - ValidateNotNil and ValidateSameShape guards.
//
// Consumers should only depend on Matrix; the concrete backings exist so
// the same algorithm can be exercised against very different layouts.
package matrix
