// SPDX-License-Identifier: MIT

package validity

import (
	"log/slog"

	"github.com/katalvlaran/bsseq/config"
	"github.com/katalvlaran/bsseq/logger"
	"github.com/katalvlaran/bsseq/matrix"
)

// Validator carries a fixed worker count and logger so hosts can check
// many pairs without re-threading settings through every call.
// A Validator holds no per-call state and is safe for concurrent use.
type Validator struct {
	threads int
	logger  *slog.Logger
}

// New builds a Validator; see WithThreads and WithLogger.
func New(opts ...Option) *Validator {
	o := gatherOptions(opts...)

	return &Validator{threads: o.threads, logger: o.logger}
}

// FromConfig builds a Validator from environment configuration, logging to
// stderr in the configured level and format.
// cfg should come from config.Load (already validated); an invalid thread
// count falls back to DefaultThreads and an unknown level to info.
func FromConfig(cfg config.Config) *Validator {
	threads := cfg.Threads
	if threads <= 0 {
		threads = DefaultThreads
	}
	lvl, _ := logger.ParseLevel(cfg.LogLevel)
	format := logger.FormatText
	if cfg.LogFormat == string(logger.FormatJSON) {
		format = logger.FormatJSON
	}
	l := logger.New(logger.WithLevel(lvl), logger.WithFormat(format),
		logger.WithAttr(slog.String("component", "validity")))

	return New(WithThreads(threads), WithLogger(l))
}

// Threads returns the worker count used by Check.
func (v *Validator) Threads() int { return v.threads }

// Check validates the pair with the Validator's worker count.
func (v *Validator) Check(m, cov matrix.Matrix) error {
	return Validate(m, cov, v.threads, WithLogger(v.logger))
}
