// SPDX-License-Identifier: MIT

// Package validity: functional configuration.
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions helper that resolves defaults.
package validity

import (
	"io"
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreads is the worker count of a Validator built without WithThreads.
	DefaultThreads = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThreadsInvalid = "validity: WithThreads: n must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	threads int          // Validator only; Validate takes an explicit count
	logger  *slog.Logger // never nil after gatherOptions
}

// WithThreads sets the worker count used by Validator.Check.
// Panics when n <= 0; runtime thread counts from untrusted input should go
// through Validate/CheckMAndCov, which report instead of panicking.
func WithThreads(n int) Option {
	if n <= 0 {
		panic(panicThreadsInvalid)
	}

	return func(o *Options) { o.threads = n }
}

// WithLogger routes debug tracing to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// discardLogger swallows everything; it is the zero-config default.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{threads: DefaultThreads, logger: discardLogger}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
