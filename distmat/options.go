// Package distmat: functional configuration for matrix ingestion.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package distmat

import "math"

// DefaultEpsilon is the non-negative tolerance used by the diagonal and
// symmetry checks during ingestion. Raw data produced by floating-point
// pipelines is rarely bit-exact; 1e-9 absorbs round-off without masking
// genuinely asymmetric input.
const DefaultEpsilon = 1e-9

// panicEpsilonInvalid is the message used when WithEpsilon receives a
// non-finite or negative tolerance (programmer error, not user data).
const panicEpsilonInvalid = "distmat: WithEpsilon: eps must be finite, non-negative"

// Options holds the ingestion configuration assembled from Option values.
// All fields are unexported; use the WithX constructors.
type Options struct {
	eps float64  // tolerated asymmetry / diagonal noise
	ids []string // optional sample identifiers, len must equal n
}

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// WithEpsilon overrides the numeric tolerance used by the diagonal and
// symmetry checks. Must be finite and non-negative; anything else panics.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
			panic(panicEpsilonInvalid)
		}
		o.eps = eps
	}
}

// WithIDs attaches sample identifiers to the matrix, index-aligned with the
// raw rows. Length is validated against n inside New (ErrBadIDs), not here,
// because n is unknown until ingestion.
func WithIDs(ids ...string) Option {
	return func(o *Options) {
		o.ids = ids
	}
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts []Option) Options {
	cfg := Options{eps: DefaultEpsilon}
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}
