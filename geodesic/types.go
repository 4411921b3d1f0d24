// Package geodesic: configuration options, policies and sentinel errors for
// the local gradient distance transform.
package geodesic

import (
	"errors"
	"math"
)

// Sentinel errors returned by Transform.
var (
	// ErrNilMatrix indicates that a nil *distmat.Matrix was passed to Transform.
	ErrNilMatrix = errors.New("geodesic: matrix is nil")

	// ErrBadNeighborhood indicates that the neighborhood size is outside the
	// valid range [1, n−1] for an n-sample matrix.
	ErrBadNeighborhood = errors.New("geodesic: neighborhood size must be in [1, n-1]")

	// ErrDisconnected indicates that the k-nearest-neighbor graph does not
	// connect every sample pair and PolicyError is in effect. Increase k and
	// recompute; retrying with identical inputs cannot succeed.
	ErrDisconnected = errors.New("geodesic: neighbor graph is disconnected")
)

// DisconnectedPolicy selects how Transform resolves sample pairs with no
// finite path in the neighbor graph.
//
// PolicyError    — fail with ErrDisconnected (default; nothing is guessed).
// PolicySentinel — substitute maxFiniteDistance × SentinelScale for every
//
//	unreachable pair, as is common in the geodesic-distance
//	literature. The substitution is explicit and opt-in.
type DisconnectedPolicy int

const (
	// PolicyError fails the transform on the first unreachable pair.
	PolicyError DisconnectedPolicy = iota

	// PolicySentinel replaces unreachable pairs with a large finite sentinel.
	PolicySentinel
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultSentinelScale multiplies the largest finite geodesic distance
	// to form the sentinel under PolicySentinel.
	DefaultSentinelScale = 2.0

	// DefaultWorkers runs the per-source shortest-path computations
	// sequentially; parallelism is an opt-in optimization, not a
	// correctness requirement.
	DefaultWorkers = 1
)

// Internal panic messages (no magic strings).
const (
	panicSentinelScaleInvalid = "geodesic: WithSentinelScale: scale must be finite, positive"
	panicWorkersInvalid       = "geodesic: WithWorkers: workers must be >= 1"
)

// Options configures the behavior of Transform.
//
// Policy        — disconnected-pair handling (PolicyError or PolicySentinel).
// SentinelScale — sentinel multiplier, used only under PolicySentinel.
// Workers       — upper bound on concurrent per-source Dijkstra runs.
type Options struct {
	Policy        DisconnectedPolicy
	SentinelScale float64
	Workers       int
}

// Option represents a functional option for configuring Transform.
type Option func(*Options)

// WithSentinelSubstitution switches disconnected-pair handling from
// ErrDisconnected to sentinel substitution (PolicySentinel).
func WithSentinelSubstitution() Option {
	return func(o *Options) {
		o.Policy = PolicySentinel
	}
}

// WithSentinelScale overrides the sentinel multiplier applied to the largest
// finite geodesic distance under PolicySentinel. Has no effect under
// PolicyError. Must be finite and positive; anything else panics
// (programmer error, not a data condition).
func WithSentinelScale(scale float64) Option {
	return func(o *Options) {
		if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
			panic(panicSentinelScaleInvalid)
		}
		o.SentinelScale = scale
	}
}

// WithWorkers bounds the number of concurrent per-source shortest-path
// computations. The output is identical for every bound; only wall-clock
// time changes. Must be ≥ 1; anything else panics.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		if workers < 1 {
			panic(panicWorkersInvalid)
		}
		o.Workers = workers
	}
}

// DefaultOptions returns an Options struct initialized with the documented
// defaults. Use as a starting point for functional-option overrides.
func DefaultOptions() Options {
	return Options{
		Policy:        PolicyError,
		SentinelScale: DefaultSentinelScale,
		Workers:       DefaultWorkers,
	}
}
