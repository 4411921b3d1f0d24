// Package distmat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across distmat.
// Constructors MUST return these sentinels and tests MUST check them via
// errors.Is. If call-site context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) — errors.Is still matches.

package distmat

import "errors"

// Every message is prefixed with "distmat: ..." for consistency and to allow
// easy grepping across logs.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape → finiteness → sign → diagonal → symmetry → identifiers.
var (
	// ErrNonSquare is returned when the raw input is empty, ragged, or not n×n.
	ErrNonSquare = errors.New("distmat: matrix is not square")

	// ErrNaNInf is returned when a NaN or ±Inf entry is encountered; distance
	// matrices must be finite everywhere.
	ErrNaNInf = errors.New("distmat: NaN or Inf encountered")

	// ErrNegativeValue is returned when a negative entry is encountered;
	// dissimilarities are non-negative by definition.
	ErrNegativeValue = errors.New("distmat: negative distance encountered")

	// ErrNonZeroDiagonal is returned when some |raw[i][i]| exceeds epsilon;
	// a sample is at distance zero from itself.
	ErrNonZeroDiagonal = errors.New("distmat: diagonal not zero within eps")

	// ErrAsymmetry is returned when some |raw[i][j] − raw[j][i]| exceeds
	// epsilon; pairwise dissimilarity has no direction.
	ErrAsymmetry = errors.New("distmat: matrix is not symmetric within eps")

	// ErrBadIDs is returned when WithIDs supplies an identifier list whose
	// length does not match the matrix dimension.
	ErrBadIDs = errors.New("distmat: identifier count does not match dimension")
)
