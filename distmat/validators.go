// Package distmat: canonical validation checks for raw distance data.
//
// Purpose:
//   - Provide a single source of truth for ingestion-time checks.
//   - Keep New minimal by delegating shape/finiteness/symmetry checks here.
//   - Return plain sentinel errors wrapped with cell context so call sites
//     can match via errors.Is while logs stay actionable.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Each check scans the raw data once; symmetry scans the upper triangle only.

package distmat

import (
	"fmt"
	"math"
)

// validateSquare ensures raw is non-empty and every row has length n.
// Returns ErrNonSquare (with the offending row) otherwise.
// Complexity: O(n).
func validateSquare(raw [][]float64) error {
	n := len(raw)
	if n == 0 {
		return fmt.Errorf("%w: empty input", ErrNonSquare)
	}
	for i := 0; i < n; i++ {
		if len(raw[i]) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquare, i, len(raw[i]), n)
		}
	}

	return nil
}

// validateFinite ensures every entry is a finite float64.
// Returns ErrNaNInf (with the offending cell) otherwise.
// Complexity: O(n²).
func validateFinite(raw [][]float64) error {
	var v float64
	for i := range raw {
		for j := range raw[i] {
			v = raw[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: cell (%d,%d)=%v", ErrNaNInf, i, j, v)
			}
		}
	}

	return nil
}

// validateNonNegative ensures every entry is ≥ 0.
// Returns ErrNegativeValue (with the offending cell) otherwise.
// Assumes finiteness was already checked (no NaN comparisons here).
// Complexity: O(n²).
func validateNonNegative(raw [][]float64) error {
	for i := range raw {
		for j := range raw[i] {
			if raw[i][j] < 0 {
				return fmt.Errorf("%w: cell (%d,%d)=%v", ErrNegativeValue, i, j, raw[i][j])
			}
		}
	}

	return nil
}

// validateZeroDiagonal ensures |raw[i][i]| ≤ eps for all i.
// Returns ErrNonZeroDiagonal (with the offending index) otherwise.
// Complexity: O(n).
func validateZeroDiagonal(raw [][]float64, eps float64) error {
	for i := range raw {
		if math.Abs(raw[i][i]) > eps {
			return fmt.Errorf("%w: cell (%d,%d)=%v", ErrNonZeroDiagonal, i, i, raw[i][i])
		}
	}

	return nil
}

// validateSymmetric ensures |raw[i][j] − raw[j][i]| ≤ eps over the strict
// upper triangle. Returns ErrAsymmetry (with the offending pair) otherwise.
// Deterministic i→j order guarantees reproducible short-circuiting.
// Complexity: O(n²) over the upper triangle. Space: O(1).
func validateSymmetric(raw [][]float64, eps float64) error {
	n := len(raw)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(raw[i][j]-raw[j][i]) > eps {
				return fmt.Errorf("%w: cells (%d,%d)=%v vs (%d,%d)=%v",
					ErrAsymmetry, i, j, raw[i][j], j, i, raw[j][i])
			}
		}
	}

	return nil
}
