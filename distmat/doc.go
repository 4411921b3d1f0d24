// Package distmat provides a validated, immutable pairwise distance matrix —
// the single ingestion point for dissimilarity data entering geodist.
//
// Overview:
//
//   - A distance matrix is an n×n, symmetric, non-negative matrix with a zero
//     diagonal, indexed by sample position (and, optionally, sample ID).
//   - New validates the raw data once, up front, and every later consumer can
//     rely on the invariants without re-checking: downstream packages
//     (neighbors, geodesic) never see a malformed matrix.
//   - Storage is a flat row-major []float64 slice for cache friendliness.
//
// Validation sequence (fixed, documented, enforced in tests):
//  1. Non-empty and square            → ErrNonSquare
//  2. All entries finite              → ErrNaNInf
//  3. All entries non-negative        → ErrNegativeValue
//  4. Diagonal zero within epsilon    → ErrNonZeroDiagonal
//  5. Symmetric within epsilon        → ErrAsymmetry
//  6. Identifier count matches n      → ErrBadIDs
//
// Numeric policy:
//
//   - Epsilon (default DefaultEpsilon = 1e-9) bounds the tolerated asymmetry
//     and diagonal noise of the raw input.
//   - After validation the two triangles are averaged cell-wise, so the
//     stored matrix is exactly symmetric and its diagonal exactly zero.
//     Symmetry is thereby enforced by construction, not by later clean-up.
//
// Errors (sentinel, matched via errors.Is):
//
//   - ErrNonSquare       — raw input is empty or has ragged/mismatched rows.
//   - ErrNaNInf          — NaN or ±Inf entry encountered.
//   - ErrNegativeValue   — negative entry encountered.
//   - ErrNonZeroDiagonal — |raw[i][i]| > epsilon for some i.
//   - ErrAsymmetry       — |raw[i][j] − raw[j][i]| > epsilon for some i<j.
//   - ErrBadIDs          — WithIDs supplied a list whose length ≠ n.
//
// Example usage:
//
//	m, err := distmat.New(raw, distmat.WithIDs("s1", "s2", "s3"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Size(), m.At(0, 2))
//
// Complexity: New is O(n²) time and memory; accessors are O(1) except
// Clone/Dense/IDs, which copy.
package distmat
