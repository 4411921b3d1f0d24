// Package distmat implements the Matrix type: a validated, immutable,
// square symmetric distance matrix with flat row-major storage.

package distmat

import "fmt"

// Matrix is an immutable n×n pairwise distance matrix.
//
// Invariants (established by New, never violated afterwards):
//   - exactly symmetric: data[i*n+j] == data[j*n+i] bit-for-bit,
//   - diagonal exactly zero,
//   - all entries finite and non-negative.
//
// The zero value is not usable; construct via New.
type Matrix struct {
	n    int       // dimension (number of samples)
	data []float64 // flat row-major backing storage, length n*n
	ids  []string  // optional sample identifiers, nil or length n
}

// New builds a Matrix from raw row-major data, validating it in the fixed
// sequence documented in doc.go.
//
// Stage 1 (Validate): square → finite → non-negative → diagonal → symmetry → IDs.
// Stage 2 (Ingest):   average the two triangles cell-wise into flat storage,
//
//	forcing exact symmetry and an exactly zero diagonal.
//
// Stage 3 (Finalize): return the immutable Matrix.
//
// The raw slices are copied; the caller may reuse them afterwards.
// Complexity: O(n²) time and memory.
func New(raw [][]float64, opts ...Option) (*Matrix, error) {
	// 1) Assemble configuration from functional options.
	cfg := gatherOptions(opts)

	// 2) Run the validation sequence; each validator returns a wrapped sentinel.
	if err := validateSquare(raw); err != nil {
		return nil, err
	}
	if err := validateFinite(raw); err != nil {
		return nil, err
	}
	if err := validateNonNegative(raw); err != nil {
		return nil, err
	}
	if err := validateZeroDiagonal(raw, cfg.eps); err != nil {
		return nil, err
	}
	if err := validateSymmetric(raw, cfg.eps); err != nil {
		return nil, err
	}

	// 3) Validate identifier count against the now-known dimension.
	n := len(raw)
	if cfg.ids != nil && len(cfg.ids) != n {
		return nil, fmt.Errorf("%w: got %d ids for %d samples", ErrBadIDs, len(cfg.ids), n)
	}

	// 4) Ingest: write the averaged upper triangle into both cells so the
	//    stored matrix is exactly symmetric regardless of sub-epsilon noise
	//    in the raw input. The diagonal is left at its zero value.
	data := make([]float64, n*n)
	var i, j int
	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = (raw[i][j] + raw[j][i]) / 2
			data[i*n+j] = d
			data[j*n+i] = d
		}
	}

	// 5) Copy identifiers so later caller mutation cannot reach the Matrix.
	var ids []string
	if cfg.ids != nil {
		ids = append([]string(nil), cfg.ids...)
	}

	return &Matrix{n: n, data: data, ids: ids}, nil
}

// Size returns the matrix dimension n (the number of samples).
// Complexity: O(1).
func (m *Matrix) Size() int { return m.n }

// At returns the distance between samples i and j.
// Panics on out-of-range indices: index arithmetic against a validated
// matrix is programmer error, not a data condition.
// Complexity: O(1).
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("distmat: At(%d,%d) out of range for n=%d", i, j, m.n))
	}

	return m.data[i*m.n+j]
}

// IDs returns a copy of the sample identifiers, or nil when none were attached.
// Complexity: O(n).
func (m *Matrix) IDs() []string {
	if m.ids == nil {
		return nil
	}

	return append([]string(nil), m.ids...)
}

// Clone returns a deep copy of the matrix, independent of the original.
// Complexity: O(n²).
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{n: m.n, data: append([]float64(nil), m.data...)}
	if m.ids != nil {
		cp.ids = append([]string(nil), m.ids...)
	}

	return cp
}

// Dense exports the matrix as a freshly allocated [][]float64 in row-major
// order — the plain-array form expected by external eigen/ordination code.
// Mutating the result does not affect the Matrix.
// Complexity: O(n²).
func (m *Matrix) Dense() [][]float64 {
	out := make([][]float64, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = append([]float64(nil), m.data[i*m.n:(i+1)*m.n]...)
	}

	return out
}
