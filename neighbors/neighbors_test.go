// Package neighbors_test contains unit tests for k-nearest-neighbor graph
// construction: validation, the union rule, stable tie-breaking, and
// deterministic adjacency ordering.
package neighbors_test

import (
	"testing"

	"github.com/katalvlaran/geodist/distmat"
	"github.com/katalvlaran/geodist/neighbors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustMatrix builds a distmat.Matrix or fails the test.
func mustMatrix(t *testing.T, raw [][]float64) *distmat.Matrix {
	t.Helper()
	m, err := distmat.New(raw)
	require.NoError(t, err, "test fixture must be a valid distance matrix")

	return m
}

// line4 is the 4-point line fixture at positions [0,1,2,10].
func line4(t *testing.T) *distmat.Matrix {
	t.Helper()

	return mustMatrix(t, [][]float64{
		{0, 1, 2, 10},
		{1, 0, 1, 9},
		{2, 1, 0, 8},
		{10, 9, 8, 0},
	})
}

// ------------------------------------------------------------------------
// 1. Validation tests.
// ------------------------------------------------------------------------

// TestBuild_NilMatrix verifies ErrNilMatrix on a nil input.
func TestBuild_NilMatrix(t *testing.T) {
	_, err := neighbors.Build(nil, 1)
	assert.ErrorIs(t, err, neighbors.ErrNilMatrix)
}

// TestBuild_BadK verifies ErrBadK on every out-of-range neighborhood size.
func TestBuild_BadK(t *testing.T) {
	m := line4(t)

	for _, k := range []int{-1, 0, 4, 100} {
		_, err := neighbors.Build(m, k)
		assert.ErrorIs(t, err, neighbors.ErrBadK, "k=%d must be rejected for n=4", k)
	}
}

// ------------------------------------------------------------------------
// 2. Structural tests.
// ------------------------------------------------------------------------

// TestBuild_LineK1 verifies the hand-computed chain 0–1, 1–2, 2–3 on the
// line fixture with k=1, including the union rule and the stable tie-break:
// sample 1 is equidistant from 0 and 2 and must pick 0 (smaller index);
// the 1–2 edge still exists because sample 2 picked 1.
func TestBuild_LineK1(t *testing.T) {
	g, err := neighbors.Build(line4(t), 1)
	require.NoError(t, err)

	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 3, g.EdgeCount(), "union of per-sample picks yields the 3-edge chain")

	assert.Equal(t, []neighbors.Arc{{To: 1, Weight: 1}}, g.Arcs(0))
	assert.Equal(t, []neighbors.Arc{{To: 0, Weight: 1}, {To: 2, Weight: 1}}, g.Arcs(1))
	assert.Equal(t, []neighbors.Arc{{To: 1, Weight: 1}, {To: 3, Weight: 8}}, g.Arcs(2))
	assert.Equal(t, []neighbors.Arc{{To: 2, Weight: 8}}, g.Arcs(3))
}

// TestBuild_UnionRule verifies that an edge appears when only ONE side
// selects the other. Sample 3 is far from everything, so nobody picks it at
// k=1 — yet 3 picks its own nearest (2), and the union keeps that edge.
func TestBuild_UnionRule(t *testing.T) {
	g, err := neighbors.Build(line4(t), 1)
	require.NoError(t, err)

	assert.NotEmpty(t, g.Arcs(3), "one-sided selection must still produce an edge")
	assert.Equal(t, 2, g.Arcs(3)[0].To)
}

// TestBuild_CompleteAtMaxK verifies that k=n−1 yields the complete graph
// with direct distance-matrix weights.
func TestBuild_CompleteAtMaxK(t *testing.T) {
	m := line4(t)
	g, err := neighbors.Build(m, 3)
	require.NoError(t, err)

	assert.Equal(t, 6, g.EdgeCount(), "complete graph on 4 vertices has 6 edges")
	for i := 0; i < 4; i++ {
		arcs := g.Arcs(i)
		require.Len(t, arcs, 3, "every vertex is adjacent to all others")
		for _, a := range arcs {
			assert.Equal(t, m.At(i, a.To), a.Weight, "edge weight equals the matrix entry")
		}
	}
}

// TestBuild_TieBreakByIndex verifies that equal distances resolve to the
// smaller original index. All three off-diagonal distances are equal, so at
// k=1 sample 0 picks 1, sample 1 picks 0, sample 2 picks 0.
func TestBuild_TieBreakByIndex(t *testing.T) {
	m := mustMatrix(t, [][]float64{
		{0, 5, 5},
		{5, 0, 5},
		{5, 5, 0},
	})
	g, err := neighbors.Build(m, 1)
	require.NoError(t, err)

	// Picked pairs: {0,1} (twice, deduplicated) and {0,2}. Never {1,2}.
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []neighbors.Arc{{To: 1, Weight: 5}, {To: 2, Weight: 5}}, g.Arcs(0))
	assert.Equal(t, []neighbors.Arc{{To: 0, Weight: 5}}, g.Arcs(1))
	assert.Equal(t, []neighbors.Arc{{To: 0, Weight: 5}}, g.Arcs(2))
}

// TestBuild_DisconnectedClusters verifies that two tight clusters stay
// unbridged at k=1: within-cluster distance 1, across 100.
func TestBuild_DisconnectedClusters(t *testing.T) {
	m := mustMatrix(t, [][]float64{
		{0, 1, 100, 100},
		{1, 0, 100, 100},
		{100, 100, 0, 1},
		{100, 100, 1, 0},
	})
	g, err := neighbors.Build(m, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, g.EdgeCount(), "only the two intra-cluster edges exist")
	assert.Equal(t, []neighbors.Arc{{To: 1, Weight: 1}}, g.Arcs(0))
	assert.Equal(t, []neighbors.Arc{{To: 3, Weight: 1}}, g.Arcs(2))
}
