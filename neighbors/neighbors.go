// Package neighbors implements k-nearest-neighbor graph construction
// (Build) over a validated distance matrix.

package neighbors

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/geodist/distmat"
)

// candidate pairs a potential neighbor index with its distance from the
// current sample, used only during per-sample selection.
type candidate struct {
	j int     // neighbor index
	d float64 // distance from the current sample to j
}

// Build constructs the undirected k-nearest-neighbor graph of m.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMatrix).
//  2. k must satisfy 1 ≤ k ≤ n−1 (ErrBadK, wrapped with k and n).
//
// Algorithm:
//  1. For each sample i, collect the n−1 candidates (j, D[i][j]) in
//     ascending index order and stable-sort them by distance. Stability over
//     the index-ordered input is exactly the documented tie-break: equal
//     distances resolve to the smaller original index.
//  2. Keep the first k candidates of every sample and union them into a set
//     of normalized (u<v) pairs — edge (i,j) exists if either side selected
//     the other.
//  3. Materialize per-vertex adjacency lists, sorted by target index, so
//     iteration order is deterministic.
//
// Complexity:
//
//   - Time:  O(n² log n) — n stable sorts of n−1 candidates, plus O(n·k)
//     union and materialization work.
//   - Space: O(n·k) for the result, O(n) transient per-sample scratch.
func Build(m *distmat.Matrix, k int) (*Graph, error) {
	// 1) Validate the matrix reference.
	if m == nil {
		return nil, ErrNilMatrix
	}

	// 2) Validate the neighborhood size against the dimension.
	n := m.Size()
	if k < 1 || k > n-1 {
		return nil, fmt.Errorf("%w: k=%d, n=%d", ErrBadK, k, n)
	}

	// 3) Select the k nearest neighbors of every sample.
	//    Candidates are generated in ascending j, so the stable sort keeps
	//    index order among equal distances (deterministic tie-break).
	selected := make(map[pairKey]float64, n*k)
	cands := make([]candidate, 0, n-1)
	var i, j int
	for i = 0; i < n; i++ {
		cands = cands[:0]
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			cands = append(cands, candidate{j: j, d: m.At(i, j)})
		}
		sort.SliceStable(cands, func(a, b int) bool { return cands[a].d < cands[b].d })

		// Union rule: record each of i's k nearest as a normalized pair.
		// A pair picked from both sides lands on the same key once.
		for _, c := range cands[:k] {
			key := pairKey{u: i, v: c.j}
			if key.u > key.v {
				key.u, key.v = key.v, key.u
			}
			selected[key] = c.d
		}
	}

	// 4) Materialize adjacency lists from the undirected edge set.
	adj := make([][]Arc, n)
	var key pairKey
	var w float64
	for key, w = range selected {
		adj[key.u] = append(adj[key.u], Arc{To: key.v, Weight: w})
		adj[key.v] = append(adj[key.v], Arc{To: key.u, Weight: w})
	}

	// 5) Sort every list by target index for deterministic iteration.
	for i = 0; i < n; i++ {
		arcs := adj[i]
		sort.Slice(arcs, func(a, b int) bool { return arcs[a].To < arcs[b].To })
	}

	return &Graph{n: n, edges: len(selected), adj: adj}, nil
}
