// Package geodesic implements the local gradient distance transform
// (Transform) over a validated distance matrix.

package geodesic

import (
	"container/heap"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/geodist/distmat"
	"github.com/katalvlaran/geodist/neighbors"
)

// Transform converts the global distance matrix m into geodesic ("local
// gradient") distances measured over its k-nearest-neighbor graph.
//
// Returns a new matrix of identical dimension and sample ordering; m is
// never mutated. The transform is pure: no side effects, no shared state
// across calls.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMatrix).
//  2. k must satisfy 1 ≤ k ≤ n−1 (ErrBadNeighborhood, wrapped with k and n).
//
// Options customization:
//
//   - WithSentinelSubstitution(): replace unreachable pairs with a sentinel
//     instead of failing (see doc.go for the policy trade-offs).
//   - WithSentinelScale(x):       sentinel multiplier (x > 0, finite).
//   - WithWorkers(w):             bound on concurrent per-source runs (w ≥ 1).
//
// Complexity:
//
//   - Time:  O(n · (n + E) log n), E ≤ n·k
//   - Space: O(n²)
func Transform(m *distmat.Matrix, k int, opts ...Option) (*distmat.Matrix, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the matrix reference.
	if m == nil {
		return nil, ErrNilMatrix
	}

	// 3) Validate the neighborhood size against the dimension.
	n := m.Size()
	if k < 1 || k > n-1 {
		return nil, fmt.Errorf("%w: k=%d, n=%d", ErrBadNeighborhood, k, n)
	}

	// 4) Build the undirected k-nearest-neighbor graph. Its own validation
	//    cannot fire here (m is non-nil and k was range-checked above), but
	//    the error is propagated rather than swallowed.
	g, err := neighbors.Build(m, k)
	if err != nil {
		return nil, err
	}

	// 5) Run Dijkstra from every source. Each source owns its output row,
	//    so the rows slice needs no locking and the result is deterministic
	//    for every worker bound.
	rows := make([][]float64, n)
	var eg errgroup.Group
	eg.SetLimit(cfg.Workers)
	for s := 0; s < n; s++ {
		s := s
		eg.Go(func() error {
			rows[s] = shortestFrom(g, s)

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	// 6) Resolve unreachable pairs per the configured policy.
	if err = resolveDisconnected(rows, k, cfg); err != nil {
		return nil, err
	}

	// 7) Enforce exact symmetry by construction: the strict upper triangle
	//    is canonical; mirror it down and force the diagonal to zero.
	var i, j int
	for i = 0; i < n; i++ {
		rows[i][i] = 0
		for j = i + 1; j < n; j++ {
			rows[j][i] = rows[i][j]
		}
	}

	// 8) Re-ingest through distmat.New, carrying the sample identifiers:
	//    the output provably satisfies the input's invariants, or the
	//    violation surfaces here instead of corrupting downstream ordination.
	if ids := m.IDs(); ids != nil {
		return distmat.New(rows, distmat.WithIDs(ids...))
	}

	return distmat.New(rows)
}

// shortestFrom computes single-source shortest-path distances from src over
// g using Dijkstra with a binary min-heap and the lazy-decrease-key
// strategy: shorter rediscoveries push duplicates, stale entries are skipped
// on pop via the visited mask. Unreachable vertices keep +Inf.
//
// Edge weights are distance-matrix entries, hence non-negative by distmat
// construction — the Dijkstra precondition holds without re-scanning.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func shortestFrom(g *neighbors.Graph, src int) []float64 {
	n := g.Order()

	// 1) dist[v] = +∞ for all v, 0 for the source.
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[src] = 0

	// 2) visited marks finalized vertices (their dist can no longer improve).
	visited := make([]bool, n)

	// 3) Seed the heap with the source at distance zero.
	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: src, dist: 0})

	var u int
	var nd float64
	for pq.Len() > 0 {
		// 4) Pop the closest unfinalized vertex; skip stale duplicates.
		item := heap.Pop(&pq).(*nodeItem)
		u = item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		// 5) Relax every arc out of u.
		for _, a := range g.Arcs(u) {
			nd = dist[u] + a.Weight
			// Strict improvement only — "<" avoids duplicate pushes on ties.
			if nd < dist[a.To] {
				dist[a.To] = nd
				heap.Push(&pq, &nodeItem{id: a.To, dist: nd})
			}
		}
	}

	return dist
}

// resolveDisconnected applies the DisconnectedPolicy to the raw per-source
// rows, in place.
//
// PolicyError:    fail with ErrDisconnected wrapped with the first (i<j)
//
//	unreachable pair and k, so the caller knows which samples
//	the neighborhood failed to bridge.
//
// PolicySentinel: replace every +Inf with maxFinite × SentinelScale, where
//
//	maxFinite is the largest finite off-diagonal geodesic
//	distance across the whole matrix.
//
// Complexity: O(n²).
func resolveDisconnected(rows [][]float64, k int, cfg Options) error {
	n := len(rows)

	// 1) One scan: find the largest finite entry and the first unreachable
	//    pair in deterministic (i<j) order.
	maxFinite := 0.0
	firstI, firstJ := -1, -1
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = rows[i][j]
			if math.IsInf(v, 1) {
				if firstI < 0 {
					firstI, firstJ = i, j
				}

				continue
			}
			if v > maxFinite {
				maxFinite = v
			}
		}
	}

	// 2) Fully connected — nothing to resolve.
	if firstI < 0 {
		return nil
	}

	// 3) PolicyError: surface the offending pair; the caller's remedy is a
	//    larger k, not a retry.
	if cfg.Policy == PolicyError {
		return fmt.Errorf("%w: no path between samples %d and %d at k=%d", ErrDisconnected, firstI, firstJ, k)
	}

	// 4) PolicySentinel: substitute the scaled maximum finite distance.
	sentinel := maxFinite * cfg.SentinelScale
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.IsInf(rows[i][j], 1) {
				rows[i][j] = sentinel
				rows[j][i] = sentinel
			}
		}
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source,
// stored in the priority queue.
type nodeItem struct {
	id   int     // vertex index
	dist float64 // tentative distance from the source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used with the
// lazy-decrease-key strategy: improved distances push new entries and stale
// ones are ignored when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
