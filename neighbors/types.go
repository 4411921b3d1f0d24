// Package neighbors: domain types and sentinel errors for k-nearest-neighbor
// graphs over distance matrices.
package neighbors

import "errors"

// Sentinel errors returned by Build.
var (
	// ErrNilMatrix indicates that a nil *distmat.Matrix was passed to Build.
	ErrNilMatrix = errors.New("neighbors: matrix is nil")

	// ErrBadK indicates that the neighborhood size is outside [1, n−1].
	ErrBadK = errors.New("neighbors: k must be in [1, n-1]")
)

// Arc is a single weighted adjacency entry: an undirected edge endpoint as
// seen from one side. Weight carries the distance-matrix entry for the pair.
type Arc struct {
	To     int     // index of the neighboring sample
	Weight float64 // D[from][To], symmetric by distmat construction
}

// Graph is the undirected k-nearest-neighbor graph of a distance matrix.
// Immutable after Build; safe for concurrent readers.
type Graph struct {
	n     int     // number of vertices (samples)
	edges int     // number of undirected edges after union de-duplication
	adj   [][]Arc // per-vertex arcs, sorted by To ascending
}

// Order returns the number of vertices (samples).
// Complexity: O(1).
func (g *Graph) Order() int { return g.n }

// EdgeCount returns the number of undirected edges in the union graph.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edges }

// Arcs returns the adjacency list of vertex i, sorted by target index.
// The returned slice is shared with the Graph; callers must not mutate it.
// Complexity: O(1).
func (g *Graph) Arcs(i int) []Arc { return g.adj[i] }

// pairKey is a normalized ordered pair (u<v) used to de-duplicate the
// union of per-vertex neighbor lists into undirected edges.
type pairKey struct {
	u, v int
}
