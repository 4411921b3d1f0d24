// Package neighbors builds the k-nearest-neighbor graph that underlies the
// local gradient distance transform.
//
// Overview:
//
//   - Given a validated distance matrix and a neighborhood size k, every
//     sample is linked to its k nearest other samples by ascending distance.
//   - The graph is undirected under the UNION rule: an edge (i,j) exists if
//     j is among i's k-nearest OR i is among j's k-nearest. The union (not
//     the intersection) keeps the adjacency relation symmetric and maximizes
//     connectivity at small k.
//   - Ties in distance are broken by ascending original sample index, so the
//     graph is fully deterministic for a given (matrix, k) pair.
//
// The graph is a derived, read-only view: it holds no reference to the
// source matrix and the matrix is never mutated.
//
// Errors (sentinel, matched via errors.Is):
//
//   - ErrNilMatrix — a nil *distmat.Matrix was passed to Build.
//   - ErrBadK      — k is outside the valid range [1, n−1].
//
// Example usage:
//
//	g, err := neighbors.Build(m, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, a := range g.Arcs(0) {
//	    fmt.Println(0, "→", a.To, a.Weight)
//	}
//
// Complexity: Build is O(n² log n) time (one sort of n−1 candidates per
// sample) and O(n·k) memory for the adjacency lists.
package neighbors
