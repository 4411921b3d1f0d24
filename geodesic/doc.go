// Package geodesic implements the local gradient distance transform: it
// rebuilds a global pairwise distance matrix as all-pairs shortest-path
// distances over the k-nearest-neighbor graph of the samples.
//
// Overview:
//
//   - Raw dissimilarities between community samples are reliable only at
//     short range; long-range entries bend around the underlying ecological
//     gradient and produce the classic horseshoe artifact in eigen-based
//     ordination.
//   - Transform keeps only each sample's k nearest links (union rule, via
//     the neighbors package) and re-measures every pair as the cheapest sum
//     of those short, locally trustworthy hops — a geodesic distance.
//   - The result is a distance matrix of identical dimension and sample
//     ordering, ready to replace the input in downstream ordination (PCoA).
//
// Algorithm:
//
//  1. Build the undirected k-nearest-neighbor graph G of the input matrix.
//  2. Run Dijkstra from every source over G (binary min-heap with lazy
//     decrease-key), collecting one row of geodesic distances per source.
//  3. Resolve unreachable pairs per the configured DisconnectedPolicy.
//  4. Mirror the strict upper triangle onto the lower one and zero the
//     diagonal, so floating round-off cannot introduce asymmetry, then
//     re-ingest through distmat.New — the output provably satisfies the
//     same invariants as the input.
//
// Disconnected pairs:
//
//   - PolicyError (default): the transform fails with ErrDisconnected,
//     wrapped with the first unreachable pair and k. The computation is
//     deterministic, so retrying cannot succeed — callers respond by
//     increasing k and recomputing.
//   - PolicySentinel: every unreachable pair is replaced by the largest
//     finite geodesic distance times SentinelScale (default 2.0), the usual
//     convention in the geodesic-distance literature. Note the sentinel is
//     derived from the CONNECTED part of the graph and may undershoot the
//     raw long-range dissimilarity; prefer raising k when fidelity matters.
//
// Complexity:
//
//   - Time:  O(n · (n + E) log n) — one Dijkstra per source; E ≤ n·k after
//     the union rule.
//   - Space: O(n² ) for the result, O(n + E) per in-flight source.
//
// Concurrency:
//
//   - The per-source runs are independent; WithWorkers bounds an optional
//     worker pool across them. Each source owns its output row, so the
//     result is identical for every worker count (default: 1, sequential).
//
// Errors (sentinel, matched via errors.Is):
//
//   - ErrNilMatrix       — nil *distmat.Matrix passed to Transform.
//   - ErrBadNeighborhood — k outside the valid range [1, n−1].
//   - ErrDisconnected    — unreachable pair under PolicyError.
//
// Example usage:
//
//	dm, err := geodesic.Transform(m, 3)
//	if errors.Is(err, geodesic.ErrDisconnected) {
//	    dm, err = geodesic.Transform(m, 5) // widen the neighborhood
//	}
//
// Thread safety: Transform is pure and stateless across calls; the input
// matrix is never mutated. Concurrent Transform calls over the same matrix
// are safe.
package geodesic
