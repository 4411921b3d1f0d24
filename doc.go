// Package geodist turns global pairwise dissimilarities into geodesic
// ("local gradient") distances measured over a k-nearest-neighbor graph —
// the detrending step that straightens the classic horseshoe artifact
// before ordination (PCoA and friends).
//
// 🚀 What is geodist?
//
//	A small, pure-Go library for distance-matrix detrending:
//		• distmat    — validated, immutable pairwise distance matrices
//		• neighbors  — k-nearest-neighbor graphs with a symmetric union rule
//		• geodesic   — all-pairs shortest-path ("local gradient") transform
//
// ✨ Why choose geodist?
//
//   - Minimal API – one constructor, one transform, explicit options
//   - Rock-solid guarantees – every input is validated, every error is a
//     sentinel you can match with errors.Is
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – stable tie-breaking, symmetric output by construction
//
// The idea in one sketch: raw dissimilarities between community samples are
// only trustworthy at short range. Long-range entries bend around the
// underlying gradient and distort eigen-based ordination. geodist rebuilds
// every long-range distance as a sum of short, locally reliable hops:
//
//	    s0──s1──s2╌╌╌╌╌╌╌s3
//	    d(s0,s3) = d(s0,s1) + d(s1,s2) + d(s2,s3)
//
// Typical pipeline: compute a dissimilarity matrix from an abundance table
// (externally), feed it through geodesic.Transform, and hand the result to
// your principal-coordinates routine of choice.
//
// Dive into each subpackage's doc.go for the full contract, complexity
// notes, and error taxonomy.
package geodist
