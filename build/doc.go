// Package build assembles graphs from deterministic topology
// constructors: fixed shapes (path, cycle, star, complete, complete
// bipartite, grid) and a seeded random sampler, all producing ordinary
// core graphs through one mutation cycle.
//
// What
//
//   - Directed / Undirected: orchestrators running a constructor chain
//     against a fresh graph and sealing the result.
//   - Path, Cycle, Star, Complete, CompleteBipartite, Grid: the classic
//     shapes, emitted in documented, stable order.
//   - RandomSparse: Erdos-Renyi G(n, p) with an explicit seed.
//   - NodeFn / EdgeFn: payload producers; nil means zero-value payloads.
//     Ordinals and Labels cover the common cases.
//
// Composition
//
// Every constructor allocates its own nodes, so chaining several builds
// the disjoint union of their shapes:
//
//	g, err := build.Undirected(
//		build.Cycle[string, int](4, build.Labels("ring-"), nil),
//		build.Path[string, int](3, build.Labels("tail-"), nil),
//	)
//
// A Constructor is a plain function over *core.MutableGraph, so shapes
// can also be appended to an existing graph inside Graph.Mutate.
//
// Determinism
//
// Equal parameters and constructor order produce structurally equal
// graphs (core.Graph.Equal); RandomSparse additionally requires an equal
// seed. Node ordinals restart at 0 for every constructor, while the
// graph-wide indices keep growing monotonically.
//
// Errors
//
//   - ErrTooFewNodes         if a size parameter is below the
//     constructor's minimum.
//   - ErrInvalidProbability  if RandomSparse's p lies outside [0, 1].
//   - ErrConstructFailed     if assembly fails, for example on a nil
//     constructor.
//
// Validation happens when a constructor runs, before it touches the
// graph; a failing chain returns the first error and no graph.
//
// Complexity: linear in the emitted shape (Complete and RandomSparse are
// O(n^2) over their candidate pairs).
package build
