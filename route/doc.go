// Package route post-processes a computed path into the data a guided,
// segment-by-segment navigation UI needs.
//
//   - Checkpoints: indices of the start, the end and every direction change.
//   - Segments / Legs: the straight runs between consecutive checkpoints.
//   - Analyze: per-step congestion, cumulative and average exposure, total
//     cost under a penalty policy and, optionally, how many congested cells
//     were unavoidable.
//   - Validate: checks that a path is a contiguous walk over walkable cells.
//
// Paths are never modified; every function derives fresh data from its input.
package route
