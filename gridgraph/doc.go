// Package gridgraph models a venue floor as a 4-connected walkable lattice
// and resolves the walkable cells bordering booths.
//
// What:
//
//   - Grid is a Width×Height lattice built from hall rectangles and booth footprints.
//   - A cell is blocked iff it lies outside every hall OR under a booth footprint.
//   - AccessPoints lists the walkable cells orthogonally adjacent to a booth.
//   - Connected components of walkable cells are labelled at build time so
//     unreachable targets are detected in O(1).
//   - MinimumCrossings runs a 0-1 BFS counting the fewest "hot" cells a walk must enter.
//
// Why:
//
//   - Booth cells are never walkable, so routes end at access points instead.
//   - Reachability labels let the pathfinder skip hopeless searches outright.
//
// Complexity:
//
//   - NewGrid / Rebuild:   O(W×H + B), Memory: O(W×H)   (B = total booth cells).
//   - IsWalkable / Neighbors / Connected: O(1).
//   - AccessPoints:        O(footprint), at most 16 probes for a 2×2 booth.
//   - MinimumCrossings:    O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrBadDimensions: width or height is not positive.
//   - ErrNoPath: MinimumCrossings found no walk between the two cells.
//
// A Grid is immutable once built. Rebuild returns a fresh Grid for a new
// booth list and leaves the receiver untouched, so concurrent readers never
// observe a half-updated lattice.
package gridgraph
