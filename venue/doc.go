// Package venue defines the static data model of an indoor exhibition venue:
// integer grid positions, hall rectangles, booths with fixed footprints and
// the CCTV cameras that monitor walkways.
//
// What:
//
//   - Position is the universal addressing unit for cells, booths, cameras and path nodes.
//   - HallConfig describes a horizontally-centered rectangular hall inside the grid.
//   - Booth carries an explicit FootprintSize (1×1 or 2×2) fixed at creation.
//   - Layout bundles grid dimensions, halls, booths and cameras and can be decoded from JSON.
//
// Why:
//
//   - Every other package (gridgraph, crowd, astar, route, navigator) speaks in
//     venue.Position and venue.Booth; keeping them here avoids import cycles.
//
// Errors:
//
//   - ErrUnknownFootprint: a footprint string is neither "1x1"/"small" nor "2x2"/"large".
//   - ErrInvalidLayout: a decoded layout violates a structural rule (see Layout.Validate).
package venue
