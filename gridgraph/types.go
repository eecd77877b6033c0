package gridgraph

import (
	"errors"

	"github.com/katalvlaran/crowdnav/venue"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("gridgraph: width and height must be positive")
	// ErrNoPath indicates no walk exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)

// noBooth marks a cell not covered by any booth footprint.
const noBooth = -1

// Grid is the walkable topology of a venue floor. It is immutable once built.
//
// walkable, occupant and component are row-major slices of length Width×Height.
// occupant[i] indexes booths (or noBooth); component[i] is the connected
// component label of a walkable cell, or -1 for a blocked one.
type Grid struct {
	Width, Height int

	halls      []venue.HallConfig
	booths     []venue.Booth
	walkable   []bool
	occupant   []int
	component  []int
	components int
}
