package route_test

import (
	"fmt"

	"github.com/katalvlaran/crowdnav/route"
	"github.com/katalvlaran/crowdnav/venue"
)

// ExampleLegs turns a path into turn-by-turn instructions.
func ExampleLegs() {
	path := []venue.Position{
		venue.Pos(1, 0), venue.Pos(2, 0), venue.Pos(3, 0),
		venue.Pos(3, 1), venue.Pos(3, 2), venue.Pos(3, 3),
		venue.Pos(2, 3),
	}
	fmt.Println(route.Checkpoints(path))
	for _, leg := range route.Legs(path) {
		fmt.Println(leg)
	}
	// Output:
	// [0 2 5 6]
	// walk east 2 cells to (3,0)
	// walk south 3 cells to (3,3)
	// walk west 1 cell to (2,3)
}
