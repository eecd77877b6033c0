package astar_test

import (
	"fmt"

	"github.com/katalvlaran/crowdnav/astar"
	"github.com/katalvlaran/crowdnav/crowd"
	"github.com/katalvlaran/crowdnav/gridgraph"
	"github.com/katalvlaran/crowdnav/venue"
)

// ExampleFindPath routes around a congested opening once the detour is cheaper.
func ExampleFindPath() {
	halls := []venue.HallConfig{{Tag: "H", YStart: 0, YEnd: 4, Width: 7, Height: 5}}
	wall := []venue.Booth{
		{ID: "w1", Anchor: venue.Pos(3, 1)},
		{ID: "w3", Anchor: venue.Pos(3, 3)},
		{ID: "w4", Anchor: venue.Pos(3, 4)},
	}
	g, _ := gridgraph.NewGrid(7, 5, halls, wall)

	feed := crowd.NewStatic()
	res, _ := astar.FindPath(g, feed, venue.Pos(0, 2), venue.Pos(6, 2))
	fmt.Println(res.Status, res.Cost, len(res.Path))

	feed.Set(venue.Pos(3, 2), 18)
	res, _ = astar.FindPath(g, feed, venue.Pos(0, 2), venue.Pos(6, 2))
	fmt.Println(res.Status, res.Cost, len(res.Path))
	// Output:
	// found 6 7
	// found 10 11
}
