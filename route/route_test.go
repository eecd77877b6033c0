package route_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crowdnav/crowd"
	"github.com/katalvlaran/crowdnav/gridgraph"
	"github.com/katalvlaran/crowdnav/route"
	"github.com/katalvlaran/crowdnav/venue"
)

func line(cells ...[2]int) []venue.Position {
	out := make([]venue.Position, len(cells))
	for i, c := range cells {
		out[i] = venue.Pos(c[0], c[1])
	}
	return out
}

// lShape walks east two cells, then south two cells.
var lShape = line([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2})

//----------------------------------------------------------------------------//
// Checkpoints and legs
//----------------------------------------------------------------------------//

// TestCheckpoints covers straight, turning and short paths.
func TestCheckpoints(t *testing.T) {
	cases := []struct {
		name string
		path []venue.Position
		want []int
	}{
		{"Empty", nil, []int{}},
		{"Single", line([2]int{4, 4}), []int{0}},
		{"Pair", line([2]int{4, 4}, [2]int{5, 4}), []int{0, 1}},
		{"Degenerate", line([2]int{4, 4}, [2]int{4, 4}), []int{0, 1}},
		{"Straight", line([2]int{0, 3}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3}, [2]int{4, 3}), []int{0, 4}},
		{"LShape", lShape, []int{0, 2, 4}},
		{"Zigzag", line([2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}, [2]int{2, 1}), []int{0, 1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := route.Checkpoints(tc.path)
			assert.Equal(t, tc.want, got)
			if len(tc.path) > 0 {
				assert.Equal(t, 0, got[0])
				assert.Equal(t, len(tc.path)-1, got[len(got)-1])
			}
		})
	}
}

// TestSegments shares boundary cells between consecutive runs.
func TestSegments(t *testing.T) {
	segs := route.Segments(lShape)
	require.Len(t, segs, 2)
	assert.Equal(t, lShape[0:3], segs[0])
	assert.Equal(t, lShape[2:5], segs[1])

	assert.Nil(t, route.Segments(line([2]int{1, 1})))
	assert.Nil(t, route.Segments(nil))
}

// TestLegs turns segments into walking instructions.
func TestLegs(t *testing.T) {
	legs := route.Legs(lShape)
	require.Len(t, legs, 2)
	assert.Equal(t, route.Leg{Heading: route.East, Cells: 2, From: venue.Pos(0, 0), To: venue.Pos(2, 0)}, legs[0])
	assert.Equal(t, route.Leg{Heading: route.South, Cells: 2, From: venue.Pos(2, 0), To: venue.Pos(2, 2)}, legs[1])
	assert.Equal(t, "walk east 2 cells to (2,0)", legs[0].String())

	back := route.Legs(line([2]int{3, 3}, [2]int{3, 2}, [2]int{2, 2}))
	require.Len(t, back, 2)
	assert.Equal(t, route.North, back[0].Heading)
	assert.Equal(t, "walk west 1 cell to (2,2)", back[1].String())

	stay := route.Legs(line([2]int{4, 4}, [2]int{4, 4}))
	require.Len(t, stay, 1)
	assert.Equal(t, route.Stay, stay[0].Heading)
	assert.Equal(t, 0, stay[0].Cells)
}

//----------------------------------------------------------------------------//
// Validation and cost
//----------------------------------------------------------------------------//

// TestValidate flags gaps and blocked cells.
func TestValidate(t *testing.T) {
	halls := []venue.HallConfig{{Tag: "H", YStart: 0, YEnd: 2, Width: 3, Height: 3}}
	g, err := gridgraph.NewGrid(3, 3, halls, []venue.Booth{{ID: "b", Anchor: venue.Pos(1, 1)}})
	require.NoError(t, err)

	assert.NoError(t, route.Validate(g, lShape))
	assert.NoError(t, route.Validate(g, nil))
	assert.ErrorIs(t, route.Validate(g, line([2]int{0, 0}, [2]int{2, 0})), route.ErrNotContiguous)
	assert.ErrorIs(t, route.Validate(g, line([2]int{1, 0}, [2]int{1, 1})), route.ErrBlockedCell)
	assert.ErrorIs(t, route.Validate(g, line([2]int{0, 0}, [2]int{0, -1})), route.ErrBlockedCell)
}

// TestCost charges every cell except the start.
func TestCost(t *testing.T) {
	feed := crowd.NewStatic()
	feed.Set(venue.Pos(0, 0), 25) // start is free
	feed.Set(venue.Pos(2, 0), 8)  // +2
	feed.Set(venue.Pos(2, 2), 18) // +10

	assert.Equal(t, 4.0+2+10, route.Cost(lShape, feed, crowd.DefaultPolicy()))
	assert.Equal(t, 4.0, route.Cost(lShape, nil, crowd.DefaultPolicy()))
	assert.Equal(t, 0.0, route.Cost(nil, feed, crowd.DefaultPolicy()))
}

//----------------------------------------------------------------------------//
// Analyze
//----------------------------------------------------------------------------//

// TestAnalyze_Empty returns a zero report without dividing by zero.
func TestAnalyze_Empty(t *testing.T) {
	rep := route.Analyze(nil, crowd.Zero)
	assert.Empty(t, rep.Steps)
	assert.Empty(t, rep.Checkpoints)
	assert.Equal(t, 0.0, rep.TotalExposure)
	assert.Equal(t, 0.0, rep.AverageExposure)
	assert.Equal(t, -1, rep.UnavoidableHot)
	assert.Equal(t, "empty path\n", rep.String())
}

// TestAnalyze sums exposure over every cell, start included.
func TestAnalyze(t *testing.T) {
	feed := crowd.NewStatic()
	feed.Set(venue.Pos(0, 0), 4)
	feed.Set(venue.Pos(2, 0), 12)
	feed.Set(venue.Pos(2, 1), 20)

	rep := route.Analyze(lShape, feed)
	require.Len(t, rep.Steps, 5)
	assert.Equal(t, route.Step{Index: 2, Position: venue.Pos(2, 0), Level: 12}, rep.Steps[2])
	assert.Equal(t, []int{0, 2, 4}, rep.Checkpoints)
	assert.Equal(t, 36.0, rep.TotalExposure)
	assert.InDelta(t, 7.2, rep.AverageExposure, 1e-9)
	assert.Equal(t, 4.0+5+10, rep.Cost)
	assert.Equal(t, 0, rep.HotCells, "no threshold given")
	assert.Equal(t, -1, rep.UnavoidableHot)
	assert.Contains(t, rep.String(), "steps=5 checkpoints=3 cost=19 exposure=36 avg=7.20")

	flat := route.Analyze(lShape, feed, route.WithPolicy(crowd.Policy{}))
	assert.Equal(t, 4.0, flat.Cost)
}

// TestAnalyze_Saturates keeps exposure finite for huge readings.
func TestAnalyze_Saturates(t *testing.T) {
	feed := crowd.NewStatic()
	feed.Set(venue.Pos(0, 0), 1e308)
	feed.Set(venue.Pos(1, 0), 1e308)
	feed.Set(venue.Pos(2, 0), math.Inf(1))

	for _, path := range [][]venue.Position{
		line([2]int{0, 0}, [2]int{1, 0}),
		line([2]int{1, 0}, [2]int{2, 0}),
	} {
		rep := route.Analyze(path, feed)
		assert.Equal(t, math.MaxFloat64, rep.TotalExposure)
		assert.False(t, math.IsInf(rep.AverageExposure, 0))
		assert.Equal(t, 16.0, rep.Cost)

		_, err := json.Marshal(rep)
		require.NoError(t, err)
	}
}

// TestAnalyze_Crossings compares the path's hot cells with the unavoidable minimum.
func TestAnalyze_Crossings(t *testing.T) {
	halls := []venue.HallConfig{{Tag: "H", YStart: 0, YEnd: 2, Width: 5, Height: 3}}
	g, err := gridgraph.NewGrid(5, 3, halls, nil)
	require.NoError(t, err)

	feed := crowd.NewStatic()
	feed.Set(venue.Pos(2, 1), 15)
	feed.Set(venue.Pos(2, 2), 15)

	straight := line([2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1}, [2]int{3, 1}, [2]int{4, 1})
	rep := route.Analyze(straight, feed, route.WithCrossings(g, 10))
	assert.Equal(t, 1, rep.HotCells)
	assert.Equal(t, 0, rep.UnavoidableHot, "row 0 is clear")
	assert.Contains(t, rep.String(), "hot=1 unavoidable=0")

	feed.Set(venue.Pos(2, 0), 15)
	rep = route.Analyze(straight, feed, route.WithCrossings(g, 10))
	assert.Equal(t, 1, rep.UnavoidableHot)
}
