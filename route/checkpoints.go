package route

import (
	"fmt"

	"github.com/katalvlaran/crowdnav/venue"
)

// Checkpoints returns the indices of path that start, end or change
// direction. Index i (0 < i < len-1) is included iff the step into i
// differs from the step out of i. Paths of length ≤ 2 return every index;
// an empty path returns an empty slice.
// Complexity: O(len(path)).
func Checkpoints(path []venue.Position) []int {
	n := len(path)
	if n <= 2 {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := []int{0}
	for i := 1; i < n-1; i++ {
		if path[i].Sub(path[i-1]) != path[i+1].Sub(path[i]) {
			out = append(out, i)
		}
	}
	return append(out, n-1)
}

// Segments splits path at its checkpoints. Consecutive segments share
// their boundary cell. A path shorter than two cells has no segments.
func Segments(path []venue.Position) [][]venue.Position {
	cps := Checkpoints(path)
	if len(cps) < 2 {
		return nil
	}
	out := make([][]venue.Position, 0, len(cps)-1)
	for k := 0; k+1 < len(cps); k++ {
		out = append(out, path[cps[k]:cps[k+1]+1])
	}
	return out
}

// Heading is a compass direction on the grid; north is decreasing Y.
type Heading int

const (
	North Heading = iota
	East
	South
	West
	// Stay marks a zero-length step, as in a degenerate [p, p] path.
	Stay
)

func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "stay"
}

func headingOf(d venue.Position) Heading {
	switch {
	case d.Y < 0:
		return North
	case d.X > 0:
		return East
	case d.Y > 0:
		return South
	case d.X < 0:
		return West
	}
	return Stay
}

// Leg is one straight run between two checkpoints.
type Leg struct {
	Heading Heading
	Cells   int
	From    venue.Position
	To      venue.Position
}

// String renders the leg as a walking instruction.
func (l Leg) String() string {
	unit := "cells"
	if l.Cells == 1 {
		unit = "cell"
	}
	return fmt.Sprintf("walk %s %d %s to (%s)", l.Heading, l.Cells, unit, l.To)
}

// Legs describes each segment of path as a heading and a length.
func Legs(path []venue.Position) []Leg {
	segs := Segments(path)
	out := make([]Leg, 0, len(segs))
	for _, s := range segs {
		from, to := s[0], s[len(s)-1]
		out = append(out, Leg{
			Heading: headingOf(s[1].Sub(s[0])),
			Cells:   from.Manhattan(to),
			From:    from,
			To:      to,
		})
	}
	return out
}
