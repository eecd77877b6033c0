package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/crowdnav/venue"
)

// NewGrid builds a width×height lattice and blocks every cell that lies
// outside all halls or under a booth footprint. Booth cells falling outside
// the grid are ignored. The halls and booths slices are copied.
//
// Returns ErrBadDimensions if width or height is not positive.
// Complexity: O(W×H×len(halls) + B) time, O(W×H) memory.
func NewGrid(width, height int, halls []venue.HallConfig, booths []venue.Booth) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, width, height)
	}
	g := &Grid{
		Width:  width,
		Height: height,
		halls:  append([]venue.HallConfig(nil), halls...),
	}
	g.build(booths)

	return g, nil
}

// FromLayout builds the grid described by a venue layout.
func FromLayout(l *venue.Layout) (*Grid, error) {
	return NewGrid(l.Width, l.Height, l.Halls, l.Booths)
}

// Rebuild returns a new Grid with the same dimensions and halls but with
// obstacles recomputed from booths. The receiver is not modified.
func (g *Grid) Rebuild(booths []venue.Booth) *Grid {
	ng := &Grid{
		Width:  g.Width,
		Height: g.Height,
		halls:  g.halls,
	}
	ng.build(booths)

	return ng
}

func (g *Grid) build(booths []venue.Booth) {
	n := g.Width * g.Height
	g.booths = append([]venue.Booth(nil), booths...)
	g.walkable = make([]bool, n)
	g.occupant = make([]int, n)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := g.index(x, y)
			g.occupant[i] = noBooth
			g.walkable[i] = g.inHall(venue.Position{X: x, Y: y})
		}
	}
	for bi, b := range g.booths {
		for _, c := range b.Cells() {
			if !g.InBounds(c) {
				continue
			}
			i := g.index(c.X, c.Y)
			g.walkable[i] = false
			g.occupant[i] = bi
		}
	}
	g.labelComponents()
}

func (g *Grid) inHall(p venue.Position) bool {
	for _, h := range g.halls {
		if h.Contains(p, g.Width) {
			return true
		}
	}
	return false
}

// InBounds reports whether p lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (g *Grid) InBounds(p venue.Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// IsWalkable reports whether p is inside the grid, inside a hall and not
// covered by a booth. Out-of-bounds positions are never walkable.
// Complexity: O(1).
func (g *Grid) IsWalkable(p venue.Position) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.walkable[g.index(p.X, p.Y)]
}

// Neighbors returns the walkable orthogonal neighbors of p in N, E, S, W
// order. It returns nil for an out-of-bounds p; a blocked p still reports
// its walkable neighbors.
// Complexity: O(1).
func (g *Grid) Neighbors(p venue.Position) []venue.Position {
	if !g.InBounds(p) {
		return nil
	}
	out := make([]venue.Position, 0, len(venue.Orthogonal))
	for _, d := range venue.Orthogonal {
		q := p.Add(d)
		if g.IsWalkable(q) {
			out = append(out, q)
		}
	}
	return out
}

// OccupiedBy returns the booth whose footprint covers p, if any.
func (g *Grid) OccupiedBy(p venue.Position) (venue.Booth, bool) {
	if !g.InBounds(p) {
		return venue.Booth{}, false
	}
	bi := g.occupant[g.index(p.X, p.Y)]
	if bi == noBooth {
		return venue.Booth{}, false
	}
	return g.booths[bi], true
}

// Halls returns a copy of the hall configuration the grid was built from.
func (g *Grid) Halls() []venue.HallConfig {
	return append([]venue.HallConfig(nil), g.halls...)
}

// Booths returns a copy of the booths the grid was built from.
func (g *Grid) Booths() []venue.Booth {
	return append([]venue.Booth(nil), g.booths...)
}

// WalkableCount returns the number of walkable cells.
func (g *Grid) WalkableCount() int {
	n := 0
	for _, w := range g.walkable {
		if w {
			n++
		}
	}
	return n
}

// Mask returns the walkability lattice as rows: Mask()[y][x].
func (g *Grid) Mask() [][]bool {
	rows := make([][]bool, g.Height)
	for y := 0; y < g.Height; y++ {
		rows[y] = make([]bool, g.Width)
		copy(rows[y], g.walkable[g.index(0, y):g.index(0, y)+g.Width])
	}
	return rows
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) venue.Position {
	return venue.Position{X: idx % g.Width, Y: idx / g.Width}
}
