package gridgraph

import "github.com/katalvlaran/crowdnav/venue"

// labelComponents assigns a component label to every walkable cell using
// BFS flood fill in row-major seed order. Blocked cells get -1.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for labels and the queue.
func (g *Grid) labelComponents() {
	total := g.Width * g.Height
	g.component = make([]int, total)
	for i := range g.component {
		g.component[i] = -1
	}
	g.components = 0

	queue := make([]int, 0, total)
	for i0 := 0; i0 < total; i0++ {
		if !g.walkable[i0] || g.component[i0] >= 0 {
			continue
		}
		// New seed: open a component and flood it.
		label := g.components
		g.components++
		g.component[i0] = label
		queue = append(queue[:0], i0)

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range venue.Orthogonal {
				v := u.Add(d)
				if !g.IsWalkable(v) {
					continue
				}
				vi := g.index(v.X, v.Y)
				if g.component[vi] < 0 {
					g.component[vi] = label
					queue = append(queue, vi)
				}
			}
		}
	}
}

// Connected reports whether a and b are walkable and lie in the same
// connected component.
// Complexity: O(1).
func (g *Grid) Connected(a, b venue.Position) bool {
	if !g.IsWalkable(a) || !g.IsWalkable(b) {
		return false
	}
	return g.component[g.index(a.X, a.Y)] == g.component[g.index(b.X, b.Y)]
}

// ConnectedComponents returns every walkable region as a slice of positions
// in row-major order. Components are ordered by their first cell.
// Complexity: O(W·H).
func (g *Grid) ConnectedComponents() [][]venue.Position {
	comps := make([][]venue.Position, g.components)
	for i, label := range g.component {
		if label < 0 {
			continue
		}
		comps[label] = append(comps[label], g.Coordinate(i))
	}
	return comps
}
