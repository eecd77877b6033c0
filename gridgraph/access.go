package gridgraph

import "github.com/katalvlaran/crowdnav/venue"

// AccessPoints returns the walkable cells orthogonally adjacent to the
// booth's footprint, deduplicated, in a stable order: footprint cells in
// row-major order, each probed N, E, S, W.
//
// A neighbor is kept iff it is in bounds, not part of the footprint and
// walkable. An enclosed booth yields an empty, non-nil slice.
// Complexity: O(footprint).
func (g *Grid) AccessPoints(b venue.Booth) []venue.Position {
	cells := b.Cells()
	out := make([]venue.Position, 0, 4*len(cells))
	seen := make(map[venue.Position]struct{}, 4*len(cells))
	for _, c := range cells {
		for _, d := range venue.Orthogonal {
			n := c.Add(d)
			if b.Covers(n) || !g.IsWalkable(n) {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}

// IsAccessPoint reports whether p is one of the booth's access points.
func (g *Grid) IsAccessPoint(b venue.Booth, p venue.Position) bool {
	if b.Covers(p) || !g.IsWalkable(p) {
		return false
	}
	for _, d := range venue.Orthogonal {
		if b.Covers(p.Add(d)) {
			return true
		}
	}
	return false
}
