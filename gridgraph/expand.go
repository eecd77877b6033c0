package gridgraph

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/crowdnav/venue"
)

// MinimumCrossings finds a walk from `from` to `to` over walkable cells that
// enters the fewest cells for which hot returns true. Both endpoints count
// when hot. It returns the walk (inclusive of both endpoints) and the number
// of hot cells on it.
//
// Behavior:
//  1. Reject blocked or out-of-bounds endpoints and disconnected pairs with ErrNoPath.
//  2. 0-1 BFS from `from`:
//     • moving into a cool cell → cost 0 (pushed to the front)
//     • moving into a hot cell  → cost 1 (pushed to the back)
//  3. Stop when `to` is dequeued.
//  4. Reconstruct the walk via the predecessor slice.
//
// Complexity: O(W·H) time, O(W·H) memory.
func (g *Grid) MinimumCrossings(from, to venue.Position, hot func(venue.Position) bool) ([]venue.Position, int, error) {
	if !g.Connected(from, to) {
		return nil, 0, fmt.Errorf("%w: %s → %s", ErrNoPath, from, to)
	}

	// 1) Dense per-cell state indexed like the lattice.
	n := g.Width * g.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 2) A hot start already costs one crossing.
	src, dst := g.index(from.X, from.Y), g.index(to.X, to.Y)
	dist[src] = 0
	if hot(from) {
		dist[src] = 1
	}

	// 3) 0-1 BFS: deque front holds cost-0 moves, back holds cost-1 moves.
	dq := list.New()
	dq.PushFront(src)
	done := make([]bool, n)
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue // settled through a cheaper entry
		}
		done[u] = true
		if u == dst {
			break
		}
		for _, v := range g.Neighbors(g.Coordinate(u)) {
			vi := g.index(v.X, v.Y)
			step := 0
			if hot(v) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[vi] {
				dist[vi] = nd
				prev[vi] = u
				if step == 0 {
					dq.PushFront(vi)
				} else {
					dq.PushBack(vi)
				}
			}
		}
	}

	// 4) Walk predecessors back from dst, then reverse.
	var walk []venue.Position
	for at := dst; at >= 0; at = prev[at] {
		walk = append(walk, g.Coordinate(at))
	}
	for i, j := 0, len(walk)-1; i < j; i, j = i+1, j-1 {
		walk[i], walk[j] = walk[j], walk[i]
	}
	return walk, dist[dst], nil
}
