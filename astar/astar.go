package astar

import (
	"container/heap"
	"context"

	"github.com/katalvlaran/crowdnav/crowd"
	"github.com/katalvlaran/crowdnav/gridgraph"
	"github.com/katalvlaran/crowdnav/venue"
)

// FindPath computes a minimum-cost path from start to goal.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrOptionViolation).
//
// Every other situation is reported through Result.Status with a nil error.
// A nil feed is treated as crowd.Zero. When start == goal the result is the
// single-cell path [start] with cost 0.
func FindPath(g *gridgraph.Grid, feed crowd.Feed, start, goal venue.Position, opts ...Option) (Result, error) {
	return FindPathToAny(g, feed, start, []venue.Position{goal}, opts...)
}

// FindPathToAny computes the cheapest path from start to any of goals.
// Goals that are blocked, out of bounds or duplicated are ignored.
// See the package documentation for the sequential and parallel strategies.
func FindPathToAny(g *gridgraph.Grid, feed crowd.Feed, start venue.Position, goals []venue.Position, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if feed == nil {
		feed = crowd.Zero
	}
	if len(goals) == 0 {
		return Result{Status: NoCandidates}, nil
	}
	if !g.IsWalkable(start) {
		return Result{Status: InvalidEndpoint}, nil
	}

	candidates := make([]venue.Position, 0, len(goals))
	seen := make(map[venue.Position]struct{}, len(goals))
	reachable := false
	for _, p := range goals {
		if _, dup := seen[p]; dup || !g.IsWalkable(p) {
			continue
		}
		seen[p] = struct{}{}
		candidates = append(candidates, p)
		if g.Connected(start, p) {
			reachable = true
		}
	}
	if len(candidates) == 0 {
		return Result{Status: InvalidEndpoint}, nil
	}
	if !reachable {
		return Result{Status: Unreachable}, nil
	}
	if cfg.Parallel && len(candidates) > 1 {
		return searchEach(g, feed, start, candidates, cfg)
	}

	return newRunner(g, feed, start, candidates, cfg).run(), nil
}

// runner holds the mutable state for a single A* execution. Nothing in it
// is shared with other searches.
type runner struct {
	g     *gridgraph.Grid
	feed  crowd.Feed
	cfg   Options
	start venue.Position
	goals []venue.Position

	isGoal map[venue.Position]struct{}
	gScore map[venue.Position]float64
	hops   map[venue.Position]int
	prev   map[venue.Position]venue.Position
	closed map[venue.Position]bool
	pq     nodePQ
	seq    int
}

func newRunner(g *gridgraph.Grid, feed crowd.Feed, start venue.Position, goals []venue.Position, cfg Options) *runner {
	n := g.WalkableCount()
	r := &runner{
		g:      g,
		feed:   feed,
		cfg:    cfg,
		start:  start,
		goals:  goals,
		isGoal: make(map[venue.Position]struct{}, len(goals)),
		gScore: make(map[venue.Position]float64, n),
		hops:   make(map[venue.Position]int, n),
		prev:   make(map[venue.Position]venue.Position, n),
		closed: make(map[venue.Position]bool, n),
		pq:     make(nodePQ, 0, n),
	}
	for _, p := range goals {
		r.isGoal[p] = struct{}{}
	}
	return r
}

// heuristic is the Manhattan distance from p to the nearest goal, scaled by
// the minimum step cost.
func (r *runner) heuristic(p venue.Position) float64 {
	best := -1
	for _, q := range r.goals {
		if d := p.Manhattan(q); best < 0 || d < best {
			best = d
		}
	}
	return float64(best) * crowd.BaseCost
}

func (r *runner) push(p venue.Position, g float64, hops int) {
	h := r.heuristic(p)
	r.seq++
	heap.Push(&r.pq, &nodeItem{pos: p, g: g, hops: hops, f: g + h, h: h, seq: r.seq})
}

// stale reports whether item was superseded by a better label for its cell.
func (r *runner) stale(item *nodeItem) bool {
	u := item.pos
	if r.closed[u] {
		return true
	}
	best := r.gScore[u]
	return item.g > best || (item.g == best && item.hops > r.hops[u])
}

// run is the main A* loop. It terminates when a goal is popped, the
// frontier is exhausted, the budget is spent or the context is done.
func (r *runner) run() Result {
	// 1) Resolve the context once; a nil one never cancels.
	ctx := r.cfg.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	expanded := 0

	// 2) Seed the frontier with the start cell.
	r.gScore[r.start] = 0
	r.hops[r.start] = 0
	heap.Init(&r.pq)
	r.push(r.start, 0, 0)

	// 3) Pop the lowest (f, hops) label until a goal comes out.
	for r.pq.Len() > 0 {
		if ctx.Err() != nil {
			return Result{Status: Cancelled, Expanded: expanded}
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		if r.stale(item) {
			continue
		}
		u := item.pos
		// The first goal popped is optimal by cost, then by cell count.
		if _, ok := r.isGoal[u]; ok {
			return Result{
				Path:     r.reconstruct(u),
				Cost:     item.g,
				Goal:     u,
				Status:   Found,
				Expanded: expanded,
			}
		}
		// Budget counts closed cells only; the goal check above is free.
		if r.cfg.MaxExpansions > 0 && expanded >= r.cfg.MaxExpansions {
			return Result{Status: BudgetExceeded, Expanded: expanded}
		}

		r.closed[u] = true
		expanded++
		r.relax(u, item.g, item.hops)
	}

	// 4) Frontier exhausted without reaching a goal.
	return Result{Status: Unreachable, Expanded: expanded}
}

// relax pushes every open neighbor of u whose tentative label improves.
// Labels compare by cost, then by step count. Congestion is read from the
// feed at this moment.
func (r *runner) relax(u venue.Position, gu float64, hu int) {
	for _, v := range r.g.Neighbors(u) {
		if r.closed[v] {
			continue
		}
		ng, nh := gu+r.cfg.Policy.Cost(crowd.Level(r.feed, v)), hu+1
		if old, ok := r.gScore[v]; ok && (ng > old || (ng == old && nh >= r.hops[v])) {
			continue
		}
		// Lazy decrease-key: the older entry for v goes stale.
		r.gScore[v] = ng
		r.hops[v] = nh
		r.prev[v] = u
		r.push(v, ng, nh)
	}
}

func (r *runner) reconstruct(goal venue.Position) []venue.Position {
	path := []venue.Position{goal}
	for at := goal; at != r.start; {
		at = r.prev[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// nodeItem is a frontier entry. Duplicates are allowed ("lazy decrease-key");
// stale ones are skipped when popped.
type nodeItem struct {
	pos  venue.Position
	g    float64 // cost from start
	hops int     // steps from start
	f    float64 // g + heuristic
	h    float64 // heuristic
	seq  int     // insertion order, used as the final tie-break
}

// nodePQ is a min-heap ordered by f, then hops, then h, then insertion order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].hops != pq[j].hops {
		return pq[i].hops < pq[j].hops
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
