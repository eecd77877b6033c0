package navigator

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/crowdnav/astar"
	"github.com/katalvlaran/crowdnav/crowd"
	"github.com/katalvlaran/crowdnav/gridgraph"
	"github.com/katalvlaran/crowdnav/route"
	"github.com/katalvlaran/crowdnav/venue"
)

// Navigator is the route-selection state container for one session.
type Navigator struct {
	grid *gridgraph.Grid
	feed crowd.Feed
	opts options

	state    State
	hasStart bool
	start    venue.Position

	hasEnd bool
	end    venue.Position // destination cell when booth == nil
	booth  *venue.Booth

	result      astar.Result
	checkpoints []int
	progress    int
}

// New creates a Navigator over g reading congestion from feed.
// A nil feed means no congestion.
func New(g *gridgraph.Grid, feed crowd.Feed, opts ...Option) (*Navigator, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if feed == nil {
		feed = crowd.Zero
	}
	n := &Navigator{grid: g, feed: feed}
	for _, opt := range opts {
		opt(&n.opts)
	}
	return n, nil
}

// Grid returns the grid currently used for routing.
func (n *Navigator) Grid() *gridgraph.Grid { return n.grid }

// State returns the current phase.
func (n *Navigator) State() State { return n.state }

// Start returns the chosen start cell, if any.
func (n *Navigator) Start() (venue.Position, bool) { return n.start, n.hasStart }

// Path returns a copy of the current path (empty when there is none).
func (n *Navigator) Path() []venue.Position {
	return append([]venue.Position{}, n.result.Path...)
}

// Checkpoints returns a copy of the checkpoint indices of the current path.
func (n *Navigator) Checkpoints() []int {
	return append([]int{}, n.checkpoints...)
}

// SetStart chooses the start cell and recomputes the route if a destination
// is already known. A blocked or out-of-bounds p returns ErrNotWalkable and
// leaves the state unchanged.
func (n *Navigator) SetStart(p venue.Position) error {
	if !n.grid.IsWalkable(p) {
		return fmt.Errorf("%w: start %s", ErrNotWalkable, p)
	}
	n.start, n.hasStart = p, true
	return n.update()
}

// SetEnd chooses a destination cell, replacing any destination booth, and
// recomputes the route if a start is already known.
func (n *Navigator) SetEnd(p venue.Position) error {
	if !n.grid.IsWalkable(p) {
		return fmt.Errorf("%w: end %s", ErrNotWalkable, p)
	}
	n.end, n.hasEnd, n.booth = p, true, nil
	return n.update()
}

// SelectDestinationBooth makes b the destination. The route ends at one of
// its access points chosen by the AccessPolicy.
func (n *Navigator) SelectDestinationBooth(b venue.Booth) error {
	if !b.Active {
		return fmt.Errorf("%w: %q", ErrBoothInactive, b.ID)
	}
	bc := b
	n.booth, n.hasEnd = &bc, true
	return n.update()
}

// SelectBoothByID looks the booth up in the grid's booth list and selects it.
func (n *Navigator) SelectBoothByID(id string) error {
	for _, b := range n.grid.Booths() {
		if b.ID == id {
			return n.SelectDestinationBooth(b)
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownBooth, id)
}

// Clear discards start, destination and path and returns to NoSelection.
// It always succeeds and is idempotent.
func (n *Navigator) Clear() {
	n.hasStart, n.hasEnd = false, false
	n.start, n.end = venue.Position{}, venue.Position{}
	n.booth = nil
	n.resetRoute()
	n.state = NoSelection
	n.notify()
}

// Recompute re-runs the search with the current congestion readings.
// Navigation progress is reset.
func (n *Navigator) Recompute() error {
	return n.update()
}

// BeginNavigation starts step-by-step guidance along the ready route.
// A single-checkpoint route completes immediately.
func (n *Navigator) BeginNavigation() error {
	if n.state != RouteReady {
		return fmt.Errorf("%w: state %s", ErrNoRoute, n.state)
	}
	n.progress = 0
	n.state = NavigationActive
	if len(n.checkpoints) < 2 {
		n.state = Completed
	}
	n.notify()
	return nil
}

// MarkProgress records that the visitor reached the next checkpoint.
// It reports true once the final checkpoint has been reached.
func (n *Navigator) MarkProgress() (bool, error) {
	if n.state != NavigationActive {
		return false, fmt.Errorf("%w: state %s", ErrNotNavigating, n.state)
	}
	n.progress++
	if n.progress >= len(n.checkpoints)-1 {
		n.state = Completed
	}
	n.notify()
	return n.state == Completed, nil
}

// CurrentSegment returns the cells of the segment the visitor is walking,
// or nil outside an active navigation.
func (n *Navigator) CurrentSegment() []venue.Position {
	if n.state != NavigationActive {
		return nil
	}
	from, to := n.checkpoints[n.progress], n.checkpoints[n.progress+1]
	return append([]venue.Position{}, n.result.Path[from:to+1]...)
}

// RebuildObstacles recomputes the grid from a new booth list. A start or
// destination cell that became blocked is dropped, as is a destination
// booth that no longer exists or is no longer active; the route is then
// recomputed.
func (n *Navigator) RebuildObstacles(booths []venue.Booth) error {
	n.grid = n.grid.Rebuild(booths)
	if n.hasStart && !n.grid.IsWalkable(n.start) {
		n.hasStart = false
	}
	if n.hasEnd && n.booth == nil && !n.grid.IsWalkable(n.end) {
		n.hasEnd = false
	}
	if n.booth != nil {
		id := n.booth.ID
		n.booth, n.hasEnd = nil, false
		for _, b := range booths {
			if b.ID == id && b.Active {
				bc := b
				n.booth, n.hasEnd = &bc, true
				break
			}
		}
	}
	return n.update()
}

// Snapshot returns a copy of the current state.
func (n *Navigator) Snapshot() Snapshot {
	s := Snapshot{
		State:       n.state,
		Path:        append([]venue.Position{}, n.result.Path...),
		Cost:        n.result.Cost,
		Status:      n.result.Status,
		Checkpoints: append([]int{}, n.checkpoints...),
		Progress:    n.progress,
	}
	if n.hasStart {
		p := n.start
		s.Start = &p
	}
	if n.booth != nil {
		b := *n.booth
		s.Booth = &b
		s.AccessPoints = n.grid.AccessPoints(b)
		if n.result.Found() {
			e := n.result.Goal
			s.End = &e
		}
	} else if n.hasEnd {
		e := n.end
		s.End = &e
	}
	return s
}

// update derives the state from the current selection, recomputing the
// route when both ends are known, and notifies listeners.
func (n *Navigator) update() error {
	n.resetRoute()
	switch {
	case n.hasStart && n.hasEnd:
		res, err := n.search()
		if err != nil {
			n.state = NoRoute
			n.notify()
			return err
		}
		n.result = res
		if res.Found() {
			n.checkpoints = route.Checkpoints(res.Path)
			n.state = RouteReady
		} else {
			n.state = NoRoute
		}
	case n.hasStart:
		n.state = StartChosen
	case n.hasEnd:
		n.state = DestinationChosen
	default:
		n.state = NoSelection
	}
	n.notify()
	return nil
}

func (n *Navigator) resetRoute() {
	n.result = astar.Result{}
	n.checkpoints = nil
	n.progress = 0
}

func (n *Navigator) search() (astar.Result, error) {
	if n.booth == nil {
		return astar.FindPath(n.grid, n.feed, n.start, n.end, n.opts.search...)
	}
	return RouteToBooth(n.grid, n.feed, n.start, *n.booth, n.opts.access, n.opts.search...)
}

// RouteToBooth searches from start to one access point of b, chosen by
// policy. It does not check that b is active. A booth without access
// points yields astar.NoCandidates.
func RouteToBooth(g *gridgraph.Grid, feed crowd.Feed, start venue.Position, b venue.Booth, policy AccessPolicy, opts ...astar.Option) (astar.Result, error) {
	if g == nil {
		return astar.Result{}, ErrNilGrid
	}
	points := g.AccessPoints(b)
	if len(points) == 0 || policy == LowestCost {
		return astar.FindPathToAny(g, feed, start, points, opts...)
	}
	return searchNearest(g, feed, start, points, opts)
}

// searchNearest tries the access points closest to start first and
// falls back to the cheapest reachable one.
func searchNearest(g *gridgraph.Grid, feed crowd.Feed, start venue.Position, points []venue.Position, opts []astar.Option) (astar.Result, error) {
	sorted := append([]venue.Position{}, points...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Manhattan(start) < sorted[j].Manhattan(start)
	})
	// 1) The tied-nearest group is searched as one multi-goal query.
	d := sorted[0].Manhattan(start)
	k := 1
	for k < len(sorted) && sorted[k].Manhattan(start) == d {
		k++
	}

	res, err := astar.FindPathToAny(g, feed, start, sorted[:k], opts...)
	if err != nil || res.Found() || k == len(sorted) {
		return res, err
	}
	// 2) None of them reachable: cheapest of the rest.
	fallback, err := astar.FindPathToAny(g, feed, start, sorted[k:], opts...)
	fallback.Expanded += res.Expanded
	return fallback, err
}

func (n *Navigator) notify() {
	if len(n.opts.listeners) == 0 {
		return
	}
	s := n.Snapshot()
	for _, fn := range n.opts.listeners {
		fn(s)
	}
}
