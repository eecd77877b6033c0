package api

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/crowdnav/astar"
	"github.com/katalvlaran/crowdnav/config"
	"github.com/katalvlaran/crowdnav/crowd"
	"github.com/katalvlaran/crowdnav/gridgraph"
	"github.com/katalvlaran/crowdnav/navigator"
	"github.com/katalvlaran/crowdnav/route"
	"github.com/katalvlaran/crowdnav/venue"
)

// hotThreshold is the level above which a cell counts as hot in route reports.
const hotThreshold = 10

// Service owns the venue, the crowd feeds and the navigation session.
type Service struct {
	mu sync.Mutex

	grid     *gridgraph.Grid
	cameras  *crowd.Pathways
	cells    *crowd.Static
	feed     crowd.Feed
	policy   crowd.Policy
	access   navigator.AccessPolicy
	search   []astar.Option
	nav      *navigator.Navigator
	listener func(navigator.Snapshot)
}

// NewService builds the grid for layout and opens an empty session.
func NewService(layout *venue.Layout, cfg config.Config) (*Service, error) {
	g, err := gridgraph.FromLayout(layout)
	if err != nil {
		return nil, fmt.Errorf("api: build grid: %w", err)
	}
	s := &Service{
		grid:    g,
		cameras: crowd.NewPathways(layout.CCTVs),
		cells:   crowd.NewStatic(),
		policy:  cfg.Policy,
		access:  cfg.AccessPolicy,
		search:  cfg.SearchOptions(),
	}
	s.feed = crowd.Combine(s.cameras, s.cells)

	opts := append(cfg.NavigatorOptions(), navigator.WithListener(func(snap navigator.Snapshot) {
		if s.listener != nil {
			s.listener(snap)
		}
	}))
	s.nav, err = navigator.New(g, s.feed, opts...)
	if err != nil {
		return nil, fmt.Errorf("api: open session: %w", err)
	}
	return s, nil
}

// OnSessionChange registers fn to receive every session snapshot. It must
// be called before the service starts serving requests.
func (s *Service) OnSessionChange(fn func(navigator.Snapshot)) {
	s.listener = fn
}

// Grid returns the routing grid.
func (s *Service) Grid() *gridgraph.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// Booth looks up a booth by ID in the current grid.
func (s *Service) Booth(id string) (venue.Booth, bool) {
	for _, b := range s.Grid().Booths() {
		if b.ID == id {
			return b, true
		}
	}
	return venue.Booth{}, false
}

// RouteResult is a stateless route with its derived data.
type RouteResult struct {
	Result astar.Result
	Legs   []route.Leg
	Report route.Report
}

// RouteToCell computes a point-to-point route without touching the session.
func (s *Service) RouteToCell(ctx context.Context, start, end venue.Position) (RouteResult, error) {
	g := s.Grid()
	if !g.IsWalkable(start) {
		return RouteResult{}, fmt.Errorf("%w: start %s", navigator.ErrNotWalkable, start)
	}
	if !g.IsWalkable(end) {
		return RouteResult{}, fmt.Errorf("%w: end %s", navigator.ErrNotWalkable, end)
	}
	res, err := astar.FindPath(g, s.feed, start, end, s.searchOptions(ctx)...)
	if err != nil {
		return RouteResult{}, err
	}
	return s.describe(g, res), nil
}

// RouteToBooth computes a route to the access point of a booth chosen by
// the configured AccessPolicy without touching the session.
func (s *Service) RouteToBooth(ctx context.Context, start venue.Position, boothID string) (RouteResult, error) {
	g := s.Grid()
	if !g.IsWalkable(start) {
		return RouteResult{}, fmt.Errorf("%w: start %s", navigator.ErrNotWalkable, start)
	}
	b, ok := s.Booth(boothID)
	if !ok {
		return RouteResult{}, fmt.Errorf("%w: %q", navigator.ErrUnknownBooth, boothID)
	}
	if !b.Active {
		return RouteResult{}, fmt.Errorf("%w: %q", navigator.ErrBoothInactive, boothID)
	}
	res, err := navigator.RouteToBooth(g, s.feed, start, b, s.access, s.searchOptions(ctx)...)
	if err != nil {
		return RouteResult{}, err
	}
	return s.describe(g, res), nil
}

func (s *Service) searchOptions(ctx context.Context) []astar.Option {
	return append(append([]astar.Option{}, s.search...), astar.WithContext(ctx))
}

func (s *Service) describe(g *gridgraph.Grid, res astar.Result) RouteResult {
	return RouteResult{
		Result: res,
		Legs:   route.Legs(res.Path),
		Report: route.Analyze(res.Path, s.feed, route.WithPolicy(s.policy), route.WithCrossings(g, hotThreshold)),
	}
}

// Session returns the current session snapshot.
func (s *Service) Session() navigator.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.Snapshot()
}

// CurrentSegment returns the segment being walked, if navigating.
func (s *Service) CurrentSegment() []venue.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.CurrentSegment()
}

// Mutate runs fn against the session under the service lock and returns
// the resulting snapshot.
func (s *Service) Mutate(fn func(*navigator.Navigator) error) (navigator.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := fn(s.nav)
	return s.nav.Snapshot(), err
}

// SetCameraCount records a camera head count.
func (s *Service) SetCameraCount(id string, count float64) error {
	return s.cameras.SetCount(id, count)
}

// SetCellLevel overrides the congestion level of one cell.
func (s *Service) SetCellLevel(p venue.Position, level float64) {
	s.cells.Set(p, level)
}

// CameraCount is one camera reading.
type CameraCount struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Count    float64          `json:"count"`
	Coverage []venue.Position `json:"coverage"`
}

// CameraCounts lists every camera with its current count.
func (s *Service) CameraCounts() []CameraCount {
	cams := s.cameras.Cameras()
	out := make([]CameraCount, 0, len(cams))
	for _, c := range cams {
		n, _ := s.cameras.Count(c.ID)
		out = append(out, CameraCount{ID: c.ID, Name: c.Name, Count: n, Coverage: c.Coverage})
	}
	return out
}

// ReplaceBooths recomputes obstacles for a new booth list and updates the session.
func (s *Service) ReplaceBooths(booths []venue.Booth) (navigator.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.nav.RebuildObstacles(booths)
	s.grid = s.nav.Grid()
	return s.nav.Snapshot(), err
}
