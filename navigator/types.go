package navigator

import (
	"errors"

	"github.com/katalvlaran/crowdnav/astar"
	"github.com/katalvlaran/crowdnav/venue"
)

// Sentinel errors for navigator operations.
var (
	// ErrNilGrid indicates New was called without a grid.
	ErrNilGrid = errors.New("navigator: grid is nil")
	// ErrNotWalkable indicates a start or end cell that is blocked or out of bounds.
	ErrNotWalkable = errors.New("navigator: position is not walkable")
	// ErrUnknownBooth indicates a booth ID not present in the grid's booth list.
	ErrUnknownBooth = errors.New("navigator: unknown booth")
	// ErrBoothInactive indicates a booth that cannot currently be selected as a destination.
	ErrBoothInactive = errors.New("navigator: booth is inactive")
	// ErrNoRoute indicates navigation was requested without a ready route.
	ErrNoRoute = errors.New("navigator: no route to navigate")
	// ErrNotNavigating indicates progress was marked outside an active navigation.
	ErrNotNavigating = errors.New("navigator: navigation is not active")
)

// State is the externally visible phase of route selection.
type State int

const (
	NoSelection State = iota
	StartChosen
	DestinationChosen
	RouteReady
	NoRoute
	NavigationActive
	Completed
)

func (s State) String() string {
	switch s {
	case NoSelection:
		return "no-selection"
	case StartChosen:
		return "start-chosen"
	case DestinationChosen:
		return "destination-chosen"
	case RouteReady:
		return "route-ready"
	case NoRoute:
		return "no-route"
	case NavigationActive:
		return "navigation-active"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// AccessPolicy decides which access point of a destination booth to route to.
type AccessPolicy int

const (
	// NearestToStart routes to the access point with the smallest Manhattan
	// distance to the start, breaking ties by path cost. If none of the
	// nearest points is reachable the cheapest reachable point is used.
	NearestToStart AccessPolicy = iota
	// LowestCost routes to whichever access point is cheapest to reach.
	LowestCost
)

func (p AccessPolicy) String() string {
	if p == LowestCost {
		return "lowest-cost"
	}
	return "nearest-start"
}

// Snapshot is a read-only copy of the navigator state handed to listeners
// and callers. Slices are owned by the snapshot.
type Snapshot struct {
	State        State
	Start        *venue.Position
	End          *venue.Position // resolved end cell; nil until a route is computed for a booth
	Booth        *venue.Booth    // destination booth, if the destination is a booth
	AccessPoints []venue.Position
	Path         []venue.Position
	Cost         float64
	Status       astar.Status
	Checkpoints  []int
	Progress     int // number of completed segments
}

// Segments returns the number of checkpoint-to-checkpoint segments.
func (s Snapshot) Segments() int {
	if len(s.Checkpoints) < 2 {
		return 0
	}
	return len(s.Checkpoints) - 1
}

// Option configures a Navigator.
type Option func(*options)

type options struct {
	access    AccessPolicy
	search    []astar.Option
	listeners []func(Snapshot)
}

// WithAccessPolicy selects the booth access-point policy (default NearestToStart).
func WithAccessPolicy(p AccessPolicy) Option {
	return func(o *options) { o.access = p }
}

// WithSearchOptions forwards options to every astar search.
func WithSearchOptions(opts ...astar.Option) Option {
	return func(o *options) { o.search = append(o.search, opts...) }
}

// WithListener registers fn to be called after every state change.
func WithListener(fn func(Snapshot)) Option {
	return func(o *options) {
		if fn != nil {
			o.listeners = append(o.listeners, fn)
		}
	}
}
