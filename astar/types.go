package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/crowdnav/crowd"
	"github.com/katalvlaran/crowdnav/venue"
)

// Sentinel errors returned by the search functions.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOptionViolation indicates an Option received an invalid argument.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Status classifies the outcome of a search.
type Status int

const (
	// Found means a path was computed.
	Found Status = iota
	// Unreachable means no walkable route connects start and any goal.
	Unreachable
	// InvalidEndpoint means start or all goals are outside the grid or blocked.
	InvalidEndpoint
	// NoCandidates means the goal set was empty.
	NoCandidates
	// BudgetExceeded means the expansion cap was reached before a goal.
	BudgetExceeded
	// Cancelled means the search context was done before a goal.
	Cancelled
)

// String returns a lower-case name for the status.
func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case Unreachable:
		return "unreachable"
	case InvalidEndpoint:
		return "invalid-endpoint"
	case NoCandidates:
		return "no-candidates"
	case BudgetExceeded:
		return "budget-exceeded"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Result is the outcome of one search. Path is empty unless Status == Found.
type Result struct {
	Path     []venue.Position // start … goal inclusive
	Cost     float64          // sum of edge costs along Path
	Goal     venue.Position   // the goal that was reached
	Status   Status
	Expanded int // cells closed by the search (summed across candidates)
}

// Found reports whether the search produced a path.
func (r Result) Found() bool {
	return r.Status == Found
}

// Options configures a search.
//
// Ctx           – cancellation; checked before each expansion.
// Policy        – congestion penalty table. Default crowd.DefaultPolicy().
// MaxExpansions – cap on closed cells per search; 0 disables the cap.
// Parallel      – evaluate FindPathToAny candidates independently in parallel.
type Options struct {
	Ctx           context.Context
	Policy        crowd.Policy
	MaxExpansions int
	Parallel      bool

	// err records the first invalid option; surfaced by the search call.
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns the defaults: background context, the default
// crowd penalty policy, no expansion cap, sequential candidate search.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Policy: crowd.DefaultPolicy(),
	}
}

// WithContext sets a context whose cancellation ends the search with Cancelled.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPolicy replaces the congestion penalty policy.
func WithPolicy(p crowd.Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithFlatCost disables congestion penalties so every step costs BaseCost.
func WithFlatCost() Option {
	return WithPolicy(crowd.Policy{})
}

// WithMaxExpansions caps the number of cells a search may close.
//
//	n > 0:  stop with BudgetExceeded after n expansions
//	n == 0: no cap
//	n < 0:  invalid → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithParallelCandidates makes FindPathToAny search each goal on its own
// goroutine and join the results.
func WithParallelCandidates() Option {
	return func(o *Options) {
		o.Parallel = true
	}
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, cfg.err
}
