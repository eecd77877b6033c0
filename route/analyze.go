package route

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/crowdnav/crowd"
	"github.com/katalvlaran/crowdnav/gridgraph"
	"github.com/katalvlaran/crowdnav/venue"
)

// Sentinel errors returned by Validate.
var (
	// ErrNotContiguous indicates two consecutive cells that are not orthogonal neighbors.
	ErrNotContiguous = errors.New("route: consecutive cells are not adjacent")
	// ErrBlockedCell indicates a path cell that is not walkable.
	ErrBlockedCell = errors.New("route: path crosses a blocked cell")
)

// Validate checks that every cell of path is walkable and that consecutive
// cells differ by one unit on one axis. Empty and single-cell paths are valid.
func Validate(g *gridgraph.Grid, path []venue.Position) error {
	for i, p := range path {
		if !g.IsWalkable(p) {
			return fmt.Errorf("%w: index %d at %s", ErrBlockedCell, i, p)
		}
		if i > 0 && !path[i-1].Adjacent(p) {
			return fmt.Errorf("%w: index %d (%s → %s)", ErrNotContiguous, i, path[i-1], p)
		}
	}
	return nil
}

// Cost sums the edge costs along path under policy: each step into cell
// path[i] (i ≥ 1) costs policy.Cost(level). The start cell is free.
func Cost(path []venue.Position, feed crowd.Feed, policy crowd.Policy) float64 {
	if feed == nil {
		feed = crowd.Zero
	}
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += policy.Cost(crowd.Level(feed, path[i]))
	}
	return total
}

// Step is one cell of an analyzed path.
type Step struct {
	Index    int            `json:"index"`
	Position venue.Position `json:"position"`
	Level    float64        `json:"level"`
}

// Report summarizes congestion along a path. Exposure sums the level of
// every cell on the path, start included, saturating at math.MaxFloat64;
// AverageExposure divides it by the number of cells. UnavoidableHot is -1 unless WithCrossings was given.
type Report struct {
	Steps           []Step  `json:"steps"`
	Checkpoints     []int   `json:"checkpoints"`
	TotalExposure   float64 `json:"totalExposure"`
	AverageExposure float64 `json:"averageExposure"`
	Cost            float64 `json:"cost"`
	HotCells        int     `json:"hotCells"`
	UnavoidableHot  int     `json:"unavoidableHot"`
}

type analyzeOptions struct {
	policy       crowd.Policy
	grid         *gridgraph.Grid
	hotThreshold float64
}

// AnalyzeOption configures Analyze.
type AnalyzeOption func(*analyzeOptions)

// WithPolicy sets the policy used for Report.Cost (default crowd.DefaultPolicy()).
func WithPolicy(p crowd.Policy) AnalyzeOption {
	return func(o *analyzeOptions) { o.policy = p }
}

// WithCrossings counts cells above threshold as hot and, using g, computes
// the fewest hot cells any walk between the path's endpoints must enter.
func WithCrossings(g *gridgraph.Grid, threshold float64) AnalyzeOption {
	return func(o *analyzeOptions) {
		o.grid = g
		o.hotThreshold = threshold
	}
}

// Analyze reads the current congestion of every cell on path and
// summarizes it. An empty path yields a zero report (no division by zero).
func Analyze(path []venue.Position, feed crowd.Feed, opts ...AnalyzeOption) Report {
	cfg := analyzeOptions{policy: crowd.DefaultPolicy(), hotThreshold: -1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if feed == nil {
		feed = crowd.Zero
	}

	rep := Report{
		Steps:          make([]Step, 0, len(path)),
		Checkpoints:    Checkpoints(path),
		UnavoidableHot: -1,
	}
	if len(path) == 0 {
		return rep
	}

	hot := func(p venue.Position) bool {
		return cfg.hotThreshold >= 0 && crowd.Level(feed, p) > cfg.hotThreshold
	}
	for i, p := range path {
		level := crowd.Level(feed, p)
		rep.Steps = append(rep.Steps, Step{Index: i, Position: p, Level: level})
		rep.TotalExposure = addSaturating(rep.TotalExposure, level)
		if i > 0 {
			rep.Cost += cfg.policy.Cost(level)
		}
		if hot(p) {
			rep.HotCells++
		}
	}
	rep.AverageExposure = rep.TotalExposure / float64(len(path))

	if cfg.grid != nil && cfg.hotThreshold >= 0 {
		if _, n, err := cfg.grid.MinimumCrossings(path[0], path[len(path)-1], hot); err == nil {
			rep.UnavoidableHot = n
		}
	}
	return rep
}

// addSaturating adds two non-negative levels, capping at math.MaxFloat64
// so reports stay finite.
func addSaturating(a, b float64) float64 {
	if s := a + b; !math.IsInf(s, 1) {
		return s
	}
	return math.MaxFloat64
}

// String renders the report as a human-readable table.
func (r Report) String() string {
	var b strings.Builder
	if len(r.Steps) == 0 {
		b.WriteString("empty path\n")
		return b.String()
	}
	cp := make(map[int]bool, len(r.Checkpoints))
	for _, i := range r.Checkpoints {
		cp[i] = true
	}
	for _, s := range r.Steps {
		mark := " "
		if cp[s.Index] {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %3d  (%s)  level=%g\n", mark, s.Index, s.Position, s.Level)
	}
	fmt.Fprintf(&b, "steps=%d checkpoints=%d cost=%g exposure=%g avg=%.2f",
		len(r.Steps), len(r.Checkpoints), r.Cost, r.TotalExposure, r.AverageExposure)
	if r.UnavoidableHot >= 0 {
		fmt.Fprintf(&b, " hot=%d unavoidable=%d", r.HotCells, r.UnavoidableHot)
	}
	b.WriteString("\n")
	return b.String()
}
