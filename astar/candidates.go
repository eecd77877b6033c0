package astar

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crowdnav/crowd"
	"github.com/katalvlaran/crowdnav/gridgraph"
	"github.com/katalvlaran/crowdnav/venue"
)

// searchEach runs an independent single-goal search per candidate and joins
// the results once all have finished. Each goroutine owns its runner; only
// the immutable grid and the feed are shared.
func searchEach(g *gridgraph.Grid, feed crowd.Feed, start venue.Position, candidates []venue.Position, cfg Options) (Result, error) {
	results := make([]Result, len(candidates))

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, goal := range candidates {
		i, goal := i, goal
		eg.Go(func() error {
			if !g.Connected(start, goal) {
				results[i] = Result{Status: Unreachable}
				return nil
			}
			results[i] = newRunner(g, feed, start, []venue.Position{goal}, cfg).run()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	return Best(results), nil
}

// Best picks the preferred result among independent candidate searches:
// the lowest cost Found result, then the shortest path, then the earliest
// in results. When nothing was found it reports Cancelled if any search
// was cancelled, else BudgetExceeded if any ran out of budget, else
// Unreachable. Expanded is summed over all results.
func Best(results []Result) Result {
	best := -1
	expanded := 0
	cancelled, exhausted := false, false
	for i, r := range results {
		expanded += r.Expanded
		switch r.Status {
		case Found:
			if best < 0 || better(r, results[best]) {
				best = i
			}
		case Cancelled:
			cancelled = true
		case BudgetExceeded:
			exhausted = true
		}
	}

	var out Result
	switch {
	case best >= 0:
		out = results[best]
	case cancelled:
		out = Result{Status: Cancelled}
	case exhausted:
		out = Result{Status: BudgetExceeded}
	default:
		out = Result{Status: Unreachable}
	}
	out.Expanded = expanded

	return out
}

func better(a, b Result) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	return len(a.Path) < len(b.Path)
}
