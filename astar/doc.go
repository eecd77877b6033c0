// Package astar provides a crowd-aware A* search over a gridgraph.Grid.
//
// Overview:
//
//   - Moves are unit orthogonal steps between walkable cells.
//   - Entering cell B costs crowd.BaseCost + Policy.Penalty(level(B)), where the
//     level is read from a crowd.Feed at relaxation time.
//   - The heuristic is the Manhattan distance to the nearest goal. Every step
//     costs at least BaseCost, so the heuristic is admissible and consistent
//     and the first goal popped is optimal.
//
// Query shapes:
//
//   - FindPath(g, feed, start, goal):      one concrete goal cell.
//   - FindPathToAny(g, feed, start, goals): the cheapest of several goals
//     (a booth's access points). By default a single multi-goal search runs;
//     WithParallelCandidates() instead searches each goal independently on its
//     own goroutine and joins the results.
//
// Both strategies return a path of minimum cost and, among those, minimum
// cell count: labels compare by cost, then by steps taken. When several
// goals tie on both, the parallel join keeps the earliest candidate while
// the single search keeps whichever it reaches first.
//
// Outcomes are reported through Result.Status, never as errors:
//
//   - Found:           Result.Path runs from start to the reached goal inclusive.
//   - InvalidEndpoint: start or every goal is out of bounds or blocked.
//   - NoCandidates:    FindPathToAny was given no goals.
//   - Unreachable:     no walkable route exists.
//   - BudgetExceeded:  WithMaxExpansions cap was hit first.
//   - Cancelled:       the WithContext context was done.
//
// Errors are reserved for contract violations:
//
//   - ErrNilGrid:         the grid pointer is nil.
//   - ErrOptionViolation: an Option received an invalid argument.
//
// Complexity:
//
//   - Time:  O(N log N) for N walkable cells (each cell closed once, lazy heap).
//   - Space: O(N).
//
// Concurrency:
//
//   - A search only reads the grid and the feed. Grids are immutable; feeds
//     used with WithParallelCandidates must be safe for concurrent reads
//     (crowd.Static and crowd.Pathways are).
package astar
