// Package navigator owns the route-selection state of one navigation
// session: the chosen start cell, the destination (a cell or a booth), the
// current path and the visitor's progress along its checkpoints.
//
// States:
//
//	NoSelection ──SetStart──▶ StartChosen ──SetEnd/SelectBooth──▶ RouteReady ──BeginNavigation──▶ NavigationActive ──MarkProgress…──▶ Completed
//	     │                                                           │
//	     └──SetEnd/SelectBooth──▶ DestinationChosen ──SetStart──▶ RouteReady | NoRoute
//
// Any SetStart, SetEnd or SelectDestinationBooth once both ends are known
// triggers a full recomputation; paths are replaced, never patched. Clear
// returns to NoSelection from anywhere and is idempotent.
//
// RouteToBooth applies the same AccessPolicy without a session, for
// one-off booth queries.
//
// Congestion changes are not observed automatically: the route stays as
// computed until the next mutating call or an explicit Recompute.
//
// Listeners registered with WithListener run synchronously, on the calling
// goroutine, after every state change. A Navigator is not safe for
// concurrent use; callers with several goroutines must serialize access.
package navigator
