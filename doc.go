// Package crowdnav is a crowd-aware indoor navigation engine for exhibition
// venues: it turns a floor plan of halls and booths into a walkable grid,
// reads live congestion from CCTV head counts, and finds the cheapest
// walking route to a cell or to any side of a booth.
//
// 🚀 What is inside?
//
//	• Venue model: halls, 1×1 and 2×2 booths, cameras, JSON layouts
//	• Grid topology: walkability, access points, connected components
//	• Crowd feeds: camera coverage, per-cell overrides, penalty tables
//	• Search: A* over congestion-weighted steps, single or many goals
//	• Routes: checkpoints, walking legs, exposure reports
//	• Sessions: a start/destination/navigation state machine
//	• HTTP API and a one-shot CLI
//
// Packages:
//
//	venue/     - positions, halls, booths, cameras, layout loading
//	gridgraph/ - the walkable lattice built from a layout
//	crowd/     - congestion feeds and the level → penalty policy
//	astar/     - crowd-aware shortest paths with budgets and cancellation
//	route/     - checkpoints, legs, validation and congestion reports
//	navigator/ - the route-selection state container for one visitor
//	config/    - environment and .env settings
//	api/       - gin handlers over a shared Service
//	cmd/       - crowdnav (CLI) and crowdnav-server (HTTP)
//
// Quick ASCII example (# blocked, B booth, S start, G goal, * route):
//
//	    # S * * * #
//	    # . B B * #
//	    # . B B * #
//	    # . . . G #
//
// Every step costs 1 plus the penalty for the congestion level of the cell
// being entered, so a route bends around crowded passages once the detour
// is cheaper than the queue.
//
//	go run ./cmd/crowdnav -start 1,0 -booth B-02 -cctv CAM-CB=18
package crowdnav
