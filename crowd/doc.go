// Package crowd adapts externally supplied pedestrian congestion readings
// into per-cell levels and converts levels into traversal penalties.
//
// The source of truth for congestion lives outside this module (sensor
// feeds, simulation timers). A Feed is queried synchronously at every edge
// relaxation of a search, so implementations must answer from memory
// without blocking I/O. Values may change between two calls; callers use
// whatever is current and never expect a consistent snapshot.
//
// Implementations provided:
//
//   - Zero:     no congestion anywhere (the unweighted baseline).
//   - FeedFunc: adapts a plain function.
//   - Static:   per-cell levels guarded by a RWMutex, settable from any goroutine.
//   - Pathways: CCTV-monitored walkways; a camera's head count applies to every
//     cell it covers (maximum over overlapping cameras).
//   - Combine:  pointwise maximum of several feeds.
//
// Policy maps a level to a penalty with a monotonic step function; the
// default is 0–5 → 0, ≤10 → +2, ≤15 → +5, ≤20 → +10, otherwise +15.
package crowd
