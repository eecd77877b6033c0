package crowd

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/katalvlaran/crowdnav/venue"
)

// ErrUnknownCamera indicates a camera ID that is not registered with a Pathways feed.
var ErrUnknownCamera = errors.New("crowd: unknown camera")

// Feed reports the current congestion level of a cell. Levels are ≥ 0;
// implementations must not block.
type Feed interface {
	CongestionLevel(p venue.Position) float64
}

// FeedFunc adapts an ordinary function to the Feed interface.
type FeedFunc func(p venue.Position) float64

// CongestionLevel calls f(p).
func (f FeedFunc) CongestionLevel(p venue.Position) float64 { return f(p) }

// Zero reports no congestion anywhere.
var Zero Feed = FeedFunc(func(venue.Position) float64 { return 0 })

// Level reads f at p and clamps the result to a finite value ≥ 0.
// NaN and negative readings become 0; +Inf becomes math.MaxFloat64.
func Level(f Feed, p venue.Position) float64 {
	v := f.CongestionLevel(p)
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	}
	return v
}

// Static holds explicitly assigned per-cell levels. Cells never set report 0.
// It is safe for concurrent use.
type Static struct {
	mu     sync.RWMutex
	levels map[venue.Position]float64
}

// NewStatic returns an empty Static feed.
func NewStatic() *Static {
	return &Static{levels: make(map[venue.Position]float64)}
}

// Set assigns level to p. A level ≤ 0 removes the entry.
func (s *Static) Set(p venue.Position, level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if level <= 0 {
		delete(s.levels, p)
		return
	}
	s.levels[p] = level
}

// Reset clears every assigned level.
func (s *Static) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.levels = make(map[venue.Position]float64)
}

// CongestionLevel implements Feed.
func (s *Static) CongestionLevel(p venue.Position) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.levels[p]
}

// Snapshot returns a copy of the assigned levels.
func (s *Static) Snapshot() map[venue.Position]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[venue.Position]float64, len(s.levels))
	for p, v := range s.levels {
		out[p] = v
	}
	return out
}

// Pathways derives cell levels from CCTV head counts. Each camera covers a
// fixed set of cells; a cell's level is the largest count among the cameras
// covering it. It is safe for concurrent use, so a timer goroutine may call
// SetCount while searches read levels.
type Pathways struct {
	mu      sync.RWMutex
	cameras map[string]venue.CCTV
	counts  map[string]float64
	byCell  map[venue.Position][]string
}

// NewPathways registers the given cameras with a count of zero.
func NewPathways(cctvs []venue.CCTV) *Pathways {
	pw := &Pathways{
		cameras: make(map[string]venue.CCTV, len(cctvs)),
		counts:  make(map[string]float64, len(cctvs)),
		byCell:  make(map[venue.Position][]string),
	}
	for _, c := range cctvs {
		pw.cameras[c.ID] = c
		pw.counts[c.ID] = 0
		for _, p := range c.Coverage {
			pw.byCell[p] = append(pw.byCell[p], c.ID)
		}
	}
	return pw
}

// SetCount records the current head count seen by camera id.
// Negative counts are stored as 0.
func (pw *Pathways) SetCount(id string, count float64) error {
	pw.mu.Lock()
	defer pw.mu.Unlock()
	if _, ok := pw.cameras[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCamera, id)
	}
	if count < 0 || math.IsNaN(count) {
		count = 0
	}
	pw.counts[id] = count
	return nil
}

// Count returns the last head count recorded for camera id.
func (pw *Pathways) Count(id string) (float64, bool) {
	pw.mu.RLock()
	defer pw.mu.RUnlock()
	v, ok := pw.counts[id]
	return v, ok
}

// Cameras returns the registered cameras sorted by ID.
func (pw *Pathways) Cameras() []venue.CCTV {
	pw.mu.RLock()
	defer pw.mu.RUnlock()
	out := make([]venue.CCTV, 0, len(pw.cameras))
	for _, c := range pw.cameras {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CongestionLevel implements Feed.
func (pw *Pathways) CongestionLevel(p venue.Position) float64 {
	pw.mu.RLock()
	defer pw.mu.RUnlock()
	level := 0.0
	for _, id := range pw.byCell[p] {
		if c := pw.counts[id]; c > level {
			level = c
		}
	}
	return level
}

// Combine returns a feed reporting the pointwise maximum of feeds.
// Nil entries are skipped.
func Combine(feeds ...Feed) Feed {
	return FeedFunc(func(p venue.Position) float64 {
		level := 0.0
		for _, f := range feeds {
			if f == nil {
				continue
			}
			if v := Level(f, p); v > level {
				level = v
			}
		}
		return level
	})
}
