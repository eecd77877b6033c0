package venue

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFootprint indicates a footprint string that is not one of the
// recognized sizes.
var ErrUnknownFootprint = errors.New("venue: unknown booth footprint")

// FootprintSize is the fixed footprint of a booth, set once when the booth
// is created and never inferred from its display name.
type FootprintSize int

const (
	// Small occupies a single cell (1×1).
	Small FootprintSize = iota
	// Large occupies a 2×2 block anchored at its top-left cell.
	Large
)

// Side returns the edge length of the footprint in cells.
func (f FootprintSize) Side() int {
	if f == Large {
		return 2
	}
	return 1
}

// String returns "1x1" or "2x2".
func (f FootprintSize) String() string {
	if f == Large {
		return "2x2"
	}
	return "1x1"
}

// ParseFootprint accepts "1x1"/"small" and "2x2"/"large" (case-insensitive).
func ParseFootprint(s string) (FootprintSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1x1", "small":
		return Small, nil
	case "2x2", "large":
		return Large, nil
	}
	return Small, fmt.Errorf("%w: %q", ErrUnknownFootprint, s)
}

// MarshalText implements encoding.TextMarshaler.
func (f FootprintSize) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FootprintSize) UnmarshalText(b []byte) error {
	v, err := ParseFootprint(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Booth is an exhibitor stand. Its cells are never walkable; visitors are
// routed to the walkable cells bordering it instead.
type Booth struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Anchor     Position      `json:"anchor"`
	Size       FootprintSize `json:"size"`
	Hall       string        `json:"hall"`
	Active     bool          `json:"active"`
	Categories []string      `json:"categories,omitempty"`
}

// Cells returns the footprint cells in row-major order starting at Anchor.
func (b Booth) Cells() []Position {
	side := b.Size.Side()
	cells := make([]Position, 0, side*side)
	for dy := 0; dy < side; dy++ {
		for dx := 0; dx < side; dx++ {
			cells = append(cells, Position{X: b.Anchor.X + dx, Y: b.Anchor.Y + dy})
		}
	}
	return cells
}

// Covers reports whether p is one of the booth's footprint cells.
// Complexity: O(1).
func (b Booth) Covers(p Position) bool {
	side := b.Size.Side()
	return p.X >= b.Anchor.X && p.X < b.Anchor.X+side &&
		p.Y >= b.Anchor.Y && p.Y < b.Anchor.Y+side
}

// HasCategory reports whether the booth is tagged with category (case-insensitive).
func (b Booth) HasCategory(category string) bool {
	for _, c := range b.Categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// FilterBooths returns the booths tagged with category, preserving order.
// An empty category returns a copy of all booths.
func FilterBooths(booths []Booth, category string) []Booth {
	out := make([]Booth, 0, len(booths))
	for _, b := range booths {
		if category == "" || b.HasCategory(category) {
			out = append(out, b)
		}
	}
	return out
}

// ActiveBooths returns the booths whose Active flag is set, preserving order.
func ActiveBooths(booths []Booth) []Booth {
	out := make([]Booth, 0, len(booths))
	for _, b := range booths {
		if b.Active {
			out = append(out, b)
		}
	}
	return out
}
