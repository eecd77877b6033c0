package venue

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidLayout indicates a layout that violates a structural rule.
var ErrInvalidLayout = errors.New("venue: invalid layout")

// CCTV is a camera that monitors a walkway. Coverage lists the cells whose
// congestion level follows the camera's current head count.
type CCTV struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Position Position   `json:"position"`
	Coverage []Position `json:"coverage"`
}

// Layout is the static description of a venue.
type Layout struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Halls  []HallConfig `json:"halls"`
	Booths []Booth      `json:"booths"`
	CCTVs  []CCTV       `json:"cctvs,omitempty"`
}

// LoadLayout decodes a JSON layout from r and validates it.
func LoadLayout(r io.Reader) (*Layout, error) {
	var l Layout
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("venue: decode layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks the structural rules of a layout:
//   - Width and Height are positive.
//   - Every hall has a non-empty tag, YStart ≤ YEnd and a positive Width.
//   - Booth and camera IDs are non-empty and unique.
//   - No two booths share a footprint cell.
//
// Booth footprints are otherwise trusted as declared.
func (l *Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidLayout, l.Width, l.Height)
	}
	for i, h := range l.Halls {
		if h.Tag == "" || h.YEnd < h.YStart || h.Width <= 0 {
			return fmt.Errorf("%w: hall #%d %+v", ErrInvalidLayout, i, h)
		}
	}
	if err := ValidateBooths(l.Booths); err != nil {
		return err
	}
	cams := make(map[string]struct{}, len(l.CCTVs))
	for _, c := range l.CCTVs {
		if c.ID == "" {
			return fmt.Errorf("%w: cctv with empty id", ErrInvalidLayout)
		}
		if _, dup := cams[c.ID]; dup {
			return fmt.Errorf("%w: duplicate cctv id %q", ErrInvalidLayout, c.ID)
		}
		cams[c.ID] = struct{}{}
	}
	return nil
}

// ValidateBooths checks that booth IDs are non-empty and unique and that no
// two footprints share a cell.
func ValidateBooths(booths []Booth) error {
	ids := make(map[string]struct{}, len(booths))
	occupied := make(map[Position]string)
	for _, b := range booths {
		if b.ID == "" {
			return fmt.Errorf("%w: booth with empty id", ErrInvalidLayout)
		}
		if _, dup := ids[b.ID]; dup {
			return fmt.Errorf("%w: duplicate booth id %q", ErrInvalidLayout, b.ID)
		}
		ids[b.ID] = struct{}{}
		for _, c := range b.Cells() {
			if other, taken := occupied[c]; taken {
				return fmt.Errorf("%w: booths %q and %q overlap at %s", ErrInvalidLayout, other, b.ID, c)
			}
			occupied[c] = b.ID
		}
	}
	return nil
}

// Booth looks up a booth by ID.
func (l *Layout) Booth(id string) (Booth, bool) {
	for _, b := range l.Booths {
		if b.ID == id {
			return b, true
		}
	}
	return Booth{}, false
}

// Exhibition returns the built-in three-hall venue: a 12×22 grid holding
// hall C (rows 0–7, 9 wide), hall B (rows 8–15, 12 wide) and hall A
// (rows 16–21, 10 wide), with a few booths and the cameras watching the
// hall-to-hall passages.
func Exhibition() *Layout {
	return &Layout{
		Width:  12,
		Height: 22,
		Halls: []HallConfig{
			{Tag: "C", YStart: 0, YEnd: 7, Width: 9, Height: 8},
			{Tag: "B", YStart: 8, YEnd: 15, Width: 12, Height: 8},
			{Tag: "A", YStart: 16, YEnd: 21, Width: 10, Height: 6},
		},
		Booths: []Booth{
			{ID: "C-01", Name: "Robotics Lab", Anchor: Pos(5, 3), Size: Small, Hall: "C", Active: true, Categories: []string{"tech"}},
			{ID: "C-02", Name: "Game Studio", Anchor: Pos(2, 5), Size: Large, Hall: "C", Active: true, Categories: []string{"tech", "games"}},
			{ID: "B-01", Name: "Coffee Roasters", Anchor: Pos(3, 10), Size: Large, Hall: "B", Active: true, Categories: []string{"food"}},
			{ID: "B-02", Name: "Bookbinders", Anchor: Pos(8, 12), Size: Small, Hall: "B", Active: true, Categories: []string{"crafts"}},
			{ID: "A-01", Name: "Drone Arena", Anchor: Pos(4, 18), Size: Large, Hall: "A", Active: true, Categories: []string{"tech"}},
			{ID: "A-02", Name: "Tea House", Anchor: Pos(8, 17), Size: Small, Hall: "A", Active: false, Categories: []string{"food"}},
		},
		CCTVs: []CCTV{
			{ID: "CAM-CB", Name: "C/B passage", Position: Pos(5, 7), Coverage: []Position{Pos(4, 7), Pos(5, 7), Pos(6, 7), Pos(4, 8), Pos(5, 8), Pos(6, 8)}},
			{ID: "CAM-BA", Name: "B/A passage", Position: Pos(5, 15), Coverage: []Position{Pos(4, 15), Pos(5, 15), Pos(6, 15), Pos(4, 16), Pos(5, 16), Pos(6, 16)}},
		},
	}
}
