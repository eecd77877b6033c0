package venue_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crowdnav/venue"
)

//----------------------------------------------------------------------------//
// Position
//----------------------------------------------------------------------------//

// TestPosition_Arithmetic covers Add, Sub, Manhattan, Adjacent and String.
func TestPosition_Arithmetic(t *testing.T) {
	p, q := venue.Pos(2, 3), venue.Pos(5, 1)

	assert.Equal(t, venue.Pos(7, 4), p.Add(q))
	assert.Equal(t, venue.Pos(3, -2), q.Sub(p))
	assert.Equal(t, 5, p.Manhattan(q))
	assert.Equal(t, p.Manhattan(q), q.Manhattan(p))
	assert.True(t, p.Adjacent(venue.Pos(2, 4)))
	assert.False(t, p.Adjacent(venue.Pos(3, 4)), "diagonal cells are not adjacent")
	assert.False(t, p.Adjacent(p))
	assert.Equal(t, "2,3", p.String())
}

// TestParsePosition accepts "x,y" with optional spaces and rejects junk.
func TestParsePosition(t *testing.T) {
	p, err := venue.ParsePosition(" 4, 17 ")
	require.NoError(t, err)
	assert.Equal(t, venue.Pos(4, 17), p)

	for _, bad := range []string{"", "4", "4;5", "a,1", "1,b"} {
		_, err := venue.ParsePosition(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

//----------------------------------------------------------------------------//
// HallConfig
//----------------------------------------------------------------------------//

// TestHallConfig_Contains checks horizontal centering and the inclusive row span.
func TestHallConfig_Contains(t *testing.T) {
	hall := venue.HallConfig{Tag: "C", YStart: 0, YEnd: 7, Width: 9, Height: 8}
	const gridWidth = 12

	assert.Equal(t, 1, hall.XStart(gridWidth))
	cases := []struct {
		p    venue.Position
		want bool
	}{
		{venue.Pos(1, 0), true},
		{venue.Pos(9, 7), true},
		{venue.Pos(0, 0), false},
		{venue.Pos(10, 7), false},
		{venue.Pos(5, 8), false},
		{venue.Pos(5, -1), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, hall.Contains(tc.p, gridWidth), "Contains(%s)", tc.p)
	}
}

//----------------------------------------------------------------------------//
// Booth
//----------------------------------------------------------------------------//

// TestParseFootprint covers the accepted spellings and the sentinel error.
func TestParseFootprint(t *testing.T) {
	for in, want := range map[string]venue.FootprintSize{
		"1x1": venue.Small, "small": venue.Small, " SMALL ": venue.Small,
		"2x2": venue.Large, "large": venue.Large, "Large": venue.Large,
	} {
		got, err := venue.ParseFootprint(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := venue.ParseFootprint("3x3")
	assert.ErrorIs(t, err, venue.ErrUnknownFootprint)
}

// TestBooth_Cells verifies footprint expansion from the anchor.
func TestBooth_Cells(t *testing.T) {
	small := venue.Booth{ID: "s", Anchor: venue.Pos(5, 3), Size: venue.Small}
	assert.Equal(t, []venue.Position{venue.Pos(5, 3)}, small.Cells())
	assert.True(t, small.Covers(venue.Pos(5, 3)))
	assert.False(t, small.Covers(venue.Pos(6, 3)))

	large := venue.Booth{ID: "l", Anchor: venue.Pos(3, 10), Size: venue.Large}
	assert.Equal(t, []venue.Position{
		venue.Pos(3, 10), venue.Pos(4, 10),
		venue.Pos(3, 11), venue.Pos(4, 11),
	}, large.Cells())
	for _, c := range large.Cells() {
		assert.True(t, large.Covers(c), "Covers(%s)", c)
	}
	assert.False(t, large.Covers(venue.Pos(5, 10)))
	assert.False(t, large.Covers(venue.Pos(3, 12)))
	assert.Equal(t, 2, venue.Large.Side())
	assert.Equal(t, "2x2", venue.Large.String())
}

// TestFilterBooths selects by category and by the active flag.
func TestFilterBooths(t *testing.T) {
	booths := venue.Exhibition().Booths

	food := venue.FilterBooths(booths, "FOOD")
	require.Len(t, food, 2)
	assert.Equal(t, "B-01", food[0].ID)
	assert.Equal(t, "A-02", food[1].ID)

	assert.Len(t, venue.FilterBooths(booths, ""), len(booths))
	assert.Empty(t, venue.FilterBooths(booths, "aerospace"))

	active := venue.ActiveBooths(booths)
	assert.Len(t, active, len(booths)-1)
	for _, b := range active {
		assert.NotEqual(t, "A-02", b.ID)
	}
}

//----------------------------------------------------------------------------//
// Layout
//----------------------------------------------------------------------------//

const sampleLayout = `{
  "width": 6, "height": 4,
  "halls": [{"tag": "H", "yStart": 0, "yEnd": 3, "width": 6, "height": 4}],
  "booths": [
    {"id": "b1", "name": "One", "anchor": {"x": 1, "y": 1}, "size": "2x2", "hall": "H", "active": true, "categories": ["tech"]},
    {"id": "b2", "name": "Two", "anchor": {"x": 4, "y": 0}, "size": "small", "hall": "H", "active": false}
  ],
  "cctvs": [{"id": "cam", "name": "Cam", "position": {"x": 0, "y": 0}, "coverage": [{"x": 0, "y": 0}, {"x": 0, "y": 1}]}]
}`

// TestLoadLayout decodes a JSON layout with explicit footprint sizes.
func TestLoadLayout(t *testing.T) {
	l, err := venue.LoadLayout(strings.NewReader(sampleLayout))
	require.NoError(t, err)

	assert.Equal(t, 6, l.Width)
	require.Len(t, l.Booths, 2)
	assert.Equal(t, venue.Large, l.Booths[0].Size)
	assert.Equal(t, venue.Small, l.Booths[1].Size)
	assert.True(t, l.Booths[0].Active)
	assert.False(t, l.Booths[1].Active)
	require.Len(t, l.CCTVs, 1)
	assert.Len(t, l.CCTVs[0].Coverage, 2)

	b, ok := l.Booth("b2")
	require.True(t, ok)
	assert.Equal(t, "Two", b.Name)
	_, ok = l.Booth("nope")
	assert.False(t, ok)
}

// TestLoadLayout_Errors rejects malformed and structurally invalid layouts.
func TestLoadLayout_Errors(t *testing.T) {
	cases := []struct {
		name string
		json string
		want string
	}{
		{"Syntax", `{"width":`, "decode layout"},
		{"UnknownField", `{"width":1,"height":1,"floors":2}`, "decode layout"},
		{"UnknownFootprint", `{"width":4,"height":4,"booths":[{"id":"x","anchor":{"x":0,"y":0},"size":"3x3"}]}`, "unknown booth footprint"},
		{"ZeroWidth", `{"width":0,"height":4}`, "invalid layout"},
		{"BadHall", `{"width":4,"height":4,"halls":[{"tag":"H","yStart":3,"yEnd":1,"width":4}]}`, "invalid layout"},
		{"DuplicateBooth", `{"width":4,"height":4,"booths":[{"id":"x","anchor":{"x":0,"y":0}},{"id":"x","anchor":{"x":2,"y":2}}]}`, "duplicate booth"},
		{"Overlap", `{"width":4,"height":4,"booths":[{"id":"x","anchor":{"x":0,"y":0},"size":"2x2"},{"id":"y","anchor":{"x":1,"y":1}}]}`, "overlap"},
		{"DuplicateCamera", `{"width":4,"height":4,"cctvs":[{"id":"c"},{"id":"c"}]}`, "duplicate cctv"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := venue.LoadLayout(strings.NewReader(tc.json))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

// TestExhibition checks the built-in venue is itself valid.
func TestExhibition(t *testing.T) {
	l := venue.Exhibition()
	require.NoError(t, l.Validate())
	assert.Equal(t, 12, l.Width)
	assert.Equal(t, 22, l.Height)
	require.Len(t, l.Halls, 3)
	assert.Equal(t, []string{"C", "B", "A"}, []string{l.Halls[0].Tag, l.Halls[1].Tag, l.Halls[2].Tag})

	b, ok := l.Booth("C-01")
	require.True(t, ok)
	assert.Equal(t, venue.Pos(5, 3), b.Anchor)
	assert.Equal(t, venue.Small, b.Size)
}
