package venue

// HallConfig describes one exhibition hall as a rectangle spanning rows
// [YStart, YEnd] and Width columns centered horizontally in the grid.
//
// Height is carried for display purposes and is expected to equal
// YEnd-YStart+1; walkability only consults YStart, YEnd and Width.
type HallConfig struct {
	Tag    string `json:"tag"`
	YStart int    `json:"yStart"`
	YEnd   int    `json:"yEnd"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// XStart returns the first column of the hall inside a grid of gridWidth columns.
// When Width exceeds gridWidth the hall starts at a negative column and is
// clipped by the grid bounds.
func (h HallConfig) XStart(gridWidth int) int {
	return (gridWidth - h.Width) / 2
}

// Contains reports whether p lies inside the hall rectangle for a grid of
// gridWidth columns.
// Complexity: O(1).
func (h HallConfig) Contains(p Position, gridWidth int) bool {
	if p.Y < h.YStart || p.Y > h.YEnd {
		return false
	}
	x0 := h.XStart(gridWidth)
	return p.X >= x0 && p.X < x0+h.Width
}
