package venue

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is an integer (X, Y) grid coordinate. It is a comparable value type
// and may be used directly as a map key.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from q to p.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
// Complexity: O(1).
func (p Position) Manhattan(q Position) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Adjacent reports whether p and q differ by exactly one unit on exactly one axis.
func (p Position) Adjacent(q Position) bool {
	return p.Manhattan(q) == 1
}

// String formats the position as "x,y".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Orthogonal holds the four unit steps N, E, S, W in that order.
// Grid traversal everywhere in this module is 4-connected.
var Orthogonal = [4]Position{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ParsePosition parses "x,y" (spaces allowed around either number).
func ParsePosition(s string) (Position, error) {
	var p Position
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return p, fmt.Errorf("venue: parse position %q: want \"x,y\"", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return p, fmt.Errorf("venue: parse position %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return p, fmt.Errorf("venue: parse position %q: %w", s, err)
	}
	return Position{X: x, Y: y}, nil
}
