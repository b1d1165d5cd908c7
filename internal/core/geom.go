// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Point) Add(d Dir) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y)
}

// Dir is a unit step on the grid, or the zero vector for "not moving".
type Dir struct {
	X, Y int
}

// Cardinal directions. The order of Cardinals is the tie-break order used by
// grid chasers: up, down, left, right.
var (
	DirNone  = Dir{}
	DirUp    = Dir{X: 0, Y: -1}
	DirDown  = Dir{X: 0, Y: 1}
	DirLeft  = Dir{X: -1, Y: 0}
	DirRight = Dir{X: 1, Y: 0}

	Cardinals = [4]Dir{DirUp, DirDown, DirLeft, DirRight}
)

// Reverse returns the opposite direction.
func (d Dir) Reverse() Dir {
	return Dir{X: -d.X, Y: -d.Y}
}

// IsZero reports whether d is the zero vector.
func (d Dir) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

// String returns a human-readable name for the direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirNone:
		return "none"
	default:
		return "unknown"
	}
}

// TileGrid is a rectangular grid of cells that may block movement.
type TileGrid interface {
	Cols() int
	Rows() int
	// Blocked reports whether the in-bounds cell (x, y) is a wall.
	Blocked(x, y int) bool
}

// CanEnter reports whether a mover may step onto (x, y).
// Columns outside [0, cols) are always open: that is the horizontal tunnel,
// and callers wrap the position afterwards. Rows outside [0, rows) never are.
func CanEnter(g TileGrid, x, y int) bool {
	if x < 0 || x >= g.Cols() {
		return true
	}
	if y < 0 || y >= g.Rows() {
		return false
	}
	return !g.Blocked(x, y)
}

// WrapX folds a column that left the grid through the tunnel back inside it.
func WrapX(x, cols int) int {
	if x < 0 {
		return cols - 1
	}
	if x >= cols {
		return 0
	}
	return x
}

// Rect is an integer cell rectangle for boxes and panels.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// RectF is a float rectangle for games with sub-cell kinematics.
type RectF struct {
	X, Y float64
	W, H float64
}

// Intersects reports whether the two rectangles overlap.
// Overlap holds iff all four half-plane separations fail at once.
func (r RectF) Intersects(o RectF) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Circle is a disc used for round bodies (balls, rocks).
type Circle struct {
	X, Y   float64
	Radius float64
}

// Overlaps reports whether the centre distance is less than the sum of radii.
func (c Circle) Overlaps(o Circle) bool {
	return Distance(c.X, c.Y, o.X, o.Y) < c.Radius+o.Radius
}

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
