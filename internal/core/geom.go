// Package core provides the small shared types the word-search game is built on.
// It has no Bubble Tea dependency so that game logic stays pure and testable.
package core

import (
	"encoding/json"
	"fmt"
)

// Point is a grid coordinate in row-major order.
type Point struct {
	Row, Col int
}

// Add returns p shifted by n steps of (dRow, dCol).
func (p Point) Add(dRow, dCol, n int) Point {
	return Point{Row: p.Row + dRow*n, Col: p.Col + dCol*n}
}

// In reports whether p lies inside a size×size square.
func (p Point) In(size int) bool {
	return p.Row >= 0 && p.Row < size && p.Col >= 0 && p.Col < size
}

// MarshalJSON encodes the point as [row, col].
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Row, p.Col})
}

// UnmarshalJSON decodes a [row, col] pair.
func (p *Point) UnmarshalJSON(data []byte) error {
	var rc []int
	if err := json.Unmarshal(data, &rc); err != nil {
		return err
	}
	if len(rc) != 2 {
		return fmt.Errorf("core: point needs [row, col], got %d values", len(rc))
	}
	p.Row, p.Col = rc[0], rc[1]
	return nil
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
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

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
