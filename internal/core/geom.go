// Package core provides fundamental types and utilities for the boom simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"fmt"
	"math"
)

// Vector is a 2D point or offset in maze units, stored as (row, col).
// Row grows downward, Col grows to the right.
type Vector struct {
	Row, Col float64
}

// V is shorthand for Vector{Row: row, Col: col}.
func V(row, col float64) Vector {
	return Vector{Row: row, Col: col}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.Row + o.Row, v.Col + o.Col}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.Row - o.Row, v.Col - o.Col}
}

// Scale multiplies both components by k.
func (v Vector) Scale(k float64) Vector {
	return Vector{v.Row * k, v.Col * k}
}

// Mul multiplies componentwise.
func (v Vector) Mul(o Vector) Vector {
	return Vector{v.Row * o.Row, v.Col * o.Col}
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.Row*o.Row + v.Col*o.Col
}

// Len returns the euclidean length.
func (v Vector) Len() float64 {
	return math.Hypot(v.Row, v.Col)
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vector) Normalize() Vector {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// IntPart floors both components.
func (v Vector) IntPart() Vector {
	return Vector{math.Floor(v.Row), math.Floor(v.Col)}
}

// FracPart returns v - IntPart(v), always in [0, 1).
func (v Vector) FracPart() Vector {
	return v.Sub(v.IntPart())
}

// Ceil rounds both components up.
func (v Vector) Ceil() Vector {
	return Vector{math.Ceil(v.Row), math.Ceil(v.Col)}
}

// IsInt reports whether both components are whole numbers.
func (v Vector) IsInt() bool {
	return v.FracPart() == Vector{}
}

// Tile returns the integer cell (row, col) containing v.
func (v Vector) Tile() (int, int) {
	p := v.IntPart()
	return int(p.Row), int(p.Col)
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.Row, v.Col)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Pos  Vector
	Size Vector
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(pos, size Vector) Rect {
	return Rect{Pos: pos, Size: size}
}

// Bottom returns the row just past the rectangle.
func (r Rect) Bottom() float64 {
	return r.Pos.Row + r.Size.Row
}

// Right returns the column just past the rectangle.
func (r Rect) Right() float64 {
	return r.Pos.Col + r.Size.Col
}

// Intersects reports strict overlap: rectangles that only share an edge or
// a corner do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Pos.Col >= o.Right() || o.Pos.Col >= r.Right() {
		return false
	}
	if r.Pos.Row >= o.Bottom() || o.Pos.Row >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether o lies entirely inside r. Edges are inclusive.
func (r Rect) Contains(o Rect) bool {
	return r.Pos.Row <= o.Pos.Row && r.Pos.Col <= o.Pos.Col &&
		o.Bottom() <= r.Bottom() && o.Right() <= r.Right()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vector {
	return r.Pos.Add(r.Size.Scale(0.5))
}

// Direction is one of the four grid directions, or NoDirection.
type Direction int

const (
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the four moves in the order enemies consider them.
var Directions = []Direction{Down, Up, Left, Right}

var directionVectors = map[Direction]Vector{
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

// Vector returns the unit step for d. NoDirection maps to the zero vector.
func (d Direction) Vector() Vector {
	return directionVectors[d]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return NoDirection
}

// Vertical reports whether d moves along rows.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
