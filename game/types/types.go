package types

import (
	"fmt"
	"time"
)

// Game constants
const (
	GridWidth    = 20                     // 400px canvas / 20px cells
	GridHeight   = 20                     // 400px canvas / 20px cells
	CellSize     = 20                     // Pixels per cell for windowed hosts
	FoodReward   = 10                     // Score added per food eaten
	TickInterval = 120 * time.Millisecond // Reference tick period
)

// Point is a grid cell, 0-indexed from the top-left corner.
type Point struct {
	X, Y int
}

// Add returns the cell offset by delta.
func (p Point) Add(delta Point) Point {
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside [0,Width) x [0,Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Heading is the direction the snake moves in.
type Heading int

const (
	Up Heading = iota
	Down
	Left
	Right
)

// Delta converts a Heading into a unit movement vector. Y grows downwards.
func (h Heading) Delta() Point {
	switch h {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Inverse returns the heading pointing the opposite way.
func (h Heading) Inverse() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return h
	}
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Headings lists every heading in a fixed order.
var Headings = [4]Heading{Up, Down, Left, Right}

// HeadingFromKey maps a key name to a Heading. Arrow keys, WASD and the vi
// keys are recognised; any other key reports false.
func HeadingFromKey(key string) (Heading, bool) {
	switch key {
	case "up", "ArrowUp", "w", "k":
		return Up, true
	case "down", "ArrowDown", "s", "j":
		return Down, true
	case "left", "ArrowLeft", "a", "h":
		return Left, true
	case "right", "ArrowRight", "d", "l":
		return Right, true
	}
	return Up, false
}

// Status is the lifecycle state of a game.
type Status int

const (
	Running Status = iota
	Over
)

func (s Status) String() string {
	if s == Over {
		return "over"
	}
	return "running"
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}
