package entity

import (
	"roboshep/game/types"
)

// Snake is an ordered body, head first. The body never holds the same cell
// twice: a move into an occupied cell ends the game instead.
type Snake struct {
	Body []types.Point
}

func NewSnake(body []types.Point) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{Body: b}
}

// Move prepends newHead to the body.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any body segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body.
func (s *Snake) Cells() []types.Point {
	out := make([]types.Point, len(s.Body))
	copy(out, s.Body)
	return out
}
