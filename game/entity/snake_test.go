package entity

import (
	"testing"

	"roboshep/game/types"

	"github.com/stretchr/testify/assert"
)

func TestSnakeMovePrependsHead(t *testing.T) {
	s := NewSnake([]types.Point{{X: 10, Y: 15}, {X: 10, Y: 16}})
	s.Move(types.Point{X: 10, Y: 14})

	assert.Equal(t, types.Point{X: 10, Y: 14}, s.GetHead())
	assert.Equal(t, 3, s.Len())

	s.RemoveTail()
	assert.Equal(t, []types.Point{{X: 10, Y: 14}, {X: 10, Y: 15}}, s.Body)
}

func TestNewSnakeCopiesBody(t *testing.T) {
	body := []types.Point{{X: 1, Y: 1}, {X: 1, Y: 2}}
	s := NewSnake(body)
	body[0] = types.Point{X: 9, Y: 9}

	assert.Equal(t, types.Point{X: 1, Y: 1}, s.GetHead())
	assert.True(t, s.Occupies(types.Point{X: 1, Y: 2}))
	assert.False(t, s.Occupies(types.Point{X: 9, Y: 9}))
}

func TestRemoveTailOnEmptySnake(t *testing.T) {
	s := NewSnake(nil)
	s.RemoveTail()
	assert.Equal(t, 0, s.Len())
}
