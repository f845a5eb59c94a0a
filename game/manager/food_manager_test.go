package manager

import (
	"testing"

	"roboshep/game/entity"
	"roboshep/game/types"

	"github.com/stretchr/testify/assert"
)

type fixedRand int

func (r fixedRand) Intn(n int) int {
	return int(r) % n
}

func TestCollisionManager(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 5, Height: 5})
	snake := entity.NewSnake([]types.Point{{X: 2, Y: 2}, {X: 2, Y: 3}})

	tests := []struct {
		name string
		pos  types.Point
		want types.CollisionType
	}{
		{"free", types.Point{X: 1, Y: 1}, types.NoCollision},
		{"left wall", types.Point{X: -1, Y: 2}, types.WallCollision},
		{"right wall", types.Point{X: 5, Y: 2}, types.WallCollision},
		{"top wall", types.Point{X: 2, Y: -1}, types.WallCollision},
		{"bottom wall", types.Point{X: 2, Y: 5}, types.WallCollision},
		{"head", types.Point{X: 2, Y: 2}, types.SelfCollision},
		{"tail", types.Point{X: 2, Y: 3}, types.SelfCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cm.CheckCollision(tt.pos, snake))
		})
	}
}

func TestGenerateFoodAvoidsSnake(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, fixedRand(0), cm)

	snake := entity.NewSnake([]types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}})
	food, ok := fm.GenerateFood(snake)
	assert.True(t, ok)
	assert.Equal(t, types.Point{X: 0, Y: 1}, food)
}

func TestGenerateFoodFullGrid(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 1}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, fixedRand(1), cm)

	_, ok := fm.GenerateFood(entity.NewSnake([]types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}))
	assert.False(t, ok)
}
