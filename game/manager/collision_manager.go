package manager

import (
	"roboshep/game/entity"
	"roboshep/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision reports what a head moving onto pos would hit. Every body
// cell counts, the tail included, since the tail only moves after the check.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if snake != nil && snake.Occupies(pos) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// ValidateSpawnPosition checks if a position is valid for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	return cm.CheckCollision(pos, snake) == types.NoCollision
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
