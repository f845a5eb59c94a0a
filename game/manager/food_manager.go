package manager

import (
	"roboshep/game/entity"
	"roboshep/game/types"
)

// Rand is the random source used for food placement.
type Rand interface {
	Intn(n int) int
}

// attemptsPerCell bounds rejection sampling before falling back to a scan.
const attemptsPerCell = 4

type FoodManager struct {
	grid         types.Grid
	rng          Rand
	collisionMgr *CollisionManager
	maxAttempts  int
}

func NewFoodManager(grid types.Grid, rng Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		maxAttempts:  grid.Cells() * attemptsPerCell,
	}
}

// GenerateFood picks a uniformly random cell not covered by snake. It
// reports false when the snake fills the whole grid.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	for i := 0; i < fm.maxAttempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}

	free := fm.freeCells(snake)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

// freeCells lists unoccupied cells in row-major order.
func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	occupied := make(map[types.Point]struct{}, snake.Len())
	for _, part := range snake.Body {
		occupied[part] = struct{}{}
	}
	free := make([]types.Point, 0, fm.grid.Cells()-len(occupied))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
