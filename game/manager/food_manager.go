package manager

import (
	"github.com/pkg/errors"

	"the-snake/game/entity"
	"the-snake/game/types"
)

// FoodManager keeps the single apple off the snake.
type FoodManager struct {
	grid         types.Grid
	rng          types.Rand
	apple        *entity.Apple
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng types.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		apple:        entity.NewApple(),
		collisionMgr: collisionMgr,
	}
}

// Respawn moves the apple to a random cell the snake does not cover.
func (fm *FoodManager) Respawn(snake *entity.Snake) error {
	isFree := func(p types.Point) bool {
		return fm.collisionMgr.ValidateSpawnPosition(p, snake)
	}
	if err := fm.apple.RandomizePosition(fm.rng, fm.grid, isFree); err != nil {
		return errors.Wrap(err, "respawn apple")
	}
	return nil
}

// CheckEaten reports whether the snake's head has reached the apple.
func (fm *FoodManager) CheckEaten(snake *entity.Snake) bool {
	return fm.collisionMgr.IsFoodCollision(snake.GetHead(), fm.apple)
}

func (fm *FoodManager) GetApple() *entity.Apple {
	return fm.apple
}
