package manager

import (
	"the-snake/game/entity"
	"the-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsFoodCollision checks if a position collides with the apple
func (cm *CollisionManager) IsFoodCollision(pos types.Point, apple *entity.Apple) bool {
	return pos == apple.Position()
}

// IsSelfCollision checks whether the snake's head overlaps the rest of its body.
// The board wraps, so there is no wall collision.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	return snake.HitsItself()
}

// ValidateSpawnPosition checks if a position is free for the apple
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	for _, bodyPart := range snake.Body {
		if pos == bodyPart {
			return false
		}
	}
	return true
}
