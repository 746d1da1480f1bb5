package manager

import (
	"snek/game/entity"
	"snek/game/types"
)

type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// CheckSelfCollision scans every segment except the head for the head's cell.
// It returns the colliding cell and true on a hit.
func (cm *CollisionManager) CheckSelfCollision(snake *entity.Snake) (types.Point, bool) {
	head := snake.Head()
	for i := 1; i < snake.Len(); i++ {
		if seg := snake.At(i); seg == head {
			return seg, true
		}
	}
	return types.Point{}, false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *FoodManager) bool {
	cell, ok := food.Food()
	return ok && pos == cell
}
