package manager

import (
	"github.com/pkg/errors"

	"snek/game/entity"
	"snek/game/types"
)

// FoodManager owns the single food cell on the board.
type FoodManager struct {
	grid    types.Grid
	rng     types.Rand
	food    types.Point
	hasFood bool
}

func NewFoodManager(grid types.Grid, rng types.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// Food returns the current food cell; ok is false once the board is full.
func (fm *FoodManager) Food() (types.Point, bool) {
	return fm.food, fm.hasFood
}

// Place replaces the food cell with one the snake does not cover.
func (fm *FoodManager) Place(snake *entity.Snake) error {
	cell, err := snake.PickUnoccupiedCell(fm.grid, fm.rng)
	if err != nil {
		fm.hasFood = false
		return errors.Wrapf(err, "placing food for snake of length %d", snake.Len())
	}
	fm.food = cell
	fm.hasFood = true
	return nil
}

// Set forces the food onto a cell. Used to set up scenarios.
func (fm *FoodManager) Set(cell types.Point) {
	fm.food = cell
	fm.hasFood = true
}
