package entity

import (
	"github.com/pkg/errors"

	"the-snake/game/types"
)

// ErrBoardFull is returned when no free cell is left for the apple.
var ErrBoardFull = errors.New("entity: no free cell left on the board")

type Apple struct {
	Cell  types.Point
	Color Color
}

func NewApple() *Apple {
	return &Apple{Color: AppleColor}
}

// RandomizePosition samples cells of grid until isFree accepts one.
// isFree must reflect the snake as it is now.
func (a *Apple) RandomizePosition(rng types.Rand, grid types.Grid, isFree func(types.Point) bool) error {
	free := 0
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			if isFree(types.Point{X: x, Y: y}) {
				free++
			}
		}
	}
	if free == 0 {
		return ErrBoardFull
	}

	for {
		cell := types.Point{
			X: rng.Intn(grid.Width),
			Y: rng.Intn(grid.Height),
		}
		if isFree(cell) {
			a.Cell = cell
			return nil
		}
	}
}

func (a *Apple) Position() types.Point {
	return a.Cell
}

func (a *Apple) Draw(c Canvas) {
	c.FillCell(a.Cell, a.Color, BorderColor)
}
