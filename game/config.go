package game

import (
	"github.com/pkg/errors"

	"the-snake/game/types"
)

// ErrInvalidConfig is the cause of every configuration rejected by Validate.
var ErrInvalidConfig = errors.New("game: invalid configuration")

// Config describes the board in screen pixels.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	CellSize     int
}

// Validate rejects boards the wrap-around arithmetic cannot handle.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "screen %dx%d must be positive", c.ScreenWidth, c.ScreenHeight)
	}
	if c.CellSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "cell size %d must be positive", c.CellSize)
	}
	if c.ScreenWidth%c.CellSize != 0 || c.ScreenHeight%c.CellSize != 0 {
		return errors.Wrapf(ErrInvalidConfig, "cell size %d does not divide screen %dx%d",
			c.CellSize, c.ScreenWidth, c.ScreenHeight)
	}
	if c.Grid().Cells() < 2 {
		return errors.Wrapf(ErrInvalidConfig, "grid %dx%d has no room for an apple",
			c.Grid().Width, c.Grid().Height)
	}
	return nil
}

// Grid returns the board dimensions in cells.
func (c Config) Grid() types.Grid {
	return types.Grid{
		Width:  c.ScreenWidth / c.CellSize,
		Height: c.ScreenHeight / c.CellSize,
	}
}
