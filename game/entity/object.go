package entity

import "the-snake/game/types"

type Color struct {
	R, G, B uint8
}

// Board colours.
var (
	BackgroundColor = Color{R: 0, G: 0, B: 0}
	BorderColor     = Color{R: 93, G: 216, B: 228}
	AppleColor      = Color{R: 255, G: 0, B: 0}
	SnakeColor      = Color{R: 0, G: 255, B: 0}
)

// Canvas is the drawing surface a frontend hands to game objects.
type Canvas interface {
	// FillCell paints a cell with fill and a one pixel border.
	FillCell(p types.Point, fill, border Color)
	// ClearCell paints a cell with the board background.
	ClearCell(p types.Point)
}

// GameObject is anything that occupies a cell and can draw itself.
type GameObject interface {
	Position() types.Point
	Draw(c Canvas)
}
