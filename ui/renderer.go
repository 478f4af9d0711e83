package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"the-snake/game"
	"the-snake/game/entity"
	"the-snake/game/types"
)

const hudFontSize = 16

// Renderer draws the board into the raylib window. It implements entity.Canvas.
type Renderer struct {
	cellSize int32
}

func NewRenderer(cellSize int) *Renderer {
	return &Renderer{cellSize: int32(cellSize)}
}

func toColor(c entity.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

func (r *Renderer) FillCell(p types.Point, fill, border entity.Color) {
	x, y := int32(p.X)*r.cellSize, int32(p.Y)*r.cellSize
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, toColor(fill))
	rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, toColor(border))
}

func (r *Renderer) ClearCell(p types.Point) {
	rl.DrawRectangle(
		int32(p.X)*r.cellSize,
		int32(p.Y)*r.cellSize,
		r.cellSize, r.cellSize, toColor(entity.BackgroundColor))
}

// Draw redraws the whole board and the score line.
func (r *Renderer) Draw(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(entity.BackgroundColor))

	for _, obj := range g.Objects() {
		obj.Draw(r)
	}

	label := fmt.Sprintf("Score: %d  Best: %d  Resets: %d",
		g.Stats.GetScore(), g.Stats.GetHighScore(), g.Stats.GetResets())
	rl.DrawText(label, 5, 5, hudFontSize, rl.White)

	rl.EndDrawing()
}
