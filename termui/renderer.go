package termui

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"

	"the-snake/game"
	"the-snake/game/entity"
	"the-snake/game/types"
)

const (
	defaultColor = termbox.ColorDefault
	// each grid cell is two terminal columns wide so cells look square
	cellWidth = 2
	left      = 1
	top       = 2
)

// Renderer draws the board with termbox. It implements entity.Canvas.
type Renderer struct {
	grid types.Grid
}

func NewRenderer(grid types.Grid) *Renderer {
	return &Renderer{grid: grid}
}

// rgbTo256 maps a colour onto the 6x6x6 cube of the 256 colour palette.
// termbox numbers palette entries from 1 in Output256 mode.
func rgbTo256(c entity.Color) termbox.Attribute {
	scale := func(v uint8) int { return (int(v)*5 + 127) / 255 }
	return termbox.Attribute(16+36*scale(c.R)+6*scale(c.G)+scale(c.B)) + 1
}

func (r *Renderer) FillCell(p types.Point, fill, border entity.Color) {
	bg := rgbTo256(fill)
	for i := 0; i < cellWidth; i++ {
		termbox.SetCell(left+p.X*cellWidth+i, top+p.Y, ' ', defaultColor, bg)
	}
}

func (r *Renderer) ClearCell(p types.Point) {
	for i := 0; i < cellWidth; i++ {
		termbox.SetCell(left+p.X*cellWidth+i, top+p.Y, ' ', defaultColor, defaultColor)
	}
}

// Draw redraws the board, the score line and flushes the terminal.
func (r *Renderer) Draw(g *game.Game) error {
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}

	tbprint(left, 0, defaultColor, defaultColor, fmt.Sprintf("Snake - Score %d  Best %d  Resets %d",
		g.Stats.GetScore(), g.Stats.GetHighScore(), g.Stats.GetResets()))
	r.renderBoard()
	for _, obj := range g.Objects() {
		obj.Draw(r)
	}

	return termbox.Flush()
}

func (r *Renderer) renderBoard() {
	width := r.grid.Width * cellWidth
	bottom := top + r.grid.Height
	for i := top; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, defaultColor)
		termbox.SetCell(left+width, i, '│', defaultColor, defaultColor)
	}

	termbox.SetCell(left-1, top-1, '┌', defaultColor, defaultColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, defaultColor)
	termbox.SetCell(left+width, top-1, '┐', defaultColor, defaultColor)
	termbox.SetCell(left+width, bottom, '┘', defaultColor, defaultColor)

	fill(left, top-1, width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, width, 1, termbox.Cell{Ch: '─'})
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
