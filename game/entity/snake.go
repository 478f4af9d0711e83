package entity

import (
	"the-snake/game/types"
)

type Snake struct {
	Body      []types.Point // head first
	Length    int
	Direction types.Direction
	Pending   types.Direction
	Color     Color

	vacated *types.Point
}

// NewSnake creates a snake of length one on start heading in a random direction.
func NewSnake(start types.Point, rng types.Rand) *Snake {
	s := &Snake{Color: SnakeColor}
	s.Reset(start, rng)
	return s
}

// Reset puts the snake back into its initial state.
func (s *Snake) Reset(start types.Point, rng types.Rand) {
	s.Body = []types.Point{start}
	s.Length = 1
	s.Direction = types.RandomDirection(rng)
	s.Pending = types.None
	s.vacated = nil
}

// HandleDirectionInput returns the direction to buffer for a request made
// while moving in current. Reversals and empty requests yield None.
func HandleDirectionInput(current, requested types.Direction) types.Direction {
	if requested == types.None || requested == current.Opposite() {
		return types.None
	}
	return requested
}

// RequestDirection buffers d for the next tick. Requests that would reverse
// the snake are dropped.
func (s *Snake) RequestDirection(d types.Direction) {
	if next := HandleDirectionInput(s.Direction, d); next != types.None {
		s.Pending = next
	}
}

// CommitDirection applies the buffered direction, if any.
func (s *Snake) CommitDirection() {
	if s.Pending != types.None {
		s.Direction = s.Pending
		s.Pending = types.None
	}
}

// Advance moves the head one cell on grid. The returned vacated cell is nil
// while the snake is still growing.
func (s *Snake) Advance(grid types.Grid) (types.Point, *types.Point) {
	newHead := grid.Wrap(s.GetHead().Add(s.Direction.Vector()))

	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead

	s.vacated = nil
	if len(s.Body) > s.Length {
		tail := s.Body[len(s.Body)-1]
		s.Body = s.Body[:len(s.Body)-1]
		s.vacated = &tail
	}
	return newHead, s.vacated
}

// Grow raises the target length; the body catches up on the next advance.
func (s *Snake) Grow() {
	s.Length++
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// HitsItself reports whether the head shares a cell with any other segment.
func (s *Snake) HitsItself() bool {
	head := s.GetHead()
	for _, p := range s.Body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Occupied returns the set of cells covered by the body.
func (s *Snake) Occupied() map[types.Point]struct{} {
	cells := make(map[types.Point]struct{}, len(s.Body))
	for _, p := range s.Body {
		cells[p] = struct{}{}
	}
	return cells
}

// Position returns the head cell.
func (s *Snake) Position() types.Point {
	return s.GetHead()
}

// Draw erases the cell vacated by the last advance, then paints every segment.
// The head may have moved into the vacated cell, so the erase comes first.
func (s *Snake) Draw(c Canvas) {
	if s.vacated != nil {
		c.ClearCell(*s.vacated)
	}
	for _, p := range s.Body {
		c.FillCell(p, s.Color, BorderColor)
	}
}
