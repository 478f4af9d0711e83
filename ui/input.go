package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"the-snake/game/types"
)

var keyBindings = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyW, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyS, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyA, types.Left},
	{rl.KeyRight, types.Right},
	{rl.KeyD, types.Right},
}

// PollDirections returns the direction keys pressed since the last frame, in
// binding order.
func PollDirections() []types.Direction {
	var dirs []types.Direction
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			dirs = append(dirs, b.dir)
		}
	}
	return dirs
}

// QuitRequested reports whether the window was closed or Q was pressed.
// Escape closes the window through raylib's exit key.
func QuitRequested() bool {
	return rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyQ)
}
