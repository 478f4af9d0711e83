package termui

import (
	termbox "github.com/nsf/termbox-go"

	"the-snake/game/types"
)

var keyDirections = map[termbox.Key]types.Direction{
	termbox.KeyArrowUp:    types.Up,
	termbox.KeyArrowDown:  types.Down,
	termbox.KeyArrowLeft:  types.Left,
	termbox.KeyArrowRight: types.Right,
}

var runeDirections = map[rune]types.Direction{
	'w': types.Up,
	's': types.Down,
	'a': types.Left,
	'd': types.Right,
}

func directionForKey(ev termbox.Event) types.Direction {
	if ev.Type != termbox.EventKey {
		return types.None
	}
	if ev.Ch != 0 {
		return runeDirections[ev.Ch]
	}
	return keyDirections[ev.Key]
}

func isQuit(ev termbox.Event) bool {
	if ev.Type != termbox.EventKey {
		return false
	}
	return ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q'
}

// pollEvents forwards terminal events until termbox.Interrupt is called.
// Events are dropped when the game loop falls behind.
func pollEvents(events chan<- termbox.Event, done chan<- struct{}) {
	defer close(done)
	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventInterrupt {
			return
		}
		select {
		case events <- ev:
		default:
		}
	}
}
