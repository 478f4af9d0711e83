package termui

import (
	"context"

	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"the-snake/game"
	"the-snake/game/types"
)

// Run plays g in the terminal until the player quits or ctx is done.
func Run(ctx context.Context, g *game.Game, limiter *rate.Limiter) error {
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer termbox.Close()
	termbox.SetOutputMode(termbox.Output256)

	events := make(chan termbox.Event, 16)
	done := make(chan struct{})
	go pollEvents(events, done)
	defer func() {
		termbox.Interrupt()
		<-done
	}()

	renderer := NewRenderer(g.Grid)
	for {
		if err := limiter.Wait(ctx); err != nil {
			log.WithField("GameID", g.ID).Info("terminal session stopped")
			return nil
		}

		quit, err := handleEvents(g, events)
		if err != nil {
			return err
		}
		if quit {
			log.WithFields(log.Fields{
				"GameID": g.ID,
				"Ticks":  g.Stats.GetTicks(),
				"Best":   g.Stats.GetHighScore(),
			}).Info("player quit")
			return nil
		}

		if _, err := g.Step(); err != nil {
			log.WithError(err).WithField("GameID", g.ID).Error("step failed, starting a new run")
			if err := g.Reset(); err != nil {
				return errors.Wrap(err, "reset after failed step")
			}
		}

		if err := renderer.Draw(g); err != nil {
			return errors.Wrap(err, "draw terminal")
		}
	}
}

// handleEvents applies every queued event without blocking.
func handleEvents(g *game.Game, events <-chan termbox.Event) (bool, error) {
	for {
		select {
		case ev := <-events:
			if ev.Type == termbox.EventError {
				return false, errors.Wrap(ev.Err, "terminal input")
			}
			if isQuit(ev) {
				return true, nil
			}
			if d := directionForKey(ev); d != types.None {
				g.RequestDirection(d)
			}
		default:
			return false, nil
		}
	}
}
