package ui

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"the-snake/config"
	"the-snake/game"
)

const windowTitle = "Snake"

// Run opens the window and drives g until the window is closed or ctx is done.
// The window renders at config.WindowFPS and limiter decides which frames
// tick, so the tick rate cannot exceed the frame rate.
func Run(ctx context.Context, g *game.Game, limiter *rate.Limiter) error {
	rl.InitWindow(int32(g.Config.ScreenWidth), int32(g.Config.ScreenHeight), windowTitle)
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(config.WindowFPS)

	renderer := NewRenderer(g.Config.CellSize)

	for !QuitRequested() {
		if ctx.Err() != nil {
			break
		}

		for _, d := range PollDirections() {
			g.RequestDirection(d)
		}

		if limiter.Allow() {
			if _, err := g.Step(); err != nil {
				log.WithError(err).WithField("GameID", g.ID).Error("step failed, starting a new run")
				if err := g.Reset(); err != nil {
					return errors.Wrap(err, "reset after failed step")
				}
			}
		}

		renderer.Draw(g)
	}

	log.WithFields(log.Fields{
		"GameID": g.ID,
		"Ticks":  g.Stats.GetTicks(),
		"Best":   g.Stats.GetHighScore(),
	}).Info("window closed")
	return nil
}
