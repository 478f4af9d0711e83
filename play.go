package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"the-snake/config"
	"the-snake/game"
	"the-snake/termui"
	"the-snake/ui"
)

type frontend int

const (
	frontendWindow frontend = iota
	frontendTerminal
)

func play(c *cobra.Command, fe frontend) error {
	c.SilenceUsage = true

	// log lines would scribble over the terminal board
	closeLog, err := config.SetupLogging(flags.LogLevel, flags.LogFile, fe == frontendTerminal)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := flags.Resolve(c.Flags())
	if err != nil {
		return err
	}

	if fe == frontendWindow {
		if err := cfg.ValidateWindow(); err != nil {
			return err
		}
	}

	g, err := game.NewGame(cfg.GameConfig(), game.NewRand(cfg.Seed))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"GameID":   g.ID,
		"TickRate": cfg.TickRate,
		"Seed":     cfg.Seed,
	}).Info("starting")

	if fe == frontendTerminal {
		return termui.Run(ctx, g, cfg.Limiter())
	}
	return ui.Run(ctx, g, cfg.Limiter())
}
