package game

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"the-snake/game/entity"
	"the-snake/game/manager"
	"the-snake/game/types"
)

// StepResult describes what happened during one tick.
type StepResult struct {
	// Head is the cell reached by this tick's move, before any reset.
	Head types.Point
	// Vacated is the tail cell given up by the move, nil while growing.
	Vacated  *types.Point
	Ate      bool
	Collided bool
}

type Game struct {
	ID     string
	Config Config
	Grid   types.Grid
	Snake  *entity.Snake
	Apple  *entity.Apple
	Stats  *manager.StateManager

	rng          types.Rand
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

// NewGame validates cfg and places a fresh snake and apple on the board.
func NewGame(cfg Config, rng types.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid := cfg.Grid()
	collisionMgr := manager.NewCollisionManager(grid)
	foodMgr := manager.NewFoodManager(grid, rng, collisionMgr)

	g := &Game{
		ID:           uuid.New().String(),
		Config:       cfg,
		Grid:         grid,
		Snake:        entity.NewSnake(grid.Center(), rng),
		Apple:        foodMgr.GetApple(),
		Stats:        manager.NewStateManager(),
		rng:          rng,
		collisionMgr: collisionMgr,
		foodMgr:      foodMgr,
	}
	if err := foodMgr.Respawn(g.Snake); err != nil {
		return nil, errors.Wrap(err, "new game")
	}

	log.WithFields(log.Fields{
		"GameID":    g.ID,
		"Width":     grid.Width,
		"Height":    grid.Height,
		"Direction": g.Snake.Direction,
		"Apple":     g.Apple.Position(),
	}).Info("game created")
	return g, nil
}

// RequestDirection buffers a turn for the next tick.
func (g *Game) RequestDirection(d types.Direction) {
	before := g.Snake.Pending
	g.Snake.RequestDirection(d)
	if g.Snake.Pending != before {
		log.WithFields(log.Fields{
			"GameID":    g.ID,
			"Tick":      g.Stats.GetTicks(),
			"Direction": g.Snake.Pending,
		}).Debug("direction requested")
	}
}

// Step advances the game by one tick.
func (g *Game) Step() (StepResult, error) {
	g.Stats.Tick()
	g.Snake.CommitDirection()

	head, vacated := g.Snake.Advance(g.Grid)
	res := StepResult{Head: head, Vacated: vacated}

	if g.foodMgr.CheckEaten(g.Snake) {
		res.Ate = true
		g.Snake.Grow()
		g.Stats.UpdateScore(g.Snake.Length - 1)
		log.WithFields(log.Fields{
			"GameID": g.ID,
			"Tick":   g.Stats.GetTicks(),
			"Head":   head,
			"Length": g.Snake.Length,
		}).Debug("snake ate")
		if err := g.foodMgr.Respawn(g.Snake); err != nil {
			return res, errors.Wrapf(err, "tick %d", g.Stats.GetTicks())
		}
	}

	if g.collisionMgr.IsSelfCollision(g.Snake) {
		res.Collided = true
		log.WithFields(log.Fields{
			"GameID": g.ID,
			"Tick":   g.Stats.GetTicks(),
			"Head":   head,
			"Score":  g.Stats.GetScore(),
		}).Info("snake collided with itself, resetting")
		if err := g.Reset(); err != nil {
			return res, errors.Wrapf(err, "tick %d", g.Stats.GetTicks())
		}
	}
	return res, nil
}

// Reset ends the current run and starts a new one.
func (g *Game) Reset() error {
	g.Stats.EndRun()
	g.Snake.Reset(g.Grid.Center(), g.rng)
	return g.foodMgr.Respawn(g.Snake)
}

// Objects returns everything that has to be drawn, apple last.
func (g *Game) Objects() []entity.GameObject {
	return []entity.GameObject{g.Snake, g.Apple}
}
