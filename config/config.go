package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"the-snake/game"
)

// WindowFPS is the frame rate of the window frontend.
const WindowFPS = 60

// Config holds everything needed to start a session. Values come from the
// defaults, then the environment, then an optional YAML file.
type Config struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	CellSize     int    `yaml:"cell_size"`
	TickRate     int    `yaml:"tick_rate"`
	Seed         uint64 `yaml:"seed"`
}

// Default returns the classic 640x480 board with 20 pixel cells at 10 ticks
// per second, overridden by SNAKE_* environment variables.
func Default() Config {
	return Config{
		ScreenWidth:  getEnvInt("SNAKE_SCREEN_WIDTH", 640),
		ScreenHeight: getEnvInt("SNAKE_SCREEN_HEIGHT", 480),
		CellSize:     getEnvInt("SNAKE_CELL_SIZE", 20),
		TickRate:     getEnvInt("SNAKE_TICK_RATE", 10),
		Seed:         getEnvUint64("SNAKE_SEED", 0),
	}
}

// Load reads path on top of Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Validate checks the board and the tick rate.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return errors.Wrapf(game.ErrInvalidConfig, "tick rate %d must be positive", c.TickRate)
	}
	return c.GameConfig().Validate()
}

// GameConfig returns the board part of the configuration.
func (c Config) GameConfig() game.Config {
	return game.Config{
		ScreenWidth:  c.ScreenWidth,
		ScreenHeight: c.ScreenHeight,
		CellSize:     c.CellSize,
	}
}

// ValidateWindow checks c for the window frontend, which steps at most once
// per rendered frame.
func (c Config) ValidateWindow() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.TickRate > WindowFPS {
		return errors.Wrapf(game.ErrInvalidConfig, "tick rate %d exceeds the window frame rate %d", c.TickRate, WindowFPS)
	}
	return nil
}

// Limiter paces the simulation at TickRate ticks per second.
func (c Config) Limiter() *rate.Limiter {
	return rate.NewLimiter(rate.Limit(c.TickRate), 1)
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvUint64(varName string, defaults uint64) uint64 {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	uintVal, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return defaults
	}
	return uintVal
}
