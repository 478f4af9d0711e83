package config

import (
	"github.com/spf13/pflag"
)

// Flags are the command line settings shared by every frontend.
type Flags struct {
	File     string
	Speed    int
	Width    int
	Height   int
	Cell     int
	Seed     uint64
	LogLevel string
	LogFile  string
}

// Register adds the flags to fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.File, "config", "", "YAML config file")
	fs.IntVar(&f.Speed, "speed", 10, "ticks per second (at most 60 in the window)")
	fs.IntVar(&f.Width, "width", 640, "screen width in pixels")
	fs.IntVar(&f.Height, "height", 480, "screen height in pixels")
	fs.IntVar(&f.Cell, "cell", 20, "cell size in pixels")
	fs.Uint64Var(&f.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.StringVar(&f.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "write logs to this file instead of stderr")
}

// Resolve loads the config file and environment, then applies the flags the
// user set explicitly on fs.
func (f *Flags) Resolve(fs *pflag.FlagSet) (Config, error) {
	cfg, err := Load(f.File)
	if err != nil {
		return cfg, err
	}
	if fs.Changed("speed") {
		cfg.TickRate = f.Speed
	}
	if fs.Changed("width") {
		cfg.ScreenWidth = f.Width
	}
	if fs.Changed("height") {
		cfg.ScreenHeight = f.Height
	}
	if fs.Changed("cell") {
		cfg.CellSize = f.Cell
	}
	if fs.Changed("seed") {
		cfg.Seed = f.Seed
	}
	return cfg, cfg.Validate()
}
