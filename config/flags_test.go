package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"the-snake/game"
)

func parseFlags(t *testing.T, args ...string) (*Flags, *pflag.FlagSet) {
	f := &Flags{}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Register(fs)
	require.NoError(t, fs.Parse(args))
	return f, fs
}

func TestResolveDefaults(t *testing.T) {
	f, fs := parseFlags(t)
	cfg, err := f.Resolve(fs)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "info", f.LogLevel)
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_rate: 5\ncell_size: 40\n"), 0644))

	f, fs := parseFlags(t, "--config", path, "--speed", "12", "--seed", "3")
	cfg, err := f.Resolve(fs)
	require.NoError(t, err)
	require.Equal(t, 12, cfg.TickRate)
	require.Equal(t, 40, cfg.CellSize)
	require.Equal(t, uint64(3), cfg.Seed)
}

func TestResolveInvalid(t *testing.T) {
	f, fs := parseFlags(t, "--cell", "30")
	_, err := f.Resolve(fs)
	require.Equal(t, game.ErrInvalidConfig, errors.Cause(err))
}

func TestSetupLogging(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetLevel(log.InfoLevel)

	closeLog, err := SetupLogging("debug", "", true)
	require.NoError(t, err)
	closeLog()
	require.Equal(t, log.DebugLevel, log.GetLevel())
	require.Equal(t, io.Discard, log.StandardLogger().Out)

	path := filepath.Join(t.TempDir(), "snake.log")
	closeLog, err = SetupLogging("info", path, false)
	require.NoError(t, err)
	log.Info("hello")
	closeLog()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "hello")

	_, err = SetupLogging("loud", "", false)
	require.Error(t, err)
}
