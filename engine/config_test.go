package engine_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t14raptor/fastscript/engine"
)

func TestParseConfig(t *testing.T) {
	cfg, err := engine.ParseConfig([]byte(`
max_steps: 5000
max_call_depth: 64
fold_constants: true
log_level: debug
globals:
  env: prod
  retries: 3
`))
	require.NoError(t, err)
	assert.Equal(t, engine.Config{
		MaxSteps:      5000,
		MaxCallDepth:  64,
		FoldConstants: true,
		LogLevel:      "debug",
		Globals:       map[string]any{"env": "prod", "retries": 3},
	}, cfg)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := engine.ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultConfig(), cfg)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestParseConfigErrors(t *testing.T) {
	for _, data := range []string{
		"max_step: 1",
		"max_steps: -1",
		"max_call_depth: -2",
		"log_level: loud",
		"max_steps: [1]",
	} {
		_, err := engine.ParseConfig([]byte(data))
		assert.Error(t, err, data)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fastscript.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_steps: 10\n"), 0o644))

	cfg, err := engine.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(10), cfg.MaxSteps)
	assert.Equal(t, "warn", cfg.LogLevel)

	_, err = engine.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
