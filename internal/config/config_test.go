package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yml file", func(t *testing.T) {
		// Given: a config file with every key set
		path := writeConfig(t, `
log-level: debug
first-turn: ai
parallel-search: true
cli:
  prompt: "> "
  history-file: /tmp/tictactoe.history
`)

		// When: loading it
		conf, err := Load(path)

		// Then: every value is read
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, FirstTurnAI, conf.FirstTurn)
		assert.True(t, conf.ParallelSearch)
		assert.Equal(t, "> ", conf.CLI.Prompt)
		assert.Equal(t, "/tmp/tictactoe.history", conf.CLI.HistoryFile)

		side, err := conf.FirstSide()
		require.NoError(t, err)
		assert.Equal(t, entity.SideAI, side)
	})

	t.Run("Applies defaults when the file does not exist", func(t *testing.T) {
		// When: loading a missing file
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the defaults are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, FirstTurnPlayer, conf.FirstTurn)
		assert.False(t, conf.ParallelSearch)
		assert.Equal(t, "row col> ", conf.CLI.Prompt)
	})

	t.Run("Environment overrides the defaults", func(t *testing.T) {
		t.Setenv("FIRST_TURN", "ai")
		t.Setenv("LOG_LEVEL", "debug")

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, FirstTurnAI, conf.FirstTurn)
		assert.Equal(t, "debug", conf.LogLevel)
	})

	t.Run("Rejects an unknown first turn", func(t *testing.T) {
		path := writeConfig(t, "first-turn: nobody\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownFirstTurn)
	})

	t.Run("MustLoad panics on a malformed file", func(t *testing.T) {
		path := writeConfig(t, "log-level: [unterminated\n")

		assert.Panics(t, func() { MustLoad(path) })
	})
}
