package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Defaults fill missing fields", func(t *testing.T) {
		// Given: a config file with only the mode set
		path := writeConfig(t, "mode: tui\n")

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: everything else has its default
		assert.Equal(t, ModeTUI, conf.Mode)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 8, conf.Game.GuessBudget)
		assert.Equal(t, SourceFile, conf.Lexicon.Source)
		assert.Equal(t, "HangmanLexicon.txt", conf.Lexicon.Path)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.False(t, conf.Console.HideFigure)
		assert.Equal(t, 400, conf.Canvas.Width)
		assert.Equal(t, 360, conf.Canvas.ScaffoldHeight)
		assert.Equal(t, 28, conf.Canvas.FootLength)
	})

	t.Run("File values override defaults", func(t *testing.T) {
		// Given: a config file for a redis lexicon
		path := writeConfig(t, "lexicon:\n  source: redis\n  redis-key: words\nredis:\n  host: cache\n  port: \"6380\"\ngame:\n  guess-budget: 6\n")

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: the file values are used
		assert.Equal(t, SourceRedis, conf.Lexicon.Source)
		assert.Equal(t, "words", conf.Lexicon.RedisKey)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 6, conf.Game.GuessBudget)
	})

	t.Run("Invalid mode panics", func(t *testing.T) {
		// Given: a config file with an unknown mode
		path := writeConfig(t, "mode: gui\n")

		// Then: loading panics
		assert.Panics(t, func() { MustLoad(path) })
	})

	t.Run("Missing file panics", func(t *testing.T) {
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.yml")) })
	})
}

func TestLoadEnv(t *testing.T) {
	// Given: environment overrides
	t.Setenv("HANGMAN_MODE", "tui")
	t.Setenv("HANGMAN_GUESS_BUDGET", "5")

	// When: the config is read from the environment
	conf, err := LoadEnv()

	// Then: the overrides are applied
	require.NoError(t, err)
	assert.Equal(t, ModeTUI, conf.Mode)
	assert.Equal(t, 5, conf.Game.GuessBudget)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Mode:    ModeConsole,
			Game:    Game{GuessBudget: 8},
			Lexicon: Lexicon{Source: SourceFile},
			Canvas:  Canvas{Width: 400, Height: 560},
		}
	}

	t.Run("Valid config", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("Unknown source", func(t *testing.T) {
		conf := valid()
		conf.Lexicon.Source = "http"

		require.ErrorIs(t, conf.Validate(), ErrUnknownSource)
	})

	t.Run("Zero budget", func(t *testing.T) {
		conf := valid()
		conf.Game.GuessBudget = 0

		require.ErrorIs(t, conf.Validate(), ErrInvalidBudget)
	})

	t.Run("Empty canvas", func(t *testing.T) {
		conf := valid()
		conf.Canvas.Width = 0

		require.ErrorIs(t, conf.Validate(), ErrInvalidCanvas)
	})
}
