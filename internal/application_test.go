package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/canvas"
	"github.com/rocketscienceinc/hangman/internal/config"
	"github.com/rocketscienceinc/hangman/internal/repository"
	"github.com/rocketscienceinc/hangman/testing/suite"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeWords(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadLexicon_File(t *testing.T) {
	t.Run("Loads the configured file", func(t *testing.T) {
		// Given: a config pointing at a word file
		conf := &config.Config{Lexicon: config.Lexicon{Source: config.SourceFile, Path: writeWords(t, "BUOY\nZIRCON\n")}}

		// When: the lexicon is loaded
		lex, err := LoadLexicon(context.Background(), discardLogger(), conf)

		// Then: both words are available
		require.NoError(t, err)
		assert.Equal(t, 2, lex.Count())
	})

	t.Run("Missing file is fatal", func(t *testing.T) {
		// Given: a config pointing at a missing file
		conf := &config.Config{Lexicon: config.Lexicon{Source: config.SourceFile, Path: filepath.Join(t.TempDir(), "none.txt")}}

		// When: the lexicon is loaded
		_, err := LoadLexicon(context.Background(), discardLogger(), conf)

		// Then: ErrLexiconUnreadable is returned
		require.ErrorIs(t, err, apperror.ErrLexiconUnreadable)
	})
}

func TestSeedWords(t *testing.T) {
	t.Run("Seeds an empty repository", func(t *testing.T) {
		ctx, st := suite.New(t)

		wordRepo := repository.NewWordRepository(st.Storage, "hangman:words")

		// Given: a word file
		path := writeWords(t, "FUZZY\nHUBBUB\n")

		// When: the repository is seeded
		err := SeedWords(ctx, st.Logger, wordRepo, path)

		// Then: the file words are stored
		require.NoError(t, err)
		words, err := wordRepo.Words(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"FUZZY", "HUBBUB"}, words)
	})

	t.Run("Keeps existing words", func(t *testing.T) {
		ctx, st := suite.New(t)

		wordRepo := repository.NewWordRepository(st.Storage, "hangman:words")

		// Given: a repository that already has words
		require.NoError(t, wordRepo.Replace(ctx, []string{"KEYHOLE"}))

		// When: seeding from another file
		err := SeedWords(ctx, st.Logger, wordRepo, writeWords(t, "FUZZY\n"))

		// Then: the stored words are unchanged
		require.NoError(t, err)
		words, err := wordRepo.Words(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"KEYHOLE"}, words)
	})
}

func TestRunConsole(t *testing.T) {
	// Given: a console session that wins a one-word game and declines a replay
	conf := &config.Config{Game: config.Game{GuessBudget: 8}}
	lexConf := &config.Config{Lexicon: config.Lexicon{Source: config.SourceFile, Path: writeWords(t, "ab\n")}}
	lex, err := LoadLexicon(context.Background(), discardLogger(), lexConf)
	require.NoError(t, err)

	display := canvas.New(discardLogger(), canvas.DefaultGeometry())
	out := &bytes.Buffer{}

	// When: the console runs
	err = runConsole(context.Background(), discardLogger(), conf, lex, display, strings.NewReader("a\nb\nn\n"), out)

	// Then: the round is won and the session ends
	require.NoError(t, err)
	assert.Contains(t, out.String(), "The word now looks like this: AB\n")
	assert.Contains(t, out.String(), "AWESOME! YOU WON!!\n")
	assert.True(t, strings.HasSuffix(out.String(), "Ok, goodbye.\n"))
}

func TestGeometry(t *testing.T) {
	// Given: the default canvas config values
	conf := config.Canvas{
		Width: 400, Height: 560, BeamOffset: 20, ScaffoldHeight: 360, BeamLength: 144,
		RopeLength: 18, HeadRadius: 36, BodyLength: 144, ArmOffsetFromHead: 28,
		UpperArmLength: 72, LowerArmLength: 44, HipWidth: 36, LegLength: 108,
		FootLength: 28, CharWidth: 11, FontSize: 20,
	}

	// When: they are converted
	geometry := Geometry(conf)

	// Then: they match the canvas defaults
	assert.Equal(t, canvas.DefaultGeometry(), geometry)
}
