package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/hangman/internal/canvas"
	"github.com/rocketscienceinc/hangman/internal/config"
	"github.com/rocketscienceinc/hangman/internal/hangman"
	"github.com/rocketscienceinc/hangman/internal/lexicon"
	"github.com/rocketscienceinc/hangman/internal/repository"
	"github.com/rocketscienceinc/hangman/internal/repository/storage"
	"github.com/rocketscienceinc/hangman/internal/transport/console"
	"github.com/rocketscienceinc/hangman/internal/transport/tui"
)

const transcriptLines = 200

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	lex, err := LoadLexicon(ctx, logger, conf)
	if err != nil {
		return fmt.Errorf("could not load lexicon: %w", err)
	}

	log.Info("Lexicon loaded", "source", conf.Lexicon.Source, "words", lex.Count())

	display := canvas.New(logger, Geometry(conf.Canvas))

	switch conf.Mode {
	case config.ModeTUI:
		return runTUI(ctx, logger, conf, lex, display)
	default:
		return runConsole(ctx, logger, conf, lex, display, os.Stdin, os.Stdout)
	}
}

// runConsole - a blocked read cannot be interrupted, so the console runs in
// its own goroutine and a signal returns without waiting for it.
func runConsole(ctx context.Context, logger *slog.Logger, conf *config.Config, lex *lexicon.Lexicon, display *canvas.Canvas, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	game := hangman.NewController(logger, lex, display, out, hangman.WithGuessBudget(conf.Game.GuessBudget))

	var opts []console.Option
	if !conf.Console.HideFigure {
		opts = append(opts, console.WithFigure(display))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- console.New(logger, in, out, opts...).Run(ctx, game)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func runTUI(ctx context.Context, logger *slog.Logger, conf *config.Config, lex *lexicon.Lexicon, display *canvas.Canvas) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("could not init screen: %w", err)
	}
	defer screen.Fini()

	transcript := tui.NewTranscript(transcriptLines)
	game := hangman.NewController(logger, lex, display, transcript, hangman.WithGuessBudget(conf.Game.GuessBudget))

	if err = tui.New(logger, screen, display, transcript).Run(ctx, game); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}

	return nil
}

// LoadLexicon - reads the word list from the configured source. A redis
// source with an empty key is seeded from lexicon.path when it is set.
func LoadLexicon(ctx context.Context, logger *slog.Logger, conf *config.Config) (*lexicon.Lexicon, error) {
	if conf.Lexicon.Source != config.SourceRedis {
		return lexicon.LoadFile(conf.Lexicon.Path)
	}

	log := logger.With("component", "app", "method", "LoadLexicon")

	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" {
		return nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	wordRepo := repository.NewWordRepository(redisStorage, conf.Lexicon.RedisKey)

	if err = SeedWords(ctx, logger, wordRepo, conf.Lexicon.Path); err != nil {
		return nil, fmt.Errorf("could not seed words: %w", err)
	}

	return lexicon.Load(ctx, wordRepo)
}

// SeedWords - copies the word file into an empty repository.
func SeedWords(ctx context.Context, logger *slog.Logger, wordRepo repository.WordRepository, path string) error {
	log := logger.With("component", "app", "method", "SeedWords")

	if path == "" {
		return nil
	}

	count, err := wordRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("could not count words: %w", err)
	}

	if count > 0 {
		return nil
	}

	fileLexicon, err := lexicon.LoadFile(path)
	if err != nil {
		return fmt.Errorf("could not read seed file: %w", err)
	}

	if err = wordRepo.Replace(ctx, fileLexicon.Words()); err != nil {
		return fmt.Errorf("could not store words: %w", err)
	}

	log.Info("Words seeded", "path", path, "words", fileLexicon.Count())

	return nil
}

func Geometry(conf config.Canvas) canvas.Geometry {
	return canvas.Geometry{
		Width:             float64(conf.Width),
		Height:            float64(conf.Height),
		BeamOffset:        float64(conf.BeamOffset),
		ScaffoldHeight:    float64(conf.ScaffoldHeight),
		BeamLength:        float64(conf.BeamLength),
		RopeLength:        float64(conf.RopeLength),
		HeadRadius:        float64(conf.HeadRadius),
		BodyLength:        float64(conf.BodyLength),
		ArmOffsetFromHead: float64(conf.ArmOffsetFromHead),
		UpperArmLength:    float64(conf.UpperArmLength),
		LowerArmLength:    float64(conf.LowerArmLength),
		HipWidth:          float64(conf.HipWidth),
		LegLength:         float64(conf.LegLength),
		FootLength:        float64(conf.FootLength),
		CharWidth:         float64(conf.CharWidth),
		FontSize:          float64(conf.FontSize),
	}
}
