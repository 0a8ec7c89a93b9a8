package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/hangman/internal/canvas"
	"github.com/rocketscienceinc/hangman/internal/render"
)

const (
	figureCols = 40
	figureRows = 24
)

type controller interface {
	Start() error
	Submit(input string) error
	Prompt() string
	Done() bool
	Quit()
}

// Console - line based front end. It blocks on every prompt.
type Console struct {
	logger *slog.Logger
	in     *bufio.Reader
	out    io.Writer

	canvas       *canvas.Canvas
	lastRevision int
}

type Option func(*Console)

// WithFigure - prints the gallows after every change to the drawing.
func WithFigure(c *canvas.Canvas) Option {
	return func(console *Console) {
		console.canvas = c
	}
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, opts ...Option) *Console {
	console := &Console{
		logger:       logger.With("component", "console"),
		in:           bufio.NewReader(in),
		out:          out,
		lastRevision: -1,
	}

	for _, opt := range opts {
		opt(console)
	}

	return console
}

// Run - plays until the player declines another round, the input ends or
// ctx is cancelled.
func (that *Console) Run(ctx context.Context, game controller) error {
	log := that.logger.With("method", "Run")

	if err := game.Start(); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	for !game.Done() {
		that.printFigure()

		if err := ctx.Err(); err != nil {
			log.Info("context canceled, stopping console", "error", err)
			game.Quit()
			return nil
		}

		if _, err := io.WriteString(that.out, game.Prompt()); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		// lines of any length are read whole, so an oversized guess is
		// rejected by the controller like any other invalid one
		line, err := that.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if err != nil && line == "" {
			log.Info("input closed")
			_, _ = io.WriteString(that.out, "\n")
			game.Quit()
			return nil
		}

		if err := game.Submit(line); err != nil {
			return fmt.Errorf("failed to submit input: %w", err)
		}
	}

	return nil
}

func (that *Console) printFigure() {
	if that.canvas == nil || that.canvas.Revision() == that.lastRevision {
		return
	}

	that.lastRevision = that.canvas.Revision()

	figure := render.Rasterize(that.canvas, figureCols, figureRows)
	if _, err := io.WriteString(that.out, figure.String()); err != nil {
		that.logger.Error("failed to print figure", "error", err)
	}
}
