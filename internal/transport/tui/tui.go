package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/hangman/internal/canvas"
	"github.com/rocketscienceinc/hangman/internal/render"
)

const (
	minFigureCols = 10
	minFigureRows = 6
	maxFigureCols = 48
	paneGap       = 2
)

type controller interface {
	Start() error
	Submit(input string) error
	Prompt() string
	Done() bool
	Quit()
}

// TUI - full screen front end. Every key press is one input for the
// controller, so guesses are always a single character.
type TUI struct {
	logger     *slog.Logger
	screen     tcell.Screen
	canvas     *canvas.Canvas
	transcript *Transcript

	figureStyle tcell.Style
	textStyle   tcell.Style
	promptStyle tcell.Style
}

// New - the screen must already be initialized; the caller finalizes it.
func New(logger *slog.Logger, screen tcell.Screen, c *canvas.Canvas, transcript *Transcript) *TUI {
	return &TUI{
		logger:     logger.With("component", "tui"),
		screen:     screen,
		canvas:     c,
		transcript: transcript,

		figureStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite),
		textStyle:   tcell.StyleDefault,
		promptStyle: tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow),
	}
}

func (that *TUI) Run(ctx context.Context, game controller) error {
	log := that.logger.With("method", "Run")

	that.screen.HideCursor()

	if err := game.Start(); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)

	go that.screen.ChannelEvents(events, quit)

	that.draw(game)

	for !game.Done() {
		select {
		case <-ctx.Done():
			log.Info("context canceled, stopping tui")
			game.Quit()
			return nil
		case ev, ok := <-events:
			if !ok {
				game.Quit()
				return nil
			}

			if err := that.handleEvent(ev, game); err != nil {
				return err
			}
		}

		that.draw(game)
	}

	return nil
}

func (that *TUI) handleEvent(ev tcell.Event, game controller) error {
	switch e := ev.(type) {
	case *tcell.EventResize:
		that.screen.Sync()
	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			game.Quit()
		case tcell.KeyEnter:
			return that.submit(game, "")
		case tcell.KeyRune:
			return that.submit(game, string(e.Rune()))
		}
	}

	return nil
}

func (that *TUI) submit(game controller, input string) error {
	if err := game.Submit(input); err != nil {
		return fmt.Errorf("failed to submit input: %w", err)
	}

	return nil
}

func (that *TUI) draw(game controller) {
	that.screen.Clear()

	width, height := that.screen.Size()
	figCols := min(max(width/2, minFigureCols), maxFigureCols)
	figRows := max(height-1, minFigureRows)

	grid := render.Rasterize(that.canvas, figCols, figRows)
	for y := range grid.Rows() {
		for x := range grid.Cols() {
			if ch := grid.At(x, y); ch != ' ' {
				that.screen.SetContent(x, y, ch, nil, that.figureStyle)
			}
		}
	}

	left := figCols + paneGap
	lines := that.transcript.Tail(max(height-1, 1))
	for y, line := range lines {
		drawText(that.screen, left, y, line, that.textStyle)
	}

	drawText(that.screen, left, len(lines), game.Prompt(), that.promptStyle)

	that.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
