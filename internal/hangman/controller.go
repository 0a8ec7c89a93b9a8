package hangman

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
)

type State int

const (
	Initializing State = iota
	AwaitingGuess
	Won
	Lost
	Terminated
)

var stateNames = map[State]string{
	Initializing:  "initializing",
	AwaitingGuess: "awaiting_guess",
	Won:           "won",
	Lost:          "lost",
	Terminated:    "terminated",
}

func (that State) String() string {
	if name, ok := stateNames[that]; ok {
		return name
	}

	return "unknown"
}

const (
	GuessPrompt  = "Your guess: "
	ReplayPrompt = "Do you want to play again? (y/n): "
)

type lexicon interface {
	Count() int
	WordAt(index int) (string, error)
}

type display interface {
	Reset()
	ShowWord(word string)
	NoteWrongGuess(letter rune)
}

// Controller - runs hangman rounds. It never blocks: front ends read input
// and hand every line to Submit.
type Controller struct {
	logger  *slog.Logger
	lexicon lexicon
	display display
	out     io.Writer

	budget int
	rng    *rand.Rand

	state State
	round *entity.Round
}

type Option func(*Controller)

func WithGuessBudget(budget int) Option {
	return func(c *Controller) {
		c.budget = budget
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		c.rng = rng
	}
}

func NewController(logger *slog.Logger, lexicon lexicon, display display, out io.Writer, opts ...Option) *Controller {
	controller := &Controller{
		logger:  logger.With("component", "controller"),
		lexicon: lexicon,
		display: display,
		out:     out,
		budget:  entity.DefaultGuessBudget,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint: gosec // game randomness
		state:   Initializing,
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// Start - sets up a new round and waits for the first guess.
func (that *Controller) Start() error {
	log := that.logger.With("method", "Start")

	if that.state == Terminated {
		return apperror.ErrTerminated
	}

	that.state = Initializing
	that.display.Reset()

	word, err := that.pickRandomWord()
	if err != nil {
		return fmt.Errorf("failed to pick word: %w", err)
	}

	that.round = entity.NewRound(word, that.budget)
	log.Debug("round started", "length", len(that.round.Revealed), "budget", that.budget)

	that.println("Welcome to Hangman!")

	// an empty secret word is already revealed
	if that.round.IsFinished() {
		that.finishRound()
		return nil
	}

	that.state = AwaitingGuess
	that.showStatus()

	return nil
}

// Submit - handles one line of input according to the current state.
func (that *Controller) Submit(input string) error {
	input = strings.TrimRight(input, "\r\n")

	switch that.state {
	case AwaitingGuess:
		return that.handleGuess(input)
	case Won, Lost:
		return that.handleReplay(input)
	case Terminated:
		return apperror.ErrTerminated
	default:
		return apperror.ErrRoundNotStarted
	}
}

// Prompt - the text to show before reading the next line.
func (that *Controller) Prompt() string {
	switch that.state {
	case AwaitingGuess:
		return GuessPrompt
	case Won, Lost:
		return ReplayPrompt
	default:
		return ""
	}
}

func (that *Controller) State() State {
	return that.state
}

func (that *Controller) Round() *entity.Round {
	return that.round
}

func (that *Controller) Done() bool {
	return that.state == Terminated
}

// Quit - ends the session from any state.
func (that *Controller) Quit() {
	if that.state == Terminated {
		return
	}

	that.println("Ok, goodbye.")
	that.state = Terminated
}

func (that *Controller) handleGuess(input string) error {
	log := that.logger.With("method", "handleGuess")

	letter, err := parseGuess(input)
	if errors.Is(err, apperror.ErrInvalidGuess) {
		log.Debug("guess rejected", "length", utf8.RuneCountInString(input), "error", err)
		that.println("Please enter only 1 character.")
		return nil
	}

	correct, err := that.round.Guess(letter)
	if err != nil {
		return fmt.Errorf("failed to evaluate guess: %w", err)
	}

	if !correct {
		that.display.NoteWrongGuess(letter)
	}

	log.Debug("guess evaluated", "letter", string(letter), "correct", correct, "remaining", that.round.RemainingGuesses)

	if that.round.IsFinished() {
		that.finishRound()
		return nil
	}

	that.showStatus()

	return nil
}

// parseGuess - the upper-cased letter of a one character input.
func parseGuess(input string) (rune, error) {
	if count := utf8.RuneCountInString(input); count != 1 {
		return 0, fmt.Errorf("%w: got %d", apperror.ErrInvalidGuess, count)
	}

	letter, _ := utf8.DecodeRuneInString(input)

	return unicode.ToUpper(letter), nil
}

func (that *Controller) handleReplay(input string) error {
	answer, _ := utf8.DecodeRuneInString(input)

	switch answer {
	case 'y':
		return that.Start()
	case 'n':
		that.Quit()
		return nil
	default:
		// the prompt is shown again by the front end
		return nil
	}
}

func (that *Controller) finishRound() {
	log := that.logger.With("method", "finishRound")

	if that.round.IsWon() {
		that.state = Won
		that.display.ShowWord(that.round.MaskedWord())
		that.println("The word now looks like this: " + that.round.MaskedWord())
		that.println("AWESOME! YOU WON!!")
	} else {
		that.state = Lost
		that.display.ShowWord(that.round.SecretWord)
		that.println("Sorry, you've been hung. :(")
		that.println("The word was: " + that.round.SecretWord + ".")
	}

	log.Info("round finished", "result", that.state.String(), "wrong_guesses", that.round.WrongGuesses())
}

func (that *Controller) showStatus() {
	masked := that.round.MaskedWord()

	that.display.ShowWord(masked)
	that.println("The word now looks like this: " + masked)

	if that.round.RemainingGuesses == 1 {
		that.println("You have 1 guess left.")
	} else {
		that.println(fmt.Sprintf("You have %d guesses left.", that.round.RemainingGuesses))
	}
}

// pickRandomWord - secret words are upper-cased so that they match the
// upper-cased guesses.
func (that *Controller) pickRandomWord() (string, error) {
	count := that.lexicon.Count()
	if count <= 0 {
		return "", apperror.ErrEmptyLexicon
	}

	word, err := that.lexicon.WordAt(that.rng.IntN(count))
	if err != nil {
		return "", fmt.Errorf("lexicon invariant violated: %w", err)
	}

	return strings.ToUpper(word), nil
}

func (that *Controller) println(line string) {
	if _, err := fmt.Fprintln(that.out, line); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
