package entity

import (
	"strings"
	"unicode"

	"github.com/rocketscienceinc/hangman/internal/apperror"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusLost    = "lost"

	HiddenLetter = '-'

	DefaultGuessBudget = 8
)

type Round struct {
	SecretWord       string `json:"secret_word"`
	Revealed         []bool `json:"revealed"`
	RemainingGuesses int    `json:"remaining_guesses"`
	IncorrectLetters []rune `json:"incorrect_letters"`
	Status           string `json:"status"`
}

// NewRound - a round with every letter hidden and the full guess budget.
func NewRound(word string, budget int) *Round {
	round := &Round{
		SecretWord:       word,
		Revealed:         make([]bool, len([]rune(word))),
		RemainingGuesses: budget,
		IncorrectLetters: []rune{},
		Status:           StatusOngoing,
	}

	// an empty word has nothing left to reveal
	round.UpdateRoundState()

	return round
}

// Guess - reveals every hidden position holding letter. The guess is correct
// only if at least one position was revealed; otherwise it costs one guess.
func (that *Round) Guess(letter rune) (bool, error) {
	if that.IsFinished() {
		return false, apperror.ErrRoundFinished
	}

	letter = unicode.ToUpper(letter)

	correct := false
	for i, ch := range []rune(that.SecretWord) {
		if ch == letter && !that.Revealed[i] {
			that.Revealed[i] = true
			correct = true
		}
	}

	if !correct {
		that.RemainingGuesses--
		that.IncorrectLetters = append(that.IncorrectLetters, letter)
	}

	that.UpdateRoundState()

	return correct, nil
}

// UpdateRoundState - the win check runs first, so a winning guess is a win
// even when it leaves no guesses.
func (that *Round) UpdateRoundState() {
	switch {
	case that.allRevealed():
		that.Status = StatusWon
	case that.RemainingGuesses <= 0:
		that.Status = StatusLost
	default:
		that.Status = StatusOngoing
	}
}

// MaskedWord - the secret word with hidden positions shown as HiddenLetter.
func (that *Round) MaskedWord() string {
	var builder strings.Builder

	for i, ch := range []rune(that.SecretWord) {
		if that.Revealed[i] {
			builder.WriteRune(ch)
		} else {
			builder.WriteRune(HiddenLetter)
		}
	}

	return builder.String()
}

// WrongGuesses - number of incorrect guesses so far.
func (that *Round) WrongGuesses() int {
	return len(that.IncorrectLetters)
}

// IsWon - every letter is revealed.
func (that *Round) IsWon() bool {
	return that.Status == StatusWon
}

// IsLost - no guesses are left and the word is still hidden.
func (that *Round) IsLost() bool {
	return that.Status == StatusLost
}

// IsFinished - the round is won or lost.
func (that *Round) IsFinished() bool {
	return that.IsWon() || that.IsLost()
}

func (that *Round) allRevealed() bool {
	for _, revealed := range that.Revealed {
		if !revealed {
			return false
		}
	}

	return true
}
