package apperror

import "errors"

var (
	ErrOutOfRange        = errors.New("index out of range")
	ErrLexiconUnreadable = errors.New("lexicon source cannot be read")
	ErrEmptyLexicon      = errors.New("lexicon has no words")
	ErrRoundFinished     = errors.New("round is already finished")
	ErrRoundNotStarted   = errors.New("round is not started")
	ErrTerminated        = errors.New("game is terminated")
	ErrInvalidGuess      = errors.New("guess must be exactly one character")
)
