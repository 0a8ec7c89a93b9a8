package lexicon

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/apperror"
)

// Lexicon - an immutable, ordered list of words.
type Lexicon struct {
	words []string
}

type wordSource interface {
	Words(ctx context.Context) ([]string, error)
}

// New - builds a lexicon from words. Surrounding whitespace is trimmed and
// blank entries are dropped.
func New(words []string) (*Lexicon, error) {
	cleaned := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}

		cleaned = append(cleaned, word)
	}

	if len(cleaned) == 0 {
		return nil, apperror.ErrEmptyLexicon
	}

	return &Lexicon{words: cleaned}, nil
}

// LoadFile - reads a word list with one word per line.
func LoadFile(path string) (*Lexicon, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrLexiconUnreadable, err)
	}
	defer file.Close()

	lexicon, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return lexicon, nil
}

// Read - builds a lexicon from reader, one word per line.
func Read(reader io.Reader) (*Lexicon, error) {
	var words []string

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrLexiconUnreadable, err)
	}

	return New(words)
}

// Load - reads the words from a source such as the redis word repository.
func Load(ctx context.Context, source wordSource) (*Lexicon, error) {
	words, err := source.Words(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrLexiconUnreadable, err)
	}

	return New(words)
}

func (that *Lexicon) Count() int {
	return len(that.words)
}

// WordAt - the word at index, or ErrOutOfRange outside [0, Count()).
func (that *Lexicon) WordAt(index int) (string, error) {
	if index < 0 || index >= len(that.words) {
		return "", fmt.Errorf("%w: %d not in [0, %d)", apperror.ErrOutOfRange, index, len(that.words))
	}

	return that.words[index], nil
}

// Words - a copy of the word list.
func (that *Lexicon) Words() []string {
	return append([]string(nil), that.words...)
}
