package tui

import (
	"bytes"
	"sync"
)

// Transcript - keeps the last lines written by the game.
type Transcript struct {
	mu      sync.Mutex
	max     int
	lines   []string
	partial []byte
}

func NewTranscript(maxLines int) *Transcript {
	return &Transcript{max: max(maxLines, 1)}
}

func (that *Transcript) Write(p []byte) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	data := append(that.partial, p...)
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}

		that.lines = append(that.lines, string(data[:i]))
		data = data[i+1:]
	}

	that.partial = append([]byte(nil), data...)

	if extra := len(that.lines) - that.max; extra > 0 {
		that.lines = append([]string(nil), that.lines[extra:]...)
	}

	return len(p), nil
}

// Tail - up to n most recent complete lines, oldest first.
func (that *Transcript) Tail(n int) []string {
	that.mu.Lock()
	defer that.mu.Unlock()

	if n > len(that.lines) {
		n = len(that.lines)
	}

	return append([]string(nil), that.lines[len(that.lines)-n:]...)
}
