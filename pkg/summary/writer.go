// Package summary writes a plain-text summary of every round to one file per game
package summary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/display"
	"github.com/fadedpez/blackjack/pkg/entities"
)

// DefaultDir is where summaries go when no directory is configured
const DefaultDir = "game_summaries"

// Writer appends round summaries to game_summary<N>.txt files
type Writer struct {
	dir string
	mu  sync.Mutex
}

// NewWriter creates a writer for dir, creating the directory if needed
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create summary directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Path returns the summary file for a game number
func (w *Writer) Path(gameNumber int) string {
	return filepath.Join(w.dir, fmt.Sprintf("game_summary%d.txt", gameNumber))
}

// RecordRound appends the round's hands and winner to the game's file
func (w *Writer) RecordRound(ctx context.Context, result *entities.RoundResult) error {
	if result == nil {
		return types.NewGameError(types.ErrInvalidArgument, "round result is nil")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := os.OpenFile(w.Path(result.GameNumber), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open summary file: %w", err)
	}

	if _, err := f.WriteString(Format(result)); err != nil {
		f.Close()
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return f.Close()
}

// Read returns the full summary written so far for a game
func (w *Writer) Read(gameNumber int) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	data, err := os.ReadFile(w.Path(gameNumber))
	if os.IsNotExist(err) {
		return "", types.NewGameErrorf(types.ErrGameNotFound, "no summary for game %d", gameNumber)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Format renders one round the way it appears in a summary file
func Format(result *entities.RoundResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ROUND %d:\n", result.Round)
	b.WriteString("Player Hand:\n")
	b.WriteString(display.Hand(result.Player) + "\n")
	b.WriteString("Dealer Hand:\n")
	b.WriteString(display.Hand(result.Dealer) + "\n")
	fmt.Fprintf(&b, "Winner of ROUND %d: %s\n\n", result.Round, result.Outcome)
	return b.String()
}
