package game

import (
	"context"

	"github.com/fadedpez/blackjack/pkg/entities"
)

// Recorder stores every round a game reports. It satisfies the round
// recorder hook of the blackjack game engine.
type Recorder struct {
	repo Repository
}

// NewRecorder creates a recorder that saves rounds to repo
func NewRecorder(repo Repository) *Recorder {
	return &Recorder{repo: repo}
}

// RecordRound saves the round
func (r *Recorder) RecordRound(ctx context.Context, result *entities.RoundResult) error {
	return r.repo.SaveRound(ctx, result)
}
