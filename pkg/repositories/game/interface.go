package game

import (
	"context"

	"github.com/fadedpez/blackjack/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_game

// Repository stores resolved rounds grouped by game
type Repository interface {
	// SaveRound stores one resolved round
	SaveRound(ctx context.Context, result *entities.RoundResult) error
	// GetRounds returns a game's rounds in round order. Unknown games have no rounds.
	GetRounds(ctx context.Context, gameID string) ([]*RoundRecord, error)
	// ListGames summarises every stored game
	ListGames(ctx context.Context) ([]*GameInfo, error)

	// Close closes any resources used by the repository
	Close() error
}
