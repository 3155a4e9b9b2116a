package game

import (
	"context"
	"slices"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
)

// MemoryRepository implements Repository with in-memory storage. Games are
// listed in the order their first round was saved.
type MemoryRepository struct {
	mu    sync.RWMutex
	games *linkedhashmap.Map // gameID -> []*RoundRecord
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		games: linkedhashmap.New(),
	}
}

// SaveRound stores a round under its game
func (r *MemoryRepository) SaveRound(ctx context.Context, result *entities.RoundResult) error {
	if result == nil {
		return types.NewGameError(types.ErrInvalidArgument, "round result is nil")
	}
	record := NewRoundRecord(result)

	r.mu.Lock()
	defer r.mu.Unlock()

	rounds := r.rounds(record.GameID)
	for _, existing := range rounds {
		if existing.Round == record.Round {
			return types.NewGameErrorf(types.ErrDatabaseError, "round %d of game %s already saved", record.Round, record.GameID)
		}
	}
	r.games.Put(record.GameID, append(rounds, record))
	return nil
}

// GetRounds retrieves the rounds of a game
func (r *MemoryRepository) GetRounds(ctx context.Context, gameID string) ([]*RoundRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rounds := slices.Clone(r.rounds(gameID))
	if rounds == nil {
		return []*RoundRecord{}, nil
	}
	slices.SortFunc(rounds, func(a, b *RoundRecord) int { return a.Round - b.Round })
	return rounds, nil
}

// ListGames summarises every game in insertion order
func (r *MemoryRepository) ListGames(ctx context.Context) ([]*GameInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games := make([]*GameInfo, 0, r.games.Size())
	it := r.games.Iterator()
	for it.Next() {
		rounds := slices.Clone(it.Value().([]*RoundRecord))
		slices.SortFunc(rounds, func(a, b *RoundRecord) int { return a.Round - b.Round })
		games = append(games, summarize(it.Key().(string), rounds))
	}
	return games, nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}

func (r *MemoryRepository) rounds(gameID string) []*RoundRecord {
	value, found := r.games.Get(gameID)
	if !found {
		return nil
	}
	return value.([]*RoundRecord)
}
