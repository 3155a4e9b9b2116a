package statistics

import (
	"context"
	"sort"
	"time"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/repositories/game"
)

// Service builds game statistics from stored rounds
type Service struct {
	repository game.Repository
}

// NewService creates a new statistics service
func NewService(repository game.Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// GameRank is a game's statistics with its place on the leaderboard
type GameRank struct {
	*entities.GameStatistics
	Rank        int  `json:"rank"`
	IsTopWinner bool `json:"is_top_winner"`
	IsLongest   bool `json:"is_longest"`
}

// Leaderboard is one page of games ranked by net winnings
type Leaderboard struct {
	Games        []*GameRank `json:"games"`
	TotalGames   int         `json:"total_games"`
	CurrentPage  int         `json:"current_page"`
	TotalPages   int         `json:"total_pages"`
	GamesPerPage int         `json:"games_per_page"`
	LastUpdated  time.Time   `json:"last_updated"`
}

// GetGameStatistics aggregates every stored round of a game
func (s *Service) GetGameStatistics(ctx context.Context, gameID string) (*entities.GameStatistics, error) {
	rounds, err := s.repository.GetRounds(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, types.NewGameErrorf(types.ErrGameNotFound, "no rounds stored for game %s", gameID)
	}
	return Aggregate(gameID, rounds), nil
}

// Aggregate folds rounds into statistics. Rounds must be in round order.
func Aggregate(gameID string, rounds []*game.RoundRecord) *entities.GameStatistics {
	stats := &entities.GameStatistics{GameID: gameID}
	for _, r := range rounds {
		stats.GameNumber = r.GameNumber
		stats.Add(r.Outcome, r.Stake, r.Wallet, r.PlayerBusted(), r.DealerBusted())
	}
	return stats
}

// GetAllGameStatistics returns statistics for every stored game
func (s *Service) GetAllGameStatistics(ctx context.Context) ([]*entities.GameStatistics, error) {
	games, err := s.repository.ListGames(ctx)
	if err != nil {
		return nil, err
	}

	all := make([]*entities.GameStatistics, 0, len(games))
	for _, info := range games {
		rounds, err := s.repository.GetRounds(ctx, info.GameID)
		if err != nil {
			return nil, err
		}
		all = append(all, Aggregate(info.GameID, rounds))
	}
	return all, nil
}

// GetLeaderboard ranks stored games by net winnings and returns one page
func (s *Service) GetLeaderboard(ctx context.Context, page, gamesPerPage int) (*Leaderboard, error) {
	if page < 1 {
		page = 1
	}
	if gamesPerPage < 1 {
		gamesPerPage = 10
	}

	allStats, err := s.GetAllGameStatistics(ctx)
	if err != nil {
		return nil, err
	}

	ranks := make([]*GameRank, 0, len(allStats))
	for _, stats := range allStats {
		if stats.RoundsPlayed == 0 {
			continue
		}
		ranks = append(ranks, &GameRank{GameStatistics: stats})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].NetWinnings > ranks[j].NetWinnings
	})

	if len(ranks) > 0 {
		ranks[0].IsTopWinner = true

		longest := 0
		for i := 1; i < len(ranks); i++ {
			if ranks[i].RoundsPlayed > ranks[longest].RoundsPlayed {
				longest = i
			}
		}
		ranks[longest].IsLongest = true
	}

	for i := range ranks {
		ranks[i].Rank = i + 1
	}

	totalGames := len(ranks)
	totalPages := (totalGames + gamesPerPage - 1) / gamesPerPage
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	start := (page - 1) * gamesPerPage
	end := start + gamesPerPage
	if end > totalGames {
		end = totalGames
	}

	pageGames := []*GameRank{}
	if start < totalGames {
		pageGames = ranks[start:end]
	}

	return &Leaderboard{
		Games:        pageGames,
		TotalGames:   totalGames,
		CurrentPage:  page,
		TotalPages:   totalPages,
		GamesPerPage: gamesPerPage,
		LastUpdated:  time.Now(),
	}, nil
}
