package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fadedpez/blackjack/internal/config"
	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/repositories/game"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/fadedpez/blackjack/pkg/services/statistics"
	"github.com/fadedpez/blackjack/pkg/summary"
)

// PlayCmd plays one or more games and prints their logs
type PlayCmd struct {
	Games      int     `kong:"default='1',help='Number of games to play'"`
	Rounds     int     `kong:"default='10',help='Rounds to play in each game'"`
	Threshold  int     `kong:"default='17',help='Score the player stands at'"`
	Wallet     *int64  `kong:"help='Starting wallet. Overrides BLACKJACK_WALLET.'"`
	Seed       *uint64 `kong:"help='Shuffle seed. Overrides BLACKJACK_SEED.'"`
	SummaryDir string  `kong:"help='Directory for game summary files. Overrides SUMMARY_DIR.'"`
	Storage    string  `kong:"help='Round storage backend: memory|sqlite|elasticsearch. Overrides STORAGE_TYPE.'"`
	Quiet      bool    `kong:"help='Only print statistics'"`
}

func (c *PlayCmd) Run(cfg *config.Config, logger *logging.Logger) error {
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open round storage: %w", err)
	}
	defer repo.Close()

	writer, err := summary.NewWriter(cfg.SummaryDir)
	if err != nil {
		return err
	}

	first, err := nextGameNumber(ctx, repo)
	if err != nil {
		return fmt.Errorf("failed to read stored games: %w", err)
	}

	factory := blackjack.NewFactoryAt(first,
		blackjack.WithEntropy(blackjack.NewSeededEntropy(cfg.Seed)),
		blackjack.WithRecorder(blackjack.MultiRecorder{writer, game.NewRecorder(repo)}),
		blackjack.WithLogger(logger),
	)
	stats := statistics.NewService(repo)

	for i := 0; i < c.Games; i++ {
		g, err := factory.NewGame(cfg.Wallet)
		if err != nil {
			return err
		}

		if err := g.PlayRound(ctx, c.Rounds, c.Threshold); err != nil {
			logger.LogError(err)
			return err
		}

		if !c.Quiet {
			fmt.Fprintf(os.Stdout, "=== Game %d ===\n%s\n", g.Number, g.Log())
		}

		gameStats, err := stats.GetGameStatistics(ctx, g.ID)
		if types.IsGameError(err, types.ErrGameNotFound) {
			fmt.Fprintf(os.Stdout, "Game %d played no rounds\n\n", g.Number)
			continue
		}
		if err != nil {
			return err
		}
		printStatistics(os.Stdout, gameStats)
		fmt.Fprintf(os.Stdout, "Summary: %s\n\n", writer.Path(g.Number))
	}

	logger.Info("Played %d game(s) starting at game %d", factory.GamesCreated(), first)
	return nil
}

// nextGameNumber returns the number after the highest stored game so a new
// session never appends to an earlier session's summary files
func nextGameNumber(ctx context.Context, repo game.Repository) (int, error) {
	games, err := repo.ListGames(ctx)
	if err != nil {
		return 0, err
	}

	next := 1
	for _, info := range games {
		next = max(next, info.GameNumber+1)
	}
	return next, nil
}

func (c *PlayCmd) apply(cfg *config.Config) {
	if c.Wallet != nil {
		cfg.Wallet = *c.Wallet
	}
	if c.Seed != nil {
		cfg.Seed = *c.Seed
	}
	if c.SummaryDir != "" {
		cfg.SummaryDir = c.SummaryDir
	}
	if c.Storage != "" {
		cfg.StorageType = c.Storage
	}
}
