package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fadedpez/blackjack/internal/config"
	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/services/statistics"
)

// StatsCmd prints statistics for stored games
type StatsCmd struct {
	Game    string `kong:"help='Game ID to show. Shows the leaderboard when empty.'"`
	Storage string `kong:"help='Round storage backend: sqlite|elasticsearch. Overrides STORAGE_TYPE.'"`
	DB      string `kong:"name='db',help='SQLite database path. Overrides DB_PATH.'"`
	Page    int    `kong:"default='1',help='Leaderboard page'"`
	PerPage int    `kong:"default='10',help='Games per leaderboard page'"`
}

func (c *StatsCmd) Run(cfg *config.Config, logger *logging.Logger) error {
	if c.Storage != "" {
		cfg.StorageType = c.Storage
	}
	if c.DB != "" {
		cfg.DBPath = c.DB
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	repo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open round storage: %w", err)
	}
	defer repo.Close()

	service := statistics.NewService(repo)

	if c.Game != "" {
		stats, err := service.GetGameStatistics(ctx, c.Game)
		if err != nil {
			return err
		}
		printStatistics(os.Stdout, stats)
		return nil
	}

	board, err := service.GetLeaderboard(ctx, c.Page, c.PerPage)
	if err != nil {
		return err
	}
	printLeaderboard(os.Stdout, board)
	return nil
}

func printStatistics(w io.Writer, s *entities.GameStatistics) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Game:\t%d (%s)\n", s.GameNumber, s.GameID)
	fmt.Fprintf(tw, "Rounds:\t%d\n", s.RoundsPlayed)
	fmt.Fprintf(tw, "Wins / Losses / Ties:\t%d / %d / %d\n", s.Wins, s.Losses, s.Ties)
	fmt.Fprintf(tw, "Win rate:\t%.1f%%\n", s.WinRate())
	fmt.Fprintf(tw, "Longest win streak:\t%d\n", s.LongestWinStreak)
	fmt.Fprintf(tw, "Busts (player / dealer):\t%d / %d\n", s.PlayerBusts, s.DealerBusts)
	fmt.Fprintf(tw, "Total staked:\t$%d\n", s.TotalStaked)
	fmt.Fprintf(tw, "Highest stake:\t$%d\n", s.HighestStake)
	fmt.Fprintf(tw, "Net winnings:\t$%d\n", s.NetWinnings)
	fmt.Fprintf(tw, "Final wallet:\t$%d\n", s.FinalWallet)
	tw.Flush()
}

func printLeaderboard(w io.Writer, board *statistics.Leaderboard) {
	if board.TotalGames == 0 {
		fmt.Fprintln(w, "No games stored yet")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tGAME\tROUNDS\tWIN RATE\tNET\tWALLET\t")
	for _, g := range board.Games {
		marker := ""
		if g.IsTopWinner {
			marker = "*"
		}
		fmt.Fprintf(tw, "%d%s\t%d\t%d\t%.1f%%\t$%d\t$%d\t\n",
			g.Rank, marker, g.GameNumber, g.RoundsPlayed, g.WinRate(), g.NetWinnings, g.FinalWallet)
	}
	tw.Flush()
	fmt.Fprintf(w, "Page %d of %d (%d games)\n", board.CurrentPage, board.TotalPages, board.TotalGames)
}
