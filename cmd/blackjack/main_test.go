package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadedpez/blackjack/internal/config"
	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/repositories/game"
)

func testConfig(t *testing.T, storage string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Wallet:        100,
		Seed:          20,
		SummaryDir:    filepath.Join(dir, "summaries"),
		LogLevel:      "error",
		StorageType:   storage,
		DataDir:       dir,
		DBPath:        filepath.Join(dir, "data", "blackjack.db"),
		ESIndexPrefix: "blackjack",
		Environment:   "development",
	}
}

func TestPlayCmdWritesSummaries(t *testing.T) {
	cfg := testConfig(t, config.StorageMemory)
	cmd := &PlayCmd{Games: 2, Rounds: 3, Threshold: 17, Quiet: true}

	require.NoError(t, cmd.Run(cfg, logging.NewNop()))

	for _, name := range []string{"game_summary1.txt", "game_summary2.txt"} {
		content, err := os.ReadFile(filepath.Join(cfg.SummaryDir, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(content), "ROUND 1:\nPlayer Hand:\n")
		assert.Contains(t, string(content), "Winner of ROUND 1: ")
	}
}

func TestPlayCmdFlagsOverrideConfig(t *testing.T) {
	cfg := testConfig(t, config.StorageMemory)
	wallet := int64(7)
	seed := uint64(3)
	summaryDir := filepath.Join(t.TempDir(), "elsewhere")
	cmd := &PlayCmd{Games: 1, Rounds: 1, Threshold: 17, Wallet: &wallet, Seed: &seed, SummaryDir: summaryDir, Storage: config.StorageSQLite, Quiet: true}

	require.NoError(t, cmd.Run(cfg, logging.NewNop()))

	assert.Equal(t, int64(7), cfg.Wallet)
	assert.Equal(t, uint64(3), cfg.Seed)
	assert.Equal(t, config.StorageSQLite, cfg.StorageType)
	_, err := os.Stat(filepath.Join(summaryDir, "game_summary1.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(cfg.DBPath)
	assert.NoError(t, err, "sqlite storage should create the database")
}

func TestPlayCmdContinuesNumberingFromStoredGames(t *testing.T) {
	cfg := testConfig(t, config.StorageSQLite)

	for run := 0; run < 2; run++ {
		cmd := &PlayCmd{Games: 1, Rounds: 2, Threshold: 17, Quiet: true}
		require.NoError(t, cmd.Run(cfg, logging.NewNop()))
	}

	for _, name := range []string{"game_summary1.txt", "game_summary2.txt"} {
		content, err := os.ReadFile(filepath.Join(cfg.SummaryDir, name))
		require.NoError(t, err, name)
		assert.Equal(t, 1, strings.Count(string(content), "ROUND 1:\n"), "%s should hold a single session", name)
	}
}

func TestNextGameNumber(t *testing.T) {
	ctx := context.Background()
	repo := game.NewMemoryRepository()

	next, err := nextGameNumber(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	for _, number := range []int{3, 1} {
		require.NoError(t, repo.SaveRound(ctx, &entities.RoundResult{
			ID:         fmt.Sprintf("round-%d", number),
			GameID:     fmt.Sprintf("game-%d", number),
			GameNumber: number,
			Round:      1,
			Player:     entities.NewPlayerHand(),
			Dealer:     entities.NewDealerHand(),
		}))
	}

	next, err = nextGameNumber(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 4, next)
}

func TestPlayCmdRejectsUnknownStorage(t *testing.T) {
	cfg := testConfig(t, config.StorageMemory)
	cmd := &PlayCmd{Games: 1, Rounds: 1, Threshold: 17, Storage: "postgres"}

	assert.Error(t, cmd.Run(cfg, logging.NewNop()))
}

func TestStatsCmdReadsStoredGames(t *testing.T) {
	cfg := testConfig(t, config.StorageSQLite)
	play := &PlayCmd{Games: 2, Rounds: 2, Threshold: 17, Quiet: true}
	require.NoError(t, play.Run(cfg, logging.NewNop()))

	repo, err := game.NewSQLiteRepository(context.Background(), cfg.DBPath, logging.NewNop())
	require.NoError(t, err)
	games, err := repo.ListGames(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.Close())
	require.Len(t, games, 2)

	require.NoError(t, (&StatsCmd{Page: 1, PerPage: 10}).Run(cfg, logging.NewNop()))
	require.NoError(t, (&StatsCmd{Game: games[0].GameID}).Run(cfg, logging.NewNop()))
	assert.Error(t, (&StatsCmd{Game: "missing"}).Run(cfg, logging.NewNop()))
}

func TestMigrateCmd(t *testing.T) {
	cfg := testConfig(t, config.StorageSQLite)
	cmd := &MigrateCmd{DB: filepath.Join(t.TempDir(), "nested", "migrate.db")}

	require.NoError(t, cmd.Run(cfg, logging.NewNop()))
	require.NoError(t, cmd.Run(cfg, logging.NewNop()), "migrating twice is a no-op")

	_, err := os.Stat(cmd.DB)
	assert.NoError(t, err)
}

func TestOpenRepository(t *testing.T) {
	ctx := context.Background()

	repo, err := openRepository(ctx, testConfig(t, config.StorageMemory), logging.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &game.MemoryRepository{}, repo)

	repo, err = openRepository(ctx, testConfig(t, config.StorageSQLite), logging.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &game.SQLiteRepository{}, repo)
	assert.NoError(t, repo.Close())

	_, err = openRepository(ctx, testConfig(t, "mongo"), logging.NewNop())
	assert.Error(t, err)
}
