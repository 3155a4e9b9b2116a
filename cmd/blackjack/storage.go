package main

import (
	"context"
	"fmt"

	"github.com/fadedpez/blackjack/internal/config"
	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/repositories/game"
)

// openRepository creates the round store selected by the configuration
func openRepository(ctx context.Context, cfg *config.Config, logger *logging.Logger) (game.Repository, error) {
	switch cfg.StorageType {
	case config.StorageSQLite:
		logger.Info("Initializing SQLite repository at %s", cfg.DBPath)
		return game.NewSQLiteRepository(ctx, cfg.DBPath, logger)
	case config.StorageElasticsearch:
		logger.Info("Initializing Elasticsearch repository at %s", cfg.ESURL)
		repo, err := game.NewElasticsearchRepository(ctx, &game.ElasticsearchConfig{
			URL:         cfg.ESURL,
			Username:    cfg.ESUsername,
			Password:    cfg.ESPassword,
			IndexPrefix: cfg.ESIndexPrefix,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Storing rounds in index %s", repo.Index())
		return repo, nil
	case config.StorageMemory:
		logger.Info("Using in-memory repository for round data (data will be lost on exit)")
		return game.NewMemoryRepository(), nil
	}
	return nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
}
