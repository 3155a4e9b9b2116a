package main

import (
	"context"
	"fmt"

	"github.com/fadedpez/blackjack/internal/config"
	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/db/migrations"
	"github.com/fadedpez/blackjack/pkg/repositories/game"
)

// MigrateCmd applies pending SQLite migrations
type MigrateCmd struct {
	DB string `kong:"name='db',help='SQLite database path. Overrides DB_PATH.'"`
}

func (c *MigrateCmd) Run(cfg *config.Config, logger *logging.Logger) error {
	dbPath := cfg.DBPath
	if c.DB != "" {
		dbPath = c.DB
	}

	db, err := game.OpenSQLite(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	count, err := migrations.NewEmbeddedMigrator(db, logger).MigrateUp(context.Background())
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	fmt.Printf("Applied %d migration(s) to %s\n", count, dbPath)
	return nil
}
