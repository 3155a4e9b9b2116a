package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/fadedpez/blackjack/internal/config"
	"github.com/fadedpez/blackjack/internal/logging"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `help:"Log level: debug|info|warn|error. Overrides LOG_LEVEL." placeholder:"LEVEL"`

	Play    PlayCmd    `cmd:"" help:"Play automated blackjack games"`
	Migrate MigrateCmd `cmd:"" help:"Apply the SQLite schema"`
	Stats   StatsCmd   `cmd:"" help:"Show statistics for stored games"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Automated blackjack simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	ctx.FatalIfErrorf(err)

	logger := logging.NewLogger(level)
	if !cfg.IsDevelopment() {
		logger = logging.NewProductionLogger(level)
	}
	defer logger.Sync()

	err = ctx.Run(cfg, logger)
	ctx.FatalIfErrorf(err)
}
