package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage backends for round results
const (
	StorageMemory        = "memory"
	StorageSQLite        = "sqlite"
	StorageElasticsearch = "elasticsearch"
)

// Config holds all configuration for the simulator
type Config struct {
	// Session defaults
	Wallet int64
	Seed   uint64

	// Output
	SummaryDir string
	LogLevel   string

	// Round storage
	StorageType string
	DataDir     string
	DBPath      string

	// Elasticsearch
	ESURL         string
	ESUsername    string
	ESPassword    string
	ESIndexPrefix string

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables, loading a .env file first if present
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	wallet, err := strconv.ParseInt(getEnvWithDefault("BLACKJACK_WALLET", "100"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid BLACKJACK_WALLET: %w", err)
	}

	seed, err := strconv.ParseUint(getEnvWithDefault("BLACKJACK_SEED", "20"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid BLACKJACK_SEED: %w", err)
	}

	dataDir := getEnvWithDefault("DATA_DIR", filepath.Join(wd, "data"))

	cfg := &Config{
		Wallet:        wallet,
		Seed:          seed,
		SummaryDir:    getEnvWithDefault("SUMMARY_DIR", filepath.Join(wd, "game_summaries")),
		LogLevel:      getEnvWithDefault("LOG_LEVEL", "info"),
		StorageType:   getEnvWithDefault("STORAGE_TYPE", StorageMemory),
		DataDir:       dataDir,
		DBPath:        getEnvWithDefault("DB_PATH", filepath.Join(dataDir, "blackjack.db")),
		ESURL:         getEnvWithDefault("ES_URL", "http://localhost:9200"),
		ESUsername:    os.Getenv("ES_USERNAME"),
		ESPassword:    os.Getenv("ES_PASSWORD"),
		ESIndexPrefix: getEnvWithDefault("ES_INDEX_PREFIX", "blackjack"),
		Environment:   getEnvWithDefault("ENVIRONMENT", "development"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration values are usable
func (c *Config) Validate() error {
	if c.Wallet < 0 {
		return fmt.Errorf("wallet must not be negative, got %d", c.Wallet)
	}
	switch c.StorageType {
	case StorageMemory, StorageSQLite, StorageElasticsearch:
	default:
		return fmt.Errorf("unknown STORAGE_TYPE %q", c.StorageType)
	}
	if c.StorageType == StorageSQLite && c.DBPath == "" {
		return fmt.Errorf("DB_PATH is required for sqlite storage")
	}
	if c.StorageType == StorageElasticsearch && c.ESURL == "" {
		return fmt.Errorf("ES_URL is required for elasticsearch storage")
	}
	if c.SummaryDir == "" {
		return fmt.Errorf("SUMMARY_DIR is required")
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
