package game

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/db/migrations"
	"github.com/fadedpez/blackjack/pkg/entities"
)

// SQLiteRepository implements the Repository interface using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at dbPath and applies any pending
// migrations
func NewSQLiteRepository(ctx context.Context, dbPath string, logger *logging.Logger) (*SQLiteRepository, error) {
	db, err := OpenSQLite(dbPath)
	if err != nil {
		return nil, err
	}

	migrator := migrations.NewEmbeddedMigrator(db, logger)
	if _, err := migrator.MigrateUp(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// OpenSQLite opens a SQLite database, creating its directory if needed
func OpenSQLite(dbPath string) (*sql.DB, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	return db, nil
}

// SaveRound stores a round
func (r *SQLiteRepository) SaveRound(ctx context.Context, result *entities.RoundResult) error {
	if result == nil {
		return types.NewGameError(types.ErrInvalidArgument, "round result is nil")
	}
	record := NewRoundRecord(result)

	playerJSON, err := json.Marshal(record.PlayerCards)
	if err != nil {
		return err
	}
	dealerJSON, err := json.Marshal(record.DealerCards)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO rounds (
			id, game_id, game_number, round, player_cards, dealer_cards,
			player_score, dealer_score, outcome, stake, wallet, bet, completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		record.ID, record.GameID, record.GameNumber, record.Round,
		string(playerJSON), string(dealerJSON),
		record.PlayerScore, record.DealerScore, int(record.Outcome),
		record.Stake, record.Wallet, record.Bet, record.CompletedAt.UTC())
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, fmt.Sprintf("failed to save round %d of game %s", record.Round, record.GameID), err)
	}
	return nil
}

// GetRounds retrieves the rounds of a game
func (r *SQLiteRepository) GetRounds(ctx context.Context, gameID string) ([]*RoundRecord, error) {
	query := `
		SELECT id, game_id, game_number, round, player_cards, dealer_cards,
			player_score, dealer_score, outcome, stake, wallet, bet, completed_at
		FROM rounds
		WHERE game_id = ?
		ORDER BY round ASC`

	rows, err := r.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to query rounds", err)
	}
	defer rows.Close()

	records := []*RoundRecord{}
	for rows.Next() {
		record, err := scanRound(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// ListGames summarises every game, oldest first
func (r *SQLiteRepository) ListGames(ctx context.Context) ([]*GameInfo, error) {
	query := `
		SELECT r.game_id, r.game_number, counts.rounds, r.wallet, counts.last_played
		FROM rounds r
		JOIN (
			SELECT game_id, COUNT(*) AS rounds, MAX(round) AS last_round,
				MAX(completed_at) AS last_played, MIN(created_at) AS first_seen
			FROM rounds
			GROUP BY game_id
		) counts ON counts.game_id = r.game_id AND counts.last_round = r.round
		ORDER BY counts.first_seen ASC, r.game_number ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to list games", err)
	}
	defer rows.Close()

	games := []*GameInfo{}
	for rows.Next() {
		var (
			info       GameInfo
			lastPlayed string
		)
		if err := rows.Scan(&info.GameID, &info.GameNumber, &info.RoundsPlayed, &info.FinalWallet, &lastPlayed); err != nil {
			return nil, err
		}
		info.LastPlayedAt = parseSQLiteTime(lastPlayed)
		games = append(games, &info)
	}
	return games, rows.Err()
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanRound(rows *sql.Rows) (*RoundRecord, error) {
	var (
		record     RoundRecord
		playerJSON string
		dealerJSON string
		outcome    int
	)
	err := rows.Scan(
		&record.ID, &record.GameID, &record.GameNumber, &record.Round,
		&playerJSON, &dealerJSON,
		&record.PlayerScore, &record.DealerScore, &outcome,
		&record.Stake, &record.Wallet, &record.Bet, &record.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	record.Outcome = entities.Outcome(outcome)

	if err := json.Unmarshal([]byte(playerJSON), &record.PlayerCards); err != nil {
		return nil, fmt.Errorf("error decoding player cards: %w", err)
	}
	if err := json.Unmarshal([]byte(dealerJSON), &record.DealerCards); err != nil {
		return nil, fmt.Errorf("error decoding dealer cards: %w", err)
	}
	return &record, nil
}

// parseSQLiteTime reads an aggregated timestamp, which the driver returns
// as text rather than time.Time
func parseSQLiteTime(value string) time.Time {
	layouts := []string{
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02T15:04:05.999999999-07:00",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05",
		time.RFC3339Nano,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
