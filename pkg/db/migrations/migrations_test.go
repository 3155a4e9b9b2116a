package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/blackjack/internal/logging"
)

type MigrationsTestSuite struct {
	suite.Suite
	db  *sql.DB
	ctx context.Context
}

func TestMigrationsSuite(t *testing.T) {
	suite.Run(t, new(MigrationsTestSuite))
}

func (s *MigrationsTestSuite) SetupTest() {
	db, err := sql.Open("sqlite3", filepath.Join(s.T().TempDir(), "test.db"))
	s.Require().NoError(err)
	s.db = db
	s.ctx = context.Background()
}

func (s *MigrationsTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *MigrationsTestSuite) TestEmbeddedMigrations() {
	migrator := NewEmbeddedMigrator(s.db, logging.NewNop())

	migrations, err := migrator.LoadMigrations()
	s.Require().NoError(err)
	s.Require().Len(migrations, 2)
	s.Equal("001", migrations[0].Version)
	s.Equal("create rounds", migrations[0].Description)
	s.Equal("002", migrations[1].Version)

	count, err := migrator.MigrateUp(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, count)

	var tables int
	err = s.db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'rounds'").Scan(&tables)
	s.Require().NoError(err)
	s.Equal(1, tables)
}

func (s *MigrationsTestSuite) TestMigrateUpIsIdempotent() {
	migrator := NewEmbeddedMigrator(s.db, logging.NewNop())

	_, err := migrator.MigrateUp(s.ctx)
	s.Require().NoError(err)

	count, err := migrator.MigrateUp(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, count)

	applied, err := migrator.GetAppliedMigrations(s.ctx)
	s.Require().NoError(err)
	s.Equal(map[string]bool{"001": true, "002": true}, applied)
}

func (s *MigrationsTestSuite) TestMigrationsRunInVersionOrder() {
	fsys := fstest.MapFS{
		"m/002_add_name.sql": {Data: []byte("ALTER TABLE things ADD COLUMN name TEXT;")},
		"m/001_things.sql":   {Data: []byte("CREATE TABLE things (id INTEGER PRIMARY KEY);")},
		"m/README.md":        {Data: []byte("not a migration")},
	}
	migrator := NewMigrator(s.db, fsys, "m", logging.NewNop())

	count, err := migrator.MigrateUp(s.ctx)

	s.Require().NoError(err)
	s.Equal(2, count)
	_, err = s.db.Exec("INSERT INTO things (id, name) VALUES (1, 'x')")
	s.NoError(err)
}

func (s *MigrationsTestSuite) TestInvalidFilename() {
	fsys := fstest.MapFS{
		"m/bad.sql": {Data: []byte("SELECT 1;")},
	}
	migrator := NewMigrator(s.db, fsys, "m", logging.NewNop())

	_, err := migrator.LoadMigrations()

	s.ErrorContains(err, "invalid migration filename")
}

func (s *MigrationsTestSuite) TestFailedMigrationIsNotRecorded() {
	fsys := fstest.MapFS{
		"m/001_broken.sql": {Data: []byte("CREATE TABLE oops (")},
	}
	migrator := NewMigrator(s.db, fsys, "m", logging.NewNop())

	_, err := migrator.MigrateUp(s.ctx)
	s.Error(err)

	applied, err := migrator.GetAppliedMigrations(s.ctx)
	s.Require().NoError(err)
	s.Empty(applied)
}
