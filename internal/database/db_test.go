package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T, name string) (*DB, func()) {
	db, err := New(Config{
		Path:    filepath.Join(t.TempDir(), name+".db"),
		Profile: ProfileStandard,
		Name:    name,
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return db, cleanup
}

func TestNew_CreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "runs.db")

	db, err := New(Config{Path: path, Name: "runs"})
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err, "the database file and its parent directories exist")
}

func TestMigrate_CreatesRunsTable(t *testing.T) {
	db, cleanup := setupTestDB(t, "runs")
	defer cleanup()

	require.NoError(t, db.Migrate())

	var name string
	err := db.Conn().QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'runs'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "runs", name)

	assert.NoError(t, db.Migrate(), "re-applying the schema is a no-op")
}

func TestMigrate_UnknownNameSkips(t *testing.T) {
	db, cleanup := setupTestDB(t, "scratch")
	defer cleanup()

	assert.NoError(t, db.Migrate(), "databases without a registered schema skip migration")
}

func TestHealthCheck(t *testing.T) {
	db, cleanup := setupTestDB(t, "runs")
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, db.HealthCheck(ctx))
}

func TestWALCheckpoint_DefaultsToTruncate(t *testing.T) {
	db, cleanup := setupTestDB(t, "runs")
	defer cleanup()

	require.NoError(t, db.Migrate())
	assert.NoError(t, db.WALCheckpoint(""))
}

func TestWithTransaction_CommitsAndRollsBack(t *testing.T) {
	conn, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	// One connection keeps every statement on the same in-memory database.
	conn.SetMaxOpenConns(1)

	_, err = conn.Exec(`CREATE TABLE entries (id INTEGER PRIMARY KEY, label TEXT)`)
	require.NoError(t, err)

	err = WithTransaction(conn, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO entries (label) VALUES ('kept')`)
		return err
	})
	assert.NoError(t, err)

	err = WithTransaction(conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO entries (label) VALUES ('dropped')`); err != nil {
			return err
		}
		return fmt.Errorf("abandon the write")
	})
	assert.Error(t, err, "the callback error surfaces to the caller")

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&count))
	assert.Equal(t, 1, count, "only the committed row survives")
}

func TestWithTransaction_NilConnection(t *testing.T) {
	err := WithTransaction(nil, func(tx *sql.Tx) error { return nil })
	assert.Error(t, err)
}
