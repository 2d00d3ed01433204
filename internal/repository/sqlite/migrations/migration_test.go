package migrations

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations_CreatesSchema(t *testing.T) {
	db := openTestDB(t)

	err := RunMigrations(db)
	require.NoError(t, err)

	// entries table exists and accepts rows
	_, err = db.Exec(`INSERT INTO entries (start_time, comment) VALUES ('2026-08-28T09:00:00Z', 'review parser')`)
	require.NoError(t, err)

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db))

	var applied int
	err := db.QueryRow(`SELECT COUNT(*) FROM migrations`).Scan(&applied)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
}

func TestRunMigrations_IDsNotReused(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, RunMigrations(db))

	res, err := db.Exec(`INSERT INTO entries (start_time, comment) VALUES ('2026-08-28T09:00:00Z', 'first')`)
	require.NoError(t, err)
	firstID, err := res.LastInsertId()
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM entries WHERE id = ?`, firstID)
	require.NoError(t, err)

	res, err = db.Exec(`INSERT INTO entries (start_time, comment) VALUES ('2026-08-28T10:00:00Z', 'second')`)
	require.NoError(t, err)
	secondID, err := res.LastInsertId()
	require.NoError(t, err)

	assert.Greater(t, secondID, firstID)
}

func TestExtractVersion(t *testing.T) {
	assert.Equal(t, 1, extractVersion("000001_create_entries.up.sql"))
	assert.Equal(t, 12, extractVersion("000012_whatever.up.sql"))
	assert.Equal(t, 0, extractVersion("not_a_number_first.up.sql"))
	assert.Equal(t, 0, extractVersion("nounderscores"))
}
