package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"worklog/internal/errors"
	"worklog/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Create operations
	CreateEntry(ctx context.Context, entry *Entry) error

	// Read operations
	GetEntry(ctx context.Context, id int64) (*Entry, error)
	GetLastEntry(ctx context.Context) (*Entry, error)
	ListEntriesSince(ctx context.Context, after time.Time) ([]*Entry, error)
	ListOpenEntries(ctx context.Context) ([]*Entry, error)

	// Update operations
	UpdateEntry(ctx context.Context, entry *Entry) error
	CloseOpenEntries(ctx context.Context, end time.Time) ([]*Entry, error)

	// Delete operations
	DeleteEntry(ctx context.Context, id int64) error

	// Compound operations
	MergeEntries(ctx context.Context, target *Entry, sourceIDs []int64) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance. The parent directory is
// created if necessary, WAL mode and foreign keys are enabled, and
// pending migrations are applied.
func New(dbPath string) (*SQLiteRepository, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.NewDatabaseError("create database directory", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("set WAL mode", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("enable foreign keys", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateEntry inserts a new entry and sets its assigned id
func (r *SQLiteRepository) CreateEntry(ctx context.Context, entry *Entry) error {
	query := `
	INSERT INTO entries (start_time, end_time, comment)
	VALUES (?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, FormatTimeForDB(entry.StartTime), FormatTimePtrForDB(entry.EndTime), entry.Comment)
	if err != nil {
		return err
	}

	entry.ID = id
	return nil
}

// GetEntry retrieves an entry by ID
func (r *SQLiteRepository) GetEntry(ctx context.Context, id int64) (*Entry, error) {
	query := `
	SELECT id, start_time, end_time, comment
	FROM entries
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanEntry, "entry", fmt.Sprintf("%d", id), id)
}

// GetLastEntry retrieves the most recently created entry (maximum id)
func (r *SQLiteRepository) GetLastEntry(ctx context.Context) (*Entry, error) {
	query := `
	SELECT id, start_time, end_time, comment
	FROM entries
	ORDER BY id DESC
	LIMIT 1`

	return QuerySingle(ctx, r.db, query, ScanEntry, "entry", "latest")
}

// ListEntriesSince retrieves entries whose start time is strictly after
// the given instant, in creation order
func (r *SQLiteRepository) ListEntriesSince(ctx context.Context, after time.Time) ([]*Entry, error) {
	query := `
	SELECT id, start_time, end_time, comment
	FROM entries
	WHERE start_time > ?
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.db, query, ScanEntries, "entries", FormatTimeForDB(after))
}

// ListOpenEntries retrieves all entries without an end time
func (r *SQLiteRepository) ListOpenEntries(ctx context.Context) ([]*Entry, error) {
	query := `
	SELECT id, start_time, end_time, comment
	FROM entries
	WHERE end_time IS NULL
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.db, query, ScanEntries, "entries")
}

// UpdateEntry updates an existing entry
func (r *SQLiteRepository) UpdateEntry(ctx context.Context, entry *Entry) error {
	query := `
	UPDATE entries
	SET start_time = ?, end_time = ?, comment = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "entry", fmt.Sprintf("%d", entry.ID), FormatTimeForDB(entry.StartTime), FormatTimePtrForDB(entry.EndTime), entry.Comment, entry.ID)
}

// CloseOpenEntries sets the end time on every open entry in one
// transaction and returns the entries it closed. Returns an empty
// slice, not an error, when nothing is open.
func (r *SQLiteRepository) CloseOpenEntries(ctx context.Context, end time.Time) ([]*Entry, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `
	SELECT id, start_time, end_time, comment
	FROM entries
	WHERE end_time IS NULL
	ORDER BY id ASC`)
	if err != nil {
		return nil, HandleDatabaseError("query open entries", err)
	}
	open, err := ScanEntries(rows)
	rows.Close()
	if err != nil {
		return nil, HandleDatabaseError("scan open entries", err)
	}

	if len(open) == 0 {
		return []*Entry{}, nil
	}

	if _, err := tx.ExecContext(ctx, `UPDATE entries SET end_time = ? WHERE end_time IS NULL`, FormatTimeForDB(end)); err != nil {
		return nil, HandleDatabaseError("close open entries", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, HandleDatabaseError("commit transaction", err)
	}

	endTime := end
	for _, entry := range open {
		entry.EndTime = &endTime
	}
	return open, nil
}

// DeleteEntry deletes an entry by ID
func (r *SQLiteRepository) DeleteEntry(ctx context.Context, id int64) error {
	query := `DELETE FROM entries WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "entry", fmt.Sprintf("%d", id), id)
}

// MergeEntries rewrites the target entry and deletes every source entry
// in one transaction. If any source id is missing the whole operation
// is rolled back with a not found error.
func (r *SQLiteRepository) MergeEntries(ctx context.Context, target *Entry, sourceIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
	UPDATE entries
	SET start_time = ?, end_time = ?, comment = ?
	WHERE id = ?`, FormatTimeForDB(target.StartTime), FormatTimePtrForDB(target.EndTime), target.Comment, target.ID)
	if err != nil {
		return HandleDatabaseError("update merge target", err)
	}
	if err := ValidateRowsAffected(result, "entry", fmt.Sprintf("%d", target.ID)); err != nil {
		return err
	}

	for _, id := range sourceIDs {
		result, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
		if err != nil {
			return HandleDatabaseError("delete merge source", err)
		}
		if err := ValidateRowsAffected(result, "entry", fmt.Sprintf("%d", id)); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit transaction", err)
	}
	return nil
}
