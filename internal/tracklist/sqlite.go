package tracklist

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema changes.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// SQLiteStore persists the tracklist in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens or creates the tracklist database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create tracklist directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &SQLiteStore{db: db, path: path}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load reads every artist and song in stored order.
func (s *SQLiteStore) Load(ctx context.Context) (*Database, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT a.name, s.title
        FROM artists a
        LEFT JOIN songs s ON s.artist_id = a.id
        ORDER BY a.position, s.position`)
	if err != nil {
		return nil, fmt.Errorf("query tracklist: %w", err)
	}
	defer rows.Close()

	db := NewDatabase()
	for rows.Next() {
		var artist string
		var title sql.NullString
		if err := rows.Scan(&artist, &title); err != nil {
			return nil, fmt.Errorf("scan tracklist row: %w", err)
		}
		db.ensureArtist(artist)
		if title.Valid {
			db.addSongs(artist, []string{title.String})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracklist: %w", err)
	}
	return db, nil
}

// Save replaces the stored tracklist with db in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, db *Database) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM songs"); err != nil {
		return fmt.Errorf("clear songs: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM artists"); err != nil {
		return fmt.Errorf("clear artists: %w", err)
	}

	for position, entry := range db.Entries() {
		res, err := tx.ExecContext(ctx, "INSERT INTO artists (name, position) VALUES (?, ?)", entry.Artist, position)
		if err != nil {
			return fmt.Errorf("insert artist %q: %w", entry.Artist, err)
		}
		artistID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
		for songPos, title := range entry.Songs {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO songs (artist_id, title, position) VALUES (?, ?, ?)",
				artistID, title, songPos,
			); err != nil {
				return fmt.Errorf("insert song %q: %w", title, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to recreate it)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *SQLiteStore) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}
