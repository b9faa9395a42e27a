package tracklist

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"spinscan/internal/logging"
)

// Catalog holds the live tracklist and applies admin edits through a Store.
// Scans read a Snapshot so edits never change a database mid-scan.
type Catalog struct {
	mu     sync.RWMutex
	db     *Database
	store  Store
	logger *slog.Logger
}

// OpenCatalog loads the current database from store.
func OpenCatalog(ctx context.Context, store Store, logger *slog.Logger) (*Catalog, error) {
	c := &Catalog{
		store:  store,
		logger: logging.NewComponentLogger(logger, "tracklist"),
	}
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload replaces the in-memory database with the stored copy.
func (c *Catalog) Reload(ctx context.Context) error {
	db, err := c.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load tracklist: %w", err)
	}
	c.mu.Lock()
	c.db = db
	c.mu.Unlock()
	c.logger.Debug("tracklist loaded",
		logging.Int("artist_count", db.Len()),
		logging.Int("song_count", db.SongCount()))
	return nil
}

// Snapshot returns a deep copy of the current database.
func (c *Catalog) Snapshot() *Database {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db.Clone()
}

// Canonicalize resolves a pair against the current database.
func (c *Catalog) Canonicalize(artist, song string) (Canonical, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db.Canonicalize(artist, song)
}

// AddSongs appends songs to artist and persists the change.
func (c *Catalog) AddSongs(ctx context.Context, artist string, songs ...string) (int, error) {
	var added int
	err := c.update(ctx, func(db *Database) error {
		var err error
		added, err = db.AddSongs(artist, songs...)
		return err
	})
	if err != nil {
		return 0, err
	}
	c.logger.Info("tracklist songs added",
		logging.String("artist", artist),
		logging.Int("added", added))
	return added, nil
}

// RemoveSong deletes a song and persists the change.
func (c *Catalog) RemoveSong(ctx context.Context, artist, song string) error {
	if err := c.update(ctx, func(db *Database) error { return db.RemoveSong(artist, song) }); err != nil {
		return err
	}
	c.logger.Info("tracklist song removed", logging.String("artist", artist), logging.String("song", song))
	return nil
}

// RemoveArtist deletes an artist and persists the change.
func (c *Catalog) RemoveArtist(ctx context.Context, artist string) error {
	if err := c.update(ctx, func(db *Database) error { return db.RemoveArtist(artist) }); err != nil {
		return err
	}
	c.logger.Info("tracklist artist removed", logging.String("artist", artist))
	return nil
}

// RenameArtist renames an artist key and persists the change.
func (c *Catalog) RenameArtist(ctx context.Context, oldName, newName string) error {
	if err := c.update(ctx, func(db *Database) error { return db.RenameArtist(oldName, newName) }); err != nil {
		return err
	}
	c.logger.Info("tracklist artist renamed", logging.String("from", oldName), logging.String("to", newName))
	return nil
}

// Import merges Artist,Song rows from r and persists the result.
func (c *Catalog) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	entries, err := ReadCSV(r)
	if err != nil {
		return ImportResult{}, err
	}
	var result ImportResult
	err = c.update(ctx, func(db *Database) error {
		result = db.Merge(entries)
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}
	c.logger.Info("tracklist import complete",
		logging.Int("artists_added", result.ArtistsAdded),
		logging.Int("songs_added", result.SongsAdded))
	return result, nil
}

// Close closes the underlying store.
func (c *Catalog) Close() error {
	return c.store.Close()
}

// update applies fn to a copy, saves it, then swaps it in.
func (c *Catalog) update(ctx context.Context, fn func(*Database) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.db.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := c.store.Save(ctx, next); err != nil {
		logging.ErrorWithContext(c.logger, "tracklist save failed", "tracklist_save_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check that the tracklist path is writable"),
			logging.Alert("edit discarded"),
		)
		return fmt.Errorf("save tracklist: %w", err)
	}
	c.db = next
	return nil
}
