package tracklist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"spinscan/internal/fileutil"
)

const (
	jsonFormatVersion = 1
	lockRetryDelay    = 50 * time.Millisecond
)

type jsonDocument struct {
	Version int       `json:"version"`
	SavedAt time.Time `json:"saved_at"`
	Artists []Entry   `json:"artists"`
}

// JSONStore persists the tracklist as a JSON document guarded by an
// advisory lock file so concurrent CLI invocations do not interleave writes.
type JSONStore struct {
	path string
	lock *flock.Flock
}

// NewJSONStore returns a store backed by the file at path. The file is
// created on first Save.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path, lock: flock.New(path + ".lock")}
}

// Path returns the document location.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the document. A missing file yields an empty database.
func (s *JSONStore) Load(ctx context.Context) (*Database, error) {
	if err := s.ensureDir(); err != nil {
		return nil, err
	}
	locked, err := s.lock.TryRLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("acquire read lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("acquire read lock: %s is busy", s.lock.Path())
	}
	defer func() { _ = s.lock.Unlock() }()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewDatabase(), nil
		}
		return nil, fmt.Errorf("read tracklist file: %w", err)
	}
	if len(data) == 0 {
		return NewDatabase(), nil
	}

	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse tracklist file: %w", err)
	}
	if doc.Version > jsonFormatVersion {
		return nil, fmt.Errorf("tracklist file version %d is newer than supported version %d", doc.Version, jsonFormatVersion)
	}
	return FromEntries(doc.Artists), nil
}

// Save writes the document atomically via a temp file.
func (s *JSONStore) Save(ctx context.Context, db *Database) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquire write lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("acquire write lock: %s is busy", s.lock.Path())
	}
	defer func() { _ = s.lock.Unlock() }()

	doc := jsonDocument{
		Version: jsonFormatVersion,
		SavedAt: time.Now().UTC(),
		Artists: db.Entries(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tracklist: %w", err)
	}

	if err := fileutil.WriteFileAtomic(s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write tracklist: %w", err)
	}
	return nil
}

// Close releases the lock handle.
func (s *JSONStore) Close() error {
	return s.lock.Close()
}

func (s *JSONStore) ensureDir() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create tracklist directory: %w", err)
	}
	return nil
}
