package tracklist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"spinscan/internal/logging"
)

// FallbackStore reads from Primary and falls back to Backup when Primary
// fails. Saves go to both; a save succeeds when either backend accepts it.
type FallbackStore struct {
	Primary Store
	Backup  Store
	logger  *slog.Logger
}

// NewFallbackStore pairs two stores.
func NewFallbackStore(primary, backup Store, logger *slog.Logger) *FallbackStore {
	return &FallbackStore{
		Primary: primary,
		Backup:  backup,
		logger:  logging.NewComponentLogger(logger, "tracklist"),
	}
}

// Load returns the primary copy, or the backup copy when the primary fails.
func (f *FallbackStore) Load(ctx context.Context) (*Database, error) {
	db, err := f.Primary.Load(ctx)
	if err == nil {
		return db, nil
	}
	logging.WarnWithContext(f.logger, "primary tracklist store unavailable; loading backup", "tracklist_load_fallback",
		logging.Error(err),
		logging.String(logging.FieldErrorHint, "check the primary tracklist path and permissions"),
		logging.String(logging.FieldImpact, "edits made since the last successful backup write may be missing"))

	backup, backupErr := f.Backup.Load(ctx)
	if backupErr != nil {
		return nil, fmt.Errorf("load tracklist: %w", errors.Join(err, backupErr))
	}
	return backup, nil
}

// Save writes db to both stores.
func (f *FallbackStore) Save(ctx context.Context, db *Database) error {
	primaryErr := f.Primary.Save(ctx, db)
	backupErr := f.Backup.Save(ctx, db)
	switch {
	case primaryErr != nil && backupErr != nil:
		return fmt.Errorf("save tracklist: %w", errors.Join(primaryErr, backupErr))
	case primaryErr != nil:
		logging.WarnWithContext(f.logger, "primary tracklist store rejected save; backup written", "tracklist_save_fallback",
			logging.Error(primaryErr),
			logging.String(logging.FieldImpact, "primary store is stale until the next successful save"))
	case backupErr != nil:
		logging.WarnWithContext(f.logger, "backup tracklist store rejected save", "tracklist_backup_failed",
			logging.Error(backupErr),
			logging.String(logging.FieldImpact, "fallback copy is stale"))
	}
	return nil
}

// Close closes both stores.
func (f *FallbackStore) Close() error {
	return errors.Join(f.Primary.Close(), f.Backup.Close())
}
