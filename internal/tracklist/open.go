package tracklist

import (
	"context"
	"fmt"
	"log/slog"

	"spinscan/internal/config"
)

// OpenStore builds the store described by cfg. With Backup enabled the
// other backend mirrors every save and serves loads when the primary fails.
func OpenStore(ctx context.Context, cfg config.Tracklist, logger *slog.Logger) (Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		primary, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite tracklist: %w", err)
		}
		if !cfg.Backup {
			return primary, nil
		}
		return NewFallbackStore(primary, NewJSONStore(cfg.JSONPath), logger), nil
	case config.BackendJSON:
		primary := NewJSONStore(cfg.JSONPath)
		if !cfg.Backup {
			return primary, nil
		}
		backup, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite backup: %w", err)
		}
		return NewFallbackStore(primary, backup, logger), nil
	case config.BackendMemory:
		return NewMemoryStore(NewDatabase()), nil
	default:
		return nil, fmt.Errorf("tracklist.backend: unsupported value %q", cfg.Backend)
	}
}
