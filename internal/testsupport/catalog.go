package testsupport

import (
	"context"
	"testing"

	"spinscan/internal/config"
	"spinscan/internal/logging"
	"spinscan/internal/tracklist"
)

// MustOpenCatalog opens the configured tracklist catalog, seeds it with
// entries, and registers cleanup.
func MustOpenCatalog(t testing.TB, cfg *config.Config, entries ...tracklist.Entry) *tracklist.Catalog {
	t.Helper()

	ctx := context.Background()
	store, err := tracklist.OpenStore(ctx, cfg.Tracklist, logging.NewNop())
	if err != nil {
		t.Fatalf("tracklist.OpenStore: %v", err)
	}
	catalog, err := tracklist.OpenCatalog(ctx, store, logging.NewNop())
	if err != nil {
		store.Close()
		t.Fatalf("tracklist.OpenCatalog: %v", err)
	}
	t.Cleanup(func() {
		catalog.Close()
	})
	for _, entry := range entries {
		if _, err := catalog.AddSongs(ctx, entry.Artist, entry.Songs...); err != nil {
			t.Fatalf("seed %s: %v", entry.Artist, err)
		}
	}
	return catalog
}
