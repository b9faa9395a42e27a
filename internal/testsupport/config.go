package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"spinscan/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The tracklist uses the sqlite backend without a JSON mirror unless an
// option says otherwise.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.ExportDir = filepath.Join(base, "exports")
	cfgVal.Tracklist.SQLitePath = filepath.Join(base, "data", "tracklist.db")
	cfgVal.Tracklist.JSONPath = filepath.Join(base, "data", "tracklist.json")
	cfgVal.Tracklist.Backup = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	if err := os.MkdirAll(builder.cfg.Paths.ExportDir, 0o755); err != nil {
		t.Fatalf("mkdir export dir: %v", err)
	}
	return builder.cfg
}

// WithBackend selects the tracklist backend.
func WithBackend(backend string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Tracklist.Backend = backend
	}
}

// WithBackup enables mirroring to the secondary backend.
func WithBackup() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Tracklist.Backup = true
	}
}

// WithArtists sets the default roster.
func WithArtists(artists ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scan.DefaultArtists = artists
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
