package config_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"spinscan/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("SPINSCAN_ARTISTS", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "spinscan")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Tracklist.SQLitePath != filepath.Join(wantData, "tracklist.db") {
		t.Fatalf("unexpected sqlite path: %q", cfg.Tracklist.SQLitePath)
	}
	if cfg.Tracklist.JSONPath != filepath.Join(wantData, "tracklist.json") {
		t.Fatalf("unexpected json path: %q", cfg.Tracklist.JSONPath)
	}
	if cfg.Tracklist.Backend != config.BackendSQLite || !cfg.Tracklist.Backup {
		t.Fatalf("unexpected tracklist defaults: %+v", cfg.Tracklist)
	}
	if cfg.Scan.YieldEveryRows != 1000 {
		t.Fatalf("unexpected yield cadence: %d", cfg.Scan.YieldEveryRows)
	}
	if cfg.Scan.HeaderRows != 1 {
		t.Fatalf("unexpected header rows: %d", cfg.Scan.HeaderRows)
	}
	if len(cfg.Scan.DefaultArtists) != 0 {
		t.Fatalf("expected no default artists, got %v", cfg.Scan.DefaultArtists)
	}
	if cfg.Export.Format != "table" {
		t.Fatalf("unexpected export format: %q", cfg.Export.Format)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "spinscan.toml")

	type payload struct {
		Paths struct {
			DataDir string `toml:"data_dir"`
		} `toml:"paths"`
		Tracklist struct {
			Backend string `toml:"backend"`
			Backup  bool   `toml:"backup"`
		} `toml:"tracklist"`
		Scan struct {
			YieldEveryRows int      `toml:"yield_every_rows"`
			DefaultArtists []string `toml:"default_artists"`
		} `toml:"scan"`
		Export struct {
			Format string `toml:"format"`
		} `toml:"export"`
	}
	custom := payload{}
	custom.Paths.DataDir = filepath.Join(tempDir, "data")
	custom.Tracklist.Backend = " JSON "
	custom.Tracklist.Backup = false
	custom.Scan.YieldEveryRows = 250
	custom.Scan.DefaultArtists = []string{" Bon Iver ", "", "Feist"}
	custom.Export.Format = "CSV"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected config at %q to exist, got %q exists=%v", configPath, resolved, exists)
	}
	if cfg.Tracklist.Backend != config.BackendJSON {
		t.Fatalf("expected json backend, got %q", cfg.Tracklist.Backend)
	}
	if cfg.Tracklist.JSONPath != filepath.Join(tempDir, "data", "tracklist.json") {
		t.Fatalf("unexpected json path: %q", cfg.Tracklist.JSONPath)
	}
	if cfg.Scan.YieldEveryRows != 250 {
		t.Fatalf("unexpected yield cadence: %d", cfg.Scan.YieldEveryRows)
	}
	if want := []string{"Bon Iver", "Feist"}; !reflect.DeepEqual(cfg.Scan.DefaultArtists, want) {
		t.Fatalf("DefaultArtists = %v, want %v", cfg.Scan.DefaultArtists, want)
	}
	if cfg.Export.Format != "csv" {
		t.Fatalf("expected lowercased export format, got %q", cfg.Export.Format)
	}
}

func TestLoadArtistsFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SPINSCAN_ARTISTS", "Bon Iver\nFeist, Sufjan Stevens")
	t.Chdir(t.TempDir())

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := []string{"Bon Iver", "Feist", "Sufjan Stevens"}
	if !reflect.DeepEqual(cfg.Scan.DefaultArtists, want) {
		t.Fatalf("DefaultArtists = %v, want %v", cfg.Scan.DefaultArtists, want)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"backend", func(c *config.Config) { c.Tracklist.Backend = "postgres" }, "tracklist.backend"},
		{"yield", func(c *config.Config) { c.Scan.YieldEveryRows = -1 }, "scan.yield_every_rows"},
		{"header rows", func(c *config.Config) { c.Scan.HeaderRows = -2 }, "scan.header_rows"},
		{"export", func(c *config.Config) { c.Export.Format = "html" }, "export.format"},
		{"level", func(c *config.Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"same paths", func(c *config.Config) { c.Tracklist.JSONPath = c.Tracklist.SQLitePath }, "must differ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Tracklist.SQLitePath = "/tmp/a.db"
			cfg.Tracklist.JSONPath = "/tmp/a.json"
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spinscan.toml")
	if err := os.WriteFile(path, []byte("[scan]\nyield_every = 5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestCreateSampleLoads(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if _, _, exists, err := config.Load(path); err != nil || !exists {
		t.Fatalf("sample config should load: exists=%v err=%v", exists, err)
	}
}
