package preflight

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spinscan/internal/config"
	"spinscan/internal/tracklist"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckTracklist(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Tracklist{
		Backend:  config.BackendJSON,
		JSONPath: filepath.Join(dir, "tracklist.json"),
	}
	store := tracklist.NewJSONStore(cfg.JSONPath)
	db := tracklist.FromEntries([]tracklist.Entry{{Artist: "Bon Iver", Songs: []string{"Holocene", "Perth"}}})
	if err := store.Save(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	store.Close()

	result := CheckTracklist(context.Background(), cfg)
	if !result.Passed {
		t.Fatalf("expected pass, got %s", result.Detail)
	}
	if result.Detail != "json: 1 artists, 2 songs" {
		t.Fatalf("unexpected detail: %q", result.Detail)
	}

	if err := os.WriteFile(cfg.JSONPath, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckTracklist(context.Background(), cfg); result.Passed {
		t.Fatal("expected failure for corrupt tracklist")
	}
}

func TestRunAll(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.ExportDir = filepath.Join(base, "missing")
	cfg.Tracklist.Backend = config.BackendMemory
	cfg.Tracklist.Backup = false
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}

	results := RunAll(context.Background(), &cfg)
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if Passed(results) {
		t.Fatal("missing export directory should fail")
	}
	if !results[0].Passed || !results[1].Passed || results[2].Passed || !results[3].Passed {
		t.Fatalf("unexpected results: %+v", results)
	}
	if RunAll(context.Background(), nil) != nil {
		t.Fatal("nil config should produce no results")
	}
}
