package tracklist

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"spinscan/internal/logging"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "tracklist.db")

	store, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer store.Close()

	empty, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load empty: %v", err)
	}
	if empty.Len() != 0 {
		t.Fatalf("expected empty database, got %d artists", empty.Len())
	}

	db := sampleDatabase()
	if _, err := db.AddSongs("Sufjan Stevens"); err != nil {
		t.Fatalf("AddSongs: %v", err)
	}
	if err := store.Save(ctx, db); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(loaded.Entries(), db.Entries()) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", loaded.Entries(), db.Entries())
	}

	if err := db.RemoveArtist("Feist"); err != nil {
		t.Fatalf("RemoveArtist: %v", err)
	}
	if err := store.Save(ctx, db); err != nil {
		t.Fatalf("Save after edit: %v", err)
	}
	reloaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load after edit: %v", err)
	}
	if got, want := reloaded.Artists(), []string{"Bon Iver", "Sufjan Stevens"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Artists() = %v, want %v", got, want)
	}
}

func TestSQLiteStoreReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tracklist.db")

	store, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := store.Save(ctx, sampleDatabase()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	db, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if db.SongCount() != 4 {
		t.Fatalf("SongCount() = %d, want 4", db.SongCount())
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "tracklist.json")
	store := NewJSONStore(path)
	defer store.Close()

	db, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if db.Len() != 0 {
		t.Fatal("expected empty database for missing file")
	}

	if err := store.Save(ctx, sampleDatabase()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be renamed away, stat err=%v", err)
	}
	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(loaded.Entries(), sampleDatabase().Entries()) {
		t.Fatalf("round trip mismatch: %+v", loaded.Entries())
	}
}

func TestJSONStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracklist.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := NewJSONStore(path)
	defer store.Close()
	if _, err := store.Load(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}

type failingStore struct {
	err   error
	saves int
}

func (f *failingStore) Load(context.Context) (*Database, error) { return nil, f.err }

func (f *failingStore) Save(context.Context, *Database) error {
	f.saves++
	return f.err
}

func (f *failingStore) Close() error { return nil }

func TestFallbackStoreLoadsBackup(t *testing.T) {
	ctx := context.Background()
	primary := &failingStore{err: errors.New("disk offline")}
	backup := NewMemoryStore(sampleDatabase())
	store := NewFallbackStore(primary, backup, logging.NewNop())

	db, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if db.Len() != 2 {
		t.Fatalf("expected backup contents, got %d artists", db.Len())
	}

	if err := store.Save(ctx, NewDatabase()); err != nil {
		t.Fatalf("Save should succeed when backup accepts it: %v", err)
	}
	if primary.saves != 1 {
		t.Fatalf("expected primary save attempt, got %d", primary.saves)
	}
}

func TestFallbackStoreBothFail(t *testing.T) {
	ctx := context.Background()
	store := NewFallbackStore(
		&failingStore{err: errors.New("primary down")},
		&failingStore{err: errors.New("backup down")},
		nil,
	)
	if _, err := store.Load(ctx); err == nil || !strings.Contains(err.Error(), "backup down") {
		t.Fatalf("expected joined load error, got %v", err)
	}
	if err := store.Save(ctx, NewDatabase()); err == nil {
		t.Fatal("expected save error when both stores fail")
	}
}

func TestCatalogEditsPersist(t *testing.T) {
	ctx := context.Background()
	store := NewJSONStore(filepath.Join(t.TempDir(), "tracklist.json"))
	catalog, err := OpenCatalog(ctx, store, logging.NewNop())
	if err != nil {
		t.Fatalf("OpenCatalog: %v", err)
	}
	defer catalog.Close()

	if _, err := catalog.AddSongs(ctx, "Bon Iver", "Skinny Love", "Holocene"); err != nil {
		t.Fatalf("AddSongs: %v", err)
	}
	snapshot := catalog.Snapshot()

	if err := catalog.RenameArtist(ctx, "Bon Iver", "Bon Iver & Friends"); err != nil {
		t.Fatalf("RenameArtist: %v", err)
	}
	if !snapshot.Has("Bon Iver") {
		t.Fatal("snapshot must not observe later edits")
	}

	if err := catalog.Reload(ctx); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	got, ok := catalog.Canonicalize("bon iver and friends", "holocene")
	if !ok || got.Artist != "Bon Iver & Friends" || got.Song != "Holocene" {
		t.Fatalf("Canonicalize after reload = %+v, %v", got, ok)
	}

	if err := catalog.RemoveSong(ctx, "Bon Iver & Friends", "Nope"); !errors.Is(err, ErrSongNotFound) {
		t.Fatalf("expected ErrSongNotFound, got %v", err)
	}
	if err := catalog.RemoveArtist(ctx, "Bon Iver & Friends"); err != nil {
		t.Fatalf("RemoveArtist: %v", err)
	}
	if catalog.Snapshot().Len() != 0 {
		t.Fatal("expected empty catalog")
	}
}

func TestCatalogFailedSaveKeepsState(t *testing.T) {
	ctx := context.Background()
	logPath := filepath.Join(t.TempDir(), "spinscan.log")
	logger, err := logging.New(logging.Options{Format: "json", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	store := &failingStore{}
	catalog := &Catalog{db: sampleDatabase(), store: store, logger: logger}

	store.err = errors.New("read-only")
	if _, err := catalog.AddSongs(ctx, "Feist", "Limit To Your Love"); err == nil {
		t.Fatal("expected save error")
	}
	if len(catalog.Snapshot().Songs("Feist")) != 2 {
		t.Fatal("failed save must not change the live database")
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &record); err != nil {
		t.Fatalf("decode log record %q: %v", data, err)
	}
	if record["level"] != "error" || record[logging.FieldEventType] != "tracklist_save_failed" {
		t.Fatalf("unexpected record %v", record)
	}
	if record[logging.FieldAlert] != "edit discarded" || record["error"] != "read-only" {
		t.Fatalf("expected alert and error fields, got %v", record)
	}
}

func TestCatalogImport(t *testing.T) {
	ctx := context.Background()
	catalog, err := OpenCatalog(ctx, NewMemoryStore(sampleDatabase()), nil)
	if err != nil {
		t.Fatalf("OpenCatalog: %v", err)
	}
	input := "Artist,Song\nFeist,Mushaboom\nFeist,The Park\nSufjan Stevens,Chicago\n,orphan\n"
	result, err := catalog.Import(ctx, strings.NewReader(input))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if result.ArtistsAdded != 1 || result.SongsAdded != 2 {
		t.Fatalf("Import result = %+v, want 1 artist and 2 songs", result)
	}
	db := catalog.Snapshot()
	if got, want := db.Songs("Feist"), []string{"Mushaboom", "1234", "The Park"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Songs(Feist) = %v, want %v", got, want)
	}
}

func TestReadCSVWithoutHeader(t *testing.T) {
	entries, err := ReadCSV(strings.NewReader("Bon Iver,Perth\nBon Iver, Towers\nFeist\n"))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	want := []Entry{
		{Artist: "Bon Iver", Songs: []string{"Perth", "Towers"}},
		{Artist: "Feist"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Fatalf("ReadCSV = %+v, want %+v", entries, want)
	}
}
