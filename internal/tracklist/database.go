package tracklist

import (
	"fmt"
	"slices"
	"strings"
)

// Entry is one artist with its songs in stored order.
type Entry struct {
	Artist string   `json:"artist"`
	Songs  []string `json:"songs"`
}

// Database maps artist display names to ordered song titles.
type Database struct {
	artists []string
	songs   map[string][]string
}

// NewDatabase returns an empty database.
func NewDatabase() *Database {
	return &Database{songs: make(map[string][]string)}
}

// FromEntries builds a database from entries, merging repeated artists and
// dropping blank names and duplicate songs.
func FromEntries(entries []Entry) *Database {
	db := NewDatabase()
	for _, entry := range entries {
		artist := strings.TrimSpace(entry.Artist)
		if artist == "" {
			continue
		}
		db.ensureArtist(artist)
		db.addSongs(artist, entry.Songs)
	}
	return db
}

// Len returns the number of artists.
func (db *Database) Len() int {
	if db == nil {
		return 0
	}
	return len(db.artists)
}

// SongCount returns the number of songs across all artists.
func (db *Database) SongCount() int {
	if db == nil {
		return 0
	}
	total := 0
	for _, songs := range db.songs {
		total += len(songs)
	}
	return total
}

// Artists returns artist keys in insertion order.
func (db *Database) Artists() []string {
	if db == nil {
		return nil
	}
	return slices.Clone(db.artists)
}

// Has reports whether artist is an exact key.
func (db *Database) Has(artist string) bool {
	if db == nil {
		return false
	}
	_, ok := db.songs[artist]
	return ok
}

// Songs returns the songs stored under the exact artist key.
func (db *Database) Songs(artist string) []string {
	if db == nil {
		return nil
	}
	return slices.Clone(db.songs[artist])
}

// Entries returns the database contents in stored order.
func (db *Database) Entries() []Entry {
	if db == nil {
		return nil
	}
	entries := make([]Entry, 0, len(db.artists))
	for _, artist := range db.artists {
		entries = append(entries, Entry{Artist: artist, Songs: slices.Clone(db.songs[artist])})
	}
	return entries
}

// Clone returns a deep copy.
func (db *Database) Clone() *Database {
	if db == nil {
		return NewDatabase()
	}
	return FromEntries(db.Entries())
}

// AddSongs appends songs to artist, creating the artist when absent. Songs
// already listed with the exact same text are skipped. It returns the number
// of songs added.
func (db *Database) AddSongs(artist string, songs ...string) (int, error) {
	artist = strings.TrimSpace(artist)
	if artist == "" {
		return 0, fmt.Errorf("artist: %w", ErrEmptyName)
	}
	db.ensureArtist(artist)
	return db.addSongs(artist, songs), nil
}

// RemoveSong deletes one song from artist.
func (db *Database) RemoveSong(artist, song string) error {
	songs, ok := db.songs[artist]
	if !ok {
		return fmt.Errorf("%w: %q", ErrArtistNotFound, artist)
	}
	idx := slices.Index(songs, song)
	if idx < 0 {
		return fmt.Errorf("%w: %q by %q", ErrSongNotFound, song, artist)
	}
	db.songs[artist] = slices.Delete(songs, idx, idx+1)
	return nil
}

// RemoveArtist deletes artist and all of its songs.
func (db *Database) RemoveArtist(artist string) error {
	if _, ok := db.songs[artist]; !ok {
		return fmt.Errorf("%w: %q", ErrArtistNotFound, artist)
	}
	delete(db.songs, artist)
	db.artists = slices.DeleteFunc(db.artists, func(name string) bool { return name == artist })
	return nil
}

// RenameArtist moves songs from oldName to newName, keeping oldName's
// position. When newName already exists the song lists are merged.
func (db *Database) RenameArtist(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("new artist: %w", ErrEmptyName)
	}
	songs, ok := db.songs[oldName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrArtistNotFound, oldName)
	}
	if oldName == newName {
		return nil
	}
	if _, exists := db.songs[newName]; exists {
		db.addSongs(newName, songs)
		return db.RemoveArtist(oldName)
	}
	idx := slices.Index(db.artists, oldName)
	db.artists[idx] = newName
	delete(db.songs, oldName)
	db.songs[newName] = songs
	return nil
}

func (db *Database) ensureArtist(artist string) {
	if db.songs == nil {
		db.songs = make(map[string][]string)
	}
	if _, ok := db.songs[artist]; ok {
		return
	}
	db.artists = append(db.artists, artist)
	db.songs[artist] = nil
}

func (db *Database) addSongs(artist string, songs []string) int {
	added := 0
	for _, song := range songs {
		song = strings.TrimSpace(song)
		if song == "" || slices.Contains(db.songs[artist], song) {
			continue
		}
		db.songs[artist] = append(db.songs[artist], song)
		added++
	}
	return added
}
