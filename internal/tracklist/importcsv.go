package tracklist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ImportResult counts what a merge added.
type ImportResult struct {
	ArtistsAdded int
	SongsAdded   int
}

// ReadCSV parses Artist,Song rows. A first row whose cells read "artist" and
// "song" is treated as a header. Rows with a blank artist are skipped and
// repeated artists are merged in first-seen order.
func ReadCSV(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var entries []Entry
	index := make(map[string]int)
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tracklist csv: %w", err)
		}
		if first {
			first = false
			if isHeader(record) {
				continue
			}
		}
		if len(record) == 0 {
			continue
		}
		artist := strings.TrimSpace(record[0])
		if artist == "" {
			continue
		}
		pos, ok := index[artist]
		if !ok {
			pos = len(entries)
			index[artist] = pos
			entries = append(entries, Entry{Artist: artist})
		}
		if len(record) > 1 {
			if song := strings.TrimSpace(record[1]); song != "" {
				entries[pos].Songs = append(entries[pos].Songs, song)
			}
		}
	}
	return entries, nil
}

// Merge adds entries to db, keeping existing order and skipping songs that
// are already stored.
func (db *Database) Merge(entries []Entry) ImportResult {
	var result ImportResult
	for _, entry := range entries {
		artist := strings.TrimSpace(entry.Artist)
		if artist == "" {
			continue
		}
		if !db.Has(artist) {
			result.ArtistsAdded++
		}
		db.ensureArtist(artist)
		result.SongsAdded += db.addSongs(artist, entry.Songs)
	}
	return result
}

func isHeader(record []string) bool {
	if len(record) < 2 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(record[0]), "artist") &&
		strings.EqualFold(strings.TrimSpace(record[1]), "song")
}
