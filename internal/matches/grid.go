package matches

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"spinscan/internal/roster"
	"spinscan/internal/tracklist"
)

// Grid enumerates every known song per roster artist with spin counts per
// station. Counts in each row are parallel to Stations.
type Grid struct {
	Stations []string     `json:"stations"`
	Artists  []GridArtist `json:"artists"`
}

// GridArtist is one roster artist's block in the grid.
type GridArtist struct {
	Artist string    `json:"artist"`
	Label  string    `json:"label"`
	Spins  int       `json:"spins"`
	Rows   []GridRow `json:"rows"`
}

// GridRow is one song line. Canonical is false for matched songs the
// tracklist does not know.
type GridRow struct {
	Song      string `json:"song"`
	Canonical bool   `json:"canonical"`
	Counts    []int  `json:"counts"`
	Spins     int    `json:"spins"`
}

// BuildGrid lays out spins for every roster artist. Tracklist songs come
// first in stored order, followed by matched songs the tracklist lacks.
// Stations keep the given order; stations seen only in items are appended
// in order of first appearance. db may be nil.
func BuildGrid(items []Match, stations []string, r *roster.Roster, db *tracklist.Database) Grid {
	grid := Grid{Stations: mergeStations(stations, items)}
	column := make(map[string]int, len(grid.Stations))
	for i, station := range grid.Stations {
		column[station] = i
	}

	caser := cases.Title(language.English)
	used := make([]bool, len(items))
	for _, src := range gridSources(r, db) {
		name := src.entries[0]
		if src.known {
			name = src.key
		}
		block := GridArtist{Artist: name, Label: displayLabel(caser, name)}

		var mine []Match
		for i, m := range items {
			if used[i] {
				continue
			}
			if src.owns(m.Artist) {
				used[i] = true
				mine = append(mine, m)
			}
		}

		rowIndex := make(map[string]int)
		if src.known {
			for _, song := range db.Songs(src.key) {
				fold := strings.ToLower(song)
				if _, dup := rowIndex[fold]; dup {
					continue
				}
				rowIndex[fold] = len(block.Rows)
				block.Rows = append(block.Rows, GridRow{Song: song, Canonical: true, Counts: make([]int, len(grid.Stations))})
			}
		}
		canonicalRows := len(block.Rows)
		for _, m := range mine {
			fold := strings.ToLower(m.Song)
			idx, ok := rowIndex[fold]
			if !ok {
				idx = len(block.Rows)
				rowIndex[fold] = idx
				block.Rows = append(block.Rows, GridRow{Song: m.Song, Counts: make([]int, len(grid.Stations))})
			}
			row := &block.Rows[idx]
			row.Counts[column[m.Station]]++
			row.Spins++
			block.Spins++
		}
		extra := block.Rows[canonicalRows:]
		slices.SortStableFunc(extra, func(a, b GridRow) int { return compareText(a.Song, b.Song) })

		grid.Artists = append(grid.Artists, block)
	}
	return grid
}

// gridSource is one grid block: the roster entries that resolve to the same
// tracklist artist, or a single unknown entry.
type gridSource struct {
	entries []string
	key     string
	known   bool
}

func (s *gridSource) owns(artist string) bool {
	if s.known && artist == s.key {
		return true
	}
	for _, entry := range s.entries {
		if strings.EqualFold(artist, entry) {
			return true
		}
	}
	return false
}

// gridSources folds roster entries into blocks in roster order. Entries equal
// ignoring case, or resolving to an already claimed tracklist artist, join the
// earlier block.
func gridSources(r *roster.Roster, db *tracklist.Database) []*gridSource {
	var sources []*gridSource
	seen := make(map[string]struct{})
	byKey := make(map[string]*gridSource)
	for _, entry := range r.Entries() {
		fold := strings.ToLower(entry)
		if _, dup := seen[fold]; dup {
			continue
		}
		seen[fold] = struct{}{}

		key, known := db.ResolveArtist(entry)
		if known {
			if src, ok := byKey[key]; ok {
				src.entries = append(src.entries, entry)
				continue
			}
		}
		src := &gridSource{entries: []string{entry}, key: key, known: known}
		if known {
			byKey[key] = src
		}
		sources = append(sources, src)
	}
	return sources
}

func mergeStations(stations []string, items []Match) []string {
	out := make([]string, 0, len(stations))
	seen := make(map[string]struct{}, len(stations))
	add := func(station string) {
		if _, ok := seen[station]; ok {
			return
		}
		seen[station] = struct{}{}
		out = append(out, station)
	}
	for _, station := range stations {
		add(station)
	}
	for _, m := range items {
		add(m.Station)
	}
	return out
}

// displayLabel title-cases names typed entirely in lower case and keeps any
// deliberate capitalization.
func displayLabel(caser cases.Caser, name string) string {
	if strings.IndexFunc(name, unicode.IsUpper) >= 0 {
		return name
	}
	return caser.String(name)
}
