package matches

import (
	"cmp"
	"maps"
	"slices"

	"spinscan/internal/roster"
)

// StationCount is the number of spins a song received on one station.
type StationCount struct {
	Station string `json:"station"`
	Spins   int    `json:"spins"`
}

// SongGroup collects the station counts for one song.
type SongGroup struct {
	Song     string         `json:"song"`
	Spins    int            `json:"spins"`
	Stations []StationCount `json:"stations"`
}

// ArtistGroup collects every matched song for one artist.
type ArtistGroup struct {
	Artist string      `json:"artist"`
	Spins  int         `json:"spins"`
	Songs  []SongGroup `json:"songs"`
}

type songKey struct {
	artist, song string
}

// Group counts spins per (artist, song, station). Artists follow roster
// order, songs and stations sort ignoring case, so the result depends only
// on the multiset of matches and not on traversal order.
func Group(items []Match, r *roster.Roster) []ArtistGroup {
	counts := make(map[songKey]map[string]int)
	for _, m := range items {
		key := songKey{artist: m.Artist, song: m.Song}
		if counts[key] == nil {
			counts[key] = make(map[string]int)
		}
		counts[key][m.Station]++
	}

	rank, _ := ranker(r)
	keys := slices.Collect(maps.Keys(counts))
	slices.SortFunc(keys, func(a, b songKey) int {
		if c := cmp.Compare(rank(a.artist), rank(b.artist)); c != 0 {
			return c
		}
		if c := compareText(a.artist, b.artist); c != 0 {
			return c
		}
		return compareText(a.song, b.song)
	})

	var groups []ArtistGroup
	for _, key := range keys {
		if len(groups) == 0 || groups[len(groups)-1].Artist != key.artist {
			groups = append(groups, ArtistGroup{Artist: key.artist})
		}
		artist := &groups[len(groups)-1]

		song := SongGroup{Song: key.song}
		stations := slices.SortedFunc(maps.Keys(counts[key]), compareText)
		for _, station := range stations {
			spins := counts[key][station]
			song.Stations = append(song.Stations, StationCount{Station: station, Spins: spins})
			song.Spins += spins
		}
		artist.Songs = append(artist.Songs, song)
		artist.Spins += song.Spins
	}
	return groups
}
