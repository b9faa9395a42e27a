package tracklist

import (
	"strings"

	"spinscan/internal/textutil"
)

// Canonical is the stored spelling of an artist and song.
type Canonical struct {
	Artist string
	Song   string
}

// Canonicalize finds the stored spelling for an extracted pair. ok is false
// when no artist key clears textutil.FuzzyThreshold or no stored song for
// that artist matches; callers then keep the raw pair.
func (db *Database) Canonicalize(artist, song string) (Canonical, bool) {
	key, ok := db.ResolveArtist(artist)
	if !ok {
		return Canonical{}, false
	}
	title, ok := matchSong(db.songs[key], song)
	if !ok {
		return Canonical{}, false
	}
	return Canonical{Artist: key, Song: title}, true
}

// ResolveArtist returns the artist key most similar to name when it clears
// textutil.FuzzyThreshold. The first key in stored order wins ties.
func (db *Database) ResolveArtist(name string) (string, bool) {
	if db == nil || len(db.artists) == 0 {
		return "", false
	}
	target := textutil.Normalize(name)
	best, bestScore := "", 0.0
	for _, key := range db.artists {
		score := textutil.NormalizedSimilarity(target, textutil.Normalize(key))
		if score > bestScore {
			best, bestScore = key, score
		}
	}
	if best == "" || bestScore < textutil.FuzzyThreshold {
		return "", false
	}
	return best, true
}

// matchSong prefers an exact or containment match in stored order and falls
// back to the most similar title.
func matchSong(songs []string, song string) (string, bool) {
	target := textutil.Normalize(song)
	// An all-punctuation title would be contained in every stored song.
	if target == "" {
		return "", false
	}
	normalized := make([]string, len(songs))
	for i, candidate := range songs {
		norm := textutil.Normalize(candidate)
		normalized[i] = norm
		if norm == "" {
			continue
		}
		if norm == target || strings.Contains(norm, target) || strings.Contains(target, norm) {
			return candidate, true
		}
	}

	best, bestScore := -1, 0.0
	for i, norm := range normalized {
		score := textutil.NormalizedSimilarity(target, norm)
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 || bestScore < textutil.FuzzyThreshold {
		return "", false
	}
	return songs[best], true
}
