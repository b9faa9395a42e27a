package matches

import (
	"cmp"
	"slices"
	"strings"

	"spinscan/internal/roster"
)

// Sort returns the matches ordered by roster position of the artist, then by
// song ignoring case. Artists missing from the roster follow all roster
// artists, grouped by artist name. The input slice is not modified.
func Sort(items []Match, r *roster.Roster) []Match {
	out := make([]Match, len(items))
	copy(out, items)
	rank, absent := ranker(r)
	slices.SortStableFunc(out, func(a, b Match) int {
		ra, rb := rank(a.Artist), rank(b.Artist)
		if ra != rb {
			return cmp.Compare(ra, rb)
		}
		if ra == absent {
			if c := compareFold(a.Artist, b.Artist); c != 0 {
				return c
			}
		}
		return compareFold(a.Song, b.Song)
	})
	return out
}

// ranker maps an artist to its roster position; absent artists share the
// returned sentinel rank.
func ranker(r *roster.Roster) (func(string) int, int) {
	absent := r.Len()
	return func(artist string) int {
		if pos, ok := r.Position(artist); ok {
			return pos
		}
		return absent
	}, absent
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// compareText orders ignoring case first and falls back to exact bytes so
// distinct spellings never compare equal.
func compareText(a, b string) int {
	if c := compareFold(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
