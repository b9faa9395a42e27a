package roster

import "spinscan/internal/textutil"

// Resolution is the roster entry closest to a candidate string.
type Resolution struct {
	Artist string
	Score  float64
}

// Found reports whether any entry scored above zero.
func (r Resolution) Found() bool {
	return r.Artist != "" && r.Score > 0
}

// Confident reports whether the resolution clears textutil.FuzzyThreshold.
func (r Resolution) Confident() bool {
	return r.Found() && r.Score >= textutil.FuzzyThreshold
}

// BestMatch returns the entry with the highest similarity to candidate. The
// earliest entry wins ties. A zero Resolution means every entry scored 0.
func (r *Roster) BestMatch(candidate string) Resolution {
	if r == nil {
		return Resolution{}
	}
	norm := textutil.Normalize(candidate)
	var best Resolution
	for i, entry := range r.entries {
		score := textutil.NormalizedSimilarity(norm, r.normalized[i])
		if score > best.Score {
			best = Resolution{Artist: entry, Score: score}
		}
	}
	return best
}
