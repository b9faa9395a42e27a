package textutil

import "github.com/agnivade/levenshtein"

// FuzzyThreshold is the minimum Similarity at which two values are treated as
// the same entity.
const FuzzyThreshold = 0.85

// Distance returns the unit-cost edit distance between a and b.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Similarity scores a and b in [0,1] after normalizing both sides.
// Two empty inputs are identical; exactly one empty input scores 0.
func Similarity(a, b string) float64 {
	na := Normalize(a)
	nb := Normalize(b)
	return NormalizedSimilarity(na, nb)
}

// NormalizedSimilarity scores two strings that are already in Normalize form.
func NormalizedSimilarity(na, nb string) float64 {
	switch {
	case na == "" && nb == "":
		return 1
	case na == "" || nb == "":
		return 0
	case na == nb:
		return 1
	}
	longest := max(runeLen(na), runeLen(nb))
	return 1 - float64(Distance(na, nb))/float64(longest)
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
