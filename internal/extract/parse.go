package extract

import (
	"regexp"
	"strings"
)

// Pair is an extracted artist and song. The zero value means nothing was found.
type Pair struct {
	Artist string
	Song   string
}

// Empty reports whether either side is missing.
func (p Pair) Empty() bool {
	return p.Artist == "" || p.Song == ""
}

// Membership answers exact, case-insensitive roster lookups.
type Membership interface {
	Contains(name string) bool
}

// separators are tried in priority order; the first one present wins.
var separators = []string{" - ", " – ", " — ", " | ", " / ", " -- "}

var (
	byPattern          = regexp.MustCompile(`(?i)^(.+)\s+by[:\-]?\s+(.+)$`)
	attributionPattern = regexp.MustCompile(`(?i)\s+(?:now\s+on|playing\s+on|on)\s+.*$`)
	lastFirstPattern   = regexp.MustCompile(`^\s*([^,]+?)\s*,\s*([^,]+?)\s*$`)
)

// ParseCombined splits a single free-text field into an artist and song.
// Roster membership, not similarity, decides which side is the artist.
func ParseCombined(text string, roster Membership) Pair {
	text = strings.TrimSpace(text)
	if text == "" {
		return Pair{}
	}

	if idx := strings.LastIndex(text, "="); idx >= 0 {
		text = strings.TrimSpace(text[idx+1:])
		if pair, ok := parseKeyValue(text, roster); ok {
			return pair
		}
	}

	if pair, ok := parseByline(text); ok {
		return pair
	}

	if pair, ok := parseDelimited(text, roster); ok {
		return pair
	}
	return Pair{}
}

// parseKeyValue handles "Song-Artist" payloads where only a bare dash splits
// the two halves.
func parseKeyValue(text string, roster Membership) (Pair, bool) {
	if !strings.Contains(text, "-") || strings.Contains(text, " - ") {
		return Pair{}, false
	}
	idx := strings.LastIndex(text, "-")
	song := strings.TrimSpace(text[:idx])
	artist := swapLastFirst(strings.TrimSpace(text[idx+1:]))
	if !isMember(roster, artist) {
		return Pair{}, false
	}
	return Pair{Artist: artist, Song: song}, true
}

func parseByline(text string) (Pair, bool) {
	m := byPattern.FindStringSubmatch(text)
	if m == nil {
		return Pair{}, false
	}
	song := strings.TrimSpace(m[1])
	artist := strings.TrimSpace(attributionPattern.ReplaceAllString(m[2], ""))
	return Pair{Artist: artist, Song: song}, true
}

func parseDelimited(text string, roster Membership) (Pair, bool) {
	sep := ""
	for _, candidate := range separators {
		if strings.Contains(text, candidate) {
			sep = candidate
			break
		}
	}
	if sep == "" {
		return Pair{}, false
	}

	parts := strings.Split(text, sep)
	if len(parts) == 3 {
		middle := swapLastFirst(strings.TrimSpace(parts[1]))
		if isMember(roster, middle) {
			return Pair{Artist: middle, Song: strings.TrimSpace(parts[0])}, true
		}
	}
	left := strings.TrimSpace(parts[0])
	right := strings.TrimSpace(strings.Join(parts[1:], sep))
	return splitSides(left, right, roster), true
}

// splitSides decides which half of a delimited field names the artist.
func splitSides(left, right string, roster Membership) Pair {
	leftIn, rightIn := isMember(roster, left), isMember(roster, right)
	switch {
	case leftIn && !rightIn:
		return Pair{Artist: left, Song: right}
	case rightIn && !leftIn:
		return Pair{Artist: right, Song: left}
	}

	normLeft, normRight := swapLastFirst(left), swapLastFirst(right)
	leftIn, rightIn = isMember(roster, normLeft), isMember(roster, normRight)
	switch {
	case leftIn && !rightIn:
		return Pair{Artist: normLeft, Song: right}
	case rightIn && !leftIn:
		return Pair{Artist: normRight, Song: left}
	}
	return Pair{Artist: left, Song: right}
}

// swapLastFirst rewrites a two-part "Last, First" name as "First Last".
// Anything else is returned unchanged.
func swapLastFirst(name string) string {
	m := lastFirstPattern.FindStringSubmatch(name)
	if m == nil {
		return name
	}
	return m[2] + " " + m[1]
}

func isMember(roster Membership, name string) bool {
	if roster == nil || name == "" {
		return false
	}
	return roster.Contains(name)
}
