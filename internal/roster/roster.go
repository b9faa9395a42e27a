// Package roster holds the ordered list of artists a scan searches for and
// resolves candidate strings to the closest roster entry.
package roster

import (
	"regexp"
	"strings"

	"spinscan/internal/textutil"
)

var entrySeparator = regexp.MustCompile(`[\n,]`)

// Roster is the ordered artist list for one scan. Order defines output
// priority and duplicates are kept as entered.
type Roster struct {
	entries    []string
	normalized []string
	set        map[string]struct{}
	positions  map[string]int
}

// New builds a roster from already-split entries. Entries are trimmed and
// blank entries are dropped.
func New(entries []string) *Roster {
	r := &Roster{
		entries:    make([]string, 0, len(entries)),
		normalized: make([]string, 0, len(entries)),
		set:        make(map[string]struct{}, len(entries)),
		positions:  make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key := lookupKey(entry)
		if _, seen := r.positions[key]; !seen {
			r.positions[key] = len(r.entries)
		}
		r.set[key] = struct{}{}
		r.entries = append(r.entries, entry)
		r.normalized = append(r.normalized, textutil.Normalize(entry))
	}
	return r
}

// Parse splits free text on newlines or commas into a roster.
func Parse(text string) *Roster {
	return New(entrySeparator.Split(text, -1))
}

// Len reports the number of entries, duplicates included.
func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Entries returns a copy of the roster in input order.
func (r *Roster) Entries() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}

// Contains reports membership of name ignoring case and whitespace runs.
func (r *Roster) Contains(name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.set[lookupKey(name)]
	return ok
}

// Position returns the index of the first entry equal to name ignoring case.
// Absent names report ok=false.
func (r *Roster) Position(name string) (int, bool) {
	if r == nil {
		return 0, false
	}
	pos, ok := r.positions[lookupKey(name)]
	return pos, ok
}

// lookupKey lowercases name and collapses any run of Unicode whitespace to a
// single space.
func lookupKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
