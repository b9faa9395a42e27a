package matches

// Match is one recorded spin. Identical matches are distinct spins.
type Match struct {
	Station string `json:"station"`
	Artist  string `json:"artist"`
	Song    string `json:"song"`
}

// Set accumulates matches during a scan. It is append-only so a partially
// built set can always be discarded safely.
type Set struct {
	items    []Match
	stations []string
	seen     map[string]struct{}
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Add appends a spin.
func (s *Set) Add(m Match) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	s.items = append(s.items, m)
	if _, ok := s.seen[m.Station]; !ok {
		s.seen[m.Station] = struct{}{}
		s.stations = append(s.stations, m.Station)
	}
}

// Len reports the number of spins.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Matches returns a copy of the spins in insertion order.
func (s *Set) Matches() []Match {
	if s == nil {
		return nil
	}
	out := make([]Match, len(s.items))
	copy(out, s.items)
	return out
}

// Stations lists station names in order of first appearance.
func (s *Set) Stations() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.stations))
	copy(out, s.stations)
	return out
}

// Concat merges sets in argument order. Sorting and grouping the result is
// independent of that order.
func Concat(sets ...*Set) *Set {
	out := NewSet()
	for _, set := range sets {
		if set == nil {
			continue
		}
		for _, m := range set.items {
			out.Add(m)
		}
	}
	return out
}
