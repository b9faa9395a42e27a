package extract

import "spinscan/internal/roster"

// MaxColumns is the number of leading cells considered in each row.
const MaxColumns = 5

// Candidate is one scored (artist, song) proposal for a row.
type Candidate struct {
	Pair     Pair
	Score    float64
	Strategy string
}

// Strategy proposes candidates for a row. Candidates must be emitted in a
// stable order because the reducer keeps the first of equally scored ones.
type Strategy interface {
	Name() string
	Candidates(row *RowView, emit func(Candidate))
}

// RowView is a row clipped to MaxColumns cells with per-column artist
// resolutions computed lazily.
type RowView struct {
	Cells  [MaxColumns]string
	roster *roster.Roster

	resolved [MaxColumns]bool
	matches  [MaxColumns]roster.Resolution
}

// NewRowView clips cells to MaxColumns, padding missing cells with "".
func NewRowView(cells []string, r *roster.Roster) *RowView {
	view := &RowView{roster: r}
	copy(view.Cells[:], cells)
	return view
}

// Resolve returns the best roster entry for the cell at column i.
func (v *RowView) Resolve(i int) roster.Resolution {
	if !v.resolved[i] {
		v.matches[i] = v.roster.BestMatch(v.Cells[i])
		v.resolved[i] = true
	}
	return v.matches[i]
}

// Roster returns the roster the view resolves against.
func (v *RowView) Roster() *roster.Roster {
	return v.roster
}

// ColumnPairs treats cell i as the artist and cell j as the song for every
// ordered pair of distinct columns, in ascending (i, j) order.
type ColumnPairs struct{}

// Name identifies the strategy in logs.
func (ColumnPairs) Name() string { return "column_pair" }

// Candidates emits a candidate for each confident artist column with a
// usable song column.
func (ColumnPairs) Candidates(row *RowView, emit func(Candidate)) {
	for i := 0; i < MaxColumns; i++ {
		for j := 0; j < MaxColumns; j++ {
			if i == j {
				continue
			}
			song := row.Cells[j]
			if IsNumericLike(song) {
				continue
			}
			match := row.Resolve(i)
			if !match.Confident() {
				continue
			}
			emit(Candidate{
				Pair:     Pair{Artist: match.Artist, Song: song},
				Score:    match.Score,
				Strategy: "column_pair",
			})
		}
	}
}

// CombinedCell parses each cell on its own with ParseCombined.
type CombinedCell struct{}

// Name identifies the strategy in logs.
func (CombinedCell) Name() string { return "combined_cell" }

// Candidates emits a candidate for each cell whose parsed artist resolves
// confidently to the roster.
func (CombinedCell) Candidates(row *RowView, emit func(Candidate)) {
	for i := 0; i < MaxColumns; i++ {
		if row.Cells[i] == "" {
			continue
		}
		parsed := ParseCombined(row.Cells[i], row.roster)
		if parsed.Empty() || IsNumericLike(parsed.Song) {
			continue
		}
		match := row.roster.BestMatch(parsed.Artist)
		if !match.Confident() {
			continue
		}
		emit(Candidate{
			Pair:     Pair{Artist: match.Artist, Song: parsed.Song},
			Score:    match.Score,
			Strategy: "combined_cell",
		})
	}
}

// DefaultStrategies is the fixed strategy order used by Extractor.
func DefaultStrategies() []Strategy {
	return []Strategy{ColumnPairs{}, CombinedCell{}}
}

// Extractor runs strategies over rows and keeps the best candidate.
type Extractor struct {
	roster     *roster.Roster
	strategies []Strategy
}

// NewExtractor builds an extractor for one roster. With no strategies the
// default order is used.
func NewExtractor(r *roster.Roster, strategies ...Strategy) *Extractor {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &Extractor{roster: r, strategies: strategies}
}

// Extract returns the highest-scoring candidate for the row. ok is false
// when no strategy produced a confident candidate.
func (e *Extractor) Extract(cells []string) (Candidate, bool) {
	if e == nil || e.roster.Len() == 0 {
		return Candidate{}, false
	}
	view := NewRowView(cells, e.roster)
	var best Candidate
	found := false
	keep := func(c Candidate) {
		if !found || c.Score > best.Score {
			best = c
			found = true
		}
	}
	for _, strategy := range e.strategies {
		strategy.Candidates(view, keep)
	}
	return best, found
}

// ExtractRow is the convenience form of Extractor.Extract returning the
// zero Pair when the row has no match.
func ExtractRow(cells []string, r *roster.Roster) Pair {
	candidate, ok := NewExtractor(r).Extract(cells)
	if !ok {
		return Pair{}
	}
	return candidate.Pair
}
