package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"

	"spinscan/internal/extract"
	"spinscan/internal/logging"
	"spinscan/internal/matches"
	"spinscan/internal/roster"
	"spinscan/internal/tracklist"
	"spinscan/internal/workbook"
)

// DefaultYieldEvery is the row batch size between yields inside one sheet.
const DefaultYieldEvery = 1000

// minSheetRows is a header plus one data row.
const minSheetRows = 2

var (
	// ErrEmptyRoster means the caller supplied no artists to search for.
	ErrEmptyRoster = errors.New("artist roster is empty")
	// ErrNoUsableSheets means no sheet has a header and at least one data row.
	ErrNoUsableSheets = errors.New("workbook has no sheets with data rows")
)

// Progress is reported at every yield point.
type Progress struct {
	Sheet         string `json:"sheet,omitempty"`
	SheetsScanned int    `json:"sheets_scanned"`
	SheetsTotal   int    `json:"sheets_total"`
	RowsScanned   int    `json:"rows_scanned"`
	RowsTotal     int    `json:"rows_total"`
	Matches       int    `json:"matches"`
}

// Percent reports row completion in [0,100], or -1 when the total is unknown.
func (p Progress) Percent() float64 {
	if p.RowsTotal <= 0 {
		return -1
	}
	return float64(p.RowsScanned) * 100 / float64(p.RowsTotal)
}

// Options controls one scan.
type Options struct {
	// YieldEvery is the row batch between yields; zero means DefaultYieldEvery.
	YieldEvery int
	// HeaderRows are skipped at the top of every sheet.
	HeaderRows int
	// SkipCanonicalize keeps raw extracted spellings.
	SkipCanonicalize bool
	// Strategies overrides the extractor's default strategy order.
	Strategies []extract.Strategy
	// Yield hands control back to the host. The default calls runtime.Gosched.
	Yield func(context.Context) error
	// OnProgress receives a snapshot at every yield point.
	OnProgress func(Progress)
	Logger     *slog.Logger
}

// Result is the outcome of one scan. Matches are in discovery order; use
// Sorted or matches.Group for presentation.
type Result struct {
	ID            string
	Matches       *matches.Set
	Progress      Progress
	SkippedSheets []string
	Canonicalized int
	Elapsed       time.Duration
}

// Sorted returns the matches in roster order.
func (r *Result) Sorted(ros *roster.Roster) []matches.Match {
	if r == nil {
		return nil
	}
	return matches.Sort(r.Matches.Matches(), ros)
}

type scanner struct {
	opts      Options
	extractor *extract.Extractor
	db        *tracklist.Database
	logger    *slog.Logger
	sampler   *logging.ProgressSampler
	result    *Result
}

// Run scans wb for artists on ros, canonicalizing against db when non-nil.
// On cancellation the partial result is returned together with ctx.Err().
func Run(ctx context.Context, wb *workbook.Workbook, ros *roster.Roster, db *tracklist.Database, opts Options) (*Result, error) {
	if ros.Len() == 0 {
		return nil, ErrEmptyRoster
	}
	if opts.YieldEvery <= 0 {
		opts.YieldEvery = DefaultYieldEvery
	}
	if opts.HeaderRows < 0 {
		opts.HeaderRows = 0
	}
	if opts.Yield == nil {
		opts.Yield = cooperativeYield
	}

	usable, rowsTotal := 0, 0
	if wb != nil {
		for _, sheet := range wb.Sheets {
			if len(sheet.Rows) >= minSheetRows {
				usable++
				rowsTotal += dataRows(sheet, opts.HeaderRows)
			}
		}
	}
	if usable == 0 {
		return nil, ErrNoUsableSheets
	}

	id := uuid.NewString()
	ctx = logging.WithScanID(ctx, id)
	s := &scanner{
		opts:      opts,
		extractor: extract.NewExtractor(ros, opts.Strategies...),
		db:        db,
		logger:    logging.WithContext(ctx, logging.NewComponentLogger(opts.Logger, "scan")),
		sampler:   logging.NewProgressSampler(10),
		result: &Result{
			ID:      id,
			Matches: matches.NewSet(),
			Progress: Progress{
				SheetsTotal: usable,
				RowsTotal:   rowsTotal,
			},
		},
	}
	if db == nil {
		s.opts.SkipCanonicalize = true
	}

	started := time.Now()
	s.logger.Info("scan started",
		logging.String(logging.FieldEventType, "scan_start"),
		logging.String("workbook", wb.Name),
		logging.Int("sheets", usable),
		logging.Int("rows", rowsTotal),
		logging.Int("artists", ros.Len()),
		logging.Bool("canonicalize", !s.opts.SkipCanonicalize),
	)

	err := s.run(ctx, wb)
	s.result.Elapsed = time.Since(started)
	if err != nil {
		s.logger.Info("scan stopped",
			logging.String(logging.FieldEventType, "scan_cancelled"),
			logging.Int("rows_scanned", s.result.Progress.RowsScanned),
			logging.Error(err),
		)
		return s.result, err
	}

	s.logger.Info("scan complete",
		logging.String(logging.FieldEventType, "scan_complete"),
		logging.Int("sheets_scanned", s.result.Progress.SheetsScanned),
		logging.Int("rows_scanned", s.result.Progress.RowsScanned),
		logging.Int("matches", s.result.Matches.Len()),
		logging.Int("canonicalized", s.result.Canonicalized),
		logging.Duration("elapsed", s.result.Elapsed),
	)
	return s.result, nil
}

func (s *scanner) run(ctx context.Context, wb *workbook.Workbook) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, sheet := range wb.Sheets {
		if len(sheet.Rows) < minSheetRows {
			s.result.SkippedSheets = append(s.result.SkippedSheets, sheet.Name)
			s.logger.Debug("sheet skipped",
				logging.String(logging.FieldSheet, sheet.Name),
				logging.Int("rows", len(sheet.Rows)),
			)
			continue
		}
		if err := s.scanSheet(ctx, sheet); err != nil {
			return err
		}
		s.result.Progress.SheetsScanned++
		if err := s.yield(ctx, sheet.Name); err != nil {
			return err
		}
	}
	return nil
}

func (s *scanner) scanSheet(ctx context.Context, sheet workbook.Sheet) error {
	found := 0
	start := min(s.opts.HeaderRows, len(sheet.Rows))
	for i, row := range sheet.Rows[start:] {
		if s.scanRow(sheet.Name, row) {
			found++
		}
		s.result.Progress.RowsScanned++
		last := start+i+1 == len(sheet.Rows)
		if (i+1)%s.opts.YieldEvery == 0 && !last {
			if err := s.yield(ctx, sheet.Name); err != nil {
				return err
			}
		}
	}
	s.logger.Debug("sheet scanned",
		logging.String(logging.FieldSheet, sheet.Name),
		logging.Int("rows", len(sheet.Rows)-start),
		logging.Int("matches", found),
	)
	return nil
}

func (s *scanner) scanRow(station string, row []string) bool {
	candidate, ok := s.extractor.Extract(row)
	if !ok {
		return false
	}
	m := matches.Match{Station: station, Artist: candidate.Pair.Artist, Song: candidate.Pair.Song}
	if !s.opts.SkipCanonicalize {
		if canon, ok := s.db.Canonicalize(m.Artist, m.Song); ok {
			m.Artist, m.Song = canon.Artist, canon.Song
			s.result.Canonicalized++
		}
	}
	s.result.Matches.Add(m)
	return true
}

// yield reports progress and hands control back to the host. A cancelled
// context ends the scan here.
func (s *scanner) yield(ctx context.Context, sheet string) error {
	s.result.Progress.Sheet = sheet
	s.result.Progress.Matches = s.result.Matches.Len()
	progress := s.result.Progress
	if s.opts.OnProgress != nil {
		s.opts.OnProgress(progress)
	}
	if s.sampler.ShouldLog(progress.Percent(), sheet) {
		s.logger.Info("scan progress",
			logging.String(logging.FieldSheet, sheet),
			logging.Int("sheets_scanned", progress.SheetsScanned),
			logging.Int("sheets_total", progress.SheetsTotal),
			logging.Int("rows_scanned", progress.RowsScanned),
			logging.Float64("percent", progress.Percent()),
			logging.Int("matches", progress.Matches),
		)
	}
	if err := s.opts.Yield(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("yield: %w", err)
	}
	return ctx.Err()
}

func cooperativeYield(ctx context.Context) error {
	runtime.Gosched()
	return ctx.Err()
}

func dataRows(sheet workbook.Sheet, headerRows int) int {
	return max(len(sheet.Rows)-headerRows, 0)
}
