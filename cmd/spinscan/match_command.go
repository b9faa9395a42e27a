package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"spinscan/internal/extract"
	"spinscan/internal/roster"
	"spinscan/internal/tracklist"
)

type matchReport struct {
	Input       []string `json:"input"`
	Strategy    string   `json:"strategy,omitempty"`
	Artist      string   `json:"artist,omitempty"`
	Song        string   `json:"song,omitempty"`
	Score       float64  `json:"score,omitempty"`
	Canonical   bool     `json:"canonical"`
	CanonArtist string   `json:"canonical_artist,omitempty"`
	CanonSong   string   `json:"canonical_song,omitempty"`
}

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var artistsFlag string
	var artistsFile string
	var jsonOutput bool
	var noCanonicalize bool

	cmd := &cobra.Command{
		Use:   "match <cell> [cell...]",
		Short: "Show how one row of cells would be matched",
		Long: "Runs the row extractor on the given cells (columns A-E) and reports the winning\n" +
			"artist, song, score, and strategy, plus the tracklist spelling when one applies.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ros, err := ctx.resolveRoster(artistsFlag, artistsFile)
			if err != nil {
				return err
			}
			if ros.Len() == 0 {
				return errNoArtists
			}

			var db *tracklist.Database
			if !noCanonicalize {
				catalog, err := ctx.openCatalog(cmd.Context())
				if err != nil {
					return err
				}
				db = catalog.Snapshot()
			}

			report := explainRow(args, ros, db)
			if jsonOutput {
				return writeJSON(cmd, report)
			}
			out := cmd.OutOrStdout()
			if report.Strategy == "" {
				fmt.Fprintln(out, "No match")
				return nil
			}
			rows := [][]string{
				{"Strategy", report.Strategy},
				{"Artist", report.Artist},
				{"Song", report.Song},
				{"Score", fmt.Sprintf("%.3f", report.Score)},
			}
			if report.Canonical {
				rows = append(rows,
					[]string{"Tracklist artist", report.CanonArtist},
					[]string{"Tracklist song", report.CanonSong})
			} else if db != nil {
				rows = append(rows, []string{"Tracklist", "no canonical match"})
			}
			fmt.Fprintln(out, renderTable(tableSpec{headers: []string{"Field", "Value"}, rows: rows}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&artistsFlag, "artists", "a", "", "Artists to find, separated by commas or newlines")
	cmd.Flags().StringVar(&artistsFile, "artists-file", "", "File listing artists, one per line")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&noCanonicalize, "no-canonicalize", false, "Skip the tracklist lookup")
	return cmd
}

func explainRow(cells []string, ros *roster.Roster, db *tracklist.Database) matchReport {
	trimmed := make([]string, len(cells))
	for i, cell := range cells {
		trimmed[i] = strings.TrimSpace(cell)
	}
	report := matchReport{Input: trimmed}
	candidate, ok := extract.NewExtractor(ros).Extract(trimmed)
	if !ok {
		return report
	}
	report.Strategy = candidate.Strategy
	report.Artist = candidate.Pair.Artist
	report.Song = candidate.Pair.Song
	report.Score = candidate.Score
	if canon, ok := db.Canonicalize(report.Artist, report.Song); ok {
		report.Canonical = true
		report.CanonArtist = canon.Artist
		report.CanonSong = canon.Song
	}
	return report
}
