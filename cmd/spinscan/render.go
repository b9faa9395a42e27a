package main

import (
	"fmt"
	"io"
	"strconv"

	"spinscan/internal/matches"
	"spinscan/internal/roster"
	"spinscan/internal/scan"
	"spinscan/internal/tracklist"
	"spinscan/internal/workbook"
)

type scanOutput struct {
	workbook *workbook.Workbook
	roster   *roster.Roster
	db       *tracklist.Database
	result   *scan.Result
}

type scanReport struct {
	ScanID   string                `json:"scan_id"`
	Workbook string                `json:"workbook"`
	Progress scan.Progress         `json:"progress"`
	Skipped  []string              `json:"skipped_sheets,omitempty"`
	Matches  []matches.Match       `json:"matches"`
	Groups   []matches.ArtistGroup `json:"groups"`
}

func writeScanOutput(w io.Writer, format string, out scanOutput) error {
	sorted := out.result.Sorted(out.roster)
	switch format {
	case "csv":
		return matches.WriteCSV(w, sorted)
	case "json":
		return matches.WriteJSON(w, scanReport{
			ScanID:   out.result.ID,
			Workbook: out.workbook.Name,
			Progress: out.result.Progress,
			Skipped:  out.result.SkippedSheets,
			Matches:  nonNil(sorted),
			Groups:   matches.Group(sorted, out.roster),
		})
	case "grouped":
		return writeGrouped(w, matches.Group(sorted, out.roster))
	case "grid":
		return writeGrid(w, matches.BuildGrid(sorted, out.result.Matches.Stations(), out.roster, out.db))
	default:
		return writeMatchTable(w, sorted, out.result)
	}
}

func writeMatchTable(w io.Writer, sorted []matches.Match, result *scan.Result) error {
	if len(sorted) == 0 {
		_, err := fmt.Fprintf(w, "No spins found (%d rows in %d sheets scanned)\n",
			result.Progress.RowsScanned, result.Progress.SheetsScanned)
		return err
	}
	rows := make([][]string, 0, len(sorted))
	for _, m := range sorted {
		rows = append(rows, []string{m.Station, m.Artist, m.Song})
	}
	rendered := renderTable(tableSpec{
		headers: []string{"Station", "Artist", "Song"},
		rows:    rows,
	})
	_, err := fmt.Fprintf(w, "%s\n%s\n", rendered, summaryLine(len(sorted), result))
	return err
}

func writeGrouped(w io.Writer, groups []matches.ArtistGroup) error {
	if len(groups) == 0 {
		_, err := fmt.Fprintln(w, "No spins found")
		return err
	}
	for i, group := range groups {
		var rows [][]string
		for _, song := range group.Songs {
			for j, station := range song.Stations {
				title := ""
				if j == 0 {
					title = song.Song
				}
				rows = append(rows, []string{title, station.Station, strconv.Itoa(station.Spins)})
			}
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		rendered := renderTable(tableSpec{
			title:   fmt.Sprintf("%s (%s)", group.Artist, pluralize(group.Spins, "spin")),
			headers: []string{"Song", "Station", "Spins"},
			rows:    rows,
			aligns:  []columnAlignment{alignLeft, alignLeft, alignRight},
		})
		if _, err := fmt.Fprintln(w, rendered); err != nil {
			return err
		}
	}
	return nil
}

func writeGrid(w io.Writer, grid matches.Grid) error {
	headers := append([]string{"Song"}, grid.Stations...)
	headers = append(headers, "Total")
	aligns := make([]columnAlignment, len(headers))
	for i := 1; i < len(aligns); i++ {
		aligns[i] = alignRight
	}

	for i, artist := range grid.Artists {
		rows := make([][]string, 0, len(artist.Rows))
		for _, row := range artist.Rows {
			song := row.Song
			if !row.Canonical {
				song += " *"
			}
			cells := []string{song}
			for _, count := range row.Counts {
				cells = append(cells, countCell(count))
			}
			rows = append(rows, append(cells, strconv.Itoa(row.Spins)))
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		footer := make([]string, len(headers))
		footer[len(footer)-1] = strconv.Itoa(artist.Spins)
		rendered := renderTable(tableSpec{
			title:   artist.Label,
			headers: headers,
			rows:    rows,
			aligns:  aligns,
			footer:  footer,
		})
		if _, err := fmt.Fprintln(w, rendered); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "* not in tracklist")
	return err
}

func summaryLine(spins int, result *scan.Result) string {
	line := fmt.Sprintf("%s from %s in %s",
		pluralize(spins, "spin"),
		pluralize(result.Progress.RowsScanned, "row"),
		pluralize(result.Progress.SheetsScanned, "sheet"))
	if result.Canonicalized > 0 {
		line += fmt.Sprintf(", %d canonicalized", result.Canonicalized)
	}
	return line
}

func countCell(count int) string {
	if count == 0 {
		return "-"
	}
	return strconv.Itoa(count)
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func nonNil(items []matches.Match) []matches.Match {
	if items == nil {
		return []matches.Match{}
	}
	return items
}
