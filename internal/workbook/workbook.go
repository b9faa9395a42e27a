// Package workbook reads airplay spreadsheets into sheets of trimmed string
// cells. Spreadsheet files (.xlsx, .xlsm), single CSV files, and directories
// of CSV files are supported.
package workbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for inputs that are neither spreadsheets
// nor CSV files.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// Sheet is one station or show. Rows keep source order and every cell is
// trimmed; missing cells are absent rather than padded.
type Sheet struct {
	Name string
	Rows [][]string
}

// Workbook is an ordered collection of sheets.
type Workbook struct {
	Name   string
	Path   string
	Sheets []Sheet
}

// RowCount reports the total number of rows across all sheets.
func (w *Workbook) RowCount() int {
	if w == nil {
		return 0
	}
	total := 0
	for _, sheet := range w.Sheets {
		total += len(sheet.Rows)
	}
	return total
}

// Open reads path according to its type.
func Open(path string) (*Workbook, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	if info.IsDir() {
		return openCSVDir(path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return openXLSX(path)
	case ".csv":
		return openCSVFile(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func trimCells(row []string) []string {
	for i, cell := range row {
		row[i] = strings.TrimSpace(cell)
	}
	return row
}
