package workbook

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const utf8BOM = "\ufeff"

func openCSVFile(path string) (*Workbook, error) {
	sheet, err := readCSVSheet(path)
	if err != nil {
		return nil, err
	}
	return &Workbook{Name: sheet.Name, Path: path, Sheets: []Sheet{sheet}}, nil
}

// openCSVDir treats each CSV file in dir as one sheet, in lexical order.
func openCSVDir(dir string) (*Workbook, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read workbook directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		names = append(names, entry.Name())
	}
	slices.Sort(names)

	wb := &Workbook{Name: filepath.Base(filepath.Clean(dir)), Path: dir}
	for _, name := range names {
		sheet, err := readCSVSheet(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return wb, nil
}

func readCSVSheet(path string) (Sheet, error) {
	file, err := os.Open(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	rows, err := ReadCSV(file)
	if err != nil {
		return Sheet{}, fmt.Errorf("read csv %s: %w", filepath.Base(path), err)
	}
	return Sheet{Name: baseName(path), Rows: rows}, nil
}

// ReadCSV reads rows with ragged lengths and tolerant quoting.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 && len(record) > 0 {
			record[0] = strings.TrimPrefix(record[0], utf8BOM)
		}
		rows = append(rows, trimCells(record))
	}
	return rows, nil
}
