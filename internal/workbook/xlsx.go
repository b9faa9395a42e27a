package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// openXLSX reads every worksheet in tab order. Raw cell values are used so
// date and time cells surface as serial numbers.
func openXLSX(path string) (*Workbook, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %s: %w", path, err)
	}
	defer file.Close()

	wb := &Workbook{Name: baseName(path), Path: path}
	for _, name := range file.GetSheetList() {
		rows, err := file.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		for i := range rows {
			rows[i] = trimCells(rows[i])
		}
		wb.Sheets = append(wb.Sheets, Sheet{Name: name, Rows: rows})
	}
	return wb, nil
}
