package workbook

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestOpenXLSXKeepsRawValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Weekly Airplay.xlsx")
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "Morning Show"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	if err := f.SetSheetRow("Morning Show", "A1", &[]any{"Artist", "Song", "Played"}); err != nil {
		t.Fatalf("header: %v", err)
	}
	if err := f.SetSheetRow("Morning Show", "A2", &[]any{" Bon Iver ", "Skinny Love", 45123.5}); err != nil {
		t.Fatalf("row: %v", err)
	}
	if _, err := f.NewSheet("Evening Show"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	if err := f.SetSheetRow("Evening Show", "A1", &[]any{"Holocene by Bon Iver on KXYZ"}); err != nil {
		t.Fatalf("row: %v", err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	f.Close()

	wb, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if wb.Name != "Weekly Airplay" {
		t.Fatalf("Name = %q", wb.Name)
	}
	if len(wb.Sheets) != 2 || wb.Sheets[0].Name != "Morning Show" || wb.Sheets[1].Name != "Evening Show" {
		t.Fatalf("unexpected sheets: %+v", wb.Sheets)
	}
	if got, want := wb.Sheets[0].Rows[1], []string{"Bon Iver", "Skinny Love", "45123.5"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("row = %q, want %q", got, want)
	}
	if wb.RowCount() != 3 {
		t.Fatalf("RowCount() = %d, want 3", wb.RowCount())
	}
}

func TestOpenCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kexp.csv")
	writeFile(t, path, "\ufeffArtist,Song\n Bon Iver , \"Skinny Love\"\nFeist\n")

	wb, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	want := []Sheet{{Name: "kexp", Rows: [][]string{
		{"Artist", "Song"},
		{"Bon Iver", "Skinny Love"},
		{"Feist"},
	}}}
	if !reflect.DeepEqual(wb.Sheets, want) {
		t.Fatalf("Sheets = %+v, want %+v", wb.Sheets, want)
	}
}

func TestOpenCSVDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b-evening.csv"), "h\nrow\n")
	writeFile(t, filepath.Join(dir, "a-morning.CSV"), "h\nrow\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")
	if err := os.Mkdir(filepath.Join(dir, "nested.csv"), 0o755); err != nil {
		t.Fatal(err)
	}

	wb, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	var names []string
	for _, sheet := range wb.Sheets {
		names = append(names, sheet.Name)
	}
	if want := []string{"a-morning", "b-evening"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("sheet names = %v, want %v", names, want)
	}
}

func TestOpenRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airplay.xls")
	writeFile(t, path, "binary")
	if _, err := Open(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := Open(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadCSVRaggedRows(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader("a,b,c\n\nd\ne,\"f, g\"\n"))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	want := [][]string{{"a", "b", "c"}, {"d"}, {"e", "f, g"}}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("rows = %q, want %q", rows, want)
	}
}
