package matches

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
)

const csvHeader = "Station,Artist,Song"

// WriteCSV writes a Station,Artist,Song table. A field is quoted only when it
// contains a comma, quote, or line break; embedded quotes are doubled.
func WriteCSV(w io.Writer, items []Match) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(csvHeader)
	bw.WriteByte('\n')
	for _, m := range items {
		bw.WriteString(csvField(m.Station))
		bw.WriteByte(',')
		bw.WriteString(csvField(m.Artist))
		bw.WriteByte(',')
		bw.WriteString(csvField(m.Song))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func csvField(value string) string {
	if !strings.ContainsAny(value, ",\"\n\r") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// ExportFileName derives "<slug>-spins.<ext>" from a workbook path.
func ExportFileName(workbookPath, ext string) string {
	base := filepath.Base(workbookPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	name := slug.Make(base)
	if name == "" || name == "." {
		name = "spinscan"
	}
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" {
		ext = "csv"
	}
	return name + "-spins." + ext
}
