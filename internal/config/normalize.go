package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var artistListSeparator = regexp.MustCompile(`[\n,]`)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeTracklist(); err != nil {
		return err
	}
	c.normalizeScan()
	c.normalizeExport()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ExportDir) == "" {
		c.Paths.ExportDir = defaultExportDir
	}
	if c.Paths.ExportDir, err = expandPath(c.Paths.ExportDir); err != nil {
		return fmt.Errorf("paths.export_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTracklist() error {
	var err error
	c.Tracklist.Backend = strings.ToLower(strings.TrimSpace(c.Tracklist.Backend))
	if c.Tracklist.Backend == "" {
		c.Tracklist.Backend = defaultBackend
	}
	if c.Tracklist.Backend == BackendMemory {
		c.Tracklist.Backup = false
	}
	if strings.TrimSpace(c.Tracklist.SQLitePath) == "" {
		c.Tracklist.SQLitePath = filepath.Join(c.Paths.DataDir, defaultSQLiteName)
	}
	if c.Tracklist.SQLitePath, err = expandPath(c.Tracklist.SQLitePath); err != nil {
		return fmt.Errorf("tracklist.sqlite_path: %w", err)
	}
	if strings.TrimSpace(c.Tracklist.JSONPath) == "" {
		c.Tracklist.JSONPath = filepath.Join(c.Paths.DataDir, defaultJSONName)
	}
	if c.Tracklist.JSONPath, err = expandPath(c.Tracklist.JSONPath); err != nil {
		return fmt.Errorf("tracklist.json_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeScan() {
	if c.Scan.YieldEveryRows == 0 {
		c.Scan.YieldEveryRows = defaultYieldEveryRows
	}
	artists := make([]string, 0, len(c.Scan.DefaultArtists))
	for _, artist := range c.Scan.DefaultArtists {
		if artist = strings.TrimSpace(artist); artist != "" {
			artists = append(artists, artist)
		}
	}
	if len(artists) == 0 {
		if value, ok := os.LookupEnv("SPINSCAN_ARTISTS"); ok {
			for _, artist := range artistListSeparator.Split(value, -1) {
				if artist = strings.TrimSpace(artist); artist != "" {
					artists = append(artists, artist)
				}
			}
		}
	}
	c.Scan.DefaultArtists = artists
}

func (c *Config) normalizeExport() {
	c.Export.Format = strings.ToLower(strings.TrimSpace(c.Export.Format))
	if c.Export.Format == "" {
		c.Export.Format = defaultExportFormat
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
