package config

import (
	"errors"
	"fmt"
	"slices"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTracklist(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateExport(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTracklist() error {
	switch c.Tracklist.Backend {
	case BackendSQLite, BackendJSON, BackendMemory:
	default:
		return fmt.Errorf("tracklist.backend must be one of sqlite, json, memory (got %q)", c.Tracklist.Backend)
	}
	if c.Tracklist.SQLitePath == c.Tracklist.JSONPath {
		return errors.New("tracklist.sqlite_path and tracklist.json_path must differ")
	}
	return nil
}

func (c *Config) validateScan() error {
	if c.Scan.YieldEveryRows <= 0 {
		return errors.New("scan.yield_every_rows must be positive")
	}
	if c.Scan.HeaderRows < 0 {
		return errors.New("scan.header_rows must be >= 0")
	}
	return nil
}

func (c *Config) validateExport() error {
	if !slices.Contains(ExportFormats, c.Export.Format) {
		return fmt.Errorf("export.format must be one of %v (got %q)", ExportFormats, c.Export.Format)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
}
