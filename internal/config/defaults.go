package config

const (
	defaultConfigPath     = "~/.config/spinscan/config.toml"
	defaultDataDir        = "~/.local/share/spinscan"
	defaultLogDir         = "~/.local/share/spinscan/logs"
	defaultExportDir      = "."
	defaultSQLiteName     = "tracklist.db"
	defaultJSONName       = "tracklist.json"
	defaultBackend        = BackendSQLite
	defaultYieldEveryRows = 1000
	defaultHeaderRows     = 1
	defaultExportFormat   = "table"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// ExportFormats lists the accepted export.format values.
var ExportFormats = []string{"table", "grouped", "grid", "json", "csv"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			LogDir:    defaultLogDir,
			ExportDir: defaultExportDir,
		},
		Tracklist: Tracklist{
			Backend: defaultBackend,
			Backup:  true,
		},
		Scan: Scan{
			YieldEveryRows: defaultYieldEveryRows,
			HeaderRows:     defaultHeaderRows,
		},
		Export: Export{
			Format: defaultExportFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
