package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"spinscan/internal/config"
	"spinscan/internal/fileutil"
	"spinscan/internal/matches"
	"spinscan/internal/scan"
	"spinscan/internal/tracklist"
	"spinscan/internal/workbook"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var artistsFlag string
	var artistsFile string
	var formatFlag string
	var outputFlag string
	var save bool
	var noCanonicalize bool

	cmd := &cobra.Command{
		Use:   "scan <workbook>",
		Short: "Scan a spreadsheet, CSV file, or directory of CSV files for roster spins",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			ros, err := ctx.resolveRoster(artistsFlag, artistsFile)
			if err != nil {
				return err
			}
			if ros.Len() == 0 {
				return errNoArtists
			}

			format := strings.ToLower(strings.TrimSpace(formatFlag))
			if format == "" {
				format = cfg.Export.Format
			}
			if !slices.Contains(config.ExportFormats, format) {
				return fmt.Errorf("--format must be one of %s", strings.Join(config.ExportFormats, ", "))
			}

			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			wb, err := workbook.Open(path)
			if err != nil {
				return err
			}

			var db *tracklist.Database
			if !noCanonicalize {
				catalog, err := ctx.openCatalog(cmd.Context())
				if err != nil {
					return err
				}
				db = catalog.Snapshot()
			}

			opts := scan.Options{
				YieldEvery:       cfg.Scan.YieldEveryRows,
				HeaderRows:       cfg.Scan.HeaderRows,
				SkipCanonicalize: noCanonicalize,
				Logger:           ctx.loggerValue(),
			}
			stderr := cmd.ErrOrStderr()
			if isTerminal(stderr) {
				opts.OnProgress = func(p scan.Progress) {
					fmt.Fprintf(stderr, "\rScanning %-24.24s sheet %d/%d  rows %d  spins %d",
						p.Sheet, p.SheetsScanned, p.SheetsTotal, p.RowsScanned, p.Matches)
				}
			}

			result, err := scan.Run(cmd.Context(), wb, ros, db, opts)
			if opts.OnProgress != nil {
				fmt.Fprintln(stderr)
			}
			switch {
			case errors.Is(err, scan.ErrNoUsableSheets):
				return fmt.Errorf("%s: %w (every sheet needs a header row and at least one data row)", filepath.Base(path), err)
			case err != nil:
				return err
			}

			output := scanOutput{workbook: wb, roster: ros, db: db, result: result}
			target := strings.TrimSpace(outputFlag)
			if target == "" && save {
				target = cfg.Paths.ExportDir
			}
			if target == "" || target == "-" {
				return writeScanOutput(cmd.OutOrStdout(), format, output)
			}
			written, err := writeScanFile(target, path, format, output)
			if err != nil {
				return err
			}
			fmt.Fprintf(stderr, "Wrote %d spins to %s\n", result.Matches.Len(), written)
			return nil
		},
	}

	cmd.Flags().StringVarP(&artistsFlag, "artists", "a", "", "Artists to find, separated by commas or newlines")
	cmd.Flags().StringVar(&artistsFile, "artists-file", "", "File listing artists, one per line")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: "+strings.Join(config.ExportFormats, ", "))
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write output to a file or directory instead of stdout")
	cmd.Flags().BoolVar(&save, "save", false, "Write output to the configured export directory")
	cmd.Flags().BoolVar(&noCanonicalize, "no-canonicalize", false, "Keep extracted spellings instead of tracklist spellings")
	return cmd
}

// writeScanFile writes to target, or to a derived file name when target is a
// directory.
func writeScanFile(target, workbookPath, format string, output scanOutput) (string, error) {
	expanded, err := config.ExpandPath(target)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(expanded); err == nil && info.IsDir() {
		expanded = filepath.Join(expanded, matches.ExportFileName(workbookPath, exportExtension(format)))
	}
	err = fileutil.WriteAtomic(expanded, 0o644, func(w io.Writer) error {
		return writeScanOutput(w, format, output)
	})
	if err != nil {
		return "", fmt.Errorf("write %s: %w", expanded, err)
	}
	return expanded, nil
}

func exportExtension(format string) string {
	switch format {
	case "csv", "json":
		return format
	default:
		return "txt"
	}
}

