package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"spinscan/internal/config"
	"spinscan/internal/logging"
	"spinscan/internal/roster"
	"spinscan/internal/tracklist"
)

type commandContext struct {
	configFlag *string
	verbose    *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger

	catalog *tracklist.Catalog
}

func newCommandContext(configFlag *string, verbose *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		verbose:    verbose,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// loggerValue returns the command logger. Logger construction failures fall
// back to a no-op logger so commands still run.
func (c *commandContext) loggerValue() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		var extra []string
		if c.verbose != nil && *c.verbose {
			extra = append(extra, "stderr")
		}
		logger, err := logging.NewFromConfig(cfg, extra...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

// openCatalog opens the configured tracklist once per command.
func (c *commandContext) openCatalog(ctx context.Context) (*tracklist.Catalog, error) {
	if c.catalog != nil {
		return c.catalog, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	store, err := tracklist.OpenStore(ctx, cfg.Tracklist, c.loggerValue())
	if err != nil {
		return nil, err
	}
	catalog, err := tracklist.OpenCatalog(ctx, store, c.loggerValue())
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("load tracklist: %w", err)
	}
	c.catalog = catalog
	return catalog, nil
}

func (c *commandContext) close() error {
	if c.catalog == nil {
		return nil
	}
	err := c.catalog.Close()
	c.catalog = nil
	return err
}

// resolveRoster picks the roster from, in order: --artists, --artists-file,
// the configured default_artists (which include SPINSCAN_ARTISTS).
func (c *commandContext) resolveRoster(artistsFlag, artistsFile string) (*roster.Roster, error) {
	if strings.TrimSpace(artistsFlag) != "" {
		return roster.Parse(artistsFlag), nil
	}
	if path := strings.TrimSpace(artistsFile); path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(expanded)
		if err != nil {
			return nil, fmt.Errorf("read artists file: %w", err)
		}
		return roster.Parse(string(data)), nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return roster.New(cfg.Scan.DefaultArtists), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

var errNoArtists = errors.New("no artists given; pass --artists, --artists-file, set scan.default_artists, or export SPINSCAN_ARTISTS")
