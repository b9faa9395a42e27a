// Package config loads, normalizes, and validates spinscan configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// SPINSCAN_ARTISTS. The Config type centralizes every knob the CLI needs:
// where the tracklist lives, how scans yield, and how logs and exports are
// written.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical backend names, and clear validation errors.
package config
