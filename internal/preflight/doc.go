// Package preflight checks that the configured directories are usable and
// that the tracklist store can be opened and loaded before a scan relies on
// them.
package preflight
