package main

import (
	"github.com/spf13/cobra"

	"spinscan/internal/matches"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	return matches.WriteJSON(cmd.OutOrStdout(), v)
}
