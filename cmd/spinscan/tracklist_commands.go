package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"spinscan/internal/config"
	"spinscan/internal/tracklist"
)

func newTracklistCommand(ctx *commandContext) *cobra.Command {
	tracklistCmd := &cobra.Command{
		Use:     "tracklist",
		Aliases: []string{"tl"},
		Short:   "Manage the canonical artist and song list",
	}

	tracklistCmd.AddCommand(newTracklistListCommand(ctx))
	tracklistCmd.AddCommand(newTracklistAddCommand(ctx))
	tracklistCmd.AddCommand(newTracklistRemoveCommand(ctx))
	tracklistCmd.AddCommand(newTracklistRenameCommand(ctx))
	tracklistCmd.AddCommand(newTracklistImportCommand(ctx))

	return tracklistCmd
}

func newTracklistListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list [artist]",
		Short: "List artists, or one artist's songs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := ctx.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			db := catalog.Snapshot()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				artist, ok := db.ResolveArtist(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", tracklist.ErrArtistNotFound, args[0])
				}
				songs := db.Songs(artist)
				if jsonOutput {
					return writeJSON(cmd, tracklist.Entry{Artist: artist, Songs: songs})
				}
				rows := make([][]string, 0, len(songs))
				for i, song := range songs {
					rows = append(rows, []string{strconv.Itoa(i + 1), song})
				}
				fmt.Fprintln(out, renderTable(tableSpec{
					title:   artist,
					headers: []string{"#", "Song"},
					rows:    rows,
					aligns:  []columnAlignment{alignRight, alignLeft},
				}))
				return nil
			}

			entries := db.Entries()
			if jsonOutput {
				if entries == nil {
					entries = []tracklist.Entry{}
				}
				return writeJSON(cmd, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "Tracklist is empty")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{entry.Artist, strconv.Itoa(len(entry.Songs))})
			}
			fmt.Fprintln(out, renderTable(tableSpec{
				headers: []string{"Artist", "Songs"},
				rows:    rows,
				aligns:  []columnAlignment{alignLeft, alignRight},
				footer:  []string{pluralize(len(entries), "artist"), strconv.Itoa(db.SongCount())},
			}))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newTracklistAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <artist> <song> [song...]",
		Short: "Add songs for an artist, creating the artist if needed",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := ctx.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			added, err := catalog.AddSongs(cmd.Context(), args[0], args[1:]...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s for %s\n", pluralize(added, "song"), strings.TrimSpace(args[0]))
			return nil
		},
	}
}

func newTracklistRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <artist> [song]",
		Short: "Remove one song, or an artist with all songs",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := ctx.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 2 {
				if err := catalog.RemoveSong(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintf(out, "Removed %q from %s\n", args[1], args[0])
				return nil
			}
			if err := catalog.RemoveArtist(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(out, "Removed %s\n", args[0])
			return nil
		},
	}
}

func newTracklistRenameCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <artist> <new-name>",
		Short: "Rename an artist, merging songs if the new name exists",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := ctx.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			if err := catalog.RenameArtist(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", args[0], args[1])
			return nil
		},
	}
}

func newTracklistImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import Artist,Song rows from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer file.Close()

			catalog, err := ctx.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			result, err := catalog.Import(cmd.Context(), file)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s and %s\n",
				pluralize(result.ArtistsAdded, "new artist"), pluralize(result.SongsAdded, "new song"))
			return nil
		},
	}
}
