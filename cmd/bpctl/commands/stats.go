package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/factorio-tools/bpeditor/internal/blueprint"
	"github.com/factorio-tools/bpeditor/internal/blueprint/codec"
	"github.com/factorio-tools/bpeditor/internal/editor"
)

var statsCmd = &cobra.Command{
	Use:   "stats <string|file|->",
	Short: "Print statistics for a blueprint or book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readArgument(args[0])
		if err != nil {
			return err
		}

		bp, book, kind, err := codec.DecodeAny(strings.TrimSpace(input))
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		switch kind {
		case codec.KindBlueprint:
			ed := editor.Wrap(bp)
			stats := ed.Stats()
			bold.Fprintf(os.Stdout, "Blueprint: %s\n", labelOr(bp.Label, "(unnamed)"))
			fmt.Fprintf(os.Stdout, "Game version: %s\n", gameVersion(bp.Version))
			fmt.Fprintf(os.Stdout, "Entities: %d\n", stats.TotalEntities)
			fmt.Fprintf(os.Stdout, "Tiles:    %d\n", stats.TotalTiles)
			if len(stats.EntityCounts) > 0 {
				fmt.Fprintln(os.Stdout, "Entity counts:")
				names := make([]string, 0, len(stats.EntityCounts))
				for name := range stats.EntityCounts {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					fmt.Fprintf(os.Stdout, "  %-40s %d\n", name, stats.EntityCounts[name])
				}
			}
		case codec.KindBook:
			ed := editor.WrapBook(book)
			stats := ed.Stats()
			bold.Fprintf(os.Stdout, "Blueprint book: %s\n", labelOr(book.Label, "(unnamed)"))
			fmt.Fprintf(os.Stdout, "Game version: %s\n", gameVersion(book.Version))
			fmt.Fprintf(os.Stdout, "Blueprints: %d\n", stats.TotalBlueprints)
			fmt.Fprintf(os.Stdout, "Entities:   %d\n", stats.TotalEntities)
			fmt.Fprintf(os.Stdout, "Tiles:      %d\n", stats.TotalTiles)
			for i := 0; i < ed.Len(); i++ {
				contained := ed.Blueprint(i)
				if contained == nil {
					continue
				}
				fmt.Fprintf(os.Stdout, "  [%d] %s (%d entities)\n",
					i, labelOr(contained.Label, "(unnamed)"), len(contained.Entities))
			}
		}
		return nil
	},
}

func gameVersion(packed uint64) string {
	major, minor, patch := blueprint.GameVersion(packed)
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
