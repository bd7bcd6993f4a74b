package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/factorio-tools/bpeditor/internal/analyze"
)

var analyzeLimit int

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file|dir>",
	Short: "Analyze every exchange string found in a file or directory",
	Long: `Scan a text file or a directory tree for exchange strings and report
what each one contains, followed by a batch summary. Strings that fail to
decode are reported individually without aborting the scan.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reports, summary, err := analyze.Tree(args[0])
		if err != nil {
			return err
		}

		shown := 0
		for _, r := range reports {
			if shown >= analyzeLimit {
				break
			}
			shown++
			printReport(r)
		}
		if len(reports) > shown {
			fmt.Fprintf(os.Stdout, "\n... and %d more\n", len(reports)-shown)
		}

		bold := color.New(color.Bold)
		bold.Fprintln(os.Stdout, "\nSummary")
		fmt.Fprintf(os.Stdout, "  Strings found:     %d\n", summary.TotalStrings)
		fmt.Fprintf(os.Stdout, "  Valid:             %d\n", summary.Valid)
		fmt.Fprintf(os.Stdout, "  Blueprints:        %d\n", summary.Blueprints)
		fmt.Fprintf(os.Stdout, "  Blueprint books:   %d\n", summary.Books)
		fmt.Fprintf(os.Stdout, "  Invalid:           %d\n", summary.Invalid)
		fmt.Fprintf(os.Stdout, "  Total entities:    %d\n", summary.TotalEntities)
		if summary.MostComplexLabel != "" {
			fmt.Fprintf(os.Stdout, "  Most complex:      %q with %d entities\n",
				summary.MostComplexLabel, summary.MostComplexEntities)
		}
		return nil
	},
}

func printReport(r analyze.Report) {
	header := fmt.Sprintf("--- #%d", r.Index)
	if r.Source != "" {
		header += " (" + r.Source + ")"
	}
	fmt.Fprintln(os.Stdout, header)

	if !r.Valid {
		fmt.Fprintln(os.Stdout, color.RedString("  error: %s", r.Error))
		return
	}

	fmt.Fprintf(os.Stdout, "  %s: %s\n", r.Kind, r.Label)
	switch r.Kind {
	case "blueprint":
		fmt.Fprintf(os.Stdout, "  entities: %d, tiles: %d\n", r.TotalEntities, r.TotalTiles)
		if len(r.EntityNames) > 0 {
			names := r.EntityNames
			more := ""
			if len(names) > 5 {
				more = fmt.Sprintf(" ... and %d more", len(names)-5)
				names = names[:5]
			}
			fmt.Fprintf(os.Stdout, "  types: %s%s\n", strings.Join(names, ", "), more)
		}
	case "blueprint_book":
		fmt.Fprintf(os.Stdout, "  blueprints: %d, entities: %d\n", r.TotalBlueprints, r.TotalEntities)
		for i, label := range r.BlueprintLabels {
			if i >= 5 {
				fmt.Fprintf(os.Stdout, "    ... and %d more\n", len(r.BlueprintLabels)-5)
				break
			}
			fmt.Fprintf(os.Stdout, "    - %s\n", label)
		}
	}
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeLimit, "limit", 5, "maximum per-string reports to print")
	rootCmd.AddCommand(analyzeCmd)
}
