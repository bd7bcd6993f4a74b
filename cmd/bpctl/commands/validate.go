package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/factorio-tools/bpeditor/internal/blueprint/codec"
	"github.com/factorio-tools/bpeditor/internal/editor"
)

var validateCmd = &cobra.Command{
	Use:   "validate <string|file|->",
	Short: "Validate a blueprint or book",
	Long: `Decode an exchange string and report validation findings: overlapping
entities, unknown prototypes, bad directions, icon problems. Findings are
advisory; the game may still import a blueprint with warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readArgument(args[0])
		if err != nil {
			return err
		}

		bp, book, kind, err := codec.DecodeAny(strings.TrimSpace(input))
		if err != nil {
			return err
		}

		var issues []editor.Issue
		switch kind {
		case codec.KindBlueprint:
			issues = editor.Wrap(bp).Validate()
		case codec.KindBook:
			issues = editor.WrapBook(book).Validate()
		}

		if len(issues) == 0 {
			color.Green("no issues found")
			return nil
		}
		for _, issue := range issues {
			switch issue.Severity {
			case editor.SeverityError:
				fmt.Fprintln(os.Stdout, color.RedString("error: %s", issue.Message))
			default:
				fmt.Fprintln(os.Stdout, color.YellowString("warning: %s", issue.Message))
			}
		}
		return fmt.Errorf("%d issue(s) found", len(issues))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
