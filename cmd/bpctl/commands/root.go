package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bpctl",
	Short: "bpctl - Factorio blueprint toolbox",
	Long: `bpctl inspects and converts Factorio blueprint exchange strings.

Exchange strings are the base64 blobs the game exports: a version byte
followed by zlib-compressed JSON. bpctl decodes them to readable JSON,
encodes JSON back into importable strings, and reports statistics and
validation findings for blueprints and blueprint books.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
	}
	return err
}

// SetVersion sets the version shown by --version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// readArgument resolves a positional argument that may be an exchange
// string, a path to a file containing one, or "-" for stdin.
func readArgument(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		data, err := os.ReadFile(arg)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", arg, err)
		}
		return string(data), nil
	}
	return arg, nil
}
