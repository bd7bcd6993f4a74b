package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/factorio-tools/bpeditor/internal/blueprint/codec"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <string|file|->",
	Short: "Decode an exchange string to JSON",
	Long: `Decode a blueprint exchange string and print the contained document
as pretty JSON. The argument may be the string itself, a file containing
one, or "-" to read from stdin.`,
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

		var doc any
		switch kind {
		case codec.KindBlueprint:
			doc = map[string]any{"blueprint": bp}
		case codec.KindBook:
			doc = map[string]any{"blueprint_book": book}
		default:
			return errors.New("unknown document kind")
		}

		out, err := sonic.ConfigDefault.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
