package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/factorio-tools/bpeditor/internal/blueprint"
	"github.com/factorio-tools/bpeditor/internal/blueprint/codec"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <json-file|->",
	Short: "Encode blueprint JSON into an exchange string",
	Long: `Encode a JSON document into an importable exchange string. The input
must be a blueprint or blueprint book envelope, the same shape "bpctl
decode" prints. Missing item and version fields are filled in.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readArgument(args[0])
		if err != nil {
			return err
		}

		var env struct {
			Blueprint *blueprint.Blueprint     `json:"blueprint"`
			Book      *blueprint.BlueprintBook `json:"blueprint_book"`
		}
		if err := sonic.Unmarshal([]byte(input), &env); err != nil {
			return fmt.Errorf("parse JSON: %w", err)
		}

		var s string
		switch {
		case env.Blueprint != nil:
			if env.Blueprint.Item == "" {
				env.Blueprint.Item = "blueprint"
			}
			if env.Blueprint.Version == 0 {
				env.Blueprint.Version = blueprint.DefaultVersion
			}
			s, err = codec.Encode(env.Blueprint)
		case env.Book != nil:
			if env.Book.Item == "" {
				env.Book.Item = "blueprint-book"
			}
			if env.Book.Version == 0 {
				env.Book.Version = blueprint.DefaultVersion
			}
			s, err = codec.EncodeBook(env.Book)
		default:
			return errors.New("input has neither a blueprint nor a blueprint_book envelope")
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, s)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
