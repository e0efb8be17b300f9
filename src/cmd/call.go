package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sasaplus1/proto-plugin-crystal/src/internal/plugin"
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/ui"
	"github.com/spf13/cobra"
)

var callInput string

var callCmd = &cobra.Command{
	Use:   "call <operation>",
	Short: "Run a plugin operation with a JSON request",
	Long: `Run one plugin operation. The JSON request is read from stdin (or --input)
and the JSON response is written to stdout.

Operations:
  ` + strings.Join(operationNames(), "\n  ") + `

Examples:
  proto-plugin-crystal call register_tool
  echo '{"initial":"latest"}' | proto-plugin-crystal call resolve_version
  echo '{"context":{"version":"1.10.0"}}' | proto-plugin-crystal call download_prebuilt --host-os linux --host-arch x64`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlugin()
		if err != nil {
			return err
		}

		input := []byte(callInput)
		if !cmd.Flags().Changed("input") {
			input, err = io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
		}

		ui.Debug("Calling %s with %d byte payload", args[0], len(input))
		out, err := plugin.Operations(p).Call(args[0], input)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	},
}

// operationNames lists registered operations without needing a live plugin.
func operationNames() []string {
	return plugin.Operations(plugin.New(nil, nil)).Names()
}

func init() {
	callCmd.Flags().StringVarP(&callInput, "input", "i", "", "JSON request (default: read stdin)")
	rootCmd.AddCommand(callCmd)
}
