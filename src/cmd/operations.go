package cmd

import (
	"fmt"

	"github.com/sasaplus1/proto-plugin-crystal/src/internal/plugin"
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/tui"
	"github.com/spf13/cobra"
)

var operationDescriptions = map[string]string{
	plugin.OpRegisterTool:       "Plugin metadata",
	plugin.OpLoadVersions:       "All released versions, in catalog order",
	plugin.OpDownloadPrebuilt:   "Archive URL and file name for a version",
	plugin.OpLocateExecutables:  "crystal and shards paths inside the archive",
	plugin.OpResolveVersion:     "Resolve latest, stable, canary or * to a version",
	plugin.OpDetectVersionFiles: "Pin files the plugin can read",
	plugin.OpParseVersionFile:   "Extract the pinned version from a file",
}

var operationsCmd = &cobra.Command{
	Use:   "operations",
	Short: "List the operations the host can call",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		table := tui.NewTable("Operation", "Description")
		table.SetTitle("Operations")
		for _, name := range operationNames() {
			table.AddRow(name, operationDescriptions[name])
		}
		fmt.Fprintln(cmd.OutOrStdout(), table.Render())
	},
}

func init() {
	rootCmd.AddCommand(operationsCmd)
}
