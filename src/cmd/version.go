package cmd

import (
	"fmt"

	"github.com/sasaplus1/proto-plugin-crystal/src/internal/plugin"
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/tui"
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/ui"
	"github.com/spf13/cobra"
)

// Version can be set at build time using ldflags
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the plugin version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		content := fmt.Sprintf("proto-plugin-crystal %s (plugin %s, minimum host %s)",
			tui.RenderVersion(Version), ui.HighlightVersion(plugin.Metadata.PluginVersion),
			ui.HighlightVersion(plugin.Metadata.MinimumProtoVersion))
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderInfoBox(content))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
