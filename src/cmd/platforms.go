package cmd

import (
	"fmt"

	"github.com/sasaplus1/proto-plugin-crystal/src/internal/artifact"
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/platform"
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/tui"
	"github.com/spf13/cobra"
)

// archiveWidth keeps the platforms table readable for long version strings.
const archiveWidth = 56

var platformsCmd = &cobra.Command{
	Use:   "platforms [version]",
	Short: "Show supported platforms and their archives",
	Long: `Show every supported OS/architecture pair with the archive and primary
executable used for a version. The current platform is highlighted.

Examples:
  proto-plugin-crystal platforms
  proto-plugin-crystal platforms 1.11.2`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version := "<version>"
		if len(args) == 1 {
			version = args[0]
		}

		current := platform.Current()
		table := tui.NewTable("OS", "Arch", "Archive", "Executable")
		table.SetTitle("Supported platforms")
		table.SetMaxWidth(2, archiveWidth)

		for _, p := range platform.Supported() {
			ref, err := artifact.DownloadReference(version, p)
			if err != nil {
				return err
			}
			exes, err := artifact.LocateExecutables(version, p)
			if err != nil {
				return err
			}

			cells := []string{string(p.OS), string(p.Arch), ref.Name, exes[artifact.ToolCrystal].Path}
			if p == current {
				table.AddActiveRow(cells...)
			} else {
				table.AddRow(cells...)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), table.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(platformsCmd)
}
