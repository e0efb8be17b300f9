package cmd

import (
	"fmt"
	"strings"

	"github.com/sasaplus1/proto-plugin-crystal/src/internal/plugin"
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/tui"
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/ui"
	"github.com/spf13/cobra"
)

var listAllCmd = &cobra.Command{
	Use:   "list-all",
	Short: "List all released Crystal versions",
	Long: `Display every released Crystal version from the release catalog.

The nightly build is not listed. The latest release is marked.

Examples:
  proto-plugin-crystal list-all
  proto-plugin-crystal list-all --filter 1.1 --limit 10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, _ := cmd.Flags().GetString("filter")
		limit, _ := cmd.Flags().GetInt("limit")

		p, err := newPlugin()
		if err != nil {
			return err
		}

		var out plugin.LoadVersionsOutput
		err = ui.WithSpinner("Fetching available versions", func() error {
			var fetchErr error
			out, fetchErr = p.LoadVersions()
			return fetchErr
		})
		if err != nil {
			return fmt.Errorf("failed to fetch available versions: %w", err)
		}

		versions := filterVersions(out.Versions, filter, limit)
		if len(versions) == 0 {
			if filter != "" {
				ui.Warning("No versions match filter: %s", filter)
			} else {
				ui.Warning("No versions found")
			}
			return nil
		}

		table := tui.NewTable("", "Version")
		table.SetTitle("Crystal")
		for i, v := range versions {
			marker := ""
			if i == 0 && v == out.Versions[0] {
				marker = tui.GetCheckMark()
			}
			table.AddRow(marker, v)
		}

		fmt.Fprintln(cmd.OutOrStdout(), table.Render())
		ui.Success("Showing %d of %d version(s), latest %s", len(versions), len(out.Versions), ui.HighlightVersion(out.Versions[0]))
		return nil
	},
}

// filterVersions keeps versions containing filter, up to limit (0 means all).
func filterVersions(versions []string, filter string, limit int) []string {
	result := make([]string, 0, len(versions))
	for _, v := range versions {
		if filter != "" && !strings.Contains(v, filter) {
			continue
		}
		result = append(result, v)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result
}

func init() {
	listAllCmd.Flags().StringP("filter", "f", "", "Filter versions by substring (e.g., '1.11')")
	listAllCmd.Flags().IntP("limit", "l", 0, "Maximum number of versions to show (0 for all)")
	rootCmd.AddCommand(listAllCmd)
}
