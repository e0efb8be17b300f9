// Package cmd implements the command line front end of the Crystal plugin
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sasaplus1/proto-plugin-crystal/src/internal/catalog"
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/hostenv"
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/platform"
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/plugin"
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/tui"
	"github.com/sasaplus1/proto-plugin-crystal/src/internal/ui"
	"github.com/spf13/cobra"
)

// CatalogURLKey lets configuration override the catalog endpoint.
const CatalogURLKey = "catalog_url"

var (
	verbose    bool
	configFile string
	hostOS     string
	hostArch   string
	catalogURL string
)

var rootCmd = &cobra.Command{
	Use:   "proto-plugin-crystal",
	Short: "Crystal toolchain plugin for proto-style version managers",
	Long: `Resolves Crystal versions, download archives, executable locations and
version pin files for a tool version manager.

The host calls operations with "call <operation>", passing the JSON request on
stdin and reading the JSON response from stdout. Diagnostics go to stderr.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.CheckVerboseEnv()
		if verbose {
			ui.SetVerbose(true)
		}
	},
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError writes a failed command's error to w in an error box.
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, tui.RenderErrorBox("Error: "+err.Error()))
}

func init() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&verbose, "verbose", false, "Enable verbose output for debugging")
	flags.StringVar(&configFile, "config", "", "TOML file with a [config] table of plugin settings")
	flags.StringVar(&hostOS, "host-os", "", "Host OS (linux, macos, windows); overrides host_environment")
	flags.StringVar(&hostArch, "host-arch", "", "Host architecture (x64, arm64); overrides host_environment")
	flags.StringVar(&catalogURL, "catalog-url", "", "Override the release catalog URL")
}

// configSource layers flags over the config file over the environment. A
// single host flag replaces only its half of the host platform the rest of
// the chain describes.
func configSource() (hostenv.Source, error) {
	var rest hostenv.Chain

	if configFile != "" {
		fs, err := hostenv.LoadFile(configFile)
		if err != nil {
			return nil, err
		}
		ui.Debug("Loaded config file: %s", fs.Path())
		rest = append(rest, fs)
	}
	rest = append(rest, hostenv.EnvSource{})

	if hostOS == "" && hostArch == "" {
		return rest, nil
	}

	var d platform.Descriptor
	if hostOS == "" || hostArch == "" {
		base, err := hostenv.Platform(rest)
		if err != nil && !hostenv.IsMissingConfig(err) {
			return nil, err
		}
		d = base
	}
	if hostOS != "" {
		d.OS = platform.OS(hostOS)
	}
	if hostArch != "" {
		d.Arch = platform.Arch(hostArch)
	}
	ui.Debug("Host platform from flags: %s", d)

	flags := hostenv.MapSource{hostenv.HostEnvironmentKey: hostenv.Encode(d)}
	return append(hostenv.Chain{flags}, rest...), nil
}

// newPlugin builds the plugin from the global flags.
func newPlugin() (*plugin.Plugin, error) {
	config, err := configSource()
	if err != nil {
		return nil, err
	}

	url := catalogURL
	if url == "" {
		if v, ok := config.Get(CatalogURLKey); ok && v != "" {
			url = v
		} else {
			url = catalog.DefaultURL
		}
	}
	ui.Debug("Catalog URL: %s", url)

	return plugin.New(catalog.NewHTTPSource(url), config), nil
}

// resetFlags restores flag variables between in-process invocations.
func resetFlags() {
	verbose = false
	configFile = ""
	hostOS = ""
	hostArch = ""
	catalogURL = ""
	callInput = ""
	if f := callCmd.Flags().Lookup("input"); f != nil {
		f.Changed = false
	}
}
