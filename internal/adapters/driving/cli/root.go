// Package cli provides the wpdocs command-line interface.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wpdocs/internal/core/ports/driving"
	"github.com/custodia-labs/wpdocs/internal/logger"
)

// version is set by SetVersion, normally from build flags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services used by commands. They are built from the config directory on
// first use unless injected with SetServices.
var (
	dispatcher      driving.ToolDispatcher
	settingsService driving.SettingsService
	configPath      string
)

var rootCmd = &cobra.Command{
	Use:   "wpdocs",
	Short: "WordPress documentation lookups from the terminal or over MCP",
	Long: `wpdocs searches the WordPress developer documentation, the code reference
and the WordPress VIP documentation, and prints plain-text summaries.

The same lookups are available to AI assistants through "wpdocs mcp serve".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if dispatcher != nil && settingsService != nil {
			return nil
		}
		return buildServices(configDir)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.wpdocs)")
}

// SetVersion sets the version reported by the version command and used in
// the User-Agent header.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices injects the driving ports used by commands.
func SetServices(d driving.ToolDispatcher, s driving.SettingsService, path string) {
	dispatcher = d
	settingsService = s
	configPath = path
}

// Execute runs the root command. Command output goes to stdout and
// diagnostics to stderr.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}
