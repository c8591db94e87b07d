package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "beacon-cli",
	Short: "Beacon House site tool",
	Long: `beacon-cli works with the Beacon House landing page without running the server.

Available commands:
  render      Render the landing page to a static HTML file
  benefits    List the benefits catalog shown in the bridge section

Use "beacon-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
