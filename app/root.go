// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		"",
		"Directory holding main.toml (default ./etc/)",
	)
}

var rootCmd = &cobra.Command{
	Use:   "marogo-web",
	Short: "marogo-web serves the Marogo Civils website and content console",
	Long: `marogo-web is the self-hosted website of Marogo Civils: the public
marketing pages and a session-gated admin console for managing projects,
services, blog posts and the other site content.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
