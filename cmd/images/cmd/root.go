// Package cmd implements the images service CLI commands.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version information set by main.
var (
	// Version is the release version.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd is the base command for the images CLI.
var rootCmd = &cobra.Command{
	Use:   "images",
	Short: "Open Collective image service",
	Long: `The images service generates and proxies collective images:
member-count badges, logos, background images, member banners, and
individual member avatars.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetVersionInfo records the build metadata shown by the version command.
func SetVersionInfo(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
	rootCmd.Version = version
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	viper.AutomaticEnv()
}
