package main

import (
	"fmt"
	"os"

	"github.com/chazuruo/shellhist/internal/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time using ldflags
var Version = "dev"

// Commit is set at build time using ldflags
var Commit = "unknown"

// Date is set at build time using ldflags
var Date = "unknown"

func main() {
	cli.SetAppVersion(Version)

	rootCmd := &cobra.Command{
		Use:   "shellhist",
		Short: "Bounded, persisted shell-command history",
		Long: `shellhist keeps the most recent shell commands you have executed in a
bounded history file, survives restarts, and reads files written by older
versions of the application.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(cli.NewInitCommand())
	rootCmd.AddCommand(cli.NewAddCommand())
	rootCmd.AddCommand(cli.NewListCommand())
	rootCmd.AddCommand(cli.NewSearchCommand())
	rootCmd.AddCommand(cli.NewClearCommand())
	rootCmd.AddCommand(cli.NewExportCommand())
	rootCmd.AddCommand(cli.NewVersionCommand(Version, Commit, Date))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
