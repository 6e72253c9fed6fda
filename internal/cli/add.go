// Package cli provides Cobra command definitions for shellhist.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// AddOptions contains the options for the add command.
type AddOptions struct {
	ConfigPath string
}

// NewAddCommand creates the add command for appending a command to history.
func NewAddCommand() *cobra.Command {
	opts := &AddOptions{}

	cmd := &cobra.Command{
		Use:   "add <command>...",
		Short: "Append an executed command to the history",
		Long: `Append an executed command to the history file.

The command text is trimmed before storing; commands that are empty after
trimming are dropped. When the history exceeds its configured capacity, the
oldest commands are evicted first.

Examples:
  shellhist add ls -la
  shellhist add "git commit -m 'fix'"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")

	return cmd
}

func runAdd(opts *AddOptions, command string) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	mgr := openManager(cfg)
	mgr.Store().Append(command)

	if err := mgr.Save(); err != nil {
		return err
	}
	return nil
}
