package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chazuruo/shellhist/internal/config"
	"github.com/spf13/cobra"
)

// InitOptions contains the options for the init command.
type InitOptions struct {
	ConfigPath string
	Force      bool
}

// NewInitCommand creates the init command for writing a default config file.
func NewInitCommand() *cobra.Command {
	opts := &InitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a configuration file populated with default values.

The file is written to ~/.config/shellhist/config.toml unless --config is
given. Existing files are not overwritten without --force.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite an existing config file")

	return cmd
}

func runInit(opts *InitOptions) error {
	path := opts.ConfigPath
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".config", "shellhist", "config.toml")
	}

	if _, err := os.Stat(path); err == nil && !opts.Force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	if err := config.Write(path, config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Printf("Wrote config to %s\n", path)
	return nil
}
