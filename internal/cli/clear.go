package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ClearOptions contains the options for the clear command.
type ClearOptions struct {
	ConfigPath string
	Yes        bool
}

// NewClearCommand creates the clear command for emptying the history.
func NewClearCommand() *cobra.Command {
	opts := &ClearOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all history entries",
		Long: `Remove all commands from the history and persist the empty state.

Requires --yes to run non-interactively; there is no undo.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "confirm clearing the history")

	return cmd
}

func runClear(opts *ClearOptions) error {
	if !opts.Yes {
		return fmt.Errorf("refusing to clear history without --yes")
	}

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	mgr := openManager(cfg)
	removed := mgr.Store().Len()
	mgr.Store().Clear()

	if err := mgr.Save(); err != nil {
		return err
	}

	fmt.Printf("Cleared %d commands.\n", removed)
	return nil
}
