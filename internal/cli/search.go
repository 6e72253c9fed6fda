package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
)

// SearchOptions contains the options for the search command.
type SearchOptions struct {
	ConfigPath string
}

// NewSearchCommand creates the search command for finding history entries.
func NewSearchCommand() *cobra.Command {
	opts := &SearchOptions{}

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search history entries",
		Long: `Search the history for commands containing the given term.

Matching is case-insensitive (Unicode case folding). Results are printed
oldest first with their history position.

Examples:
  shellhist search git
  shellhist search "docker run"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")

	return cmd
}

var matchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

func runSearch(opts *SearchOptions, term string) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	mgr := openManager(cfg)
	entries := mgr.Store().Entries()

	fold := cases.Fold()
	needle := fold.String(term)

	matches := 0
	for i, entry := range entries {
		if !strings.Contains(fold.String(entry), needle) {
			continue
		}
		matches++

		line := entry
		if useColor(cfg) {
			line = matchStyle.Render(line)
		}
		fmt.Printf("%4d  %s\n", i+1, line)
	}

	if matches == 0 {
		fmt.Printf("No commands matching %q.\n", term)
	}
	return nil
}
