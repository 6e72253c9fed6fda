package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/chazuruo/shellhist/internal/config"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

// OutputFormat defines the output format for the list command.
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatPlain OutputFormat = "plain"
	FormatJSON  OutputFormat = "json"
)

// ListOptions contains the options for the list command.
type ListOptions struct {
	ConfigPath string
	Format     string
	Last       int
}

// NewListCommand creates the list command for listing history entries.
func NewListCommand() *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List history entries, oldest first",
		Long: `List the commands currently stored in history, oldest first.

Examples:
  shellhist list                 # List all entries in table format
  shellhist list --last 10       # List the 10 most recent entries
  shellhist list --format json   # List entries in JSON format`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.Format, "format", "", "output format (table, plain, json)")
	cmd.Flags().IntVar(&opts.Last, "last", 0, "only show the N most recent entries")

	return cmd
}

func runList(opts *ListOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	mgr := openManager(cfg)
	entries := mgr.Store().Entries()

	if opts.Last > 0 && opts.Last < len(entries) {
		entries = entries[len(entries)-opts.Last:]
	}

	format := opts.Format
	if format == "" {
		format = cfg.Output.Format
	}

	switch OutputFormat(format) {
	case FormatJSON:
		return printJSON(entries)
	case FormatPlain:
		printPlain(entries, useColor(cfg))
		return nil
	case FormatTable:
		printTable(entries, useColor(cfg))
		return nil
	default:
		return fmt.Errorf("unknown format: %s (valid: table, plain, json)", format)
	}
}

// useColor reports whether styled output is wanted, combining the config
// setting with the global --no-color flag.
func useColor(cfg *config.Config) bool {
	return cfg.Output.Color && !IsNoColor()
}

func printJSON(entries []string) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

func printPlain(entries []string, color bool) {
	if len(entries) == 0 {
		fmt.Println("No commands in history.")
		return
	}

	header := fmt.Sprintf("History (%d commands)", len(entries))
	if color {
		header = headerStyle.Render(header)
	}
	fmt.Println(header)

	for _, entry := range entries {
		fmt.Println(entry)
	}
}

func printTable(entries []string, color bool) {
	if len(entries) == 0 {
		fmt.Println("No commands in history.")
		return
	}

	tbl := table.New("#", "Command")
	if color {
		tbl.WithHeaderFormatter(func(format string, vals ...interface{}) string {
			return headerStyle.Render(fmt.Sprintf(format, vals...))
		})
	}
	for i, entry := range entries {
		tbl.AddRow(i+1, entry)
	}
	tbl.Print()
}
