package cli

import (
	"fmt"

	"github.com/chazuruo/shellhist/internal/export"
	"github.com/spf13/cobra"
)

// ExportOptions contains the options for the export command.
type ExportOptions struct {
	ConfigPath string
	Format     string
	Out        string
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the history snapshot",
		Long: `Export the current history in a portable format.

Examples:
  shellhist export                       # Markdown to stdout
  shellhist export --format json         # JSON to stdout
  shellhist export --format yaml --out history.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.Format, "format", "md", "export format (md, json, yaml)")
	cmd.Flags().StringVar(&opts.Out, "out", "", "output file path (default stdout)")

	return cmd
}

func runExport(opts *ExportOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	mgr := openManager(cfg)

	exporter, err := export.NewExporter(export.Options{
		Format: export.Format(opts.Format),
		Out:    opts.Out,
	})
	if err != nil {
		return err
	}

	snap := &export.Snapshot{
		Version:  AppVersion(),
		Commands: mgr.Store().Entries(),
	}

	output, err := exporter.Export(snap)
	if err != nil {
		return fmt.Errorf("failed to export history: %w", err)
	}

	if opts.Out == "" || opts.Out == "-" {
		fmt.Print(output)
	} else {
		fmt.Printf("Exported %d commands to %s\n", len(snap.Commands), opts.Out)
	}
	return nil
}
