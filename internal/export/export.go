// Package export provides history snapshot export in various formats.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Format represents the export format.
type Format string

const (
	// FormatMarkdown exports as Markdown.
	FormatMarkdown Format = "md"
	// FormatYAML exports as YAML.
	FormatYAML Format = "yaml"
	// FormatJSON exports as JSON.
	FormatJSON Format = "json"
)

// Snapshot is an exportable view of the history at a point in time.
type Snapshot struct {
	// Version is the application version taking the snapshot.
	Version string `json:"version" yaml:"version"`

	// Commands holds the history entries, oldest first.
	Commands []string `json:"commands" yaml:"commands"`
}

// Exporter exports history snapshots in various formats.
type Exporter struct {
	format  Format
	outPath string
}

// Options contains export options.
type Options struct {
	Format Format
	// Out is the destination file path. Empty or "-" means the caller
	// receives the output string only.
	Out string
}

// NewExporter creates a new exporter.
func NewExporter(opts Options) (*Exporter, error) {
	switch opts.Format {
	case FormatMarkdown, FormatYAML, FormatJSON:
	default:
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}

	return &Exporter{
		format:  opts.Format,
		outPath: opts.Out,
	}, nil
}

// Export renders the snapshot and, if an output path was configured, writes
// it there. The rendered output is returned either way.
func (e *Exporter) Export(snap *Snapshot) (string, error) {
	output, err := e.render(snap)
	if err != nil {
		return "", err
	}

	if e.outPath != "" && e.outPath != "-" {
		if err := os.WriteFile(e.outPath, []byte(output), 0644); err != nil {
			return "", fmt.Errorf("writing output file: %w", err)
		}
	}

	return output, nil
}

func (e *Exporter) render(snap *Snapshot) (string, error) {
	switch e.format {
	case FormatJSON:
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding json: %w", err)
		}
		return string(data) + "\n", nil

	case FormatYAML:
		data, err := yaml.Marshal(snap)
		if err != nil {
			return "", fmt.Errorf("encoding yaml: %w", err)
		}
		return string(data), nil

	case FormatMarkdown:
		tmpl, err := template.New("export").Parse(builtinMarkdownTemplate)
		if err != nil {
			return "", fmt.Errorf("parsing template: %w", err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, snap); err != nil {
			return "", fmt.Errorf("executing template: %w", err)
		}
		return buf.String(), nil

	default:
		return "", fmt.Errorf("unsupported format: %s", e.format)
	}
}

// builtinMarkdownTemplate is the default Markdown template.
const builtinMarkdownTemplate = "# Shell History\n\n{{if .Version}}**Version:** {{.Version}}\n\n{{end}}{{if .Commands}}{{range .Commands}}```sh\n{{.}}\n```\n\n{{end}}{{else}}_No commands recorded._\n{{end}}"
