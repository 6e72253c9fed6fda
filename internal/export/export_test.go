package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNewExporter_UnsupportedFormat(t *testing.T) {
	if _, err := NewExporter(Options{Format: "csv"}); err == nil {
		t.Error("NewExporter() should reject unsupported formats")
	}
}

func TestExportJSON(t *testing.T) {
	e, err := NewExporter(Options{Format: FormatJSON})
	if err != nil {
		t.Fatalf("NewExporter() error = %v", err)
	}

	snap := &Snapshot{
		Version:  "1.0.0",
		Commands: []string{"cd /tmp", "ls"},
	}

	output, err := e.Export(snap)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded Snapshot
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, output)
	}
	if decoded.Version != snap.Version {
		t.Errorf("version = %q, want %q", decoded.Version, snap.Version)
	}
	if len(decoded.Commands) != 2 || decoded.Commands[0] != "cd /tmp" {
		t.Errorf("commands = %v, want %v", decoded.Commands, snap.Commands)
	}
}

func TestExportYAML(t *testing.T) {
	e, err := NewExporter(Options{Format: FormatYAML})
	if err != nil {
		t.Fatalf("NewExporter() error = %v", err)
	}

	snap := &Snapshot{
		Version:  "1.0.0",
		Commands: []string{`echo "quoted"`},
	}

	output, err := e.Export(snap)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded Snapshot
	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, output)
	}
	if len(decoded.Commands) != 1 || decoded.Commands[0] != `echo "quoted"` {
		t.Errorf("commands = %v, want %v", decoded.Commands, snap.Commands)
	}
}

func TestExportMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		snap     *Snapshot
		contains []string
	}{
		{
			name: "commands render as code blocks",
			snap: &Snapshot{
				Version:  "1.0.0",
				Commands: []string{"ls -la", "git status"},
			},
			contains: []string{"# Shell History", "**Version:** 1.0.0", "```sh\nls -la\n```", "```sh\ngit status\n```"},
		},
		{
			name:     "empty history notes the absence",
			snap:     &Snapshot{Version: "1.0.0"},
			contains: []string{"_No commands recorded._"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewExporter(Options{Format: FormatMarkdown})
			if err != nil {
				t.Fatalf("NewExporter() error = %v", err)
			}

			output, err := e.Export(tt.snap)
			if err != nil {
				t.Fatalf("Export() error = %v", err)
			}

			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q:\n%s", want, output)
				}
			}
		})
	}
}

func TestExportToFile(t *testing.T) {
	tmpDir := t.TempDir()
	outPath := filepath.Join(tmpDir, "history.json")

	e, err := NewExporter(Options{Format: FormatJSON, Out: outPath})
	if err != nil {
		t.Fatalf("NewExporter() error = %v", err)
	}

	if _, err := e.Export(&Snapshot{Version: "1.0.0", Commands: []string{"ls"}}); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if !strings.Contains(string(data), `"ls"`) {
		t.Errorf("output file missing command:\n%s", data)
	}
}
