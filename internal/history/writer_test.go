package history

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	herrors "github.com/chazuruo/shellhist/internal/errors"
)

func TestWriteGolden(t *testing.T) {
	entries := []string{
		"cd /tmp",
		`echo "hello & goodbye"`,
		`grep -E '<body>' index.html`,
	}

	var buf bytes.Buffer
	if err := Write(&buf, entries, "1.4.2"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	g := goldie.New(t)
	g.Assert(t, "write", buf.Bytes())
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		version string
	}{
		{
			name:    "plain commands",
			entries: []string{"cd /tmp", "ls", "pwd"},
			version: "1.0.0",
		},
		{
			name:    "empty history",
			entries: nil,
			version: "1.0.0",
		},
		{
			name:    "markup characters in commands",
			entries: []string{`echo "<command>"`, "cat a && cat b", "awk '{print $1}'"},
			version: "1.0.0",
		},
		{
			name:    "multi-line command",
			entries: []string{"for f in *; do\n  echo $f\ndone"},
			version: "1.0.0",
		},
		{
			name:    "markup characters in version",
			entries: []string{"ls"},
			version: `1.0.0-rc<"&">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tt.entries, tt.version); err != nil {
				t.Fatalf("Write() error = %v", err)
			}

			var got []string
			version, err := NewReader().Read(&buf, AppendFunc(func(cmd string) { got = append(got, cmd) }))
			if err != nil {
				t.Fatalf("Read() error = %v\nserialized:\n%s", err, buf.String())
			}

			if version != tt.version {
				t.Errorf("version = %q, want %q", version, tt.version)
			}
			if len(got) != len(tt.entries) {
				t.Fatalf("round-trip produced %d commands %v, want %d %v", len(got), got, len(tt.entries), tt.entries)
			}
			for i := range tt.entries {
				if got[i] != tt.entries[i] {
					t.Errorf("command[%d] = %q, want %q", i, got[i], tt.entries[i])
				}
			}
		})
	}
}

// failWriter fails every write, standing in for an unwritable destination.
type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("destination not writable")
}

func TestWriteFailure(t *testing.T) {
	err := Write(failWriter{}, []string{"ls"}, "1.0.0")
	if err == nil {
		t.Fatal("Write() error = nil, want I/O error")
	}
	if !herrors.IsIO(err) {
		t.Errorf("Write() error = %v, want ErrIO", err)
	}
	if !strings.Contains(err.Error(), "destination not writable") {
		t.Errorf("Write() error = %v, missing underlying cause", err)
	}
}
