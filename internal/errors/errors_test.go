package errors_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	herrors "github.com/chazuruo/shellhist/internal/errors"
)

// TestBaseErrors verifies that all base error types have correct messages.
func TestBaseErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrIO", herrors.ErrIO, "I/O error"},
		{"ErrMalformed", herrors.ErrMalformed, "malformed history file"},
		{"ErrInvalid", herrors.ErrInvalid, "invalid"},
		{"ErrNotFound", herrors.ErrNotFound, "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestParseError verifies ParseError formatting and unwrapping.
func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *herrors.ParseError
		want string
	}{
		{
			name: "with version",
			err:  &herrors.ParseError{Path: "/tmp/history.xml", Version: "0.9.0", Err: herrors.ErrMalformed},
			want: "parse /tmp/history.xml (written by 0.9.0): malformed history file",
		},
		{
			name: "without version",
			err:  &herrors.ParseError{Path: "/tmp/history.xml", Err: herrors.ErrMalformed},
			want: "parse /tmp/history.xml: malformed history file",
		},
		{
			name: "wrapped custom error",
			err:  &herrors.ParseError{Path: "h.xml", Err: fmt.Errorf("custom error")},
			want: "parse h.xml: custom error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("Unwrap returns original error", func(t *testing.T) {
		original := herrors.ErrMalformed
		wrapped := &herrors.ParseError{Path: "h.xml", Err: original}
		if !errors.Is(wrapped, original) {
			t.Error("Unwrap() did not return the original error for errors.Is")
		}
	})
}

// TestSaveError verifies SaveError formatting and unwrapping.
func TestSaveError(t *testing.T) {
	tests := []struct {
		name string
		err  *herrors.SaveError
		want string
	}{
		{
			name: "wrapped sentinel",
			err:  &herrors.SaveError{Path: "/tmp/history.xml", Err: herrors.ErrIO},
			want: "save /tmp/history.xml: I/O error",
		},
		{
			name: "wrapped os error",
			err:  &herrors.SaveError{Path: "h.xml", Err: os.ErrPermission},
			want: "save h.xml: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("Unwrap returns original error", func(t *testing.T) {
		original := herrors.ErrIO
		wrapped := &herrors.SaveError{Path: "h.xml", Err: original}
		if !errors.Is(wrapped, original) {
			t.Error("Unwrap() did not return the original error for errors.Is")
		}
	})
}

// TestConfigError verifies ConfigError formatting and unwrapping.
func TestConfigError(t *testing.T) {
	tests := []struct {
		name string
		err  *herrors.ConfigError
		want string
	}{
		{
			name: "with path",
			err:  &herrors.ConfigError{Path: "/tmp/config.toml", Err: herrors.ErrInvalid},
			want: "config /tmp/config.toml: invalid",
		},
		{
			name: "without path",
			err:  &herrors.ConfigError{Err: herrors.ErrInvalid},
			want: "config: invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestWrap verifies error wrapping with operation context.
func TestWrap(t *testing.T) {
	wrapped := herrors.Wrap(herrors.ErrIO, "loadHistory")

	if got, want := wrapped.Error(), "loadHistory: I/O error"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(wrapped, herrors.ErrIO) {
		t.Error("Wrap() broke the error chain for errors.Is")
	}
}

// TestIsHelpers verifies the Is* helper functions.
func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name  string
		check func(error) bool
		err   error
		want  bool
	}{
		{"IsIO direct", herrors.IsIO, herrors.ErrIO, true},
		{"IsIO wrapped", herrors.IsIO, herrors.Wrap(herrors.ErrIO, "op"), true},
		{"IsIO mismatch", herrors.IsIO, herrors.ErrMalformed, false},
		{"IsMalformed direct", herrors.IsMalformed, herrors.ErrMalformed, true},
		{"IsMalformed wrapped", herrors.IsMalformed, fmt.Errorf("ctx: %w", herrors.ErrMalformed), true},
		{"IsInvalid direct", herrors.IsInvalid, herrors.ErrInvalid, true},
		{"IsNotFound mismatch", herrors.IsNotFound, herrors.ErrIO, false},
		{"nil error", herrors.IsIO, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("check(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// TestAsHelpers verifies the As* helper functions.
func TestAsHelpers(t *testing.T) {
	t.Run("AsParseError finds nested error", func(t *testing.T) {
		inner := &herrors.ParseError{Path: "h.xml", Version: "0.9.0", Err: herrors.ErrMalformed}
		wrapped := herrors.Wrap(inner, "load")

		pe, ok := herrors.AsParseError(wrapped)
		if !ok {
			t.Fatal("AsParseError() = false, want true")
		}
		if pe.Version != "0.9.0" {
			t.Errorf("Version = %q, want %q", pe.Version, "0.9.0")
		}
	})

	t.Run("AsSaveError rejects other types", func(t *testing.T) {
		if _, ok := herrors.AsSaveError(herrors.ErrIO); ok {
			t.Error("AsSaveError() = true, want false")
		}
	})

	t.Run("AsConfigError finds nested error", func(t *testing.T) {
		inner := &herrors.ConfigError{Path: "c.toml", Err: herrors.ErrInvalid}
		if _, ok := herrors.AsConfigError(herrors.Wrap(inner, "startup")); !ok {
			t.Error("AsConfigError() = false, want true")
		}
	})
}
