package history

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	herrors "github.com/chazuruo/shellhist/internal/errors"
)

// Manager owns the process-wide history Store and its persisted file. It
// loads the file once at startup and writes it back on demand; the Store
// itself never touches the filesystem.
type Manager struct {
	store   *Store
	path    string
	version string

	// loadedVersion is the producer version found in the file at Load time.
	loadedVersion string
}

// NewManager creates a Manager persisting to path, with the given history
// capacity and the running application's version string (written to new
// files).
func NewManager(path string, maxSize int, version string) *Manager {
	return &Manager{
		store:   New(maxSize),
		path:    path,
		version: version,
	}
}

// Store returns the managed history store.
func (m *Manager) Store() *Store {
	return m.store
}

// LoadedVersion returns the producer version of the file read by Load, or the
// empty string if the file was missing or untagged.
func (m *Manager) LoadedVersion() string {
	return m.loadedVersion
}

// Load populates the store from the persisted file.
//
// A missing or unopenable file means "no prior history": the store is left
// empty and Load returns nil, so startup never fails for lack of a history
// file. A malformed file keeps every command parsed before the failure and
// returns a *errors.ParseError for the caller to log; the partial history
// stays usable.
func (m *Manager) Load() error {
	m.store.Clear()

	f, err := os.Open(m.path)
	if err != nil {
		return nil
	}
	defer f.Close()

	reader := NewReader()
	version, err := reader.Read(f, m.store)
	m.loadedVersion = version
	if err != nil {
		return &herrors.ParseError{Path: m.path, Version: version, Err: err}
	}
	return nil
}

// Save snapshots the store and writes it to the persisted file, tagged with
// the current application version. The snapshot is written to a uniquely
// named temp file in the same directory and renamed into place, so a crash
// mid-write never leaves a truncated history file behind.
func (m *Manager) Save() error {
	entries := m.store.Entries()

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &herrors.SaveError{Path: m.path, Err: fmt.Errorf("%w: %w", herrors.ErrIO, err)}
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(m.path), uuid.New().String()))
	f, err := os.Create(tmp)
	if err != nil {
		return &herrors.SaveError{Path: m.path, Err: fmt.Errorf("%w: %w", herrors.ErrIO, err)}
	}

	if err := Write(f, entries, m.version); err != nil {
		f.Close()
		os.Remove(tmp)
		return &herrors.SaveError{Path: m.path, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return &herrors.SaveError{Path: m.path, Err: fmt.Errorf("%w: %w", herrors.ErrIO, err)}
	}

	if err := os.Rename(tmp, m.path); err != nil {
		os.Remove(tmp)
		return &herrors.SaveError{Path: m.path, Err: fmt.Errorf("%w: %w", herrors.ErrIO, err)}
	}
	return nil
}
