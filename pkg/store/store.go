// Package store persists the address book and user preferences under a data
// directory.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"tableflip.dev/roster/pkg/model"
)

// Storage defines the persistence contract used by the logic layer.
type Storage interface {
	AddressBookFilePath() string
	// ReadAddressBook returns an error matching os.ErrNotExist when no
	// address book has been saved yet.
	ReadAddressBook() (*model.AddressBook, error)
	SaveAddressBook(ab model.ReadOnlyAddressBook) error
	ReadUserPrefs() (model.UserPrefs, error)
	SaveUserPrefs(prefs model.UserPrefs) error
}

// Load creates a Storage rooted at the configured base path. Preferences are
// read first since they may point the address book at another file.
func Load(cfg Config) (*Manager, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	m := &Manager{basePath: basePath, prefs: newPrefsStore(basePath)}
	prefs, err := m.ReadUserPrefs()
	if err != nil {
		return nil, err
	}
	m.file = m.resolve(prefs.AddressBookFilePath)
	return m, nil
}

// Manager stores the address book as a JSON file and the preferences in a
// diskv store next to it.
type Manager struct {
	basePath string
	file     string
	prefs    *prefsStore

	mu          sync.Mutex
	lastWritten []byte
}

var _ Storage = (*Manager)(nil)

func (m *Manager) BasePath() string {
	return m.basePath
}

func (m *Manager) AddressBookFilePath() string {
	return m.file
}

func (m *Manager) resolve(path string) string {
	if path == "" {
		path = model.DefaultAddressBookFile
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.basePath, path)
}

func (m *Manager) ReadAddressBook() (*model.AddressBook, error) {
	data, err := os.ReadFile(m.file)
	if err != nil {
		return nil, err
	}
	ab, err := unmarshalAddressBook(data)
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w", m.file, err)
	}
	return ab, nil
}

// SaveAddressBook writes a temp file and renames it into place. Errors keep
// the underlying *fs.PathError so callers can tell permission problems apart.
func (m *Manager) SaveAddressBook(ab model.ReadOnlyAddressBook) error {
	data, err := marshalAddressBook(ab)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(m.file), 0o755); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tmp := m.file + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, m.file); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	m.lastWritten = data
	return nil
}

// wroteLast reports whether data is what this Manager last saved.
func (m *Manager) wroteLast(data []byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastWritten != nil && string(m.lastWritten) == string(data)
}

func (m *Manager) ReadUserPrefs() (model.UserPrefs, error) {
	return m.prefs.Read()
}

func (m *Manager) SaveUserPrefs(prefs model.UserPrefs) error {
	return m.prefs.Save(prefs)
}
