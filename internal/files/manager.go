package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	// CollectionFileName is the catalog consumed by the viewer.
	CollectionFileName = "collection.json"

	// RcloneConfigFileName is the default rclone config inside the data directory.
	RcloneConfigFileName = "rclone.conf"
)

// Manager centralizes where the catalog lives on disk and how it is replaced.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ./data (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	} else {
		basePath, err = normalizePath(basePath)
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the data directory.
func (m *Manager) BasePath() string {
	return m.basePath
}

// CollectionPath is the absolute path of collection.json.
func (m *Manager) CollectionPath() string {
	return filepath.Join(m.basePath, CollectionFileName)
}

// RcloneConfigPath is the default rclone config location.
func (m *Manager) RcloneConfigPath() string {
	return filepath.Join(m.basePath, RcloneConfigFileName)
}

// EnsureDir creates the data directory when missing.
func (m *Manager) EnsureDir() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}

// WriteFile atomically replaces path with data by writing a sibling temp
// file and renaming it into place. Existing file modes are preserved.
func (m *Manager) WriteFile(path string, data []byte) error {
	if err := m.EnsureDir(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	temp, err := os.CreateTemp(dir, "curtaincall-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(temp.Name(), path)
}
