package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File stores the slot as <dir>/<key>.json.
type File struct {
	key  string
	path string
}

var keyCleaner = strings.NewReplacer("/", "_", "\\", "_", "..", "_")

// OpenFile prepares a file slot, creating dir when missing.
func OpenFile(dir, key string) (*File, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create slot directory: %w", err)
	}
	name := keyCleaner.Replace(strings.TrimSpace(key)) + ".json"
	return &File{key: key, path: filepath.Join(dir, name)}, nil
}

func (f *File) Key() string { return f.key }

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

func (f *File) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read slot %q: %w", f.key, err)
	}
	return data, true, nil
}

// Save writes to a temporary file in the same directory and renames it over
// the slot, so readers never observe a partial snapshot.
func (f *File) Save(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save slot %q: %w", f.key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save slot %q: %w", f.key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save slot %q: %w", f.key, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save slot %q: %w", f.key, err)
	}
	return nil
}

func (f *File) Close() error { return nil }
