package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type fileDefaults struct {
	root string
	ext  string
}

// NewFileDefaults creates a Defaults backed by the filesystem. Each key is
// one file under root named after the key, with ext appended when non-empty.
func NewFileDefaults(root, ext string) Defaults {
	return &fileDefaults{root: root, ext: ext}
}

func (d *fileDefaults) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("store: invalid key %q", key)
	}
	name := key
	if d.ext != "" {
		name += "." + d.ext
	}
	return filepath.Join(d.root, name), nil
}

func (d *fileDefaults) Get(key string) ([]byte, error) {
	path, err := d.path(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, key, err)
	}

	return data, nil
}

func (d *fileDefaults) Set(key string, data []byte) error {
	path, err := d.path(key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, key, err)
	}

	tmp, err := os.CreateTemp(d.root, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, key, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, key, err)
	}

	return nil
}

func (d *fileDefaults) Remove(key string) error {
	path, err := d.path(key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoveFailed, err)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %s: %v", ErrRemoveFailed, key, err)
	}
	return nil
}
