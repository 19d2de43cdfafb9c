package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Dir is a Store where each key is the file "<key>.json" in a directory.
type Dir struct {
	path string
}

// NewDir returns a Store in the directory 'path', creating it if needed.
func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create store directory %q: %w", path, err)
	}
	return &Dir{path: path}, nil
}

// Path returns the directory of the store.
func (d *Dir) Path() string { return d.path }

func (d *Dir) file(key string) string { return filepath.Join(d.path, key+".json") }

func (d *Dir) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(d.file(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read key %q: %w", key, err)
	}
	return data, nil
}

// Put writes every entry to a temporary file, then renames them all in place.
//
// A failure while writing leaves the previous files untouched. Each rename
// is atomic but the set is not: if a rename fails, the keys renamed before it
// hold the new documents and the others the previous ones. Redis has no such
// window, see [Redis.Put].
func (d *Dir) Put(_ context.Context, entries map[string][]byte) error {
	temps := make(map[string]string, len(entries))
	defer func() {
		for _, tmp := range temps {
			os.Remove(tmp)
		}
	}()

	for key, value := range entries {
		f, err := os.CreateTemp(d.path, key+".*.tmp")
		if err != nil {
			return fmt.Errorf("cannot write key %q: %w", key, err)
		}
		temps[key] = f.Name()
		_, err = f.Write(value)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("cannot write key %q: %w", key, err)
		}
	}

	for key, tmp := range temps {
		if err := os.Rename(tmp, d.file(key)); err != nil {
			return fmt.Errorf("cannot write key %q: %w", key, err)
		}
		delete(temps, key)
	}
	return nil
}

func (d *Dir) Close() error { return nil }
