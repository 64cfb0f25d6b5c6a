// Package fs provides file-based storage for mappings and training examples.
package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/xwrap"
)

// Ensure MappingStore implements xwrap.MappingStore at compile time.
var _ xwrap.MappingStore = (*MappingStore)(nil)

// MappingStore reads and writes mappings as JSON objects of field name to
// path expression. Files are written with 4-space indentation and without
// HTML escaping, so non-ASCII text and markup characters stay readable.
type MappingStore struct{}

// NewMappingStore creates a new MappingStore.
func NewMappingStore() *MappingStore {
	return &MappingStore{}
}

// SaveMapping writes m to path. The file is written to a temporary file in
// the same directory and renamed into place, so readers never observe a
// partial mapping.
func (s *MappingStore) SaveMapping(path string, m xwrap.Mapping) error {
	data, err := EncodeMapping(m)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// LoadMapping reads a mapping from path.
func (s *MappingStore) LoadMapping(path string) (xwrap.Mapping, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, xwrap.Errorf(xwrap.ENOTFOUND, "mapping file %s not found", path)
	}
	if err != nil {
		return nil, err
	}

	var m xwrap.Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, xwrap.Errorf(xwrap.EINVALID, "invalid mapping file %s: %v", path, err)
	}
	if m == nil {
		m = xwrap.Mapping{}
	}
	return m, nil
}

// EncodeMapping renders m in the mapping file format.
func EncodeMapping(m xwrap.Mapping) ([]byte, error) {
	if m == nil {
		m = xwrap.Mapping{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
