package xwrap

import (
	"sort"
	"strings"
)

// Mapping maps field names to the path expressions that extract them.
type Mapping map[string]string

// Fields returns the field names of the mapping, sorted.
func (m Mapping) Fields() []string {
	fields := make([]string, 0, len(m))
	for field := range m {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Validate returns an error if the mapping is empty or has blank entries.
func (m Mapping) Validate() error {
	if len(m) == 0 {
		return Errorf(EINVALID, "mapping has no fields")
	}
	for field, path := range m {
		if field == "" {
			return Errorf(EINVALID, "mapping has an unnamed field")
		}
		if path == "" {
			return Errorf(EINVALID, "mapping field %q has no path", field)
		}
	}
	return nil
}

// Apply resolves every field's path against doc and joins the resulting
// text fragments with a single space.
func (m Mapping) Apply(doc Document) (map[string]string, error) {
	values := make(map[string]string, len(m))
	for _, field := range m.Fields() {
		fragments, err := doc.Resolve(m[field])
		if err != nil {
			return nil, err
		}
		values[field] = strings.Join(fragments, " ")
	}
	return values, nil
}

// MappingStore persists mappings as files.
type MappingStore interface {
	// SaveMapping writes the mapping to path, replacing any existing file.
	SaveMapping(path string, m Mapping) error

	// LoadMapping reads a mapping from path.
	// Returns ENOTFOUND if the file does not exist.
	LoadMapping(path string) (Mapping, error)
}
