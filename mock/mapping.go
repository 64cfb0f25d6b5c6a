package mock

import "github.com/fwojciec/xwrap"

var _ xwrap.MappingStore = (*MappingStore)(nil)

// MappingStore is a mock implementation of xwrap.MappingStore.
type MappingStore struct {
	SaveMappingFn func(path string, m xwrap.Mapping) error
	LoadMappingFn func(path string) (xwrap.Mapping, error)
}

func (s *MappingStore) SaveMapping(path string, m xwrap.Mapping) error {
	return s.SaveMappingFn(path, m)
}

func (s *MappingStore) LoadMapping(path string) (xwrap.Mapping, error) {
	return s.LoadMappingFn(path)
}
