package state

import "sort"

// VarStore holds editor configuration variables such as the popup command
// tables.
type VarStore interface {
	Get(name string) (string, bool)
	Set(name, value string)
	Unset(name string)
	Names() []string
	Snapshot() map[string]string
}

type varStore struct {
	values map[string]string
}

func NewVarStore() VarStore {
	return &varStore{values: make(map[string]string)}
}

func (s *varStore) Get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

func (s *varStore) Set(name, value string) {
	s.values[name] = value
}

func (s *varStore) Unset(name string) {
	delete(s.values, name)
}

// Names returns the variable names in sorted order.
func (s *varStore) Names() []string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *varStore) Snapshot() map[string]string {
	dup := make(map[string]string, len(s.values))
	for k, v := range s.values {
		dup[k] = v
	}
	return dup
}
