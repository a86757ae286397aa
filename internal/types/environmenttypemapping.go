package types

import (
	"fmt"

	"github.com/swansonlang/s0/internal/names"
)

type envTypeMapEntry struct {
	name *names.Name
	env  *EnvironmentType
}

// EnvironmentTypeMapping is an ordered Name→EnvironmentType map, used
// for closure branch signatures. Keys are unique.
type EnvironmentTypeMapping struct {
	entries []envTypeMapEntry
}

func NewEnvironmentTypeMapping() *EnvironmentTypeMapping {
	return &EnvironmentTypeMapping{}
}

func (m *EnvironmentTypeMapping) indexOf(name *names.Name) int {
	for i, entry := range m.entries {
		if names.Equal(entry.name, name) {
			return i
		}
	}
	return -1
}

// Add binds name to env. It fails if name is already present.
func (m *EnvironmentTypeMapping) Add(name *names.Name, env *EnvironmentType) error {
	if m.indexOf(name) >= 0 {
		return fmt.Errorf("environment type mapping already has branch %q", name.HumanReadable())
	}
	m.entries = append(m.entries, envTypeMapEntry{name: name, env: env})
	return nil
}

// Get returns the environment type bound to name, or nil if absent.
func (m *EnvironmentTypeMapping) Get(name *names.Name) *EnvironmentType {
	if i := m.indexOf(name); i >= 0 {
		return m.entries[i].env
	}
	return nil
}

// Size returns the number of branches.
func (m *EnvironmentTypeMapping) Size() int {
	return len(m.entries)
}

// At returns the (name, env type) pair at insertion-order position i.
func (m *EnvironmentTypeMapping) At(i int) (*names.Name, *EnvironmentType) {
	entry := m.entries[i]
	return entry.name, entry.env
}

// Copy returns a deep copy.
func (m *EnvironmentTypeMapping) Copy() *EnvironmentTypeMapping {
	out := &EnvironmentTypeMapping{entries: make([]envTypeMapEntry, len(m.entries))}
	for i, entry := range m.entries {
		out.entries[i] = envTypeMapEntry{name: entry.name, env: entry.env.Copy()}
	}
	return out
}
