package types

import (
	"fmt"

	"github.com/swansonlang/s0/internal/names"
)

// NameMappingEntry is one (from, to, type) triple of a NameMapping.
type NameMappingEntry struct {
	From *names.Name
	To   *names.Name
	Type EntityType
}

// NameMapping is an ordered sequence of (from, to, type) entries, used
// to describe invocation parameters and closure external/internal
// inputs. `From` values are unique across the mapping; `to` values are
// unique across the mapping, but a `from` may equal some other
// entry's `to`.
type NameMapping struct {
	entries []NameMappingEntry
}

func NewNameMapping() *NameMapping {
	return &NameMapping{}
}

// Add appends (from, to, typ). It fails if from is already a key or to
// is already a renamed target.
func (m *NameMapping) Add(from, to *names.Name, typ EntityType) error {
	for _, e := range m.entries {
		if names.Equal(e.From, from) {
			return fmt.Errorf("name mapping already renames %q", from.HumanReadable())
		}
		if names.Equal(e.To, to) {
			return fmt.Errorf("name mapping already has target %q", to.HumanReadable())
		}
	}
	m.entries = append(m.entries, NameMappingEntry{From: from, To: to, Type: typ})
	return nil
}

// Size returns the number of entries.
func (m *NameMapping) Size() int {
	return len(m.entries)
}

// At returns the entry at position i.
func (m *NameMapping) At(i int) NameMappingEntry {
	return m.entries[i]
}

// Get performs a linear scan for the entry whose From matches name.
func (m *NameMapping) Get(name *names.Name) (NameMappingEntry, bool) {
	for _, e := range m.entries {
		if names.Equal(e.From, name) {
			return e, true
		}
	}
	return NameMappingEntry{}, false
}

// GetFrom performs a linear scan for the entry whose To matches name.
func (m *NameMapping) GetFrom(name *names.Name) (NameMappingEntry, bool) {
	for _, e := range m.entries {
		if names.Equal(e.To, name) {
			return e, true
		}
	}
	return NameMappingEntry{}, false
}

// Copy returns a deep copy, including contained entity types.
func (m *NameMapping) Copy() *NameMapping {
	out := &NameMapping{entries: make([]NameMappingEntry, len(m.entries))}
	for i, e := range m.entries {
		out.entries[i] = NameMappingEntry{From: e.From, To: e.To, Type: e.Type.Copy()}
	}
	return out
}
