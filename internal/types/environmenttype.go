package types

import (
	"fmt"

	"github.com/swansonlang/s0/internal/names"
)

// envEntry is one (name, type) slot of an EnvironmentType, kept in
// insertion order.
type envEntry struct {
	name *names.Name
	typ  EntityType
}

// EnvironmentType is an ordered Name→EntityType map with set-like key
// semantics: each name appears at most once, insertion order is
// observable, and deletions simply remove the slot (iteration never
// revisits a deleted entry).
type EnvironmentType struct {
	entries []envEntry
}

func NewEnvironmentType() *EnvironmentType {
	return &EnvironmentType{}
}

func (e *EnvironmentType) indexOf(name *names.Name) int {
	for i, entry := range e.entries {
		if names.Equal(entry.name, name) {
			return i
		}
	}
	return -1
}

// Has reports whether name is bound in this environment type.
func (e *EnvironmentType) Has(name *names.Name) bool {
	return e.indexOf(name) >= 0
}

// Add binds name to typ. It fails if name is already present.
func (e *EnvironmentType) Add(name *names.Name, typ EntityType) error {
	if e.Has(name) {
		return fmt.Errorf("environment type already has %q", name.HumanReadable())
	}
	e.entries = append(e.entries, envEntry{name: name, typ: typ})
	return nil
}

// Get returns the type bound to name, or nil if absent.
func (e *EnvironmentType) Get(name *names.Name) EntityType {
	if i := e.indexOf(name); i >= 0 {
		return e.entries[i].typ
	}
	return nil
}

// Delete removes name and returns its type. It fails if name is absent.
func (e *EnvironmentType) Delete(name *names.Name) (EntityType, error) {
	i := e.indexOf(name)
	if i < 0 {
		return nil, fmt.Errorf("environment type has no %q", name.HumanReadable())
	}
	typ := e.entries[i].typ
	e.entries = append(e.entries[:i], e.entries[i+1:]...)
	return typ, nil
}

// Size returns the number of bound names.
func (e *EnvironmentType) Size() int {
	return len(e.entries)
}

// At returns the (name, type) pair at insertion-order position i.
func (e *EnvironmentType) At(i int) (*names.Name, EntityType) {
	entry := e.entries[i]
	return entry.name, entry.typ
}

// Copy returns a deep copy, including contained entity types.
func (e *EnvironmentType) Copy() *EnvironmentType {
	out := &EnvironmentType{entries: make([]envEntry, len(e.entries))}
	for i, entry := range e.entries {
		out.entries[i] = envEntry{name: entry.name, typ: entry.typ.Copy()}
	}
	return out
}

// Extract atomically moves exactly the names in keys from src into
// dest. It fails, leaving both src and dest unchanged, if any key is
// missing from src or already present in dest.
func Extract(dest, src *EnvironmentType, keys *names.Set) error {
	moved := make([]envEntry, 0, keys.Size())
	for i := 0; i < keys.Size(); i++ {
		key := keys.At(i)
		if dest.Has(key) {
			return fmt.Errorf("extract: destination already has %q", key.HumanReadable())
		}
		j := src.indexOf(key)
		if j < 0 {
			return fmt.Errorf("extract: source has no %q", key.HumanReadable())
		}
		moved = append(moved, src.entries[j])
	}
	// All keys resolved; now actually remove them from src and add to dest.
	for i := 0; i < keys.Size(); i++ {
		key := keys.At(i)
		j := src.indexOf(key)
		src.entries = append(src.entries[:j], src.entries[j+1:]...)
	}
	for _, entry := range moved {
		dest.entries = append(dest.entries, entry)
	}
	return nil
}

// keySet returns the set of bound names, used for order-insensitive
// key-set comparisons.
func (e *EnvironmentType) keySet() map[string]*names.Name {
	out := make(map[string]*names.Name, len(e.entries))
	for _, entry := range e.entries {
		out[string(entry.name.Bytes())] = entry.name
	}
	return out
}

// IsSubtypeOfType reports whether e <: other: same key set, and for
// each key k, e[k] <: other[k].
func (e *EnvironmentType) IsSubtypeOfType(other *EnvironmentType) bool {
	if e.Size() != other.Size() {
		return false
	}
	eKeys := e.keySet()
	oKeys := other.keySet()
	if len(eKeys) != len(oKeys) {
		return false
	}
	for k, name := range eKeys {
		if _, ok := oKeys[k]; !ok {
			return false
		}
		if !e.Get(name).IsSubtypeOf(other.Get(name)) {
			return false
		}
	}
	return true
}

// SatisfiedByType is the require-side spelling of IsSubtypeOfType:
// "have meets what this requires" iff have <: this.
func (e *EnvironmentType) SatisfiedByType(have *EnvironmentType) bool {
	return have.IsSubtypeOfType(e)
}

// AddExternalInputs inserts, for each entry (from, to, t) in mapping,
// key `from` with type t. Fails if any `from` is already present.
func (e *EnvironmentType) AddExternalInputs(mapping *NameMapping) error {
	for i := 0; i < mapping.Size(); i++ {
		entry := mapping.At(i)
		if err := e.Add(entry.From, entry.Type.Copy()); err != nil {
			return err
		}
	}
	return nil
}

// AddInternalInputs inserts, for each entry (from, to, t) in mapping,
// key `to` with type t. Fails if any `to` is already present.
func (e *EnvironmentType) AddInternalInputs(mapping *NameMapping) error {
	for i := 0; i < mapping.Size(); i++ {
		entry := mapping.At(i)
		if err := e.Add(entry.To, entry.Type.Copy()); err != nil {
			return err
		}
	}
	return nil
}
