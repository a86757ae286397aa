package entity

import (
	"fmt"

	"github.com/swansonlang/s0/internal/names"
)

type envEntry struct {
	name   *names.Name
	entity Entity
}

// Environment is an ordered Name→Entity map used to resolve names
// during (future) execution.
type Environment struct {
	entries []envEntry
}

func NewEnvironment() *Environment {
	return &Environment{}
}

func (e *Environment) indexOf(name *names.Name) int {
	for i, entry := range e.entries {
		if names.Equal(entry.name, name) {
			return i
		}
	}
	return -1
}

// Add binds name to ent. Fails if name is already present.
func (e *Environment) Add(name *names.Name, ent Entity) error {
	if e.indexOf(name) >= 0 {
		return fmt.Errorf("environment already has %q", name.HumanReadable())
	}
	e.entries = append(e.entries, envEntry{name: name, entity: ent})
	return nil
}

// Get returns the entity bound to name, or nil if absent.
func (e *Environment) Get(name *names.Name) Entity {
	if i := e.indexOf(name); i >= 0 {
		return e.entries[i].entity
	}
	return nil
}

// Delete removes name and returns its entity. Fails if name is absent.
func (e *Environment) Delete(name *names.Name) (Entity, error) {
	i := e.indexOf(name)
	if i < 0 {
		return nil, fmt.Errorf("environment has no %q", name.HumanReadable())
	}
	ent := e.entries[i].entity
	e.entries = append(e.entries[:i], e.entries[i+1:]...)
	return ent, nil
}

// Size returns the number of bound names.
func (e *Environment) Size() int {
	return len(e.entries)
}

// At returns the (name, entity) pair at insertion-order position i.
func (e *Environment) At(i int) (*names.Name, Entity) {
	entry := e.entries[i]
	return entry.name, entry.entity
}
