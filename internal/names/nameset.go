package names

import "fmt"

// Set is an ordered, duplicate-free collection of names. Insertion
// order is preserved and observable via At.
type Set struct {
	items []*Name
}

func NewSet() *Set {
	return &Set{}
}

// Contains reports whether n (by value) is already in the set.
func (s *Set) Contains(n *Name) bool {
	for _, item := range s.items {
		if Equal(item, n) {
			return true
		}
	}
	return false
}

// Add appends n to the set. It fails if an equal name is already
// present.
func (s *Set) Add(n *Name) error {
	if s.Contains(n) {
		return fmt.Errorf("name set already contains %q", n.HumanReadable())
	}
	s.items = append(s.items, n)
	return nil
}

// Size returns the number of names in the set.
func (s *Set) Size() int {
	return len(s.items)
}

// At returns the name inserted at position i.
func (s *Set) At(i int) *Name {
	return s.items[i]
}

// Copy returns a deep copy of the set (names themselves are immutable
// and so are shared, not re-copied byte-for-byte).
func (s *Set) Copy() *Set {
	out := &Set{items: make([]*Name, len(s.items))}
	copy(out.items, s.items)
	return out
}
