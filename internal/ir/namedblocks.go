package ir

import (
	"fmt"

	"github.com/swansonlang/s0/internal/names"
)

type namedBlockEntry struct {
	name  *names.Name
	block *Block
}

// NamedBlocks is an ordered Name→Block map; keys are unique. It is the
// branch table of a closure (create-closure's Branches, and the
// loader's module-wrapping of the top-level block).
type NamedBlocks struct {
	entries []namedBlockEntry
}

func NewNamedBlocks() *NamedBlocks {
	return &NamedBlocks{}
}

func (n *NamedBlocks) indexOf(name *names.Name) int {
	for i, entry := range n.entries {
		if names.Equal(entry.name, name) {
			return i
		}
	}
	return -1
}

// Add binds name to block. It fails if name is already present.
func (n *NamedBlocks) Add(name *names.Name, block *Block) error {
	if n.indexOf(name) >= 0 {
		return fmt.Errorf("named blocks already has %q", name.HumanReadable())
	}
	n.entries = append(n.entries, namedBlockEntry{name: name, block: block})
	return nil
}

// Get returns the block bound to name, or nil if absent.
func (n *NamedBlocks) Get(name *names.Name) *Block {
	if i := n.indexOf(name); i >= 0 {
		return n.entries[i].block
	}
	return nil
}

// Size returns the number of named blocks.
func (n *NamedBlocks) Size() int {
	return len(n.entries)
}

// At returns the (name, block) pair at insertion-order position i.
func (n *NamedBlocks) At(i int) (*names.Name, *Block) {
	entry := n.entries[i]
	return entry.name, entry.block
}
