// Package names implements S₀'s Name and the small ordered,
// duplicate-free Set keyed by it.
package names

import "bytes"

// Name is an immutable byte-string identifier. Two names are equal iff
// they have the same length and the same bytes; embedded zero bytes
// are permitted and significant.
type Name struct {
	content []byte
}

// New copies b into a new Name.
func New(b []byte) *Name {
	content := make([]byte, len(b))
	copy(content, b)
	return &Name{content: content}
}

// NewFromString is a convenience constructor for names built from Go
// string literals.
func NewFromString(s string) *Name {
	return New([]byte(s))
}

// Bytes returns the name's raw content. Callers must not mutate it.
func (n *Name) Bytes() []byte {
	return n.content
}

// Size returns the number of bytes in the name.
func (n *Name) Size() int {
	return len(n.content)
}

// Equal reports whether a and b have identical content. Equality is
// length-then-byte comparison, never by identity.
func Equal(a, b *Name) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return bytes.Equal(a.content, b.content)
}

// HumanReadable renders the name for diagnostics only; it is never used
// as a lookup key. Non-printable bytes are not specially escaped.
func (n *Name) HumanReadable() string {
	return string(n.content)
}

func (n *Name) String() string {
	return n.HumanReadable()
}
