// Package doctree declares the tree-document interface the loader
// consumes: a tree-structured textual document exposing tagged
// scalar/sequence/mapping nodes with source positions. The loader
// depends only on these interfaces; internal/doctree/yamldoc supplies
// the one concrete implementation, built on gopkg.in/yaml.v3.
package doctree

import "errors"

// Kind is the shape of a document node.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Position is a (line, column) source location for diagnostics.
type Position struct {
	Line   int
	Column int
}

// Node is one node of a parsed tree document.
type Node interface {
	// Kind reports whether this node is a scalar, sequence, or mapping.
	Kind() Kind
	// Tag returns the node's explicit or resolved tag, e.g.
	// "tag:swanson-lang.org,2016:s0/create-atom".
	Tag() string
	// HasTag reports whether Tag() equals tag.
	HasTag(tag string) bool
	// IsMissing reports whether this node is the "missing node"
	// sentinel returned by MappingGet for an absent key.
	IsMissing() bool
	// StartMark returns the node's source position.
	StartMark() Position

	// ScalarContent returns a scalar node's raw content.
	ScalarContent() []byte
	// ScalarSize returns len(ScalarContent()).
	ScalarSize() int

	// SequenceSize returns the number of elements of a sequence node.
	SequenceSize() int
	// SequenceAt returns the element at index i of a sequence node.
	SequenceAt(i int) Node

	// MappingSize returns the number of key/value pairs of a mapping
	// node.
	MappingSize() int
	// MappingKeyAt returns the key node at index i.
	MappingKeyAt(i int) Node
	// MappingValueAt returns the value node at index i.
	MappingValueAt(i int) Node
	// MappingGet returns the value bound to the scalar key str, or the
	// IsMissing() sentinel if absent.
	MappingGet(str string) Node
}

// ErrNoMoreDocuments is the "no more documents" sentinel returned by
// Stream.ParseDocument, distinct from a parse error.
var ErrNoMoreDocuments = errors.New("doctree: no more documents")

// Stream is a document stream: a source of zero or more top-level
// documents, each exposed as a root Node.
type Stream interface {
	// ParseDocument returns the next document's root node, or
	// ErrNoMoreDocuments when the stream is exhausted.
	ParseDocument() (Node, error)
	// LastError returns the most recent diagnostic raised on this
	// stream, or "" if none. It is overwritten by the next failure.
	LastError() string
	// Close releases the stream and any file it opened.
	Close() error
}
