// Package yamldoc implements doctree.Node/doctree.Stream on top of
// gopkg.in/yaml.v3's yaml.Node tree. yaml.Node already exposes node
// kind, resolved tag, content, and line/column, so the adapter stays
// thin.
package yamldoc

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/swansonlang/s0/internal/doctree"
)

// missingNode is the IsMissing() sentinel returned by MappingGet for
// an absent key.
type missingNode struct{}

func (missingNode) Kind() doctree.Kind               { return doctree.KindScalar }
func (missingNode) Tag() string                      { return "" }
func (missingNode) HasTag(string) bool                { return false }
func (missingNode) IsMissing() bool                  { return true }
func (missingNode) StartMark() doctree.Position      { return doctree.Position{} }
func (missingNode) ScalarContent() []byte            { return nil }
func (missingNode) ScalarSize() int                  { return 0 }
func (missingNode) SequenceSize() int                { return 0 }
func (missingNode) SequenceAt(int) doctree.Node      { return missingNode{} }
func (missingNode) MappingSize() int                 { return 0 }
func (missingNode) MappingKeyAt(int) doctree.Node    { return missingNode{} }
func (missingNode) MappingValueAt(int) doctree.Node  { return missingNode{} }
func (missingNode) MappingGet(string) doctree.Node   { return missingNode{} }

// Missing is the shared IsMissing() sentinel node.
var Missing doctree.Node = missingNode{}

// Node adapts a *yaml.Node into doctree.Node.
type Node struct {
	n *yaml.Node
}

// Wrap adapts a raw *yaml.Node, unwrapping a top-level DocumentNode if
// given one.
func Wrap(n *yaml.Node) doctree.Node {
	if n == nil {
		return Missing
	}
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return Missing
		}
		n = n.Content[0]
	}
	return &Node{n: n}
}

func (w *Node) Kind() doctree.Kind {
	switch w.n.Kind {
	case yaml.ScalarNode:
		return doctree.KindScalar
	case yaml.SequenceNode:
		return doctree.KindSequence
	case yaml.MappingNode:
		return doctree.KindMapping
	default:
		// Alias nodes are not followed: yaml.v3 keeps them as
		// AliasNode (with no Content), and Wrap does not resolve them,
		// so they report here as scalars.
		return doctree.KindScalar
	}
}

func (w *Node) Tag() string {
	return w.n.Tag
}

func (w *Node) HasTag(tag string) bool {
	return w.n.Tag == tag
}

func (w *Node) IsMissing() bool { return false }

func (w *Node) StartMark() doctree.Position {
	return doctree.Position{Line: w.n.Line, Column: w.n.Column}
}

func (w *Node) ScalarContent() []byte {
	return []byte(w.n.Value)
}

func (w *Node) ScalarSize() int {
	return len(w.n.Value)
}

func (w *Node) SequenceSize() int {
	return len(w.n.Content)
}

func (w *Node) SequenceAt(i int) doctree.Node {
	if i < 0 || i >= len(w.n.Content) {
		return Missing
	}
	return Wrap(w.n.Content[i])
}

func (w *Node) MappingSize() int {
	return len(w.n.Content) / 2
}

func (w *Node) MappingKeyAt(i int) doctree.Node {
	idx := i * 2
	if idx < 0 || idx >= len(w.n.Content) {
		return Missing
	}
	return Wrap(w.n.Content[idx])
}

func (w *Node) MappingValueAt(i int) doctree.Node {
	idx := i*2 + 1
	if idx < 0 || idx >= len(w.n.Content) {
		return Missing
	}
	return Wrap(w.n.Content[idx])
}

func (w *Node) MappingGet(key string) doctree.Node {
	for i := 0; i+1 < len(w.n.Content); i += 2 {
		if w.n.Content[i].Value == key {
			return Wrap(w.n.Content[i+1])
		}
	}
	return Missing
}

// Stream implements doctree.Stream over a yaml.Decoder reading
// successive documents from an underlying io.Reader.
type Stream struct {
	dec      *yaml.Decoder
	closer   io.Closer
	lastErr  string
}

// OpenFile opens path and returns a Stream over it.
func OpenFile(path string) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Stream{dec: yaml.NewDecoder(f), closer: f}, nil
}

// OpenFromFile wraps an already-open *os.File, taking ownership of it
// (Close() will close the file).
func OpenFromFile(f *os.File) *Stream {
	return &Stream{dec: yaml.NewDecoder(f), closer: f}
}

// OpenBytes opens an in-memory document stream.
func OpenBytes(b []byte) *Stream {
	return &Stream{dec: yaml.NewDecoder(bytes.NewReader(b))}
}

func (s *Stream) ParseDocument() (doctree.Node, error) {
	var doc yaml.Node
	if err := s.dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, doctree.ErrNoMoreDocuments
		}
		s.lastErr = err.Error()
		return nil, fmt.Errorf("yamldoc: %w", err)
	}
	return Wrap(&doc), nil
}

func (s *Stream) LastError() string {
	return s.lastErr
}

func (s *Stream) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
