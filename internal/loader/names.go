package loader

import (
	"github.com/swansonlang/s0/internal/doctree"
	"github.com/swansonlang/s0/internal/names"
)

func (l *Loader) loadName(node doctree.Node) (*names.Name, error) {
	if err := l.ensureScalar(node, "name"); err != nil {
		return nil, err
	}
	return names.New(node.ScalarContent()), nil
}

func (l *Loader) loadNameSet(node doctree.Node) (*names.Set, error) {
	if err := l.ensureSequence(node, "name set"); err != nil {
		return nil, err
	}
	set := names.NewSet()
	for i := 0; i < node.SequenceSize(); i++ {
		name, err := l.loadName(node.SequenceAt(i))
		if err != nil {
			return nil, err
		}
		if set.Contains(name) {
			return nil, l.fail(node.SequenceAt(i).StartMark(), "duplicate name %q in name set", name.HumanReadable())
		}
		if err := set.Add(name); err != nil {
			return nil, l.fail(node.StartMark(), "%s", err)
		}
	}
	return set, nil
}
