package loader

import (
	"github.com/swansonlang/s0/internal/config"
	"github.com/swansonlang/s0/internal/doctree"
	"github.com/swansonlang/s0/internal/types"
)

// loadEntityType dispatches on the node's tag to one of the four
// entity-type productions.
func (l *Loader) loadEntityType(node doctree.Node) (types.EntityType, error) {
	if err := l.ensureMapping(node, "entity type"); err != nil {
		return nil, err
	}
	switch {
	case node.HasTag(config.AnyTag):
		return types.NewAny(), nil
	case node.HasTag(config.ClosureTag):
		return l.loadClosureEntityType(node)
	case node.HasTag(config.MethodTag):
		return l.loadMethodEntityType(node)
	case node.HasTag(config.ObjectTag):
		return l.loadObjectEntityType(node)
	default:
		return nil, l.fail(node.StartMark(), "Unknown entity type")
	}
}

func (l *Loader) loadClosureEntityType(node doctree.Node) (types.EntityType, error) {
	item, err := l.requireKey(node, "branches", "closure entity type")
	if err != nil {
		return nil, err
	}
	branches, err := l.loadEnvironmentTypeMapping(item)
	if err != nil {
		return nil, err
	}
	return types.NewClosure(branches), nil
}

func (l *Loader) loadMethodEntityType(node doctree.Node) (types.EntityType, error) {
	item, err := l.requireKey(node, "inputs", "method entity type")
	if err != nil {
		return nil, err
	}
	inputs, err := l.loadEnvironmentType(item)
	if err != nil {
		return nil, err
	}
	return types.NewMethod(inputs), nil
}

func (l *Loader) loadObjectEntityType(node doctree.Node) (types.EntityType, error) {
	elements, err := l.loadEnvironmentType(node)
	if err != nil {
		return nil, err
	}
	return types.NewObject(elements), nil
}

// loadEnvironmentType loads a plain (untagged) mapping of name→entity
// type, e.g. a block's "inputs" or an object type's elements.
func (l *Loader) loadEnvironmentType(node doctree.Node) (*types.EnvironmentType, error) {
	if err := l.ensureMapping(node, "environment type"); err != nil {
		return nil, err
	}
	envType := types.NewEnvironmentType()
	for i := 0; i < node.MappingSize(); i++ {
		keyNode := node.MappingKeyAt(i)
		name, err := l.loadName(keyNode)
		if err != nil {
			return nil, err
		}
		if envType.Has(name) {
			return nil, l.fail(keyNode.StartMark(), "There is already an environment type entry named %q", name.HumanReadable())
		}
		etype, err := l.loadEntityType(node.MappingValueAt(i))
		if err != nil {
			return nil, err
		}
		if err := envType.Add(name, etype); err != nil {
			return nil, l.fail(node.StartMark(), "%s", err)
		}
	}
	return envType, nil
}

// loadEnvironmentTypeMapping loads a mapping of branch name→environment
// type, used as a closure entity type's branch signatures.
func (l *Loader) loadEnvironmentTypeMapping(node doctree.Node) (*types.EnvironmentTypeMapping, error) {
	if err := l.ensureMapping(node, "environment type mapping"); err != nil {
		return nil, err
	}
	mapping := types.NewEnvironmentTypeMapping()
	for i := 0; i < node.MappingSize(); i++ {
		keyNode := node.MappingKeyAt(i)
		name, err := l.loadName(keyNode)
		if err != nil {
			return nil, err
		}
		if mapping.Get(name) != nil {
			return nil, l.fail(keyNode.StartMark(), "There is already a branch type named %q", name.HumanReadable())
		}
		envType, err := l.loadEnvironmentType(node.MappingValueAt(i))
		if err != nil {
			return nil, err
		}
		if err := mapping.Add(name, envType); err != nil {
			return nil, l.fail(node.StartMark(), "%s", err)
		}
	}
	return mapping, nil
}

// loadNameMapping loads a mapping whose keys are `from` names and
// whose values are `to` names, e.g. invocation parameters. Neither
// side carries an explicit type node; an invocation's parameters are
// typed by looking each `from` up in the live environment type during
// type-checking, not by a type recorded in the document.
func (l *Loader) loadNameMapping(node doctree.Node) (*types.NameMapping, error) {
	if err := l.ensureMapping(node, "name mapping"); err != nil {
		return nil, err
	}
	mapping := types.NewNameMapping()
	for i := 0; i < node.MappingSize(); i++ {
		keyNode := node.MappingKeyAt(i)
		from, err := l.loadName(keyNode)
		if err != nil {
			return nil, err
		}
		to, err := l.loadName(node.MappingValueAt(i))
		if err != nil {
			return nil, err
		}
		if _, ok := mapping.Get(from); ok {
			return nil, l.fail(keyNode.StartMark(), "There is already an input named %q", from.HumanReadable())
		}
		if _, ok := mapping.GetFrom(to); ok {
			return nil, l.fail(keyNode.StartMark(), "There is already an input that is renamed to %q", to.HumanReadable())
		}
		if err := mapping.Add(from, to, types.NewAny()); err != nil {
			return nil, l.fail(node.StartMark(), "%s", err)
		}
	}
	return mapping, nil
}
