package loader

import (
	"github.com/swansonlang/s0/internal/config"
	"github.com/swansonlang/s0/internal/doctree"
	"github.com/swansonlang/s0/internal/ir"
	"github.com/swansonlang/s0/internal/names"
	"github.com/swansonlang/s0/internal/typecheck"
	"github.com/swansonlang/s0/internal/types"
)

func (l *Loader) loadStatement(node doctree.Node) (ir.Statement, error) {
	if err := l.ensureMapping(node, "statement"); err != nil {
		return nil, err
	}
	switch {
	case node.HasTag(config.CreateAtomTag):
		return l.loadCreateAtom(node)
	case node.HasTag(config.CreateClosureTag):
		return l.loadCreateClosure(node)
	case node.HasTag(config.CreateLiteralTag):
		return l.loadCreateLiteral(node)
	case node.HasTag(config.CreateMethodTag):
		return l.loadCreateMethod(node)
	default:
		return nil, l.fail(node.StartMark(), "Unknown statement type")
	}
}

func (l *Loader) loadCreateAtom(node doctree.Node) (ir.Statement, error) {
	item, err := l.requireKey(node, "dest", "create-atom")
	if err != nil {
		return nil, err
	}
	dest, err := l.loadName(item)
	if err != nil {
		return nil, err
	}
	return &ir.CreateAtom{Dest: dest}, nil
}

func (l *Loader) loadCreateClosure(node doctree.Node) (ir.Statement, error) {
	destNode, err := l.requireKey(node, "dest", "create-closure")
	if err != nil {
		return nil, err
	}
	dest, err := l.loadName(destNode)
	if err != nil {
		return nil, err
	}

	closedOverNode, err := l.requireKey(node, "closed-over", "create-closure")
	if err != nil {
		return nil, err
	}
	closedOver, err := l.loadNameSet(closedOverNode)
	if err != nil {
		return nil, err
	}

	branchesNode, err := l.requireKey(node, "branches", "create-closure")
	if err != nil {
		return nil, err
	}
	branches, err := l.loadNamedBlocks(branchesNode)
	if err != nil {
		return nil, err
	}
	if branches.Size() == 0 {
		return nil, l.fail(node.StartMark(), "create-closure needs at least one branch")
	}

	return &ir.CreateClosure{Dest: dest, ClosedOver: closedOver, Branches: branches}, nil
}

func (l *Loader) loadCreateLiteral(node doctree.Node) (ir.Statement, error) {
	destNode, err := l.requireKey(node, "dest", "create-literal")
	if err != nil {
		return nil, err
	}
	dest, err := l.loadName(destNode)
	if err != nil {
		return nil, err
	}

	content, err := l.requireKey(node, "content", "create-literal")
	if err != nil {
		return nil, err
	}
	if err := l.ensureScalar(content, "create-literal content"); err != nil {
		return nil, err
	}

	return &ir.CreateLiteral{Dest: dest, Content: content.ScalarContent()}, nil
}

func (l *Loader) loadCreateMethod(node doctree.Node) (ir.Statement, error) {
	destNode, err := l.requireKey(node, "dest", "create-method")
	if err != nil {
		return nil, err
	}
	dest, err := l.loadName(destNode)
	if err != nil {
		return nil, err
	}

	bodyNode, err := l.requireKey(node, "body", "create-method")
	if err != nil {
		return nil, err
	}
	body, err := l.loadBlock(bodyNode)
	if err != nil {
		return nil, err
	}

	// The document form carries no explicit self-input key; every loaded
	// method's distinguished self name is the conventional "self".
	selfInput := names.NewFromString("self")

	return &ir.CreateMethod{Dest: dest, SelfInput: selfInput, Body: body}, nil
}

// loadNamedBlocks loads a mapping of branch name→block.
func (l *Loader) loadNamedBlocks(node doctree.Node) (*ir.NamedBlocks, error) {
	if err := l.ensureMapping(node, "named blocks"); err != nil {
		return nil, err
	}
	blocks := ir.NewNamedBlocks()
	for i := 0; i < node.MappingSize(); i++ {
		keyNode := node.MappingKeyAt(i)
		name, err := l.loadName(keyNode)
		if err != nil {
			return nil, err
		}
		if blocks.Get(name) != nil {
			return nil, l.fail(keyNode.StartMark(), "There is already a branch named %q", name.HumanReadable())
		}
		block, err := l.loadBlock(node.MappingValueAt(i))
		if err != nil {
			return nil, err
		}
		if err := blocks.Add(name, block); err != nil {
			return nil, l.fail(node.StartMark(), "%s", err)
		}
	}
	return blocks, nil
}

// loadStatementList loads a sequence of statements, type-checking each
// one against the block's working environment type as it is loaded.
func (l *Loader) loadStatementList(node doctree.Node, envType *types.EnvironmentType) ([]ir.Statement, error) {
	if err := l.ensureSequence(node, "statement list"); err != nil {
		return nil, err
	}
	statements := make([]ir.Statement, 0, node.SequenceSize())
	for i := 0; i < node.SequenceSize(); i++ {
		item := node.SequenceAt(i)
		stmt, err := l.loadStatement(item)
		if err != nil {
			return nil, err
		}
		if err := typecheck.AddStatement(envType, stmt); err != nil {
			return nil, l.fail(item.StartMark(), "%s", err)
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}
