package loader

import (
	"github.com/swansonlang/s0/internal/doctree"
	"github.com/swansonlang/s0/internal/ir"
)

// loadBlock loads node as a block: inputs, a statement list, and a
// terminal invocation. A working copy of inputs is threaded through
// the type checker as each statement and the invocation are loaded;
// the block is rejected unless that working copy is empty once the
// terminal invocation has been checked: the final invocation must
// consume every remaining name.
func (l *Loader) loadBlock(node doctree.Node) (*ir.Block, error) {
	if err := l.ensureMapping(node, "block"); err != nil {
		return nil, err
	}

	inputsNode, err := l.requireKey(node, "inputs", "Block")
	if err != nil {
		return nil, err
	}
	inputs, err := l.loadEnvironmentType(inputsNode)
	if err != nil {
		return nil, err
	}

	working := inputs.Copy()

	statementsNode, err := l.requireKey(node, "statements", "Block")
	if err != nil {
		return nil, err
	}
	statements, err := l.loadStatementList(statementsNode, working)
	if err != nil {
		return nil, err
	}

	invocationNode, err := l.requireKey(node, "invocation", "Block")
	if err != nil {
		return nil, err
	}
	invocation, err := l.loadInvocation(invocationNode, working)
	if err != nil {
		return nil, err
	}

	if working.Size() != 0 {
		return nil, l.fail(invocationNode.StartMark(), "block leaves %d name(s) unconsumed after its invocation", working.Size())
	}

	return ir.NewBlock(inputs, statements, invocation), nil
}
