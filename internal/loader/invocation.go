package loader

import (
	"github.com/swansonlang/s0/internal/config"
	"github.com/swansonlang/s0/internal/doctree"
	"github.com/swansonlang/s0/internal/ir"
	"github.com/swansonlang/s0/internal/typecheck"
	"github.com/swansonlang/s0/internal/types"
)

func (l *Loader) loadInvokeClosure(node doctree.Node) (ir.Invocation, error) {
	srcNode, err := l.requireKey(node, "src", "invoke-closure")
	if err != nil {
		return nil, err
	}
	src, err := l.loadName(srcNode)
	if err != nil {
		return nil, err
	}

	branchNode, err := l.requireKey(node, "branch", "invoke-closure")
	if err != nil {
		return nil, err
	}
	branch, err := l.loadName(branchNode)
	if err != nil {
		return nil, err
	}

	paramsNode, err := l.requireKey(node, "parameters", "invoke-closure")
	if err != nil {
		return nil, err
	}
	parameters, err := l.loadNameMapping(paramsNode)
	if err != nil {
		return nil, err
	}

	return &ir.InvokeClosure{Src: src, Branch: branch, Parameters: parameters}, nil
}

func (l *Loader) loadInvokeMethod(node doctree.Node) (ir.Invocation, error) {
	srcNode, err := l.requireKey(node, "src", "invoke-method")
	if err != nil {
		return nil, err
	}
	src, err := l.loadName(srcNode)
	if err != nil {
		return nil, err
	}

	methodNode, err := l.requireKey(node, "method", "invoke-method")
	if err != nil {
		return nil, err
	}
	method, err := l.loadName(methodNode)
	if err != nil {
		return nil, err
	}

	paramsNode, err := l.requireKey(node, "parameters", "invoke-method")
	if err != nil {
		return nil, err
	}
	parameters, err := l.loadNameMapping(paramsNode)
	if err != nil {
		return nil, err
	}

	return &ir.InvokeMethod{Src: src, Method: method, Parameters: parameters}, nil
}

// loadInvocation loads node as a block's terminal invocation and
// type-checks it against envType, which must end empty for the block
// to be accepted (checked by the caller, loadBlock).
func (l *Loader) loadInvocation(node doctree.Node, envType *types.EnvironmentType) (ir.Invocation, error) {
	if err := l.ensureMapping(node, "invocation"); err != nil {
		return nil, err
	}

	var inv ir.Invocation
	var err error
	switch {
	case node.HasTag(config.InvokeClosureTag):
		inv, err = l.loadInvokeClosure(node)
	case node.HasTag(config.InvokeMethodTag):
		inv, err = l.loadInvokeMethod(node)
	default:
		return nil, l.fail(node.StartMark(), "Unknown invocation type")
	}
	if err != nil {
		return nil, err
	}

	if err := typecheck.AddInvocation(envType, inv); err != nil {
		return nil, l.fail(node.StartMark(), "%s", err)
	}

	return inv, nil
}
