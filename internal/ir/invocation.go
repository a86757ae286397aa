package ir

import (
	"github.com/swansonlang/s0/internal/names"
	"github.com/swansonlang/s0/internal/types"
)

// InvocationKind identifies which Invocation variant a value is.
type InvocationKind int

const (
	InvocationInvokeClosure InvocationKind = iota
	InvocationInvokeMethod
)

// Invocation is the sealed sum type of a block's terminal control
// transfer: invoke-closure or invoke-method.
type Invocation interface {
	InvocationKind() InvocationKind
	invocationMarker()
}

// InvokeClosure transfers control to one branch of the closure bound
// to Src, passing Parameters.
type InvokeClosure struct {
	Src        *names.Name
	Branch     *names.Name
	Parameters *types.NameMapping
}

func (*InvokeClosure) InvocationKind() InvocationKind { return InvocationInvokeClosure }
func (*InvokeClosure) invocationMarker()               {}

// InvokeMethod transfers control into the method bound to Src, passing
// Parameters (Src itself is consumed as the method's self input).
type InvokeMethod struct {
	Src        *names.Name
	Method     *names.Name
	Parameters *types.NameMapping
}

func (*InvokeMethod) InvocationKind() InvocationKind { return InvocationInvokeMethod }
func (*InvokeMethod) invocationMarker()               {}
