// Package ir implements S₀'s intermediate representation: statements,
// invocations, blocks, and named-blocks maps. These are pure data;
// construction and ownership only, never execution.
//
// Statement and Invocation are sealed interfaces with one struct per
// node kind and a marker method selecting the variant. The kind sets
// are closed.
package ir

import (
	"github.com/swansonlang/s0/internal/names"
)

// StatementKind identifies which Statement variant a value is.
type StatementKind int

const (
	StatementCreateAtom StatementKind = iota
	StatementCreateClosure
	StatementCreateLiteral
	StatementCreateMethod
)

// Statement is the sealed sum type of the four create-* statements.
type Statement interface {
	StatementKind() StatementKind
	statementMarker()
}

// CreateAtom binds dest to a freshly allocated atom.
type CreateAtom struct {
	Dest *names.Name
}

func (*CreateAtom) StatementKind() StatementKind { return StatementCreateAtom }
func (*CreateAtom) statementMarker()              {}

// CreateClosure binds dest to a closure capturing ClosedOver from the
// enclosing environment, with the given named branches. Branches must
// be non-empty.
type CreateClosure struct {
	Dest       *names.Name
	ClosedOver *names.Set
	Branches   *NamedBlocks
}

func (*CreateClosure) StatementKind() StatementKind { return StatementCreateClosure }
func (*CreateClosure) statementMarker()              {}

// CreateLiteral binds dest to a literal carrying the given bytes.
type CreateLiteral struct {
	Dest    *names.Name
	Content []byte
}

func (*CreateLiteral) StatementKind() StatementKind { return StatementCreateLiteral }
func (*CreateLiteral) statementMarker()              {}

// CreateMethod binds dest to a method whose body takes SelfInput as
// its distinguished self name.
type CreateMethod struct {
	Dest      *names.Name
	SelfInput *names.Name
	Body      *Block
}

func (*CreateMethod) StatementKind() StatementKind { return StatementCreateMethod }
func (*CreateMethod) statementMarker()              {}
