// Package entity implements S₀'s runtime-shaped values: atoms,
// closures, literals, methods, and objects. These are constructed by
// statement execution in a future runtime; this package only fixes
// their shape, construction, and equality, plus the structural "does
// this entity satisfy this entity type" predicate.
package entity

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"

	"github.com/swansonlang/s0/internal/ir"
	"github.com/swansonlang/s0/internal/names"
)

// Kind identifies which Entity variant a value is.
type Kind int

const (
	KindAtom Kind = iota
	KindClosure
	KindLiteral
	KindMethod
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "atom"
	case KindClosure:
		return "closure"
	case KindLiteral:
		return "literal"
	case KindMethod:
		return "method"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Entity is the sealed sum type of S₀'s runtime values.
type Entity interface {
	Kind() Kind
	entityMarker()
}

// Atom is an opaque value with reference-identity equality: two
// distinct allocations are never equal, regardless of content.
type Atom struct {
	// debugTag is a uuid.v4 assigned at construction for diagnostic
	// rendering only (String()); it plays no role in equality.
	debugTag uuid.UUID
}

func NewAtom() *Atom {
	return &Atom{debugTag: uuid.New()}
}

func (*Atom) Kind() Kind   { return KindAtom }
func (*Atom) entityMarker() {}

func (a *Atom) String() string {
	return fmt.Sprintf("atom<%s>", a.debugTag)
}

// AtomEqual reports whether a and b are the same allocation.
func AtomEqual(a, b *Atom) bool {
	return a == b
}

// Closure pairs a captured environment with a set of named branches,
// one of which is selected by invoke-closure.
type Closure struct {
	Env         *Environment
	NamedBlocks *ir.NamedBlocks
}

func NewClosure(env *Environment, namedBlocks *ir.NamedBlocks) *Closure {
	return &Closure{Env: env, NamedBlocks: namedBlocks}
}

func (*Closure) Kind() Kind   { return KindClosure }
func (*Closure) entityMarker() {}

// Literal carries an immutable byte payload. Equality is byte-for-byte
// content equality.
type Literal struct {
	Content []byte
}

func NewLiteral(content []byte) *Literal {
	buf := make([]byte, len(content))
	copy(buf, content)
	return &Literal{Content: buf}
}

func (*Literal) Kind() Kind   { return KindLiteral }
func (*Literal) entityMarker() {}

// LiteralEqual reports whether a and b hold identical bytes.
func LiteralEqual(a, b *Literal) bool {
	return bytes.Equal(a.Content, b.Content)
}

// Method is a block that takes a distinguished self name as an input.
type Method struct {
	SelfName *names.Name
	Block    *ir.Block
}

func NewMethod(selfName *names.Name, block *ir.Block) *Method {
	return &Method{SelfName: selfName, Block: block}
}

func (*Method) Kind() Kind   { return KindMethod }
func (*Method) entityMarker() {}

// Object is a Name→Entity map. No create-object statement exists in
// the document form yet; Object is purely a constructible target for a
// future statement.
type Object struct {
	elements *Environment
}

func NewObject() *Object {
	return &Object{elements: NewEnvironment()}
}

func (*Object) Kind() Kind   { return KindObject }
func (*Object) entityMarker() {}

// Add binds name to e within the object. Fails if name is already
// present.
func (o *Object) Add(name *names.Name, e Entity) error {
	return o.elements.Add(name, e)
}

// Get returns the entity bound to name within the object, or nil.
func (o *Object) Get(name *names.Name) Entity {
	return o.elements.Get(name)
}

// Size returns the number of elements.
func (o *Object) Size() int {
	return o.elements.Size()
}
