// Package types implements S₀'s static type layer: EntityType (the
// any/closure/method/object sum type), EnvironmentType,
// EnvironmentTypeMapping, and the (from, to, type) NameMapping used by
// invocation parameters.
//
// The variant set is closed, so EntityType is a sealed interface with
// one struct per variant rather than an open hierarchy. Subtyping is
// purely structural: "have <: require" holds iff any value of the
// have type also satisfies the require type, with no substitution
// solving involved.
package types

// Kind identifies which EntityType variant a value is.
type Kind int

const (
	KindAny Kind = iota
	KindClosure
	KindMethod
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindClosure:
		return "closure"
	case KindMethod:
		return "method"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// EntityType is the sealed sum type {any, closure, method, object}.
type EntityType interface {
	Kind() Kind
	// IsSubtypeOf reports whether this type is a subtype of other,
	// i.e. "this meets what other requires" (this <: other).
	IsSubtypeOf(other EntityType) bool
	// Copy returns a deep copy.
	Copy() EntityType
}

// Any is satisfied by any entity.
type Any struct{}

func NewAny() *Any { return &Any{} }

func (*Any) Kind() Kind { return KindAny }

func (*Any) IsSubtypeOf(other EntityType) bool {
	// T <: any for all T; any <: any is the only way `other` can be Any.
	_, ok := other.(*Any)
	return ok
}

func (a *Any) Copy() EntityType { return NewAny() }

// Closure is satisfied by a closure value whose branches' input types
// are supertypes of the corresponding declared branch types.
type Closure struct {
	Branches *EnvironmentTypeMapping
}

func NewClosure(branches *EnvironmentTypeMapping) *Closure {
	return &Closure{Branches: branches}
}

func (*Closure) Kind() Kind { return KindClosure }

// IsSubtypeOf implements: closure{B1} <: closure{B2} iff keys(B1) =
// keys(B2) and for each key k, B2[k] <: B1[k] (contravariant inputs);
// closure{B1} <: any always holds.
func (c *Closure) IsSubtypeOf(other EntityType) bool {
	if _, ok := other.(*Any); ok {
		return true
	}
	o, ok := other.(*Closure)
	if !ok {
		return false
	}
	if c.Branches.Size() != o.Branches.Size() {
		return false
	}
	for i := 0; i < c.Branches.Size(); i++ {
		name, b1 := c.Branches.At(i)
		b2 := o.Branches.Get(name)
		if b2 == nil {
			return false
		}
		if !b2.IsSubtypeOfType(b1) {
			return false
		}
	}
	return true
}

func (c *Closure) Copy() EntityType {
	return NewClosure(c.Branches.Copy())
}

// Method is satisfied by a method whose body's input type is a
// supertype of Inputs.
type Method struct {
	Inputs *EnvironmentType
}

func NewMethod(inputs *EnvironmentType) *Method {
	return &Method{Inputs: inputs}
}

func (*Method) Kind() Kind { return KindMethod }

// IsSubtypeOf implements: method{I1} <: method{I2} iff I2 <: I1;
// method{I1} <: any always holds.
func (m *Method) IsSubtypeOf(other EntityType) bool {
	if _, ok := other.(*Any); ok {
		return true
	}
	o, ok := other.(*Method)
	if !ok {
		return false
	}
	return o.Inputs.IsSubtypeOfType(m.Inputs)
}

func (m *Method) Copy() EntityType {
	return NewMethod(m.Inputs.Copy())
}

// Object is satisfied by an object whose fields' types satisfy the
// elements' types pointwise.
type Object struct {
	Elements *EnvironmentType
}

func NewObject(elements *EnvironmentType) *Object {
	return &Object{Elements: elements}
}

func (*Object) Kind() Kind { return KindObject }

// IsSubtypeOf implements: object{E1} <: object{E2} iff E1 <: E2 as
// environment types; object{E1} <: any always holds.
func (o *Object) IsSubtypeOf(other EntityType) bool {
	if _, ok := other.(*Any); ok {
		return true
	}
	oo, ok := other.(*Object)
	if !ok {
		return false
	}
	return o.Elements.IsSubtypeOfType(oo.Elements)
}

func (o *Object) Copy() EntityType {
	return NewObject(o.Elements.Copy())
}
