package entity

import (
	"github.com/swansonlang/s0/internal/types"
)

// Satisfies reports whether entity e meets entity type t (t ⊨ e),
// reducing to structural checks against e's live shape. Kept here,
// rather than as a method on types.EntityType, so the types package
// stays free of a dependency on concrete runtime values.
func Satisfies(t types.EntityType, e Entity) bool {
	switch tt := t.(type) {
	case *types.Any:
		return true

	case *types.Closure:
		c, ok := e.(*Closure)
		if !ok {
			return false
		}
		if tt.Branches.Size() != c.NamedBlocks.Size() {
			return false
		}
		for i := 0; i < tt.Branches.Size(); i++ {
			branchName, declared := tt.Branches.At(i)
			block := c.NamedBlocks.Get(branchName)
			if block == nil {
				return false
			}
			// The branch's actual input type must be a supertype of the
			// declared branch type (contravariant).
			if !declared.IsSubtypeOfType(block.Inputs) {
				return false
			}
		}
		return true

	case *types.Method:
		m, ok := e.(*Method)
		if !ok {
			return false
		}
		return tt.Inputs.IsSubtypeOfType(m.Block.Inputs)

	case *types.Object:
		o, ok := e.(*Object)
		if !ok {
			return false
		}
		if tt.Elements.Size() != o.Size() {
			return false
		}
		for i := 0; i < tt.Elements.Size(); i++ {
			name, elemType := tt.Elements.At(i)
			val := o.Get(name)
			if val == nil {
				return false
			}
			if !Satisfies(elemType, val) {
				return false
			}
		}
		return true

	default:
		return false
	}
}

// EnvSatisfiedBy reports whether env satisfies envType: same size, and
// every (name, type) pair in envType matches an (name, entity) pair in
// env with type ⊨ entity.
func EnvSatisfiedBy(envType *types.EnvironmentType, env *Environment) bool {
	if envType.Size() != env.Size() {
		return false
	}
	for i := 0; i < envType.Size(); i++ {
		name, typ := envType.At(i)
		val := env.Get(name)
		if val == nil {
			return false
		}
		if !Satisfies(typ, val) {
			return false
		}
	}
	return true
}
