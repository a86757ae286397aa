// Package typecheck implements the incremental environment-type update
// rules: AddStatement and AddInvocation mutate a working
// *types.EnvironmentType as a block's statements and terminal
// invocation are appended, rejecting anything that violates S₀'s
// name-handling discipline (each name consumed exactly once).
package typecheck

import (
	"fmt"

	"github.com/swansonlang/s0/internal/ir"
	"github.com/swansonlang/s0/internal/names"
	"github.com/swansonlang/s0/internal/types"
)

// AddStatement updates envType in place with the effect of stmt:
// create-closure consumes its closed-over names, and every statement
// kind binds its dest to `any`. It returns an error and leaves envType
// unchanged on any precondition violation.
func AddStatement(envType *types.EnvironmentType, stmt ir.Statement) error {
	switch s := stmt.(type) {
	case *ir.CreateAtom:
		return addDest(envType, s.Dest)

	case *ir.CreateClosure:
		if envType.Has(s.Dest) {
			return fmt.Errorf("create-closure: %q is already bound", s.Dest.HumanReadable())
		}
		if s.Branches == nil || s.Branches.Size() == 0 {
			return fmt.Errorf("create-closure: branches must be non-empty")
		}
		for i := 0; i < s.ClosedOver.Size(); i++ {
			if !envType.Has(s.ClosedOver.At(i)) {
				return fmt.Errorf("create-closure: closed-over name %q is not bound", s.ClosedOver.At(i).HumanReadable())
			}
		}
		for i := 0; i < s.ClosedOver.Size(); i++ {
			if _, err := envType.Delete(s.ClosedOver.At(i)); err != nil {
				return err
			}
		}
		// dest binds to `any`, not a refined closure{...} type derived
		// from the branches.
		return envType.Add(s.Dest, types.NewAny())

	case *ir.CreateLiteral:
		return addDest(envType, s.Dest)

	case *ir.CreateMethod:
		return addDest(envType, s.Dest)

	default:
		return fmt.Errorf("unknown statement kind %T", stmt)
	}
}

func addDest(envType *types.EnvironmentType, dest *names.Name) error {
	if envType.Has(dest) {
		return fmt.Errorf("%q is already bound", dest.HumanReadable())
	}
	return envType.Add(dest, types.NewAny())
}

// AddInvocation updates envType in place with the effect of inv: src
// and every `from` of parameters must be present and distinct, and are
// removed from envType. A name appearing twice (e.g. once as src and
// once as a parameter `from`) fails on its second removal attempt.
func AddInvocation(envType *types.EnvironmentType, inv ir.Invocation) error {
	switch v := inv.(type) {
	case *ir.InvokeClosure:
		return consume(envType, v.Src, v.Parameters)
	case *ir.InvokeMethod:
		return consume(envType, v.Src, v.Parameters)
	default:
		return fmt.Errorf("unknown invocation kind %T", inv)
	}
}

func consume(envType *types.EnvironmentType, src *names.Name, parameters *types.NameMapping) error {
	if !envType.Has(src) {
		return fmt.Errorf("invocation source %q is not bound", src.HumanReadable())
	}
	// Validate every `from` is present and every `to` is distinct
	// before mutating anything. The removals then run src-first, so a
	// name used twice (once as src, once as a parameter `from`) fails
	// on its second removal.
	seenTo := make(map[string]bool, parameters.Size())
	for i := 0; i < parameters.Size(); i++ {
		entry := parameters.At(i)
		if !envType.Has(entry.From) {
			return fmt.Errorf("invocation parameter source %q is not bound", entry.From.HumanReadable())
		}
		key := string(entry.To.Bytes())
		if seenTo[key] {
			return fmt.Errorf("invocation parameter target %q is not distinct", entry.To.HumanReadable())
		}
		seenTo[key] = true
	}

	if _, err := envType.Delete(src); err != nil {
		return err
	}
	for i := 0; i < parameters.Size(); i++ {
		entry := parameters.At(i)
		if _, err := envType.Delete(entry.From); err != nil {
			return err
		}
	}
	return nil
}
