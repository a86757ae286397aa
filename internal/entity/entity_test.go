package entity_test

import (
	"strings"
	"testing"

	"github.com/swansonlang/s0/internal/entity"
	"github.com/swansonlang/s0/internal/ir"
	"github.com/swansonlang/s0/internal/names"
	"github.com/swansonlang/s0/internal/types"
)

func envType(t *testing.T, labels ...string) *types.EnvironmentType {
	t.Helper()
	env := types.NewEnvironmentType()
	for _, l := range labels {
		if err := env.Add(names.NewFromString(l), types.NewAny()); err != nil {
			t.Fatalf("add %q: %v", l, err)
		}
	}
	return env
}

// block builds a block with the given input names and a terminal
// invocation consuming the first of them (contents are irrelevant to
// these shape tests).
func block(t *testing.T, inputs ...string) *ir.Block {
	t.Helper()
	inv := &ir.InvokeClosure{
		Src:        names.NewFromString(inputs[0]),
		Branch:     names.NewFromString("x"),
		Parameters: types.NewNameMapping(),
	}
	return ir.NewBlock(envType(t, inputs...), nil, inv)
}

func closureEntity(t *testing.T, branches map[string]*ir.Block, order ...string) *entity.Closure {
	t.Helper()
	blocks := ir.NewNamedBlocks()
	for _, name := range order {
		if err := blocks.Add(names.NewFromString(name), branches[name]); err != nil {
			t.Fatal(err)
		}
	}
	return entity.NewClosure(entity.NewEnvironment(), blocks)
}

// ---------- atoms and literals ----------

func TestAtom_IdentityEquality(t *testing.T) {
	a := entity.NewAtom()
	b := entity.NewAtom()
	if !entity.AtomEqual(a, a) {
		t.Error("an atom equals itself")
	}
	if entity.AtomEqual(a, b) {
		t.Error("two fresh atoms are never equal")
	}
}

func TestAtom_StringCarriesDebugTag(t *testing.T) {
	s := entity.NewAtom().String()
	if !strings.HasPrefix(s, "atom<") {
		t.Errorf("String() = %q, want atom<...>", s)
	}
}

func TestLiteral_ContentEquality(t *testing.T) {
	a := entity.NewLiteral([]byte("hello"))
	b := entity.NewLiteral([]byte("hello"))
	c := entity.NewLiteral([]byte("hello\x00"))
	if !entity.LiteralEqual(a, b) {
		t.Error("literals with equal bytes should be equal")
	}
	if entity.LiteralEqual(a, c) {
		t.Error(`"hello" and "hello\0" literals must differ`)
	}
}

func TestLiteral_NewCopiesContent(t *testing.T) {
	buf := []byte("abc")
	l := entity.NewLiteral(buf)
	buf[0] = 'x'
	if !entity.LiteralEqual(l, entity.NewLiteral([]byte("abc"))) {
		t.Error("mutating the source buffer must not change the literal")
	}
}

// ---------- environment ----------

func TestEnvironment_AddGetDelete(t *testing.T) {
	env := entity.NewEnvironment()
	a := entity.NewAtom()
	name := names.NewFromString("a")

	if err := env.Add(name, a); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := env.Add(names.NewFromString("a"), entity.NewAtom()); err == nil {
		t.Fatal("adding a bound name should fail")
	}
	if got := env.Get(names.NewFromString("a")); got != a {
		t.Error("Get should return the bound entity")
	}

	got, err := env.Delete(names.NewFromString("a"))
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got != a {
		t.Error("Delete should return the removed entity")
	}
	if env.Size() != 0 {
		t.Errorf("size after delete = %d, want 0", env.Size())
	}
	if _, err := env.Delete(names.NewFromString("a")); err == nil {
		t.Fatal("deleting an absent name should fail")
	}
}

func TestEnvironment_OrderIsObservable(t *testing.T) {
	env := entity.NewEnvironment()
	labels := []string{"c", "a", "b"}
	for _, l := range labels {
		if err := env.Add(names.NewFromString(l), entity.NewAtom()); err != nil {
			t.Fatal(err)
		}
	}
	for i, l := range labels {
		name, _ := env.At(i)
		if name.HumanReadable() != l {
			t.Errorf("At(%d) = %q, want %q", i, name.HumanReadable(), l)
		}
	}
}

// ---------- satisfaction ----------

func TestSatisfies_AnyAcceptsEveryEntity(t *testing.T) {
	entities := []entity.Entity{
		entity.NewAtom(),
		entity.NewLiteral([]byte("x")),
		closureEntity(t, map[string]*ir.Block{"b": block(t, "a")}, "b"),
		entity.NewMethod(names.NewFromString("self"), block(t, "self")),
		entity.NewObject(),
	}
	anyType := types.NewAny()
	for _, e := range entities {
		if !entity.Satisfies(anyType, e) {
			t.Errorf("any should be satisfied by %s", e.Kind())
		}
	}
}

func TestSatisfies_ClosureChecksBranchShape(t *testing.T) {
	c := closureEntity(t, map[string]*ir.Block{"body": block(t, "a")}, "body")

	mapping := types.NewEnvironmentTypeMapping()
	if err := mapping.Add(names.NewFromString("body"), envType(t, "a")); err != nil {
		t.Fatal(err)
	}
	matching := types.NewClosure(mapping)
	if !entity.Satisfies(matching, c) {
		t.Error("closure with a matching branch should satisfy")
	}

	renamed := types.NewEnvironmentTypeMapping()
	if err := renamed.Add(names.NewFromString("other"), envType(t, "a")); err != nil {
		t.Fatal(err)
	}
	if entity.Satisfies(types.NewClosure(renamed), c) {
		t.Error("closure lacking the declared branch should not satisfy")
	}

	if entity.Satisfies(matching, entity.NewAtom()) {
		t.Error("a non-closure entity should not satisfy a closure type")
	}
}

func TestSatisfies_MethodChecksBodyInputs(t *testing.T) {
	m := entity.NewMethod(names.NewFromString("self"), block(t, "self"))

	matching := types.NewMethod(envType(t, "self"))
	if !entity.Satisfies(matching, m) {
		t.Error("method whose body inputs match should satisfy")
	}

	mismatched := types.NewMethod(envType(t, "self", "extra"))
	if entity.Satisfies(mismatched, m) {
		t.Error("method whose body inputs differ should not satisfy")
	}
}

func TestSatisfies_ObjectChecksElementsPointwise(t *testing.T) {
	o := entity.NewObject()
	if err := o.Add(names.NewFromString("f"), entity.NewAtom()); err != nil {
		t.Fatal(err)
	}

	if !entity.Satisfies(types.NewObject(envType(t, "f")), o) {
		t.Error("object with matching elements should satisfy")
	}
	if entity.Satisfies(types.NewObject(envType(t, "g")), o) {
		t.Error("object missing a declared element should not satisfy")
	}
	if entity.Satisfies(types.NewObject(envType(t, "f", "g")), o) {
		t.Error("element count must match exactly")
	}
}

func TestEnvSatisfiedBy_SizeAndPointwise(t *testing.T) {
	env := entity.NewEnvironment()
	if err := env.Add(names.NewFromString("a"), entity.NewAtom()); err != nil {
		t.Fatal(err)
	}

	if !entity.EnvSatisfiedBy(envType(t, "a"), env) {
		t.Error("{a: any} should be satisfied by {a: atom}")
	}
	if entity.EnvSatisfiedBy(envType(t, "a", "b"), env) {
		t.Error("sizes must match")
	}
	if entity.EnvSatisfiedBy(envType(t, "b"), env) {
		t.Error("names must match")
	}
}
