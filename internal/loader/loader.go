// Package loader implements the recursive-descent S₀ loader: a tree
// document is scanned top-down, each recognized tagged node is
// dispatched to a production that recursively loads its children and
// type-checks blocks inline, and a module is returned as a closure
// with a single branch named "module". Ill-typed documents are
// rejected at load time.
package loader

import (
	"github.com/swansonlang/s0/internal/config"
	"github.com/swansonlang/s0/internal/diagnostics"
	"github.com/swansonlang/s0/internal/doctree"
	"github.com/swansonlang/s0/internal/entity"
	"github.com/swansonlang/s0/internal/ir"
	"github.com/swansonlang/s0/internal/names"
)

// Loader holds the scoped diagnostic sink for one load operation.
type Loader struct {
	sink diagnostics.Sink
}

// New returns a fresh Loader with an empty diagnostic sink.
func New() *Loader {
	return &Loader{}
}

// LastError returns the most recent diagnostic raised by this Loader,
// or "" if none has been recorded yet.
func (l *Loader) LastError() string {
	return l.sink.LastError()
}

// LastDiagnostic returns the most recently recorded diagnostic, or nil.
func (l *Loader) LastDiagnostic() *diagnostics.Error {
	return l.sink.Last()
}

func (l *Loader) fail(pos doctree.Position, format string, args ...any) error {
	return l.sink.Record(diagnostics.New("type-error", toPos(pos), format, args...))
}

func (l *Loader) failStructural(pos doctree.Position, format string, args ...any) error {
	return l.sink.Record(diagnostics.New("structural", toPos(pos), format, args...))
}

func toPos(p doctree.Position) diagnostics.Position {
	return diagnostics.Position{Line: p.Line, Column: p.Column}
}

func (l *Loader) ensureKind(node doctree.Node, kind doctree.Kind, what string) error {
	if node.IsMissing() {
		return l.failStructural(node.StartMark(), "Expected %s but found nothing", what)
	}
	if node.Kind() != kind {
		return l.failStructural(node.StartMark(), "Expected %s to be a YAML %s", what, kind)
	}
	return nil
}

func (l *Loader) ensureMapping(node doctree.Node, what string) error {
	return l.ensureKind(node, doctree.KindMapping, what)
}

func (l *Loader) ensureSequence(node doctree.Node, what string) error {
	return l.ensureKind(node, doctree.KindSequence, what)
}

func (l *Loader) ensureScalar(node doctree.Node, what string) error {
	return l.ensureKind(node, doctree.KindScalar, what)
}

// requireKey fetches a required mapping key, failing with
// "X requires a Y at L:C" if it is absent.
func (l *Loader) requireKey(node doctree.Node, key, owner string) (doctree.Node, error) {
	value := node.MappingGet(key)
	if value.IsMissing() {
		return nil, l.fail(node.StartMark(), "%s requires a %s", owner, key)
	}
	return value, nil
}

// LoadModule loads root as a block and wraps it as the single branch
// "module" of a fresh closure with an empty captured environment.
func (l *Loader) LoadModule(root doctree.Node) (*entity.Closure, error) {
	block, err := l.loadBlock(root)
	if err != nil {
		return nil, err
	}

	blocks := ir.NewNamedBlocks()
	moduleName := names.NewFromString(config.ModuleBranchName)
	if err := blocks.Add(moduleName, block); err != nil {
		return nil, l.sink.Record(diagnostics.New("internal", diagnostics.Position{}, "%s", err))
	}

	env := entity.NewEnvironment()
	return entity.NewClosure(env, blocks), nil
}
