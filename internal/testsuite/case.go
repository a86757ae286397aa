// Package testsuite implements the fixture test protocol: it walks
// directories for `!swanson!*`-tagged YAML fixtures, reads each
// document's `name`/`module` keys, and classifies the loader's
// behavior against the document's own tag (`successful-parse` must
// load, `invalid-parse` must fail). Each case runs as a
// load-then-classify pipeline over internal/pipeline.
package testsuite

import (
	"github.com/swansonlang/s0/internal/config"
	"github.com/swansonlang/s0/internal/doctree"
)

// Outcome is the verdict of running one test case.
type Outcome int

const (
	// Pass means the case behaved as its document tag declared.
	Pass Outcome = iota
	// Fail means the case did not.
	Fail
	// NotImplemented means the case's `module` was a bare scalar
	// placeholder, legal only under `invalid-parse`, and is always
	// reported as an automatic pass.
	NotImplemented
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case NotImplemented:
		return "niy"
	default:
		return "unknown"
	}
}

// Case is one `name`/`module` test case read out of a fixture
// document.
type Case struct {
	Name        string
	Module      doctree.Node
	DeclaredTag string
	FilePath    string
}

// Result is the outcome of running one Case.
type Result struct {
	Case       Case
	Outcome    Outcome
	Diagnostic string
}

// loadCase reads the `name` and `module` keys out of a document node
// and determines its declared tag. It returns an error for structural
// violations of the test-fixture protocol itself (not of the S₀
// module inside it); these are harness-level errors that abort the
// whole run rather than counting as test failures.
func loadCase(doc doctree.Node, filePath string) (Case, error) {
	if doc.Kind() != doctree.KindMapping {
		return Case{}, errStructuref("expected a YAML mapping at %s", pos(doc))
	}

	nameNode := doc.MappingGet("name")
	if nameNode.IsMissing() {
		return Case{}, errStructuref("test case must have a name at %s", pos(doc))
	}
	if nameNode.Kind() != doctree.KindScalar {
		return Case{}, errStructuref("test case name must be a scalar at %s", pos(nameNode))
	}

	moduleNode := doc.MappingGet("module")
	if moduleNode.IsMissing() {
		return Case{}, errStructuref("test case must have a module at %s", pos(doc))
	}

	var declaredTag string
	switch {
	case doc.HasTag(config.SuccessfulParseTag):
		declaredTag = config.SuccessfulParseTag
	case doc.HasTag(config.InvalidParseTag):
		declaredTag = config.InvalidParseTag
	default:
		return Case{}, errStructuref("test case has unknown tag at %s", pos(doc))
	}

	return Case{
		Name:        string(nameNode.ScalarContent()),
		Module:      moduleNode,
		DeclaredTag: declaredTag,
		FilePath:    filePath,
	}, nil
}
