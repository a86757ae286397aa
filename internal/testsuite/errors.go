package testsuite

import (
	"fmt"

	"github.com/swansonlang/s0/internal/doctree"
)

func errStructuref(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

func pos(n doctree.Node) string {
	p := n.StartMark()
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
