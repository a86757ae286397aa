package testsuite

import (
	"fmt"

	"github.com/swansonlang/s0/internal/config"
	"github.com/swansonlang/s0/internal/doctree"
	"github.com/swansonlang/s0/internal/doctree/yamldoc"
	"github.com/swansonlang/s0/internal/pipeline"
	"github.com/swansonlang/s0/internal/utils"
)

// Summary is the aggregate result of running every fixture found under
// one or more root directories.
type Summary struct {
	Results []Result
}

// Passed reports whether every case conformed to its declared tag.
func (s *Summary) Passed() bool {
	for _, r := range s.Results {
		if r.Outcome == Fail {
			return false
		}
	}
	return true
}

var casePipeline = pipeline.New(LoadProcessor{}, ClassifyProcessor{})

// RunDirectories walks every root for files ending in config.TestFileExt
// and runs each `!swanson!*`-tagged document they contain through the
// test protocol. onCase, if non-nil, is invoked as each case
// completes, so callers can stream per-case output instead of waiting
// for the summary.
func RunDirectories(roots []string, onCase func(Result)) (*Summary, error) {
	var files []string
	for _, root := range roots {
		found, err := utils.WalkTestFiles(root)
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", root, err)
		}
		files = append(files, found...)
	}

	summary := &Summary{}
	for _, path := range files {
		results, err := runFile(path)
		if err != nil {
			return nil, err
		}
		for _, r := range results {
			summary.Results = append(summary.Results, r)
			if onCase != nil {
				onCase(r)
			}
		}
	}
	return summary, nil
}

func runFile(path string) ([]Result, error) {
	stream, err := yamldoc.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer stream.Close()

	var results []Result
	for {
		doc, err := stream.ParseDocument()
		if err == doctree.ErrNoMoreDocuments {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %s", path, stream.LastError())
		}

		c, err := loadCase(doc, path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		results = append(results, runCase(c))
	}
	return results, nil
}

func runCase(c Case) Result {
	if c.Module.Kind() == doctree.KindScalar {
		if c.DeclaredTag != config.InvalidParseTag {
			return Result{
				Case:       c,
				Outcome:    Fail,
				Diagnostic: "Test case module can only be scalar for an invalid parse",
			}
		}
		return Result{Case: c, Outcome: NotImplemented}
	}

	if c.Module.Kind() != doctree.KindMapping {
		return Result{
			Case:       c,
			Outcome:    Fail,
			Diagnostic: "Test case module must be a scalar or mapping",
		}
	}

	ctx := pipeline.NewPipelineContext(c)
	ctx = casePipeline.Run(ctx)
	return ctx.Output.(Result)
}
