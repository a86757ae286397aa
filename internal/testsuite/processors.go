package testsuite

import (
	"github.com/swansonlang/s0/internal/config"
	"github.com/swansonlang/s0/internal/loader"
	"github.com/swansonlang/s0/internal/pipeline"
)

// LoadProcessor runs the loader over a Case's module node. Its
// PipelineContext.Input is a Case whose Module is already known to be
// a mapping (the bare-scalar NIY placeholder is handled by the
// runner before this stage runs); on return, Output is the loader used
// (so the next stage can read its last diagnostic) and Err holds the
// load failure, if any.
type loadOutput struct {
	ld *loader.Loader
}

type LoadProcessor struct{}

func (LoadProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	c := ctx.Input.(Case)
	ld := loader.New()
	_, err := ld.LoadModule(c.Module)
	ctx.Output = loadOutput{ld: ld}
	ctx.Err = err
	return ctx
}

// ClassifyProcessor turns a Case plus the LoadProcessor's outcome into
// a Result per the successful-parse/invalid-parse rules.
type ClassifyProcessor struct{}

func (ClassifyProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	c := ctx.Input.(Case)
	out := ctx.Output.(loadOutput)

	result := Result{Case: c}
	switch c.DeclaredTag {
	case config.SuccessfulParseTag:
		if ctx.Err != nil {
			result.Outcome = Fail
			result.Diagnostic = "Unexpected error: " + out.ld.LastError()
		} else {
			result.Outcome = Pass
		}
	case config.InvalidParseTag:
		if ctx.Err != nil {
			result.Outcome = Pass
		} else {
			result.Outcome = Fail
			result.Diagnostic = "Unexpected successful parse"
		}
	}
	ctx.Output = result
	return ctx
}
