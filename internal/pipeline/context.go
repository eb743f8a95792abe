package pipeline

import (
	"github.com/funvibe/patcover/internal/fixture"
	"github.com/funvibe/patcover/internal/suite"
	"github.com/funvibe/patcover/internal/symbols"
)

// PipelineContext carries one fixture file through the processors.
type PipelineContext struct {
	FilePath string
	// Source is the fixture text. When nil, the loader reads FilePath.
	Source []byte

	Fixture     *fixture.Fixture
	SymbolTable *symbols.SymbolTable
	Cases       []*suite.Case
	Results     []*suite.Result

	Errors []error
}

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx *PipelineContext) *PipelineContext

func (f ProcessorFunc) Process(ctx *PipelineContext) *PipelineContext {
	return f(ctx)
}

// Failed reports whether any stage recorded an error or any case failed.
func (ctx *PipelineContext) Failed() bool {
	if len(ctx.Errors) > 0 {
		return true
	}
	for _, r := range ctx.Results {
		if !r.Pass {
			return true
		}
	}
	return false
}
