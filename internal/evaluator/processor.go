package evaluator

import (
	"github.com/funvibe/patcover/internal/pipeline"
)

type EvaluatorProcessor struct{}

func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if len(ctx.Cases) == 0 {
		return ctx
	}
	ctx.Results = append(ctx.Results, EvaluateAll(ctx.Cases)...)
	return ctx
}
