package pipeline

import (
	"github.com/funvibe/patcover/internal/fixture"
)

// LoaderProcessor parses the fixture file.
type LoaderProcessor struct{}

func (lp *LoaderProcessor) Process(ctx *PipelineContext) *PipelineContext {
	var (
		fx  *fixture.Fixture
		err error
	)
	if ctx.Source != nil {
		fx, err = fixture.ParseFixture(ctx.Source, ctx.FilePath)
	} else {
		fx, err = fixture.LoadFixture(ctx.FilePath)
	}
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Fixture = fx
	return ctx
}
