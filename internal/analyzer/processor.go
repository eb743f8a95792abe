package analyzer

import (
	"github.com/funvibe/patcover/internal/pipeline"
	"github.com/funvibe/patcover/internal/symbols"
)

// DeclarationsProcessor builds the fixture's definitions into a fresh
// symbol table.
type DeclarationsProcessor struct{}

func (dp *DeclarationsProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Fixture == nil {
		return ctx
	}

	table := symbols.NewSymbolTable()
	table.SetFile(ctx.FilePath)
	errs := New(table).DeclareFixture(ctx.Fixture)
	if len(errs) > 0 {
		ctx.Errors = append(ctx.Errors, withFile(ctx.FilePath, errs)...)
		return ctx
	}
	ctx.SymbolTable = table
	return ctx
}

// CasesProcessor elaborates the fixture's queries.
type CasesProcessor struct{}

func (cp *CasesProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Fixture == nil || ctx.SymbolTable == nil {
		return ctx
	}

	cases, errs := New(ctx.SymbolTable).ElaborateCases(ctx.Fixture)
	ctx.Cases = append(ctx.Cases, cases...)
	ctx.Errors = append(ctx.Errors, withFile(ctx.FilePath, errs)...)
	return ctx
}
