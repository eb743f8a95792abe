package pipeline

// Pipeline runs a fixed sequence of processors over one context.
type Pipeline struct {
	processors []Processor
	trace      func(p Processor, ctx *PipelineContext)
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// WithTrace installs fn to be called after every stage.
func (p *Pipeline) WithTrace(fn func(p Processor, ctx *PipelineContext)) *Pipeline {
	p.trace = fn
	return p
}

// Run executes the pipeline. Every stage runs even after errors, so that
// all diagnostics of a fixture are reported together; stages skip the work
// whose inputs an earlier stage failed to produce.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		if p.trace != nil {
			p.trace(processor, ctx)
		}
	}
	return ctx
}
