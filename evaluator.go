package symbol

import "time"

// MatchContext carries the inputs for evaluating a predicate
// expression against one symbol.
type MatchContext struct {
	Symbol   Symbol
	Now      *time.Time
	Args     map[string]any
	Metadata map[string]any
}

func (ctx MatchContext) withDefaultNow() MatchContext {
	if ctx.Now != nil {
		return ctx
	}
	now := time.Now()
	ctx.Now = &now
	return ctx
}

func (ctx MatchContext) timestamp() time.Time {
	ctx = ctx.withDefaultNow()
	return *ctx.Now
}

func (ctx MatchContext) withDefaultMaps() MatchContext {
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	if ctx.Metadata == nil {
		ctx.Metadata = map[string]any{}
	}
	return ctx
}

func (ctx MatchContext) withDefaults() MatchContext {
	return ctx.withDefaultNow().withDefaultMaps()
}

func (ctx MatchContext) label() string {
	if ctx.Symbol.Value() == "" {
		return "unknown"
	}
	return ctx.Symbol.Value()
}

// binding is the environment every engine exposes for the symbol under
// evaluation: the canonical value plus its derived accessors.
func (ctx MatchContext) binding() map[string]any {
	return map[string]any{
		"value":        ctx.Symbol.Value(),
		"root":         ctx.Symbol.Root(),
		"topic":        ctx.Symbol.Topic(),
		"is_composite": ctx.Symbol.IsComposite(),
	}
}

// Evaluator executes predicate expressions against a match context.
type Evaluator interface {
	Evaluate(ctx MatchContext, expr string) (any, error)
	Compile(expr string, opts ...CompileOption) (CompiledRule, error)
}

// CompiledRule represents a reusable expression program.
type CompiledRule interface {
	Evaluate(ctx MatchContext) (any, error)
}

// CompileOption configures evaluator compile behaviour.
type CompileOption interface {
	applyCompileOption(*compileConfig)
}

type compileConfig struct{}

type compileOptionFunc func(*compileConfig)

func (f compileOptionFunc) applyCompileOption(cfg *compileConfig) {
	if f != nil {
		f(cfg)
	}
}
