package symbol

import (
	"fmt"
	"time"
)

// Matcher is a compiled predicate over symbols. Expressions see the
// bindings value, root, topic, is_composite plus now, args, metadata
// and any registered functions, and must evaluate to a boolean.
type Matcher struct {
	rule   CompiledRule
	expr   string
	engine string
	logger EvaluatorLogger
}

// MatcherOption configures matcher construction.
type MatcherOption func(*matcherConfig)

type matcherConfig struct {
	evaluator Evaluator
	cache     ProgramCache
	functions *FunctionRegistry
	logger    EvaluatorLogger
}

// WithEvaluator selects the engine used to compile and run the predicate.
func WithEvaluator(e Evaluator) MatcherOption {
	return func(cfg *matcherConfig) {
		cfg.evaluator = e
	}
}

func applyMatcherOptions(opts []MatcherOption) matcherConfig {
	cfg := matcherConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// NewMatcher compiles expr into a reusable predicate. Without
// WithEvaluator it falls back to the expr-lang engine, wiring in any
// configured cache and function registry.
func NewMatcher(expr string, opts ...MatcherOption) (*Matcher, error) {
	if expr == "" {
		return nil, fmt.Errorf("symbol: expression must not be empty")
	}
	cfg := applyMatcherOptions(opts)
	evaluator := cfg.resolveEvaluator()
	rule, err := evaluator.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &Matcher{
		rule:   rule,
		expr:   expr,
		engine: engineName(evaluator),
		logger: cfg.resolveLogger(),
	}, nil
}

func (cfg matcherConfig) resolveEvaluator() Evaluator {
	if cfg.evaluator != nil {
		return cfg.evaluator
	}
	var exprOpts []ExprEvaluatorOption
	if cfg.cache != nil {
		exprOpts = append(exprOpts, ExprWithProgramCache(cfg.cache))
	}
	if cfg.functions != nil {
		exprOpts = append(exprOpts, ExprWithFunctionRegistry(cfg.functions))
	}
	return NewExprEvaluator(exprOpts...)
}

func (cfg matcherConfig) resolveLogger() EvaluatorLogger {
	if cfg.logger != nil {
		return cfg.logger
	}
	return noopEvaluatorLogger{}
}

// Match evaluates the predicate against sym.
func (m *Matcher) Match(sym Symbol) (bool, error) {
	return m.MatchWith(MatchContext{Symbol: sym})
}

// MatchWith evaluates the predicate against a fully populated context.
func (m *Matcher) MatchWith(ctx MatchContext) (bool, error) {
	if m == nil || m.rule == nil {
		return false, fmt.Errorf("symbol: matcher is not compiled")
	}
	ctx = ctx.withDefaults()
	start := time.Now()
	value, evalErr := m.rule.Evaluate(ctx)
	duration := time.Since(start)
	evalErr = wrapEvaluationError(m.engine, m.expr, ctx.label(), evalErr)
	m.logger.LogEvaluation(EvaluatorLogEvent{
		Engine:   m.engine,
		Expr:     m.expr,
		Symbol:   ctx.label(),
		Duration: duration,
		Err:      evalErr,
	})
	if evalErr != nil {
		return false, evalErr
	}
	matched, ok := value.(bool)
	if !ok {
		return false, wrapEvaluationError(m.engine, m.expr, ctx.label(),
			fmt.Errorf("predicate must evaluate to bool, got %T", value))
	}
	return matched, nil
}

// Expression returns the source expression the matcher was compiled from.
func (m *Matcher) Expression() string {
	if m == nil {
		return ""
	}
	return m.expr
}

// Filter compiles expr once and returns the symbols it matches,
// preserving input order.
func Filter(syms []Symbol, expr string, opts ...MatcherOption) ([]Symbol, error) {
	matcher, err := NewMatcher(expr, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]Symbol, 0, len(syms))
	for _, sym := range syms {
		matched, err := matcher.Match(sym)
		if err != nil {
			return nil, err
		}
		if matched {
			out = append(out, sym)
		}
	}
	return out, nil
}

func engineName(e Evaluator) string {
	if e == nil {
		return "unknown"
	}
	switch fmt.Sprintf("%T", e) {
	case "*symbol.exprEvaluator":
		return "expr"
	case "*symbol.celEvaluator":
		return "cel"
	case "*symbol.jsEvaluator":
		return "js"
	default:
		return "custom"
	}
}
