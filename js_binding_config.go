package symbol

import (
	"errors"

	"github.com/goliatone/go-symbol/pkg/audit"
)

var errRuntimeRequired = errors.New("symbol: runtime is required")

type bindConfig struct {
	name  string
	hooks audit.Hooks
}

// BindOption configures the JS host binding.
type BindOption func(*bindConfig)

// BindWithName overrides the global name the constructor is installed under.
func BindWithName(name string) BindOption {
	return func(cfg *bindConfig) {
		if name == "" {
			return
		}
		cfg.name = name
	}
}

// BindWithAuditHooks notifies hooks whenever a script constructs a symbol.
func BindWithAuditHooks(hooks audit.Hooks) BindOption {
	return func(cfg *bindConfig) {
		cfg.hooks = hooks
	}
}

func applyBindOptions(opts []BindOption) bindConfig {
	cfg := bindConfig{name: "Symbol"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
