package symbol

import (
	"context"

	"github.com/dop251/goja"

	"github.com/goliatone/go-symbol/pkg/audit"
)

// Bind installs the Symbol constructor into vm under the configured
// global name ("Symbol" by default). Scripts construct validated
// symbols with `new Symbol("AAPL.XNAS")` or `Symbol.fromStr(...)`;
// rejected input surfaces as a TypeError carrying the validation
// message. Instances expose the read-only accessors value,
// isComposite, root and topic, plus equals, toString and inspect. No
// relational operators are installed: symbols support equality only.
func Bind(vm *goja.Runtime, opts ...BindOption) error {
	if vm == nil {
		return errRuntimeRequired
	}
	cfg := applyBindOptions(opts)

	ctor := func(call goja.ConstructorCall) *goja.Object {
		arg := call.Argument(0)
		if goja.IsUndefined(arg) || goja.IsNull(arg) {
			panic(vm.NewTypeError("symbol: value is required"))
		}
		sym, err := New(arg.String())
		if err != nil {
			panic(vm.NewTypeError(err.Error()))
		}
		cfg.notifyConstructed(sym)
		return newSymbolObject(vm, sym)
	}

	ctorValue := vm.ToValue(ctor)
	ctorObject := ctorValue.ToObject(vm)
	if err := ctorObject.Set("fromStr", func(call goja.FunctionCall) goja.Value {
		arg := call.Argument(0)
		if goja.IsUndefined(arg) || goja.IsNull(arg) {
			panic(vm.NewTypeError("symbol: value is required"))
		}
		sym, err := FromString(arg.String())
		if err != nil {
			panic(vm.NewTypeError(err.Error()))
		}
		cfg.notifyConstructed(sym)
		return newSymbolObject(vm, sym)
	}); err != nil {
		return err
	}
	return vm.Set(cfg.name, ctorValue)
}

func newSymbolObject(vm *goja.Runtime, sym Symbol) *goja.Object {
	obj := vm.NewObject()
	_ = obj.Set("_native", sym)
	_ = obj.Set("value", sym.Value())
	_ = obj.Set("isComposite", sym.IsComposite())
	_ = obj.Set("root", sym.Root())
	_ = obj.Set("topic", sym.Topic())
	_ = obj.Set("equals", func(call goja.FunctionCall) goja.Value {
		other, ok := exportSymbol(call.Argument(0))
		if !ok {
			panic(vm.NewTypeError(ErrUnsupportedComparison.Error()))
		}
		return vm.ToValue(sym.Equals(other))
	})
	_ = obj.Set("toString", func() string {
		return sym.String()
	})
	_ = obj.Set("inspect", func() string {
		return sym.GoString()
	})
	return obj
}

// exportSymbol coerces a script value back into a Symbol. Only objects
// produced by the binding itself qualify; everything else reports not-ok
// so callers can signal unsupported comparison instead of false.
func exportSymbol(value goja.Value) (Symbol, bool) {
	obj, ok := value.(*goja.Object)
	if !ok {
		return Symbol{}, false
	}
	native := obj.Get("_native")
	if native == nil {
		return Symbol{}, false
	}
	sym, ok := native.Export().(Symbol)
	return sym, ok
}

func (cfg bindConfig) notifyConstructed(sym Symbol) {
	if !cfg.hooks.Enabled() {
		return
	}
	_ = cfg.hooks.Notify(context.Background(), audit.Event{
		Verb:       audit.VerbConstructed,
		ObjectType: audit.ObjectTypeSymbol,
		Object:     sym.Value(),
	})
}
