package symbol

import (
	"errors"
	"testing"
)

type instrumentKey struct {
	sym Symbol
}

func (k instrumentKey) Symbol() Symbol {
	return k.sym
}

func TestEqualsAnyCoercesSymbolOperands(t *testing.T) {
	a := MustNew("AAPL.XNAS")
	b := MustNew("AAPL.XNAS")
	c := MustNew("MSFT.XNAS")

	if ok, err := a.EqualsAny(b); err != nil || !ok {
		t.Fatalf("expected equal, got ok=%v err=%v", ok, err)
	}
	if ok, err := a.EqualsAny(&c); err != nil || ok {
		t.Fatalf("expected unequal, got ok=%v err=%v", ok, err)
	}
	if ok, err := a.EqualsAny(instrumentKey{sym: b}); err != nil || !ok {
		t.Fatalf("expected Equatable coercion, got ok=%v err=%v", ok, err)
	}
}

func TestEqualsAnyReportsUnsupportedOperands(t *testing.T) {
	a := MustNew("AAPL")
	operands := []any{
		"AAPL",
		42,
		nil,
		(*Symbol)(nil),
		struct{}{},
	}
	for _, operand := range operands {
		ok, err := a.EqualsAny(operand)
		if !errors.Is(err, ErrUnsupportedComparison) {
			t.Fatalf("expected ErrUnsupportedComparison for %T, got ok=%v err=%v", operand, ok, err)
		}
	}
}
