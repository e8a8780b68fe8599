package symbol

import "errors"

// ErrUnsupportedComparison reports that the right-hand operand of a
// dynamic comparison could not be coerced into a Symbol. Mixed-type
// comparisons surface it instead of false so callers can tell
// "different value" apart from "not comparable".
var ErrUnsupportedComparison = errors.New("symbol: unsupported comparison operand")

// Equatable is the capability interface for foreign types that can
// surface a Symbol for comparison.
type Equatable interface {
	Symbol() Symbol
}

// EqualsAny compares sym against an operand of unknown type. Operands
// coercible to Symbol (Symbol, *Symbol, or an Equatable) compare by
// canonical string. Only equality is supported; there is no relational
// counterpart.
func (sym Symbol) EqualsAny(other any) (bool, error) {
	switch v := other.(type) {
	case Symbol:
		return sym.Equals(v), nil
	case *Symbol:
		if v == nil {
			return false, ErrUnsupportedComparison
		}
		return sym.Equals(*v), nil
	case Equatable:
		return sym.Equals(v.Symbol()), nil
	default:
		return false, ErrUnsupportedComparison
	}
}
