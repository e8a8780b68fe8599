package symbol

import (
	"fmt"
	"hash/maphash"
	"strings"
)

const (
	// MinLen and MaxLen bound the canonical string length, inclusive.
	MinLen = 1
	MaxLen = 64

	// Separator splits a composite symbol into root and qualifier.
	Separator = '.'

	// Sentinel is the reserved placeholder token held by Placeholder
	// instances before restoration completes.
	Sentinel = "NULL"
)

var hashSeed = maphash.MakeSeed()

// Symbol is an immutable, validated identifier backed by a single
// canonical string. Equality, hashing, and display are all defined over
// that string and nothing else. Construct through New or FromString;
// the zero value is not a valid symbol.
type Symbol struct {
	value string
}

// New validates value and returns a Symbol holding it verbatim: no
// trimming, no case folding. The only error it returns is a
// *ValidationError describing the violated constraint.
func New(value string) (Symbol, error) {
	if err := validate(value); err != nil {
		return Symbol{}, err
	}
	return Symbol{value: value}, nil
}

// FromString is a factory-style alias of New.
func FromString(value string) (Symbol, error) {
	return New(value)
}

// MustNew is New panicking on invalid input. Reserve it for constants
// and tests.
func MustNew(value string) Symbol {
	sym, err := New(value)
	if err != nil {
		panic(err)
	}
	return sym
}

// Placeholder returns the sentinel instance used as the first phase of
// two-phase reconstruction (see Restore and pkg/state). It is not a
// general-purpose constructor; the sentinel must not escape into
// domain use.
func Placeholder() Symbol {
	return Symbol{value: Sentinel}
}

// Restore overwrites the canonical string unconditionally and without
// validation. It exists for serialization layers rebuilding a Symbol
// from a previously validated producer value; validating here would
// break symmetry with that producer. The caller must hold exclusive
// access to sym until Restore returns.
func (sym *Symbol) Restore(value string) {
	sym.value = value
}

// Value returns the canonical string.
func (sym Symbol) Value() string {
	return sym.value
}

// String implements fmt.Stringer, returning the canonical string
// unchanged.
func (sym Symbol) String() string {
	return sym.value
}

// GoString returns the diagnostic form used by %#v, for example
// Symbol("AAPL.XNAS"). Never use it for equality or persistence.
func (sym Symbol) GoString() string {
	return fmt.Sprintf("Symbol(%q)", sym.value)
}

// IsComposite reports whether the canonical string carries a qualifier
// after the separator.
func (sym Symbol) IsComposite() bool {
	return strings.ContainsRune(sym.value, Separator)
}

// Root returns the portion before the first separator, or the whole
// value when the symbol is not composite.
func (sym Symbol) Root() string {
	if i := strings.IndexRune(sym.value, Separator); i >= 0 {
		return sym.value[:i]
	}
	return sym.value
}

// Topic derives the publish/subscribe key for the symbol. Composite
// symbols map to their root plus the ".*" wildcard suffix, so
// "AAPL.XNAS" yields "AAPL.*"; non-composite symbols map to the value
// unchanged. The convention is fixed: external subscribers key on it.
func (sym Symbol) Topic() string {
	if sym.IsComposite() {
		return sym.Root() + ".*"
	}
	return sym.value
}

// Equals reports byte equality of the canonical strings.
func (sym Symbol) Equals(other Symbol) bool {
	return sym.value == other.value
}

// Hash returns a hash of the canonical string consistent with Equals.
// The value is stable within one process run but varies across runs;
// never persist it.
func (sym Symbol) Hash() uint64 {
	return maphash.String(hashSeed, sym.value)
}

// Compare orders a against b lexicographically by canonical string.
// Symbol itself deliberately carries no ordering; this helper exists
// for display and deterministic listings.
func Compare(a, b Symbol) int {
	return strings.Compare(a.value, b.value)
}

// MarshalText returns the canonical string.
func (sym Symbol) MarshalText() ([]byte, error) {
	return []byte(sym.value), nil
}

// UnmarshalText parses text through the checked constructor.
func (sym *Symbol) UnmarshalText(text []byte) error {
	parsed, err := New(string(text))
	if err != nil {
		return err
	}
	*sym = parsed
	return nil
}

func validate(value string) error {
	if value == "" {
		return newValidationError(value, "value must not be empty", ErrEmptyValue)
	}
	if len(value) > MaxLen {
		return newValidationError(value, fmt.Sprintf("value exceeds %d bytes", MaxLen), ErrTooLong)
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c <= ' ' || c > '~' {
			return newValidationError(value, fmt.Sprintf("disallowed byte 0x%02x at index %d", c, i), ErrBadFormat)
		}
	}
	return nil
}
