package state

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	symbol "github.com/goliatone/go-symbol"
)

var ErrETagMismatch = errors.New("state: etag mismatch")

// PlaceholderConstructor names the no-argument construction phase in a
// Descriptor.
const PlaceholderConstructor = "placeholder"

// State is the one-field tuple exchanged across serialization
// boundaries: exactly the canonical string of a previously validated
// symbol, nothing else.
type State struct {
	Value string `json:"value"`
}

// Descriptor pairs the safe-default constructor with the state needed
// to finish reconstruction, for deserializers that require a
// no-argument construction phase before populating fields.
type Descriptor struct {
	Constructor string `json:"constructor"`
	Args        []any  `json:"args"`
	State       State  `json:"state"`
}

// Snapshot captures the producer-side state tuple for sym.
func Snapshot(sym symbol.Symbol) State {
	return State{Value: sym.String()}
}

// Reduce emits the full reconstruction descriptor for sym.
func Reduce(sym symbol.Symbol) Descriptor {
	return Descriptor{
		Constructor: PlaceholderConstructor,
		Args:        []any{},
		State:       Snapshot(sym),
	}
}

// Rebuild runs the consumer side of the protocol: placeholder first,
// then an unvalidated restore of the state tuple. The result is
// indistinguishable from a symbol built through checked construction
// with the same string.
func Rebuild(st State) symbol.Symbol {
	sym := symbol.Placeholder()
	sym.Restore(st.Value)
	return sym
}

// Meta is storage-owned metadata used for audit and concurrency control.
type Meta struct {
	SnapshotID string            `json:"snapshot_id,omitempty"`
	ETag       string            `json:"etag,omitempty"`
	UpdatedAt  time.Time         `json:"updated_at,omitempty"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// Ref identifies one persisted state tuple within a domain.
type Ref struct {
	Domain string
	Key    string
}

// Identifier returns the canonical storage key for the reference.
func (r Ref) Identifier() (string, error) {
	if r.Domain == "" {
		return "", fmt.Errorf("state: domain is required")
	}
	if r.Key == "" {
		return "", fmt.Errorf("state: key is required")
	}
	if strings.ContainsRune(r.Domain, '/') {
		return "", fmt.Errorf("state: domain %q must not contain '/'", r.Domain)
	}
	return fmt.Sprintf("%s/%s", r.Domain, r.Key), nil
}

// Store loads/saves one state tuple for a single reference.
type Store interface {
	Load(ctx context.Context, ref Ref) (State, Meta, bool, error)
	Save(ctx context.Context, ref Ref, st State, meta Meta) (Meta, error)
}
