package state

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	symbol "github.com/goliatone/go-symbol"
	"github.com/goliatone/go-symbol/pkg/audit"
)

// Restorer orchestrates persist/restore round trips through a Store and
// notifies audit hooks on both sides.
type Restorer struct {
	Store Store
	Hooks audit.Hooks
}

// Persist snapshots sym and saves it under ref. A missing SnapshotID is
// minted with a UUID and a zero UpdatedAt defaults to now.
func (r Restorer) Persist(ctx context.Context, ref Ref, sym symbol.Symbol, meta Meta) (Meta, error) {
	if r.Store == nil {
		return Meta{}, fmt.Errorf("state: store is required")
	}
	if meta.SnapshotID == "" {
		meta.SnapshotID = uuid.NewString()
	}
	if meta.UpdatedAt.IsZero() {
		meta.UpdatedAt = time.Now()
	}

	saved, err := r.Store.Save(ctx, ref, Snapshot(sym), meta)
	if err != nil {
		return Meta{}, fmt.Errorf("state: save %q for key %q: %w", ref.Domain, ref.Key, err)
	}
	r.notify(ctx, audit.VerbPersisted, sym, saved)
	return saved, nil
}

// Restore loads the state tuple under ref and rebuilds the symbol. The
// boolean reports whether a record existed.
func (r Restorer) Restore(ctx context.Context, ref Ref) (symbol.Symbol, Meta, bool, error) {
	if r.Store == nil {
		return symbol.Symbol{}, Meta{}, false, fmt.Errorf("state: store is required")
	}

	st, meta, ok, err := r.Store.Load(ctx, ref)
	if err != nil {
		return symbol.Symbol{}, Meta{}, false, fmt.Errorf("state: load %q for key %q: %w", ref.Domain, ref.Key, err)
	}
	if !ok {
		return symbol.Symbol{}, Meta{}, false, nil
	}

	sym := Rebuild(st)
	r.notify(ctx, audit.VerbRestored, sym, meta)
	return sym, meta, true, nil
}

func (r Restorer) notify(ctx context.Context, verb string, sym symbol.Symbol, meta Meta) {
	if !r.Hooks.Enabled() {
		return
	}
	metadata := map[string]any{}
	if meta.SnapshotID != "" {
		metadata["snapshot_id"] = meta.SnapshotID
	}
	_ = r.Hooks.Notify(ctx, audit.Event{
		Verb:       verb,
		ObjectType: audit.ObjectTypeSymbol,
		Object:     sym.Value(),
		Metadata:   metadata,
		OccurredAt: meta.UpdatedAt,
	})
}
