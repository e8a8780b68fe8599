package state_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-symbol/pkg/state"
)

func TestMemoryStoreSaveLoadRoundTrip(t *testing.T) {
	store := state.NewMemoryStore()
	ref := state.Ref{Domain: "instruments", Key: "AAPL.XNAS"}
	meta := state.Meta{SnapshotID: "snap-1", ETag: "v1", Extra: map[string]string{"source": "feed"}}

	saved, err := store.Save(context.Background(), ref, state.State{Value: "AAPL.XNAS"}, meta)
	if err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if saved.SnapshotID != "snap-1" {
		t.Fatalf("expected snapshot id echoed, got %q", saved.SnapshotID)
	}

	st, loaded, ok, err := store.Load(context.Background(), ref)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if !ok {
		t.Fatalf("expected record to exist")
	}
	if st.Value != "AAPL.XNAS" {
		t.Fatalf("expected state tuple preserved, got %q", st.Value)
	}
	if loaded.ETag != "v1" {
		t.Fatalf("expected etag preserved, got %q", loaded.ETag)
	}

	loaded.Extra["source"] = "mutated"
	_, reloaded, _, err := store.Load(context.Background(), ref)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if reloaded.Extra["source"] != "feed" {
		t.Fatalf("expected stored meta isolated from caller mutation")
	}
}

func TestMemoryStoreMissingRecord(t *testing.T) {
	store := state.NewMemoryStore()
	_, _, ok, err := store.Load(context.Background(), state.Ref{Domain: "instruments", Key: "MSFT"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected missing record")
	}
}

func TestMemoryStoreETagMismatch(t *testing.T) {
	store := state.NewMemoryStore()
	ref := state.Ref{Domain: "instruments", Key: "AAPL.XNAS"}

	if _, err := store.Save(context.Background(), ref, state.State{Value: "AAPL.XNAS"}, state.Meta{ETag: "v1"}); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	_, err := store.Save(context.Background(), ref, state.State{Value: "AAPL.XNAS"}, state.Meta{ETag: "v9"})
	if !errors.Is(err, state.ErrETagMismatch) {
		t.Fatalf("expected etag mismatch, got %v", err)
	}
	if _, err := store.Save(context.Background(), ref, state.State{Value: "AAPL.XNAS"}, state.Meta{ETag: "v1"}); err != nil {
		t.Fatalf("expected matching etag to save, got %v", err)
	}
}

func TestRefIdentifier(t *testing.T) {
	cases := []struct {
		name   string
		ref    state.Ref
		want   string
		hasErr bool
	}{
		{"valid", state.Ref{Domain: "instruments", Key: "AAPL.XNAS"}, "instruments/AAPL.XNAS", false},
		{"missing domain", state.Ref{Key: "AAPL"}, "", true},
		{"missing key", state.Ref{Domain: "instruments"}, "", true},
		{"slash in domain", state.Ref{Domain: "a/b", Key: "AAPL"}, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.ref.Identifier()
			if tc.hasErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
