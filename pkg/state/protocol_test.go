package state_test

import (
	"encoding/json"
	"testing"

	symbol "github.com/goliatone/go-symbol"
	"github.com/goliatone/go-symbol/pkg/state"
)

func TestSnapshotCapturesCanonicalString(t *testing.T) {
	sym := symbol.MustNew("AAPL.XNAS")
	st := state.Snapshot(sym)
	if st.Value != "AAPL.XNAS" {
		t.Fatalf("expected state tuple to hold canonical string, got %q", st.Value)
	}
}

func TestReduceDescriptorShape(t *testing.T) {
	sym := symbol.MustNew("AAPL.XNAS")
	descriptor := state.Reduce(sym)

	if descriptor.Constructor != state.PlaceholderConstructor {
		t.Fatalf("expected placeholder constructor, got %q", descriptor.Constructor)
	}
	if descriptor.Args == nil || len(descriptor.Args) != 0 {
		t.Fatalf("expected empty argument list, got %v", descriptor.Args)
	}
	if descriptor.State.Value != sym.String() {
		t.Fatalf("expected state tuple %q, got %q", sym.String(), descriptor.State.Value)
	}
}

func TestRebuildRoundTrip(t *testing.T) {
	cases := []string{"AAPL.XNAS", "AAPL", "ES.c.0"}
	for _, value := range cases {
		t.Run(value, func(t *testing.T) {
			original := symbol.MustNew(value)
			rebuilt := state.Rebuild(state.Snapshot(original))

			if !rebuilt.Equals(original) {
				t.Fatalf("expected rebuilt symbol to equal original")
			}
			if rebuilt.String() != original.String() {
				t.Fatalf("expected canonical string %q, got %q", original.String(), rebuilt.String())
			}
			if rebuilt.IsComposite() != original.IsComposite() || rebuilt.Topic() != original.Topic() {
				t.Fatalf("expected rebuilt symbol to derive identically")
			}
			if rebuilt.Hash() != original.Hash() {
				t.Fatalf("expected rebuilt symbol to hash identically")
			}
		})
	}
}

func TestDescriptorSurvivesJSONTransport(t *testing.T) {
	original := symbol.MustNew("AAPL.XNAS")
	raw, err := json.Marshal(state.Reduce(original))
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}

	var descriptor state.Descriptor
	if err := json.Unmarshal(raw, &descriptor); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}

	rebuilt := state.Rebuild(descriptor.State)
	if !rebuilt.Equals(original) {
		t.Fatalf("expected JSON transport round trip to preserve equality")
	}
}
