package audit

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNormalizeEventTrimsClonesAndDefaults(t *testing.T) {
	meta := map[string]any{"k": "v"}
	evt := Event{
		Verb:       " symbol.constructed ",
		ObjectType: " symbol ",
		Object:     " AAPL.XNAS ",
		Metadata:   meta,
	}

	got := NormalizeEvent(evt)

	if got.Verb != "symbol.constructed" || got.ObjectType != "symbol" || got.Object != "AAPL.XNAS" {
		t.Fatalf("unexpected normalized fields: %+v", got)
	}
	if got.OccurredAt.IsZero() {
		t.Fatalf("expected OccurredAt to be set")
	}
	if got.Metadata["k"] != "v" {
		t.Fatalf("expected metadata value preserved: %+v", got.Metadata)
	}
	got.Metadata["k"] = "changed"
	if evt.Metadata["k"] != "v" {
		t.Fatalf("expected original metadata untouched: %+v", evt.Metadata)
	}
}

func TestNormalizeEventKeepsExplicitTimestamp(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	got := NormalizeEvent(Event{Verb: "v", OccurredAt: ts})
	if !got.OccurredAt.Equal(ts) {
		t.Fatalf("expected timestamp preserved, got %v", got.OccurredAt)
	}
}

func TestHooksNotifyShortCircuitsMissingRequired(t *testing.T) {
	hooks := Hooks{&CaptureHook{}}
	err := hooks.Notify(context.Background(), Event{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	capture := hooks[0].(*CaptureHook)
	if len(capture.Events) != 0 {
		t.Fatalf("expected no events captured, got %d", len(capture.Events))
	}
}

func TestHooksNotifyFanOutAndJoinErrors(t *testing.T) {
	errOne := errors.New("boom1")
	errTwo := errors.New("boom2")
	capture := &CaptureHook{}
	var ctxSeen bool
	hooks := Hooks{
		HookFunc(func(ctx context.Context, event Event) error {
			if ctx != nil {
				ctxSeen = true
			}
			return nil
		}),
		capture,
		HookFunc(func(_ context.Context, _ Event) error { return errOne }),
		nil,
		HookFunc(func(_ context.Context, _ Event) error { return errTwo }),
	}

	err := hooks.Notify(nil, Event{Verb: VerbConstructed, ObjectType: ObjectTypeSymbol, Object: "AAPL"})
	if err == nil || !errors.Is(err, errOne) || !errors.Is(err, errTwo) {
		t.Fatalf("expected joined error, got %v", err)
	}
	if !ctxSeen {
		t.Fatalf("expected context fallback to be non-nil")
	}
	if len(capture.Events) != 1 {
		t.Fatalf("expected event to be captured once, got %d", len(capture.Events))
	}
}

func TestHooksEnabled(t *testing.T) {
	if (Hooks{}).Enabled() {
		t.Fatalf("expected empty hooks to be disabled")
	}
	if !(Hooks{&CaptureHook{}}).Enabled() {
		t.Fatalf("expected non-empty hooks to be enabled")
	}
}
