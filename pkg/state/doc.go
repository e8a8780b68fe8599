// Package state defines the cross-boundary reconstruction protocol for
// symbols plus persistence-facing contracts for storing their state
// tuples.
//
// Responsibilities:
//   - Snapshot/Reduce emit the producer-side state: a one-field tuple
//     holding the canonical string, optionally paired with a
//     constructor descriptor for deserializers that need a no-argument
//     construction phase.
//   - Rebuild runs the consumer side: placeholder first, then an
//     unvalidated restore. The producer is trusted to have validated
//     the value; revalidating here would break symmetry with Snapshot.
//   - Store only loads/saves a single state tuple for a single Ref.
//   - Restorer orchestrates persist/restore round trips and notifies
//     audit hooks; the core symbol package stays persistence-agnostic.
//
// Data flow:
//
//	Snapshot -> Store.Save ... Store.Load -> Rebuild -> symbol.Symbol
//
// Deterministic keys:
//
//	Ref.Identifier() provides the canonical storage key ("domain/key").
//	Meta.SnapshotID is minted with a UUID when absent; Meta.ETag gives
//	optimistic concurrency control on save.
package state
