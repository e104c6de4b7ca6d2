// Package navio is a destination-based navigation dispatcher for Go.
//
// Navio expresses "get this object to state X" as a declarative graph of
// named steps with shared prerequisites, instead of imperative call
// sequences. It was built for UI test-automation suites ("navigate to
// page X") but works for any system where reaching a state means
// checking whether you are already there, satisfying prerequisites, and
// performing an action with bounded retry.
//
// # Core Concepts
//
// The programming model is intentionally small:
//
//  1. Navigator
//  2. StepDefinition
//  3. Prerequisite shortcuts
//  4. Observer
//  5. Journal
//
// # Navigator
//
// The Navigator owns the destination registry and dispatches
// navigations. Destinations are registered per owner type; lookup walks
// the owner's type hierarchy from the most derived type to the most
// general one, so a base type can define a library of destinations once
// and a subtype overrides only the ones that differ, by registering its
// own step under the same name.
//
// Hierarchies come from embedded struct fields by default:
//
//	type Entity struct{ ... }
//	type Provider struct{ Entity }
//
// makes every destination registered for Entity reachable from a
// Provider. SetParents declares ancestors explicitly when embedding does
// not apply.
//
// # StepDefinition
//
// A step bundles the callbacks describing one destination: an
// idempotence check (AmIHere), a prerequisite, the action itself, a
// resetter, and pre/post hooks. The default pre-navigate hook is the
// retry guard: an action failure re-runs the whole step (check,
// prerequisite, action) until the bound is exhausted (three attempts
// unless MaxTries says otherwise), at which point the navigation fails
// with a TriesExceededError.
//
// Steps are usually built fluently:
//
//	nav := navio.New()
//
//	nav.Register(Provider{}, navio.NewStep("All").
//	    AmIHere(onAllPage).
//	    Do(clickAll).
//	    Definition())
//
//	nav.Register(Provider{}, navio.NewStep("New").
//	    Prerequisite(navio.NavigateToSibling("All")).
//	    Do(clickAddNew).
//	    Definition())
//
//	err := nav.Navigate(ctx, provider, "New")
//
// # Prerequisite shortcuts
//
// Most prerequisites are one of three shapes, provided ready-made:
// NavigateToSibling sends the same object to another of its own
// destinations; NavigateToAttribute reads a named attribute off the
// object and navigates that value instead; NavigateToObject (deprecated)
// navigates a fixed object captured at definition time. Prerequisites
// are full navigations themselves, with the same lookup, idempotence,
// and retry semantics.
//
// # Observer
//
// Every lifecycle transition is reported to an injectable Observer; the
// default discards everything. LoggingObserver emits structured log/slog
// lines, BasicMetrics keeps atomic counters, RecordingObserver captures
// ordered events for tests, and CompositeObserver fans out to several at
// once. A prometheus-backed observer lives in pkg/metrics.
//
// # Journal
//
// pkg/journal records every finished navigation (destination, owner
// type, outcome, attempts, duration) behind a small Store interface
// with in-memory and SQLite implementations. NewSQLiteBundle wires a
// Navigator and a durable journal over one *sql.DB.
//
// # Errors
//
// Exactly two failure kinds cross the API boundary: NotFoundError, when
// no type in the hierarchy registered the requested name (its message
// lists the destinations that were available), and TriesExceededError,
// when the retry guard gives up. Action errors are recovered by
// retrying; idempotence-check errors are reported to the observer and
// otherwise swallowed, since a broken check must not block forward
// progress.
package navio
