package api

import (
	"context"
)

// DefaultMaxTries is the retry bound applied by the default pre-navigate
// hook when a StepDefinition does not set MaxTries.
const DefaultMaxTries = 3

// CheckFunc reports whether the bound object is already at the destination.
//
// A non-nil error is treated as "not here": the error is reported to the
// Observer and navigation proceeds. A broken check must not block forward
// progress, so check errors never surface to the caller.
type CheckFunc func(ctx context.Context, nav Navigation, args ...any) (bool, error)

// PrerequisiteFunc reaches whatever destination must be visited before the
// step's action runs. It usually delegates back into the dispatcher via
// nav.Navigate, either directly or through one of the shortcut
// constructors (NavigateToSibling, NavigateToAttribute).
//
// The returned value is retained on the Navigation for introspection by
// later callbacks; it carries no other meaning. A non-nil error aborts the
// whole navigation and propagates to the caller.
type PrerequisiteFunc func(ctx context.Context, nav Navigation, args ...any) (any, error)

// ActionFunc performs the work that moves the bound object from the
// prerequisite state to the destination. A non-nil error triggers another
// attempt of the whole step (check, prerequisite, action) until the retry
// bound is exhausted.
type ActionFunc func(ctx context.Context, nav Navigation, args ...any) error

// ResetFunc restores invariant state after a navigation, whether the
// destination was freshly reached or the check short-circuited.
type ResetFunc func(ctx context.Context, nav Navigation, args ...any) error

// HookFunc runs before (pre-navigate) or after (post-navigate) an attempt.
// attempt is 1-based. The default pre-navigate hook is the retry guard;
// replacing it replaces the guard.
type HookFunc func(ctx context.Context, nav Navigation, attempt int, args ...any) error

// StepDefinition describes one navigable destination: how to detect it,
// what must happen first, how to reach it, and how to clean up afterwards.
//
// Definitions are registered once, at setup time, and are never mutated
// during navigation. Every callback is optional except that a useful step
// normally carries at least an Action; nil callbacks fall back to no-ops
// (and, for PreNavigate, to the default retry guard).
type StepDefinition struct {
	// Name identifies the destination within its owner type's hierarchy.
	// Register stamps it with the resolved name when an explicit one is
	// given at registration time.
	Name string

	// AmIHere is the idempotence predicate. Defaults to "not here".
	AmIHere CheckFunc

	// Prerequisite reaches the destination that must be visited first.
	// Defaults to a no-op.
	Prerequisite PrerequisiteFunc

	// Action moves the object to the destination. Defaults to a no-op.
	Action ActionFunc

	// Resetter restores view state after every attempt path. Defaults to
	// a no-op.
	Resetter ResetFunc

	// PreNavigate runs before each attempt. Defaults to the retry guard:
	// fail with a TriesExceededError once attempt exceeds MaxTries.
	PreNavigate HookFunc

	// PostNavigate runs after each attempt completes. Defaults to a no-op.
	PostNavigate HookFunc

	// MaxTries bounds the attempts made by the default retry guard.
	// Zero or negative means DefaultMaxTries.
	MaxTries int
}

// Navigation is the executor-side view handed to every step callback.
// It is created fresh for each navigation (including each prerequisite
// sub-navigation) and discarded when the navigation returns.
type Navigation interface {
	// Object returns the context object this navigation is bound to.
	Object() any

	// Destination returns the resolved name of the step being executed.
	Destination() string

	// Attempt returns the current 1-based attempt count.
	Attempt() int

	// RunID identifies the top-level navigation this execution belongs
	// to. Prerequisite sub-navigations share their initiator's RunID.
	RunID() string

	// PrerequisiteResult returns whatever the prerequisite produced on
	// the current attempt, or nil if it has not run. Introspection only.
	PrerequisiteResult() any

	// Navigate issues a further navigation through the owning
	// dispatcher, keeping the current run's identity. Prerequisites use
	// this so their sub-navigations are subject to the same lookup,
	// retry, and failure semantics as any other navigation.
	Navigate(ctx context.Context, objOrType any, name string, args ...any) error
}
