package api

import "context"

// Navigator is the dispatcher façade: it owns the destination registry and
// turns (object, destination name) pairs into step executions.
//
// Registration is expected to happen at startup, before any navigation;
// lookups never mutate the registry, so concurrent navigations are safe.
type Navigator interface {
	// Register records def under (owner's type, def.Name). A later
	// registration for the same key silently replaces the earlier one;
	// this is the intended override mechanism for subtypes.
	//
	// owner may be an instance or a reflect.Type. Register panics if
	// def.Name is empty.
	Register(owner any, def StepDefinition)

	// RegisterAs is Register with an explicit destination name. The
	// definition is stamped with name before being stored.
	RegisterAs(owner any, name string, def StepDefinition)

	// Navigate resolves the step registered for objOrType's hierarchy
	// under name and drives it to completion. args are passed untouched
	// to every step callback.
	//
	// The only error kinds it returns are *NotFoundError (lookup
	// exhausted the hierarchy) and *TriesExceededError (retry bound
	// exhausted), plus whatever a non-default hook or resetter chooses
	// to return.
	Navigate(ctx context.Context, objOrType any, name string, args ...any) error

	// GetStep exposes raw lookup without executing, for introspection
	// and tests.
	GetStep(objOrType any, name string) (StepDefinition, error)

	// ListDestinations returns the sorted set of destination names
	// visible for objOrType's hierarchy. An override at a subtype does
	// not remove the name contributed by its ancestor.
	ListDestinations(objOrType any) []string

	// SetParents declares explicit ancestors for child's type,
	// overriding the parents derived from embedded struct fields.
	// Like Register, it must only be called before navigation begins.
	SetParents(child any, parents ...any)
}

// NavigationInfo is the immutable view of a navigation handed to
// observers.
type NavigationInfo struct {
	// RunID identifies the top-level navigation; prerequisite
	// sub-navigations carry their initiator's RunID.
	RunID string

	// Destination is the resolved step name.
	Destination string

	// ObjectType is the display name of the context object's type.
	ObjectType string

	// Attempt is the attempt count at the time the event fired
	// (0 before the first attempt starts).
	Attempt int
}
