package navio

import (
	"context"

	"github.com/petrijr/navio/internal/nav"
	"github.com/petrijr/navio/pkg/api"
)

// Re-export key types so users don't need to dig into pkg/api.

type (
	Navigator            = api.Navigator
	Navigation           = api.Navigation
	StepDefinition       = api.StepDefinition
	NavigationInfo       = api.NavigationInfo
	CheckFunc            = api.CheckFunc
	PrerequisiteFunc     = api.PrerequisiteFunc
	ActionFunc           = api.ActionFunc
	ResetFunc            = api.ResetFunc
	HookFunc             = api.HookFunc
	NotFoundError        = api.NotFoundError
	TriesExceededError   = api.TriesExceededError
	Observer             = api.Observer
	NoopObserver         = api.NoopObserver
	LoggingObserver      = api.LoggingObserver
	CompositeObserver    = api.CompositeObserver
	RecordingObserver    = api.RecordingObserver
	Event                = api.Event
	EventKind            = api.EventKind
	BasicMetrics         = api.BasicMetrics
	BasicMetricsSnapshot = api.BasicMetricsSnapshot
)

// Re-export common observer helpers and error matchers.

var (
	NewLoggingObserver   = api.NewLoggingObserver
	NewCompositeObserver = api.NewCompositeObserver
	IsNotFound           = api.IsNotFound
	IsTriesExceeded      = api.IsTriesExceeded
)

// DefaultMaxTries is the retry bound applied when a step does not set
// MaxTries.
const DefaultMaxTries = api.DefaultMaxTries

// Navigator constructors
// These wrap the internal/nav package so external callers never need to
// import internal packages.

// New returns a Navigator with an empty registry and no observer.
func New() Navigator {
	return nav.New()
}

// NewWithObserver returns a Navigator reporting lifecycle events to obs.
func NewWithObserver(obs Observer) Navigator {
	return nav.NewWithObserver(obs)
}

// Convenience helpers that just forward to the underlying Navigator.

// Navigate resolves and executes the destination name for objOrType.
func Navigate(ctx context.Context, n Navigator, objOrType any, name string, args ...any) error {
	return n.Navigate(ctx, objOrType, name, args...)
}

// ListDestinations lists the destination names visible for objOrType.
func ListDestinations(n Navigator, objOrType any) []string {
	return n.ListDestinations(objOrType)
}
