package journal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/petrijr/navio/pkg/api"
)

// Observer feeds a Store from the dispatcher's lifecycle events, writing
// one Record per finished navigation. Attach it via
// navio.NewWithObserver, alone or inside a CompositeObserver.
type Observer struct {
	api.NoopObserver

	store Store

	// OnError, if non-nil, is called when appending a record fails.
	// Observer callbacks have no error path, so by default append
	// failures are dropped.
	OnError func(error)
}

// Ensure Observer implements api.Observer.
var _ api.Observer = (*Observer)(nil)

// NewObserver creates an Observer writing to store.
func NewObserver(store Store) *Observer {
	return &Observer{store: store}
}

func (o *Observer) OnNavigateCompleted(ctx context.Context, info api.NavigationInfo, d time.Duration) {
	o.append(info, OutcomeCompleted, "", d)
}

func (o *Observer) OnNavigateFailed(ctx context.Context, info api.NavigationInfo, err error, d time.Duration) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	o.append(info, OutcomeFailed, msg, d)
}

func (o *Observer) append(info api.NavigationInfo, outcome Outcome, errText string, d time.Duration) {
	rec := &Record{
		ID:          uuid.NewString(),
		RunID:       info.RunID,
		Destination: info.Destination,
		ObjectType:  info.ObjectType,
		Outcome:     outcome,
		Attempts:    info.Attempt,
		Error:       errText,
		StartedAt:   time.Now().Add(-d),
		Duration:    d,
	}
	if err := o.store.Append(rec); err != nil && o.OnError != nil {
		o.OnError(err)
	}
}
