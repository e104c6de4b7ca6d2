package api

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Observer receives callbacks from the dispatcher for logging and metrics.
//
// Every navigation (including each prerequisite sub-navigation) emits a
// start event and exactly one of completed/failed. Implementations should
// be fast and non-blocking; heavy work should be done asynchronously so as
// not to delay navigation.
type Observer interface {
	// OnNavigateStart is called after lookup succeeds, before the first
	// attempt.
	OnNavigateStart(ctx context.Context, info NavigationInfo)

	// OnAlreadyHere is called when the idempotence check reports the
	// object is already at the destination, so prerequisite and action
	// are skipped for that attempt.
	OnAlreadyHere(ctx context.Context, info NavigationInfo)

	// OnCheckError is called when the idempotence check itself fails.
	// The error is swallowed by the executor and navigation proceeds as
	// if the check had answered "not here"; this event is its only
	// trace.
	OnCheckError(ctx context.Context, info NavigationInfo, err error)

	// OnStepError is called when the action fails and the executor is
	// about to retry the whole step.
	OnStepError(ctx context.Context, info NavigationInfo, err error)

	// OnNavigateCompleted is called when a navigation returns
	// successfully.
	OnNavigateCompleted(ctx context.Context, info NavigationInfo, duration time.Duration)

	// OnNavigateFailed is called when a navigation returns an error.
	OnNavigateFailed(ctx context.Context, info NavigationInfo, err error, duration time.Duration)
}

// NoopObserver is an Observer that discards everything.
// It is the default when no observer is configured.
type NoopObserver struct{}

func (NoopObserver) OnNavigateStart(ctx context.Context, info NavigationInfo)                {}
func (NoopObserver) OnAlreadyHere(ctx context.Context, info NavigationInfo)                  {}
func (NoopObserver) OnCheckError(ctx context.Context, info NavigationInfo, err error)        {}
func (NoopObserver) OnStepError(ctx context.Context, info NavigationInfo, err error)         {}
func (NoopObserver) OnNavigateCompleted(ctx context.Context, info NavigationInfo, d time.Duration) {
}
func (NoopObserver) OnNavigateFailed(ctx context.Context, info NavigationInfo, err error, d time.Duration) {
}

// CompositeObserver fans out events to multiple observers.
type CompositeObserver struct {
	observers []Observer
}

// NewCompositeObserver creates an Observer that forwards events to each
// non-nil observer in obs.
func NewCompositeObserver(obs ...Observer) Observer {
	filtered := make([]Observer, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			filtered = append(filtered, o)
		}
	}
	if len(filtered) == 0 {
		return NoopObserver{}
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &CompositeObserver{observers: filtered}
}

func (c *CompositeObserver) OnNavigateStart(ctx context.Context, info NavigationInfo) {
	for _, o := range c.observers {
		o.OnNavigateStart(ctx, info)
	}
}

func (c *CompositeObserver) OnAlreadyHere(ctx context.Context, info NavigationInfo) {
	for _, o := range c.observers {
		o.OnAlreadyHere(ctx, info)
	}
}

func (c *CompositeObserver) OnCheckError(ctx context.Context, info NavigationInfo, err error) {
	for _, o := range c.observers {
		o.OnCheckError(ctx, info, err)
	}
}

func (c *CompositeObserver) OnStepError(ctx context.Context, info NavigationInfo, err error) {
	for _, o := range c.observers {
		o.OnStepError(ctx, info, err)
	}
}

func (c *CompositeObserver) OnNavigateCompleted(ctx context.Context, info NavigationInfo, d time.Duration) {
	for _, o := range c.observers {
		o.OnNavigateCompleted(ctx, info, d)
	}
}

func (c *CompositeObserver) OnNavigateFailed(ctx context.Context, info NavigationInfo, err error, d time.Duration) {
	for _, o := range c.observers {
		o.OnNavigateFailed(ctx, info, err, d)
	}
}

// LoggingObserver writes structured logs using log/slog.
type LoggingObserver struct {
	Logger *slog.Logger
}

// NewLoggingObserver creates an Observer that logs navigation lifecycle
// events using the provided slog.Logger. If logger is nil, slog.Default()
// is used.
func NewLoggingObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{Logger: logger}
}

func (o *LoggingObserver) OnNavigateStart(ctx context.Context, info NavigationInfo) {
	o.Logger.InfoContext(ctx, "navigate_start",
		slog.String("destination", info.Destination),
		slog.String("object_type", info.ObjectType),
		slog.String("run_id", info.RunID),
	)
}

func (o *LoggingObserver) OnAlreadyHere(ctx context.Context, info NavigationInfo) {
	o.Logger.InfoContext(ctx, "already_at_destination",
		slog.String("destination", info.Destination),
		slog.Int("attempt", info.Attempt),
		slog.String("run_id", info.RunID),
	)
}

func (o *LoggingObserver) OnCheckError(ctx context.Context, info NavigationInfo, err error) {
	o.Logger.ErrorContext(ctx, "check_error",
		slog.String("destination", info.Destination),
		slog.Int("attempt", info.Attempt),
		slog.String("run_id", info.RunID),
		slog.Any("error", err),
	)
}

func (o *LoggingObserver) OnStepError(ctx context.Context, info NavigationInfo, err error) {
	o.Logger.ErrorContext(ctx, "step_error",
		slog.String("destination", info.Destination),
		slog.Int("attempt", info.Attempt),
		slog.String("run_id", info.RunID),
		slog.Any("error", err),
	)
}

func (o *LoggingObserver) OnNavigateCompleted(ctx context.Context, info NavigationInfo, d time.Duration) {
	o.Logger.InfoContext(ctx, "navigate_completed",
		slog.String("destination", info.Destination),
		slog.Int("attempt", info.Attempt),
		slog.String("run_id", info.RunID),
		slog.Duration("duration", d),
	)
}

func (o *LoggingObserver) OnNavigateFailed(ctx context.Context, info NavigationInfo, err error, d time.Duration) {
	o.Logger.ErrorContext(ctx, "navigate_failed",
		slog.String("destination", info.Destination),
		slog.Int("attempt", info.Attempt),
		slog.String("run_id", info.RunID),
		slog.Duration("duration", d),
		slog.Any("error", err),
	)
}

// BasicMetrics collects simple counters and aggregate navigation
// durations. It implements Observer, and can be combined with
// LoggingObserver via NewCompositeObserver.
type BasicMetrics struct {
	NoopObserver

	navigationsStarted   atomic.Int64
	navigationsCompleted atomic.Int64
	navigationsFailed    atomic.Int64
	alreadyHere          atomic.Int64
	stepErrors           atomic.Int64
	totalDuration        atomic.Int64 // nanoseconds
}

// BasicMetricsSnapshot is an immutable snapshot of BasicMetrics.
type BasicMetricsSnapshot struct {
	NavigationsStarted   int64
	NavigationsCompleted int64
	NavigationsFailed    int64
	AlreadyHere          int64
	StepErrors           int64
	AvgDuration          time.Duration
}

func (m *BasicMetrics) OnNavigateStart(ctx context.Context, info NavigationInfo) {
	m.navigationsStarted.Add(1)
}

func (m *BasicMetrics) OnAlreadyHere(ctx context.Context, info NavigationInfo) {
	m.alreadyHere.Add(1)
}

func (m *BasicMetrics) OnStepError(ctx context.Context, info NavigationInfo, err error) {
	m.stepErrors.Add(1)
}

func (m *BasicMetrics) OnNavigateCompleted(ctx context.Context, info NavigationInfo, d time.Duration) {
	m.navigationsCompleted.Add(1)
	m.totalDuration.Add(d.Nanoseconds())
}

func (m *BasicMetrics) OnNavigateFailed(ctx context.Context, info NavigationInfo, err error, d time.Duration) {
	m.navigationsFailed.Add(1)
}

// Snapshot returns a snapshot of the current metrics. The average
// duration only covers completed navigations.
func (m *BasicMetrics) Snapshot() BasicMetricsSnapshot {
	completed := m.navigationsCompleted.Load()
	totalNs := m.totalDuration.Load()

	var avg time.Duration
	if completed > 0 {
		avg = time.Duration(totalNs / completed)
	}

	return BasicMetricsSnapshot{
		NavigationsStarted:   m.navigationsStarted.Load(),
		NavigationsCompleted: completed,
		NavigationsFailed:    m.navigationsFailed.Load(),
		AlreadyHere:          m.alreadyHere.Load(),
		StepErrors:           m.stepErrors.Load(),
		AvgDuration:          avg,
	}
}

// EventKind labels a RecordingObserver entry.
type EventKind string

const (
	EventNavigateStart     EventKind = "navigate_start"
	EventAlreadyHere       EventKind = "already_here"
	EventCheckError        EventKind = "check_error"
	EventStepError         EventKind = "step_error"
	EventNavigateCompleted EventKind = "navigate_completed"
	EventNavigateFailed    EventKind = "navigate_failed"
)

// Event is one recorded observer callback.
type Event struct {
	Kind     EventKind
	Info     NavigationInfo
	Err      error
	Duration time.Duration
}

// RecordingObserver captures events in order. It is goroutine-safe and
// intended for tests and ad-hoc introspection.
type RecordingObserver struct {
	mu     sync.Mutex
	events []Event
}

func (r *RecordingObserver) record(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of everything recorded so far.
func (r *RecordingObserver) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Reset discards all recorded events.
func (r *RecordingObserver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

func (r *RecordingObserver) OnNavigateStart(ctx context.Context, info NavigationInfo) {
	r.record(Event{Kind: EventNavigateStart, Info: info})
}

func (r *RecordingObserver) OnAlreadyHere(ctx context.Context, info NavigationInfo) {
	r.record(Event{Kind: EventAlreadyHere, Info: info})
}

func (r *RecordingObserver) OnCheckError(ctx context.Context, info NavigationInfo, err error) {
	r.record(Event{Kind: EventCheckError, Info: info, Err: err})
}

func (r *RecordingObserver) OnStepError(ctx context.Context, info NavigationInfo, err error) {
	r.record(Event{Kind: EventStepError, Info: info, Err: err})
}

func (r *RecordingObserver) OnNavigateCompleted(ctx context.Context, info NavigationInfo, d time.Duration) {
	r.record(Event{Kind: EventNavigateCompleted, Info: info, Duration: d})
}

func (r *RecordingObserver) OnNavigateFailed(ctx context.Context, info NavigationInfo, err error, d time.Duration) {
	r.record(Event{Kind: EventNavigateFailed, Info: info, Err: err, Duration: d})
}
