// Package journal records completed navigations as an append-only trail.
//
// A Store holds one Record per finished navigation (prerequisite
// sub-navigations included); the Observer adapter feeds a Store from the
// dispatcher's lifecycle events. In-memory and SQLite-backed stores are
// provided; anything else can plug in behind the Store interface.
package journal

import (
	"errors"
	"time"
)

// ErrRecordNotFound is returned when a journal record is not found.
var ErrRecordNotFound = errors.New("journal record not found")

// Outcome is the terminal state of a recorded navigation.
type Outcome string

const (
	OutcomeCompleted Outcome = "COMPLETED"
	OutcomeFailed    Outcome = "FAILED"
)

// Record is one finished navigation.
type Record struct {
	// ID uniquely identifies this record.
	ID string

	// RunID groups the records of one top-level navigation and its
	// prerequisite sub-navigations.
	RunID string

	// Destination is the resolved step name.
	Destination string

	// ObjectType is the display name of the context object's type.
	ObjectType string

	// Outcome is how the navigation ended.
	Outcome Outcome

	// Attempts is the number of attempts the executor made.
	Attempts int

	// Error holds the failure text for OutcomeFailed records.
	Error string

	// StartedAt is when the navigation began.
	StartedAt time.Time

	// Duration is how long the navigation took, prerequisites included.
	Duration time.Duration
}

// Filter selects records from a Store. Zero values mean "no filter" for
// that field.
type Filter struct {
	RunID       string
	Destination string
	Outcome     Outcome
}

// Store persists navigation records.
type Store interface {
	// Append adds a record to the trail.
	Append(rec *Record) error

	// Get returns the record with the given ID, or ErrRecordNotFound.
	Get(id string) (*Record, error)

	// List returns the records matching filter, oldest first.
	List(filter Filter) ([]*Record, error)
}
