package navio

import (
	"database/sql"

	"github.com/petrijr/navio/pkg/journal"
)

// JournalBundle wires together a Navigator and a journal Store fed by
// that navigator's lifecycle events.
type JournalBundle struct {
	Navigator Navigator
	Journal   journal.Store
}

// NewSQLiteBundle constructs a Navigator whose finished navigations are
// durably recorded in the provided *sql.DB, alongside the journal store
// for reading the trail back. Additional observers are composed in after
// the journal's.
//
// Typical usage:
//
//	db, _ := sql.Open("sqlite", "file:navio.db?_journal=WAL")
//	bundle, err := navio.NewSQLiteBundle(db)
//	// register destinations on bundle.Navigator
//	// inspect past navigations via bundle.Journal.List
func NewSQLiteBundle(db *sql.DB, extra ...Observer) (*JournalBundle, error) {
	store, err := journal.NewSQLiteStore(db)
	if err != nil {
		return nil, err
	}

	observers := append([]Observer{journal.NewObserver(store)}, extra...)

	return &JournalBundle{
		Navigator: NewWithObserver(NewCompositeObserver(observers...)),
		Journal:   store,
	}, nil
}

// NewInMemoryBundle is NewSQLiteBundle's non-durable counterpart, useful
// for tests and development.
func NewInMemoryBundle(extra ...Observer) *JournalBundle {
	store := journal.NewInMemoryStore()
	observers := append([]Observer{journal.NewObserver(store)}, extra...)

	return &JournalBundle{
		Navigator: NewWithObserver(NewCompositeObserver(observers...)),
		Journal:   store,
	}
}
