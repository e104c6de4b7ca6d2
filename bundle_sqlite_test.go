package navio

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrijr/navio/pkg/journal"
)

type bundleEntity struct{}

// TestSQLiteBundle_RecordsTrail demonstrates that navigations performed
// through a bundled Navigator end up in the SQLite journal, including the
// prerequisite sub-navigations of a single run.
func TestSQLiteBundle_RecordsTrail(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "navio_bundle.db")
	db, err := sql.Open("sqlite", "file:"+dbPath+"?_journal=WAL")
	require.NoError(t, err)
	defer db.Close()

	bundle, err := NewSQLiteBundle(db)
	require.NoError(t, err)

	NewStep("Zero").Register(bundle.Navigator, bundleEntity{})
	NewStep("One").
		Prerequisite(NavigateToSibling("Zero")).
		Register(bundle.Navigator, bundleEntity{})
	NewStep("Broken").
		Do(func(ctx context.Context, nav Navigation, args ...any) error {
			return errors.New("always fails")
		}).
		Register(bundle.Navigator, bundleEntity{})

	ctx := context.Background()
	require.NoError(t, bundle.Navigator.Navigate(ctx, bundleEntity{}, "One"))

	err = bundle.Navigator.Navigate(ctx, bundleEntity{}, "Broken")
	_, ok := IsTriesExceeded(err)
	require.True(t, ok)

	// One run produced two completed records sharing a run ID.
	completed, err := bundle.Journal.List(journal.Filter{Outcome: journal.OutcomeCompleted})
	require.NoError(t, err)
	require.Len(t, completed, 2)
	assert.Equal(t, completed[0].RunID, completed[1].RunID)

	destinations := []string{completed[0].Destination, completed[1].Destination}
	assert.ElementsMatch(t, []string{"Zero", "One"}, destinations)

	failed, err := bundle.Journal.List(journal.Filter{Outcome: journal.OutcomeFailed})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "Broken", failed[0].Destination)
	// The retry guard fires on the attempt after the last permitted one.
	assert.Equal(t, DefaultMaxTries+1, failed[0].Attempts)
	assert.Contains(t, failed[0].Error, "Broken")
	assert.NotEqual(t, completed[0].RunID, failed[0].RunID)
}

func TestInMemoryBundle_ComposesExtraObservers(t *testing.T) {
	rec := &RecordingObserver{}
	bundle := NewInMemoryBundle(rec)

	NewStep("All").Register(bundle.Navigator, bundleEntity{})
	require.NoError(t, bundle.Navigator.Navigate(context.Background(), bundleEntity{}, "All"))

	recs, err := bundle.Journal.List(journal.Filter{})
	require.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.NotEmpty(t, rec.Events(), "extra observers receive the same events")
}
