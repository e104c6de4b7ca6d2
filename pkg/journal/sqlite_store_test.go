package journal

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("sql.Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// A single connection keeps the in-memory database alive and shared.
	db.SetMaxOpenConns(1)
	return db
}

func TestSQLiteStore_AppendAndGetRoundtrip(t *testing.T) {
	s, err := NewSQLiteStore(newTestDB(t))
	require.NoError(t, err)

	started := time.Now().Truncate(time.Microsecond)
	rec := &Record{
		ID:          "a",
		RunID:       "run-1",
		Destination: "All",
		ObjectType:  "pkg.Provider",
		Outcome:     OutcomeFailed,
		Attempts:    3,
		Error:       "navigation failed to reach [All] in the specified tries",
		StartedAt:   started,
		Duration:    42 * time.Millisecond,
	}
	require.NoError(t, s.Append(rec))

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, rec.RunID, got.RunID)
	assert.Equal(t, rec.Destination, got.Destination)
	assert.Equal(t, rec.ObjectType, got.ObjectType)
	assert.Equal(t, rec.Outcome, got.Outcome)
	assert.Equal(t, rec.Attempts, got.Attempts)
	assert.Equal(t, rec.Error, got.Error)
	assert.Equal(t, started.UnixNano(), got.StartedAt.UnixNano())
	assert.Equal(t, rec.Duration, got.Duration)
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	s, err := NewSQLiteStore(newTestDB(t))
	require.NoError(t, err)

	_, err = s.Get("nope")
	assert.True(t, errors.Is(err, ErrRecordNotFound))
}

func TestSQLiteStore_ListFilters(t *testing.T) {
	s, err := NewSQLiteStore(newTestDB(t))
	require.NoError(t, err)

	base := time.Now()
	for i, rec := range []*Record{
		sampleRecord("a", "run-1", "All", OutcomeCompleted),
		sampleRecord("b", "run-1", "New", OutcomeFailed),
		sampleRecord("c", "run-2", "All", OutcomeCompleted),
	} {
		rec.StartedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, s.Append(rec))
	}

	all, err := s.List(Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Oldest first.
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "c", all[2].ID)

	byRun, err := s.List(Filter{RunID: "run-1"})
	require.NoError(t, err)
	assert.Len(t, byRun, 2)

	failedAll, err := s.List(Filter{Destination: "All", Outcome: OutcomeFailed})
	require.NoError(t, err)
	assert.Empty(t, failedAll)

	failed, err := s.List(Filter{Outcome: OutcomeFailed})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "b", failed[0].ID)
}

func TestNewSQLiteStore_SchemaIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	_, err := NewSQLiteStore(db)
	require.NoError(t, err)
	_, err = NewSQLiteStore(db)
	require.NoError(t, err)
}
