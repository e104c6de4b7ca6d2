package journal

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord(id, runID, dest string, outcome Outcome) *Record {
	return &Record{
		ID:          id,
		RunID:       runID,
		Destination: dest,
		ObjectType:  "pkg.Provider",
		Outcome:     outcome,
		Attempts:    1,
		StartedAt:   time.Now(),
		Duration:    time.Millisecond,
	}
}

func TestInMemoryStore_AppendAndGet(t *testing.T) {
	s := NewInMemoryStore()

	rec := sampleRecord("a", "run-1", "All", OutcomeCompleted)
	require.NoError(t, s.Append(rec))

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "All", got.Destination)

	// Mutating the caller's record after Append must not reach the trail.
	rec.Destination = "changed"
	got, err = s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "All", got.Destination)
}

func TestInMemoryStore_GetMissing(t *testing.T) {
	s := NewInMemoryStore()
	_, err := s.Get("nope")
	assert.True(t, errors.Is(err, ErrRecordNotFound))
}

func TestInMemoryStore_ListFilters(t *testing.T) {
	s := NewInMemoryStore()
	require.NoError(t, s.Append(sampleRecord("a", "run-1", "All", OutcomeCompleted)))
	require.NoError(t, s.Append(sampleRecord("b", "run-1", "New", OutcomeFailed)))
	require.NoError(t, s.Append(sampleRecord("c", "run-2", "All", OutcomeCompleted)))

	all, err := s.List(Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byRun, err := s.List(Filter{RunID: "run-1"})
	require.NoError(t, err)
	assert.Len(t, byRun, 2)

	byDest, err := s.List(Filter{Destination: "All"})
	require.NoError(t, err)
	assert.Len(t, byDest, 2)

	failed, err := s.List(Filter{Outcome: OutcomeFailed})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "b", failed[0].ID)

	none, err := s.List(Filter{RunID: "run-2", Outcome: OutcomeFailed})
	require.NoError(t, err)
	assert.Empty(t, none)
}
