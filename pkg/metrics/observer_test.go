package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrijr/navio/pkg/api"
)

func TestObserver_CountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := NewObserver(reg)
	ctx := context.Background()

	info := api.NavigationInfo{Destination: "All", Attempt: 1}
	obs.OnNavigateCompleted(ctx, info, 10*time.Millisecond)
	obs.OnNavigateCompleted(ctx, info, 20*time.Millisecond)
	obs.OnNavigateFailed(ctx, info, errors.New("gave up"), time.Second)
	obs.OnStepError(ctx, info, errors.New("click failed"))

	assert.Equal(t, 2.0, testutil.ToFloat64(obs.navigations.WithLabelValues("All", "completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.navigations.WithLabelValues("All", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.stepErrors.WithLabelValues("All")))

	// Durations are observed for completed and failed navigations alike.
	count := testutil.CollectAndCount(obs.duration, "navio_navigation_duration_seconds")
	assert.Equal(t, 1, count, "one duration series for the single destination")
}

func TestNewObserver_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := NewObserver(reg)

	obs.OnNavigateCompleted(context.Background(), api.NavigationInfo{Destination: "All"}, time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "navio_navigations_total")
	assert.Contains(t, names, "navio_navigation_duration_seconds")

	// Re-registering the same metric names on the same registry must
	// panic, matching MustRegister semantics.
	assert.Panics(t, func() { NewObserver(reg) })
}
