package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SessionOutcome(t *testing.T) {
	m := NewTestManager()

	m.SessionOutcome(OutcomeStarted)
	m.SessionOutcome(OutcomeStarted)
	m.SessionOutcome(OutcomeFinished)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterWorkoutSessions.WithLabelValues(OutcomeStarted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterWorkoutSessions.WithLabelValues(OutcomeFinished)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.CounterWorkoutSessions.WithLabelValues(OutcomeCancelled)))
}

func TestManager_Counters(t *testing.T) {
	m := NewTestManager()

	m.SetLogged()
	m.SetLogged()
	m.Signup()
	m.LiveClients(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterWorkoutSets))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterSignups))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.GaugeLiveClients))
}

func TestManager_NilSafe(t *testing.T) {
	var m *Manager
	assert.NotPanics(t, func() {
		m.SessionOutcome(OutcomeResumed)
		m.SetLogged()
		m.Signup()
		m.LiveClients(1)
	})
}

func TestManager_Registered(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()
	m.SetLogged()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "trackify_test_server_workout_sets_total")
}
