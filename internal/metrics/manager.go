package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeStarted   = "started"
	OutcomeResumed   = "resumed"
	OutcomeFinished  = "finished"
	OutcomeCancelled = "cancelled"
)

type Manager struct {
	// counters
	CounterRequests        *prometheus.CounterVec
	CounterWorkoutSessions *prometheus.CounterVec
	CounterWorkoutSets     prometheus.Counter
	CounterSignups         prometheus.Counter

	// gauges
	GaugeRequests    prometheus.Gauge
	GaugeLiveClients prometheus.Gauge

	// histograms
	HistRequestDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("trackify", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("trackify", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_total",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterWorkoutSessions := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_sessions_total",
		Help:      "Workout session transitions by outcome",
	}, []string{"outcome"})
	counterWorkoutSets := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_sets_total",
		Help:      "The total number of logged sets",
	})
	counterSignups := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "signups_total",
		Help:      "The total number of registered users",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLiveClients := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "live_clients",
		Help:      "Connected live workout websocket clients",
	})

	histReqDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		Name:      "request_duration_seconds",
		Help:      "Total duration of requests in seconds",
	})

	return &Manager{
		CounterRequests:        counterRequests,
		CounterWorkoutSessions: counterWorkoutSessions,
		CounterWorkoutSets:     counterWorkoutSets,
		CounterSignups:         counterSignups,
		GaugeRequests:          gaugeRequests,
		GaugeLiveClients:       gaugeLiveClients,
		HistRequestDuration:    histReqDuration,
	}
}

// SessionOutcome counts a workout session transition. Safe on a nil Manager.
func (m *Manager) SessionOutcome(outcome string) {
	if m == nil {
		return
	}
	m.CounterWorkoutSessions.WithLabelValues(outcome).Inc()
}

// SetLogged counts a logged set. Safe on a nil Manager.
func (m *Manager) SetLogged() {
	if m == nil {
		return
	}
	m.CounterWorkoutSets.Inc()
}

// Signup counts a new account. Safe on a nil Manager.
func (m *Manager) Signup() {
	if m == nil {
		return
	}
	m.CounterSignups.Inc()
}

// LiveClients records the number of connected live clients. Safe on a nil Manager.
func (m *Manager) LiveClients(n int) {
	if m == nil {
		return
	}
	m.GaugeLiveClients.Set(float64(n))
}
