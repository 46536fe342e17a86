package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const metricNamespace = "percona_iulist"

// Counters.
var (
	//nolint:gochecknoglobals
	operationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "operations_total",
		Help:      "Total number of list operations executed by scenarios.",
		Namespace: metricNamespace,
	}, []string{"kind", "op"})

	//nolint:gochecknoglobals
	failuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "failures_total",
		Help:      "Total number of list operations that returned an error.",
		Namespace: metricNamespace,
	}, []string{"kind", "reason"})

	//nolint:gochecknoglobals
	casesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "cases_total",
		Help:      "Total number of scenario cases run.",
		Namespace: metricNamespace,
	}, []string{"kind", "result"})
)

// Gauges.
var (
	//nolint:gochecknoglobals
	arrayCapacity = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name:      "array_capacity",
		Help:      "Backing capacity of the last array-backed list used by a scenario case.",
		Namespace: metricNamespace,
	}, []string{"case"})

	//nolint:gochecknoglobals
	runDurationSeconds = prometheus.NewGauge(prometheus.GaugeOpts{
		Name:      "run_duration_seconds",
		Help:      "Duration of the last scenario run in seconds.",
		Namespace: metricNamespace,
	})
)

// Init initializes and registers the metrics.
func Init(reg prometheus.Registerer) {
	reg.MustRegister(collectors.NewGoCollector())

	reg.MustRegister(
		operationsTotal,
		failuresTotal,
		casesTotal,

		arrayCapacity,
		runDurationSeconds,
	)
}

// AddOperation increments the operation counter.
func AddOperation(kind, op string) {
	operationsTotal.WithLabelValues(kind, op).Inc()
}

// AddFailure increments the failed operation counter.
func AddFailure(kind, reason string) {
	failuresTotal.WithLabelValues(kind, reason).Inc()
}

// AddCase increments the case counter. The result is "pass" or "fail".
func AddCase(kind string, passed bool) {
	result := "fail"
	if passed {
		result = "pass"
	}

	casesTotal.WithLabelValues(kind, result).Inc()
}

// SetArrayCapacity sets the array capacity gauge for a case.
func SetArrayCapacity(name string, v int) {
	arrayCapacity.WithLabelValues(name).Set(float64(v))
}

// SetRunDuration sets the run duration gauge.
func SetRunDuration(dur time.Duration) {
	runDurationSeconds.Set(dur.Seconds())
}
