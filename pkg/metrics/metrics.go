package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	slopeMonitor = "slope_monitor"

	// Import metrics
	seriesImportsTotal = "series_imports_total"

	// Engine metrics
	engineCallsTotal          = "engine_calls_total"
	engineCallDurationSeconds = "engine_call_duration_seconds"

	// Labels
	seriesTypeLabel      = "series_type"
	engineOperationLabel = "operation"
	engineStatusLabel    = "status"
)

/**
* Metrics definition
**/
var seriesImportsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: slopeMonitor,
		Name:      seriesImportsTotal,
		Help:      "number of series files imported, by series type",
	},
	[]string{seriesTypeLabel},
)

var engineCallsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: slopeMonitor,
		Name:      engineCallsTotal,
		Help:      "number of calculation engine invocations, by operation and outcome",
	},
	[]string{engineOperationLabel, engineStatusLabel},
)

var engineCallDurationMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Subsystem: slopeMonitor,
		Name:      engineCallDurationSeconds,
		Help:      "duration of calculation engine invocations",
		Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 120},
	},
	[]string{engineOperationLabel},
)

func IncreaseSeriesImportsTotalMetric(seriesType string) {
	seriesImportsTotalMetric.With(prometheus.Labels{seriesTypeLabel: seriesType}).Inc()
}

func ObserveEngineCall(operation string, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	engineCallsTotalMetric.With(prometheus.Labels{
		engineOperationLabel: operation,
		engineStatusLabel:    status,
	}).Inc()
	engineCallDurationMetric.With(prometheus.Labels{
		engineOperationLabel: operation,
	}).Observe(elapsed.Seconds())
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(seriesImportsTotalMetric)
	prometheus.MustRegister(engineCallsTotalMetric)
	prometheus.MustRegister(engineCallDurationMetric)
}
