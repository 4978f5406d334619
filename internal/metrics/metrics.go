package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics records runner activity. It satisfies benchmark.Observer.
type Metrics struct {
	WorkloadDuration *prometheus.GaugeVec
	WorkloadsTotal   *prometheus.CounterVec
}

// NewMetrics creates the runner metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{}

	m.WorkloadDuration = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "greenbench_workload_duration_seconds",
			Help: "Wall time of the last completed run of each workload",
		},
		[]string{"workload"},
	)

	m.WorkloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "greenbench_workloads_total",
			Help: "Total number of workload invocations by outcome",
		},
		[]string{"outcome"},
	)

	reg.MustRegister(m.WorkloadDuration, m.WorkloadsTotal)

	return m
}

// Observe records one runner invocation. Failed invocations only count.
func (m *Metrics) Observe(name string, d time.Duration, err error) {
	if err != nil {
		m.WorkloadsTotal.WithLabelValues(OutcomeFailure).Inc()
		return
	}
	m.WorkloadsTotal.WithLabelValues(OutcomeSuccess).Inc()
	m.WorkloadDuration.WithLabelValues(name).Set(d.Seconds())
}

// WriteTextfile exports gatherer in the text exposition format, for the
// node_exporter textfile collector.
func WriteTextfile(path string, gatherer prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, gatherer)
}
