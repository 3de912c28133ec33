package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "sortbench"

// Metrics 基准运行的 Prometheus 指标；nil 接收者上的方法均为空操作
type Metrics struct {
	SortDuration *prometheus.HistogramVec
	Mismatches   *prometheus.CounterVec
	Trials       prometheus.Counter
	Runs         prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SortDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "sort_duration_seconds",
				Help:      "Elapsed time of a single sort invocation by algorithm",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"algorithm"},
		),
		Mismatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "mismatches_total",
				Help:      "Sort outputs that differed from the reference output",
			},
			[]string{"algorithm"},
		),
		Trials: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "trials_total",
			Help:      "Completed benchmark trials",
		}),
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "runs_total",
			Help:      "Completed benchmark runs",
		}),
	}
	reg.MustRegister(m.SortDuration, m.Mismatches, m.Trials, m.Runs)
	return m
}

func (m *Metrics) observeSort(algorithm string, d time.Duration) {
	if m == nil {
		return
	}
	m.SortDuration.WithLabelValues(algorithm).Observe(d.Seconds())
}

func (m *Metrics) observeTrial(mismatched []string) {
	if m == nil {
		return
	}
	m.Trials.Inc()
	for _, name := range mismatched {
		m.Mismatches.WithLabelValues(name).Inc()
	}
}

func (m *Metrics) observeRun() {
	if m == nil {
		return
	}
	m.Runs.Inc()
}
