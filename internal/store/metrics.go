package store

import "github.com/prometheus/client_golang/prometheus"

var (
	executionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text2sql_statement_executions_total",
			Help: "Total number of executed statements by operation kind and status.",
		},
		[]string{"kind", "status"},
	)
	executionLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "text2sql_statement_latency_ms",
			Help:    "Statement execution latency in milliseconds by operation kind.",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2000, 5000, 10000},
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(executionsTotal, executionLatencyMs)
}
