package nl2sql

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	translationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text2sql_translations_total",
			Help: "Total number of SQL generation calls by provider and status.",
		},
		[]string{"provider", "status"},
	)
	translationLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "text2sql_translation_latency_ms",
			Help:    "SQL generation latency in milliseconds by provider.",
			Buckets: []float64{100, 250, 500, 1000, 2500, 5000, 10000, 30000, 60000},
		},
		[]string{"provider"},
	)
)

func init() {
	prometheus.MustRegister(translationsTotal, translationLatencyMs)
}

func observeTranslation(provider string, start time.Time, err error) {
	status := "completed"
	if err != nil {
		status = "failed"
	}
	translationsTotal.WithLabelValues(provider, status).Inc()
	translationLatencyMs.WithLabelValues(provider).Observe(float64(time.Since(start).Milliseconds()))
}
