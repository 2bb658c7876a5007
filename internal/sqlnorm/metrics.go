package sqlnorm

import "github.com/prometheus/client_golang/prometheus"

var (
	extractionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text2sql_extractions_total",
			Help: "Total number of statement extraction attempts by outcome.",
		},
		[]string{"outcome"},
	)

	reconciliationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text2sql_intent_reconciliations_total",
			Help: "Total number of intent reconciliation interventions by action.",
		},
		[]string{"action"},
	)
)

func init() {
	prometheus.MustRegister(extractionsTotal, reconciliationsTotal)
}
