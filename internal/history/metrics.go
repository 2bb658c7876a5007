package history

import "github.com/prometheus/client_golang/prometheus"

var recordsPrunedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "text2sql_history_records_pruned_total",
		Help: "Total number of history records removed by retention runs.",
	},
)

func init() {
	prometheus.MustRegister(recordsPrunedTotal)
}
