package archive

import "github.com/prometheus/client_golang/prometheus"

var resultsArchivedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "text2sql_results_archived_total",
		Help: "Total number of result-set archive attempts by status.",
	},
	[]string{"status"},
)

func init() {
	prometheus.MustRegister(resultsArchivedTotal)
}
