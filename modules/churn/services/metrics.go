package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	importRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "churn",
		Subsystem: "import",
		Name:      "rows_total",
		Help:      "Total number of import rows broken down by csv_type and outcome.",
	}, []string{"csv_type", "outcome"})

	importBatchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "churn",
		Subsystem: "import",
		Name:      "batch_errors_total",
		Help:      "Total number of failed write batches broken down by csv_type.",
	}, []string{"csv_type"})

	importRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "churn",
		Subsystem: "import",
		Name:      "runs_total",
		Help:      "Total number of import runs broken down by csv_type and status.",
	}, []string{"csv_type", "status"})
)

func recordImportRun(csvType, status string, result *ImportResult) {
	importRuns.WithLabelValues(csvType, status).Inc()
	if result == nil {
		return
	}
	importRows.WithLabelValues(csvType, "inserted").Add(float64(result.Inserted))
	if result.Skipped != nil {
		importRows.WithLabelValues(csvType, "skipped").Add(float64(*result.Skipped))
	}
	importBatchErrors.WithLabelValues(csvType).Add(float64(len(result.Errors)))
}
