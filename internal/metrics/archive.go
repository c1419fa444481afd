package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	archiveOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "algowatch",
		Subsystem: "archive",
		Name:      "operations_total",
		Help:      "Count of archive repository operations.",
	}, []string{"operation", "status"})

	archiveOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "algowatch",
		Subsystem: "archive",
		Name:      "operation_duration_seconds",
		Help:      "Duration of archive repository operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// Archive tracks metrics for the ClickHouse block archive.
type Archive struct{}

// NewArchive constructs an Archive metrics recorder.
func NewArchive() *Archive {
	return &Archive{}
}

// Observe records one repository operation outcome and duration.
func (Archive) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	archiveOperationsTotal.WithLabelValues(operation, status).Inc()
	archiveOperationDuration.WithLabelValues(operation, status).
		Observe(time.Since(started).Seconds())
}
