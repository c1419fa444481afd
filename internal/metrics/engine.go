package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	engineRecomputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "algowatch",
		Subsystem: "engine",
		Name:      "recompute_duration_seconds",
		Help:      "Duration of the stats and distribution recompute per window mutation.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	engineRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "algowatch",
		Subsystem: "engine",
		Name:      "rejections_total",
		Help:      "Count of increments rejected by the window buffer.",
	}, []string{"reason"})

	engineWindowLength = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "algowatch",
		Subsystem: "engine",
		Name:      "window_length",
		Help:      "Current number of records in the window buffer.",
	})
)

// Engine tracks pipeline metrics.
type Engine struct{}

// NewEngine constructs an Engine metrics recorder.
func NewEngine() *Engine {
	return &Engine{}
}

// ObserveRecompute records one recompute pass.
func (Engine) ObserveRecompute(started time.Time) {
	engineRecomputeDuration.Observe(time.Since(started).Seconds())
}

// ObserveRejection records a rejected increment by reason.
func (Engine) ObserveRejection(reason string) {
	engineRejectionsTotal.WithLabelValues(reason).Inc()
}

// ObserveWindowLength records the window length after a mutation.
func (Engine) ObserveWindowLength(length int) {
	engineWindowLength.Set(float64(length))
}
