// Package metrics exposes Prometheus instrumentation for the engine pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	streamMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "algowatch",
		Subsystem: "stream",
		Name:      "messages_total",
		Help:      "Count of inbound stream messages by kind.",
	}, []string{"endpoint", "kind"})

	streamProtocolErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "algowatch",
		Subsystem: "stream",
		Name:      "protocol_errors_total",
		Help:      "Count of malformed inbound messages dropped at the transport boundary.",
	}, []string{"endpoint"})

	streamConnectAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "algowatch",
		Subsystem: "stream",
		Name:      "connect_attempts_total",
		Help:      "Count of connect attempts by outcome, the initial dial included.",
	}, []string{"endpoint", "status"})

	streamFallbackActivationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "algowatch",
		Subsystem: "stream",
		Name:      "fallback_activations_total",
		Help:      "Count of synthetic fallback snapshots injected.",
	}, []string{"endpoint"})
)

// Stream tracks metrics for one subscription endpoint.
type Stream struct {
	endpoint string
}

// NewStream constructs a Stream metrics recorder.
func NewStream(endpoint string) *Stream {
	if endpoint == "" {
		endpoint = "unknown"
	}
	return &Stream{endpoint: endpoint}
}

// ObserveMessage records an inbound message by kind.
func (m Stream) ObserveMessage(kind string) {
	streamMessagesTotal.WithLabelValues(m.endpoint, kind).Inc()
}

// ObserveProtocolError records a dropped malformed message.
func (m Stream) ObserveProtocolError() {
	streamProtocolErrorsTotal.WithLabelValues(m.endpoint).Inc()
}

// ObserveConnectAttempt records the outcome of one dial, initial or reconnect.
func (m Stream) ObserveConnectAttempt(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	streamConnectAttemptsTotal.WithLabelValues(m.endpoint, status).Inc()
}

// ObserveFallbackActivated records injection of a synthetic snapshot.
func (m Stream) ObserveFallbackActivated() {
	streamFallbackActivationsTotal.WithLabelValues(m.endpoint).Inc()
}
