// Package metrics exposes Prometheus collectors for notification delivery.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Delivery outcomes recorded by Recorder.
const (
	OutcomeSent           = "sent"
	OutcomeFailed         = "failed"
	OutcomeRejected       = "rejected"
	OutcomeNotConfigured  = "not_configured"
	OutcomeSecondaryError = "secondary_failed"
)

// Recorder records delivery attempts per channel.
type Recorder struct {
	registry   *prometheus.Registry
	deliveries *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	dropped    *prometheus.CounterVec
}

// New creates a Recorder with its own registry, pre-loaded with the Go and
// process collectors.
func New() *Recorder {
	reg := prometheus.NewRegistry()

	deliveries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "salon_notify",
		Name:      "deliveries_total",
		Help:      "Notification requests by channel and outcome.",
	}, []string{"channel", "outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "salon_notify",
		Name:      "provider_duration_seconds",
		Help:      "Time spent waiting on the delivery provider.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"channel"})
	dropped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "salon_notify",
		Name:      "events_dropped_total",
		Help:      "Delivery events discarded before reaching subscribers.",
	}, []string{"event"})

	reg.MustRegister(
		deliveries,
		latency,
		dropped,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Recorder{registry: reg, deliveries: deliveries, latency: latency, dropped: dropped}
}

// Delivery counts one request on channel with the given outcome.
// A nil Recorder is a no-op.
func (r *Recorder) Delivery(channel, outcome string) {
	if r == nil {
		return
	}
	r.deliveries.WithLabelValues(channel, outcome).Inc()
}

// ObserveProvider records how long a provider call on channel took.
func (r *Recorder) ObserveProvider(channel string, d time.Duration) {
	if r == nil {
		return
	}
	r.latency.WithLabelValues(channel).Observe(d.Seconds())
}

// EventDropped counts a delivery event that never reached its subscribers.
func (r *Recorder) EventDropped(eventType string) {
	if r == nil {
		return
	}
	r.dropped.WithLabelValues(eventType).Inc()
}

// Deliveries exposes the counter vector, mainly for tests.
func (r *Recorder) Deliveries() *prometheus.CounterVec {
	return r.deliveries
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
