// Package metrics exposes Prometheus collectors for the approval and settlement flow.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "construction_billing"

// Metrics groups every collector the application records to.
type Metrics struct {
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	approvals       *prometheus.CounterVec
	payments        *prometheus.CounterVec
	paidAmount      prometheus.Counter
	deletions       *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		approvals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "approvals_total",
			Help:      "Approval decisions by unit kind, stage and outcome.",
		}, []string{"kind", "stage", "outcome"}),
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_total",
			Help:      "Payment attempts by outcome.",
		}, []string{"outcome"}),
		paidAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paid_amount_total",
			Help:      "Sum of accepted payment amounts.",
		}),
		deletions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deletions_total",
			Help:      "Deletion attempts by entity and outcome.",
		}, []string{"entity", "outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.requestDuration, m.approvals, m.payments, m.paidAmount, m.deletions)
	}
	return m
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, route, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, code).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Approval records an approval attempt. outcome is "approved", "rejected" or an error class.
func (m *Metrics) Approval(kind, stage, outcome string) {
	if m == nil {
		return
	}
	m.approvals.WithLabelValues(kind, stage, outcome).Inc()
}

// Payment records a payment attempt and, when accepted, its amount.
func (m *Metrics) Payment(outcome string, amount float64) {
	if m == nil {
		return
	}
	m.payments.WithLabelValues(outcome).Inc()
	if outcome == OutcomeAccepted && amount > 0 {
		m.paidAmount.Add(amount)
	}
}

// Deletion records a deletion attempt.
func (m *Metrics) Deletion(entity, outcome string) {
	if m == nil {
		return
	}
	m.deletions.WithLabelValues(entity, outcome).Inc()
}

// Outcome labels shared by the services.
const (
	OutcomeAccepted = "accepted"
	OutcomeApproved = "approved"
	OutcomeRejected = "rejected"
	OutcomeDenied   = "denied"
	OutcomeFailed   = "failed"
)
