package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Approval("bill", "PM", OutcomeApproved)
	m.Approval("bill", "PM", OutcomeApproved)
	m.Payment(OutcomeAccepted, 2500)
	m.Payment(OutcomeRejected, 100)
	m.Deletion("payment", OutcomeDenied)
	m.ObserveRequest("GET", "/api/v1/bills", "200", 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.approvals.WithLabelValues("bill", "PM", OutcomeApproved)))
	assert.Equal(t, 2500.0, testutil.ToFloat64(m.paidAmount))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.payments.WithLabelValues(OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.deletions.WithLabelValues("payment", OutcomeDenied)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/v1/bills", "200")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Approval("bill", "QC", OutcomeRejected)
		m.Payment(OutcomeAccepted, 1)
		m.Deletion("bill", OutcomeAccepted)
		m.ObserveRequest("GET", "/", "200", time.Second)
	})
}
