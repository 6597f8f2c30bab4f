package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayableUnitStatus(t *testing.T) {
	tests := []struct {
		name            string
		pm, qc, billing Decision
		want            Status
	}{
		{"all pending", DecisionPending, DecisionPending, DecisionPending, StatusPendingPM},
		{"pm approved", DecisionApproved, DecisionPending, DecisionPending, StatusPendingQC},
		{"qc approved", DecisionApproved, DecisionApproved, DecisionPending, StatusPendingBilling},
		{"all approved", DecisionApproved, DecisionApproved, DecisionApproved, StatusApproved},
		{"pm rejected", DecisionRejected, DecisionPending, DecisionPending, StatusRejected},
		{"qc rejected", DecisionApproved, DecisionRejected, DecisionPending, StatusRejected},
		{"billing rejected", DecisionApproved, DecisionApproved, DecisionRejected, StatusRejected},
		// An earlier pending stage shadows a later decision.
		{"pending pm with stale qc", DecisionPending, DecisionRejected, DecisionPending, StatusPendingPM},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := PayableUnit{PM: Stage{Decision: tt.pm}, QC: Stage{Decision: tt.qc}, Billing: Stage{Decision: tt.billing}}
			assert.Equal(t, tt.want, u.Status())
		})
	}
}

func TestStatusText(t *testing.T) {
	for status, name := range statusNames {
		text, err := status.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, name, string(text))

		var parsed Status
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, status, parsed)
	}

	_, err := ParseStatus("Paid")
	assert.Error(t, err)
	_, err = Status(42).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Status(42)", Status(42).String())
}

func TestEffectiveRole(t *testing.T) {
	assert.Equal(t, RoleQC, User{Role: RoleQC, IsActive: true}.EffectiveRole())
	assert.Equal(t, RoleViewer, User{Role: RoleQC, IsActive: false}.EffectiveRole())
	assert.Equal(t, RoleViewer, User{Role: "foreman", IsActive: true}.EffectiveRole())
}
