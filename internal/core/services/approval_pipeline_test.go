package services

import (
	"testing"

	"github.com/SscSPs/construction_billing_app/internal/apperrors"
	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	"github.com/SscSPs/construction_billing_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUnit(base int64) domain.PayableUnit {
	pm, qc, billing := domain.NewPendingStages()
	return domain.PayableUnit{
		DisplayNumber: "BILL-0000000000001-0000",
		BaseAmount:    decimal.NewFromInt(base),
		FinalAmount:   decimal.NewFromInt(base),
		PM:            pm,
		QC:            qc,
		Billing:       billing,
	}
}

func approve(debit int64) stageInput {
	return stageInput{approved: true, debit: decimal.NewFromInt(debit)}
}

func TestPipeline_HappyPath(t *testing.T) {
	p := pipeline{debitPolicy: config.DebitPolicyClamp}
	u := newUnit(1000)

	_, err := p.approvePM(&u, domain.RoleProjectManager, approve(50))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingQC, u.Status())

	_, err = p.approveQC(&u, domain.RoleQC, approve(25))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingBilling, u.Status())
	assert.True(t, decimal.NewFromInt(925).Equal(u.FinalAmount))

	_, err = p.approveBilling(&u, domain.RoleBillingEngineer, billingInput{approved: true})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, u.Status())
	assert.True(t, u.Billing.Debit.IsZero())
}

func TestPipeline_AdminMayActAtEveryStage(t *testing.T) {
	p := pipeline{}
	u := newUnit(10)
	_, err := p.approvePM(&u, domain.RoleAdmin, approve(0))
	require.NoError(t, err)
	_, err = p.approveQC(&u, domain.RoleAdmin, approve(0))
	require.NoError(t, err)
	_, err = p.approveBilling(&u, domain.RoleAdmin, billingInput{approved: true})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, u.Status())
}

func TestPipeline_Ordering(t *testing.T) {
	p := pipeline{}

	tests := []struct {
		name  string
		setup func(u *domain.PayableUnit)
		apply func(u *domain.PayableUnit) error
		want  error
	}{
		{
			name:  "QC before PM",
			setup: func(u *domain.PayableUnit) {},
			apply: func(u *domain.PayableUnit) error {
				_, err := p.approveQC(u, domain.RoleQC, approve(0))
				return err
			},
			want: apperrors.ErrStageOutOfOrder,
		},
		{
			name:  "Billing before QC",
			setup: func(u *domain.PayableUnit) { u.PM.Decision = domain.DecisionApproved },
			apply: func(u *domain.PayableUnit) error {
				_, err := p.approveBilling(u, domain.RoleBillingEngineer, billingInput{approved: true})
				return err
			},
			want: apperrors.ErrStageOutOfOrder,
		},
		{
			name: "QC after QC rejection",
			setup: func(u *domain.PayableUnit) {
				u.PM.Decision = domain.DecisionApproved
				u.QC.Decision = domain.DecisionRejected
			},
			apply: func(u *domain.PayableUnit) error {
				_, err := p.approveQC(u, domain.RoleQC, approve(0))
				return err
			},
			want: apperrors.ErrStageOutOfOrder,
		},
		{
			name:  "wrong role at PM",
			setup: func(u *domain.PayableUnit) {},
			apply: func(u *domain.PayableUnit) error {
				_, err := p.approvePM(u, domain.RoleSiteEngineer, approve(0))
				return err
			},
			want: apperrors.ErrForbidden,
		},
		{
			name:  "negative QC debit",
			setup: func(u *domain.PayableUnit) { u.PM.Decision = domain.DecisionApproved },
			apply: func(u *domain.PayableUnit) error {
				_, err := p.approveQC(u, domain.RoleQC, approve(-3))
				return err
			},
			want: apperrors.ErrInvalidAmount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newUnit(100)
			tt.setup(&u)
			assert.ErrorIs(t, tt.apply(&u), tt.want)
		})
	}
}

func TestPipeline_PMRejectionThenReapproval(t *testing.T) {
	p := pipeline{}
	u := newUnit(500)

	_, err := p.approvePM(&u, domain.RoleProjectManager, stageInput{approved: false, debit: decimal.NewFromInt(100), note: "rework"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, u.Status())
	assert.Equal(t, "rework", u.PM.Note)

	// Rejecting again is allowed and stays rejected.
	_, err = p.approvePM(&u, domain.RoleProjectManager, stageInput{approved: false})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, u.Status())

	_, err = p.approvePM(&u, domain.RoleProjectManager, approve(20))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingQC, u.Status())
	assert.True(t, decimal.NewFromInt(480).Equal(u.FinalAmount))
}

func TestPipeline_DebitPolicies(t *testing.T) {
	clamp := pipeline{debitPolicy: config.DebitPolicyClamp}
	u := newUnit(100)
	warnings, err := clamp.approvePM(&u, domain.RoleProjectManager, approve(150))
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
	assert.True(t, u.FinalAmount.IsZero())

	reject := pipeline{debitPolicy: config.DebitPolicyReject}
	u = newUnit(100)
	_, err = reject.approvePM(&u, domain.RoleProjectManager, approve(150))
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	// Exactly base is not a clamp.
	u = newUnit(100)
	warnings, err = reject.approvePM(&u, domain.RoleProjectManager, approve(100))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.True(t, u.FinalAmount.IsZero())
}

func TestPipeline_BillingOverrideBounds(t *testing.T) {
	p := pipeline{}
	ready := func() domain.PayableUnit {
		u := newUnit(200)
		u.PM.Decision = domain.DecisionApproved
		u.QC.Decision = domain.DecisionApproved
		u.FinalAmount = decimal.NewFromInt(190)
		return u
	}

	for _, bad := range []int64{-1, 201} {
		u := ready()
		override := decimal.NewFromInt(bad)
		_, err := p.approveBilling(&u, domain.RoleBillingEngineer, billingInput{approved: true, override: &override})
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount, bad)
	}

	u := ready()
	same := decimal.NewFromInt(190)
	warnings, err := p.approveBilling(&u, domain.RoleBillingEngineer, billingInput{approved: true, override: &same})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	// Overrides are ignored on rejection.
	u = ready()
	zero := decimal.Zero
	_, err = p.approveBilling(&u, domain.RoleBillingEngineer, billingInput{approved: false, override: &zero})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, u.Status())
	assert.True(t, decimal.NewFromInt(190).Equal(u.FinalAmount))
}
