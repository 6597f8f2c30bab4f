package services

import (
	"fmt"

	"github.com/SscSPs/construction_billing_app/internal/apperrors"
	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	"github.com/SscSPs/construction_billing_app/internal/platform/config"
	"github.com/SscSPs/construction_billing_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// stageInput is a PM or QC decision.
type stageInput struct {
	approved bool
	debit    decimal.Decimal
	note     string
}

// billingInput is the final sign-off decision.
type billingInput struct {
	approved bool
	override *decimal.Decimal
	status   *string
	note     string
}

// pipeline holds the transition rules shared by bills and weekly records. Its
// methods mutate the unit they are given and return non-fatal warnings; on error
// the unit must be discarded.
type pipeline struct {
	debitPolicy config.DebitPolicy
}

func decisionFor(approved bool) domain.Decision {
	if approved {
		return domain.DecisionApproved
	}
	return domain.DecisionRejected
}

// recomputeFinal refreshes FinalAmount from the PM and QC debits.
func (p pipeline) recomputeFinal(u *domain.PayableUnit) ([]string, error) {
	final, clamped, err := accounting.ComputeFinalAmount(u.BaseAmount, u.PM.Debit, u.QC.Debit)
	if err != nil {
		return nil, err
	}
	var warnings []string
	if clamped {
		total := u.PM.Debit.Add(u.QC.Debit)
		if p.debitPolicy == config.DebitPolicyReject {
			return nil, fmt.Errorf("%w: debits %s exceed base amount %s", apperrors.ErrInvalidAmount, total.String(), u.BaseAmount.String())
		}
		warnings = append(warnings, fmt.Sprintf("debits %s exceed base amount %s; final amount clamped to 0", total.String(), u.BaseAmount.String()))
	}
	u.FinalAmount = final
	return warnings, nil
}

// approvePM records the PM decision. PM is the only re-entry point for a
// rejected unit: approving it again sends the unit back to Pending QC.
func (p pipeline) approvePM(u *domain.PayableUnit, role domain.Role, in stageInput) ([]string, error) {
	if !role.CanApprovePM() {
		return nil, fmt.Errorf("%w: role %q cannot approve at PM stage", apperrors.ErrForbidden, role)
	}
	if u.Status() == domain.StatusApproved {
		return nil, fmt.Errorf("%w: %s is already approved", apperrors.ErrStageOutOfOrder, u.DisplayNumber)
	}
	if err := accounting.ValidateAmount("PM debit", in.debit); err != nil {
		return nil, err
	}

	wasRejected := u.Status() == domain.StatusRejected
	u.PM = domain.Stage{Decision: decisionFor(in.approved), Debit: in.debit, Note: in.note}
	if wasRejected && in.approved {
		// Later decisions are superseded; debits and notes stay for the next reviewer.
		u.QC.Decision = domain.DecisionPending
		u.Billing.Decision = domain.DecisionPending
	}
	return p.recomputeFinal(u)
}

// approveQC records the QC decision. PM must have approved and the unit must
// not be halted by a rejection.
func (p pipeline) approveQC(u *domain.PayableUnit, role domain.Role, in stageInput) ([]string, error) {
	if !role.CanApproveQC() {
		return nil, fmt.Errorf("%w: role %q cannot approve at QC stage", apperrors.ErrForbidden, role)
	}
	status := u.Status()
	if !u.PM.Approved() || status == domain.StatusRejected || status == domain.StatusApproved {
		return nil, fmt.Errorf("%w: QC approval requires PM approval, %s is %s", apperrors.ErrStageOutOfOrder, u.DisplayNumber, status)
	}
	if err := accounting.ValidateAmount("QC debit", in.debit); err != nil {
		return nil, err
	}

	u.QC = domain.Stage{Decision: decisionFor(in.approved), Debit: in.debit, Note: in.note}
	return p.recomputeFinal(u)
}

// approveBilling records the final decision. On approval the final amount is
// frozen, optionally replaced by a rounding correction within [0, base].
func (p pipeline) approveBilling(u *domain.PayableUnit, role domain.Role, in billingInput) ([]string, error) {
	if !role.CanApproveBilling() {
		return nil, fmt.Errorf("%w: role %q cannot approve at Billing stage", apperrors.ErrForbidden, role)
	}
	if status := u.Status(); !u.QC.Approved() || status != domain.StatusPendingBilling {
		return nil, fmt.Errorf("%w: Billing approval requires QC approval, %s is %s", apperrors.ErrStageOutOfOrder, u.DisplayNumber, status)
	}
	if in.status != nil {
		want := domain.StatusRejected.String()
		if in.approved {
			want = domain.StatusApproved.String()
		}
		if *in.status != want {
			return nil, fmt.Errorf("%w: status %q contradicts approved=%t", apperrors.ErrValidation, *in.status, in.approved)
		}
	}

	var warnings []string
	if in.approved && in.override != nil {
		override := *in.override
		if err := accounting.ValidateAmount("finalAmount", override); err != nil {
			return nil, err
		}
		if override.GreaterThan(u.BaseAmount) {
			return nil, fmt.Errorf("%w: final amount override %s must be between 0 and %s", apperrors.ErrInvalidAmount, override.String(), u.BaseAmount.String())
		}
		if !override.Equal(u.FinalAmount) {
			warnings = append(warnings, fmt.Sprintf("final amount overridden from %s to %s", u.FinalAmount.String(), override.String()))
		}
		u.FinalAmount = override
	}

	u.Billing = domain.Stage{Decision: decisionFor(in.approved), Debit: decimal.Zero, Note: in.note}
	return warnings, nil
}
