package pgsql

import (
	portsrepo "github.com/SscSPs/construction_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/construction_billing_app/internal/models"
	"github.com/SscSPs/construction_billing_app/internal/utils/pagination"
)

// approvalColumns lists the stage columns in the order scanApprovalColumns reads them.
const approvalColumns = `pm_decision, pm_debit, pm_note, qc_decision, qc_debit, qc_note,
		billing_decision, billing_note, final_amount, status, version`

const auditColumns = `created_at, created_by, last_updated_at, last_updated_by`

func approvalDest(a *models.ApprovalColumns) []any {
	return []any{
		&a.PMDecision, &a.PMDebit, &a.PMNote,
		&a.QCDecision, &a.QCDebit, &a.QCNote,
		&a.BillingDecision, &a.BillingNote,
		&a.FinalAmount, &a.Status, &a.Version,
	}
}

func approvalArgs(a models.ApprovalColumns) []any {
	return []any{
		a.PMDecision, a.PMDebit, a.PMNote,
		a.QCDecision, a.QCDebit, a.QCNote,
		a.BillingDecision, a.BillingNote,
		a.FinalAmount, a.Status, a.Version,
	}
}

func auditDest(a *models.AuditFields) []any {
	return []any{&a.CreatedAt, &a.CreatedBy, &a.LastUpdatedAt, &a.LastUpdatedBy}
}

func auditArgs(a models.AuditFields) []any {
	return []any{a.CreatedAt, a.CreatedBy, a.LastUpdatedAt, a.LastUpdatedBy}
}

// unitListArgs returns the filter arguments shared by the bill and NMR list
// queries, plus the row limit: one more than the page size so the caller can
// tell whether another page exists.
func unitListArgs(params portsrepo.ListUnitsParams) (args []any, pageSize int) {
	var status *string
	if params.Status != nil {
		s := params.Status.String()
		status = &s
	}
	pageSize = pagination.NormalizeLimit(params.Limit)
	return []any{params.AfterNumber, status, params.Project, params.Contractor, pageSize + 1}, pageSize
}

// unitListFilter is the WHERE clause matching unitListArgs for a number column.
func unitListFilter(numberColumn string) string {
	return `($1 = '' OR ` + numberColumn + ` < $1)
		AND ($2::text IS NULL OR status = $2)
		AND ($3 = '' OR project = $3)
		AND ($4 = '' OR contractor = $4)`
}
