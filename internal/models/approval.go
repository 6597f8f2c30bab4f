package models

import "github.com/shopspring/decimal"

// ApprovalColumns are the flattened stage columns of bills and weekly_records.
// Status is the derived status persisted for filtering; it is rewritten in the
// same statement as the stage columns.
type ApprovalColumns struct {
	PMDecision      string          `db:"pm_decision"`
	PMDebit         decimal.Decimal `db:"pm_debit"`
	PMNote          string          `db:"pm_note"`
	QCDecision      string          `db:"qc_decision"`
	QCDebit         decimal.Decimal `db:"qc_debit"`
	QCNote          string          `db:"qc_note"`
	BillingDecision string          `db:"billing_decision"`
	BillingNote     string          `db:"billing_note"`
	FinalAmount     decimal.Decimal `db:"final_amount"`
	Status          string          `db:"status"`
	Version         int64           `db:"version"`
}
