package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a row of the payments table. BillTotal, Balance and Status are
// snapshots taken when the payment was recorded.
type Payment struct {
	ID          string          `db:"id"`
	PaymentID   string          `db:"payment_id"`
	BillID      string          `db:"bill_id"`
	BillNumber  string          `db:"bill_number"`
	PaymentDate time.Time       `db:"payment_date"`
	PaidAmount  decimal.Decimal `db:"paid_amount"`
	Project     string          `db:"project"`
	Contractor  string          `db:"contractor"`
	BillTotal   decimal.Decimal `db:"bill_total"`
	Balance     decimal.Decimal `db:"balance"`
	Status      string          `db:"status"`
	AuditFields
}
