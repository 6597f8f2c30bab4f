package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement state recorded on a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentPartial   PaymentStatus = "Partial"
	PaymentCompleted PaymentStatus = "Completed"
)

// Payment is cash applied against an approved bill. BillTotal and Balance are
// snapshots taken when the payment was recorded.
type Payment struct {
	ID          string          `json:"id"`
	PaymentID   string          `json:"paymentId"`
	BillID      string          `json:"billId"`
	BillNumber  string          `json:"billNumber"`
	PaymentDate time.Time       `json:"paymentDate"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	Project     string          `json:"project"`
	Contractor  string          `json:"contractor"`
	BillTotal   decimal.Decimal `json:"billTotal"`
	Balance     decimal.Decimal `json:"balance"`
	Status      PaymentStatus   `json:"status"`
	AuditFields
}

// Ledger is the live settlement position of one bill, derived from the
// payments that currently exist against it.
type Ledger struct {
	BillID       string          `json:"billId"`
	BillNumber   string          `json:"billNumber"`
	BillTotal    decimal.Decimal `json:"billTotal"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`
	Balance      decimal.Decimal `json:"balance"`
	Status       PaymentStatus   `json:"status"`
	PaymentCount int             `json:"paymentCount"`
}
