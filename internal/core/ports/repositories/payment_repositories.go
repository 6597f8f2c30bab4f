package repositories

import (
	"context"

	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListPaymentsParams selects a page of payments, newest payment id first.
type ListPaymentsParams struct {
	Limit      int
	AfterID    string // Exclusive cursor on payment id
	BillNumber string // Optional filter
}

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, id string) (*domain.Payment, error)
	ListPayments(ctx context.Context, params ListPaymentsParams) ([]domain.Payment, *string, error)

	// SumPaymentsForBill returns the total paid against a bill and the number of payments.
	SumPaymentsForBill(ctx context.Context, billID string) (decimal.Decimal, int, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment inserts a payment. The store re-checks, under its own lock on the
	// owning bill, that the paid total stays within payment.BillTotal and returns
	// apperrors.ErrOverpaymentRejected otherwise.
	SavePayment(ctx context.Context, payment domain.Payment) error

	DeletePayment(ctx context.Context, id string) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
