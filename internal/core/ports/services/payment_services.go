package services

import (
	"context"

	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	"github.com/SscSPs/construction_billing_app/internal/dto"
)

// PaymentSvcFacade is the payment ledger.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, actorID string) (*domain.Payment, error)
	GetPaymentByID(ctx context.Context, id string) (*domain.Payment, error)
	ListPayments(ctx context.Context, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error)
	DeletePayment(ctx context.Context, id string, secret string, actorID string) error

	// GetBillLedger derives the live balance of a bill from its remaining payments.
	GetBillLedger(ctx context.Context, billID string) (*domain.Ledger, error)
}
