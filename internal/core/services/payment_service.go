package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/construction_billing_app/internal/apperrors"
	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/construction_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/construction_billing_app/internal/core/ports/services"
	"github.com/SscSPs/construction_billing_app/internal/dto"
	"github.com/SscSPs/construction_billing_app/internal/metrics"
	"github.com/SscSPs/construction_billing_app/internal/utils/accounting"
	"github.com/SscSPs/construction_billing_app/internal/utils/identifiers"
	"github.com/SscSPs/construction_billing_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// paymentService applies cash against approved bills.
type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	billRepo    portsrepo.BillReader
}

// NewPaymentService creates the payment ledger. It must share its key lock with
// the bill service so that payments and bill mutations serialize per bill.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, billRepo portsrepo.BillReader, options ...ServiceOption) portssvc.PaymentSvcFacade {
	return &paymentService{
		BaseService: newBaseService(options),
		paymentRepo: paymentRepo,
		billRepo:    billRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// settlementStatus classifies a payment by the balance it leaves behind.
func settlementStatus(priorPaid, paid, balance decimal.Decimal) domain.PaymentStatus {
	switch {
	case balance.IsZero():
		return domain.PaymentCompleted
	case priorPaid.IsZero() && paid.IsZero():
		return domain.PaymentPending
	default:
		return domain.PaymentPartial
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, actorID string) (*domain.Payment, error) {
	if _, err := s.AuthorizeRole(ctx, actorID, domain.Role.CanRecordPayment, "record a payment"); err != nil {
		s.Metrics.Payment(metrics.OutcomeDenied, 0)
		return nil, err
	}
	if !req.PaidAmount.IsPositive() {
		return nil, fmt.Errorf("%w: paidAmount must be > 0, got %s", apperrors.ErrInvalidAmount, req.PaidAmount.String())
	}
	if err := accounting.ValidateAmount("paidAmount", req.PaidAmount); err != nil {
		return nil, err
	}

	located, err := s.billRepo.FindBillByNumber(ctx, req.BillNumber)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find bill for payment", slog.String("bill_number", req.BillNumber))
		return nil, err
	}

	unlock := s.Locks.Lock(lockPrefixBill + located.ID)
	defer unlock()

	// Re-read under the lock; the bill may have changed or vanished meanwhile.
	bill, err := s.billRepo.FindBillByID(ctx, located.ID)
	if err != nil {
		return nil, err
	}
	if status := bill.Status(); status != domain.StatusApproved {
		err := fmt.Errorf("%w: %s is %s", apperrors.ErrNotApproved, bill.DisplayNumber, status)
		s.Metrics.Payment(metrics.OutcomeRejected, 0)
		s.LogWarn(ctx, err, "Payment refused", slog.String("bill_number", bill.DisplayNumber))
		return nil, err
	}

	priorPaid, _, err := s.paymentRepo.SumPaymentsForBill(ctx, bill.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum payments for bill", slog.String("bill_id", bill.ID))
		return nil, err
	}

	billTotal := bill.FinalAmount
	if priorPaid.Add(req.PaidAmount).GreaterThan(billTotal) {
		err := fmt.Errorf("%w: %s already paid %s of %s, cannot accept %s", apperrors.ErrOverpaymentRejected,
			bill.DisplayNumber, priorPaid.String(), billTotal.String(), req.PaidAmount.String())
		s.Metrics.Payment(metrics.OutcomeRejected, 0)
		s.LogWarn(ctx, err, "Payment refused", slog.String("bill_number", bill.DisplayNumber))
		return nil, err
	}
	balance := billTotal.Sub(priorPaid).Sub(req.PaidAmount)

	now := s.now()
	paymentDate := now
	if req.PaymentDate != nil {
		paymentDate = req.PaymentDate.UTC()
	}
	payment := domain.Payment{
		ID:          uuid.NewString(),
		BillID:      bill.ID,
		BillNumber:  bill.DisplayNumber,
		PaymentDate: paymentDate,
		PaidAmount:  req.PaidAmount,
		Project:     bill.Project,
		Contractor:  bill.Contractor,
		BillTotal:   billTotal,
		Balance:     balance,
		Status:      settlementStatus(priorPaid, req.PaidAmount, balance),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	err = saveWithFreshNumber(ctx, &s.BaseService, identifiers.PrefixPayment,
		func(number string) { payment.PaymentID = number },
		func(ctx context.Context) error { return s.paymentRepo.SavePayment(ctx, payment) })
	if err != nil {
		s.Metrics.Payment(metrics.OutcomeFailed, 0)
		s.LogFailure(ctx, err, "Failed to save payment", slog.String("bill_number", bill.DisplayNumber))
		return nil, err
	}

	s.Metrics.Payment(metrics.OutcomeAccepted, req.PaidAmount.InexactFloat64())
	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("bill_number", payment.BillNumber),
		slog.String("paid", payment.PaidAmount.String()),
		slog.String("balance", payment.Balance.String()),
		slog.String("status", string(payment.Status)))
	return &payment, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, id string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payment by ID", slog.String("payment_id", id))
		}
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	repoParams := portsrepo.ListPaymentsParams{
		Limit:      pagination.NormalizeLimit(params.Limit),
		BillNumber: params.BillNumber,
	}
	if params.NextToken != "" {
		after, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		repoParams.AfterID = after
	}

	payments, cursor, err := s.paymentRepo.ListPayments(ctx, repoParams)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments from repository")
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	resp := dto.ToListPaymentsResponse(payments, encodeNext(cursor))
	return &resp, nil
}

// GetBillLedger derives the bill's balance from the payments that exist now,
// so deleting a payment is reflected immediately.
func (s *paymentService) GetBillLedger(ctx context.Context, billID string) (*domain.Ledger, error) {
	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	totalPaid, count, err := s.paymentRepo.SumPaymentsForBill(ctx, billID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum payments for bill", slog.String("bill_id", billID))
		return nil, err
	}
	balance := bill.FinalAmount.Sub(totalPaid)
	status := domain.PaymentPending
	// A bill can only settle once it is payable.
	if bill.Status() == domain.StatusApproved {
		status = settlementStatus(decimal.Zero, totalPaid, balance)
	}
	return &domain.Ledger{
		BillID:       bill.ID,
		BillNumber:   bill.DisplayNumber,
		BillTotal:    bill.FinalAmount,
		TotalPaid:    totalPaid,
		Balance:      balance,
		Status:       status,
		PaymentCount: count,
	}, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, id string, secret string, actorID string) error {
	if err := s.authorizeDeletion(ctx, "payment", actorID, secret); err != nil {
		return err
	}

	payment, err := s.paymentRepo.FindPaymentByID(ctx, id)
	if err != nil {
		return err
	}

	unlock := s.Locks.Lock(lockPrefixBill + payment.BillID)
	defer unlock()

	if err := s.paymentRepo.DeletePayment(ctx, id); err != nil {
		s.LogFailure(ctx, err, "Failed to delete payment", slog.String("payment_id", id))
		return err
	}
	s.Metrics.Deletion("payment", metrics.OutcomeAccepted)

	remaining, _, err := s.paymentRepo.SumPaymentsForBill(ctx, payment.BillID)
	if err == nil {
		s.LogInfo(ctx, "Payment deleted",
			slog.String("payment_id", payment.PaymentID),
			slog.String("bill_number", payment.BillNumber),
			slog.String("remaining_paid", remaining.String()),
			slog.String("balance", payment.BillTotal.Sub(remaining).String()))
	}
	return nil
}
