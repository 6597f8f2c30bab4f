package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/construction_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/construction_billing_app/internal/core/ports/services"
	"github.com/SscSPs/construction_billing_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingSvc interface
type reportingService struct {
	BaseService
	billRepo    portsrepo.BillReader
	recordRepo  portsrepo.WeeklyRecordReader
	paymentRepo portsrepo.PaymentReader
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(billRepo portsrepo.BillReader, recordRepo portsrepo.WeeklyRecordReader, paymentRepo portsrepo.PaymentReader, options ...ServiceOption) portssvc.ReportingSvc {
	return &reportingService{
		BaseService: newBaseService(options),
		billRepo:    billRepo,
		recordRepo:  recordRepo,
		paymentRepo: paymentRepo,
	}
}

// Ensure reportingService implements the ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

// GetSummary walks every bill and NMR page by page. Outstanding balances are
// derived from the payments that exist now.
func (s *reportingService) GetSummary(ctx context.Context) (*domain.Summary, error) {
	summary := &domain.Summary{
		Bills:         domain.NewUnitSummary(),
		WeeklyRecords: domain.NewUnitSummary(),
		Settlement: domain.SettlementSummary{
			ApprovedTotal: decimal.Zero,
			TotalPaid:     decimal.Zero,
			Outstanding:   decimal.Zero,
		},
	}

	params := portsrepo.ListUnitsParams{Limit: pagination.MaxLimit}
	for {
		bills, cursor, err := s.billRepo.ListBills(ctx, params)
		if err != nil {
			s.LogError(ctx, err, "Failed to list bills for summary")
			return nil, fmt.Errorf("failed to build summary: %w", err)
		}
		for _, b := range bills {
			summary.Bills.Add(b.PayableUnit)
			paid, count, err := s.paymentRepo.SumPaymentsForBill(ctx, b.ID)
			if err != nil {
				s.LogError(ctx, err, "Failed to sum payments for summary")
				return nil, fmt.Errorf("failed to build summary: %w", err)
			}
			summary.Settlement.PaymentCount += count
			summary.Settlement.TotalPaid = summary.Settlement.TotalPaid.Add(paid)
			if b.Status() == domain.StatusApproved {
				summary.Settlement.ApprovedTotal = summary.Settlement.ApprovedTotal.Add(b.FinalAmount)
				summary.Settlement.Outstanding = summary.Settlement.Outstanding.Add(b.FinalAmount.Sub(paid))
			}
		}
		if cursor == nil {
			break
		}
		params.AfterNumber = *cursor
	}

	params = portsrepo.ListUnitsParams{Limit: pagination.MaxLimit}
	for {
		records, cursor, err := s.recordRepo.ListWeeklyRecords(ctx, params)
		if err != nil {
			s.LogError(ctx, err, "Failed to list weekly records for summary")
			return nil, fmt.Errorf("failed to build summary: %w", err)
		}
		for _, r := range records {
			summary.WeeklyRecords.Add(r.PayableUnit)
		}
		if cursor == nil {
			break
		}
		params.AfterNumber = *cursor
	}

	s.LogDebug(ctx, "Summary built")
	return summary, nil
}
