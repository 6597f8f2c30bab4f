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
	"github.com/SscSPs/construction_billing_app/internal/platform/config"
	"github.com/SscSPs/construction_billing_app/internal/utils/accounting"
	"github.com/SscSPs/construction_billing_app/internal/utils/identifiers"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// billService implements the BillSvcFacade interface
type billService struct {
	BaseService
	billRepo portsrepo.BillRepositoryFacade
	pipeline pipeline
	access   unitAccess[domain.Bill]
}

// NewBillService creates a new bill service with the provided options
func NewBillService(repo portsrepo.BillRepositoryFacade, options ...ServiceOption) portssvc.BillSvcFacade {
	svc := &billService{
		BaseService: newBaseService(options),
		billRepo:    repo,
	}
	svc.pipeline = pipeline{debitPolicy: svc.DebitPolicy}
	svc.access = unitAccess[domain.Bill]{
		kind:    "bill",
		lockKey: func(id string) string { return lockPrefixBill + id },
		load:    repo.FindBillByID,
		unit:    func(b *domain.Bill) *domain.PayableUnit { return &b.PayableUnit },
		save:    repo.UpdateBillApproval,
	}
	return svc
}

// Ensure billService implements the BillSvcFacade interface
var _ portssvc.BillSvcFacade = (*billService)(nil)

func (s *billService) CreateBill(ctx context.Context, req dto.CreateBillRequest, actorID string) (*domain.Bill, error) {
	if _, err := s.AuthorizeRole(ctx, actorID, domain.Role.CanRaiseUnit, "raise a bill"); err != nil {
		return nil, err
	}
	if req.Contractor == "" || req.Project == "" {
		return nil, fmt.Errorf("%w: contractor and project are required", apperrors.ErrValidation)
	}

	total, err := accounting.ComputeBillTotal(req.UnitPrice, req.Quantity)
	if err != nil {
		s.LogWarn(ctx, err, "Invalid bill amounts", slog.String("user_id", actorID))
		return nil, err
	}

	now := s.now()
	pm, qc, billing := domain.NewPendingStages()
	bill := domain.Bill{
		PayableUnit: domain.PayableUnit{
			ID:          uuid.NewString(),
			Project:     req.Project,
			Contractor:  req.Contractor,
			BaseAmount:  total,
			PM:          pm,
			QC:          qc,
			Billing:     billing,
			FinalAmount: total,
			Version:     1,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		},
		ProjectDate:        req.ProjectDate,
		Trade:              req.Trade,
		Unit:               req.Unit,
		UnitPrice:          req.UnitPrice,
		Quantity:           req.Quantity,
		Description:        req.Description,
		Location:           req.Location,
		AuthorizedEngineer: req.AuthorizedEngineer,
	}

	err = saveWithFreshNumber(ctx, &s.BaseService, identifiers.PrefixBill,
		func(number string) { bill.DisplayNumber = number },
		func(ctx context.Context) error { return s.billRepo.SaveBill(ctx, bill) })
	if err != nil {
		s.LogError(ctx, err, "Failed to save bill in repository", slog.String("bill_id", bill.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Bill created successfully",
		slog.String("bill_id", bill.ID),
		slog.String("bill_number", bill.DisplayNumber),
		slog.String("total", total.String()))
	return &bill, nil
}

func (s *billService) GetBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find bill by ID in repository", slog.String("bill_id", billID))
		}
		return nil, err
	}
	return bill, nil
}

func (s *billService) ListBills(ctx context.Context, params dto.ListUnitsParams) (*dto.ListBillsResponse, error) {
	after, status, limit, err := toRepoListParams(params.Limit, params.NextToken, params.Status)
	if err != nil {
		return nil, err
	}
	bills, cursor, err := s.billRepo.ListBills(ctx, portsrepo.ListUnitsParams{
		Limit:       limit,
		AfterNumber: after,
		Status:      status,
		Project:     params.Project,
		Contractor:  params.Contractor,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list bills from repository")
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	resp := dto.ToListBillsResponse(bills, encodeNext(cursor))
	return &resp, nil
}

func (s *billService) ApproveBillPM(ctx context.Context, billID string, req dto.StageApprovalRequest, actorID string) (*domain.Bill, []string, error) {
	in, err := toStageInput(req)
	if err != nil {
		return nil, nil, err
	}
	return runApproval(ctx, &s.BaseService, s.access, billID, actorID, domain.StagePM, domain.Role.CanApprovePM,
		func(u *domain.PayableUnit, role domain.Role) ([]string, error) { return s.pipeline.approvePM(u, role, in) })
}

func (s *billService) ApproveBillQC(ctx context.Context, billID string, req dto.StageApprovalRequest, actorID string) (*domain.Bill, []string, error) {
	in, err := toStageInput(req)
	if err != nil {
		return nil, nil, err
	}
	return runApproval(ctx, &s.BaseService, s.access, billID, actorID, domain.StageQC, domain.Role.CanApproveQC,
		func(u *domain.PayableUnit, role domain.Role) ([]string, error) { return s.pipeline.approveQC(u, role, in) })
}

func (s *billService) ApproveBillBilling(ctx context.Context, billID string, req dto.BillingApprovalRequest, actorID string) (*domain.Bill, []string, error) {
	in, err := toBillingInput(req)
	if err != nil {
		return nil, nil, err
	}
	return runApproval(ctx, &s.BaseService, s.access, billID, actorID, domain.StageBilling, domain.Role.CanApproveBilling,
		func(u *domain.PayableUnit, role domain.Role) ([]string, error) {
			return s.pipeline.approveBilling(u, role, in)
		})
}

// DeleteBill removes a bill. Under the restrict policy a bill with payments is
// refused; under cascade its payments go with it.
func (s *billService) DeleteBill(ctx context.Context, billID string, secret string, actorID string) error {
	if err := s.authorizeDeletion(ctx, "bill", actorID, secret); err != nil {
		return err
	}

	unlock := s.Locks.Lock(lockPrefixBill + billID)
	defer unlock()

	if _, err := s.billRepo.FindBillByID(ctx, billID); err != nil {
		return err
	}
	if err := s.billRepo.DeleteBill(ctx, billID, s.DeletePolicy == config.DeletePolicyCascade); err != nil {
		s.Metrics.Deletion("bill", metrics.OutcomeFailed)
		s.LogFailure(ctx, err, "Failed to delete bill", slog.String("bill_id", billID))
		return err
	}

	s.Metrics.Deletion("bill", metrics.OutcomeAccepted)
	s.LogInfo(ctx, "Bill deleted", slog.String("bill_id", billID), slog.String("policy", string(s.DeletePolicy)))
	return nil
}

func toStageInput(req dto.StageApprovalRequest) (stageInput, error) {
	if req.Approved == nil {
		return stageInput{}, fmt.Errorf("%w: approved is required", apperrors.ErrValidation)
	}
	return stageInput{approved: *req.Approved, debit: req.Debit, note: req.Note}, nil
}

func toBillingInput(req dto.BillingApprovalRequest) (billingInput, error) {
	if req.Approved == nil {
		return billingInput{}, fmt.Errorf("%w: approved is required", apperrors.ErrValidation)
	}
	var override *decimal.Decimal
	if req.FinalAmount != nil {
		v := *req.FinalAmount
		override = &v
	}
	return billingInput{approved: *req.Approved, override: override, status: req.Status, note: req.Note}, nil
}
