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
	"github.com/google/uuid"
)

type weeklyRecordService struct {
	BaseService
	recordRepo portsrepo.WeeklyRecordRepositoryFacade
	pipeline   pipeline
	access     unitAccess[domain.WeeklyRecord]
}

// NewWeeklyRecordService creates the NMR service. It runs the same approval
// pipeline as bills.
func NewWeeklyRecordService(repo portsrepo.WeeklyRecordRepositoryFacade, options ...ServiceOption) portssvc.WeeklyRecordSvcFacade {
	svc := &weeklyRecordService{
		BaseService: newBaseService(options),
		recordRepo:  repo,
	}
	svc.pipeline = pipeline{debitPolicy: svc.DebitPolicy}
	svc.access = unitAccess[domain.WeeklyRecord]{
		kind:    "weekly_record",
		lockKey: func(id string) string { return lockPrefixNMR + id },
		load:    repo.FindWeeklyRecordByID,
		unit:    func(r *domain.WeeklyRecord) *domain.PayableUnit { return &r.PayableUnit },
		save:    repo.UpdateWeeklyRecordApproval,
	}
	return svc
}

var _ portssvc.WeeklyRecordSvcFacade = (*weeklyRecordService)(nil)

func (s *weeklyRecordService) CreateWeeklyRecord(ctx context.Context, req dto.CreateWeeklyRecordRequest, actorID string) (*domain.WeeklyRecord, error) {
	if _, err := s.AuthorizeRole(ctx, actorID, domain.Role.CanRaiseUnit, "raise a weekly record"); err != nil {
		return nil, err
	}
	if req.Project == "" || req.Contractor == "" {
		return nil, fmt.Errorf("%w: project and contractor are required", apperrors.ErrValidation)
	}
	if req.WeekEndDate.Before(req.WeekStartDate) {
		return nil, fmt.Errorf("%w: weekEndDate precedes weekStartDate", apperrors.ErrValidation)
	}

	entries := dto.ToLabourEntries(req.Entries)
	total, amounts, err := accounting.ComputeWeeklyTotal(entries)
	if err != nil {
		s.LogWarn(ctx, err, "Invalid weekly record entries", slog.String("user_id", actorID))
		return nil, err
	}
	for i := range entries {
		entries[i].Amount = amounts[i]
	}

	now := s.now()
	pm, qc, billing := domain.NewPendingStages()
	record := domain.WeeklyRecord{
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
		Trade:         req.Trade,
		EngineerName:  req.EngineerName,
		WeekStartDate: req.WeekStartDate,
		WeekEndDate:   req.WeekEndDate,
		Entries:       entries,
	}

	err = saveWithFreshNumber(ctx, &s.BaseService, identifiers.PrefixNMR,
		func(number string) { record.DisplayNumber = number },
		func(ctx context.Context) error { return s.recordRepo.SaveWeeklyRecord(ctx, record) })
	if err != nil {
		s.LogError(ctx, err, "Failed to save weekly record in repository", slog.String("record_id", record.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Weekly record created successfully",
		slog.String("record_id", record.ID),
		slog.String("nmr_number", record.DisplayNumber),
		slog.Int("entries", len(entries)),
		slog.String("total", total.String()))
	return &record, nil
}

func (s *weeklyRecordService) GetWeeklyRecordByID(ctx context.Context, recordID string) (*domain.WeeklyRecord, error) {
	record, err := s.recordRepo.FindWeeklyRecordByID(ctx, recordID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find weekly record by ID", slog.String("record_id", recordID))
		}
		return nil, err
	}
	return record, nil
}

func (s *weeklyRecordService) ListWeeklyRecords(ctx context.Context, params dto.ListUnitsParams) (*dto.ListWeeklyRecordsResponse, error) {
	after, status, limit, err := toRepoListParams(params.Limit, params.NextToken, params.Status)
	if err != nil {
		return nil, err
	}
	records, cursor, err := s.recordRepo.ListWeeklyRecords(ctx, portsrepo.ListUnitsParams{
		Limit:       limit,
		AfterNumber: after,
		Status:      status,
		Project:     params.Project,
		Contractor:  params.Contractor,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list weekly records from repository")
		return nil, fmt.Errorf("failed to list weekly records: %w", err)
	}
	resp := dto.ToListWeeklyRecordsResponse(records, encodeNext(cursor))
	return &resp, nil
}

func (s *weeklyRecordService) ApproveWeeklyRecordPM(ctx context.Context, recordID string, req dto.StageApprovalRequest, actorID string) (*domain.WeeklyRecord, []string, error) {
	in, err := toStageInput(req)
	if err != nil {
		return nil, nil, err
	}
	return runApproval(ctx, &s.BaseService, s.access, recordID, actorID, domain.StagePM, domain.Role.CanApprovePM,
		func(u *domain.PayableUnit, role domain.Role) ([]string, error) { return s.pipeline.approvePM(u, role, in) })
}

func (s *weeklyRecordService) ApproveWeeklyRecordQC(ctx context.Context, recordID string, req dto.StageApprovalRequest, actorID string) (*domain.WeeklyRecord, []string, error) {
	in, err := toStageInput(req)
	if err != nil {
		return nil, nil, err
	}
	return runApproval(ctx, &s.BaseService, s.access, recordID, actorID, domain.StageQC, domain.Role.CanApproveQC,
		func(u *domain.PayableUnit, role domain.Role) ([]string, error) { return s.pipeline.approveQC(u, role, in) })
}

func (s *weeklyRecordService) ApproveWeeklyRecordBilling(ctx context.Context, recordID string, req dto.BillingApprovalRequest, actorID string) (*domain.WeeklyRecord, []string, error) {
	in, err := toBillingInput(req)
	if err != nil {
		return nil, nil, err
	}
	return runApproval(ctx, &s.BaseService, s.access, recordID, actorID, domain.StageBilling, domain.Role.CanApproveBilling,
		func(u *domain.PayableUnit, role domain.Role) ([]string, error) {
			return s.pipeline.approveBilling(u, role, in)
		})
}

func (s *weeklyRecordService) DeleteWeeklyRecord(ctx context.Context, recordID string, secret string, actorID string) error {
	if err := s.authorizeDeletion(ctx, "weekly_record", actorID, secret); err != nil {
		return err
	}

	unlock := s.Locks.Lock(lockPrefixNMR + recordID)
	defer unlock()

	if err := s.recordRepo.DeleteWeeklyRecord(ctx, recordID); err != nil {
		s.LogFailure(ctx, err, "Failed to delete weekly record", slog.String("record_id", recordID))
		return err
	}

	s.Metrics.Deletion("weekly_record", metrics.OutcomeAccepted)
	s.LogInfo(ctx, "Weekly record deleted", slog.String("record_id", recordID))
	return nil
}
