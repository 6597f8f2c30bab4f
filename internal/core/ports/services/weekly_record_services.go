package services

import (
	"context"

	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	"github.com/SscSPs/construction_billing_app/internal/dto"
)

// WeeklyRecordSvcFacade exposes the NMR operations; the approval calls share the
// bill pipeline.
type WeeklyRecordSvcFacade interface {
	CreateWeeklyRecord(ctx context.Context, req dto.CreateWeeklyRecordRequest, actorID string) (*domain.WeeklyRecord, error)
	GetWeeklyRecordByID(ctx context.Context, recordID string) (*domain.WeeklyRecord, error)
	ListWeeklyRecords(ctx context.Context, params dto.ListUnitsParams) (*dto.ListWeeklyRecordsResponse, error)
	DeleteWeeklyRecord(ctx context.Context, recordID string, secret string, actorID string) error

	ApproveWeeklyRecordPM(ctx context.Context, recordID string, req dto.StageApprovalRequest, actorID string) (*domain.WeeklyRecord, []string, error)
	ApproveWeeklyRecordQC(ctx context.Context, recordID string, req dto.StageApprovalRequest, actorID string) (*domain.WeeklyRecord, []string, error)
	ApproveWeeklyRecordBilling(ctx context.Context, recordID string, req dto.BillingApprovalRequest, actorID string) (*domain.WeeklyRecord, []string, error)
}
