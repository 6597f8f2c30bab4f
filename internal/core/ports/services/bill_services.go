package services

import (
	"context"

	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	"github.com/SscSPs/construction_billing_app/internal/dto"
)

// BillReaderSvc defines read operations for bills
type BillReaderSvc interface {
	GetBillByID(ctx context.Context, billID string) (*domain.Bill, error)
	ListBills(ctx context.Context, params dto.ListUnitsParams) (*dto.ListBillsResponse, error)
}

// BillWriterSvc defines creation and deletion of bills
type BillWriterSvc interface {
	CreateBill(ctx context.Context, req dto.CreateBillRequest, actorID string) (*domain.Bill, error)
	DeleteBill(ctx context.Context, billID string, secret string, actorID string) error
}

// BillApprovalSvc drives a bill through the PM, QC and Billing gates. Each call
// returns the updated bill and any non-fatal warnings.
type BillApprovalSvc interface {
	ApproveBillPM(ctx context.Context, billID string, req dto.StageApprovalRequest, actorID string) (*domain.Bill, []string, error)
	ApproveBillQC(ctx context.Context, billID string, req dto.StageApprovalRequest, actorID string) (*domain.Bill, []string, error)
	ApproveBillBilling(ctx context.Context, billID string, req dto.BillingApprovalRequest, actorID string) (*domain.Bill, []string, error)
}

// BillSvcFacade combines all bill-related service interfaces
type BillSvcFacade interface {
	BillReaderSvc
	BillWriterSvc
	BillApprovalSvc
}
