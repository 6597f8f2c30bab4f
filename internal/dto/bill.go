package dto

import (
	"time"

	"github.com/SscSPs/construction_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBillRequest defines the data needed to raise a new bill.
type CreateBillRequest struct {
	Contractor         string          `json:"contractor" binding:"required"`
	Project            string          `json:"project" binding:"required"`
	ProjectDate        time.Time       `json:"projectDate" binding:"required"`
	Trade              string          `json:"trade"`
	Unit               string          `json:"unit"`
	UnitPrice          decimal.Decimal `json:"unitPrice" binding:"gte=0"`
	Quantity           decimal.Decimal `json:"quantity" binding:"gte=0"`
	Description        string          `json:"description"`
	Location           string          `json:"location"`
	AuthorizedEngineer string          `json:"authorizedEngineer"`
}

// StageResponse mirrors domain.Stage.
type StageResponse struct {
	Approved bool            `json:"approved"`
	Decision domain.Decision `json:"decision"`
	Debit    decimal.Decimal `json:"debit"`
	Note     string          `json:"note"`
}

// BillResponse defines the data returned for a bill.
type BillResponse struct {
	ID                 string          `json:"id"`
	BillNumber         string          `json:"billNumber"`
	Contractor         string          `json:"contractor"`
	Project            string          `json:"project"`
	ProjectDate        time.Time       `json:"projectDate"`
	Trade              string          `json:"trade"`
	Unit               string          `json:"unit"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	Quantity           decimal.Decimal `json:"quantity"`
	Total              decimal.Decimal `json:"total"`
	Description        string          `json:"description"`
	Location           string          `json:"location"`
	AuthorizedEngineer string          `json:"authorizedEngineer"`
	PM                 StageResponse   `json:"pm"`
	QC                 StageResponse   `json:"qc"`
	Billing            StageResponse   `json:"billing"`
	FinalAmount        decimal.Decimal `json:"finalAmount"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"createdAt"`
	CreatedBy          string          `json:"createdBy"`
	LastUpdatedAt      time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy      string          `json:"lastUpdatedBy"`
}

// BillApprovalResponse wraps a bill after an approval call together with any
// non-fatal warnings (for example a clamped final amount).
type BillApprovalResponse struct {
	Bill     BillResponse `json:"bill"`
	Warnings []string     `json:"warnings,omitempty"`
}

// ListBillsResponse wraps one page of bills.
type ListBillsResponse struct {
	Bills     []BillResponse `json:"bills"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToStageResponse converts a domain.Stage to StageResponse DTO
func ToStageResponse(s domain.Stage) StageResponse {
	return StageResponse{
		Approved: s.Approved(),
		Decision: s.Decision,
		Debit:    s.Debit,
		Note:     s.Note,
	}
}

// ToBillResponse converts a domain.Bill to BillResponse DTO
func ToBillResponse(b *domain.Bill) BillResponse {
	return BillResponse{
		ID:                 b.ID,
		BillNumber:         b.DisplayNumber,
		Contractor:         b.Contractor,
		Project:            b.Project,
		ProjectDate:        b.ProjectDate,
		Trade:              b.Trade,
		Unit:               b.Unit,
		UnitPrice:          b.UnitPrice,
		Quantity:           b.Quantity,
		Total:              b.BaseAmount,
		Description:        b.Description,
		Location:           b.Location,
		AuthorizedEngineer: b.AuthorizedEngineer,
		PM:                 ToStageResponse(b.PM),
		QC:                 ToStageResponse(b.QC),
		Billing:            ToStageResponse(b.Billing),
		FinalAmount:        b.FinalAmount,
		Status:             b.Status().String(),
		CreatedAt:          b.CreatedAt,
		CreatedBy:          b.CreatedBy,
		LastUpdatedAt:      b.LastUpdatedAt,
		LastUpdatedBy:      b.LastUpdatedBy,
	}
}

// ToListBillsResponse converts a page of domain bills
func ToListBillsResponse(bills []domain.Bill, nextToken *string) ListBillsResponse {
	res := make([]BillResponse, len(bills))
	for i := range bills {
		res[i] = ToBillResponse(&bills[i])
	}
	return ListBillsResponse{Bills: res, NextToken: nextToken}
}
