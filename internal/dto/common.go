package dto

import "github.com/shopspring/decimal"

// ListUnitsParams defines query parameters for listing bills and weekly records.
type ListUnitsParams struct {
	Limit      int    `form:"limit,default=20" binding:"gte=0,lte=100"`
	NextToken  string `form:"nextToken"`
	Status     string `form:"status" binding:"omitempty,oneof='Pending PM' 'Pending QC' 'Pending Billing' Approved Rejected"`
	Project    string `form:"project"`
	Contractor string `form:"contractor"`
}

// StageApprovalRequest is the body of a PM or QC sign-off.
type StageApprovalRequest struct {
	Approved *bool           `json:"approved" binding:"required"`
	Debit    decimal.Decimal `json:"debit" binding:"gte=0"`
	Note     string          `json:"note" binding:"max=2000"`
}

// BillingApprovalRequest is the body of the final billing sign-off.
type BillingApprovalRequest struct {
	Approved    *bool            `json:"approved" binding:"required"`
	FinalAmount *decimal.Decimal `json:"finalAmount,omitempty" binding:"omitempty,gte=0"` // Optional rounding correction
	Status      *string          `json:"status,omitempty" binding:"omitempty,oneof=Approved Rejected"`
	Note        string           `json:"note" binding:"max=2000"`
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// BoolPtr returns a pointer to b, handy for building approval requests.
func BoolPtr(b bool) *bool {
	return &b
}
